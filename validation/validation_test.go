package validation

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/permitly/permitagent/modeltest"
)

func TestValidateParsesJSONVerdict(t *testing.T) {
	cm := modeltest.New().QueueContent(`{"valid": true, "message": "Sieht gut aus"}`)
	g := NewModelGateway(cm)

	v, err := g.Validate(context.Background(), "fullName", "Max Mustermann", "de")
	require.NoError(t, err)
	require.True(t, v.Valid)
	require.Equal(t, "Sieht gut aus", v.Message)
}

func TestValidateStripsCodeFences(t *testing.T) {
	cm := modeltest.New().QueueContent("```json\n{\"valid\": false, \"message\": \"Datum fehlt\"}\n```")
	g := NewModelGateway(cm)

	v, err := g.Validate(context.Background(), "dateOfBirth", "irgendwann", "de")
	require.NoError(t, err)
	require.False(t, v.Valid)
	require.Equal(t, "Datum fehlt", v.Message)
}

func TestValidateCorrectedValue(t *testing.T) {
	cm := modeltest.New().QueueContent(`{"valid": "true", "correctedValue": "+49 151 1234567"}`)
	g := NewModelGateway(cm)

	v, err := g.Validate(context.Background(), "phoneNumber", "01511234567", "de")
	require.NoError(t, err)
	require.True(t, v.Valid)
	require.Equal(t, "+49 151 1234567", v.CorrectedValue)
}

func TestValidateHeuristicOnProse(t *testing.T) {
	cm := modeltest.New().
		QueueContent("Die Antwort ist leider falsch, bitte korrigieren.").
		QueueContent("Das sieht vollständig aus, danke.")
	g := NewModelGateway(cm)

	v, err := g.Validate(context.Background(), "email", "not-an-email", "de")
	require.NoError(t, err)
	require.False(t, v.Valid)

	v, err = g.Validate(context.Background(), "email", "max@example.com", "de")
	require.NoError(t, err)
	require.True(t, v.Valid)
}

func TestValidateFailsOpenOnModelError(t *testing.T) {
	cm := modeltest.New().QueueError(errors.New("connection refused"))
	g := NewModelGateway(cm)

	v, err := g.Validate(context.Background(), "salary", "5500", "de")
	require.NoError(t, err)
	require.True(t, v.Valid)
	require.Contains(t, v.Message, "skipped")
}

func TestValidateReturnsContextError(t *testing.T) {
	cm := modeltest.New().QueueError(errors.New("canceled"))
	g := NewModelGateway(cm)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := g.Validate(ctx, "salary", "5500", "de")
	require.ErrorIs(t, err, context.Canceled)
}
