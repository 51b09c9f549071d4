package conversation

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/permitly/permitagent/question"
)

// staticTranslator returns a fixed result or error.
type staticTranslator struct {
	result map[string]string
	err    error
}

func (s staticTranslator) TranslateValues(_ context.Context, values map[string]string, _, _ string) (map[string]string, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.result != nil {
		return s.result, nil
	}
	return values, nil
}

func TestChangeLanguageRelocalizesTranscript(t *testing.T) {
	flow := newTestFlow()
	ctx := WithSessionKey(context.Background(), t.Name())
	_, err := flow.Start(ctx, "de")
	require.NoError(t, err)
	_, err = flow.Submit(ctx, "max mustermann")
	require.NoError(t, err)

	state, err := flow.ChangeLanguage(ctx, "en")
	require.NoError(t, err)
	require.Equal(t, "en", state.Language)

	// Welcome, questions and Saved confirmations speak English now; the
	// user's answer is untouched.
	require.Contains(t, state.Messages[0].Text, "Welcome")
	require.Equal(t, "What is your full name (as in passport)?", state.Messages[1].Text)
	for _, msg := range state.Messages {
		switch {
		case msg.Role == RoleUser:
			require.Equal(t, "Max Mustermann", msg.Text)
		case msg.Role == RoleSystem && msg.FieldID != "":
			require.Equal(t, "Saved", msg.Text)
		}
	}
}

func TestChangeLanguageTranslatesValues(t *testing.T) {
	translated := map[string]string{"fullName": "Max Mustermann", "jobDescription": "translated"}
	flow := newTestFlow(WithTranslator(staticTranslator{result: translated}))
	ctx := WithSessionKey(context.Background(), t.Name())
	_, err := flow.Start(ctx, "de")
	require.NoError(t, err)
	_, err = flow.Submit(ctx, "max mustermann")
	require.NoError(t, err)

	state, err := flow.ChangeLanguage(ctx, "en")
	require.NoError(t, err)
	require.Equal(t, Values(translated), state.Values)

	last := state.Messages[len(state.Messages)-1]
	require.Equal(t, RoleSystem, last.Role)
	require.Equal(t, "Form data has been translated.", last.Text)
}

func TestChangeLanguageTranslationFailureKeepsValues(t *testing.T) {
	flow := newTestFlow(WithTranslator(staticTranslator{err: errors.New("down")}))
	ctx := WithSessionKey(context.Background(), t.Name())
	_, err := flow.Start(ctx, "de")
	require.NoError(t, err)
	_, err = flow.Submit(ctx, "max mustermann")
	require.NoError(t, err)

	state, err := flow.ChangeLanguage(ctx, "en")
	require.NoError(t, err)
	require.Equal(t, "Max Mustermann", state.Values["fullName"])

	last := state.Messages[len(state.Messages)-1]
	require.Equal(t, RoleSystem, last.Role)
	require.Equal(t, "Translation failed. Form data remains unchanged.", last.Text)
}

func TestChangeLanguageNoValuesNoTranslatorCall(t *testing.T) {
	flow := newTestFlow(WithTranslator(staticTranslator{err: errors.New("must not be called")}))
	ctx := WithSessionKey(context.Background(), t.Name())
	_, err := flow.Start(ctx, "de")
	require.NoError(t, err)

	state, err := flow.ChangeLanguage(ctx, "en")
	require.NoError(t, err)
	require.Equal(t, "en", state.Language)
	for _, msg := range state.Messages {
		require.NotEqual(t, "Translation failed. Form data remains unchanged.", msg.Text)
	}
}

func TestChangeLanguageSameLanguageNoOp(t *testing.T) {
	flow := newTestFlow()
	ctx := WithSessionKey(context.Background(), t.Name())
	start, err := flow.Start(ctx, "de")
	require.NoError(t, err)

	state, err := flow.ChangeLanguage(ctx, "de")
	require.NoError(t, err)
	require.Len(t, state.Messages, len(start.Messages))
}

func TestChangeLanguageUnsupported(t *testing.T) {
	flow := NewFlow(NewMemoryStateReadWriter(), acceptAll{}, question.BankGenerator{})
	ctx := WithSessionKey(context.Background(), t.Name())
	_, err := flow.Start(ctx, "de")
	require.NoError(t, err)

	_, err = flow.ChangeLanguage(ctx, "zz")
	require.Error(t, err)
}
