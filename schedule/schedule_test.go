package schedule

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOrderAndLookup(t *testing.T) {
	require.Equal(t, 24, Len())

	first, ok := At(0)
	require.True(t, ok)
	require.Equal(t, "fullName", first.ID)

	last, ok := At(Len() - 1)
	require.True(t, ok)
	require.Equal(t, "financialSupport", last.ID)

	_, ok = At(Len())
	require.False(t, ok)

	require.Equal(t, 1, IndexOf("dateOfBirth"))
	require.Equal(t, -1, IndexOf("notAField"))

	f, ok := ByID("germanAddress")
	require.True(t, ok)
	require.False(t, f.Required)
	require.Equal(t, KindText, f.Kind)
}

func TestFieldsIsACopy(t *testing.T) {
	fields := Fields()
	fields[0].ID = "mutated"
	again := Fields()
	require.Equal(t, "fullName", again[0].ID)
}

func TestDomains(t *testing.T) {
	require.Contains(t, Domain("maritalStatus"), "single")
	require.Contains(t, Domain("germanLevel"), "C2")
	require.Contains(t, Domain("criminalRecord"), "no")
	require.Contains(t, Domain("nationality"), "TR")
	require.Nil(t, Domain("fullName"))
}
