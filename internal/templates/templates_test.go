package templates

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAllTemplatesHaveRequiredFields(t *testing.T) {
	all := All()
	require.Len(t, all, 4)
	seen := map[string]bool{}
	for _, tmpl := range all {
		require.NotEmpty(t, tmpl.ID)
		require.NotEmpty(t, tmpl.Name)
		require.NotEmpty(t, tmpl.Description)
		require.NotEmpty(t, tmpl.Content)
		require.False(t, seen[tmpl.ID], "duplicate template id %s", tmpl.ID)
		seen[tmpl.ID] = true
	}
}

func TestByID(t *testing.T) {
	tmpl, ok := ByID("meeting-notes")
	require.True(t, ok)
	require.Equal(t, "Meeting Notes", tmpl.Name)

	_, ok = ByID("nope")
	require.False(t, ok)
}

func TestAllReturnsCopy(t *testing.T) {
	first := All()
	first[0].Name = "mutated"
	require.Equal(t, "Meeting Notes", All()[0].Name)
}
