package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/career-launch/backend/internal/models"
)

func TestCategoryFor_FirstMatchWins(t *testing.T) {
	// "Healthcare Technology" matches both the Healthcare and Technology
	// keyword sets; the earlier declared category claims it.
	require.Equal(t, "Healthcare", CategoryFor("Healthcare Technology"))
	require.Equal(t, "Skilled Trades", CategoryFor("Electrical Construction"))
	require.Equal(t, "Technology", CategoryFor("Software & Gaming"))
}

func TestCategoryFor_SubstringSemantics(t *testing.T) {
	// Membership is case-insensitive substring matching, not tag equality.
	require.Equal(t, "Healthcare", CategoryFor("HEALTH SCIENCES"))
	require.Equal(t, "Technology", CategoryFor("computing"))
	require.Equal(t, "Other", CategoryFor("Hospitality & Tourism"))
	require.Equal(t, "Other", CategoryFor(""))
}

func TestGroupSessionsByCategory(t *testing.T) {
	sessions := []models.Session{
		{Slug: "a", Industry: "Nursing & Medical"},
		{Slug: "b", Industry: "Software Development"},
		{Slug: "c", Industry: "Healthcare Technology"},
		{Slug: "d", Industry: "Hospitality"},
	}

	groups := GroupSessionsByCategory(sessions)
	byName := make(map[string]CategoryGroup, len(groups))
	order := make([]string, 0, len(groups))
	for _, g := range groups {
		byName[g.Category] = g
		order = append(order, g.Category)
	}

	// Declared order, empty buckets omitted.
	require.Equal(t, []string{"Healthcare", "Technology", "Other"}, order)

	// No session appears in two buckets: "c" went to Healthcare only.
	require.Len(t, byName["Healthcare"].Sessions, 2)
	require.Len(t, byName["Technology"].Sessions, 1)
	require.Equal(t, "b", byName["Technology"].Sessions[0].Slug)
	require.Equal(t, 1, byName["Other"].Count)

	total := 0
	for _, g := range groups {
		total += g.Count
	}
	require.Equal(t, len(sessions), total)
}
