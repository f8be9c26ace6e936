package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/career-launch/backend/internal/models"
)

func testBooths() []models.Booth {
	return []models.Booth{
		{Slug: "steel-co", Name: "Steel Co", Industry: "Skilled Trades", Pathways: []string{"apprenticeship"}, Tier: models.TierStandard, HasPrizes: true, Position: 1},
		{Slug: "care-net", Name: "CareNet", Industry: "Healthcare", Pathways: []string{"college"}, Tier: models.TierPlatinum, PostSecondary: true, Position: 2},
		{Slug: "codeworks", Name: "Codeworks", Industry: "Technology", Pathways: []string{"university"}, Tier: models.TierStandard, PostSecondary: true, Position: 3},
		{Slug: "buildright", Name: "BuildRight", Industry: "Skilled Trades", Pathways: []string{"apprenticeship", "college"}, Tier: models.TierPlatinum, HasPrizes: true, Position: 4},
	}
}

func slugs(booths []models.Booth) []string {
	out := make([]string, len(booths))
	for i, b := range booths {
		out[i] = b.Slug
	}
	return out
}

func TestFilterBooths_DefaultCriteriaIsIdentity(t *testing.T) {
	booths := testBooths()
	got := FilterBooths(booths, DefaultCriteria())
	require.Len(t, got, len(booths))
	require.False(t, DefaultCriteria().IsActive())
}

func TestFilterBooths_Conjunctive(t *testing.T) {
	booths := testBooths()
	crit := DefaultCriteria()
	crit.Industries = []string{"Skilled Trades"}
	crit.PrizesOnly = true

	got := FilterBooths(booths, crit)
	require.ElementsMatch(t, []string{"buildright", "steel-co"}, slugs(got),
		"every active criterion must hold")

	crit.Pathways = []string{"college"}
	got = FilterBooths(booths, crit)
	require.Equal(t, []string{"buildright"}, slugs(got))
}

func TestFilterBooths_PostSecondaryTriState(t *testing.T) {
	booths := testBooths()

	crit := DefaultCriteria()
	crit.PostSecondary = PostSecondaryTrue
	require.ElementsMatch(t, []string{"care-net", "codeworks"}, slugs(FilterBooths(booths, crit)))

	crit.PostSecondary = PostSecondaryFalse
	require.ElementsMatch(t, []string{"steel-co", "buildright"}, slugs(FilterBooths(booths, crit)))

	crit.PostSecondary = PostSecondaryAll
	require.Len(t, FilterBooths(booths, crit), 4)
	require.False(t, crit.IsActive())
}

func TestFilterBooths_SearchIsCaseInsensitive(t *testing.T) {
	crit := DefaultCriteria()
	crit.Search = "codew"
	require.Equal(t, []string{"codeworks"}, slugs(FilterBooths(testBooths(), crit)))
	require.True(t, crit.IsActive())
}

func TestFilterBooths_Idempotent(t *testing.T) {
	booths := testBooths()
	crit := DefaultCriteria()
	crit.Industries = []string{"Skilled Trades"}

	first := FilterBooths(booths, crit)
	second := FilterBooths(booths, crit)
	require.Equal(t, first, second, "no hidden mutation of the source catalog")
	require.Equal(t, testBooths(), booths, "input catalog untouched")
}

func TestFilterBooths_ResetAtomicity(t *testing.T) {
	booths := testBooths()
	unfiltered := FilterBooths(booths, DefaultCriteria())

	crit := DefaultCriteria()
	crit.Industries = []string{"Healthcare"}
	crit.PrizesOnly = true
	require.NotEqual(t, unfiltered, FilterBooths(booths, crit))

	// Clearing filters is one atomic reset to the defaults object.
	require.Equal(t, unfiltered, FilterBooths(booths, DefaultCriteria()))
}

func TestSortByTier_StablePlatinumFirst(t *testing.T) {
	got := SortByTier(testBooths())
	require.Equal(t, []string{"care-net", "buildright", "steel-co", "codeworks"}, slugs(got),
		"platinum before standard, source order preserved within a tier")

	// Equal-tier ties must never reorder, run to run.
	require.Equal(t, slugs(got), slugs(SortByTier(testBooths())))
}

func TestFilterSessions(t *testing.T) {
	sessions := []models.Session{
		{Slug: "a", Title: "Powering the Grid", Industry: "Energy"},
		{Slug: "b", Title: "From Class to Code", Industry: "Technology"},
		{Slug: "c", Title: "Careers in Care", Industry: "Healthcare", Speaker: "D. Osei"},
	}

	crit := DefaultCriteria()
	crit.Industries = []string{"technology"}
	got := FilterSessions(sessions, crit)
	require.Len(t, got, 1)
	require.Equal(t, "b", got[0].Slug)

	crit = DefaultCriteria()
	crit.Search = "osei"
	got = FilterSessions(sessions, crit)
	require.Len(t, got, 1)
	require.Equal(t, "c", got[0].Slug)
}
