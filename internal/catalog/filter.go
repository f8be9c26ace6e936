package catalog

import (
	"sort"
	"strings"

	"github.com/career-launch/backend/internal/models"
)

// Tri-state post-secondary filter values.
const (
	PostSecondaryAll   = "all"
	PostSecondaryTrue  = "true"
	PostSecondaryFalse = "false"
)

// Criteria is the active filter selection. Empty slices, empty search and
// PostSecondary == "all" impose no constraint.
type Criteria struct {
	Industries    []string `json:"industries"`
	Pathways      []string `json:"pathways"`
	PostSecondary string   `json:"post_secondary"`
	PrizesOnly    bool     `json:"prizes_only"`
	Search        string   `json:"search"`
}

// DefaultCriteria is the all-defaults criteria object. Clearing filters
// resets to this in a single step.
func DefaultCriteria() Criteria {
	return Criteria{PostSecondary: PostSecondaryAll}
}

// IsActive reports whether any criterion constrains the result set.
func (c Criteria) IsActive() bool {
	return len(c.Industries) > 0 ||
		len(c.Pathways) > 0 ||
		(c.PostSecondary != "" && c.PostSecondary != PostSecondaryAll) ||
		c.PrizesOnly ||
		strings.TrimSpace(c.Search) != ""
}

// Result pairs a filtered count with the total catalog size. Recomputed on
// every filter pass, never cached across a criteria change.
type Result struct {
	Filtered int `json:"filtered"`
	Total    int `json:"total"`
}

// FilterBooths returns the booths satisfying every active criterion,
// conjunctively, sorted by tier priority. The input slice is never mutated.
func FilterBooths(booths []models.Booth, c Criteria) []models.Booth {
	out := make([]models.Booth, 0, len(booths))
	for _, b := range booths {
		if !matchesBooth(b, c) {
			continue
		}
		out = append(out, b)
	}
	return SortByTier(out)
}

func matchesBooth(b models.Booth, c Criteria) bool {
	if len(c.Industries) > 0 && !containsFold(c.Industries, b.Industry) {
		return false
	}
	if len(c.Pathways) > 0 && !intersectsFold(c.Pathways, b.Pathways) {
		return false
	}
	switch c.PostSecondary {
	case PostSecondaryTrue:
		if !b.PostSecondary {
			return false
		}
	case PostSecondaryFalse:
		if b.PostSecondary {
			return false
		}
	}
	if c.PrizesOnly && !b.HasPrizes {
		return false
	}
	if q := strings.TrimSpace(c.Search); q != "" {
		if !anyContainsFold(q, b.Name, b.Industry, b.Description) {
			return false
		}
	}
	return true
}

// FilterSessions returns the sessions satisfying every active criterion.
// Pathway, post-secondary and prize criteria do not apply to sessions.
func FilterSessions(sessions []models.Session, c Criteria) []models.Session {
	out := make([]models.Session, 0, len(sessions))
	for _, s := range sessions {
		if len(c.Industries) > 0 && !containsFold(c.Industries, s.Industry) {
			continue
		}
		if q := strings.TrimSpace(c.Search); q != "" {
			if !anyContainsFold(q, s.Title, s.Industry, s.Description, s.Speaker) {
				continue
			}
		}
		out = append(out, s)
	}
	return out
}

// tierPriority orders platinum booths ahead of standard ones.
var tierPriority = map[models.Tier]int{
	models.TierPlatinum: 0,
	models.TierStandard: 1,
}

// SortByTier returns booths ordered by tier priority. The sort is stable:
// within a tier, source order is preserved. Unknown tiers sort last.
func SortByTier(booths []models.Booth) []models.Booth {
	out := make([]models.Booth, len(booths))
	copy(out, booths)
	sort.SliceStable(out, func(i, j int) bool {
		return tierRank(out[i].Tier) < tierRank(out[j].Tier)
	})
	return out
}

func tierRank(t models.Tier) int {
	if r, ok := tierPriority[t]; ok {
		return r
	}
	return len(tierPriority)
}

func containsFold(haystack []string, needle string) bool {
	for _, h := range haystack {
		if strings.EqualFold(h, needle) {
			return true
		}
	}
	return false
}

func intersectsFold(wanted, have []string) bool {
	for _, h := range have {
		if containsFold(wanted, h) {
			return true
		}
	}
	return false
}

func anyContainsFold(q string, fields ...string) bool {
	q = strings.ToLower(q)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}
