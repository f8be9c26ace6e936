package catalog

import (
	"strings"

	"github.com/career-launch/backend/internal/models"
)

// Category buckets sessions by subject for the grouped browse view.
// Membership is keyword-based, not an exact tag match: a session's industry
// string is matched case-insensitively against each keyword, and the first
// category whose keyword set matches wins. The slice order is the declared
// iteration order; a session never appears in two buckets.
type Category struct {
	Name     string   `json:"name"`
	Keywords []string `json:"-"`
}

// SessionCategories is the fixed, ordered category list. An empty keyword
// set is the catch-all and must stay last.
var SessionCategories = []Category{
	{Name: "Skilled Trades", Keywords: []string{"trade", "construction", "electric", "plumbing", "carpentry", "welding"}},
	{Name: "Healthcare", Keywords: []string{"health", "medicine", "medical", "nursing", "dental"}},
	{Name: "Technology", Keywords: []string{"tech", "software", "digital", "comput", "gaming"}},
	{Name: "Business & Finance", Keywords: []string{"business", "finance", "account", "entrepreneur", "marketing"}},
	{Name: "Arts & Media", Keywords: []string{"arts", "media", "design", "creative", "film", "music"}},
	{Name: "Science & Engineering", Keywords: []string{"science", "engineer", "research", "environment", "agriculture"}},
	{Name: "Public Service", Keywords: []string{"public", "government", "police", "fire", "military", "education", "law"}},
	{Name: "Other"},
}

// CategoryFor returns the name of the first category whose keyword set
// matches the industry string, using case-insensitive substring matching.
func CategoryFor(industry string) string {
	lower := strings.ToLower(industry)
	for _, cat := range SessionCategories {
		if len(cat.Keywords) == 0 {
			return cat.Name
		}
		for _, kw := range cat.Keywords {
			if strings.Contains(lower, kw) {
				return cat.Name
			}
		}
	}
	return SessionCategories[len(SessionCategories)-1].Name
}

// CategoryGroup is one bucket of the grouped sessions view.
type CategoryGroup struct {
	Category string           `json:"category"`
	Sessions []models.Session `json:"sessions"`
	Count    int              `json:"count"`
}

// GroupSessionsByCategory buckets sessions in declared category order,
// first match wins. Categories with no sessions are omitted.
func GroupSessionsByCategory(sessions []models.Session) []CategoryGroup {
	buckets := make(map[string][]models.Session, len(SessionCategories))
	for _, s := range sessions {
		name := CategoryFor(s.Industry)
		buckets[name] = append(buckets[name], s)
	}
	out := make([]CategoryGroup, 0, len(SessionCategories))
	for _, cat := range SessionCategories {
		members := buckets[cat.Name]
		if len(members) == 0 {
			continue
		}
		out = append(out, CategoryGroup{Category: cat.Name, Sessions: members, Count: len(members)})
	}
	return out
}
