package booths

import "github.com/career-launch/backend/internal/models"

// Section identifies a booth page layout section.
type Section string

const (
	SectionHeader        Section = "header"
	SectionVideo         Section = "video"
	SectionResources     Section = "resources"
	SectionStory         Section = "company_story"
	SectionContact       Section = "contact_info"
	SectionEngagement    Section = "engagement_activity"
	SectionSlides        Section = "session_slides"
	SectionSessionBanner Section = "session_banner"
)

// SectionsFor returns the layout sections to render for a booth.
//
// Header, video, resources, company story and contact info render for every
// booth regardless of tier. The tier-gated sections require both a platinum
// tier and non-empty backing content: tier alone never forces a section, and
// content alone never promotes a standard booth into a platinum section.
func SectionsFor(b models.Booth) []Section {
	sections := []Section{
		SectionHeader,
		SectionVideo,
		SectionResources,
		SectionStory,
		SectionContact,
	}
	if b.Tier == models.TierPlatinum {
		if b.EngagementActivity != "" {
			sections = append(sections, SectionEngagement)
		}
		if b.SessionSlides != "" {
			sections = append(sections, SectionSlides)
		}
		if b.AssociatedSessionSlug != "" {
			sections = append(sections, SectionSessionBanner)
		}
	}
	return sections
}

// Grid spans on a 12-column layout. The video section claims the full width
// when it is the lone primary content block and shares with the engagement
// activity otherwise.
const (
	videoSpanFull   = 12
	videoSpanShared = 7
	engagementSpan  = 5
)

// Spans holds the column spans for the primary content row.
type Spans struct {
	Video      int `json:"video"`
	Engagement int `json:"engagement,omitempty"`
}

// SpansFor computes the column spans for a booth's primary content row as a
// function of which sibling sections are simultaneously present.
func SpansFor(b models.Booth) Spans {
	for _, s := range SectionsFor(b) {
		if s == SectionEngagement {
			return Spans{Video: videoSpanShared, Engagement: engagementSpan}
		}
	}
	return Spans{Video: videoSpanFull}
}
