package booths

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/career-launch/backend/internal/models"
)

var baseSections = []Section{
	SectionHeader, SectionVideo, SectionResources, SectionStory, SectionContact,
}

func TestSectionsFor_StandardTier(t *testing.T) {
	b := models.Booth{Tier: models.TierStandard}
	require.Equal(t, baseSections, SectionsFor(b))

	// Content never promotes a standard booth into a tier-gated section.
	b.EngagementActivity = "Scavenger hunt"
	b.SessionSlides = "slides.pdf"
	b.AssociatedSessionSlug = "some-session"
	require.Equal(t, baseSections, SectionsFor(b))
}

func TestSectionsFor_PlatinumNeedsContentToo(t *testing.T) {
	// Tier alone never forces a section whose backing content is absent.
	b := models.Booth{Tier: models.TierPlatinum}
	require.Equal(t, baseSections, SectionsFor(b))

	b.EngagementActivity = "Grid safety challenge"
	require.Contains(t, SectionsFor(b), SectionEngagement)
	require.NotContains(t, SectionsFor(b), SectionSlides)

	b.SessionSlides = "slides.pdf"
	b.AssociatedSessionSlug = "powering-the-grid"
	got := SectionsFor(b)
	require.Contains(t, got, SectionSlides)
	require.Contains(t, got, SectionSessionBanner)
}

func TestSpansFor_WiderWhenAlone(t *testing.T) {
	// The video claims the full row when it is the lone primary block.
	alone := models.Booth{Tier: models.TierPlatinum}
	require.Equal(t, Spans{Video: 12}, SpansFor(alone))

	// And a narrower share when an engagement activity renders beside it.
	sharing := models.Booth{Tier: models.TierPlatinum, EngagementActivity: "Demo"}
	spans := SpansFor(sharing)
	require.Equal(t, Spans{Video: 7, Engagement: 5}, spans)
	require.Less(t, spans.Video, 12)

	// A standard booth with engagement content still gets the full width:
	// the section itself is not eligible to render.
	standard := models.Booth{Tier: models.TierStandard, EngagementActivity: "Demo"}
	require.Equal(t, Spans{Video: 12}, SpansFor(standard))
}
