package models

import "time"

// Tier is a booth's sponsorship level. It gates eligibility for certain
// layout sections but never forces a section whose content is absent.
type Tier string

const (
	TierPlatinum Tier = "platinum"
	TierStandard Tier = "standard"
)

// Booth is a sponsor's content page within the expo directory.
type Booth struct {
	Slug                  string    `json:"slug"`
	Name                  string    `json:"name"`
	Industry              string    `json:"industry"`
	Pathways              []string  `json:"pathways"`
	Tier                  Tier      `json:"tier"`
	PostSecondary         bool      `json:"post_secondary"`
	HasPrizes             bool      `json:"has_prizes"`
	Description           string    `json:"description"`
	VideoURL              string    `json:"video_url,omitempty"`
	VideoKey              string    `json:"-"` // S3 object key; playback goes through presigned URLs
	EngagementActivity    string    `json:"engagement_activity,omitempty"`
	SessionSlides         string    `json:"session_slides,omitempty"`
	AssociatedSessionSlug string    `json:"associated_session_slug,omitempty"`
	ContactEmail          string    `json:"contact_email,omitempty"`
	Website               string    `json:"website,omitempty"`
	Position              int       `json:"position"`
	CreatedAt             time.Time `json:"created_at"`
}
