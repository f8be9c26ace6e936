package models

import "time"

// Session is a recorded career-talk catalog entry (not a browser session).
type Session struct {
	Slug            string    `json:"slug"`
	Title           string    `json:"title"`
	Industry        string    `json:"industry"`
	Description     string    `json:"description"`
	Speaker         string    `json:"speaker,omitempty"`
	DurationMinutes int       `json:"duration_minutes"`
	VideoURL        string    `json:"-"` // direct URL fallback when S3 is not configured
	VideoKey        string    `json:"-"`
	BoothSlug       string    `json:"booth_slug,omitempty"`
	Position        int       `json:"position"`
	CreatedAt       time.Time `json:"created_at"`
}
