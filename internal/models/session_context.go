package models

import "time"

// SessionContext remembers which booth a viewer came from when they followed
// a booth's link to one of its sessions, so the session page can offer a
// contextual back-link. A stored context is only usable while the viewer is
// on the session it was saved for.
type SessionContext struct {
	SessionSlug  string    `json:"sessionSlug"`
	SessionTitle string    `json:"sessionTitle"`
	BoothSlug    string    `json:"boothSlug"`
	Timestamp    time.Time `json:"timestamp"`
}
