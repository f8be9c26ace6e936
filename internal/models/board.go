package models

// Board is a school board selectable in the registration form.
type Board struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// School belongs to exactly one board; the registration form clears a
// selected school whenever the board selection changes.
type School struct {
	ID      string `json:"id"`
	BoardID string `json:"board_id"`
	Name    string `json:"name"`
}
