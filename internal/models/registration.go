package models

import (
	"time"

	"github.com/google/uuid"
)

// UserType is the registration persona. It selects the required-field set
// and whether answers are persisted for future visits.
type UserType string

const (
	UserTypeEducator UserType = "educator"
	UserTypeStudent  UserType = "student"
)

// ClassSize buckets for educator registrations.
type ClassSize string

const (
	ClassSizeSmall ClassSize = "less-than-25"
	ClassSizeMid   ClassSize = "25-to-35"
	ClassSizeLarge ClassSize = "large-group"
)

// ValidClassSize reports whether s is one of the known class-size buckets.
func ValidClassSize(s string) bool {
	switch ClassSize(s) {
	case ClassSizeSmall, ClassSizeMid, ClassSizeLarge:
		return true
	}
	return false
}

// RegistrationFormData holds one registration attempt's field values.
type RegistrationFormData struct {
	FirstName  string `json:"firstName"`
	Email      string `json:"email"`
	BoardID    string `json:"boardId"`
	SchoolID   string `json:"schoolId"`
	ClassSize  string `json:"classSize"`
	GradeLevel string `json:"gradeLevel"`
}

// PersistedPreference is the cookie payload holding a returning educator's
// prior answers. Never written for student registrations.
type PersistedPreference struct {
	RegistrationFormData
	SavedAt time.Time `json:"savedAt"`
}

// Submission is a finished, validated registration submission. Student
// submissions omit name, email and class size.
type Submission struct {
	ID          uuid.UUID  `json:"id"`
	SessionSlug string     `json:"session_slug"`
	UserType    UserType   `json:"user_type"`
	FirstName   string     `json:"first_name,omitempty"`
	Email       string     `json:"email,omitempty"`
	BoardID     string     `json:"board_id"`
	SchoolID    string     `json:"school_id"`
	ClassSize   string     `json:"class_size,omitempty"`
	GradeLevel  string     `json:"grade_level"`
	ConfirmedAt *time.Time `json:"confirmed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}
