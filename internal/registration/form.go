package registration

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/career-launch/backend/internal/models"
)

// Form field names, as the client submits them.
const (
	FieldFirstName  = "firstName"
	FieldEmail      = "email"
	FieldBoardID    = "boardId"
	FieldSchoolID   = "schoolId"
	FieldClassSize  = "classSize"
	FieldGradeLevel = "gradeLevel"
)

const (
	// PrefsKey names the cookie holding a returning educator's answers.
	PrefsKey = "cl_registration_prefs"
	// PrefsTTL is how long persisted preferences live.
	PrefsTTL = 7 * 24 * time.Hour
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// FieldOrder is the fixed order form fields are applied in. BoardID comes
// before SchoolID so the board-change reset cannot clobber a school
// submitted in the same request.
var FieldOrder = []string{
	FieldFirstName, FieldEmail, FieldBoardID, FieldSchoolID, FieldClassSize, FieldGradeLevel,
}

// Form is the registration state machine for one registration attempt.
// Construction seeds from any persisted educator preference; the only
// durable write happens inside SubmitForm on validated success.
type Form struct {
	store  Store
	sink   Sink
	logger *zap.Logger

	data            models.RegistrationFormData
	errors          map[string]string
	userType        models.UserType
	isReturningUser bool
}

// NewForm creates a form, reading one persisted preference from the store.
// A malformed preference is logged and ignored; the form starts empty.
func NewForm(store Store, sink Sink, logger *zap.Logger) *Form {
	if logger == nil {
		logger = zap.NewNop()
	}
	f := &Form{store: store, sink: sink, logger: logger, errors: make(map[string]string)}

	raw, ok := store.Get(PrefsKey)
	if !ok {
		return f
	}
	var pref models.PersistedPreference
	if err := json.Unmarshal([]byte(raw), &pref); err != nil {
		f.logger.Warn("malformed registration preference ignored", zap.Error(err))
		return f
	}
	f.data = pref.RegistrationFormData
	f.isReturningUser = true
	return f
}

// Data returns the current field values.
func (f *Form) Data() models.RegistrationFormData { return f.data }

// UserType returns the selected registration persona, or "" when unset.
func (f *Form) UserType() models.UserType { return f.userType }

// IsReturningUser reports whether the form was seeded from a persisted
// preference.
func (f *Form) IsReturningUser() bool { return f.isReturningUser }

// Errors returns a copy of the current field errors.
func (f *Form) Errors() map[string]string {
	out := make(map[string]string, len(f.errors))
	for k, v := range f.errors {
		out[k] = v
	}
	return out
}

// SetUserType selects which validation ruleset applies. Already-entered
// field values survive a switch, so the user can go back and forth without
// losing data; existing errors are cleared.
func (f *Form) SetUserType(t models.UserType) {
	f.userType = t
	f.errors = make(map[string]string)
}

// ResetUserType clears the persona selection ("change selection").
func (f *Form) ResetUserType() {
	f.userType = ""
	f.errors = make(map[string]string)
}

// UpdateField writes one field value. Changing the board clears the selected
// school, since a school belongs to exactly one board and a stale selection
// must not survive. Any existing error on the field is cleared immediately;
// it reappears only on the next validation pass.
func (f *Form) UpdateField(name, value string) {
	switch name {
	case FieldFirstName:
		f.data.FirstName = value
	case FieldEmail:
		f.data.Email = value
	case FieldBoardID:
		if value != f.data.BoardID {
			f.data.SchoolID = ""
			delete(f.errors, FieldSchoolID)
		}
		f.data.BoardID = value
	case FieldSchoolID:
		f.data.SchoolID = value
	case FieldClassSize:
		f.data.ClassSize = value
	case FieldGradeLevel:
		f.data.GradeLevel = value
	default:
		return
	}
	delete(f.errors, name)
}

// requiredFields returns the required-field set for the current persona.
// Students only answer board, school and grade.
func (f *Form) requiredFields() []string {
	if f.userType == models.UserTypeStudent {
		return []string{FieldBoardID, FieldSchoolID, FieldGradeLevel}
	}
	return FieldOrder
}

func (f *Form) validateField(name string) (string, bool) {
	switch name {
	case FieldFirstName:
		if len(strings.TrimSpace(f.data.FirstName)) < 2 {
			return "Please enter your first name", false
		}
	case FieldEmail:
		if !emailPattern.MatchString(f.data.Email) {
			return "Please enter a valid email address", false
		}
	case FieldBoardID:
		if f.data.BoardID == "" {
			return "Please select your school board", false
		}
	case FieldSchoolID:
		if f.data.SchoolID == "" {
			return "Please select your school", false
		}
	case FieldClassSize:
		if !models.ValidClassSize(f.data.ClassSize) {
			return "Please select your class size", false
		}
	case FieldGradeLevel:
		if f.data.GradeLevel == "" {
			return "Please select a grade level", false
		}
	}
	return "", true
}

// ValidateForm validates the full required-field set for the current user
// type, replacing the error map wholesale. Returns true iff no errors.
func (f *Form) ValidateForm() bool {
	errs := make(map[string]string)
	for _, name := range f.requiredFields() {
		if msg, ok := f.validateField(name); !ok {
			errs[name] = msg
		}
	}
	f.errors = errs
	return len(errs) == 0
}

// IsFormValid is a fast, non-mutating predicate over the same required-field
// set, used to enable a submit control without triggering error display.
func (f *Form) IsFormValid() bool {
	for _, name := range f.requiredFields() {
		if _, ok := f.validateField(name); !ok {
			return false
		}
	}
	return true
}

// SubmitForm validates and, on success, persists the educator preference
// snapshot (never for students) and emits the submission record. On
// validation failure it returns false with no side effects.
func (f *Form) SubmitForm(ctx context.Context, sessionSlug string) bool {
	if !f.ValidateForm() {
		return false
	}

	if f.userType == models.UserTypeEducator {
		pref := models.PersistedPreference{RegistrationFormData: f.data, SavedAt: time.Now().UTC()}
		raw, err := json.Marshal(pref)
		if err != nil {
			f.logger.Error("marshal registration preference failed", zap.Error(err))
		} else {
			f.store.Set(PrefsKey, string(raw), PrefsTTL)
		}
	}

	sub := f.submission(sessionSlug)
	if f.sink != nil {
		if err := f.sink.Submit(ctx, sub); err != nil {
			// The sink is fire-and-forget; a failed downstream write never
			// blocks the viewer from their video.
			f.logger.Error("submission sink failed", zap.Error(err),
				zap.String("session_slug", sessionSlug), zap.String("user_type", string(f.userType)))
		}
	}
	return true
}

// submission shapes the payload per user type: student submissions omit
// name, email and class size.
func (f *Form) submission(sessionSlug string) models.Submission {
	sub := models.Submission{
		ID:          uuid.New(),
		SessionSlug: sessionSlug,
		UserType:    f.userType,
		BoardID:     f.data.BoardID,
		SchoolID:    f.data.SchoolID,
		GradeLevel:  f.data.GradeLevel,
		CreatedAt:   time.Now().UTC(),
	}
	if f.userType != models.UserTypeStudent {
		sub.FirstName = f.data.FirstName
		sub.Email = f.data.Email
		sub.ClassSize = f.data.ClassSize
	}
	return sub
}
