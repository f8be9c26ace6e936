package registration

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/career-launch/backend/internal/models"
)

// recordSink captures submissions for assertions.
type recordSink struct {
	subs []models.Submission
	err  error
}

func (s *recordSink) Submit(_ context.Context, sub models.Submission) error {
	s.subs = append(s.subs, sub)
	return s.err
}

func validEducatorForm(store Store, sink Sink) *Form {
	f := NewForm(store, sink, nil)
	f.SetUserType(models.UserTypeEducator)
	f.UpdateField(FieldFirstName, "Jane")
	f.UpdateField(FieldEmail, "jane@board.ca")
	f.UpdateField(FieldBoardID, "tdsb")
	f.UpdateField(FieldSchoolID, "cts")
	f.UpdateField(FieldClassSize, string(models.ClassSizeMid))
	f.UpdateField(FieldGradeLevel, "10")
	return f
}

func TestUpdateField_BoardChangeClearsSchool(t *testing.T) {
	f := NewForm(NewMemStore(), nil, nil)
	f.SetUserType(models.UserTypeStudent)

	f.UpdateField(FieldBoardID, "tdsb")
	f.UpdateField(FieldSchoolID, "cts")
	require.Equal(t, "cts", f.Data().SchoolID)

	f.UpdateField(FieldBoardID, "peel")
	require.Empty(t, f.Data().SchoolID, "school from another board must not survive a board change")

	// Re-writing the same board keeps the school.
	f.UpdateField(FieldSchoolID, "tlk")
	f.UpdateField(FieldBoardID, "peel")
	require.Equal(t, "tlk", f.Data().SchoolID)
}

func TestValidateForm_GatingByUserType(t *testing.T) {
	apply := func(f *Form) {
		f.UpdateField(FieldBoardID, "tdsb")
		f.UpdateField(FieldSchoolID, "cts")
		f.UpdateField(FieldGradeLevel, "9")
	}

	student := NewForm(NewMemStore(), nil, nil)
	student.SetUserType(models.UserTypeStudent)
	apply(student)
	require.True(t, student.ValidateForm(), "students skip name, email and class size entirely")
	require.Empty(t, student.Errors())

	educator := NewForm(NewMemStore(), nil, nil)
	educator.SetUserType(models.UserTypeEducator)
	apply(educator)
	require.False(t, educator.ValidateForm(), "the same input must fail for an educator")
	errs := educator.Errors()
	require.Contains(t, errs, FieldFirstName)
	require.Contains(t, errs, FieldEmail)
	require.Contains(t, errs, FieldClassSize)
}

func TestValidateForm_FieldRules(t *testing.T) {
	tests := []struct {
		name  string
		field string
		value string
		valid bool
	}{
		{"first name too short", FieldFirstName, " J ", false},
		{"first name ok", FieldFirstName, "Jo", true},
		{"email missing domain", FieldEmail, "jane@board", false},
		{"email with spaces", FieldEmail, "ja ne@board.ca", false},
		{"email ok", FieldEmail, "jane@board.ca", true},
		{"class size unknown bucket", FieldClassSize, "tons", false},
		{"class size ok", FieldClassSize, "large-group", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validEducatorForm(NewMemStore(), nil)
			f.UpdateField(tt.field, tt.value)
			require.Equal(t, tt.valid, f.ValidateForm())
			_, hasErr := f.Errors()[tt.field]
			require.Equal(t, !tt.valid, hasErr)
		})
	}
}

func TestUpdateField_ClearsErrorOptimistically(t *testing.T) {
	f := NewForm(NewMemStore(), nil, nil)
	f.SetUserType(models.UserTypeEducator)
	require.False(t, f.ValidateForm())
	require.Contains(t, f.Errors(), FieldEmail)

	// Typing anything clears the error immediately; it only comes back on
	// the next validation pass.
	f.UpdateField(FieldEmail, "not-an-email")
	require.NotContains(t, f.Errors(), FieldEmail)
	require.False(t, f.ValidateForm())
	require.Contains(t, f.Errors(), FieldEmail)
}

func TestSetUserType_KeepsDataClearsErrors(t *testing.T) {
	f := NewForm(NewMemStore(), nil, nil)
	f.SetUserType(models.UserTypeEducator)
	f.UpdateField(FieldFirstName, "Jane")
	require.False(t, f.ValidateForm())
	require.NotEmpty(t, f.Errors())

	f.SetUserType(models.UserTypeStudent)
	require.Empty(t, f.Errors(), "switching persona clears errors")
	require.Equal(t, "Jane", f.Data().FirstName, "entered values survive the switch")

	f.ResetUserType()
	require.Empty(t, string(f.UserType()))
	require.Equal(t, "Jane", f.Data().FirstName)
}

func TestIsFormValid_DoesNotMutateErrors(t *testing.T) {
	f := NewForm(NewMemStore(), nil, nil)
	f.SetUserType(models.UserTypeEducator)
	require.False(t, f.IsFormValid())
	require.Empty(t, f.Errors(), "the fast predicate must not trigger error display")
}

func TestSubmitForm_EducatorWritesPreference(t *testing.T) {
	store := NewMemStore()
	sink := &recordSink{}
	f := validEducatorForm(store, sink)

	require.True(t, f.SubmitForm(context.Background(), "powering-the-grid"))

	raw, ok := store.Get(PrefsKey)
	require.True(t, ok, "educator submit persists a preference snapshot")
	require.Equal(t, PrefsTTL, store.TTLs[PrefsKey])

	var pref models.PersistedPreference
	require.NoError(t, json.Unmarshal([]byte(raw), &pref))
	require.Equal(t, f.Data(), pref.RegistrationFormData)
	require.False(t, pref.SavedAt.IsZero())

	require.Len(t, sink.subs, 1)
	sub := sink.subs[0]
	require.Equal(t, "powering-the-grid", sub.SessionSlug)
	require.Equal(t, models.UserTypeEducator, sub.UserType)
	require.Equal(t, "Jane", sub.FirstName)
	require.Equal(t, "jane@board.ca", sub.Email)
	require.NotEqual(t, "", sub.ID.String())
}

func TestSubmitForm_StudentNeverWritesPreference(t *testing.T) {
	store := NewMemStore()
	sink := &recordSink{}
	f := NewForm(store, sink, nil)
	f.SetUserType(models.UserTypeStudent)
	f.UpdateField(FieldBoardID, "tdsb")
	f.UpdateField(FieldSchoolID, "cts")
	f.UpdateField(FieldGradeLevel, "11")

	require.True(t, f.SubmitForm(context.Background(), "care-careers"))

	_, ok := store.Get(PrefsKey)
	require.False(t, ok, "student submissions must never touch the preference store")
	require.Empty(t, store.Values)

	// Student payloads omit name, email and class size.
	require.Len(t, sink.subs, 1)
	sub := sink.subs[0]
	require.Empty(t, sub.FirstName)
	require.Empty(t, sub.Email)
	require.Empty(t, sub.ClassSize)
	require.Equal(t, "tdsb", sub.BoardID)
	require.Equal(t, "cts", sub.SchoolID)
	require.Equal(t, "11", sub.GradeLevel)
}

func TestSubmitForm_InvalidHasNoSideEffects(t *testing.T) {
	store := NewMemStore()
	sink := &recordSink{}
	f := NewForm(store, sink, nil)
	f.SetUserType(models.UserTypeEducator)
	f.UpdateField(FieldFirstName, "Jane")

	require.False(t, f.SubmitForm(context.Background(), "powering-the-grid"))
	require.Empty(t, store.Values, "no durable write before validated success")
	require.Empty(t, sink.subs)
	require.NotEmpty(t, f.Errors())
}

func TestNewForm_ReturningEducatorSeedsFromPreference(t *testing.T) {
	seeded := models.RegistrationFormData{
		FirstName:  "Jane",
		Email:      "jane@board.ca",
		BoardID:    "tdsb",
		SchoolID:   "cts",
		ClassSize:  "25-to-35",
		GradeLevel: "10",
	}
	raw, err := json.Marshal(models.PersistedPreference{
		RegistrationFormData: seeded,
		SavedAt:              time.Now().UTC(),
	})
	require.NoError(t, err)

	store := NewMemStore()
	store.Set(PrefsKey, string(raw), PrefsTTL)

	f := NewForm(store, nil, nil)
	require.True(t, f.IsReturningUser())
	require.Equal(t, seeded, f.Data())
}

func TestNewForm_MalformedPreferenceIgnored(t *testing.T) {
	store := NewMemStore()
	store.Set(PrefsKey, "{not json", PrefsTTL)

	f := NewForm(store, nil, nil)
	require.False(t, f.IsReturningUser())
	require.Equal(t, models.RegistrationFormData{}, f.Data(), "form starts empty, not crashed")

	// The cookie is left alone; the next successful submission overwrites it.
	_, ok := store.Get(PrefsKey)
	require.True(t, ok)
}

func TestSubmitForm_SinkFailureStillSucceeds(t *testing.T) {
	sink := &recordSink{err: context.DeadlineExceeded}
	f := validEducatorForm(NewMemStore(), sink)
	require.True(t, f.SubmitForm(context.Background(), "powering-the-grid"),
		"a failed downstream write never blocks the viewer")
}
