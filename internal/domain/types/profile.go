package types

// FieldName is the persisted key of an optional profile attribute.
type FieldName string

const (
	FieldFirstName    FieldName = "first_name"
	FieldLastName     FieldName = "last_name"
	FieldDateOfBirth  FieldName = "dob"
	FieldGender       FieldName = "gender"
	FieldEmail        FieldName = "email"
	FieldPhone        FieldName = "phone"
	FieldAddress      FieldName = "address"
	FieldCourse       FieldName = "course"
	FieldYear         FieldName = "year"
	FieldEnrollmentID FieldName = "roll_no"
	FieldGuardian     FieldName = "guardian"
	FieldExtraNotes   FieldName = "extra"
)

// FieldNames lists every optional attribute in display order.
var FieldNames = []FieldName{
	FieldFirstName,
	FieldLastName,
	FieldDateOfBirth,
	FieldGender,
	FieldEmail,
	FieldPhone,
	FieldAddress,
	FieldCourse,
	FieldYear,
	FieldEnrollmentID,
	FieldGuardian,
	FieldExtraNotes,
}

// Fields holds the optional attributes of a profile. An empty string means
// the attribute is unset.
type Fields struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	DateOfBirth  string `json:"dob"`
	Gender       string `json:"gender"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	Course       string `json:"course"`
	Year         string `json:"year"`
	EnrollmentID string `json:"roll_no"`
	Guardian     string `json:"guardian"`
	ExtraNotes   string `json:"extra"`
}

// Get returns the value stored under name, or "" for an unknown name.
func (f Fields) Get(name FieldName) string {
	if p := f.ref(name); p != nil {
		return *p
	}
	return ""
}

// Set stores v under name. It reports false for an unknown name.
func (f *Fields) Set(name FieldName, v string) bool {
	p := f.ref(name)
	if p == nil {
		return false
	}
	*p = v
	return true
}

// Merge returns f with every non-empty value of update applied, plus the
// names whose stored value actually changed. Blank values in update keep
// the current value.
func (f Fields) Merge(update Fields) (Fields, []FieldName) {
	out := f
	var changed []FieldName
	for _, name := range FieldNames {
		v := update.Get(name)
		if v == "" || v == f.Get(name) {
			continue
		}
		out.Set(name, v)
		changed = append(changed, name)
	}
	return out, changed
}

func (f *Fields) ref(name FieldName) *string {
	switch name {
	case FieldFirstName:
		return &f.FirstName
	case FieldLastName:
		return &f.LastName
	case FieldDateOfBirth:
		return &f.DateOfBirth
	case FieldGender:
		return &f.Gender
	case FieldEmail:
		return &f.Email
	case FieldPhone:
		return &f.Phone
	case FieldAddress:
		return &f.Address
	case FieldCourse:
		return &f.Course
	case FieldYear:
		return &f.Year
	case FieldEnrollmentID:
		return &f.EnrollmentID
	case FieldGuardian:
		return &f.Guardian
	case FieldExtraNotes:
		return &f.ExtraNotes
	}
	return nil
}

// Profile is the persisted record of one student.
type Profile struct {
	Username     Username `json:"username"`
	PasswordHash string   `json:"password_hash"`
	Fields
}

// DisplayName returns the first name, falling back to the username.
func (p Profile) DisplayName() string {
	if p.FirstName != "" {
		return p.FirstName
	}
	return p.Username.String()
}
