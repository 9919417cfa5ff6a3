package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"studentdir/internal/domain"
)

type fieldSpec struct {
	name   domain.FieldName
	flag   string
	label  string // shown by show
	prompt string // asked during registration
}

var fieldSpecs = []fieldSpec{
	{domain.FieldFirstName, "first-name", "First name", "First name"},
	{domain.FieldLastName, "last-name", "Last name", "Last name"},
	{domain.FieldDateOfBirth, "dob", "DOB", "Date of birth (YYYY-MM-DD)"},
	{domain.FieldGender, "gender", "Gender", "Gender (M/F/O)"},
	{domain.FieldEmail, "email", "Email", "Email"},
	{domain.FieldPhone, "phone", "Phone", "Phone"},
	{domain.FieldAddress, "address", "Address", "Address"},
	{domain.FieldCourse, "course", "Course", "Course (e.g. B.Tech CS)"},
	{domain.FieldYear, "year", "Year", "Semester"},
	{domain.FieldEnrollmentID, "roll-no", "Roll No", "Enrollment ID"},
	{domain.FieldGuardian, "guardian", "Guardian", "Guardian name"},
	{domain.FieldExtraNotes, "extra", "Extra", "Any extra info"},
}

// fieldFlags holds the values of the per-field flags of one command.
type fieldFlags map[domain.FieldName]*string

func bindFieldFlags(cmd *cobra.Command) fieldFlags {
	ff := make(fieldFlags, len(fieldSpecs))
	for _, spec := range fieldSpecs {
		v := new(string)
		cmd.Flags().StringVar(v, spec.flag, "", spec.label)
		ff[spec.name] = v
	}
	return ff
}

func (ff fieldFlags) fields() domain.Fields {
	var f domain.Fields
	for name, v := range ff {
		f.Set(name, *v)
	}
	return f
}

func printProfile(w io.Writer, p domain.Profile) {
	fmt.Fprintf(w, "%-10s: %s\n", "Username", p.Username)
	for _, spec := range fieldSpecs {
		fmt.Fprintf(w, "%-10s: %s\n", spec.label, p.Get(spec.name))
	}
}
