package domain

import (
	interfaces "studentdir/internal/domain/interfaces"
	types "studentdir/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Username  = types.Username
	FieldName = types.FieldName
	Fields    = types.Fields
	Profile   = types.Profile
	Session   = types.Session
)

// Field names re-exported for callers that only import domain.
const (
	FieldFirstName    = types.FieldFirstName
	FieldLastName     = types.FieldLastName
	FieldDateOfBirth  = types.FieldDateOfBirth
	FieldGender       = types.FieldGender
	FieldEmail        = types.FieldEmail
	FieldPhone        = types.FieldPhone
	FieldAddress      = types.FieldAddress
	FieldCourse       = types.FieldCourse
	FieldYear         = types.FieldYear
	FieldEnrollmentID = types.FieldEnrollmentID
	FieldGuardian     = types.FieldGuardian
	FieldExtraNotes   = types.FieldExtraNotes
)

// FieldNames lists every optional profile attribute in display order.
var FieldNames = types.FieldNames

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	ProfileStore     = interfaces.ProfileStore
	CredentialHasher = interfaces.CredentialHasher
	Authenticator    = interfaces.Authenticator
	ProfileService   = interfaces.ProfileService
	SessionService   = interfaces.SessionService
)
