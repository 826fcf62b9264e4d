package dto

import (
	"github.com/GregMSThompson/userdata-api/pkg/helpers"
)

// Document field names shared by every store driver.
const (
	FieldFirstName = "firstName"
	FieldLastName  = "lastName"
	FieldEmail     = "email"
)

type CreateUserRequest struct {
	FirstName string
	LastName  string
	Email     string
}

// UpdateUserRequest carries a partial update. Absent fields are never written.
type UpdateUserRequest struct {
	ID        string
	FirstName helpers.Optional[string]
	LastName  helpers.Optional[string]
	Email     helpers.Optional[string]
}

// Changes returns the document fields to set: every present, non-empty field.
func (r UpdateUserRequest) Changes() map[string]string {
	changes := make(map[string]string, 3)
	for field, opt := range map[string]helpers.Optional[string]{
		FieldFirstName: r.FirstName,
		FieldLastName:  r.LastName,
		FieldEmail:     r.Email,
	} {
		if v, ok := opt.Get(); ok && v != "" {
			changes[field] = v
		}
	}
	return changes
}
