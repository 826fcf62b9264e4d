package errs

type ErrorMessage struct {
	Message string
}

func (e *ErrorMessage) Error() string { return e.Message }

type NotFoundError struct {
	ErrorMessage
}

type ValidationError struct {
	ErrorMessage
}

// ConnectionError means the document store could not be reached or the
// connection settings are unusable.
type ConnectionError struct {
	ErrorMessage
	Err error
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// InsertError is a failed create at the service boundary.
type InsertError struct {
	ErrorMessage
	Err error
}

func (e *InsertError) Unwrap() error { return e.Err }

// UpdateError is a failed update at the service boundary.
type UpdateError struct {
	ErrorMessage
	Err error
}

func (e *UpdateError) Unwrap() error { return e.Err }

// DatabaseError is a raw store failure; Operation is one of create, read,
// update or delete.
type DatabaseError struct {
	ErrorMessage
	Operation string
	Err       error
}

func (e *DatabaseError) Unwrap() error { return e.Err }

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewConnectionError(message string, err error) *ConnectionError {
	return &ConnectionError{
		ErrorMessage: ErrorMessage{Message: message},
		Err:          err,
	}
}

func NewInsertError(err error) *InsertError {
	return &InsertError{
		ErrorMessage: ErrorMessage{Message: "Error inserting user data"},
		Err:          err,
	}
}

func NewUpdateError(err error) *UpdateError {
	return &UpdateError{
		ErrorMessage: ErrorMessage{Message: "Error updating user data"},
		Err:          err,
	}
}

func NewDatabaseError(operation, message string, err error) *DatabaseError {
	return &DatabaseError{
		ErrorMessage: ErrorMessage{Message: message},
		Operation:    operation,
		Err:          err,
	}
}
