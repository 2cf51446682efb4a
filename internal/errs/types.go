package errs

type ErrorMessage struct {
	Message string
}

func (e *ErrorMessage) Error() string { return e.Message }

type NotFoundError struct {
	ErrorMessage
}

type AlreadyExistsError struct {
	ErrorMessage
}

type ValidationError struct {
	ErrorMessage
}

type UnauthorizedError struct {
	ErrorMessage
}

// DatabaseError wraps a storage failure. Operation names the store call that
// failed so logs stay searchable without leaking SQL to the caller.
type DatabaseError struct {
	ErrorMessage
	Operation string
	Err       error
}

func (e *DatabaseError) Unwrap() error { return e.Err }

// ExternalServiceError covers upstream dependencies (model inference etc.).
// Transient failures map to 503, everything else to 502.
type ExternalServiceError struct {
	ErrorMessage
	Service   string
	Transient bool
	Err       error
}

func (e *ExternalServiceError) Unwrap() error { return e.Err }

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewAlreadyExistsError(message string) *AlreadyExistsError {
	return &AlreadyExistsError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewUnauthorizedError(message string) *UnauthorizedError {
	return &UnauthorizedError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewDatabaseError(operation, message string, err error) *DatabaseError {
	return &DatabaseError{
		ErrorMessage: ErrorMessage{Message: message},
		Operation:    operation,
		Err:          err,
	}
}

func NewExternalServiceError(service, message string, transient bool, err error) *ExternalServiceError {
	return &ExternalServiceError{
		ErrorMessage: ErrorMessage{Message: message},
		Service:      service,
		Transient:    transient,
		Err:          err,
	}
}
