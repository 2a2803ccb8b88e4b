package shared

import "fmt"

// DomainError is the base error type for all domain errors
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func NewDomainError(message string) *DomainError {
	return &DomainError{Message: message}
}

// Input validation errors

type InvalidInputError struct {
	*DomainError
	Field  string
	Reason string
}

func NewInvalidInputError(field, reason string) *InvalidInputError {
	return &InvalidInputError{
		DomainError: &DomainError{Message: fmt.Sprintf("invalid %s: %s", field, reason)},
		Field:       field,
		Reason:      reason,
	}
}

// Driver errors

type DriverNotFoundError struct {
	*DomainError
	DriverID uint
}

func NewDriverNotFoundError(driverID uint) *DriverNotFoundError {
	return &DriverNotFoundError{
		DomainError: &DomainError{Message: fmt.Sprintf("driver %d not found", driverID)},
		DriverID:    driverID,
	}
}

// Scheduling errors

type ScheduleError struct {
	*DomainError
}

func NewScheduleError(message string) *ScheduleError {
	return &ScheduleError{DomainError: &DomainError{Message: message}}
}

// Persistence errors

type PersistenceError struct {
	*DomainError
	Op  string
	Err error
}

func NewPersistenceError(op string, err error) *PersistenceError {
	return &PersistenceError{
		DomainError: &DomainError{Message: fmt.Sprintf("%s: %v", op, err)},
		Op:          op,
		Err:         err,
	}
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
