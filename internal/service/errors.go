package service

import "errors"

var (
	ErrSlotCapacityExceeded     = errors.New("user slot capacity reached")
	ErrCannotDeletePrimaryAdmin = errors.New("the primary admin user slot cannot be deleted")
	ErrMinimumOneSlotRequired   = errors.New("at least one user slot is required")
	ErrSetupAlreadyComplete     = errors.New("setup has already been completed")
	ErrSetupIncomplete          = errors.New("setup has not been completed")
	ErrNotFound                 = errors.New("record not found")
	ErrInvalidSettings          = errors.New("invalid settings")
	ErrInvalidRecord            = errors.New("invalid record")

	// ErrNotSaved is returned when the backing store refused a write. The
	// failure itself has already been logged by the record store.
	ErrNotSaved = errors.New("change could not be saved")
)
