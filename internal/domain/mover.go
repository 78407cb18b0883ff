package domain

import (
	"errors"

	"github.com/google/uuid"
)

// ErrMoverNotFound is returned when a mover record, or its availability,
// does not exist.
var ErrMoverNotFound = errors.New("mover not found")

// Mover is the worker fulfilling jobs on a weekly schedule.
type Mover struct {
	MoverID      uuid.UUID
	Name         string
	Availability Availability
}
