package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is the parent of every lookup miss
	ErrNotFound = errors.New("not found")

	ErrDoctorNotFound = fmt.Errorf("doctor %w", ErrNotFound)
	ErrDateNotFound   = fmt.Errorf("date %w", ErrNotFound)

	// ErrAmbiguousDoctor is returned when a doctor name matches more than one doctor in the document
	ErrAmbiguousDoctor = errors.New("doctor name is not unique")

	// ErrSlotAlreadyBooked is returned when booking a slot that already holds a patient
	ErrSlotAlreadyBooked = errors.New("slot already booked")
)
