package services

import "errors"

var (
	// ErrDuplicateCheckIn: attendance already recorded for (user, date).
	ErrDuplicateCheckIn = errors.New("already checked in for this date")
	// ErrNoOpenCheckIn: check-out without a prior open check-in that day.
	ErrNoOpenCheckIn = errors.New("no open check-in for this date")
	// ErrOutsideRadius: device position is beyond the office radius.
	ErrOutsideRadius = errors.New("outside office radius")

	ErrNotFound = errors.New("record not found")
)
