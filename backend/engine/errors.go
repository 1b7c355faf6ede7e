package engine

import "errors"

var (
	// ErrLessonLocked is returned when a user tries to start a lesson whose
	// progress record is still locked. User-correctable, not a server fault.
	ErrLessonLocked = errors.New("lesson is locked")

	// ErrNotFound is returned when the lesson, progress row or profile the
	// operation targets does not exist.
	ErrNotFound = errors.New("record not found")
)
