package services

import "errors"

var (
	ErrNotFound       = errors.New("record not found")
	ErrParentNotFound = errors.New("parent record not found")
	ErrHasDependents  = errors.New("record still has dependent records")
)
