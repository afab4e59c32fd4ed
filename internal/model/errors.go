package model

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrEmptyEntry         = errors.New("entry needs text or encouragement")
	ErrInvalidDateFormat  = errors.New("invalid date format (YYYY-MM-DD)")
	ErrInvalidTimeFormat  = errors.New("invalid time format (HH:MM)")
	ErrEntryCannotBeEmpty = errors.New("entry cannot be empty")
	ErrDeleteFailed       = errors.New("delete failed")
)
