package models

import "errors"

var (
	ErrEmptyText    = errors.New("text must not be empty")
	ErrEmptyField   = errors.New("required field is empty")
	ErrUnknownGroup = errors.New("no such group")
)
