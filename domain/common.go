package domain

import "errors"

const DateLayout = "2006-01-02"

var (
	MessageNotFound = "the page you requested does not exist"

	ErrInvalidID     = errors.New("invalid id")
	ErrMissingField  = errors.New("value is required")
	ErrMalformedForm = errors.New("form field has an invalid value")
)
