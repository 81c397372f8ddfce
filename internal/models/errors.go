package models

import "errors"

// Custom errors
var (
	ErrUnresolvedReference = errors.New("record cannot be joined to a known team or fixture")
	ErrNoData              = errors.New("no historical data available")
	ErrEmptySnapshot       = errors.New("snapshot contains no records")
)
