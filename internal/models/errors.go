package models

import "errors"

// Custom errors
var (
	ErrUnknownTeam   = errors.New("team not present in league tables")
	ErrUnknownLeague = errors.New("league not configured")
	ErrNotFound      = errors.New("record not found")
	ErrMalformedData = errors.New("malformed historical record")
)
