package models

// Resource status values.
const (
	StatusActive   = "active"
	StatusDisabled = "disabled"
)
