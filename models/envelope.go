package models

import "encoding/json"

// Envelope is the backend's uniform response wrapper. Data stays raw until
// the caller knows the concrete type to decode into.
type Envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Meta    *Meta           `json:"meta,omitempty"`
}

// Meta carries pagination metadata on list endpoints that support it
type Meta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}
