package models

import "time"

// Service is a managed service record. Plain CRUD data, no auth semantics.
type Service struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
}
