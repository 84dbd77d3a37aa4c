package domain

import (
	"errors"
	"time"
)

var ErrServiceNotFound = errors.New("service not found")

// Service is a bookable offering managed by administrators.
type Service struct {
	ID          int64     `json:"id"`
	Nom         string    `json:"nom"`
	Description string    `json:"description"`
	Prix        float64   `json:"prix"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
