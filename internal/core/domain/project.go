package domain

import (
	"errors"
	"time"
)

var (
	ErrProjectNotFound    = errors.New("project not found")
	ErrProjectTitleExists = errors.New("project title already exists")
	ErrEmptyStatus        = errors.New("status cannot be empty")
)

// Project is a unit of business work. The title is unique and serves as the
// lookup key for all project operations.
type Project struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
