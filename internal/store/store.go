// Package store holds the canonical profile collection.
package store

import (
	"context"
	"errors"
	"time"

	"PROFILE_EXPLORER_BACK-END/internal/models"
)

// ErrNotFound is returned when no profile has the requested identifier.
var ErrNotFound = errors.New("profile not found")

// Op names a store operation for latency and observation purposes.
type Op string

const (
	OpList   Op = "list"
	OpGet    Op = "get"
	OpCreate Op = "create"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
)

// DeleteResult acknowledges a successful delete.
type DeleteResult struct {
	Success bool `json:"success"`
}

// Store is the CRUD contract over profile records. Every call blocks for the
// configured latency before it resolves.
type Store interface {
	List(ctx context.Context) ([]models.Profile, error)
	GetByID(ctx context.Context, id int) (models.Profile, error)
	Create(ctx context.Context, p models.Profile) (models.Profile, error)
	Update(ctx context.Context, id int, patch models.ProfilePatch) (models.Profile, error)
	Delete(ctx context.Context, id int) (DeleteResult, error)
}

// Observer is notified after each operation completes.
type Observer interface {
	ObserveOp(op Op, took time.Duration, err error)
}

type nopObserver struct{}

func (nopObserver) ObserveOp(Op, time.Duration, error) {}
