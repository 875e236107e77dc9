package repository

import (
	"context"
	"errors"

	"github.com/chart0729-create/hany1/internal/model"
)

var (
	// ErrNotFound means no record matched the requested id.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate means a unique field is already taken.
	ErrDuplicate = errors.New("already exists")
)

// ListingStore is implemented by both the Postgres repository and the
// flat-file repository; the rest of the app does not care which one it
// talks to.
type ListingStore interface {
	// List returns every listing, newest first (id descending).
	List(ctx context.Context) ([]model.Listing, error)
	// GetByID returns ErrNotFound when the id is absent.
	GetByID(ctx context.Context, id int) (*model.Listing, error)
	// Create assigns the next id (max existing + 1) and persists the
	// listing. The passed struct is updated with the assigned id.
	Create(ctx context.Context, l *model.Listing) error
	// Update overwrites an existing record; ErrNotFound when absent.
	Update(ctx context.Context, l *model.Listing) error
	// Delete removes a record; ErrNotFound when absent.
	Delete(ctx context.Context, id int) error
	// ToggleContract flips the completed flag and returns the updated
	// record; ErrNotFound when absent.
	ToggleContract(ctx context.Context, id int, updatedAt string) (*model.Listing, error)
	// ReplaceAll throws away the current contents and stores the given
	// listings as-is.
	ReplaceAll(ctx context.Context, listings []model.Listing) error
	// SetPhotoFileID records the GridFS file id of a listing's photo.
	SetPhotoFileID(ctx context.Context, id int, fileID string) error
}
