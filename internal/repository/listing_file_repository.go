package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sort"
	"sync"

	"github.com/chart0729-create/hany1/internal/model"
)

// FileListingRepository keeps listings in a single JSON file and does a
// full read-modify-write per mutation. A mutex serializes writers within
// the process; there is no cross-process locking.
type FileListingRepository struct {
	path string
	mu   sync.Mutex
}

func NewFileListingRepository(path string) *FileListingRepository {
	return &FileListingRepository{path: path}
}

var _ ListingStore = (*FileListingRepository)(nil)

// load reads the store file. A missing or unreadable file is logged and
// treated as an empty store so a broken file never takes reads down.
func (r *FileListingRepository) load() []model.Listing {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("[listings] read %s: %v", r.path, err)
		}
		return []model.Listing{}
	}
	var list []model.Listing
	if err := json.Unmarshal(data, &list); err != nil {
		log.Printf("[listings] parse %s: %v", r.path, err)
		return []model.Listing{}
	}
	return list
}

func (r *FileListingRepository) save(list []model.Listing) error {
	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return fmt.Errorf("FileListingRepository.save marshal: %w", err)
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("FileListingRepository.save write: %w", err)
	}
	return nil
}

func (r *FileListingRepository) List(_ context.Context) ([]model.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.load()
	sort.Slice(list, func(i, j int) bool { return list[i].ID > list[j].ID })
	for i := range list {
		list[i].Normalize()
	}
	return list, nil
}

func (r *FileListingRepository) GetByID(_ context.Context, id int) (*model.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, l := range r.load() {
		if l.ID == id {
			l.Normalize()
			return &l, nil
		}
	}
	return nil, ErrNotFound
}

func (r *FileListingRepository) Create(_ context.Context, l *model.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.load()
	maxID := 0
	for _, cur := range list {
		if cur.ID > maxID {
			maxID = cur.ID
		}
	}
	l.ID = maxID + 1
	l.Normalize()
	return r.save(append(list, *l))
}

func (r *FileListingRepository) Update(_ context.Context, l *model.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.load()
	for i := range list {
		if list[i].ID == l.ID {
			l.Normalize()
			list[i] = *l
			return r.save(list)
		}
	}
	return ErrNotFound
}

func (r *FileListingRepository) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.load()
	kept := list[:0]
	for _, l := range list {
		if l.ID != id {
			kept = append(kept, l)
		}
	}
	if len(kept) == len(list) {
		return ErrNotFound
	}
	return r.save(kept)
}

func (r *FileListingRepository) ToggleContract(_ context.Context, id int, updatedAt string) (*model.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.load()
	for i := range list {
		if list[i].ID == id {
			list[i].Completed = !list[i].Completed
			list[i].UpdatedAt = updatedAt
			list[i].Normalize()
			if err := r.save(list); err != nil {
				return nil, err
			}
			updated := list[i]
			return &updated, nil
		}
	}
	return nil, ErrNotFound
}

func (r *FileListingRepository) ReplaceAll(_ context.Context, listings []model.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range listings {
		listings[i].Normalize()
	}
	return r.save(listings)
}

func (r *FileListingRepository) SetPhotoFileID(_ context.Context, id int, fileID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.load()
	for i := range list {
		if list[i].ID == id {
			list[i].PhotoFileID = fileID
			return r.save(list)
		}
	}
	return ErrNotFound
}
