package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/chart0729-create/hany1/internal/model"
)

// ContactRepository keeps the single contact-info record in a JSON file.
type ContactRepository struct {
	path string
	mu   sync.Mutex
}

func NewContactRepository(path string) *ContactRepository {
	return &ContactRepository{path: path}
}

// Get returns the stored record, or the zero record when the file is
// missing or unreadable.
func (r *ContactRepository) Get(_ context.Context) (model.ContactInfo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var info model.ContactInfo
	data, err := os.ReadFile(r.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("[contact] read %s: %v", r.path, err)
		}
		return info, nil
	}
	if err := json.Unmarshal(data, &info); err != nil {
		log.Printf("[contact] parse %s: %v", r.path, err)
		return model.ContactInfo{}, nil
	}
	return info, nil
}

// Set replaces the record wholesale; there is no partial merge.
func (r *ContactRepository) Set(_ context.Context, info model.ContactInfo) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return fmt.Errorf("ContactRepository.Set marshal: %w", err)
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("ContactRepository.Set write: %w", err)
	}
	return nil
}
