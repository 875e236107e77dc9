package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/chart0729-create/hany1/internal/model"
)

// AdminID is the reserved nickname of the seeded administrator account.
const AdminID = "admin"

// UserRepository keeps accounts in a JSON file, nickname as primary key.
type UserRepository struct {
	path string
	mu   sync.Mutex
}

func NewUserRepository(path string) *UserRepository {
	return &UserRepository{path: path}
}

func (r *UserRepository) load() []model.User {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("[users] read %s: %v", r.path, err)
		}
		return []model.User{}
	}
	var users []model.User
	if err := json.Unmarshal(data, &users); err != nil {
		log.Printf("[users] parse %s: %v", r.path, err)
		return []model.User{}
	}
	return users
}

func (r *UserRepository) save(users []model.User) error {
	data, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return fmt.Errorf("UserRepository.save marshal: %w", err)
	}
	if err := os.WriteFile(r.path, data, 0o600); err != nil {
		return fmt.Errorf("UserRepository.save write: %w", err)
	}
	return nil
}

// SeedAdmin makes sure the "admin" account exists. Existing records are
// left alone, so a changed default password never overwrites a live one.
func (r *UserRepository) SeedAdmin(_ context.Context, password string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	users := r.load()
	for _, u := range users {
		if u.ID == AdminID {
			return nil
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("UserRepository.SeedAdmin hash: %w", err)
	}
	admin := model.User{
		ID:        AdminID,
		Password:  string(hash),
		Role:      model.RoleAdmin,
		CreatedAt: time.Now().Format(time.RFC3339),
	}
	return r.save(append(users, admin))
}

// Create stores a new account. ErrDuplicate when the nickname or a
// non-empty phone number is already registered.
func (r *UserRepository) Create(_ context.Context, u *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	users := r.load()
	for _, cur := range users {
		if cur.ID == u.ID {
			return ErrDuplicate
		}
		if u.Phone != "" && cur.Phone == u.Phone {
			return ErrDuplicate
		}
	}
	return r.save(append(users, *u))
}

func (r *UserRepository) FindByID(_ context.Context, id string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.load() {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (r *UserRepository) List(_ context.Context) ([]model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.load(), nil
}
