package memory

import (
	"context"
	"strings"

	"github.com/nexashop/backend/internal/domain/identity"
)

// UserRepository is the in-memory identity.UserRepository.
type UserRepository struct {
	table *table[identity.User, *identity.User]
}

// NewUserRepository creates an empty in-memory user repository
func NewUserRepository() *UserRepository {
	return &UserRepository{table: newTable[identity.User]()}
}

// FindByID finds a user by ID
func (r *UserRepository) FindByID(_ context.Context, id int64) (*identity.User, error) {
	return r.table.get(id)
}

// FindByUsername finds a user by username, case-insensitively
func (r *UserRepository) FindByUsername(_ context.Context, username string) (*identity.User, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	return r.table.first(func(u *identity.User) bool { return u.Username == username })
}

// FindByEmail finds a user by email, case-insensitively
func (r *UserRepository) FindByEmail(_ context.Context, email string) (*identity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	return r.table.first(func(u *identity.User) bool { return u.Email == email })
}

// Insert stores a user and assigns its ID
func (r *UserRepository) Insert(_ context.Context, user *identity.User) error {
	r.table.insert(user)
	return nil
}

// Update replaces a stored user
func (r *UserRepository) Update(_ context.Context, user *identity.User) error {
	return r.table.update(user)
}

// Delete removes a user
func (r *UserRepository) Delete(_ context.Context, id int64) error {
	return r.table.delete(id)
}

var _ identity.UserRepository = (*UserRepository)(nil)
