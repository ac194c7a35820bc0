package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("creates customer with hashed password", func(t *testing.T) {
		user, err := NewUser("alice", "alice@example.com", "secret123", "Alice")
		require.NoError(t, err)
		require.NotNil(t, user)

		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, "alice@example.com", user.Email)
		assert.Equal(t, RoleCustomer, user.Role)
		assert.NotEqual(t, "secret123", user.PasswordHash)
		assert.True(t, user.VerifyPassword("secret123"))
		assert.False(t, user.VerifyPassword("wrong"))
	})

	t.Run("lowercases username and email", func(t *testing.T) {
		user, err := NewUser("Alice", "Alice@Example.COM", "secret123", "Alice")
		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, "alice@example.com", user.Email)
	})

	t.Run("fails with short username", func(t *testing.T) {
		_, err := NewUser("ab", "a@b.com", "secret123", "")
		require.Error(t, err)
	})

	t.Run("fails with invalid email", func(t *testing.T) {
		_, err := NewUser("alice", "not-an-email", "secret123", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Email format")
	})

	t.Run("fails with short password", func(t *testing.T) {
		_, err := NewUser("alice", "a@b.com", "12345", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least 6 characters")
	})
}

func TestNewAdmin(t *testing.T) {
	admin, err := NewAdmin("admin", "admin@nexashop.com", "admin123", "Admin")
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, admin.Role)
	assert.True(t, admin.IsAdmin())
}

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole("customer"))
	assert.True(t, ValidRole("admin"))
	assert.False(t, ValidRole("superuser"))
	assert.False(t, ValidRole(""))
}
