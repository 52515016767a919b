package valueobject_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workbank/loan-service/internal/domain/valueobject"
)

func TestNewRole(t *testing.T) {
	t.Run("accepts known roles", func(t *testing.T) {
		admin, err := valueobject.NewRole("ADMIN")
		require.NoError(t, err)
		assert.True(t, admin.Equal(valueobject.RoleAdmin))

		customer, err := valueobject.NewRole("CUSTOMER")
		require.NoError(t, err)
		assert.Equal(t, "CUSTOMER", customer.String())
	})

	t.Run("rejects unknown and lowercased roles", func(t *testing.T) {
		for _, raw := range []string{"", "admin", "SUPPORT"} {
			_, err := valueobject.NewRole(raw)
			assert.Error(t, err, "role %q", raw)
		}
	})

	t.Run("zero value is detectable", func(t *testing.T) {
		assert.True(t, valueobject.Role{}.IsZero())
		assert.False(t, valueobject.RoleAdmin.IsZero())
	})
}
