//go:build unit

package user_test

import (
	"testing"

	"table-booking/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRole(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    user.Role
		wantErr bool
	}{
		{name: "user role", input: "user", want: user.RoleUser},
		{name: "admin role", input: "admin", want: user.RoleAdmin},
		{name: "unknown role rejected", input: "operator", wantErr: true},
		{name: "empty role rejected", input: "", wantErr: true},
		{name: "case sensitive", input: "Admin", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := user.NewRole(tc.input)
			if tc.wantErr {
				require.ErrorIs(t, err, user.ErrInvalidRole)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, actual)
		})
	}
}

func TestActor(t *testing.T) {
	ownerID := uuid.New()
	otherID := uuid.New()

	t.Run("admin flag derived from role", func(t *testing.T) {
		assert.True(t, user.NewActor(ownerID, user.RoleAdmin).IsAdmin)
		assert.False(t, user.NewActor(ownerID, user.RoleUser).IsAdmin)
	})

	t.Run("owner can access own record", func(t *testing.T) {
		actor := user.NewActor(ownerID, user.RoleUser)
		assert.True(t, actor.Owns(ownerID))
		assert.True(t, actor.CanAccess(ownerID))
		assert.False(t, actor.CanAccess(otherID))
	})

	t.Run("admin can access any record", func(t *testing.T) {
		actor := user.NewActor(ownerID, user.RoleAdmin)
		assert.False(t, actor.Owns(otherID))
		assert.True(t, actor.CanAccess(otherID))
	})

	t.Run("anonymous actor owns nothing", func(t *testing.T) {
		var actor user.Actor
		assert.False(t, actor.IsAuthenticated())
		assert.False(t, actor.Owns(uuid.Nil))
	})
}
