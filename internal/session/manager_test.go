package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/gasupport/internal/common"
	"github.com/dmitrijs2005/gasupport/internal/storage"
	"github.com/dmitrijs2005/gasupport/internal/users"
)

func setupManager(t *testing.T) (*Manager, *users.Directory, *storage.MemoryKV) {
	t.Helper()
	kv := storage.NewMemoryKV()
	directory := users.NewDirectory(kv)
	return NewManager(kv, directory), directory, kv
}

func TestLogin_Logout_Current(t *testing.T) {
	m, _, _ := setupManager(t)
	ctx := context.Background()

	u, err := m.Current(ctx)
	require.NoError(t, err)
	require.Nil(t, u)

	logged, err := m.Login(ctx, "admin", "admin123")
	require.NoError(t, err)
	require.Equal(t, users.DefaultAdminID, logged.ID)

	u, err = m.Current(ctx)
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, users.DefaultAdminID, u.ID)

	require.NoError(t, m.Logout(ctx))

	u, err = m.Current(ctx)
	require.NoError(t, err)
	require.Nil(t, u)
}

func TestLogin_Failure_LeavesPriorSessionUntouched(t *testing.T) {
	m, _, _ := setupManager(t)
	ctx := context.Background()

	_, err := m.Login(ctx, "admin", "admin123")
	require.NoError(t, err)

	_, err = m.Login(ctx, "admin", "wrong")
	require.ErrorIs(t, err, common.ErrorInvalidCredentials)

	u, err := m.Current(ctx)
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, users.DefaultAdminID, u.ID)
}

func TestLogin_OverwritesPriorSession(t *testing.T) {
	m, directory, _ := setupManager(t)
	ctx := context.Background()

	created, err := directory.Add(ctx, "erik", "s3cret", users.RoleUser)
	require.NoError(t, err)

	_, err = m.Login(ctx, "admin", "admin123")
	require.NoError(t, err)

	_, err = m.Login(ctx, "erik", "s3cret")
	require.NoError(t, err)

	u, err := m.Current(ctx)
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, created.ID, u.ID)
}

func TestCurrent_DanglingID_SelfHeals(t *testing.T) {
	m, directory, kv := setupManager(t)
	ctx := context.Background()

	created, err := directory.Add(ctx, "temp", "abcd", users.RoleUser)
	require.NoError(t, err)

	_, err = m.Login(ctx, "temp", "abcd")
	require.NoError(t, err)

	require.NoError(t, directory.Remove(ctx, created.ID))

	u, err := m.Current(ctx)
	require.NoError(t, err)
	require.Nil(t, u)

	// The stale pointer was cleared, not just ignored.
	data, err := kv.Get(ctx, storage.SessionKey)
	require.NoError(t, err)
	require.Nil(t, data)
}

func TestIsAdmin(t *testing.T) {
	m, directory, _ := setupManager(t)
	ctx := context.Background()

	ok, err := m.IsAdmin(ctx)
	require.NoError(t, err)
	assert.False(t, ok, "no session means not admin")

	_, err = directory.Add(ctx, "plain", "abcd", users.RoleUser)
	require.NoError(t, err)

	_, err = m.Login(ctx, "plain", "abcd")
	require.NoError(t, err)
	ok, err = m.IsAdmin(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = m.Login(ctx, "admin", "admin123")
	require.NoError(t, err)
	ok, err = m.IsAdmin(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
}
