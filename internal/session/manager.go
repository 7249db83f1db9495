// Package session tracks which user, if any, is currently authenticated on
// this client. The whole session is one persisted pointer: the id of the
// current user under storage.SessionKey, overwritten on login and cleared
// on logout.
package session

import (
	"context"

	"github.com/dmitrijs2005/gasupport/internal/storage"
	"github.com/dmitrijs2005/gasupport/internal/users"
)

// Manager resolves and mutates the persisted session pointer.
type Manager struct {
	kv        storage.KV
	directory *users.Directory
}

func NewManager(kv storage.KV, directory *users.Directory) *Manager {
	return &Manager{kv: kv, directory: directory}
}

// Current resolves the persisted session id against the directory. When no
// session is stored it returns (nil, nil). A pointer to a user that no
// longer exists is self-healed: the stale id is cleared and (nil, nil)
// returned.
func (m *Manager) Current(ctx context.Context) (*users.User, error) {
	data, err := m.kv.Get(ctx, storage.SessionKey)
	if err != nil {
		return nil, err
	}
	id := string(data)
	if id == "" {
		return nil, nil
	}

	list, err := m.directory.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range list {
		if u.ID == id {
			return &u, nil
		}
	}

	if err := m.kv.Delete(ctx, storage.SessionKey); err != nil {
		return nil, err
	}
	return nil, nil
}

// Login authenticates against the directory and, on success, persists the
// user's id as the session. On failure the prior session is left untouched
// and the authentication error is returned.
func (m *Manager) Login(ctx context.Context, username, password string) (*users.User, error) {
	u, err := m.directory.Authenticate(ctx, username, password)
	if err != nil {
		return nil, err
	}
	if err := m.kv.Set(ctx, storage.SessionKey, []byte(u.ID)); err != nil {
		return nil, err
	}
	return u, nil
}

// Logout clears the persisted session; the current user becomes none.
func (m *Manager) Logout(ctx context.Context) error {
	return m.kv.Delete(ctx, storage.SessionKey)
}

// IsAdmin reports whether the current user holds the admin role.
func (m *Manager) IsAdmin(ctx context.Context) (bool, error) {
	u, err := m.Current(ctx)
	if err != nil {
		return false, err
	}
	return u != nil && u.Role == users.RoleAdmin, nil
}
