package users

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/gasupport/internal/common"
	"github.com/dmitrijs2005/gasupport/internal/storage"
)

// Directory exposes the account collection persisted under
// storage.UsersKey, in insertion order.
type Directory struct {
	kv storage.KV
}

// NewDirectory returns a Directory bound to the given store.
func NewDirectory(kv storage.KV) *Directory {
	return &Directory{kv: kv}
}

// List returns all accounts in storage order. On the very first read of an
// empty store it seeds the default administrator and persists it
// immediately, so subsequent reads are stable.
func (d *Directory) List(ctx context.Context) ([]User, error) {
	data, err := d.kv.Get(ctx, storage.UsersKey)
	if err != nil {
		return nil, err
	}
	if data == nil {
		seed := []User{defaultAdmin(time.Now().UTC())}
		encoded, err := json.Marshal(seed)
		if err != nil {
			return nil, fmt.Errorf("failed to encode seeded users: %w", err)
		}
		if err := d.kv.Set(ctx, storage.UsersKey, encoded); err != nil {
			return nil, err
		}
		return seed, nil
	}
	return decode(data)
}

// Authenticate returns the first user whose username matches
// case-insensitively and whose password matches exactly. The failure is
// undifferentiated on purpose: common.ErrorInvalidCredentials regardless of
// which part was wrong.
func (d *Directory) Authenticate(ctx context.Context, username, password string) (*User, error) {
	list, err := d.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range list {
		if strings.EqualFold(u.Username, username) && u.Password == password {
			return &u, nil
		}
	}
	return nil, common.ErrorInvalidCredentials
}

// Add creates an account and persists the full updated collection. It fails
// with common.ErrorDuplicateUser when the username is already taken
// (case-insensitive) and with common.ErrorValidation on empty or too-short
// fields. The duplicate check and the write happen inside one store update.
func (d *Directory) Add(ctx context.Context, username, password string, role Role) (*User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, fmt.Errorf("username and password are required: %w", common.ErrorValidation)
	}
	if len(password) < MinPasswordLen {
		return nil, fmt.Errorf("password must be at least %d characters: %w", MinPasswordLen, common.ErrorValidation)
	}
	if role != RoleAdmin && role != RoleUser {
		return nil, fmt.Errorf("unknown role %q: %w", role, common.ErrorValidation)
	}

	created := User{
		ID:        uuid.NewString(),
		Username:  username,
		Password:  password,
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}

	err := d.kv.Update(ctx, storage.UsersKey, func(current []byte) ([]byte, error) {
		list, err := currentOrSeed(current)
		if err != nil {
			return nil, err
		}
		for _, u := range list {
			if strings.EqualFold(u.Username, username) {
				return nil, common.ErrorDuplicateUser
			}
		}
		return json.Marshal(append(list, created))
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Remove deletes the account with the given id and persists the remainder.
// Removing the default administrator is a silent no-op, as is removing an
// unknown id.
func (d *Directory) Remove(ctx context.Context, id string) error {
	if id == DefaultAdminID {
		return nil
	}
	return d.kv.Update(ctx, storage.UsersKey, func(current []byte) ([]byte, error) {
		list, err := currentOrSeed(current)
		if err != nil {
			return nil, err
		}
		kept := make([]User, 0, len(list))
		for _, u := range list {
			if u.ID != id {
				kept = append(kept, u)
			}
		}
		return json.Marshal(kept)
	})
}

func decode(data []byte) ([]User, error) {
	var list []User
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	return list, nil
}

// currentOrSeed decodes the stored collection, falling back to the seeded
// default administrator when nothing was persisted yet.
func currentOrSeed(current []byte) ([]User, error) {
	if current == nil {
		return []User{defaultAdmin(time.Now().UTC())}, nil
	}
	return decode(current)
}

func defaultAdmin(now time.Time) User {
	return User{
		ID:        DefaultAdminID,
		Username:  defaultAdminUsername,
		Password:  defaultAdminPassword,
		Role:      RoleAdmin,
		CreatedAt: now,
	}
}
