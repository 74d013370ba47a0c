// Package session persists the small pieces of browser-session state the
// storefront keeps between visits: the admin's token and profile, the
// signed-in user's token and profile, and an artwork draft parked while the
// admin re-authenticates. Everything is a key/value row so the store doubles
// as a generic slot table.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/yuviart/storefront/internal/models"
)

const (
	slotAdminToken     = "admin_token"
	slotAdminUser      = "admin_user"
	slotAuthToken      = "auth_token"
	slotUser           = "user"
	slotPendingArtwork = "pendingArtwork"
)

var ErrNotFound = errors.New("session entry not found")

type Entry struct {
	Key   string `gorm:"primaryKey;size:64"`
	Value string
}

type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	var entry Entry
	err := s.db.WithContext(ctx).First(&entry, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get session entry: %w", err)
	}
	return entry.Value, nil
}

func (s *Store) Set(ctx context.Context, key, value string) error {
	entry := Entry{Key: key, Value: value}
	err := s.db.WithContext(ctx).Save(&entry).Error
	if err != nil {
		return fmt.Errorf("set session entry: %w", err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	err := s.db.WithContext(ctx).Delete(&Entry{}, "key = ?", key).Error
	if err != nil {
		return fmt.Errorf("delete session entry: %w", err)
	}
	return nil
}

// AdminLogin stores the admin token and profile together.
func (s *Store) AdminLogin(ctx context.Context, token string, admin models.Admin) error {
	if err := s.Set(ctx, slotAdminToken, token); err != nil {
		return err
	}
	raw, err := json.Marshal(admin)
	if err != nil {
		return fmt.Errorf("encode admin: %w", err)
	}
	return s.Set(ctx, slotAdminUser, string(raw))
}

// AdminSession returns the stored token and profile, or ErrNotFound when the
// admin is not signed in.
func (s *Store) AdminSession(ctx context.Context) (string, *models.Admin, error) {
	token, err := s.Get(ctx, slotAdminToken)
	if err != nil {
		return "", nil, err
	}
	raw, err := s.Get(ctx, slotAdminUser)
	if err != nil {
		return "", nil, err
	}
	var admin models.Admin
	if err := json.Unmarshal([]byte(raw), &admin); err != nil {
		return "", nil, fmt.Errorf("decode admin: %w", err)
	}
	return token, &admin, nil
}

func (s *Store) AdminLogout(ctx context.Context) error {
	if err := s.Delete(ctx, slotAdminToken); err != nil {
		return err
	}
	return s.Delete(ctx, slotAdminUser)
}

func (s *Store) UserLogin(ctx context.Context, token string, user models.User) error {
	if err := s.Set(ctx, slotAuthToken, token); err != nil {
		return err
	}
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	return s.Set(ctx, slotUser, string(raw))
}

func (s *Store) UserSession(ctx context.Context) (string, *models.User, error) {
	token, err := s.Get(ctx, slotAuthToken)
	if err != nil {
		return "", nil, err
	}
	raw, err := s.Get(ctx, slotUser)
	if err != nil {
		return "", nil, err
	}
	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return "", nil, fmt.Errorf("decode user: %w", err)
	}
	return token, &user, nil
}

func (s *Store) UserLogout(ctx context.Context) error {
	if err := s.Delete(ctx, slotAuthToken); err != nil {
		return err
	}
	return s.Delete(ctx, slotUser)
}

// SavePendingArtwork parks an artwork draft so it survives a forced
// re-login.
func (s *Store) SavePendingArtwork(ctx context.Context, draft json.RawMessage) error {
	return s.Set(ctx, slotPendingArtwork, string(draft))
}

// HasPendingArtwork reports whether a draft is parked without consuming it.
func (s *Store) HasPendingArtwork(ctx context.Context) bool {
	_, err := s.Get(ctx, slotPendingArtwork)
	return err == nil
}

// TakePendingArtwork returns the parked draft and clears the slot in the
// same call. A second Take returns ErrNotFound.
func (s *Store) TakePendingArtwork(ctx context.Context) (json.RawMessage, error) {
	raw, err := s.Get(ctx, slotPendingArtwork)
	if err != nil {
		return nil, err
	}
	if err := s.Delete(ctx, slotPendingArtwork); err != nil {
		return nil, err
	}
	return json.RawMessage(raw), nil
}
