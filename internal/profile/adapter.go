package profile

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"cosmolink/internal/chat"
)

// ObjectStorage is the external storage collaborator for avatar files.
type ObjectStorage interface {
	Upload(ctx context.Context, path string, content io.Reader) error
	PublicURL(path string) string
}

// Update is a partial profile edit; nil fields are left untouched.
type Update struct {
	FirstName *string
	LastName  *string
	AvatarURL *string
}

// Adapter translates between the CurrentUser shape the client renders and
// the external profile store schema. It keeps a last-known-good copy per
// user so a failed fetch or update never degrades what is displayed, and it
// never applies an update optimistically before the store confirms it.
type Adapter struct {
	repo    Repository
	storage ObjectStorage
	log     zerolog.Logger

	mu    sync.RWMutex
	cache map[int64]chat.CurrentUser
}

func NewAdapter(repo Repository, storage ObjectStorage, logger zerolog.Logger) *Adapter {
	return &Adapter{
		repo:    repo,
		storage: storage,
		log:     logger.With().Str("component", "profile-adapter").Logger(),
		cache:   make(map[int64]chat.CurrentUser),
	}
}

// LoadProfile fetches the current user's profile from the store. On failure
// the last-known-good copy is returned alongside the error; the in-memory
// state is never clobbered by a failed fetch.
func (a *Adapter) LoadProfile(ctx context.Context, userID int64) (chat.CurrentUser, error) {
	p, err := a.repo.Fetch(ctx, userID)
	if err != nil {
		a.log.Warn().Err(err).Int64("user_id", userID).Msg("profile fetch failed")
		return a.cached(userID), fmt.Errorf("load profile: %w", err)
	}

	cu := chat.CurrentUser{
		ID:        p.UserID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Name:      FullName(p.FirstName, p.LastName),
		Avatar:    p.AvatarURL,
	}
	a.mu.Lock()
	a.cache[userID] = cu
	a.mu.Unlock()
	return cu, nil
}

// UpdateProfile applies a partial edit. Only supplied fields change and the
// derived full name is recomputed from the result. The store is written
// first; on failure the cached CurrentUser is untouched and the caller must
// surface the error.
func (a *Adapter) UpdateProfile(ctx context.Context, userID int64, upd Update) (chat.CurrentUser, error) {
	fields := make(map[string]interface{})
	if upd.FirstName != nil {
		fields["first_name"] = strings.TrimSpace(*upd.FirstName)
	}
	if upd.LastName != nil {
		fields["last_name"] = strings.TrimSpace(*upd.LastName)
	}
	if upd.AvatarURL != nil {
		fields["avatar_url"] = *upd.AvatarURL
	}
	if len(fields) == 0 {
		return a.LoadProfile(ctx, userID)
	}

	if err := a.repo.UpdateFields(ctx, userID, fields); err != nil {
		a.log.Warn().Err(err).Int64("user_id", userID).Msg("profile update failed")
		return a.cached(userID), fmt.Errorf("update profile: %w", err)
	}
	return a.LoadProfile(ctx, userID)
}

// UploadAvatar stores the file under a collision-resistant path (random
// token plus the original extension) and returns its public URL. No
// validation of the content happens here; that is the storage side's job.
func (a *Adapter) UploadAvatar(ctx context.Context, fileName string, content io.Reader) (string, error) {
	path := uuid.NewString() + strings.ToLower(filepath.Ext(fileName))
	if err := a.storage.Upload(ctx, path, content); err != nil {
		a.log.Warn().Err(err).Str("path", path).Msg("avatar upload failed")
		return "", fmt.Errorf("upload avatar: %w", err)
	}
	return a.storage.PublicURL(path), nil
}

func (a *Adapter) cached(userID int64) chat.CurrentUser {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.cache[userID]
}

// FullName derives the display name from first and last name.
func FullName(first, last string) string {
	return strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
}
