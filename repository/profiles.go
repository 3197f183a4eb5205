// Package repository implements the profile collaborator on top of a local
// database, for deployments that mirror user profiles instead of fetching
// them over the wire.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	authstate "github.com/goliatone/go-authstate"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ProfileModel is the Bun model for user profiles.
type ProfileModel struct {
	bun.BaseModel `bun:"table:profiles"`

	ID        uuid.UUID      `bun:"id,pk,nullzero,type:uuid"`
	Username  string         `bun:"username,notnull"`
	Name      string         `bun:"name"`
	Email     string         `bun:"email"`
	AvatarURL string         `bun:"avatar_url"`
	Metadata  map[string]any `bun:"metadata,type:jsonb"`
	CreatedAt time.Time      `bun:"created_at,default:current_timestamp"`
	UpdatedAt time.Time      `bun:"updated_at,default:current_timestamp"`
}

// ProfileRepository implements authstate.ProfileFetcher using Bun.
type ProfileRepository struct {
	db *bun.DB
}

// NewProfileRepository creates a new repository.
func NewProfileRepository(db *bun.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// FetchProfile implements authstate.ProfileFetcher. The token is unused;
// profiles are resolved locally. A missing record yields (nil, nil).
func (r *ProfileRepository) FetchProfile(ctx context.Context, _ string, username string) (*authstate.Profile, error) {
	var model ProfileModel
	err := r.db.NewSelect().
		Model(&model).
		Where("username = ?", username).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return r.toProfile(&model), nil
}

// Upsert creates or refreshes the stored profile keyed by username.
func (r *ProfileRepository) Upsert(ctx context.Context, profile *authstate.Profile) error {
	if profile == nil {
		return nil
	}

	model := &ProfileModel{
		ID:        uuid.New(),
		Username:  profile.Username,
		Name:      profile.Name,
		Email:     profile.Email,
		AvatarURL: profile.AvatarURL,
		Metadata:  profile.Metadata,
		UpdatedAt: time.Now(),
	}

	_, err := r.db.NewInsert().
		Model(model).
		On("CONFLICT (username) DO UPDATE").
		Set("name = EXCLUDED.name").
		Set("email = EXCLUDED.email").
		Set("avatar_url = EXCLUDED.avatar_url").
		Set("metadata = EXCLUDED.metadata").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	return err
}

// Delete removes the stored profile for username.
func (r *ProfileRepository) Delete(ctx context.Context, username string) error {
	_, err := r.db.NewDelete().
		Model((*ProfileModel)(nil)).
		Where("username = ?", username).
		Exec(ctx)
	return err
}

func (r *ProfileRepository) toProfile(model *ProfileModel) *authstate.Profile {
	if model == nil {
		return nil
	}

	return &authstate.Profile{
		Username:  model.Username,
		Name:      model.Name,
		Email:     model.Email,
		AvatarURL: model.AvatarURL,
		Metadata:  model.Metadata,
	}
}

var _ authstate.ProfileFetcher = (*ProfileRepository)(nil)
