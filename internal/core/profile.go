package core

import (
	"fmt"
	"log/slog"

	"github.com/kilupskalvis/qsolog/internal/models"
)

// ProfileStore is the subset of the store used for profile management
type ProfileStore interface {
	CreateProfile() (int64, error)
	GetProfile(id int64) (*models.OperatorProfile, error)
	UpdateProfile(id int64, attrs models.ProfileAttributes) error
}

// AddProfile creates a profile and, when attrs is non-nil, fills it in
func AddProfile(st ProfileStore, attrs *models.ProfileAttributes) (*models.OperatorProfile, error) {
	id, err := st.CreateProfile()
	if err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	if attrs != nil {
		if err := st.UpdateProfile(id, *attrs); err != nil {
			return nil, fmt.Errorf("failed to set profile %d: %w", id, err)
		}
	}

	slog.Debug("created profile", "profile_id", id)
	return st.GetProfile(id)
}

// EditProfile loads a profile, applies edit to its attributes and writes all
// of them back
func EditProfile(st ProfileStore, id int64, edit func(*models.ProfileAttributes)) (*models.OperatorProfile, error) {
	p, err := st.GetProfile(id)
	if err != nil {
		return nil, err
	}

	attrs := p.ProfileAttributes
	edit(&attrs)

	if err := st.UpdateProfile(id, attrs); err != nil {
		return nil, err
	}

	slog.Debug("updated profile", "profile_id", id)
	return &models.OperatorProfile{ID: id, ProfileAttributes: attrs}, nil
}
