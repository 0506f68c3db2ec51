package core

import (
	"testing"
	"time"

	"github.com/kilupskalvis/qsolog/internal/models"
	"github.com/kilupskalvis/qsolog/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddProfile_Placeholder(t *testing.T) {
	now := time.Now()
	st := setupTestStore(t, &now)

	p, err := AddProfile(st, nil)
	require.NoError(t, err)
	assert.Equal(t, models.PlaceholderProfileName, p.Name)
	assert.Empty(t, p.Call)
}

func TestAddProfile_WithAttributes(t *testing.T) {
	now := time.Now()
	st := setupTestStore(t, &now)

	p, err := AddProfile(st, &homeAttrs)
	require.NoError(t, err)
	assert.Equal(t, homeAttrs, p.ProfileAttributes)

	profiles, err := st.ListProfiles()
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, p.ID, profiles[0].ID)
}

func TestEditProfile_KeepsUntouchedFields(t *testing.T) {
	now := time.Now()
	st := setupTestStore(t, &now)

	p, err := AddProfile(st, &homeAttrs)
	require.NoError(t, err)

	edited, err := EditProfile(st, p.ID, func(a *models.ProfileAttributes) {
		a.Grid = "FN42"
	})
	require.NoError(t, err)
	assert.Equal(t, "FN42", edited.Grid)
	assert.Equal(t, "W1AW", edited.Call)

	stored, err := st.GetProfile(p.ID)
	require.NoError(t, err)
	assert.Equal(t, edited, stored)
}

func TestEditProfile_NotFound(t *testing.T) {
	now := time.Now()
	st := setupTestStore(t, &now)

	called := false
	_, err := EditProfile(st, 12, func(*models.ProfileAttributes) { called = true })
	assert.ErrorIs(t, err, store.ErrProfileNotFound)
	assert.False(t, called)
}
