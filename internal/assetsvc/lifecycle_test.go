package assetsvc

import (
	"testing"
	"time"

	"go_assettag/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeactivateStampsReturnedDate(t *testing.T) {
	now := time.Date(2026, 8, 30, 15, 4, 5, 0, time.UTC)
	asset := model.Asset{IsActive: true}

	ApplyActiveTransition(&asset, false, now)

	assert.False(t, asset.IsActive)
	require.NotNil(t, asset.DateReturned)
	assert.Equal(t, time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC), *asset.DateReturned)
}

func TestDeactivateIsIdempotent(t *testing.T) {
	earlier := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	asset := model.Asset{IsActive: false, DateReturned: &earlier}

	ApplyActiveTransition(&asset, false, time.Now())

	assert.False(t, asset.IsActive)
	require.NotNil(t, asset.DateReturned)
	assert.Equal(t, earlier, *asset.DateReturned, "repeating a deactivation must not move the returned date")
}

func TestReactivateClearsReturnedDate(t *testing.T) {
	returned := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	asset := model.Asset{IsActive: false, DateReturned: &returned}

	ApplyActiveTransition(&asset, true, time.Now())

	assert.True(t, asset.IsActive)
	assert.Nil(t, asset.DateReturned)
}

func TestDeactivateKeepsExplicitReturnedDate(t *testing.T) {
	returned := time.Date(2025, 12, 24, 0, 0, 0, 0, time.UTC)
	asset := model.Asset{IsActive: true, DateReturned: &returned}

	ApplyActiveTransition(&asset, false, time.Now())

	require.NotNil(t, asset.DateReturned)
	assert.Equal(t, returned, *asset.DateReturned)
}
