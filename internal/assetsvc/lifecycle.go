package assetsvc

import (
	"time"

	"go_assettag/internal/model"
)

// ApplyActiveTransition applies the active-flag lifecycle rules to an asset:
// deactivating stamps the returned date if none is set, reactivating clears it.
// Repeating a deactivation with a returned date already set changes nothing.
func ApplyActiveTransition(asset *model.Asset, active bool, now time.Time) {
	if active {
		asset.IsActive = true
		asset.DateReturned = nil
		return
	}

	asset.IsActive = false
	if asset.DateReturned == nil {
		day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		asset.DateReturned = &day
	}
}
