package store_cache

import (
	"log"
	"sync"
	"time"

	"github.com/Aurelia-Jewels/aurelia-storefront-backend/models"
)

// ── Store settings cache ─────────────────────────────────────────────────────
// Settings writes land here first so the storefront sees them immediately.
// If the database write fails the row is marked pending and a background
// reconciler replays it until it sticks; only the latest row matters, so
// the queue is last-writer-wins.

var (
	settingsMu      sync.RWMutex
	settings        *models.StoreSettings
	settingsPending bool
)

// GetSettings returns the cached row. pending reports whether a database
// sync is still outstanding for it.
func GetSettings() (s models.StoreSettings, pending bool, ok bool) {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	if settings == nil {
		return models.StoreSettings{}, false, false
	}
	return *settings, settingsPending, true
}

// SetSettings stores a row that is known to match the database.
func SetSettings(s models.StoreSettings) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	settings = &s
	settingsPending = false
}

// QueueSettingsWrite stores a row whose database write failed, to be
// replayed by the reconciler.
func QueueSettingsWrite(s models.StoreSettings) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	settings = &s
	settingsPending = true
}

// StartSettingsReconciler launches the replay loop. persist is called with
// the latest pending row each tick until it succeeds. The returned func
// stops the loop.
func StartSettingsReconciler(interval time.Duration, persist func(models.StoreSettings) error) (stop func()) {
	done := make(chan struct{})

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				replayPending(persist)
			}
		}
	}()

	return func() { close(done) }
}

func replayPending(persist func(models.StoreSettings) error) {
	settingsMu.RLock()
	pending := settingsPending
	var row models.StoreSettings
	if settings != nil {
		row = *settings
	}
	settingsMu.RUnlock()

	if !pending {
		return
	}

	if err := persist(row); err != nil {
		log.Printf("settings reconciler: replay failed, will retry: %v", err)
		return
	}

	settingsMu.Lock()
	// A newer write may have been queued while we were persisting; only
	// clear the flag if the row we wrote is still the latest.
	if settings != nil && *settings == row {
		settingsPending = false
	}
	settingsMu.Unlock()
	log.Printf("settings reconciler: pending write replayed")
}
