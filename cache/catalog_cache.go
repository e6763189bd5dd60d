package store_cache

import (
	"sync"
	"time"

	"github.com/Aurelia-Jewels/aurelia-storefront-backend/models"
)

const TTL = 5 * time.Minute

// ── Catalog snapshot cache ───────────────────────────────────────────────────
// Read-through snapshot of the active catalog. The storefront handlers run
// the query engine over this slice, so it must be treated as immutable by
// every reader. When the database is unreachable an expired snapshot is
// still served, flagged stale, instead of failing the request.

type snapshotEntry struct {
	items     []models.CatalogItem
	fetchedAt time.Time
}

var (
	snapMu   sync.RWMutex
	snapshot *snapshotEntry
)

// GetSnapshot returns the cached catalog. ok reports whether any snapshot
// exists at all; stale reports whether it has outlived the TTL and should
// only be served when a fresh fetch fails.
func GetSnapshot() (items []models.CatalogItem, stale bool, ok bool) {
	snapMu.RLock()
	defer snapMu.RUnlock()
	if snapshot == nil {
		return nil, false, false
	}
	return snapshot.items, time.Since(snapshot.fetchedAt) >= TTL, true
}

func SetSnapshot(items []models.CatalogItem) {
	snapMu.Lock()
	defer snapMu.Unlock()
	snapshot = &snapshotEntry{items: items, fetchedAt: time.Now()}
}

// InvalidateSnapshot drops the snapshot (call on any catalog write).
func InvalidateSnapshot() {
	snapMu.Lock()
	snapshot = nil
	snapMu.Unlock()
}
