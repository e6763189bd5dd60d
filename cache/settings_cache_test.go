package store_cache

import (
	"errors"
	"testing"

	"github.com/Aurelia-Jewels/aurelia-storefront-backend/models"
)

func TestSettingsCache_PendingLifecycle(t *testing.T) {
	row := models.StoreSettings{ID: 1, StoreName: "Aurelia Jewels", CurrencyCode: "USD"}

	QueueSettingsWrite(row)
	got, pending, ok := GetSettings()
	if !ok || !pending {
		t.Fatalf("expected queued row to be cached and pending, ok=%v pending=%v", ok, pending)
	}
	if got.StoreName != "Aurelia Jewels" {
		t.Errorf("unexpected cached row: %+v", got)
	}

	SetSettings(row)
	if _, pending, _ := GetSettings(); pending {
		t.Error("SetSettings should clear the pending flag")
	}
}

func TestSettingsCache_ReplayRetriesUntilSuccess(t *testing.T) {
	row := models.StoreSettings{ID: 1, StoreName: "Aurelia Jewels", CurrencyCode: "EUR"}
	QueueSettingsWrite(row)

	calls := 0
	persist := func(s models.StoreSettings) error {
		calls++
		if calls == 1 {
			return errors.New("database unreachable")
		}
		if s.CurrencyCode != "EUR" {
			t.Errorf("persisted wrong row: %+v", s)
		}
		return nil
	}

	replayPending(persist)
	if _, pending, _ := GetSettings(); !pending {
		t.Fatal("failed replay should leave the row pending")
	}

	replayPending(persist)
	if _, pending, _ := GetSettings(); pending {
		t.Fatal("successful replay should clear the pending flag")
	}

	// Nothing pending: persist must not be called again.
	replayPending(persist)
	if calls != 2 {
		t.Errorf("expected 2 persist calls, got %d", calls)
	}
}

func TestSettingsCache_ReplayKeepsNewerWrite(t *testing.T) {
	QueueSettingsWrite(models.StoreSettings{ID: 1, StoreName: "Old", CurrencyCode: "USD"})

	persist := func(s models.StoreSettings) error {
		// A newer write lands while the old one is being persisted.
		QueueSettingsWrite(models.StoreSettings{ID: 1, StoreName: "New", CurrencyCode: "USD"})
		return nil
	}

	replayPending(persist)
	got, pending, _ := GetSettings()
	if got.StoreName != "New" {
		t.Fatalf("newer write lost, cache holds %q", got.StoreName)
	}
	if !pending {
		t.Error("newer write must stay pending until its own replay succeeds")
	}
}
