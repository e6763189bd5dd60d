package catalog

import (
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/Aurelia-Jewels/aurelia-storefront-backend/models"
	"github.com/google/uuid"
)

func fixtureItems() []models.CatalogItem {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	mk := func(name, category string, price float64, age time.Duration) models.CatalogItem {
		return models.CatalogItem{
			ID:        uuid.Must(uuid.NewV7()),
			Name:      name,
			Category:  category,
			Price:     price,
			Status:    "Active",
			CreatedAt: base.Add(-age),
		}
	}
	return []models.CatalogItem{
		mk("Gold Bangle", "Bangles", 450, 0),
		mk("Silver Bangle", "Bangles", 120, 24*time.Hour),
		mk("Ruby Pendant", "Necklaces", 900, 48*time.Hour),
		mk("Pearl Necklace", "Necklaces", 1200, 72*time.Hour),
		mk("Diamond Ring", "Rings", 2500, 96*time.Hour),
		mk("Plain Ring", "Rings", 120, 120*time.Hour),
	}
}

func TestQuery_NoCriteriaReturnsEverything(t *testing.T) {
	items := fixtureItems()
	got := Query(items, models.FilterCriteria{})
	if len(got) != len(items) {
		t.Fatalf("expected all %d items, got %d", len(items), len(got))
	}
	// Default sort is newest first.
	for i := 1; i < len(got); i++ {
		if got[i].CreatedAt.After(got[i-1].CreatedAt) {
			t.Errorf("items not sorted newest first: %s before %s", got[i-1].Name, got[i].Name)
		}
	}
}

func TestQuery_CategoryFilter(t *testing.T) {
	got := Query(fixtureItems(), models.FilterCriteria{Categories: []string{"Bangles"}})
	if len(got) != 2 {
		t.Fatalf("expected 2 bangles, got %d", len(got))
	}
	for _, item := range got {
		if item.Category != "Bangles" {
			t.Errorf("unexpected category %q in result", item.Category)
		}
	}
}

func ptrF(v float64) *float64 { return &v }

func TestQuery_PriceRangeInclusive(t *testing.T) {
	// Boundary values must be included on both ends.
	got := Query(fixtureItems(), models.FilterCriteria{
		PriceRange: models.PriceRange{Min: 120, Max: ptrF(900)},
	})
	names := make(map[string]bool, len(got))
	for _, item := range got {
		names[item.Name] = true
	}
	for _, want := range []string{"Silver Bangle", "Plain Ring", "Gold Bangle", "Ruby Pendant"} {
		if !names[want] {
			t.Errorf("expected %q in [120, 900] result", want)
		}
	}
	if len(got) != 4 {
		t.Errorf("expected 4 items, got %d", len(got))
	}
}

func TestQuery_FuzzySearch(t *testing.T) {
	// One-letter typo still finds the bangles via the name match.
	got := Query(fixtureItems(), models.FilterCriteria{SearchText: "bangle"})
	if len(got) != 2 {
		t.Fatalf("expected 2 matches for %q, got %d", "bangle", len(got))
	}
	got = Query(fixtureItems(), models.FilterCriteria{SearchText: "pendant"})
	if len(got) != 1 || got[0].Name != "Ruby Pendant" {
		t.Fatalf("expected only Ruby Pendant for %q, got %d items", "pendant", len(got))
	}
	if got := Query(fixtureItems(), models.FilterCriteria{SearchText: "qqqqqqqq"}); len(got) != 0 {
		t.Errorf("expected no matches for junk query, got %d", len(got))
	}
}

func TestQuery_MonotonicNarrowing(t *testing.T) {
	items := fixtureItems()
	loose := Query(items, models.FilterCriteria{Categories: []string{"Bangles", "Rings"}})
	tight := Query(items, models.FilterCriteria{
		Categories: []string{"Bangles", "Rings"},
		PriceRange: models.PriceRange{Min: 0, Max: ptrF(200)},
	})

	if len(tight) > len(loose) {
		t.Fatalf("adding a restriction widened the result: %d > %d", len(tight), len(loose))
	}
	looseIDs := make(map[string]bool, len(loose))
	for _, item := range loose {
		looseIDs[item.ID.String()] = true
	}
	for _, item := range tight {
		if !looseIDs[item.ID.String()] {
			t.Errorf("%s present under tighter criteria but absent under looser", item.Name)
		}
	}
}

func TestQuery_PriceSortStableOnTies(t *testing.T) {
	items := fixtureItems()
	// Silver Bangle (index 1) and Plain Ring (index 5) share price 120 and
	// must keep their relative input order under both price sorts.
	for _, key := range []string{models.SortPriceLow, models.SortPriceHigh} {
		got := Query(items, models.FilterCriteria{SortKey: key})
		var silver, plain int
		for i, item := range got {
			switch item.Name {
			case "Silver Bangle":
				silver = i
			case "Plain Ring":
				plain = i
			}
		}
		if silver > plain {
			t.Errorf("sort %q broke tie order: Silver Bangle at %d after Plain Ring at %d", key, silver, plain)
		}
	}
}

func TestQuery_PriceSortOrder(t *testing.T) {
	got := Query(fixtureItems(), models.FilterCriteria{SortKey: models.SortPriceLow})
	for i := 1; i < len(got); i++ {
		if got[i].Price < got[i-1].Price {
			t.Errorf("price-low not ascending at index %d", i)
		}
	}
	got = Query(fixtureItems(), models.FilterCriteria{SortKey: models.SortPriceHigh})
	for i := 1; i < len(got); i++ {
		if got[i].Price > got[i-1].Price {
			t.Errorf("price-high not descending at index %d", i)
		}
	}
}

func TestQuery_Idempotent(t *testing.T) {
	items := fixtureItems()
	criteria := models.FilterCriteria{
		Categories: []string{"Necklaces", "Rings"},
		PriceRange: models.PriceRange{Min: 100, Max: ptrF(5000)},
		SortKey:    models.SortPriceLow,
	}
	first := Query(items, criteria)
	second := Query(items, criteria)
	if !reflect.DeepEqual(first, second) {
		t.Error("identical criteria against identical input produced different sequences")
	}
}

func TestQuery_DoesNotMutateInput(t *testing.T) {
	items := fixtureItems()
	before := make([]models.CatalogItem, len(items))
	copy(before, items)

	Query(items, models.FilterCriteria{SortKey: models.SortPriceLow})
	Query(items, models.FilterCriteria{SearchText: "bangle"})

	if !reflect.DeepEqual(items, before) {
		t.Error("input slice was mutated by Query")
	}
}

func TestQuery_MissingCreatedAtSortsOldest(t *testing.T) {
	items := fixtureItems()
	items = append(items, models.CatalogItem{
		ID:       uuid.Must(uuid.NewV7()),
		Name:     "Undated Brooch",
		Category: "Brooches",
		Price:    300,
	})
	got := Query(items, models.FilterCriteria{})
	if got[len(got)-1].Name != "Undated Brooch" {
		t.Errorf("item with zero CreatedAt should sort last, got %q", got[len(got)-1].Name)
	}
}

func TestQuery_ExplicitZeroMaxPrice(t *testing.T) {
	items := fixtureItems()
	items = append(items, models.CatalogItem{
		ID:       uuid.Must(uuid.NewV7()),
		Name:     "Sample Charm",
		Category: "Bracelets",
		Price:    0,
	})

	// An explicit max of 0 asks for free items only; it must not widen to
	// the default ceiling.
	got := Query(items, models.FilterCriteria{
		PriceRange: models.PriceRange{Min: 0, Max: ptrF(0)},
	})
	if len(got) != 1 || got[0].Name != "Sample Charm" {
		t.Fatalf("expected only the zero-priced item, got %d items", len(got))
	}
}

func TestPaginate(t *testing.T) {
	items := fixtureItems()

	page := Paginate(items, 1, 4)
	if len(page.Items) != 4 || page.Total != 6 || page.TotalPages != 2 {
		t.Fatalf("unexpected first page: len=%d total=%d pages=%d", len(page.Items), page.Total, page.TotalPages)
	}

	page = Paginate(items, 2, 4)
	if len(page.Items) != 2 || page.Page != 2 {
		t.Fatalf("unexpected second page: len=%d page=%d", len(page.Items), page.Page)
	}

	// Past the end: empty page, counts intact.
	page = Paginate(items, 9, 4)
	if len(page.Items) != 0 || page.Total != 6 {
		t.Fatalf("unexpected overflow page: len=%d total=%d", len(page.Items), page.Total)
	}

	// Out-of-range inputs are clamped to the defaults.
	page = Paginate(items, 0, 1000)
	if page.Page != 1 || page.Limit != 12 {
		t.Fatalf("expected clamped page=1 limit=12, got page=%d limit=%d", page.Page, page.Limit)
	}
}

func TestPaginate_HugePageDoesNotPanic(t *testing.T) {
	items := fixtureItems()

	// (page-1)*limit overflows to a negative offset here; the result must
	// be an empty page, not a slice-bounds panic.
	page := Paginate(items, math.MaxInt, 12)
	if len(page.Items) != 0 {
		t.Fatalf("expected empty page, got %d items", len(page.Items))
	}
	if page.Total != len(items) {
		t.Errorf("expected total %d, got %d", len(items), page.Total)
	}
}
