package product_controller

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Aurelia-Jewels/aurelia-storefront-backend/models"
	"github.com/gin-gonic/gin"
)

func testContext(t *testing.T, url string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		t.Fatalf("building request: %v", err)
	}
	c.Request = req
	return c
}

func TestParsePagination(t *testing.T) {
	cases := []struct {
		url       string
		wantPage  int
		wantLimit int
	}{
		{"/store/products", 1, 12},
		{"/store/products?page=3&limit=24", 3, 24},
		{"/store/products?page=0&limit=0", 1, 12},
		{"/store/products?page=-2&limit=500", 1, 12},
		{"/store/products?page=abc&limit=xyz", 1, 12},
		// Atoi returns MaxInt with an error for out-of-range input; the
		// error path must win or the pager offset overflows downstream.
		{"/store/products?page=99999999999999999999&limit=12", 1, 12},
		{"/store/products?limit=99999999999999999999", 1, 12},
	}
	for _, tc := range cases {
		c := testContext(t, tc.url)
		page, limit := parsePagination(c)
		if page != tc.wantPage || limit != tc.wantLimit {
			t.Errorf("%s: got page=%d limit=%d, want page=%d limit=%d",
				tc.url, page, limit, tc.wantPage, tc.wantLimit)
		}
	}
}

func TestParseFilterCriteria(t *testing.T) {
	c := testContext(t, "/store/products?q=+bangle+&category=Rings&category=Bangles&minPrice=100&maxPrice=900&sortBy=price-low")
	criteria := parseFilterCriteria(c)

	if criteria.SearchText != "bangle" {
		t.Errorf("search text not trimmed: %q", criteria.SearchText)
	}
	if len(criteria.Categories) != 2 {
		t.Errorf("expected 2 categories, got %v", criteria.Categories)
	}
	if criteria.PriceRange.Min != 100 {
		t.Errorf("unexpected min price: %v", criteria.PriceRange.Min)
	}
	if criteria.PriceRange.Max == nil || *criteria.PriceRange.Max != 900 {
		t.Errorf("unexpected max price: %+v", criteria.PriceRange.Max)
	}
	if criteria.SortKey != models.SortPriceLow {
		t.Errorf("unexpected sort key: %q", criteria.SortKey)
	}
}

func TestParseFilterCriteria_Defaults(t *testing.T) {
	c := testContext(t, "/store/products?sortBy=bogus&minPrice=abc")
	criteria := parseFilterCriteria(c)

	if criteria.SortKey != models.SortNewest {
		t.Errorf("unknown sort key should fall back to newest, got %q", criteria.SortKey)
	}
	if criteria.PriceRange.Min != 0 {
		t.Errorf("unparseable minPrice should stay 0, got %v", criteria.PriceRange.Min)
	}
	min, max := criteria.PriceRange.Bounds()
	if min != 0 || max != models.DefaultPriceCeiling {
		t.Errorf("unexpected effective bounds: [%v, %v]", min, max)
	}
}

func TestParseFilterCriteria_ExplicitZeroMaxPrice(t *testing.T) {
	c := testContext(t, "/store/products?maxPrice=0")
	criteria := parseFilterCriteria(c)

	if criteria.PriceRange.Max == nil {
		t.Fatal("explicit maxPrice=0 must set the bound, not leave it absent")
	}
	if _, max := criteria.PriceRange.Bounds(); max != 0 {
		t.Errorf("explicit zero max widened to %v", max)
	}
}
