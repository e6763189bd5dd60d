package product_controller

import (
	"strconv"
	"strings"

	store_cache "github.com/Aurelia-Jewels/aurelia-storefront-backend/cache"
	"github.com/Aurelia-Jewels/aurelia-storefront-backend/config"
	"github.com/Aurelia-Jewels/aurelia-storefront-backend/models"
	"github.com/gin-gonic/gin"
)

// ─────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────

func parsePagination(c *gin.Context) (page, limit int) {
	// Atoi returns MaxInt, not 0, for out-of-range input, so a failed
	// parse must fall back to the default and never reach the engine.
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err = strconv.Atoi(c.DefaultQuery("limit", "12"))
	if err != nil || limit < 1 || limit > 100 {
		limit = 12
	}

	return page, limit
}

// parseFilterCriteria turns the browse query params into engine criteria.
// Unparseable numbers and unknown sort keys fall back to the defaults
// rather than erroring.
func parseFilterCriteria(c *gin.Context) models.FilterCriteria {
	criteria := models.FilterCriteria{
		SearchText: strings.TrimSpace(c.Query("q")),
		Categories: c.QueryArray("category"),
		SortKey:    c.DefaultQuery("sortBy", models.SortNewest),
	}

	if !models.IsValidSortKey(criteria.SortKey) {
		criteria.SortKey = models.SortNewest
	}

	if minStr := c.Query("minPrice"); minStr != "" {
		if min, err := strconv.ParseFloat(minStr, 64); err == nil {
			criteria.PriceRange.Min = min
		}
	}
	if maxStr := c.Query("maxPrice"); maxStr != "" {
		if max, err := strconv.ParseFloat(maxStr, 64); err == nil {
			criteria.PriceRange.Max = &max
		}
	}

	return criteria
}

// ─────────────────────────────────────────────────────────────
// Catalog loader (snapshot cache in front of the database)
// ─────────────────────────────────────────────────────────────

// LoadCatalog returns the active catalog, reading through the snapshot
// cache. When the database is unreachable the last-known-good snapshot is
// served instead and flagged stale.
func LoadCatalog() (items []models.CatalogItem, stale bool, err error) {
	if items, stale, ok := store_cache.GetSnapshot(); ok && !stale {
		return items, false, nil
	}

	items, err = fetchActiveCatalog()
	if err != nil {
		if items, _, ok := store_cache.GetSnapshot(); ok {
			return items, true, nil
		}
		return nil, false, err
	}

	store_cache.SetSnapshot(items)
	return items, false, nil
}

func fetchActiveCatalog() ([]models.CatalogItem, error) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	items := make([]models.CatalogItem, 0)
	err := config.StoreGorm.
		WithContext(ctx).
		Where("status = ?", "Active").
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	return items, nil
}
