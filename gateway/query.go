package gateway

import (
	"net/url"
	"strconv"

	"food-ordering-web/models"
)

// mealQuery serializes a meal filter into query parameters. Zero-valued
// fields are omitted entirely so the backend never sees empty filters, and
// encoding then re-parsing yields the original non-empty fields unchanged.
func mealQuery(f *models.MealFilter) url.Values {
	values := url.Values{}
	if f == nil {
		return values
	}
	setNonEmpty(values, "search", f.Search)
	setNonEmpty(values, "category", f.Category)
	setNonEmpty(values, "categoryId", f.CategoryID)
	setNonEmpty(values, "providerId", f.ProviderID)
	if f.IsAvailable != nil {
		values.Set("isAvailable", strconv.FormatBool(*f.IsAvailable))
	}
	if f.Page > 0 {
		values.Set("page", strconv.Itoa(f.Page))
	}
	if f.Limit > 0 {
		values.Set("limit", strconv.Itoa(f.Limit))
	}
	setNonEmpty(values, "sortBy", f.SortBy)
	setNonEmpty(values, "sortOrder", f.SortOrder)
	return values
}

func setNonEmpty(values url.Values, key, value string) {
	if value != "" {
		values.Set(key, value)
	}
}
