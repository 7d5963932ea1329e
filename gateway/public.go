package gateway

import (
	"context"
	"time"

	"food-ordering-web/cache"
	"food-ordering-web/models"
)

// PublicClient covers the unauthenticated catalog reads
type PublicClient struct {
	core *Client
}

func NewPublic(core *Client) *PublicClient {
	return &PublicClient{core: core}
}

// GetMeals fetches the meal catalog with optional filtering and pagination
func (p *PublicClient) GetMeals(ctx context.Context, filter *models.MealFilter, opts *FetchOptions) Result[[]models.Meal] {
	return getJSON[[]models.Meal](ctx, p.core, "/meals", mealQuery(filter), AuthContext{}, opts,
		cache.TagMeals, "Failed to fetch meals")
}

// GetMeal fetches a single meal by id
func (p *PublicClient) GetMeal(ctx context.Context, id string, opts *FetchOptions) Result[models.Meal] {
	return getJSON[models.Meal](ctx, p.core, "/meals/"+id, nil, AuthContext{}, opts,
		cache.TagMeal, "Failed to fetch meal details")
}

// GetProviders fetches all active providers
func (p *PublicClient) GetProviders(ctx context.Context, opts *FetchOptions) Result[[]models.Provider] {
	return getJSON[[]models.Provider](ctx, p.core, "/providers", nil, AuthContext{}, opts,
		cache.TagProviders, "Failed to fetch kitchen providers")
}

// GetProvider fetches a single provider by id, including its meals
func (p *PublicClient) GetProvider(ctx context.Context, id string, opts *FetchOptions) Result[models.Provider] {
	return getJSON[models.Provider](ctx, p.core, "/providers/"+id, nil, AuthContext{}, opts,
		cache.TagProvider, "Failed to fetch provider details")
}

// GetCategories fetches the category taxonomy. Categories change rarely, so
// the default is a cached read revalidated hourly; pass explicit options to
// bypass (the admin view reads no-store).
func (p *PublicClient) GetCategories(ctx context.Context, opts *FetchOptions) Result[[]models.Category] {
	if opts == nil {
		opts = &FetchOptions{Cache: CacheForce, Revalidate: time.Hour}
	}
	return getJSON[[]models.Category](ctx, p.core, "/categories", nil, AuthContext{}, opts,
		cache.TagCategories, "Failed to fetch categories")
}
