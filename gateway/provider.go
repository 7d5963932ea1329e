package gateway

import (
	"context"
	"net/http"

	"food-ordering-web/cache"
	"food-ordering-web/models"
)

// ProviderClient covers the authenticated provider (kitchen) operations
type ProviderClient struct {
	core *Client
}

func NewProvider(core *Client) *ProviderClient {
	return &ProviderClient{core: core}
}

func (p *ProviderClient) CreateProvider(ctx context.Context, auth AuthContext, payload models.CreateProviderPayload) Result[models.Provider] {
	return writeJSON[models.Provider](ctx, p.core, http.MethodPost, "/providers", payload, auth,
		"Failed to create provider profile")
}

func (p *ProviderClient) MyProvider(ctx context.Context, auth AuthContext) Result[models.Provider] {
	return getJSON[models.Provider](ctx, p.core, "/providers/me", nil, auth, nil,
		cache.TagProviderProfile, "Failed to fetch provider profile")
}

func (p *ProviderClient) UpdateMyProvider(ctx context.Context, auth AuthContext, payload models.UpdateProviderPayload) Result[models.Provider] {
	return writeJSON[models.Provider](ctx, p.core, http.MethodPatch, "/providers/me", payload, auth,
		"Failed to update provider profile")
}

func (p *ProviderClient) CreateMeal(ctx context.Context, auth AuthContext, payload models.CreateMealPayload) Result[models.Meal] {
	return writeJSON[models.Meal](ctx, p.core, http.MethodPost, "/meals", payload, auth,
		"Meal creation failed")
}

func (p *ProviderClient) MyMeals(ctx context.Context, auth AuthContext) Result[[]models.Meal] {
	return getJSON[[]models.Meal](ctx, p.core, "/meals/my-meals", nil, auth, nil,
		cache.TagProviderMeals, "Failed to fetch meals")
}

func (p *ProviderClient) UpdateMeal(ctx context.Context, auth AuthContext, mealID string, payload models.UpdateMealPayload) Result[models.Meal] {
	return writeJSON[models.Meal](ctx, p.core, http.MethodPatch, "/meals/"+mealID, payload, auth,
		"Meal update failed")
}

// DeleteMeal returns the deleted meal, matching the backend's delete response
func (p *ProviderClient) DeleteMeal(ctx context.Context, auth AuthContext, mealID string) Result[models.Meal] {
	return writeJSON[models.Meal](ctx, p.core, http.MethodDelete, "/meals/"+mealID, nil, auth,
		"Meal deletion failed")
}

func (p *ProviderClient) Orders(ctx context.Context, auth AuthContext) Result[[]models.Order] {
	return getJSON[[]models.Order](ctx, p.core, "/orders/provider-orders", nil, auth, nil,
		cache.TagProviderOrders, "Failed to fetch incoming orders")
}

func (p *ProviderClient) Order(ctx context.Context, auth AuthContext, orderID string) Result[models.Order] {
	return getJSON[models.Order](ctx, p.core, "/orders/"+orderID, nil, auth, nil,
		cache.OrderTag(orderID), "Failed to fetch order details")
}

func (p *ProviderClient) UpdateOrderStatus(ctx context.Context, auth AuthContext, orderID string, status models.OrderStatus) Result[models.Order] {
	payload := models.OrderStatusPayload{Status: status}
	return writeJSON[models.Order](ctx, p.core, http.MethodPatch, "/orders/"+orderID+"/status", payload, auth,
		"Status update failed")
}
