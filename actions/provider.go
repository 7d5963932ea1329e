package actions

import (
	"context"

	"food-ordering-web/cache"
	"food-ordering-web/gateway"
	"food-ordering-web/models"
)

// Provider bundles the provider (kitchen) mutations
type Provider struct {
	svc *gateway.ProviderClient
	inv Invalidator
}

func NewProvider(svc *gateway.ProviderClient, inv Invalidator) *Provider {
	return &Provider{svc: svc, inv: inv}
}

func (a *Provider) CreateProvider(ctx context.Context, auth gateway.AuthContext, payload models.CreateProviderPayload) gateway.Result[models.Provider] {
	res := a.svc.CreateProvider(ctx, auth, payload)
	if res.OK() {
		a.inv.Invalidate(ctx, tagsFor(MutationCreateProvider)...)
	}
	return res
}

func (a *Provider) UpdateProvider(ctx context.Context, auth gateway.AuthContext, payload models.UpdateProviderPayload) gateway.Result[models.Provider] {
	res := a.svc.UpdateMyProvider(ctx, auth, payload)
	if res.OK() {
		a.inv.Invalidate(ctx, tagsFor(MutationUpdateProvider)...)
	}
	return res
}

func (a *Provider) CreateMeal(ctx context.Context, auth gateway.AuthContext, payload models.CreateMealPayload) gateway.Result[models.Meal] {
	res := a.svc.CreateMeal(ctx, auth, payload)
	if res.OK() {
		a.inv.Invalidate(ctx, tagsFor(MutationCreateMeal)...)
	}
	return res
}

// UpdateMeal refreshes both the provider's private menu list and the public
// catalog in the same call; invalidating only one would leave the surfaces
// disagreeing
func (a *Provider) UpdateMeal(ctx context.Context, auth gateway.AuthContext, mealID string, payload models.UpdateMealPayload) gateway.Result[models.Meal] {
	res := a.svc.UpdateMeal(ctx, auth, mealID, payload)
	if res.OK() {
		a.inv.Invalidate(ctx, tagsFor(MutationUpdateMeal)...)
	}
	return res
}

func (a *Provider) DeleteMeal(ctx context.Context, auth gateway.AuthContext, mealID string) gateway.Result[models.Meal] {
	res := a.svc.DeleteMeal(ctx, auth, mealID)
	if res.OK() {
		a.inv.Invalidate(ctx, tagsFor(MutationDeleteMeal)...)
	}
	return res
}

// UpdateOrderStatus also invalidates the customer-facing order list and the
// order's own detail tag, so both dashboards see the transition
func (a *Provider) UpdateOrderStatus(ctx context.Context, auth gateway.AuthContext, orderID string, status models.OrderStatus) gateway.Result[models.Order] {
	res := a.svc.UpdateOrderStatus(ctx, auth, orderID, status)
	if res.OK() {
		a.inv.Invalidate(ctx, tagsFor(MutationUpdateOrderStatus, cache.OrderTag(orderID))...)
	}
	return res
}
