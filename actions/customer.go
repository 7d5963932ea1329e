package actions

import (
	"context"

	"food-ordering-web/gateway"
	"food-ordering-web/models"
)

// Customer bundles the customer mutations with the invalidator they share
type Customer struct {
	svc *gateway.CustomerClient
	inv Invalidator
}

func NewCustomer(svc *gateway.CustomerClient, inv Invalidator) *Customer {
	return &Customer{svc: svc, inv: inv}
}

func (a *Customer) CreateOrder(ctx context.Context, auth gateway.AuthContext, payload models.CreateOrderPayload) gateway.Result[models.Order] {
	res := a.svc.CreateOrder(ctx, auth, payload)
	if res.OK() {
		a.inv.Invalidate(ctx, tagsFor(MutationCreateOrder)...)
	}
	return res
}

func (a *Customer) CancelOrder(ctx context.Context, auth gateway.AuthContext, orderID string) gateway.Result[models.Order] {
	res := a.svc.CancelOrder(ctx, auth, orderID)
	if res.OK() {
		a.inv.Invalidate(ctx, tagsFor(MutationCancelOrder)...)
	}
	return res
}

func (a *Customer) CreateReview(ctx context.Context, auth gateway.AuthContext, payload models.CreateReviewPayload) gateway.Result[models.Review] {
	res := a.svc.CreateReview(ctx, auth, payload)
	if res.OK() {
		a.inv.Invalidate(ctx, tagsFor(MutationCreateReview)...)
	}
	return res
}

func (a *Customer) DeleteReview(ctx context.Context, auth gateway.AuthContext, reviewID string) gateway.Result[struct{}] {
	res := a.svc.DeleteReview(ctx, auth, reviewID)
	if res.OK() {
		a.inv.Invalidate(ctx, tagsFor(MutationDeleteReview)...)
	}
	return res
}

func (a *Customer) UpdateProfile(ctx context.Context, auth gateway.AuthContext, payload models.UpdateProfilePayload) gateway.Result[models.User] {
	res := a.svc.UpdateProfile(ctx, auth, payload)
	if res.OK() {
		a.inv.Invalidate(ctx, tagsFor(MutationUpdateProfile)...)
	}
	return res
}
