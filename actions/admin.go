package actions

import (
	"context"

	"food-ordering-web/gateway"
	"food-ordering-web/models"
)

// Admin bundles the platform-administration mutations
type Admin struct {
	svc *gateway.AdminClient
	inv Invalidator
}

func NewAdmin(svc *gateway.AdminClient, inv Invalidator) *Admin {
	return &Admin{svc: svc, inv: inv}
}

func (a *Admin) UpdateProfile(ctx context.Context, auth gateway.AuthContext, payload models.UpdateProfilePayload) gateway.Result[models.User] {
	res := a.svc.UpdateProfile(ctx, auth, payload)
	if res.OK() {
		a.inv.Invalidate(ctx, tagsFor(MutationUpdateAdminInfo)...)
	}
	return res
}

func (a *Admin) ToggleReviewVisibility(ctx context.Context, auth gateway.AuthContext, reviewID string, hidden bool) gateway.Result[models.Review] {
	res := a.svc.SetReviewVisibility(ctx, auth, reviewID, hidden)
	if res.OK() {
		a.inv.Invalidate(ctx, tagsFor(MutationToggleReview)...)
	}
	return res
}

func (a *Admin) DeleteReview(ctx context.Context, auth gateway.AuthContext, reviewID string) gateway.Result[struct{}] {
	res := a.svc.DeleteReview(ctx, auth, reviewID)
	if res.OK() {
		a.inv.Invalidate(ctx, tagsFor(MutationModerateReview)...)
	}
	return res
}

func (a *Admin) CreateCategory(ctx context.Context, auth gateway.AuthContext, name string) gateway.Result[models.Category] {
	res := a.svc.CreateCategory(ctx, auth, models.CategoryPayload{Name: name})
	if res.OK() {
		a.inv.Invalidate(ctx, tagsFor(MutationCreateCategory)...)
	}
	return res
}

func (a *Admin) UpdateCategory(ctx context.Context, auth gateway.AuthContext, categoryID, name string) gateway.Result[models.Category] {
	res := a.svc.UpdateCategory(ctx, auth, categoryID, models.CategoryPayload{Name: name})
	if res.OK() {
		a.inv.Invalidate(ctx, tagsFor(MutationUpdateCategory)...)
	}
	return res
}
