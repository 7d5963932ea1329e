package gateway

import (
	"context"
	"net/http"

	"food-ordering-web/cache"
	"food-ordering-web/models"
)

// AdminClient covers the authenticated platform-administration operations
type AdminClient struct {
	core *Client
}

func NewAdmin(core *Client) *AdminClient {
	return &AdminClient{core: core}
}

func (a *AdminClient) MyProfile(ctx context.Context, auth AuthContext) Result[models.User] {
	return getJSON[models.User](ctx, a.core, "/users/me", nil, auth, nil,
		cache.TagAdminProfile, "Failed to fetch profile")
}

func (a *AdminClient) UpdateProfile(ctx context.Context, auth AuthContext, payload models.UpdateProfilePayload) Result[models.User] {
	return writeJSON[models.User](ctx, a.core, http.MethodPatch, "/users/update-me", payload, auth,
		"Update failed")
}

func (a *AdminClient) Users(ctx context.Context, auth AuthContext) Result[[]models.User] {
	return getJSON[[]models.User](ctx, a.core, "/users", nil, auth, nil,
		cache.TagPlatformUsers, "Failed to fetch users")
}

func (a *AdminClient) Reviews(ctx context.Context, auth AuthContext) Result[[]models.Review] {
	return getJSON[[]models.Review](ctx, a.core, "/reviews", nil, auth, nil,
		cache.TagPlatformReviews, "Failed to fetch reviews")
}

// SetReviewVisibility hides or unhides a review without deleting it
func (a *AdminClient) SetReviewVisibility(ctx context.Context, auth AuthContext, reviewID string, hidden bool) Result[models.Review] {
	payload := models.ReviewVisibilityPayload{IsHidden: hidden}
	return writeJSON[models.Review](ctx, a.core, http.MethodPatch, "/reviews/"+reviewID+"/visibility", payload, auth,
		"Visibility toggle failed")
}

func (a *AdminClient) DeleteReview(ctx context.Context, auth AuthContext, reviewID string) Result[struct{}] {
	return writeJSON[struct{}](ctx, a.core, http.MethodDelete, "/reviews/"+reviewID, nil, auth,
		"Failed to delete review")
}

func (a *AdminClient) Orders(ctx context.Context, auth AuthContext) Result[[]models.Order] {
	return getJSON[[]models.Order](ctx, a.core, "/orders", nil, auth, nil,
		cache.TagPlatformOrders, "Failed to fetch orders")
}

func (a *AdminClient) Order(ctx context.Context, auth AuthContext, orderID string) Result[models.Order] {
	return getJSON[models.Order](ctx, a.core, "/orders/"+orderID, nil, auth, nil,
		cache.OrderTag(orderID), "Failed to fetch order details")
}

func (a *AdminClient) CreateCategory(ctx context.Context, auth AuthContext, payload models.CategoryPayload) Result[models.Category] {
	return writeJSON[models.Category](ctx, a.core, http.MethodPost, "/categories", payload, auth,
		"Failed to create category")
}

func (a *AdminClient) UpdateCategory(ctx context.Context, auth AuthContext, categoryID string, payload models.CategoryPayload) Result[models.Category] {
	return writeJSON[models.Category](ctx, a.core, http.MethodPatch, "/categories/"+categoryID, payload, auth,
		"Failed to update category")
}
