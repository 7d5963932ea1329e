package gateway

import (
	"context"
	"net/http"

	"food-ordering-web/cache"
	"food-ordering-web/models"
)

// CustomerClient covers the authenticated customer operations
type CustomerClient struct {
	core *Client
}

func NewCustomer(core *Client) *CustomerClient {
	return &CustomerClient{core: core}
}

func (c *CustomerClient) CreateOrder(ctx context.Context, auth AuthContext, payload models.CreateOrderPayload) Result[models.Order] {
	return writeJSON[models.Order](ctx, c.core, http.MethodPost, "/orders", payload, auth,
		"Failed to place order")
}

func (c *CustomerClient) MyOrders(ctx context.Context, auth AuthContext) Result[[]models.Order] {
	return getJSON[[]models.Order](ctx, c.core, "/orders/my-orders", nil, auth, nil,
		cache.TagOrders, "Failed to fetch orders")
}

// CancelOrder requests the PLACED → CANCELLED transition; the backend is the
// final arbiter of legality
func (c *CustomerClient) CancelOrder(ctx context.Context, auth AuthContext, orderID string) Result[models.Order] {
	payload := models.OrderStatusPayload{Status: models.StatusCancelled}
	return writeJSON[models.Order](ctx, c.core, http.MethodPatch, "/orders/"+orderID+"/status", payload, auth,
		"Failed to update status")
}

func (c *CustomerClient) CreateReview(ctx context.Context, auth AuthContext, payload models.CreateReviewPayload) Result[models.Review] {
	return writeJSON[models.Review](ctx, c.core, http.MethodPost, "/reviews", payload, auth,
		"Review submission failed")
}

func (c *CustomerClient) MyReviews(ctx context.Context, auth AuthContext) Result[[]models.Review] {
	return getJSON[[]models.Review](ctx, c.core, "/reviews/my-reviews", nil, auth, nil,
		cache.TagReviews, "Failed to fetch reviews")
}

// DeleteReview succeeds with an empty body; the result carries a placeholder
// so the data/error dichotomy still holds
func (c *CustomerClient) DeleteReview(ctx context.Context, auth AuthContext, reviewID string) Result[struct{}] {
	return writeJSON[struct{}](ctx, c.core, http.MethodDelete, "/reviews/"+reviewID, nil, auth,
		"Could not erase review")
}

func (c *CustomerClient) MyProfile(ctx context.Context, auth AuthContext) Result[models.User] {
	return getJSON[models.User](ctx, c.core, "/users/me", nil, auth, nil,
		cache.TagUserProfile, "Failed to fetch profile")
}

func (c *CustomerClient) UpdateProfile(ctx context.Context, auth AuthContext, payload models.UpdateProfilePayload) Result[models.User] {
	return writeJSON[models.User](ctx, c.core, http.MethodPatch, "/users/update-me", payload, auth,
		"Update failed")
}
