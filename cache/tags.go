package cache

// Invalidation tags shared between reads (which register under a tag) and
// mutations (which invalidate it). These strings are load-bearing: a new
// write path must reuse the tag of every read it needs to refresh.
const (
	TagMeals           = "meals"
	TagMeal            = "meal"
	TagProviders       = "providers"
	TagProvider        = "provider"
	TagCategories      = "categories"
	TagOrders          = "orders"
	TagReviews         = "reviews"
	TagUserProfile     = "user-profile"
	TagAdminProfile    = "admin-profile"
	TagProviderProfile = "provider-profile"
	TagProviderMeals   = "provider-meals"
	TagProviderOrders  = "provider-orders"
	TagPlatformReviews = "platform-reviews"
	TagPlatformUsers   = "platform-users"
	TagPlatformOrders  = "platform-orders"
)

// OrderTag is the per-entity tag for a single order's detail reads
func OrderTag(orderID string) string {
	return "order-" + orderID
}
