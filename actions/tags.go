// Package actions holds the mutation entry points: each action performs
// exactly one gateway write and, only when the write produced data,
// invalidates every cache tag that mutation affects. Partial invalidation is
// a correctness bug — one surface would show fresh data while a sibling
// stays stale — so each mutation's full tag set lives in one table here
// instead of string literals at call sites.
package actions

import (
	"context"

	"food-ordering-web/cache"
)

// Invalidator is the slice of the cache the actions need
type Invalidator interface {
	Invalidate(ctx context.Context, tags ...string)
}

// Mutation names index the affected-tag table
const (
	MutationCreateOrder       = "create-order"
	MutationCancelOrder       = "cancel-order"
	MutationCreateReview      = "create-review"
	MutationDeleteReview      = "delete-review"
	MutationUpdateProfile     = "update-profile"
	MutationCreateProvider    = "create-provider"
	MutationUpdateProvider    = "update-provider"
	MutationCreateMeal        = "create-meal"
	MutationUpdateMeal        = "update-meal"
	MutationDeleteMeal        = "delete-meal"
	MutationUpdateOrderStatus = "update-order-status"
	MutationUpdateAdminInfo   = "update-admin-profile"
	MutationToggleReview      = "toggle-review-visibility"
	MutationModerateReview    = "moderate-delete-review"
	MutationCreateCategory    = "create-category"
	MutationUpdateCategory    = "update-category"
)

// affectedTags maps each mutation to every read tag it logically affects.
// Updating a meal touches both the provider's private menu list and the
// public catalog; a provider's status change touches its order list, the
// order's detail view (appended per call) and the customer's order list.
var affectedTags = map[string][]string{
	MutationCreateOrder:       {cache.TagOrders},
	MutationCancelOrder:       {cache.TagOrders},
	MutationCreateReview:      {cache.TagReviews},
	MutationDeleteReview:      {cache.TagReviews},
	MutationUpdateProfile:     {cache.TagUserProfile},
	MutationCreateProvider:    {cache.TagProviderProfile},
	MutationUpdateProvider:    {cache.TagProviderProfile},
	MutationCreateMeal:        {cache.TagMeals},
	MutationUpdateMeal:        {cache.TagProviderMeals, cache.TagMeals},
	MutationDeleteMeal:        {cache.TagProviderMeals, cache.TagMeals},
	MutationUpdateOrderStatus: {cache.TagProviderOrders, cache.TagOrders},
	MutationUpdateAdminInfo:   {cache.TagAdminProfile},
	MutationToggleReview:      {cache.TagPlatformReviews},
	MutationModerateReview:    {cache.TagPlatformReviews},
	MutationCreateCategory:    {cache.TagCategories},
	MutationUpdateCategory:    {cache.TagCategories},
}

// tagsFor returns the mutation's registered tag set plus any per-entity tags
func tagsFor(mutation string, extra ...string) []string {
	tags := affectedTags[mutation]
	if len(extra) == 0 {
		return tags
	}
	combined := make([]string, 0, len(tags)+len(extra))
	combined = append(combined, tags...)
	combined = append(combined, extra...)
	return combined
}
