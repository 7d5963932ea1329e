package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"sync"

	"food-ordering-web/gateway"
	"food-ordering-web/models"

	"github.com/gin-gonic/gin"
)

// Public serves the unauthenticated catalog views
type Public struct {
	pub *gateway.PublicClient
}

func NewPublic(pub *gateway.PublicClient) *Public {
	return &Public{pub: pub}
}

// Landing aggregates the home view. The three reads are independent, so they
// run concurrently and each section degrades on its own.
func (h *Public) Landing(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		wg         sync.WaitGroup
		meals      gateway.Result[[]models.Meal]
		providers  gateway.Result[[]models.Provider]
		categories gateway.Result[[]models.Category]
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		meals = h.pub.GetMeals(ctx, &models.MealFilter{Limit: 6, SortBy: "avgRating", SortOrder: "desc"}, nil)
	}()
	go func() {
		defer wg.Done()
		providers = h.pub.GetProviders(ctx, nil)
	}()
	go func() {
		defer wg.Done()
		categories = h.pub.GetCategories(ctx, nil)
	}()
	wg.Wait()

	c.JSON(http.StatusOK, gin.H{
		"trending":   section(meals),
		"providers":  section(providers),
		"categories": section(categories),
	})
}

// ListMeals serves the filterable catalog. A human-readable category name in
// the query is resolved to its id and dropped before the read goes out; the
// backend only understands categoryId.
func (h *Public) ListMeals(c *gin.Context) {
	ctx := c.Request.Context()
	filter := mealFilterFromQuery(c)

	if filter.Category != "" && filter.CategoryID == "" {
		categories := h.pub.GetCategories(ctx, nil)
		if categories.OK() {
			resolveCategory(filter, *categories.Data)
		} else {
			// unresolvable name filters nothing rather than erroring the page
			filter.Category = ""
		}
	}

	res := h.pub.GetMeals(ctx, filter, nil)
	if !res.OK() {
		renderFault(c, res.Err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"meals": res.Data, "meta": res.Meta})
}

// GetMeal serves the meal detail view
func (h *Public) GetMeal(c *gin.Context) {
	res := h.pub.GetMeal(c.Request.Context(), c.Param("id"), nil)
	if !res.OK() {
		renderFault(c, res.Err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"meal": res.Data})
}

// ListProviders serves the provider directory
func (h *Public) ListProviders(c *gin.Context) {
	res := h.pub.GetProviders(c.Request.Context(), nil)
	if !res.OK() {
		renderFault(c, res.Err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"providers": res.Data})
}

// GetProvider serves a provider's page including its menu
func (h *Public) GetProvider(c *gin.Context) {
	res := h.pub.GetProvider(c.Request.Context(), c.Param("id"), nil)
	if !res.OK() {
		renderFault(c, res.Err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"provider": res.Data})
}

// ListCategories serves the category index
func (h *Public) ListCategories(c *gin.Context) {
	res := h.pub.GetCategories(c.Request.Context(), nil)
	if !res.OK() {
		renderFault(c, res.Err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": res.Data})
}

// resolveCategory swaps a category name filter for its id. The name field is
// always cleared; an unmatched name simply filters by nothing extra.
func resolveCategory(filter *models.MealFilter, categories []models.Category) {
	for _, cat := range categories {
		if strings.EqualFold(cat.Name, filter.Category) {
			filter.CategoryID = cat.ID
			break
		}
	}
	filter.Category = ""
}

func mealFilterFromQuery(c *gin.Context) *models.MealFilter {
	filter := &models.MealFilter{
		Search:     c.Query("search"),
		Category:   c.Query("category"),
		CategoryID: c.Query("categoryId"),
		ProviderID: c.Query("providerId"),
		SortBy:     c.Query("sortBy"),
		SortOrder:  c.Query("sortOrder"),
	}
	if v := c.Query("isAvailable"); v != "" {
		available := v == "true"
		filter.IsAvailable = &available
	}
	if page, err := strconv.Atoi(c.Query("page")); err == nil && page > 0 {
		filter.Page = page
	}
	if limit, err := strconv.Atoi(c.Query("limit")); err == nil && limit > 0 {
		filter.Limit = limit
	}
	return filter
}
