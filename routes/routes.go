package routes

import (
	"food-ordering-web/handlers"
	"food-ordering-web/middleware"
	"food-ordering-web/models"

	"github.com/gin-gonic/gin"
)

// Deps carries the wired handlers and middleware into route registration
type Deps struct {
	Public   *handlers.Public
	Customer *handlers.Customer
	Provider *handlers.Provider
	Admin    *handlers.Admin
	Gate     *middleware.Gate
	Limiter  *middleware.RateLimiter
}

func SetupRoutes(r *gin.Engine, d Deps) {
	// ── Public catalog ─────────────────────────────────────────────
	// Anonymous traffic is limited per client IP.
	public := r.Group("", d.Limiter.Handler())
	public.GET("/", d.Public.Landing)
	public.GET("/meals", d.Public.ListMeals)
	public.GET("/meals/:id", d.Public.GetMeal)
	public.GET("/providers", d.Public.ListProviders)
	public.GET("/providers/:id", d.Public.GetProvider)
	public.GET("/categories", d.Public.ListCategories)

	// The limiter runs after the gate on dashboard areas so it keys on the
	// admitted user ID instead of lumping a shared NAT into one bucket.

	// ── Customer dashboard ─────────────────────────────────────────
	customer := r.Group("/dashboard")
	customer.Use(d.Gate.Require(models.RoleCustomer), d.Limiter.Handler())
	{
		customer.GET("", d.Customer.Overview)
		customer.GET("/my-orders", d.Customer.MyOrders)
		customer.POST("/create-orders", d.Customer.CreateOrder)
		customer.PATCH("/my-orders/:id/cancel", d.Customer.CancelOrder)
		customer.GET("/profile", d.Customer.Profile)
		customer.PATCH("/profile", d.Customer.UpdateProfile)
		customer.GET("/profile/my-reviews", d.Customer.MyReviews)
		customer.POST("/profile/create-review", d.Customer.CreateReview)
		customer.DELETE("/profile/my-reviews/:id", d.Customer.DeleteReview)
	}

	// ── Provider dashboard ─────────────────────────────────────────
	provider := r.Group("/provider-dashboard")
	provider.Use(d.Gate.Require(models.RoleProvider), d.Limiter.Handler())
	{
		provider.GET("", d.Provider.Overview)
		provider.POST("/create-profile", d.Provider.CreateProvider)
		provider.GET("/profile", d.Provider.Profile)
		provider.PATCH("/profile", d.Provider.UpdateProfile)
		provider.GET("/my-menu", d.Provider.MyMenu)
		provider.POST("/create-menu", d.Provider.CreateMeal)
		provider.PATCH("/my-menu/:id", d.Provider.UpdateMeal)
		provider.DELETE("/my-menu/:id", d.Provider.DeleteMeal)
		provider.GET("/my-orders", d.Provider.Orders)
		provider.GET("/my-orders/:id", d.Provider.Order)
		provider.PATCH("/my-orders/:id/status", d.Provider.UpdateOrderStatus)
	}

	// ── Admin dashboard ────────────────────────────────────────────
	admin := r.Group("/admin-dashboard")
	admin.Use(d.Gate.Require(models.RoleAdmin), d.Limiter.Handler())
	{
		admin.GET("", d.Admin.Overview)
		admin.GET("/manage-users", d.Admin.Users)
		admin.GET("/all-orders", d.Admin.Orders)
		admin.GET("/all-orders/:id", d.Admin.Order)
		admin.GET("/manage-users/all-reviews", d.Admin.Reviews)
		admin.PATCH("/manage-users/reviews/:id/visibility", d.Admin.ToggleReviewVisibility)
		admin.DELETE("/manage-users/reviews/:id", d.Admin.DeleteReview)
		admin.GET("/categories", d.Admin.Categories)
		admin.POST("/categories", d.Admin.CreateCategory)
		admin.PATCH("/categories/:id", d.Admin.UpdateCategory)
		admin.GET("/profile", d.Admin.Profile)
		admin.PATCH("/update-profile", d.Admin.UpdateProfile)
	}
}
