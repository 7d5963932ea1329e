package handlers

import (
	"net/http"
	"sync"

	"food-ordering-web/actions"
	"food-ordering-web/gateway"
	"food-ordering-web/models"

	"github.com/gin-gonic/gin"
)

// Admin serves the /admin-dashboard area
type Admin struct {
	svc *gateway.AdminClient
	pub *gateway.PublicClient
	act *actions.Admin
}

func NewAdmin(svc *gateway.AdminClient, pub *gateway.PublicClient, act *actions.Admin) *Admin {
	return &Admin{svc: svc, pub: pub, act: act}
}

// Overview aggregates platform stats for the admin heading
func (h *Admin) Overview(c *gin.Context) {
	ctx := c.Request.Context()
	auth := gateway.AuthFromRequest(c.Request)

	var (
		wg      sync.WaitGroup
		users   gateway.Result[[]models.User]
		orders  gateway.Result[[]models.Order]
		reviews gateway.Result[[]models.Review]
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		users = h.svc.Users(ctx, auth)
	}()
	go func() {
		defer wg.Done()
		orders = h.svc.Orders(ctx, auth)
	}()
	go func() {
		defer wg.Done()
		reviews = h.svc.Reviews(ctx, auth)
	}()
	wg.Wait()

	c.JSON(http.StatusOK, gin.H{
		"users":   section(users),
		"orders":  section(orders),
		"reviews": section(reviews),
	})
}

func (h *Admin) Users(c *gin.Context) {
	res := h.svc.Users(c.Request.Context(), gateway.AuthFromRequest(c.Request))
	if !res.OK() {
		renderFault(c, res.Err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": res.Data})
}

func (h *Admin) Orders(c *gin.Context) {
	res := h.svc.Orders(c.Request.Context(), gateway.AuthFromRequest(c.Request))
	if !res.OK() {
		renderFault(c, res.Err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": res.Data})
}

func (h *Admin) Order(c *gin.Context) {
	res := h.svc.Order(c.Request.Context(), gateway.AuthFromRequest(c.Request), c.Param("id"))
	if !res.OK() {
		renderFault(c, res.Err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": res.Data})
}

func (h *Admin) Reviews(c *gin.Context) {
	res := h.svc.Reviews(c.Request.Context(), gateway.AuthFromRequest(c.Request))
	if !res.OK() {
		renderFault(c, res.Err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": res.Data})
}

type reviewVisibilityRequest struct {
	IsHidden *bool `json:"isHidden" binding:"required"`
}

func (h *Admin) ToggleReviewVisibility(c *gin.Context) {
	var req reviewVisibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res := h.act.ToggleReviewVisibility(c.Request.Context(), gateway.AuthFromRequest(c.Request), c.Param("id"), *req.IsHidden)
	if !res.OK() {
		renderWriteFault(c, res.Err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"review": res.Data})
}

func (h *Admin) DeleteReview(c *gin.Context) {
	res := h.act.DeleteReview(c.Request.Context(), gateway.AuthFromRequest(c.Request), c.Param("id"))
	if !res.OK() {
		renderWriteFault(c, res.Err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// Categories reads the taxonomy no-store so moderation always sees the
// current state, bypassing the hourly public cache
func (h *Admin) Categories(c *gin.Context) {
	res := h.pub.GetCategories(c.Request.Context(), &gateway.FetchOptions{Cache: gateway.CacheNoStore})
	if !res.OK() {
		renderFault(c, res.Err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": res.Data})
}

func (h *Admin) CreateCategory(c *gin.Context) {
	var payload models.CategoryPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res := h.act.CreateCategory(c.Request.Context(), gateway.AuthFromRequest(c.Request), payload.Name)
	if !res.OK() {
		renderWriteFault(c, res.Err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"category": res.Data})
}

func (h *Admin) UpdateCategory(c *gin.Context) {
	var payload models.CategoryPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res := h.act.UpdateCategory(c.Request.Context(), gateway.AuthFromRequest(c.Request), c.Param("id"), payload.Name)
	if !res.OK() {
		renderWriteFault(c, res.Err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"category": res.Data})
}

func (h *Admin) Profile(c *gin.Context) {
	res := h.svc.MyProfile(c.Request.Context(), gateway.AuthFromRequest(c.Request))
	if !res.OK() {
		renderFault(c, res.Err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": res.Data})
}

func (h *Admin) UpdateProfile(c *gin.Context) {
	var payload models.UpdateProfilePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res := h.act.UpdateProfile(c.Request.Context(), gateway.AuthFromRequest(c.Request), payload)
	if !res.OK() {
		renderWriteFault(c, res.Err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": res.Data})
}
