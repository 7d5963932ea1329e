package handlers

import (
	"net/http"
	"sync"

	"food-ordering-web/actions"
	"food-ordering-web/gateway"
	"food-ordering-web/models"
	"food-ordering-web/statemachine"

	"github.com/gin-gonic/gin"
)

// Provider serves the /provider-dashboard area
type Provider struct {
	svc *gateway.ProviderClient
	act *actions.Provider
}

func NewProvider(svc *gateway.ProviderClient, act *actions.Provider) *Provider {
	return &Provider{svc: svc, act: act}
}

// Overview aggregates the kitchen dashboard heading
func (h *Provider) Overview(c *gin.Context) {
	ctx := c.Request.Context()
	auth := gateway.AuthFromRequest(c.Request)

	var (
		wg      sync.WaitGroup
		profile gateway.Result[models.Provider]
		meals   gateway.Result[[]models.Meal]
		orders  gateway.Result[[]models.Order]
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		profile = h.svc.MyProvider(ctx, auth)
	}()
	go func() {
		defer wg.Done()
		meals = h.svc.MyMeals(ctx, auth)
	}()
	go func() {
		defer wg.Done()
		orders = h.svc.Orders(ctx, auth)
	}()
	wg.Wait()

	c.JSON(http.StatusOK, gin.H{
		"profile": section(profile),
		"meals":   section(meals),
		"orders":  section(orders),
	})
}

func (h *Provider) CreateProvider(c *gin.Context) {
	var payload models.CreateProviderPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res := h.act.CreateProvider(c.Request.Context(), gateway.AuthFromRequest(c.Request), payload)
	if !res.OK() {
		renderWriteFault(c, res.Err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"provider": res.Data})
}

func (h *Provider) Profile(c *gin.Context) {
	res := h.svc.MyProvider(c.Request.Context(), gateway.AuthFromRequest(c.Request))
	if !res.OK() {
		renderFault(c, res.Err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"provider": res.Data})
}

func (h *Provider) UpdateProfile(c *gin.Context) {
	var payload models.UpdateProviderPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res := h.act.UpdateProvider(c.Request.Context(), gateway.AuthFromRequest(c.Request), payload)
	if !res.OK() {
		renderWriteFault(c, res.Err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"provider": res.Data})
}

func (h *Provider) MyMenu(c *gin.Context) {
	res := h.svc.MyMeals(c.Request.Context(), gateway.AuthFromRequest(c.Request))
	if !res.OK() {
		renderFault(c, res.Err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"meals": res.Data})
}

func (h *Provider) CreateMeal(c *gin.Context) {
	var payload models.CreateMealPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res := h.act.CreateMeal(c.Request.Context(), gateway.AuthFromRequest(c.Request), payload)
	if !res.OK() {
		renderWriteFault(c, res.Err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"meal": res.Data})
}

func (h *Provider) UpdateMeal(c *gin.Context) {
	var payload models.UpdateMealPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res := h.act.UpdateMeal(c.Request.Context(), gateway.AuthFromRequest(c.Request), c.Param("id"), payload)
	if !res.OK() {
		renderWriteFault(c, res.Err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"meal": res.Data})
}

func (h *Provider) DeleteMeal(c *gin.Context) {
	res := h.act.DeleteMeal(c.Request.Context(), gateway.AuthFromRequest(c.Request), c.Param("id"))
	if !res.OK() {
		renderWriteFault(c, res.Err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"meal": res.Data})
}

// Orders lists incoming orders, each annotated with the transitions the
// provider may request next so the dashboard renders the right controls
func (h *Provider) Orders(c *gin.Context) {
	res := h.svc.Orders(c.Request.Context(), gateway.AuthFromRequest(c.Request))
	if !res.OK() {
		renderFault(c, res.Err)
		return
	}

	type orderView struct {
		models.Order
		NextStatuses []models.OrderStatus `json:"nextStatuses"`
	}
	views := make([]orderView, 0, len(*res.Data))
	for _, order := range *res.Data {
		views = append(views, orderView{
			Order:        order,
			NextStatuses: statemachine.NextStatusesFor(order.Status, statemachine.ActorProvider),
		})
	}
	c.JSON(http.StatusOK, gin.H{"orders": views})
}

func (h *Provider) Order(c *gin.Context) {
	res := h.svc.Order(c.Request.Context(), gateway.AuthFromRequest(c.Request), c.Param("id"))
	if !res.OK() {
		renderFault(c, res.Err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": res.Data})
}

type updateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// UpdateOrderStatus validates the requested transition against the state
// machine before spending a round trip; the backend remains the final
// arbiter
func (h *Provider) UpdateOrderStatus(c *gin.Context) {
	auth := gateway.AuthFromRequest(c.Request)
	orderID := c.Param("id")

	var req updateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	current := h.svc.Order(c.Request.Context(), auth, orderID)
	if !current.OK() {
		renderFault(c, current.Err)
		return
	}
	if err := statemachine.CanTransition(current.Data.Status, req.Status, statemachine.ActorProvider); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":         "Cannot update order status",
			"reason":        err.Error(),
			"current_state": current.Data.Status,
		})
		return
	}

	res := h.act.UpdateOrderStatus(c.Request.Context(), auth, orderID, req.Status)
	if !res.OK() {
		renderWriteFault(c, res.Err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": res.Data})
}
