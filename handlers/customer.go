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

// Customer serves the /dashboard area
type Customer struct {
	svc *gateway.CustomerClient
	act *actions.Customer
}

func NewCustomer(svc *gateway.CustomerClient, act *actions.Customer) *Customer {
	return &Customer{svc: svc, act: act}
}

// Overview aggregates the customer dashboard heading
func (h *Customer) Overview(c *gin.Context) {
	ctx := c.Request.Context()
	auth := gateway.AuthFromRequest(c.Request)

	var (
		wg      sync.WaitGroup
		profile gateway.Result[models.User]
		orders  gateway.Result[[]models.Order]
		reviews gateway.Result[[]models.Review]
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		profile = h.svc.MyProfile(ctx, auth)
	}()
	go func() {
		defer wg.Done()
		orders = h.svc.MyOrders(ctx, auth)
	}()
	go func() {
		defer wg.Done()
		reviews = h.svc.MyReviews(ctx, auth)
	}()
	wg.Wait()

	c.JSON(http.StatusOK, gin.H{
		"profile": section(profile),
		"orders":  section(orders),
		"reviews": section(reviews),
	})
}

// MyOrders lists the customer's orders alongside the subset still open to
// cancellation; only PLACED orders qualify
func (h *Customer) MyOrders(c *gin.Context) {
	res := h.svc.MyOrders(c.Request.Context(), gateway.AuthFromRequest(c.Request))
	if !res.OK() {
		renderFault(c, res.Err)
		return
	}
	orders := *res.Data
	c.JSON(http.StatusOK, gin.H{
		"orders":     orders,
		"cancelable": cancelableOrders(orders),
	})
}

func (h *Customer) CreateOrder(c *gin.Context) {
	var payload models.CreateOrderPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res := h.act.CreateOrder(c.Request.Context(), gateway.AuthFromRequest(c.Request), payload)
	if !res.OK() {
		renderWriteFault(c, res.Err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"order": res.Data})
}

func (h *Customer) CancelOrder(c *gin.Context) {
	res := h.act.CancelOrder(c.Request.Context(), gateway.AuthFromRequest(c.Request), c.Param("id"))
	if !res.OK() {
		renderWriteFault(c, res.Err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": res.Data})
}

func (h *Customer) MyReviews(c *gin.Context) {
	res := h.svc.MyReviews(c.Request.Context(), gateway.AuthFromRequest(c.Request))
	if !res.OK() {
		renderFault(c, res.Err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": res.Data})
}

func (h *Customer) CreateReview(c *gin.Context) {
	var payload models.CreateReviewPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res := h.act.CreateReview(c.Request.Context(), gateway.AuthFromRequest(c.Request), payload)
	if !res.OK() {
		renderWriteFault(c, res.Err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"review": res.Data})
}

func (h *Customer) DeleteReview(c *gin.Context) {
	res := h.act.DeleteReview(c.Request.Context(), gateway.AuthFromRequest(c.Request), c.Param("id"))
	if !res.OK() {
		renderWriteFault(c, res.Err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

func (h *Customer) Profile(c *gin.Context) {
	res := h.svc.MyProfile(c.Request.Context(), gateway.AuthFromRequest(c.Request))
	if !res.OK() {
		renderFault(c, res.Err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": res.Data})
}

func (h *Customer) UpdateProfile(c *gin.Context) {
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

// cancelableOrders filters the orders still open to cancellation
func cancelableOrders(orders []models.Order) []models.Order {
	cancelable := make([]models.Order, 0)
	for _, order := range orders {
		if statemachine.CanCancel(order.Status) {
			cancelable = append(cancelable, order)
		}
	}
	return cancelable
}
