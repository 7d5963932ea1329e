package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"food-ordering-web/actions"
	"food-ordering-web/gateway"
	"food-ordering-web/models"
)

func TestCancelableOrdersOnlyPlaced(t *testing.T) {
	orders := []models.Order{
		{ID: "o1", Status: models.StatusPlaced},
		{ID: "o2", Status: models.StatusPreparing},
		{ID: "o3", Status: models.StatusDelivered},
		{ID: "o4", Status: models.StatusPlaced},
	}

	cancelable := cancelableOrders(orders)
	require.Len(t, cancelable, 2)
	assert.Equal(t, "o1", cancelable[0].ID)
	assert.Equal(t, "o4", cancelable[1].ID)
}

func TestCancelableOrdersEmptyListStaysEmptyNotNil(t *testing.T) {
	assert.NotNil(t, cancelableOrders(nil))
	assert.Empty(t, cancelableOrders(nil))
}

type noopInvalidator struct{}

func (noopInvalidator) Invalidate(context.Context, ...string) {}

func customerRouter(backendURL string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	core := gateway.NewClient(backendURL, nil, nil)
	svc := gateway.NewCustomer(core)
	h := NewCustomer(svc, actions.NewCustomer(svc, noopInvalidator{}))

	r := gin.New()
	r.GET("/dashboard/my-orders", h.MyOrders)
	r.PATCH("/dashboard/my-orders/:id/cancel", h.CancelOrder)
	return r
}

func TestMyOrdersMarksStillCancelableSubset(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"data":[
			{"id":"o1","status":"PLACED"},
			{"id":"o2","status":"PREPARING"}
		]}`))
	}))
	defer backend.Close()

	r := customerRouter(backend.URL)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard/my-orders", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	// both orders listed, only the PLACED one cancelable
	assert.Equal(t, 1, strings.Count(body, `"o2"`))
	assert.Equal(t, 2, strings.Count(body, `"o1"`))
}

func TestCancelOrderRejectionRendersBackendMessage(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"success":false,"message":"Order already being prepared"}`))
	}))
	defer backend.Close()

	r := customerRouter(backend.URL)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/dashboard/my-orders/o2/cancel", nil))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "Order already being prepared")
}
