package actions_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"food-ordering-web/actions"
	"food-ordering-web/gateway"
	"food-ordering-web/models"
)

// recordingInvalidator captures every Invalidate call for assertion
type recordingInvalidator struct {
	mu    sync.Mutex
	calls [][]string
}

func (r *recordingInvalidator) Invalidate(_ context.Context, tags ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, tags)
}

func (r *recordingInvalidator) tagSets() [][]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

func successBackend(t *testing.T, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
}

func failingBackend(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"success":false,"message":"order window closed"}`))
	}))
}

func TestCreateOrderInvalidatesOrdersExactlyOnce(t *testing.T) {
	backend := successBackend(t, `{"success":true,"data":{"id":"o1","status":"PLACED"}}`)
	defer backend.Close()

	inv := &recordingInvalidator{}
	customer := actions.NewCustomer(
		gateway.NewCustomer(gateway.NewClient(backend.URL, nil, nil)), inv)

	res := customer.CreateOrder(context.Background(), gateway.AuthContext{}, models.CreateOrderPayload{
		DeliveryAddress: "12 Harbor St",
		Items:           []models.CreateOrderItem{{MealID: "m1", Quantity: 2}},
	})

	require.True(t, res.OK())
	sets := inv.tagSets()
	require.Len(t, sets, 1)
	assert.Equal(t, []string{"orders"}, sets[0])
}

func TestFailedWriteNeverInvalidates(t *testing.T) {
	backend := failingBackend(t)
	defer backend.Close()

	inv := &recordingInvalidator{}
	customer := actions.NewCustomer(
		gateway.NewCustomer(gateway.NewClient(backend.URL, nil, nil)), inv)

	res := customer.CreateOrder(context.Background(), gateway.AuthContext{}, models.CreateOrderPayload{
		DeliveryAddress: "12 Harbor St",
		Items:           []models.CreateOrderItem{{MealID: "m1", Quantity: 1}},
	})

	require.False(t, res.OK())
	assert.Equal(t, "order window closed", res.Err.Message)
	assert.Empty(t, inv.tagSets())
}

func TestUpdateMealInvalidatesBothMenuAndCatalog(t *testing.T) {
	backend := successBackend(t, `{"success":true,"data":{"id":"m1","name":"Pad Thai"}}`)
	defer backend.Close()

	inv := &recordingInvalidator{}
	provider := actions.NewProvider(
		gateway.NewProvider(gateway.NewClient(backend.URL, nil, nil)), inv)

	name := "Pad Thai"
	res := provider.UpdateMeal(context.Background(), gateway.AuthContext{}, "m1", models.UpdateMealPayload{Name: &name})

	require.True(t, res.OK())
	sets := inv.tagSets()
	require.Len(t, sets, 1)
	assert.ElementsMatch(t, []string{"provider-meals", "meals"}, sets[0])
}

func TestUpdateOrderStatusInvalidatesBothDashboardsAndOrderDetail(t *testing.T) {
	backend := successBackend(t, `{"success":true,"data":{"id":"o9","status":"PREPARING"}}`)
	defer backend.Close()

	inv := &recordingInvalidator{}
	provider := actions.NewProvider(
		gateway.NewProvider(gateway.NewClient(backend.URL, nil, nil)), inv)

	res := provider.UpdateOrderStatus(context.Background(), gateway.AuthContext{}, "o9", models.StatusPreparing)

	require.True(t, res.OK())
	sets := inv.tagSets()
	require.Len(t, sets, 1)
	assert.ElementsMatch(t, []string{"provider-orders", "orders", "order-o9"}, sets[0])
}

func TestDeleteReviewInvalidatesReviews(t *testing.T) {
	backend := successBackend(t, `{"success":true,"message":"deleted"}`)
	defer backend.Close()

	inv := &recordingInvalidator{}
	customer := actions.NewCustomer(
		gateway.NewCustomer(gateway.NewClient(backend.URL, nil, nil)), inv)

	res := customer.DeleteReview(context.Background(), gateway.AuthContext{}, "r1")

	require.True(t, res.OK())
	sets := inv.tagSets()
	require.Len(t, sets, 1)
	assert.Equal(t, []string{"reviews"}, sets[0])
}

func TestAdminCategoryMutationsInvalidateCategories(t *testing.T) {
	backend := successBackend(t, `{"success":true,"data":{"id":"c1","name":"Seafood"}}`)
	defer backend.Close()

	inv := &recordingInvalidator{}
	admin := actions.NewAdmin(
		gateway.NewAdmin(gateway.NewClient(backend.URL, nil, nil)), inv)

	res := admin.CreateCategory(context.Background(), gateway.AuthContext{}, "Seafood")
	require.True(t, res.OK())

	res = admin.UpdateCategory(context.Background(), gateway.AuthContext{}, "c1", "Shellfish")
	require.True(t, res.OK())

	sets := inv.tagSets()
	require.Len(t, sets, 2)
	assert.Equal(t, []string{"categories"}, sets[0])
	assert.Equal(t, []string{"categories"}, sets[1])
}
