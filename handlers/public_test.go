package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"food-ordering-web/gateway"
	"food-ordering-web/models"
)

func TestResolveCategorySwapsNameForID(t *testing.T) {
	categories := []models.Category{
		{ID: "c1", Name: "Seafood"},
		{ID: "c2", Name: "Desserts"},
	}

	filter := &models.MealFilter{Category: "seafood"} // match is case-insensitive
	resolveCategory(filter, categories)
	assert.Equal(t, "c1", filter.CategoryID)
	assert.Empty(t, filter.Category)

	filter = &models.MealFilter{Category: "Nonexistent"}
	resolveCategory(filter, categories)
	assert.Empty(t, filter.CategoryID, "unmatched name resolves to no id")
	assert.Empty(t, filter.Category, "name is always cleared")
}

func TestListMealsResolvesCategoryNameBeforeFetch(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var mealsQuery string
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/categories":
			w.Write([]byte(`{"success":true,"data":[{"id":"c1","name":"Seafood"}]}`))
		case "/meals":
			mealsQuery = r.URL.RawQuery
			w.Write([]byte(`{"success":true,"data":[{"id":"m1","name":"Grilled Salmon"}]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"success":false,"message":"not found"}`))
		}
	}))
	defer backend.Close()

	h := NewPublic(gateway.NewPublic(gateway.NewClient(backend.URL, nil, nil)))
	r := gin.New()
	r.GET("/meals", h.ListMeals)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/meals?category=Seafood", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, mealsQuery, "categoryId=c1")
	assert.NotContains(t, mealsQuery, "category=Seafood", "the raw name must never reach the backend")
	assert.Contains(t, w.Body.String(), "Grilled Salmon")
}

func TestListMealsDropsNameWhenCategoriesUnavailable(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var mealsQuery string
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/categories":
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte(`{"success":false,"message":"upstream down"}`))
		case "/meals":
			mealsQuery = r.URL.RawQuery
			w.Write([]byte(`{"success":true,"data":[]}`))
		}
	}))
	defer backend.Close()

	h := NewPublic(gateway.NewPublic(gateway.NewClient(backend.URL, nil, nil)))
	r := gin.New()
	r.GET("/meals", h.ListMeals)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/meals?category=Seafood", nil))

	require.Equal(t, http.StatusOK, w.Code, "the meals page must render even if categories fail")
	assert.Empty(t, mealsQuery, "no category filter survives an unresolvable name")
}

func TestLandingDegradesPerSection(t *testing.T) {
	gin.SetMode(gin.TestMode)

	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/meals":
			w.Write([]byte(`{"success":true,"data":[{"id":"m1","name":"Pho"}]}`))
		case "/providers":
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte(`{"success":false,"message":"providers unavailable"}`))
		case "/categories":
			w.Write([]byte(`{"success":true,"data":[{"id":"c1","name":"Soup"}]}`))
		}
	}))
	defer backend.Close()

	h := NewPublic(gateway.NewPublic(gateway.NewClient(backend.URL, nil, nil)))
	r := gin.New()
	r.GET("/", h.Landing)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Pho")
	assert.Contains(t, body, "providers unavailable")
	assert.Contains(t, body, "Soup")
}
