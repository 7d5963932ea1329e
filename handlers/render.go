package handlers

import (
	"net/http"

	"food-ordering-web/gateway"

	"github.com/gin-gonic/gin"
)

// renderFault is the minimal textual fallback for a failed read: the page
// degrades to an error message instead of crashing the render
func renderFault(c *gin.Context, fault *gateway.Fault) {
	c.JSON(http.StatusBadGateway, gin.H{"error": fault.Message})
}

// renderWriteFault reports a failed mutation back to the submitting form
func renderWriteFault(c *gin.Context, fault *gateway.Fault) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{"error": fault.Message})
}

// section shapes one independently-fetched fragment of an aggregate view
func section[T any](res gateway.Result[T]) gin.H {
	if !res.OK() {
		return gin.H{"data": nil, "error": res.Err.Message}
	}
	out := gin.H{"data": res.Data, "error": nil}
	if res.Meta != nil {
		out["meta"] = res.Meta
	}
	return out
}
