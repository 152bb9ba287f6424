package handlers

import (
	"net/http"

	request "woodshop_builds/internal/adapter/http/dto/request"
	"woodshop_builds/internal/domain/pricing"
	"woodshop_builds/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)
)

// EstimateHandler serves the pricing preview used by the configurator's
// estimate widget. Pure computation, no build is touched or stored.

type EstimateHandler struct{}

func NewEstimateHandler() *EstimateHandler {
	return &EstimateHandler{}
}

func (h *EstimateHandler) PreviewEstimate(c *gin.Context) {
	var payload request.EstimatePreviewRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	breakdown := pricing.Estimate(payload.ToDims(), payload.ToOptions())
	c.JSON(http.StatusOK, breakdown)
}
