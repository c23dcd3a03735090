package api

import (
	"errors"
	"fmt"
	"net/http"

	"manisera/affirmation-app/internal/domain"
	"manisera/affirmation-app/internal/service"

	"github.com/gin-gonic/gin"
)

// PremiumHandler serves the simulated subscription endpoints.
type PremiumHandler struct {
	premiumService service.PremiumService
}

// NewPremiumHandler creates a new PremiumHandler.
func NewPremiumHandler(premiumService service.PremiumService) *PremiumHandler {
	return &PremiumHandler{premiumService: premiumService}
}

// --- Request Structs ---

type CheckoutRequest struct {
	Plan string `json:"plan" binding:"required,oneof=monthly yearly"`
}

// --- Handler Methods ---

// Status godoc
// @Summary Get the authenticated user's premium status
// @Description Expiry is applied on read; a lapsed subscription reads as free.
// @Tags Premium
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.PremiumStatus
// @Failure 401 {object} gin.H "Unauthorized"
// @Router /premium/status [get]
func (h *PremiumHandler) Status(c *gin.Context) {
	userID, err := getUserObjectIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, err.Error())
		return
	}

	status, err := h.premiumService.Status(c.Request.Context(), userID)
	if err != nil {
		handleRepoError(c, err, "Premium status")
		return
	}
	c.JSON(http.StatusOK, status)
}

// Checkout godoc
// @Summary Purchase a premium plan (simulated)
// @Description Simulates the payment flow and activates the subscription.
// @Tags Premium
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param plan body CheckoutRequest true "Plan to purchase"
// @Success 200 {object} domain.PremiumStatus
// @Failure 400 {object} gin.H "Unknown plan"
// @Failure 401 {object} gin.H "Unauthorized"
// @Router /premium/checkout [post]
func (h *PremiumHandler) Checkout(c *gin.Context) {
	userID, err := getUserObjectIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, err.Error())
		return
	}

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	status, err := h.premiumService.Checkout(c.Request.Context(), userID, domain.PremiumPlan(req.Plan))
	if err != nil {
		if errors.Is(err, service.ErrUnknownPlan) {
			abortWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		handleRepoError(c, err, "Premium status")
		return
	}
	c.JSON(http.StatusOK, status)
}
