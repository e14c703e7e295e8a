package session_controller

import (
	"net/http"

	"github.com/devkeshravani/engagewise-commerce-76/config"
	"github.com/devkeshravani/engagewise-commerce-76/controllers/ecommerce/respond"
	"github.com/devkeshravani/engagewise-commerce-76/models"
	"github.com/devkeshravani/engagewise-commerce-76/services"
	"github.com/gin-gonic/gin"
)

// GetSessionCounts godoc
// @Summary Get header badge counts
// @Description Cart units and wishlist entries for the current shopper
// @Tags session
// @Produce json
// @Param X-Session-ID header string false "Shopper session id"
// @Success 200 {object} models.ApiResponse{data=models.SessionCounts}
// @Router /session/counts [get]
func GetSessionCounts(c *gin.Context) {
	sessionID, ok := respond.Session(c)
	if !ok {
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	sf := services.GetStorefront()
	counts, err := services.Counts(ctx, sf.Carts, sf.Wishlist, sessionID)
	if err != nil {
		respond.Error(c, err, "Failed to fetch counts")
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Counts fetched successfully", counts))
}
