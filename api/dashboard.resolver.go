package api

import (
	"fmt"

	"stockdash/internal/app"

	"github.com/gin-gonic/gin"
)

type dashboardRequest struct {
	Symbol    string `json:"symbol"`
	Frequency string `json:"frequency"`
}

// dashboard always answers 200. Charts that could not be built are
// null and explained under "errors"
func (h ApiHandler) dashboard(c *gin.Context) {
	var requestBody dashboardRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&requestBody); err != nil {
			returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, 400)
			return
		}
	}

	out := h.DashboardApp.Render(c.Request.Context(), app.DashboardInput{
		Symbol:    requestBody.Symbol,
		Frequency: requestBody.Frequency,
	})

	c.JSON(200, out)
}
