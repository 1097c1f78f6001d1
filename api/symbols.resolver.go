package api

import (
	"stockdash/internal/domain"

	"github.com/gin-gonic/gin"
)

type symbolsResponse struct {
	Symbols     []string                   `json:"symbols"`
	Frequencies []domain.ResampleFrequency `json:"frequencies"`
}

func (h ApiHandler) symbols(c *gin.Context) {
	c.JSON(200, symbolsResponse{
		Symbols:     h.DashboardApp.Symbols(),
		Frequencies: domain.ResampleFrequencies,
	})
}

func (h ApiHandler) correlation(c *gin.Context) {
	chart, err := h.DashboardApp.Correlation(c.Request.Context())
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	c.JSON(200, chart)
}
