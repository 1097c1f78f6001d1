package api

import (
	"fmt"

	"stockdash/internal/domain"
	"stockdash/internal/util"

	"github.com/gin-gonic/gin"
)

type seriesRequest struct {
	Symbol string `json:"symbol" binding:"required"`
}

type seriesPoint struct {
	Date           string              `json:"date"`
	Close          float64             `json:"close"`
	MovingAverages map[string]*float64 `json:"movingAverages"`
	DailyReturn    *float64            `json:"dailyReturnPct"`
}

type seriesResponse struct {
	Symbol string        `json:"symbol"`
	Points []seriesPoint `json:"points"`
}

func (h ApiHandler) series(c *gin.Context) {
	var requestBody seriesRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, 400)
		return
	}

	derived, err := h.DashboardApp.Series(c.Request.Context(), requestBody.Symbol)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := seriesResponse{
		Symbol: derived.Symbol,
		Points: []seriesPoint{},
	}
	for _, p := range derived.Points {
		averages := map[string]*float64{}
		for i, w := range derived.Windows {
			averages[domain.MovingAverageLabel(w)] = p.MovingAverages[i]
		}
		out.Points = append(out.Points, seriesPoint{
			Date:           util.FormatDate(p.Date),
			Close:          p.Close,
			MovingAverages: averages,
			DailyReturn:    p.DailyReturn,
		})
	}

	c.JSON(200, out)
}

type resampleRequest struct {
	Symbol    string `json:"symbol" binding:"required"`
	Frequency string `json:"frequency"`
}

type resampleResponse struct {
	Title     string                   `json:"title"`
	Frequency domain.ResampleFrequency `json:"frequency"`
	Points    []domain.ResampledPoint  `json:"points"`
}

// resample returns non-empty periods in ascending order
func (h ApiHandler) resample(c *gin.Context) {
	var requestBody resampleRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, 400)
		return
	}

	chart, err := h.DashboardApp.Resample(c.Request.Context(), requestBody.Symbol, requestBody.Frequency)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, resampleResponse{
		Title:     chart.Title,
		Frequency: chart.Frequency,
		Points:    chart.Points,
	})
}
