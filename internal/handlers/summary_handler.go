package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "pennywise/internal/errors"
	"pennywise/internal/services"
)

// SummaryHandler serves the computed budget views. Both endpoints are
// read-only and recompute from the ledger on every request.
type SummaryHandler struct {
	summaryService services.SummaryServicer
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(summaryService services.SummaryServicer) *SummaryHandler {
	return &SummaryHandler{summaryService: summaryService}
}

// trendQuery holds the query parameters for the trend endpoint.
type trendQuery struct {
	Cycles int `form:"cycles" binding:"omitempty,min=1,max=24"`
}

// GetSummary returns the current-cycle budget summary.
// @Summary     Get budget summary
// @Description Get totals, per-category rows, and income sources for the current cycle
// @Tags        summary
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} budget.Summary "Current cycle summary"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /summary [get]
func (h *SummaryHandler) GetSummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.summaryService.GetSummary(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// GetTrend returns per-cycle expense totals over recent cycles, oldest first.
// @Summary     Get spending trend
// @Description Get total expenses per cycle over the most recent cycles
// @Tags        summary
// @Produce     json
// @Security    BearerAuth
// @Param       cycles query int false "Number of cycles to include (default 5)"
// @Success     200 {object} []budget.TrendPoint "Trend series, oldest first"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /summary/trend [get]
func (h *SummaryHandler) GetTrend(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var query trendQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	trend, err := h.summaryService.GetTrend(userID, query.Cycles)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"trend": trend})
}
