package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/budget-tracker/backend/internal/application/usecase/dashboard"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
	"github.com/budget-tracker/backend/internal/integration/entrypoint/dto"
)

// DashboardController handles dashboard endpoints.
type DashboardController struct {
	overviewUseCase *dashboard.GetOverviewUseCase
	insightsUseCase *dashboard.GetBudgetInsightsUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	overviewUseCase *dashboard.GetOverviewUseCase,
	insightsUseCase *dashboard.GetBudgetInsightsUseCase,
) *DashboardController {
	return &DashboardController{
		overviewUseCase: overviewUseCase,
		insightsUseCase: insightsUseCase,
	}
}

// GetOverview handles GET /api/dashboard requests.
// @Summary     Spending overview
// @Description Monthly series of the current year, category breakdown and recent transactions
// @Tags        dashboard
// @Produce     json
// @Success     200 {object} dto.OverviewResponse
// @Failure     500 {object} dto.ErrorResponse
// @Router      /api/dashboard [get]
func (c *DashboardController) GetOverview(ctx *gin.Context) {
	output, err := c.overviewUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	setCacheHeader(ctx, output.FromCache)
	ctx.JSON(http.StatusOK, dto.ToOverviewResponse(output))
}

// GetBudgetInsights handles GET /api/budgets/insights requests.
// @Summary     Budget insights
// @Description Compare the budgets of a month with its signed spending
// @Tags        budgets
// @Produce     json
// @Param       month query int false "Month (1-12), defaults to the current month"
// @Param       year  query int false "Year (2000-2100), defaults to the current year"
// @Success     200 {object} dto.BudgetInsightsResponse
// @Failure     400 {object} dto.ErrorResponse
// @Failure     500 {object} dto.ErrorResponse
// @Router      /api/budgets/insights [get]
func (c *DashboardController) GetBudgetInsights(ctx *gin.Context) {
	output, err := c.insightsUseCase.Execute(ctx.Request.Context(), dashboard.GetBudgetInsightsInput{
		Month: queryInt(ctx, "month"),
		Year:  queryInt(ctx, "year"),
	})
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetInsightsResponse(output))
}

// handleDashboardError maps dashboard errors to HTTP responses.
func (c *DashboardController) handleDashboardError(ctx *gin.Context, err error) {
	var dashErr *domainerror.DashboardError
	if errors.As(err, &dashErr) {
		statusCode := c.getStatusCodeForDashboardError(dashErr.Code)
		if statusCode == http.StatusInternalServerError {
			slog.Error("Dashboard request failed", "path", ctx.FullPath(), "error", err)
			ctx.JSON(statusCode, dto.ErrorResponse{
				Error: "An internal error occurred",
				Code:  string(dashErr.Code),
			})
			return
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: dashErr.Message,
			Code:  string(dashErr.Code),
		})
		return
	}

	slog.Error("Dashboard request failed", "path", ctx.FullPath(), "error", err)
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForDashboardError maps dashboard error codes to HTTP status codes.
func (c *DashboardController) getStatusCodeForDashboardError(code domainerror.DashboardErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidDashboardPeriod:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
