package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/budget-tracker/backend/internal/application/usecase/budget"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
	"github.com/budget-tracker/backend/internal/integration/entrypoint/dto"
)

// BudgetController handles budget endpoints.
type BudgetController struct {
	listUseCase *budget.ListBudgetsUseCase
	setUseCase  *budget.SetBudgetUseCase
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(listUseCase *budget.ListBudgetsUseCase, setUseCase *budget.SetBudgetUseCase) *BudgetController {
	return &BudgetController{
		listUseCase: listUseCase,
		setUseCase:  setUseCase,
	}
}

// List handles GET /api/budgets requests.
// @Summary     List budgets
// @Description List the budgets of one month ordered by category
// @Tags        budgets
// @Produce     json
// @Param       month query int true "Month (1-12)"
// @Param       year  query int true "Year (2000-2100)"
// @Success     200 {array}  dto.BudgetResponse
// @Failure     400 {object} dto.ErrorResponse
// @Failure     500 {object} dto.ErrorResponse
// @Router      /api/budgets [get]
func (c *BudgetController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context(), budget.ListBudgetsInput{
		Month: queryInt(ctx, "month"),
		Year:  queryInt(ctx, "year"),
	})
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	setCacheHeader(ctx, output.FromCache)
	ctx.JSON(http.StatusOK, dto.ToBudgetListResponse(output.Budgets))
}

// Set handles POST /api/budgets requests.
// @Summary     Create or update a budget
// @Description Upsert the budget of a category for one month
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Param       request body     dto.SetBudgetRequest true "Budget details"
// @Success     200     {object} dto.BudgetResponse "Budget updated"
// @Success     201     {object} dto.BudgetResponse "Budget created"
// @Failure     400     {object} dto.ErrorResponse
// @Failure     429     {object} dto.ErrorResponse
// @Failure     500     {object} dto.ErrorResponse
// @Router      /api/budgets [post]
func (c *BudgetController) Set(ctx *gin.Context) {
	var req dto.SetBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.handleBindError(ctx, err)
		return
	}

	output, err := c.setUseCase.Execute(ctx.Request.Context(), budget.SetBudgetInput{
		Category: req.Category,
		Amount:   req.Amount,
		Month:    req.Month.IntPtr(),
		Year:     req.Year.IntPtr(),
	})
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	status := http.StatusOK
	if output.Created {
		status = http.StatusCreated
	}
	ctx.JSON(status, dto.ToBudgetResponse(output.Budget))
}

func (c *BudgetController) handleBindError(ctx *gin.Context, err error) {
	fields, ok := failedFields(err)
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(domainerror.ErrCodeMalformedRequest),
			Details: err.Error(),
		})
		return
	}

	for field, tag := range fields {
		if field != "Category" || tag == "required" {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "missing required fields",
				Code:  string(domainerror.ErrCodeMissingBudgetFields),
			})
			return
		}
	}

	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: "category must be one of FOOD, RENT, TRAVEL, OTHER",
		Code:  string(domainerror.ErrCodeInvalidBudgetCategory),
	})
}

// handleBudgetError maps budget errors to HTTP responses.
func (c *BudgetController) handleBudgetError(ctx *gin.Context, err error) {
	var budgetErr *domainerror.BudgetError
	if errors.As(err, &budgetErr) && budgetErr.IsValidation() {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: budgetErr.Message,
			Code:  string(budgetErr.Code),
		})
		return
	}

	slog.Error("Budget request failed", "path", ctx.FullPath(), "error", err)

	response := dto.ErrorResponse{Error: "An internal error occurred"}
	if budgetErr != nil {
		response.Code = string(budgetErr.Code)
	}
	ctx.JSON(http.StatusInternalServerError, response)
}
