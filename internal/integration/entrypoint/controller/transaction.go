package controller

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/budget-tracker/backend/internal/application/usecase/transaction"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
	"github.com/budget-tracker/backend/internal/integration/entrypoint/dto"
)

// TransactionController handles transaction endpoints.
type TransactionController struct {
	listUseCase   *transaction.ListTransactionsUseCase
	createUseCase *transaction.CreateTransactionUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	listUseCase *transaction.ListTransactionsUseCase,
	createUseCase *transaction.CreateTransactionUseCase,
) *TransactionController {
	return &TransactionController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
	}
}

// List handles GET /api/transactions requests.
// @Summary     List transactions
// @Description List transactions newest first, optionally limited to one month
// @Tags        transactions
// @Produce     json
// @Param       month     query int    false "Month (1-12); applied only together with year"
// @Param       year      query int    false "Year (2000-2100); applied only together with month"
// @Param       sort      query string false "Sort field" Enums(id, date, amount, description, category)
// @Param       direction query string false "Sort direction" Enums(asc, desc)
// @Success     200 {array}  dto.TransactionResponse
// @Failure     500 {object} dto.ErrorResponse
// @Router      /api/transactions [get]
func (c *TransactionController) List(ctx *gin.Context) {
	input := transaction.ListTransactionsInput{
		Month:         queryInt(ctx, "month"),
		Year:          queryInt(ctx, "year"),
		SortField:     ctx.Query("sort"),
		SortDirection: ctx.Query("direction"),
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	setCacheHeader(ctx, output.FromCache)
	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(output.Transactions))
}

// Create handles POST /api/transactions requests.
// @Summary     Create a transaction
// @Description Record a transaction. Cached transaction lists are not invalidated.
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       request body     dto.CreateTransactionRequest true "Transaction details"
// @Success     201     {object} dto.TransactionResponse
// @Failure     400     {object} dto.ErrorResponse
// @Failure     429     {object} dto.ErrorResponse
// @Failure     500     {object} dto.ErrorResponse
// @Router      /api/transactions [post]
func (c *TransactionController) Create(ctx *gin.Context) {
	var req dto.CreateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.handleBindError(ctx, err)
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format. Use RFC3339 or YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidTransactionDate),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), transaction.CreateTransactionInput{
		Amount:      req.Amount,
		Date:        &date,
		Description: req.Description,
		Category:    req.Category,
	})
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(output.Transaction))
}

// handleBindError maps binding failures onto the same codes the use case
// produces, so callers see one error vocabulary.
func (c *TransactionController) handleBindError(ctx *gin.Context, err error) {
	fields, ok := failedFields(err)
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(domainerror.ErrCodeMalformedRequest),
			Details: err.Error(),
		})
		return
	}

	for _, field := range []string{"Amount", "Date", "Description"} {
		tag, failed := fields[field]
		if !failed {
			continue
		}
		if field == "Description" && tag == "max" {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: fmt.Sprintf("description must not exceed %d characters", transaction.MaxDescriptionLength),
				Code:  string(domainerror.ErrCodeDescriptionTooLong),
			})
			return
		}
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "amount, date and description are required",
			Code:  string(domainerror.ErrCodeMissingTransactionFields),
		})
		return
	}

	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: "category must be one of FOOD, RENT, TRAVEL, OTHER",
		Code:  string(domainerror.ErrCodeInvalidTransactionCategory),
	})
}

// handleTransactionError maps transaction errors to HTTP responses.
func (c *TransactionController) handleTransactionError(ctx *gin.Context, err error) {
	var txnErr *domainerror.TransactionError
	if errors.As(err, &txnErr) {
		if txnErr.IsValidation() {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: txnErr.Message,
				Code:  string(txnErr.Code),
			})
			return
		}

		slog.Error("Transaction request failed",
			"path", ctx.FullPath(),
			"code", txnErr.Code,
			"error", err,
		)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
			Code:  string(txnErr.Code),
		})
		return
	}

	slog.Error("Transaction request failed", "path", ctx.FullPath(), "error", err)
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
