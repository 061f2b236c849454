package dto

import (
	"github.com/budget-tracker/backend/internal/application/usecase/dashboard"
	"github.com/budget-tracker/backend/internal/domain/entity"
)

// OverviewResponse represents the dashboard overview.
type OverviewResponse struct {
	MonthlyExpenses    []MonthlyExpenseResponse `json:"monthly_expenses"`
	CategoryBreakdown  []CategoryTotalResponse  `json:"category_breakdown"`
	CurrentMonthTotal  float64                  `json:"current_month_total"`
	TransactionCount   int                      `json:"transaction_count"`
	CategoryCount      int                      `json:"category_count"`
	RecentTransactions []TransactionResponse    `json:"recent_transactions"`
}

// MonthlyExpenseResponse represents one bar of the monthly chart.
type MonthlyExpenseResponse struct {
	Month  string  `json:"month"`
	Amount float64 `json:"amount"`
}

// CategoryTotalResponse represents one slice of the category chart.
type CategoryTotalResponse struct {
	Category string  `json:"category"`
	Label    string  `json:"label"`
	Amount   float64 `json:"amount"`
}

// BudgetInsightsResponse represents budget vs actual spending for a month.
type BudgetInsightsResponse struct {
	Month               int                        `json:"month"`
	Year                int                        `json:"year"`
	Comparisons         []BudgetComparisonResponse `json:"comparisons"`
	TopSpendingCategory *BudgetComparisonResponse  `json:"top_spending_category"`
	OverBudget          []BudgetComparisonResponse `json:"over_budget"`
}

// BudgetComparisonResponse represents one budget vs actual row.
type BudgetComparisonResponse struct {
	Category   string  `json:"category"`
	Label      string  `json:"label"`
	Budget     float64 `json:"budget"`
	Actual     float64 `json:"actual"`
	Difference float64 `json:"difference"`
	OverBudget bool    `json:"over_budget"`
}

// ToOverviewResponse converts a GetOverviewOutput to an OverviewResponse DTO.
func ToOverviewResponse(output *dashboard.GetOverviewOutput) OverviewResponse {
	monthly := make([]MonthlyExpenseResponse, len(output.MonthlySeries))
	for i, m := range output.MonthlySeries {
		monthly[i] = MonthlyExpenseResponse{
			Month:  m.Month,
			Amount: m.Amount.InexactFloat64(),
		}
	}

	categories := make([]CategoryTotalResponse, len(output.CategoryTotals))
	for i, c := range output.CategoryTotals {
		categories[i] = CategoryTotalResponse{
			Category: string(c.Category),
			Label:    c.Label,
			Amount:   c.Amount.InexactFloat64(),
		}
	}

	return OverviewResponse{
		MonthlyExpenses:    monthly,
		CategoryBreakdown:  categories,
		CurrentMonthTotal:  output.CurrentMonthTotal.InexactFloat64(),
		TransactionCount:   output.TransactionCount,
		CategoryCount:      output.CategoryCount,
		RecentTransactions: ToTransactionListResponse(output.RecentTransactions),
	}
}

// ToBudgetInsightsResponse converts a GetBudgetInsightsOutput to a BudgetInsightsResponse DTO.
func ToBudgetInsightsResponse(output *dashboard.GetBudgetInsightsOutput) BudgetInsightsResponse {
	response := BudgetInsightsResponse{
		Month:       output.Period.Month,
		Year:        output.Period.Year,
		Comparisons: toComparisonResponses(output.Comparisons),
		OverBudget:  toComparisonResponses(output.OverBudget),
	}
	if output.TopSpending != nil {
		top := toComparisonResponse(*output.TopSpending)
		response.TopSpendingCategory = &top
	}
	return response
}

func toComparisonResponses(rows []entity.BudgetComparison) []BudgetComparisonResponse {
	out := make([]BudgetComparisonResponse, len(rows))
	for i, row := range rows {
		out[i] = toComparisonResponse(row)
	}
	return out
}

func toComparisonResponse(row entity.BudgetComparison) BudgetComparisonResponse {
	return BudgetComparisonResponse{
		Category:   string(row.Category),
		Label:      row.Category.Label(),
		Budget:     row.Budget.InexactFloat64(),
		Actual:     row.Actual.InexactFloat64(),
		Difference: row.Difference.InexactFloat64(),
		OverBudget: row.OverBudget(),
	}
}
