package response

import (
	"time"

	"autokorea/internal/domain/entities"
	"autokorea/internal/finance"
)

type TransactionResponse struct {
	Type        string    `json:"type"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"date"`
	DateSource  string    `json:"date_source"`
	VehicleID   string    `json:"vehicle_id"`
}

// TransactionsResponse surfaces the fallback-dated count so the UI can show
// a warning instead of presenting fabricated dates as facts.
type TransactionsResponse struct {
	Transactions  []TransactionResponse `json:"transactions"`
	FallbackDated int                   `json:"fallback_dated"`
}

func FromTransactions(res finance.TransactionsResult) TransactionsResponse {
	out := TransactionsResponse{
		Transactions:  make([]TransactionResponse, 0, len(res.Transactions)),
		FallbackDated: res.FallbackDated,
	}
	for _, t := range res.Transactions {
		out.Transactions = append(out.Transactions, fromTransaction(t))
	}
	return out
}

func fromTransaction(t entities.Transaction) TransactionResponse {
	return TransactionResponse{
		Type:        string(t.Type),
		Category:    t.Category,
		Description: t.Description,
		Amount:      t.Amount,
		Date:        t.Date,
		DateSource:  string(t.DateSource),
		VehicleID:   t.VehicleID,
	}
}

type MonthlySeriesResponse struct {
	Months  []finance.MonthBucket `json:"months"`
	Skipped int                   `json:"skipped"`
}

func FromMonthlySeries(res finance.SeriesResult) MonthlySeriesResponse {
	months := res.Months
	if months == nil {
		months = []finance.MonthBucket{}
	}
	return MonthlySeriesResponse{Months: months, Skipped: res.Skipped}
}

type TotalsResponse struct {
	TotalRevenue  float64                 `json:"total_revenue"`
	TotalExpenses float64                 `json:"total_expenses"`
	NetProfit     float64                 `json:"net_profit"`
	Expenses      []finance.CategoryShare `json:"expenses"`
}

func FromTotals(t finance.Totals) TotalsResponse {
	expenses := t.Expenses
	if expenses == nil {
		expenses = []finance.CategoryShare{}
	}
	return TotalsResponse{
		TotalRevenue:  t.TotalRevenue,
		TotalExpenses: t.TotalExpenses,
		NetProfit:     t.NetProfit,
		Expenses:      expenses,
	}
}
