// Package finance derives transaction and revenue views from the vehicle
// collection. Everything here is a pure, single-pass projection: nothing is
// persisted, inputs are never mutated, and calling any derivation twice on the
// same collection yields identical output.
package finance

import (
	"fmt"
	"sort"
	"time"

	"autokorea/internal/domain/entities"
)

// TransactionsResult carries the derived ledger view. FallbackDated counts
// transactions whose date had to come from the caller-supplied fallback, so a
// consumer can warn instead of trusting a fabricated date silently.
type TransactionsResult struct {
	Transactions  []entities.Transaction
	FallbackDated int
}

// MonthBucket is one calendar month of sales.
type MonthBucket struct {
	Month      string  `json:"month"` // YYYY-MM
	Revenue    float64 `json:"revenue"`
	SalesCount int     `json:"sales_count"`
}

// SeriesResult is the monthly revenue series plus the count of sold vehicles
// that had no resolvable sale date and were therefore excluded. Excluded means
// excluded: there is no sentinel "unknown" bucket.
type SeriesResult struct {
	Months  []MonthBucket
	Skipped int
}

// Totals is the headline financial summary.
//
// NetProfit deliberately compares sold-only revenue against the expenses of
// every vehicle in the set, unsold inventory included. That is the business's
// long-standing reading of "net profit" and is preserved as policy here.
type Totals struct {
	TotalRevenue  float64         `json:"total_revenue"`
	TotalExpenses float64         `json:"total_expenses"`
	NetProfit     float64         `json:"net_profit"`
	Expenses      []CategoryShare `json:"expenses"`
}

// CategoryShare is one slice of the expense structure, with its percentage of
// all expenses. Percentages are whole numbers, matching what the reports
// screen has always shown.
type CategoryShare struct {
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	Percentage int     `json:"percentage"`
}

// DefaultSeriesMonths is how far back the monthly chart reaches unless the
// caller asks otherwise.
const DefaultSeriesMonths = 6

// DeriveTransactions synthesizes the expense/income ledger from vehicle cost
// fields. Output is sorted by date descending; entries with equal dates keep
// their input order.
func DeriveTransactions(vehicles []entities.Vehicle, fallback time.Time) TransactionsResult {
	var res TransactionsResult

	add := func(v entities.Vehicle, typ entities.TransactionType, category string, amount float64, date time.Time, src entities.DateSource) {
		if src == entities.DateFromFallback {
			res.FallbackDated++
		}
		res.Transactions = append(res.Transactions, entities.Transaction{
			Type:        typ,
			Category:    category,
			Description: fmt.Sprintf("%s %s %d (%s)", v.Brand, v.Model, v.Year, v.VIN),
			Amount:      amount,
			Date:        date,
			DateSource:  src,
			VehicleID:   v.ID,
		})
	}

	for _, v := range vehicles {
		purchaseDate, purchaseSrc := resolveDate(fallback, datePick{v.PurchaseDate, entities.DateFromPurchase})
		arrivalDate, arrivalSrc := resolveDate(fallback,
			datePick{v.ArrivalDate, entities.DateFromArrival},
			datePick{v.PurchaseDate, entities.DateFromPurchase})

		if v.PurchasePrice > 0 {
			add(v, entities.TransactionExpense, entities.CategoryVehiclePurchase, v.PurchasePrice, purchaseDate, purchaseSrc)
		}
		if v.DeliveryCost > 0 {
			add(v, entities.TransactionExpense, entities.CategoryDelivery, v.DeliveryCost, purchaseDate, purchaseSrc)
		}
		if v.CustomsCost > 0 {
			add(v, entities.TransactionExpense, entities.CategoryCustoms, v.CustomsCost, arrivalDate, arrivalSrc)
		}
		if v.RepairCost > 0 {
			add(v, entities.TransactionExpense, entities.CategoryRepair, v.RepairCost, arrivalDate, arrivalSrc)
		}
		if v.OtherCost > 0 {
			add(v, entities.TransactionExpense, entities.CategoryOther, v.OtherCost, arrivalDate, arrivalSrc)
		}

		if v.Status == entities.VehicleStatusSold && v.SellingPrice > 0 {
			saleDate, saleSrc := resolveDate(fallback,
				datePick{v.SoldDate, entities.DateFromSold},
				datePick{v.ArrivalDate, entities.DateFromArrival},
				datePick{v.PurchaseDate, entities.DateFromPurchase})
			add(v, entities.TransactionIncome, entities.CategoryVehicleSale, v.SellingPrice, saleDate, saleSrc)
		}
	}

	sort.SliceStable(res.Transactions, func(i, j int) bool {
		return res.Transactions[i].Date.After(res.Transactions[j].Date)
	})
	return res
}

// DeriveMonthlySeries groups sold vehicles by the calendar month of their
// resolved sale date and returns the most recent n buckets in chronological
// order. n <= 0 selects DefaultSeriesMonths.
func DeriveMonthlySeries(vehicles []entities.Vehicle, n int) SeriesResult {
	if n <= 0 {
		n = DefaultSeriesMonths
	}

	buckets := make(map[string]*MonthBucket)
	var res SeriesResult
	for _, v := range vehicles {
		if v.Status != entities.VehicleStatusSold {
			continue
		}
		date, ok := saleDate(v)
		if !ok {
			res.Skipped++
			continue
		}
		key := date.Format("2006-01")
		b, exists := buckets[key]
		if !exists {
			b = &MonthBucket{Month: key}
			buckets[key] = b
		}
		b.Revenue += v.SellingPrice
		b.SalesCount++
	}

	months := make([]MonthBucket, 0, len(buckets))
	for _, b := range buckets {
		months = append(months, *b)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Month < months[j].Month })
	if len(months) > n {
		months = months[len(months)-n:]
	}
	res.Months = months
	return res
}

// DeriveFinancialTotals sums every cost field across the whole input set and
// selling prices across sold vehicles only.
func DeriveFinancialTotals(vehicles []entities.Vehicle) Totals {
	byCategory := map[string]float64{}
	var t Totals
	for _, v := range vehicles {
		byCategory[entities.CategoryVehiclePurchase] += v.PurchasePrice
		byCategory[entities.CategoryDelivery] += v.DeliveryCost
		byCategory[entities.CategoryCustoms] += v.CustomsCost
		byCategory[entities.CategoryRepair] += v.RepairCost
		byCategory[entities.CategoryOther] += v.OtherCost
		t.TotalExpenses += v.TotalCost()

		if v.Status == entities.VehicleStatusSold {
			t.TotalRevenue += v.SellingPrice
		}
	}
	t.NetProfit = t.TotalRevenue - t.TotalExpenses

	for category, amount := range byCategory {
		if amount <= 0 {
			continue
		}
		share := 0
		if t.TotalExpenses > 0 {
			share = int(amount/t.TotalExpenses*100 + 0.5)
		}
		t.Expenses = append(t.Expenses, CategoryShare{Category: category, Amount: amount, Percentage: share})
	}
	sort.Slice(t.Expenses, func(i, j int) bool {
		if t.Expenses[i].Amount != t.Expenses[j].Amount {
			return t.Expenses[i].Amount > t.Expenses[j].Amount
		}
		return t.Expenses[i].Category < t.Expenses[j].Category
	})
	return t
}

type datePick struct {
	date *time.Time
	src  entities.DateSource
}

func resolveDate(fallback time.Time, picks ...datePick) (time.Time, entities.DateSource) {
	for _, p := range picks {
		if p.date != nil && !p.date.IsZero() {
			return *p.date, p.src
		}
	}
	return fallback, entities.DateFromFallback
}

// saleDate resolves the month-bucketing date for a sold vehicle. Unlike the
// ledger there is no caller fallback: a dateless sale cannot be bucketed.
func saleDate(v entities.Vehicle) (time.Time, bool) {
	for _, d := range []*time.Time{v.SoldDate, v.ArrivalDate, v.PurchaseDate} {
		if d != nil && !d.IsZero() {
			return *d, true
		}
	}
	return time.Time{}, false
}
