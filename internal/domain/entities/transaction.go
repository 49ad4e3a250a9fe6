package entities

import "time"

type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

// Transaction categories derived from vehicle cost fields.
const (
	CategoryVehiclePurchase = "Vehicle purchase"
	CategoryDelivery        = "Delivery"
	CategoryCustoms         = "Customs clearance"
	CategoryRepair          = "Repair"
	CategoryOther           = "Other expenses"
	CategoryVehicleSale     = "Vehicle sale"
)

// DateSource names which field resolved a transaction's date, so that a
// fallback is never applied silently.
type DateSource string

const (
	DateFromPurchase DateSource = "purchase_date"
	DateFromArrival  DateSource = "arrival_date"
	DateFromSold     DateSource = "sold_date"
	DateFromFallback DateSource = "fallback"
)

// Transaction is a pure projection synthesized from the vehicle collection on
// every read. It is never persisted and has no identity beyond the response it
// was computed for; giving it a store would create a second source of truth
// next to the vehicle cost fields.
type Transaction struct {
	Type        TransactionType `json:"type"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Amount      float64         `json:"amount"`
	Date        time.Time       `json:"date"`
	DateSource  DateSource      `json:"date_source"`
	VehicleID   string          `json:"vehicle_id"`
}
