package request

import (
	"time"

	"autokorea/internal/domain/entities"
)

// VehicleRequest is the payload for vehicle create and update. Dates arrive
// as RFC 3339 strings; empty means "not set yet".
type VehicleRequest struct {
	Brand        string  `json:"brand" binding:"required"`
	Model        string  `json:"model" binding:"required"`
	Year         int     `json:"year" binding:"required"`
	VIN          string  `json:"vin" binding:"required"`
	Mileage      int     `json:"mileage"`
	Color        string  `json:"color"`
	EngineVolume float64 `json:"engine_volume"`
	FuelType     string  `json:"fuel_type"`
	Transmission string  `json:"transmission"`
	DriveType    string  `json:"drive_type"`
	SteeringSide string  `json:"steering_side"`
	Condition    string  `json:"condition"`
	DamageNote   string  `json:"damage_note"`
	Status       string  `json:"status"`

	PurchasePrice float64 `json:"purchase_price"`
	DeliveryCost  float64 `json:"delivery_cost"`
	CustomsCost   float64 `json:"customs_cost"`
	RepairCost    float64 `json:"repair_cost"`
	OtherCost     float64 `json:"other_cost"`
	SellingPrice  float64 `json:"selling_price"`

	Manager      string `json:"manager"`
	PurchaseDate string `json:"purchase_date"`
	ArrivalDate  string `json:"arrival_date"`
	SoldDate     string `json:"sold_date"`

	// AdminOverride requests an out-of-order status transition; it only takes
	// effect for callers holding the admin role.
	AdminOverride bool `json:"admin_override"`
}

func (r VehicleRequest) ToEntity() entities.Vehicle {
	return entities.Vehicle{
		Brand:        r.Brand,
		Model:        r.Model,
		Year:         r.Year,
		VIN:          r.VIN,
		Mileage:      r.Mileage,
		Color:        r.Color,
		EngineVolume: r.EngineVolume,
		FuelType:     entities.FuelType(r.FuelType),
		Transmission: entities.Transmission(r.Transmission),
		DriveType:    entities.DriveType(r.DriveType),
		SteeringSide: entities.SteeringSide(r.SteeringSide),
		Condition:    entities.Condition(r.Condition),
		DamageNote:   r.DamageNote,
		Status:       entities.VehicleStatus(r.Status),

		PurchasePrice: r.PurchasePrice,
		DeliveryCost:  r.DeliveryCost,
		CustomsCost:   r.CustomsCost,
		RepairCost:    r.RepairCost,
		OtherCost:     r.OtherCost,
		SellingPrice:  r.SellingPrice,

		Manager:      r.Manager,
		PurchaseDate: parseDate(r.PurchaseDate),
		ArrivalDate:  parseDate(r.ArrivalDate),
		SoldDate:     parseDate(r.SoldDate),
	}
}

// SellVehicleRequest closes a sale. Date defaults to now when omitted.
type SellVehicleRequest struct {
	SellingPrice float64 `json:"selling_price" binding:"required"`
	SoldDate     string  `json:"sold_date"`
}

func (r SellVehicleRequest) ResolveSoldDate() time.Time {
	if d := parseDate(r.SoldDate); d != nil {
		return *d
	}
	return time.Time{}
}

func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		// Date-only form used by the older screens.
		t, err = time.Parse("2006-01-02", s)
		if err != nil {
			return nil
		}
	}
	return &t
}
