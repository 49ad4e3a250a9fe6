package response

import (
	"time"

	"autokorea/internal/domain/entities"
)

type VehicleResponse struct {
	ID           string  `json:"id"`
	Brand        string  `json:"brand"`
	Model        string  `json:"model"`
	Year         int     `json:"year"`
	VIN          string  `json:"vin"`
	Mileage      int     `json:"mileage"`
	Color        string  `json:"color"`
	EngineVolume float64 `json:"engine_volume"`
	FuelType     string  `json:"fuel_type"`
	Transmission string  `json:"transmission"`
	DriveType    string  `json:"drive_type"`
	SteeringSide string  `json:"steering_side"`
	Condition    string  `json:"condition"`
	DamageNote   string  `json:"damage_note,omitempty"`
	Status       string  `json:"status"`

	PurchasePrice float64 `json:"purchase_price"`
	DeliveryCost  float64 `json:"delivery_cost"`
	CustomsCost   float64 `json:"customs_cost"`
	RepairCost    float64 `json:"repair_cost"`
	OtherCost     float64 `json:"other_cost"`
	SellingPrice  float64 `json:"selling_price"`

	// Derived on every read, never stored.
	TotalCost float64 `json:"total_cost"`
	Profit    float64 `json:"profit"`

	Manager      string     `json:"manager,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	PurchaseDate *time.Time `json:"purchase_date,omitempty"`
	ArrivalDate  *time.Time `json:"arrival_date,omitempty"`
	SoldDate     *time.Time `json:"sold_date,omitempty"`
}

func FromVehicle(v entities.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:           v.ID,
		Brand:        v.Brand,
		Model:        v.Model,
		Year:         v.Year,
		VIN:          v.VIN,
		Mileage:      v.Mileage,
		Color:        v.Color,
		EngineVolume: v.EngineVolume,
		FuelType:     string(v.FuelType),
		Transmission: string(v.Transmission),
		DriveType:    string(v.DriveType),
		SteeringSide: string(v.SteeringSide),
		Condition:    string(v.Condition),
		DamageNote:   v.DamageNote,
		Status:       string(v.Status),

		PurchasePrice: v.PurchasePrice,
		DeliveryCost:  v.DeliveryCost,
		CustomsCost:   v.CustomsCost,
		RepairCost:    v.RepairCost,
		OtherCost:     v.OtherCost,
		SellingPrice:  v.SellingPrice,

		TotalCost: v.TotalCost(),
		Profit:    v.Profit(),

		Manager:      v.Manager,
		CreatedAt:    v.CreatedAt,
		PurchaseDate: v.PurchaseDate,
		ArrivalDate:  v.ArrivalDate,
		SoldDate:     v.SoldDate,
	}
}

func FromVehicles(vehicles []entities.Vehicle) []VehicleResponse {
	out := make([]VehicleResponse, 0, len(vehicles))
	for _, v := range vehicles {
		out = append(out, FromVehicle(v))
	}
	return out
}
