package entities

import "time"

// VehicleStatus represents the import/sale lifecycle stage of a vehicle.
//
// Domain notes:
//   - The stages are ordered; the intended flow is strictly forward
//     (in_korea -> at_port -> shipping -> customs -> in_stock -> sold).
//   - Historical records predate the enum and may carry arbitrary strings;
//     those decode to VehicleStatusUnknown instead of failing the read.
type VehicleStatus string

const (
	VehicleStatusInKorea  VehicleStatus = "in_korea"
	VehicleStatusAtPort   VehicleStatus = "at_port"
	VehicleStatusShipping VehicleStatus = "shipping"
	VehicleStatusCustoms  VehicleStatus = "customs"
	VehicleStatusInStock  VehicleStatus = "in_stock"
	VehicleStatusSold     VehicleStatus = "sold"
	VehicleStatusUnknown  VehicleStatus = "unknown"
)

// statusOrder indexes the six lifecycle stages in pipeline order.
// Unknown is deliberately absent: legacy records never participate in
// transitions, admin override included.
var statusOrder = map[VehicleStatus]int{
	VehicleStatusInKorea:  0,
	VehicleStatusAtPort:   1,
	VehicleStatusShipping: 2,
	VehicleStatusCustoms:  3,
	VehicleStatusInStock:  4,
	VehicleStatusSold:     5,
}

// ParseVehicleStatus maps a stored status string onto the closed enum.
// Anything outside the six lifecycle stages becomes VehicleStatusUnknown.
func ParseVehicleStatus(s string) VehicleStatus {
	st := VehicleStatus(s)
	if _, ok := statusOrder[st]; ok {
		return st
	}
	return VehicleStatusUnknown
}

// CanTransition reports whether to is the immediate successor of from in the
// lifecycle order. Unknown never participates in regular transitions.
func CanTransition(from, to VehicleStatus) bool {
	fi, ok := statusOrder[from]
	if !ok {
		return false
	}
	ti, ok := statusOrder[to]
	if !ok {
		return false
	}
	return ti == fi+1
}

// CanTransitionAdmin reports whether an administrative override may move a
// vehicle between two known stages. Overrides are explicit and audited by the
// caller; they still cannot target the unknown sentinel.
func CanTransitionAdmin(from, to VehicleStatus) bool {
	_, fromKnown := statusOrder[from]
	_, toKnown := statusOrder[to]
	return fromKnown && toKnown && from != to
}

type FuelType string

const (
	FuelGasoline FuelType = "gasoline"
	FuelDiesel   FuelType = "diesel"
	FuelHybrid   FuelType = "hybrid"
	FuelElectric FuelType = "electric"
)

func ValidFuelType(f FuelType) bool {
	switch f {
	case FuelGasoline, FuelDiesel, FuelHybrid, FuelElectric:
		return true
	}
	return false
}

type Transmission string

const (
	TransmissionAutomatic Transmission = "automatic"
	TransmissionManual    Transmission = "manual"
)

type DriveType string

const (
	DriveFWD DriveType = "fwd"
	DriveRWD DriveType = "rwd"
	DriveAWD DriveType = "awd"
)

type SteeringSide string

const (
	SteeringLeft  SteeringSide = "left"
	SteeringRight SteeringSide = "right"
)

// Condition grades the vehicle on intake. Damaged requires a free-text note.
type Condition string

const (
	ConditionExcellent Condition = "excellent"
	ConditionGood      Condition = "good"
	ConditionAverage   Condition = "average"
	ConditionDamaged   Condition = "damaged"
)

// Vehicle is the unit the whole CRM revolves around.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Monetary representation:
//   - All cost fields and SellingPrice are USD amounts.
//   - TotalCost and Profit are always derived, never stored; persisting them
//     would let the five cost fields and the total drift apart.
type Vehicle struct {
	ID           string        `json:"id"`
	Brand        string        `json:"brand"`
	Model        string        `json:"model"`
	Year         int           `json:"year"`
	VIN          string        `json:"vin"`
	Mileage      int           `json:"mileage"`
	Color        string        `json:"color"`
	EngineVolume float64       `json:"engine_volume"`
	FuelType     FuelType      `json:"fuel_type"`
	Transmission Transmission  `json:"transmission"`
	DriveType    DriveType     `json:"drive_type"`
	SteeringSide SteeringSide  `json:"steering_side"`
	Condition    Condition     `json:"condition"`
	DamageNote   string        `json:"damage_note,omitempty"`
	Status       VehicleStatus `json:"status"`

	PurchasePrice float64 `json:"purchase_price"`
	DeliveryCost  float64 `json:"delivery_cost"`
	CustomsCost   float64 `json:"customs_cost"`
	RepairCost    float64 `json:"repair_cost"`
	OtherCost     float64 `json:"other_cost"`
	SellingPrice  float64 `json:"selling_price"`

	// Manager is a loose back-reference to a staff record by passport number
	// or plain name. Lookups tolerate a missing match.
	Manager string `json:"manager,omitempty"`

	CreatedAt    time.Time  `json:"created_at"`
	PurchaseDate *time.Time `json:"purchase_date,omitempty"`
	ArrivalDate  *time.Time `json:"arrival_date,omitempty"`
	SoldDate     *time.Time `json:"sold_date,omitempty"`
}

// TotalCost is the landed cost recorded against the vehicle so far.
func (v Vehicle) TotalCost() float64 {
	return v.PurchasePrice + v.DeliveryCost + v.CustomsCost + v.RepairCost + v.OtherCost
}

// Profit is meaningful only once the vehicle is sold.
func (v Vehicle) Profit() float64 {
	return v.SellingPrice - v.TotalCost()
}
