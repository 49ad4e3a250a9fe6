package entities

import "testing"

func TestParseVehicleStatus(t *testing.T) {
	cases := []struct {
		in   string
		want VehicleStatus
	}{
		{"in_korea", VehicleStatusInKorea},
		{"at_port", VehicleStatusAtPort},
		{"shipping", VehicleStatusShipping},
		{"customs", VehicleStatusCustoms},
		{"in_stock", VehicleStatusInStock},
		{"sold", VehicleStatusSold},
		{"", VehicleStatusUnknown},
		{"transit", VehicleStatusUnknown},
		{"unknown", VehicleStatusUnknown},
	}
	for _, tc := range cases {
		if got := ParseVehicleStatus(tc.in); got != tc.want {
			t.Fatalf("ParseVehicleStatus(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCanTransition(t *testing.T) {
	t.Run("immediate successor allowed", func(t *testing.T) {
		steps := []struct {
			from, to VehicleStatus
		}{
			{VehicleStatusInKorea, VehicleStatusAtPort},
			{VehicleStatusAtPort, VehicleStatusShipping},
			{VehicleStatusShipping, VehicleStatusCustoms},
			{VehicleStatusCustoms, VehicleStatusInStock},
			{VehicleStatusInStock, VehicleStatusSold},
		}
		for _, s := range steps {
			if !CanTransition(s.from, s.to) {
				t.Fatalf("expected %q -> %q to be allowed", s.from, s.to)
			}
		}
	})

	t.Run("skipping a stage rejected", func(t *testing.T) {
		if CanTransition(VehicleStatusInKorea, VehicleStatusShipping) {
			t.Fatal("expected stage skip to be rejected")
		}
	})

	t.Run("moving backwards rejected", func(t *testing.T) {
		if CanTransition(VehicleStatusInStock, VehicleStatusCustoms) {
			t.Fatal("expected backwards move to be rejected")
		}
	})

	t.Run("sold is terminal", func(t *testing.T) {
		for to := range statusOrder {
			if CanTransition(VehicleStatusSold, to) {
				t.Fatalf("expected sold -> %q to be rejected", to)
			}
		}
	})

	t.Run("unknown never participates", func(t *testing.T) {
		if CanTransition(VehicleStatusUnknown, VehicleStatusInKorea) {
			t.Fatal("expected unknown source to be rejected")
		}
		if CanTransition(VehicleStatusInKorea, VehicleStatusUnknown) {
			t.Fatal("expected unknown target to be rejected")
		}
	})
}

func TestCanTransitionAdmin(t *testing.T) {
	if !CanTransitionAdmin(VehicleStatusSold, VehicleStatusInStock) {
		t.Fatal("expected admin override to allow backwards move")
	}
	if !CanTransitionAdmin(VehicleStatusInKorea, VehicleStatusSold) {
		t.Fatal("expected admin override to allow stage skip")
	}
	if CanTransitionAdmin(VehicleStatusInKorea, VehicleStatusInKorea) {
		t.Fatal("expected self transition to be rejected")
	}
	if CanTransitionAdmin(VehicleStatusUnknown, VehicleStatusInStock) {
		t.Fatal("expected unknown source to be rejected even for admins")
	}
	if CanTransitionAdmin(VehicleStatusInStock, VehicleStatusUnknown) {
		t.Fatal("expected unknown target to be rejected even for admins")
	}
}

func TestVehicleDerivedAmounts(t *testing.T) {
	v := Vehicle{
		PurchasePrice: 10_000,
		DeliveryCost:  800,
		CustomsCost:   2_000,
		RepairCost:    700,
		OtherCost:     300,
		SellingPrice:  16_000,
	}
	if got := v.TotalCost(); got != 13_800 {
		t.Fatalf("expected total cost 13800, got %v", got)
	}
	if got := v.Profit(); got != 2_200 {
		t.Fatalf("expected profit 2200, got %v", got)
	}
}
