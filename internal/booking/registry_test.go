package booking

import (
	"errors"
	"testing"
)

func TestRegistryAdd(t *testing.T) {
	g := NewRegistry()
	if err := g.Add("V1", "Toyota Corolla", "ABC-123"); err != nil {
		t.Fatalf("Add: %v", err)
	}

	if err := g.Add("v1", "Honda Civic", "XYZ-999"); !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID for case-insensitive id, got %v", err)
	}
	if err := g.Add("V2", "Honda Civic", "abc-123"); !errors.Is(err, ErrDuplicatePlate) {
		t.Fatalf("expected ErrDuplicatePlate, got %v", err)
	}

	v, ok := g.Find("V1")
	if !ok {
		t.Fatalf("expected to find V1")
	}
	if v.Status != VehicleAvailable {
		t.Fatalf("new vehicle should be available, got %s", v.Status)
	}
}

func TestRegistryFind(t *testing.T) {
	g := NewRegistry()
	if err := g.Add("Car-01", "Ford Focus", "FF-001"); err != nil {
		t.Fatalf("Add: %v", err)
	}

	if _, ok := g.Find("CAR-01"); !ok {
		t.Fatalf("expected case-insensitive lookup to succeed")
	}
	if _, ok := g.Find("missing"); ok {
		t.Fatalf("expected missing id to return ok=false")
	}
}

func TestRegistrySetStatusAndRemove(t *testing.T) {
	g := NewRegistry()
	if err := g.SetStatus("nope", VehicleReserved); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := g.Remove("nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := g.Add("V1", "Toyota Corolla", "ABC-123"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := g.SetStatus("v1", VehicleMaintenance); err != nil {
		t.Fatalf("SetStatus: %v", err)
	}
	v, _ := g.Find("V1")
	if v.Status != VehicleMaintenance {
		t.Fatalf("expected maintenance, got %s", v.Status)
	}

	if err := g.Remove("V1"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, ok := g.Find("V1"); ok {
		t.Fatalf("expected V1 gone after Remove")
	}
}

func TestRegistryFilterByModel(t *testing.T) {
	g := NewRegistry()
	for _, v := range []struct{ id, model, plate string }{
		{"V1", "Toyota Corolla", "P1"},
		{"V2", "Toyota Yaris", "P2"},
		{"V3", "Honda Civic", "P3"},
	} {
		if err := g.Add(v.id, v.model, v.plate); err != nil {
			t.Fatalf("Add(%s): %v", v.id, err)
		}
	}

	got := g.FilterByModel("toyota")
	if len(got) != 2 || got[0].ID != "V1" || got[1].ID != "V2" {
		t.Fatalf("expected [V1 V2] in registry order, got %+v", got)
	}

	if got := g.FilterByModel("tesla"); len(got) != 0 {
		t.Fatalf("expected empty result, got %+v", got)
	}
}
