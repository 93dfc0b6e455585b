package booking

import "testing"

func TestPricingPolicies(t *testing.T) {
	if got := (StandardPricing{}).CalculatePrice(5); got != 100.0 {
		t.Fatalf("standard 5 days: got %v, want 100", got)
	}
	if got := (PremiumPricing{}).CalculatePrice(5); got != 150.0 {
		t.Fatalf("premium 5 days: got %v, want 150", got)
	}
}

func TestPolicyFromName(t *testing.T) {
	cases := []struct {
		name string
		want float64
	}{
		{"standard", 20.0},
		{"Premium", 30.0},
		{" STANDARD ", 20.0},
		{"", 20.0},
	}
	for _, c := range cases {
		p, err := PolicyFromName(c.name)
		if err != nil {
			t.Fatalf("PolicyFromName(%q): %v", c.name, err)
		}
		if got := p.CalculatePrice(1); got != c.want {
			t.Fatalf("PolicyFromName(%q): daily rate %v, want %v", c.name, got, c.want)
		}
	}

	if _, err := PolicyFromName("luxury"); err == nil {
		t.Fatalf("expected error for unknown policy")
	}
}
