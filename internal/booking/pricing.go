package booking

import (
	"fmt"
	"strings"
)

// PricingPolicy prices a rental from its length in days. Implementations
// are stateless and chosen per booking request.
type PricingPolicy interface {
	CalculatePrice(days int) float64
}

type StandardPricing struct{}

func (StandardPricing) CalculatePrice(days int) float64 {
	return float64(days) * 20.0
}

type PremiumPricing struct{}

func (PremiumPricing) CalculatePrice(days int) float64 {
	return float64(days) * 30.0
}

// PolicyFromName maps the wire name of a policy to its implementation.
// An empty name selects the standard policy.
func PolicyFromName(name string) (PricingPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "standard":
		return StandardPricing{}, nil
	case "premium":
		return PremiumPricing{}, nil
	}
	return nil, fmt.Errorf("unknown pricing policy %q", name)
}
