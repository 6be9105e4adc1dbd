package rates

import (
	"fmt"
	"strings"
)

// Category is the pricing-tier classification of an inventory element.
// Values are stored in their normalized lookup form (lowercase, spaces
// replaced with underscores).
type Category string

const (
	CategorySignature   Category = "signature"
	CategoryPremium     Category = "premium"
	CategoryResidential Category = "residential"
	CategoryDOOH        Category = "dooh"
	CategoryTransit     Category = "transit"
	CategoryMall        Category = "mall"
	CategoryHighStreet  Category = "high_street"
)

// Categories lists the closed set of categories the portal sells.
var Categories = []Category{
	CategorySignature,
	CategoryPremium,
	CategoryResidential,
	CategoryDOOH,
	CategoryTransit,
	CategoryMall,
	CategoryHighStreet,
}

// NormalizeKey converts free-text category input to its rate-table key:
// lowercased with spaces collapsed to underscores.
func NormalizeKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "_")
}

// ParseCategory maps free-text input onto the closed category set.
// Matching is case-insensitive and underscore-normalized. Unknown
// categories surface as a validation error at the input boundary instead
// of silently falling back at pricing time.
func ParseCategory(s string) (Category, error) {
	key := Category(NormalizeKey(s))
	for _, known := range Categories {
		if key == known {
			return key, nil
		}
	}
	return "", fmt.Errorf("rates: unknown category %q", s)
}
