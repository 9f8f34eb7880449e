package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveVariant(t *testing.T) {
	rules := NewPricingRules(DefaultVariantRules())

	tests := []struct {
		name      string
		productID int
		baseName  string
		basePrice int64
		option    *string
		wantName  string
		wantPrice int64
	}{
		{"zinger meal", 1, "Zinger Burger", 300, strPtr("meal"), "Zinger Burger (Meal)", 450},
		{"zinger single", 1, "Zinger Burger", 300, strPtr("single"), "Zinger Burger", 300},
		{"shami double egg", 2, "Anda Shami", 120, strPtr("double"), "Anda Shami (Double Egg)", 160},
		{"shami single egg", 2, "Anda Shami", 120, strPtr("single"), "Anda Shami", 120},
		{"shawarma spicy", 3, "Shawarma", 250, strPtr("spicy"), "Shawarma (Spicy)", 250},
		{"shawarma mild", 3, "Shawarma", 250, strPtr("mild"), "Shawarma (Mild)", 250},
		{"shawarma unknown flavor", 3, "Shawarma", 250, strPtr("garlic"), "Shawarma (Mild)", 250},
		{"no selector", 3, "Shawarma", 250, nil, "Shawarma", 250},
		{"unknown product", 42, "Fries", 150, strPtr("meal"), "Fries", 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, price := rules.ResolveVariant(tt.productID, tt.baseName, tt.basePrice, tt.option)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantPrice, price)
		})
	}
}

func TestPricingRules_NewEntries(t *testing.T) {
	table := DefaultVariantRules()
	table[7] = UpchargeRule{Option: "large", Suffix: "(Large)", Upcharge: 100}
	rules := NewPricingRules(table)

	name, price := rules.ResolveVariant(7, "Fries", 150, strPtr("large"))
	assert.Equal(t, "Fries (Large)", name)
	assert.Equal(t, int64(250), price)

	// Existing entries still resolve.
	name, price = rules.ResolveVariant(1, "Zinger Burger", 300, strPtr("meal"))
	assert.Equal(t, "Zinger Burger (Meal)", name)
	assert.Equal(t, int64(450), price)
}

func TestPricingRules_CopiesTable(t *testing.T) {
	table := DefaultVariantRules()
	rules := NewPricingRules(table)
	delete(table, 1)

	name, _ := rules.ResolveVariant(1, "Zinger Burger", 300, strPtr("meal"))
	assert.Equal(t, "Zinger Burger (Meal)", name)
}
