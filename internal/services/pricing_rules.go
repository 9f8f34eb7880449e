package services

// VariantRule maps a selected option to the final display name and price
// of one product. ok is false when the option does not change anything.
type VariantRule interface {
	Resolve(baseName string, basePrice int64, option string) (name string, price int64, ok bool)
}

// UpchargeRule appends Suffix and adds Upcharge when Option is selected.
type UpchargeRule struct {
	Option   string
	Suffix   string
	Upcharge int64
}

func (r UpchargeRule) Resolve(baseName string, basePrice int64, option string) (string, int64, bool) {
	if option != r.Option {
		return baseName, basePrice, false
	}
	return baseName + " " + r.Suffix, basePrice + r.Upcharge, true
}

// FlavorRule names the item after the chosen flavor without touching the price.
// Any option other than Match falls back to Default.
type FlavorRule struct {
	Match        string
	MatchLabel   string
	DefaultLabel string
}

func (r FlavorRule) Resolve(baseName string, basePrice int64, option string) (string, int64, bool) {
	label := r.DefaultLabel
	if option == r.Match {
		label = r.MatchLabel
	}
	return baseName + " (" + label + ")", basePrice, true
}

// Product IDs of the storefront menu that carry a variant selector.
const (
	ProductZingerBurger = 1
	ProductAndaShami    = 2
	ProductShawarma     = 3
)

// DefaultVariantRules is the storefront's rule table.
func DefaultVariantRules() map[int]VariantRule {
	return map[int]VariantRule{
		ProductZingerBurger: UpchargeRule{Option: "meal", Suffix: "(Meal)", Upcharge: 150},
		ProductAndaShami:    UpchargeRule{Option: "double", Suffix: "(Double Egg)", Upcharge: 40},
		ProductShawarma:     FlavorRule{Match: "spicy", MatchLabel: "Spicy", DefaultLabel: "Mild"},
	}
}

type PricingRules struct {
	rules map[int]VariantRule
}

func NewPricingRules(rules map[int]VariantRule) *PricingRules {
	table := make(map[int]VariantRule, len(rules))
	for id, rule := range rules {
		table[id] = rule
	}
	return &PricingRules{rules: table}
}

// ResolveVariant returns the display name and unit price for a product and
// its selected option. A nil option means the product has no selector.
func (p *PricingRules) ResolveVariant(productID int, baseName string, basePrice int64, option *string) (string, int64) {
	if option == nil {
		return baseName, basePrice
	}
	rule, ok := p.rules[productID]
	if !ok {
		return baseName, basePrice
	}
	if name, price, ok := rule.Resolve(baseName, basePrice, *option); ok {
		return name, price
	}
	return baseName, basePrice
}
