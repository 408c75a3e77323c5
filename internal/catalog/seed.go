package catalog

import "github.com/shopspring/decimal"

// Seed returns the storefront's fixed product list: the ring collection plus a
// few pre-built knives. Custom-configured knives are materialized by the
// configurator and never appear here.
func Seed() []Product {
	return []Product{
		{
			ID:              "ring-silver",
			Name:            "Silver Ring",
			UnitPrice:       decimal.NewFromInt(50),
			ColorOrMaterial: "silver",
			Description:     "Polished sterling silver band.",
			ModelRef:        "models/ring.stl",
		},
		{
			ID:              "ring-gold",
			Name:            "Gold Ring",
			UnitPrice:       decimal.NewFromInt(100),
			ColorOrMaterial: "gold",
			Description:     "18k gold band with a high-gloss finish.",
			ModelRef:        "models/ring.stl",
		},
		{
			ID:              "ring-rose-gold",
			Name:            "Rose Gold Ring",
			UnitPrice:       decimal.NewFromInt(75),
			ColorOrMaterial: "#b76e79",
			Description:     "Warm rose gold alloy band.",
			ModelRef:        "models/ring.stl",
		},
		{
			ID:              "ring-platinum",
			Name:            "Platinum Ring",
			UnitPrice:       decimal.NewFromInt(120),
			ColorOrMaterial: "#e5e4e2",
			Description:     "Heavy platinum band, matte finish.",
			ModelRef:        "models/ring.stl",
		},
		{
			ID:              "ring-bronze",
			Name:            "Bronze Ring",
			UnitPrice:       decimal.NewFromInt(60),
			ColorOrMaterial: "#cd7f32",
			Description:     "Hand-cast bronze band.",
			ModelRef:        "models/ring.stl",
		},
		{
			ID:              "ring-copper",
			Name:            "Copper Ring",
			UnitPrice:       decimal.NewFromInt(40),
			ColorOrMaterial: "#b87333",
			Description:     "Hammered copper band.",
			ModelRef:        "models/ring.stl",
		},
		{
			ID:              "blade-chef-classic",
			Name:            "Classic Chef Knife",
			UnitPrice:       decimal.NewFromFloat(149.50),
			ColorOrMaterial: "steel",
			Description:     "21cm chef knife, stainless steel, walnut handle.",
			ModelRef:        "models/chef.stl",
		},
		{
			ID:              "blade-hunting-field",
			Name:            "Field Hunting Knife",
			UnitPrice:       decimal.NewFromFloat(189.00),
			ColorOrMaterial: "damascus",
			Description:     "Full-tang hunting knife in damascus steel.",
			ModelRef:        "models/hunting.stl",
		},
	}
}
