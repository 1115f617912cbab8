package models

import "github.com/matsci-ai/matsci/internal/pkg/schema"

// SeedSubscriptionPlans returns the static plan catalog. Prices are in
// Ethiopian Birr.
func SeedSubscriptionPlans() []SubscriptionPlan {
	return []SubscriptionPlan{
		{
			Name:           "Basic",
			Description:    "Perfect for students and researchers",
			PriceInBirr:    250.0,
			DurationInDays: 30,
			Features: []string{
				"5 AI predictions per day",
				"Basic Ethiopian materials database",
				"Standard analysis tools",
				"Email support",
			},
			IsActive: true,
		},
		{
			Name:           "Professional",
			Description:    "Ideal for engineers and professionals",
			PriceInBirr:    650.0,
			DurationInDays: 30,
			Features: []string{
				"Unlimited AI predictions",
				"Full Ethiopian materials database",
				"Advanced analysis tools",
				"Priority support",
				"Export capabilities",
				"Batch processing",
			},
			IsActive: true,
		},
		{
			Name:           "Enterprise",
			Description:    "For companies and institutions",
			PriceInBirr:    1800.0,
			DurationInDays: 30,
			Features: []string{
				"Everything in Professional",
				"Team collaboration tools",
				"Custom material database",
				"API access",
				"White-label options",
				"Dedicated support",
				"Custom integrations",
			},
			IsActive: true,
		},
	}
}

// SeedEthiopianMaterials returns the reference material records.
func SeedEthiopianMaterials() []EthiopianMaterial {
	return []EthiopianMaterial{
		{
			Name:        "Lalibela Stone",
			Description: "Volcanic tuff used in traditional construction",
			Composition: []schema.ElementFraction{
				{Element: "SiO2", Percentage: 65},
				{Element: "Al2O3", Percentage: 15},
				{Element: "Fe2O3", Percentage: 8},
				{Element: "CaO", Percentage: 7},
				{Element: "MgO", Percentage: 3},
				{Element: "Other", Percentage: 2},
			},
			Properties: map[string]any{
				"compressiveStrength": 20.0,
				"density":             2.0,
				"porosity":            25.0,
				"thermalConductivity": 0.8,
			},
			Location:      "Lalibela, Amhara Region",
			Availability:  "Abundant",
			EstimatedCost: 15.0,
		},
		{
			Name:        "Tigray Iron Ore",
			Description: "High-grade hematite deposits",
			Composition: []schema.ElementFraction{
				{Element: "Fe2O3", Percentage: 70},
				{Element: "SiO2", Percentage: 15},
				{Element: "Al2O3", Percentage: 8},
				{Element: "CaO", Percentage: 4},
				{Element: "MgO", Percentage: 2},
				{Element: "Other", Percentage: 1},
			},
			Properties: map[string]any{
				"ironContent":            70.0,
				"density":                5.2,
				"hardness":               6.5,
				"magneticSusceptibility": 0.15,
			},
			Location:      "Tigray Region",
			Availability:  "Large reserves (~40 Mt)",
			EstimatedCost: 45.0,
		},
		{
			Name:        "Ethiopian Gold",
			Description: "Alluvial and hard rock deposits",
			Composition: []schema.ElementFraction{
				{Element: "Au", Percentage: 85},
				{Element: "Ag", Percentage: 10},
				{Element: "Cu", Percentage: 3},
				{Element: "Fe", Percentage: 1.5},
				{Element: "Other", Percentage: 0.5},
			},
			Properties: map[string]any{
				"purity":                 20.5,
				"density":                19.3,
				"electricalConductivity": 45000000.0,
				"thermalConductivity":    315.0,
			},
			Location:      "Various regions",
			Availability:  "Annual production ~8.5 tonnes",
			EstimatedCost: 65000.0,
		},
	}
}
