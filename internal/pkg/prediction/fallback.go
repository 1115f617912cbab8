package prediction

import (
	"context"

	"github.com/matsci-ai/matsci/internal/pkg/schema"
)

// FallbackModel is recorded on predictions produced without a provider.
const FallbackModel = "fallback"

// fallbackService returns fixed representative predictions so the
// platform stays usable without an API key. The values describe an
// austenitic stainless steel, a plausible answer for most demo inputs.
type fallbackService struct{}

// NewFallback creates the offline service.
func NewFallback() Service {
	return fallbackService{}
}

func (fallbackService) Model() string { return FallbackModel }

func (fallbackService) PredictComposition(_ context.Context, _ *schema.PropertySetInput) (*schema.CompositionPrediction, error) {
	return &schema.CompositionPrediction{
		Composition: []schema.ElementFraction{
			{Element: "Fe", Percentage: 74.2},
			{Element: "C", Percentage: 0.8},
			{Element: "Cr", Percentage: 18.5},
			{Element: "Ni", Percentage: 6.5},
		},
		Confidence: 78,
		ProcessParameters: &schema.ProcessParameters{
			AnnealingTemperature: "1050-1100°C",
			CoolingRate:          "2-5°C/min",
			Atmosphere:           "Inert (Argon)",
			ColdWorkReduction:    "30-50%",
		},
		EthiopianMaterialsMatch: []schema.MaterialMatch{
			{
				MaterialName:    "Tigray Iron Ore",
				MatchPercentage: 95,
				Description:     "Fe content: 65-75%, suitable for steel production",
			},
		},
	}, nil
}

func (fallbackService) PredictProperties(_ context.Context, _ *schema.CompositionInput) (*schema.PropertyPrediction, error) {
	return &schema.PropertyPrediction{
		Properties: schema.PropertyBundle{
			Mechanical: &schema.MechanicalPrediction{
				TensileStrength: m(850, 45),
				YieldStrength:   m(620, 30),
				YoungsModulus:   m(205, 10),
				Hardness:        m(320, 25),
				Elongation:      m(15, 2),
				PoissonsRatio:   m(0.30, 0.02),
			},
			Thermal: &schema.ThermalPrediction{
				ThermalConductivity: m(25, 3),
				MeltingPoint:        m(1450, 25),
				ThermalExpansion:    m(16.0, 1.2),
				SpecificHeat:        m(500, 30),
				MaxServiceTemp:      m(870, 40),
			},
			Electrical: &schema.ElectricalPrediction{
				ElectricalResistivity: &schema.TextMeasurement{Value: "7.2e-7", Uncertainty: "0.4e-7"},
			},
			Optical: &schema.OpticalPrediction{
				Transparency: s("Opaque"),
				Reflectance:  m(62, 5),
				Emissivity:   m(0.85, 0.05),
			},
			Chemical: &schema.ChemicalPrediction{
				CorrosionResistance: s("Excellent"),
				OxidationResistance: s("Good"),
			},
			Physical: &schema.PhysicalPrediction{
				Density:     m(7.9, 0.1),
				Wettability: s("Hydrophilic"),
			},
			Manufacturing: &schema.ManufacturingPrediction{
				Machinability: s("Fair"),
				Weldability:   s("Excellent"),
				Formability:   s("Good"),
				Castability:   s("Good"),
			},
			Environmental: &schema.EnvironmentalPrediction{
				WeatherResistance: s("Excellent"),
				UvResistance:      s("Excellent"),
				Biodegradability:  s("None"),
			},
		},
		Confidence:             72,
		PerformanceIndex:       86.5,
		ManufacturabilityScore: 4.2,
		EstimatedCost:          3.1,
	}, nil
}

func (fallbackService) PredictPlan(_ context.Context, _ *schema.PlanInput) (*schema.PlanPrediction, error) {
	return &schema.PlanPrediction{
		MaterialName: "Austenitic Stainless Steel 304",
		Composition: []schema.ElementFraction{
			{Element: "Fe", Percentage: 70.0},
			{Element: "Cr", Percentage: 19.0},
			{Element: "Ni", Percentage: 9.25},
			{Element: "Mn", Percentage: 1.0},
			{Element: "Other", Percentage: 0.75},
		},
		Microstructure: "Fully austenitic with fine equiaxed grains",
		ProcessParameters: schema.ProcessParameters{
			AnnealingTemperature: "1010-1120°C",
			CoolingRate:          "Rapid water quench",
			Atmosphere:           "Inert (Argon)",
			ColdWorkReduction:    "20-30%",
		},
		Properties: schema.PropertyBundle{
			Mechanical: &schema.MechanicalPrediction{
				TensileStrength: m(515, 30),
				YieldStrength:   m(205, 15),
			},
			Thermal: &schema.ThermalPrediction{
				MeltingPoint:   m(1400, 25),
				MaxServiceTemp: m(870, 30),
			},
			Chemical: &schema.ChemicalPrediction{
				CorrosionResistance: s("Excellent"),
			},
			Manufacturing: &schema.ManufacturingPrediction{
				Machinability: s("Fair"),
				Weldability:   s("Excellent"),
			},
		},
		Confidence:              70,
		SuitabilityScore:        75,
		ResourceUtilization:     "Iron from Tigray deposits covers the bulk of raw inputs; Cr and Ni imported",
		ManufacturingComplexity: "Medium",
		EstimatedCost:           4.5,
	}, nil
}

func m(value, uncertainty float64) *schema.Measurement {
	return &schema.Measurement{Value: value, Uncertainty: uncertainty}
}

func s(v string) *string { return &v }
