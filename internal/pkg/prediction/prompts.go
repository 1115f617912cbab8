package prediction

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/matsci-ai/matsci/internal/pkg/schema"
)

const compositionSystemMessage = "You are an expert materials scientist with deep knowledge of Ethiopian mineral resources and traditional materials. Always respond with valid JSON."

const propertiesSystemMessage = "You are an expert materials scientist with knowledge of materials properties and Ethiopian manufacturing capabilities. Always respond with valid JSON."

const planSystemMessage = "You are an expert materials scientist and process engineer specializing in materials that can be sourced and manufactured in Ethiopia. Always respond with valid JSON."

// providedFields lists the JSON names of the non-nil fields of a category
// struct, so the prompt can summarize what the user actually specified.
func providedFields(category any) string {
	if category == nil {
		return "None specified"
	}
	v := reflect.ValueOf(category)
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return "None specified"
		}
		v = v.Elem()
	}
	t := v.Type()
	var names []string
	for i := 0; i < t.NumField(); i++ {
		f := v.Field(i)
		if f.Kind() == reflect.Pointer && f.IsNil() {
			continue
		}
		name := strings.SplitN(t.Field(i).Tag.Get("json"), ",", 2)[0]
		names = append(names, name)
	}
	if len(names) == 0 {
		return "None specified"
	}
	return strings.Join(names, ", ")
}

func compositionPrompt(input *schema.PropertySetInput) string {
	payload, _ := json.MarshalIndent(input, "", "  ")

	return fmt.Sprintf(`Given the following comprehensive material properties, predict the most likely material composition.

Properties provided across 8 categories:
- Mechanical Properties: %s
- Thermal Properties: %s
- Electrical Properties: %s
- Optical Properties: %s
- Chemical Properties: %s
- Physical Properties: %s
- Manufacturing Properties: %s
- Environmental Properties: %s

Full Property Data:
%s

Provide your prediction in JSON format with the following structure:
{
  "composition": [
    {"element": "Fe", "percentage": 74.2},
    {"element": "C", "percentage": 0.8},
    {"element": "Cr", "percentage": 18.5},
    {"element": "Ni", "percentage": 6.5}
  ],
  "confidence": 87,
  "processParameters": {
    "annealingTemperature": "1050-1100°C",
    "coolingRate": "2-5°C/min",
    "atmosphere": "Inert (Argon)",
    "coldWorkReduction": "30-50%%"
  },
  "ethiopianMaterialsMatch": [
    {
      "materialName": "Tigray Iron Ore",
      "matchPercentage": 95,
      "description": "Fe content: 65-75%%, suitable for steel production"
    }
  ]
}

IMPORTANT:
- Confidence must be a percentage (0-100)
- Element percentages must be non-negative
- Consider ALL provided property categories in your analysis
- Prioritize Ethiopian mineral resources: Tigray Iron Ore, Ethiopian Gold, Lalibela Stone, and traditional materials
- Focus on materials that can be sourced locally or processed using available Ethiopian resources`,
		providedFields(input.MechanicalProperties),
		providedFields(input.ThermalProperties),
		providedFields(input.ElectricalProperties),
		providedFields(input.OpticalProperties),
		providedFields(input.ChemicalProperties),
		providedFields(input.PhysicalProperties),
		providedFields(input.ManufacturingProperties),
		providedFields(input.EnvironmentalProperties),
		payload)
}

func propertiesPrompt(input *schema.CompositionInput) string {
	payload, _ := json.MarshalIndent(input, "", "  ")

	return fmt.Sprintf(`Given the following material composition, predict the complete set of material properties with uncertainties across all major categories.

Composition provided:
%s

Provide your prediction in JSON format with comprehensive properties across all categories:
{
  "properties": {
    "mechanical": {
      "tensileStrength": {"value": 850, "uncertainty": 45},
      "yieldStrength": {"value": 620, "uncertainty": 30},
      "youngsModulus": {"value": 205, "uncertainty": 10},
      "hardness": {"value": 320, "uncertainty": 25},
      "elongation": {"value": 15, "uncertainty": 2},
      "compressiveStrength": {"value": 1200, "uncertainty": 80},
      "flexuralStrength": {"value": 450, "uncertainty": 35},
      "impactStrength": {"value": 250, "uncertainty": 20},
      "poissonsRatio": {"value": 0.30, "uncertainty": 0.02}
    },
    "thermal": {
      "thermalConductivity": {"value": 25, "uncertainty": 3},
      "meltingPoint": {"value": 1538, "uncertainty": 20},
      "boilingPoint": {"value": 2750, "uncertainty": 100},
      "thermalExpansion": {"value": 12.5, "uncertainty": 1.0},
      "specificHeat": {"value": 450, "uncertainty": 25},
      "glassTransitionTemp": {"value": 150, "uncertainty": 10},
      "maxServiceTemp": {"value": 400, "uncertainty": 30}
    },
    "electrical": {
      "electricalResistivity": {"value": "1.68e-8", "uncertainty": "0.05e-8"},
      "electricalConductivity": {"value": 5.96e7, "uncertainty": 2.0e6},
      "dielectricConstant": {"value": 8.5, "uncertainty": 0.5},
      "dielectricStrength": {"value": 25, "uncertainty": 3}
    },
    "optical": {
      "refractiveIndex": {"value": 1.52, "uncertainty": 0.02},
      "transparency": "Opaque",
      "reflectance": {"value": 85, "uncertainty": 5},
      "emissivity": {"value": 0.85, "uncertainty": 0.05}
    },
    "physical": {
      "density": {"value": 7.85, "uncertainty": 0.1},
      "porosity": {"value": 15, "uncertainty": 3},
      "viscosity": {"value": 0.001, "uncertainty": 0.0002},
      "wettability": "Hydrophilic"
    },
    "manufacturing": {
      "machinability": "Good",
      "weldability": "Excellent",
      "formability": "Fair",
      "castability": "Good"
    },
    "environmental": {
      "weatherResistance": "Good",
      "uvResistance": "Fair",
      "biodegradability": "Low"
    }
  },
  "confidence": 92,
  "performanceIndex": 94.2,
  "manufacturabilityScore": 4.7,
  "estimatedCost": 2.8
}

IMPORTANT:
- Confidence must be a percentage (0-100)
- Predict properties across ALL 8 categories when possible based on composition
- Use established materials science correlations between composition and properties
- Consider Ethiopian manufacturing capabilities and cost context
- Include uncertainties for every numerical value, in the same unit as the value
- Transparency must be one of: "Transparent", "Translucent", "Opaque"
- Resistance/quality ratings must be one of: "Excellent", "Good", "Fair", "Poor"
- Wettability must be one of: "Hydrophilic", "Hydrophobic", "Neutral"
- Biodegradability must be one of: "High", "Medium", "Low", "None"`, payload)
}

func planPrompt(input *schema.PlanInput) string {
	payload, _ := json.MarshalIndent(input, "", "  ")

	return fmt.Sprintf(`A user needs a complete material solution. Their requirements:

%s

Design the most suitable material and manufacturing plan. Provide your answer in JSON format with the following structure:
{
  "materialName": "Austenitic Stainless Steel 316L",
  "composition": [
    {"element": "Fe", "percentage": 66.5},
    {"element": "Cr", "percentage": 17.0},
    {"element": "Ni", "percentage": 12.0},
    {"element": "Mo", "percentage": 2.5},
    {"element": "Other", "percentage": 2.0}
  ],
  "microstructure": "Fully austenitic with fine equiaxed grains (ASTM 7-8)",
  "processParameters": {
    "annealingTemperature": "1040-1120°C",
    "coolingRate": "Rapid water quench",
    "atmosphere": "Inert (Argon)",
    "coldWorkReduction": "20-30%%"
  },
  "properties": {
    "mechanical": {
      "tensileStrength": {"value": 580, "uncertainty": 30},
      "yieldStrength": {"value": 290, "uncertainty": 20}
    },
    "thermal": {
      "meltingPoint": {"value": 1400, "uncertainty": 25},
      "maxServiceTemp": {"value": 870, "uncertainty": 30}
    },
    "chemical": {
      "corrosionResistance": "Excellent"
    },
    "manufacturing": {
      "machinability": "Fair",
      "weldability": "Excellent"
    }
  },
  "confidence": 88,
  "suitabilityScore": 91,
  "resourceUtilization": "Iron from Tigray deposits covers ~70%% of raw inputs; Cr/Ni/Mo imported",
  "manufacturingComplexity": "Medium",
  "estimatedCost": 4.2
}

IMPORTANT:
- Confidence and suitabilityScore must be percentages (0-100)
- manufacturingComplexity must be one of: "Low", "Medium", "High"
- estimatedCost is in USD per kg
- Prefer materials sourceable from Ethiopian resources (Tigray Iron Ore, Ethiopian Gold, Lalibela Stone) and note the local share in resourceUtilization
- Every numeric property must carry an uncertainty in the same unit
- Categorical property ratings must use the fixed sets: Excellent/Good/Fair/Poor, Transparent/Translucent/Opaque, Hydrophilic/Hydrophobic/Neutral, High/Medium/Low/None`, payload)
}
