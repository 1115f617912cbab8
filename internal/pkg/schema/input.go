package schema

import (
	"fmt"
	"math"

	"github.com/matsci-ai/matsci/internal/pkg/apperror"
)

// PropertySetInput is the properties→composition request: eight named
// property categories, every field optional. Matches the property form.
type PropertySetInput struct {
	MechanicalProperties    *MechanicalInput    `json:"mechanicalProperties,omitempty"`
	ThermalProperties       *ThermalInput       `json:"thermalProperties,omitempty"`
	ElectricalProperties    *ElectricalInput    `json:"electricalProperties,omitempty"`
	OpticalProperties       *OpticalInput       `json:"opticalProperties,omitempty"`
	ChemicalProperties      *ChemicalInput      `json:"chemicalProperties,omitempty"`
	PhysicalProperties      *PhysicalInput      `json:"physicalProperties,omitempty"`
	ManufacturingProperties *ManufacturingInput `json:"manufacturingProperties,omitempty"`
	EnvironmentalProperties *EnvironmentalInput `json:"environmentalProperties,omitempty"`
}

type MechanicalInput struct {
	TensileStrength     *float64 `json:"tensileStrength,omitempty"`
	YieldStrength       *float64 `json:"yieldStrength,omitempty"`
	YoungsModulus       *float64 `json:"youngsModulus,omitempty"`
	Hardness            *float64 `json:"hardness,omitempty"`
	Elongation          *float64 `json:"elongation,omitempty"`
	CompressiveStrength *float64 `json:"compressiveStrength,omitempty"`
	FlexuralStrength    *float64 `json:"flexuralStrength,omitempty"`
	ShearStrength       *float64 `json:"shearStrength,omitempty"`
	FatigueStrength     *float64 `json:"fatigueStrength,omitempty"`
	FractureStrength    *float64 `json:"fractureStrength,omitempty"`
	ImpactStrength      *float64 `json:"impactStrength,omitempty"`
	PoissonsRatio       *float64 `json:"poissonsRatio,omitempty"`
	BulkModulus         *float64 `json:"bulkModulus,omitempty"`
	ShearModulus        *float64 `json:"shearModulus,omitempty"`
}

type ThermalInput struct {
	MeltingPoint        *float64 `json:"meltingPoint,omitempty"`
	BoilingPoint        *float64 `json:"boilingPoint,omitempty"`
	ThermalConductivity *float64 `json:"thermalConductivity,omitempty"`
	ThermalExpansion    *float64 `json:"thermalExpansion,omitempty"`
	SpecificHeat        *float64 `json:"specificHeat,omitempty"`
	ThermalDiffusivity  *float64 `json:"thermalDiffusivity,omitempty"`
	GlassTransitionTemp *float64 `json:"glassTransitionTemp,omitempty"`
	HeatDeflectionTemp  *float64 `json:"heatDeflectionTemp,omitempty"`
	MaxServiceTemp      *float64 `json:"maxServiceTemp,omitempty"`
	MinServiceTemp      *float64 `json:"minServiceTemp,omitempty"`
}

type ElectricalInput struct {
	ElectricalResistivity  *string  `json:"electricalResistivity,omitempty"`
	ElectricalConductivity *float64 `json:"electricalConductivity,omitempty"`
	DielectricConstant     *float64 `json:"dielectricConstant,omitempty"`
	DielectricStrength     *float64 `json:"dielectricStrength,omitempty"`
	ResistanceTemp         *float64 `json:"resistanceTemp,omitempty"`
	MagneticPermeability   *float64 `json:"magneticPermeability,omitempty"`
	MagneticSusceptibility *float64 `json:"magneticSusceptibility,omitempty"`
}

type OpticalInput struct {
	RefractiveIndex *float64 `json:"refractiveIndex,omitempty"`
	Transparency    *string  `json:"transparency,omitempty" validate:"omitempty,oneof=Transparent Translucent Opaque"`
	Reflectance     *float64 `json:"reflectance,omitempty"`
	Absorptance     *float64 `json:"absorptance,omitempty"`
	Emissivity      *float64 `json:"emissivity,omitempty"`
}

type ChemicalInput struct {
	CorrosionResistance   *string `json:"corrosionResistance,omitempty" validate:"omitempty,oneof=Excellent Good Fair Poor"`
	PhStabilityRange      *string `json:"phStabilityRange,omitempty"`
	OxidationResistance   *string `json:"oxidationResistance,omitempty" validate:"omitempty,oneof=Excellent Good Fair Poor"`
	ChemicalCompatibility *string `json:"chemicalCompatibility,omitempty"`
	Solubility            *string `json:"solubility,omitempty"`
}

type PhysicalInput struct {
	Density        *float64 `json:"density,omitempty"`
	Porosity       *float64 `json:"porosity,omitempty"`
	Permeability   *float64 `json:"permeability,omitempty"`
	Viscosity      *float64 `json:"viscosity,omitempty"`
	SurfaceTension *float64 `json:"surfaceTension,omitempty"`
	Wettability    *string  `json:"wettability,omitempty" validate:"omitempty,oneof=Hydrophilic Hydrophobic Neutral"`
}

type ManufacturingInput struct {
	Machinability *string `json:"machinability,omitempty" validate:"omitempty,oneof=Excellent Good Fair Poor"`
	Weldability   *string `json:"weldability,omitempty" validate:"omitempty,oneof=Excellent Good Fair Poor"`
	Formability   *string `json:"formability,omitempty" validate:"omitempty,oneof=Excellent Good Fair Poor"`
	Castability   *string `json:"castability,omitempty" validate:"omitempty,oneof=Excellent Good Fair Poor"`
}

type EnvironmentalInput struct {
	WeatherResistance   *string `json:"weatherResistance,omitempty" validate:"omitempty,oneof=Excellent Good Fair Poor"`
	UvResistance        *string `json:"uvResistance,omitempty" validate:"omitempty,oneof=Excellent Good Fair Poor"`
	RadiationResistance *string `json:"radiationResistance,omitempty" validate:"omitempty,oneof=Excellent Good Fair Poor"`
	Biodegradability    *string `json:"biodegradability,omitempty" validate:"omitempty,oneof=High Medium Low None"`
}

// Validate checks all categorical fields against their fixed sets.
func (p *PropertySetInput) Validate() *apperror.Error {
	return Validate(p)
}

// ElementFraction is one entry of an element percentage list.
type ElementFraction struct {
	Element    string  `json:"element" validate:"required"`
	Percentage float64 `json:"percentage" validate:"gte=0"`
}

// CompositionInput is the composition→properties request.
type CompositionInput struct {
	Elements []ElementFraction `json:"elements" validate:"required,min=1,dive"`
}

// Validate checks the element list and enforces that percentages sum to
// 100 within tolerance. The original platform only checked the sum in one
// client form; here it is part of the schema.
func (c *CompositionInput) Validate() *apperror.Error {
	if verr := Validate(c); verr != nil {
		return verr
	}
	var sum float64
	for _, e := range c.Elements {
		sum += e.Percentage
	}
	if math.Abs(sum-100) > CompositionSumTolerance {
		return apperror.Validation("invalid input", []apperror.FieldError{{
			Field:   "elements",
			Message: fmt.Sprintf("percentages must sum to 100 (got %.2f)", sum),
		}})
	}
	return nil
}

// PlanInput is the prompt→plan request: a free-text description of what
// the material must do.
type PlanInput struct {
	Purpose                 string `json:"purpose" validate:"required,min=10"`
	PerformanceRequirements string `json:"performanceRequirements,omitempty"`
	MaterialConstraints     string `json:"materialConstraints,omitempty"`
	EnvironmentalConditions string `json:"environmentalConditions,omitempty"`
	AdditionalDescription   string `json:"additionalDescription,omitempty"`
}

func (p *PlanInput) Validate() *apperror.Error {
	return Validate(p)
}
