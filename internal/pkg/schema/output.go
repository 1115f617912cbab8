package schema

import "github.com/matsci-ai/matsci/internal/pkg/apperror"

// Measurement pairs a predicted numeric value with its uncertainty in the
// same unit. Every numeric property the provider predicts carries one.
type Measurement struct {
	Value       float64 `json:"value"`
	Uncertainty float64 `json:"uncertainty" validate:"gte=0"`
}

// TextMeasurement is the same pairing for values reported in scientific
// notation as strings (electrical resistivity).
type TextMeasurement struct {
	Value       string `json:"value" validate:"required"`
	Uncertainty string `json:"uncertainty"`
}

// ProcessParameters describe how to manufacture a predicted composition.
type ProcessParameters struct {
	AnnealingTemperature string `json:"annealingTemperature,omitempty"`
	CoolingRate          string `json:"coolingRate,omitempty"`
	Atmosphere           string `json:"atmosphere,omitempty"`
	ColdWorkReduction    string `json:"coldWorkReduction,omitempty"`
}

// MaterialMatch references a local material similar to the prediction.
type MaterialMatch struct {
	MaterialName    string  `json:"materialName" validate:"required"`
	MatchPercentage float64 `json:"matchPercentage" validate:"gte=0,lte=100"`
	Description     string  `json:"description"`
}

// CompositionPrediction is the properties→composition response.
type CompositionPrediction struct {
	Composition            []ElementFraction  `json:"composition" validate:"required,min=1,dive"`
	Confidence             float64            `json:"confidence" validate:"gte=0,lte=100"`
	ProcessParameters      *ProcessParameters `json:"processParameters,omitempty"`
	EthiopianMaterialsMatch []MaterialMatch   `json:"ethiopianMaterialsMatch,omitempty" validate:"omitempty,dive"`
}

func (p *CompositionPrediction) Validate() *apperror.Error { return Validate(p) }

// PropertyBundle spans the same eight categories as the input side, with
// numeric fields carrying value+uncertainty pairs.
type PropertyBundle struct {
	Mechanical    *MechanicalPrediction    `json:"mechanical,omitempty"`
	Thermal       *ThermalPrediction       `json:"thermal,omitempty"`
	Electrical    *ElectricalPrediction    `json:"electrical,omitempty"`
	Optical       *OpticalPrediction       `json:"optical,omitempty"`
	Chemical      *ChemicalPrediction      `json:"chemical,omitempty"`
	Physical      *PhysicalPrediction      `json:"physical,omitempty"`
	Manufacturing *ManufacturingPrediction `json:"manufacturing,omitempty"`
	Environmental *EnvironmentalPrediction `json:"environmental,omitempty"`
}

type MechanicalPrediction struct {
	TensileStrength     *Measurement `json:"tensileStrength,omitempty"`
	YieldStrength       *Measurement `json:"yieldStrength,omitempty"`
	YoungsModulus       *Measurement `json:"youngsModulus,omitempty"`
	Hardness            *Measurement `json:"hardness,omitempty"`
	Elongation          *Measurement `json:"elongation,omitempty"`
	CompressiveStrength *Measurement `json:"compressiveStrength,omitempty"`
	FlexuralStrength    *Measurement `json:"flexuralStrength,omitempty"`
	ImpactStrength      *Measurement `json:"impactStrength,omitempty"`
	PoissonsRatio       *Measurement `json:"poissonsRatio,omitempty"`
}

type ThermalPrediction struct {
	ThermalConductivity *Measurement `json:"thermalConductivity,omitempty"`
	MeltingPoint        *Measurement `json:"meltingPoint,omitempty"`
	BoilingPoint        *Measurement `json:"boilingPoint,omitempty"`
	ThermalExpansion    *Measurement `json:"thermalExpansion,omitempty"`
	SpecificHeat        *Measurement `json:"specificHeat,omitempty"`
	GlassTransitionTemp *Measurement `json:"glassTransitionTemp,omitempty"`
	MaxServiceTemp      *Measurement `json:"maxServiceTemp,omitempty"`
}

type ElectricalPrediction struct {
	ElectricalResistivity  *TextMeasurement `json:"electricalResistivity,omitempty"`
	ElectricalConductivity *Measurement     `json:"electricalConductivity,omitempty"`
	DielectricConstant     *Measurement     `json:"dielectricConstant,omitempty"`
	DielectricStrength     *Measurement     `json:"dielectricStrength,omitempty"`
}

type OpticalPrediction struct {
	RefractiveIndex *Measurement `json:"refractiveIndex,omitempty"`
	Transparency    *string      `json:"transparency,omitempty" validate:"omitempty,oneof=Transparent Translucent Opaque"`
	Reflectance     *Measurement `json:"reflectance,omitempty"`
	Emissivity      *Measurement `json:"emissivity,omitempty"`
}

type ChemicalPrediction struct {
	CorrosionResistance *string `json:"corrosionResistance,omitempty" validate:"omitempty,oneof=Excellent Good Fair Poor"`
	OxidationResistance *string `json:"oxidationResistance,omitempty" validate:"omitempty,oneof=Excellent Good Fair Poor"`
	PhStabilityRange    *string `json:"phStabilityRange,omitempty"`
	Solubility          *string `json:"solubility,omitempty"`
}

type PhysicalPrediction struct {
	Density     *Measurement `json:"density,omitempty"`
	Porosity    *Measurement `json:"porosity,omitempty"`
	Viscosity   *Measurement `json:"viscosity,omitempty"`
	Wettability *string      `json:"wettability,omitempty" validate:"omitempty,oneof=Hydrophilic Hydrophobic Neutral"`
}

type ManufacturingPrediction struct {
	Machinability *string `json:"machinability,omitempty" validate:"omitempty,oneof=Excellent Good Fair Poor"`
	Weldability   *string `json:"weldability,omitempty" validate:"omitempty,oneof=Excellent Good Fair Poor"`
	Formability   *string `json:"formability,omitempty" validate:"omitempty,oneof=Excellent Good Fair Poor"`
	Castability   *string `json:"castability,omitempty" validate:"omitempty,oneof=Excellent Good Fair Poor"`
}

type EnvironmentalPrediction struct {
	WeatherResistance *string `json:"weatherResistance,omitempty" validate:"omitempty,oneof=Excellent Good Fair Poor"`
	UvResistance      *string `json:"uvResistance,omitempty" validate:"omitempty,oneof=Excellent Good Fair Poor"`
	Biodegradability  *string `json:"biodegradability,omitempty" validate:"omitempty,oneof=High Medium Low None"`
}

// PropertyPrediction is the composition→properties response.
type PropertyPrediction struct {
	Properties             PropertyBundle `json:"properties"`
	Confidence             float64        `json:"confidence" validate:"gte=0,lte=100"`
	PerformanceIndex       float64        `json:"performanceIndex" validate:"gte=0"`
	ManufacturabilityScore float64        `json:"manufacturabilityScore" validate:"gte=0"`
	EstimatedCost          float64        `json:"estimatedCost" validate:"gte=0"`
}

func (p *PropertyPrediction) Validate() *apperror.Error { return Validate(p) }

// PlanPrediction is the prompt→plan response: a complete material
// solution from composition through manufacturing.
type PlanPrediction struct {
	MaterialName            string            `json:"materialName" validate:"required"`
	Composition             []ElementFraction `json:"composition" validate:"required,min=1,dive"`
	Microstructure          string            `json:"microstructure"`
	ProcessParameters       ProcessParameters `json:"processParameters"`
	Properties              PropertyBundle    `json:"properties"`
	Confidence              float64           `json:"confidence" validate:"gte=0,lte=100"`
	SuitabilityScore        float64           `json:"suitabilityScore" validate:"gte=0,lte=100"`
	ResourceUtilization     string            `json:"resourceUtilization"`
	ManufacturingComplexity string            `json:"manufacturingComplexity" validate:"required,oneof=Low Medium High"`
	EstimatedCost           float64           `json:"estimatedCost" validate:"gte=0"`
}

func (p *PlanPrediction) Validate() *apperror.Error { return Validate(p) }
