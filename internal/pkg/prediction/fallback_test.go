package prediction

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matsci-ai/matsci/internal/pkg/schema"
)

func TestFallbackOutputsPassValidation(t *testing.T) {
	t.Parallel()

	svc := NewFallback()
	ctx := context.Background()

	assert.Equal(t, FallbackModel, svc.Model())

	composition, err := svc.PredictComposition(ctx, &schema.PropertySetInput{})
	require.NoError(t, err)
	assert.Nil(t, composition.Validate())

	var sum float64
	for _, e := range composition.Composition {
		sum += e.Percentage
	}
	assert.InDelta(t, 100, sum, schema.CompositionSumTolerance)

	properties, err := svc.PredictProperties(ctx, &schema.CompositionInput{
		Elements: []schema.ElementFraction{{Element: "Fe", Percentage: 100}},
	})
	require.NoError(t, err)
	assert.Nil(t, properties.Validate())
	assert.NotNil(t, properties.Properties.Mechanical)
	assert.GreaterOrEqual(t, properties.Confidence, float64(0))
	assert.LessOrEqual(t, properties.Confidence, float64(100))

	plan, err := svc.PredictPlan(ctx, &schema.PlanInput{
		Purpose: "A corrosion resistant pipe material for coastal water infrastructure",
	})
	require.NoError(t, err)
	assert.Nil(t, plan.Validate())
	assert.NotEmpty(t, plan.MaterialName)
	assert.Contains(t, []string{"Low", "Medium", "High"}, plan.ManufacturingComplexity)
}

func TestProvidedFields(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "None specified", providedFields((*schema.MechanicalInput)(nil)))

	v := 850.0
	got := providedFields(&schema.MechanicalInput{TensileStrength: &v})
	assert.Equal(t, "tensileStrength", got)
}
