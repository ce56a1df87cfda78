package transform

import (
	"errors"
	"testing"

	"github.com/rgehrsitz/spv/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseRequest() domain.RawRequest {
	return domain.RawRequest{
		Amount:       "1000",
		StartDate:    "2025-01-01",
		EndDate:      "2030-01-01",
		PaymentMode:  "Monthly",
		IncreaseRate: "0",
		BaseRate:     "0.085",
		LCPKeys:      []string{"age:45-54"},
	}
}

func TestApplyTransforms_DoesNotMutateBase(t *testing.T) {
	base := baseRequest()

	out, err := ApplyTransforms(base, []RequestTransform{
		&SetPaymentMode{Mode: domain.PaymentModeQuarterly},
		&SetIncreaseRate{Percent: decimal.NewFromInt(2)},
	})
	require.NoError(t, err)

	assert.Equal(t, "Quarterly", out.PaymentMode)
	assert.Equal(t, "2", out.IncreaseRate)
	assert.Equal(t, "Monthly", base.PaymentMode)
	assert.Equal(t, "0", base.IncreaseRate)

	out.LCPKeys[0] = "changed"
	assert.Equal(t, "age:45-54", base.LCPKeys[0])
}

func TestApplyTransforms_NilTransform(t *testing.T) {
	_, err := ApplyTransforms(baseRequest(), []RequestTransform{nil})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "index 0")
}

func TestShiftEndDate(t *testing.T) {
	out, err := (&ShiftEndDate{Months: -12}).Apply(baseRequest())
	require.NoError(t, err)
	assert.Equal(t, "2029-01-01", out.EndDate)

	out, err = (&ShiftEndDate{Months: 6}).Apply(baseRequest())
	require.NoError(t, err)
	assert.Equal(t, "2030-07-01", out.EndDate)

	bad := baseRequest()
	bad.EndDate = "soon"
	_, err = (&ShiftEndDate{Months: 1}).Apply(bad)
	var terr *TransformError
	require.True(t, errors.As(err, &terr))
	assert.Equal(t, "endDate", terr.Field)
}

func TestScaleAmount(t *testing.T) {
	out, err := (&ScaleAmount{Factor: decimal.NewFromFloat(0.5)}).Apply(baseRequest())
	require.NoError(t, err)
	assert.Equal(t, "500", out.Amount)

	_, err = (&ScaleAmount{Factor: decimal.Zero}).Apply(baseRequest())
	assert.Error(t, err)
}

func TestSetBaseRate(t *testing.T) {
	out, err := (&SetBaseRate{Rate: decimal.NewFromFloat(0.07)}).Apply(baseRequest())
	require.NoError(t, err)
	assert.Equal(t, "0.07", out.BaseRate)
}

func TestTransformRegistry_ParseTransformSpec(t *testing.T) {
	r := NewTransformRegistry()

	tr, err := r.ParseTransformSpec("shift_end:months=-6")
	require.NoError(t, err)
	assert.Equal(t, &ShiftEndDate{Months: -6}, tr)

	tr, err = r.ParseTransformSpec("set_mode:mode=annually")
	require.NoError(t, err)
	assert.Equal(t, &SetPaymentMode{Mode: domain.PaymentModeAnnually}, tr)

	_, err = r.ParseTransformSpec("set_mode:mode=weekly")
	assert.Error(t, err)

	_, err = r.ParseTransformSpec("nope:x=1")
	assert.Error(t, err)

	_, err = r.ParseTransformSpec("shift_end")
	assert.Error(t, err)

	_, err = r.ParseTransformSpec("set_increase:pct=2")
	assert.Error(t, err)

	assert.Equal(t, []string{"scale_amount", "set_base_rate", "set_increase", "set_mode", "shift_end"}, r.List())
}

func TestBuiltInTemplates(t *testing.T) {
	reg := CreateBuiltInTemplates()

	tmpl, ok := reg.Get("Quarterly")
	require.True(t, ok)
	out, err := ApplyTemplate(baseRequest(), tmpl)
	require.NoError(t, err)
	assert.Equal(t, "Quarterly", out.PaymentMode)

	tmpl, ok = reg.Get("extend_1yr")
	require.True(t, ok)
	out, err = ApplyTemplate(baseRequest(), tmpl)
	require.NoError(t, err)
	assert.Equal(t, "2031-01-01", out.EndDate)

	_, ok = reg.Get("postpone_1yr")
	assert.False(t, ok)

	assert.Contains(t, GetTemplateHelp(reg), "lump_sum")
	assert.Equal(t, "No templates registered", GetTemplateHelp(NewTemplateRegistry()))
}

func TestParseTemplateList(t *testing.T) {
	assert.Nil(t, ParseTemplateList(""))
	assert.Equal(t, []string{"annual", "lump_sum"}, ParseTemplateList(" annual, ,lump_sum "))
}
