package calculation

import (
	"fmt"

	"github.com/rgehrsitz/spv/internal/config"
	"github.com/rgehrsitz/spv/internal/domain"
)

// Engine prices validated settlement requests. It holds only read-only
// pricing tables and may be shared between goroutines.
type Engine struct {
	Tables domain.PricingTables
	Logger Logger
	Debug  bool // Log resolved rates and schedule details
}

// NewEngine creates an engine over the given pricing tables
func NewEngine(tables domain.PricingTables) *Engine {
	return &Engine{
		Tables: tables,
		Logger: NopLogger{},
	}
}

// NewDefaultEngine creates an engine using the built-in synthetic tables
func NewDefaultEngine() *Engine {
	return NewEngine(domain.DefaultPricingTables())
}

// SetLogger installs a logger; nil restores the no-op logger
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

func (e *Engine) logger() Logger {
	if e.Logger == nil {
		return NopLogger{}
	}
	return e.Logger
}

// CalculateGuaranteedOffer prices a request as a guaranteed stream and
// returns a rounded min/max range.
func (e *Engine) CalculateGuaranteedOffer(req config.ValidRequest) (domain.ValuationResult, error) {
	v, err := e.valueGuaranteed(req.Request())
	if err != nil {
		return domain.ValuationResult{}, err
	}
	return v.Result, nil
}

// CalculateLifeContingentOffer prices a request as a life-contingent stream
// using the given risk keys and returns a single rounded value.
func (e *Engine) CalculateLifeContingentOffer(req config.ValidRequest, keys domain.KeySet) (domain.ValuationResult, error) {
	v, err := e.valueLifeContingent(req.Request(), keys)
	if err != nil {
		return domain.ValuationResult{}, err
	}
	return v.Result, nil
}

// Value prices a request by its own life-contingent flag and keys and returns
// the full valuation including schedule and resolved rates.
func (e *Engine) Value(req config.ValidRequest) (*domain.Valuation, error) {
	r := req.Request()
	if r.IsLifeContingent {
		return e.valueLifeContingent(r, r.LCPKeys)
	}
	return e.valueGuaranteed(r)
}

func (e *Engine) valueGuaranteed(req domain.ValuationRequest) (*domain.Valuation, error) {
	if err := e.Tables.Validate(); err != nil {
		return nil, err
	}

	rates, err := NewRateResolver(e.Tables).Guaranteed(req)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve guaranteed rates: %w", err)
	}

	schedule := ScheduleFor(req)
	minPV := PresentValue(schedule.All(), *rates.MinRate, req.ValuationDate)
	maxPV := PresentValue(schedule.All(), *rates.MaxRate, req.ValuationDate)

	if e.Debug {
		e.logger().Debugf("guaranteed: amount=%s mode=%s adj=%s minRate=%s maxRate=%s",
			req.Amount, req.PaymentMode, rates.AmountAdjustmentApplied, rates.MinRate, rates.MaxRate)
		e.logger().Debugf("guaranteed: minPV=%s maxPV=%s", minPV.StringFixed(2), maxPV.StringFixed(2))
	}

	return &domain.Valuation{
		Request:         req,
		Schedule:        schedule.Entries(),
		Rates:           rates,
		UndiscountedSum: schedule.Total(),
		MinPresentValue: &minPV,
		MaxPresentValue: &maxPV,
		Result:          GuaranteedOffer(minPV, maxPV),
	}, nil
}

func (e *Engine) valueLifeContingent(req domain.ValuationRequest, keys domain.KeySet) (*domain.Valuation, error) {
	if err := e.Tables.Validate(); err != nil {
		return nil, err
	}

	rates, err := NewRateResolver(e.Tables).LifeContingent(req.BaseRate, keys)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve life-contingent rate: %w", err)
	}

	schedule := ScheduleFor(req)
	pv := PresentValue(schedule.All(), *rates.Rate, req.ValuationDate)

	if e.Debug {
		e.logger().Debugf("life-contingent: keys=%v delta=%s rate=%s pv=%s",
			keys.Sorted(), rates.RiskAdjustment, rates.Rate, pv.StringFixed(2))
	}

	req.LCPKeys = keys.Clone()
	return &domain.Valuation{
		Request:         req,
		Schedule:        schedule.Entries(),
		Rates:           rates,
		UndiscountedSum: schedule.Total(),
		PresentValue:    &pv,
		Result:          LifeContingentOffer(pv),
	}, nil
}
