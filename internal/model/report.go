package model

import "math"

// MaxCategoryScore is the normalized ceiling every dimension is scaled to.
const MaxCategoryScore = 20.0

// Flag is a categorical risk or opportunity tag derived from answers and
// scores. Flags behave as sets; the declaration-order slices below fix the
// priority ranking the advisory assembler renders in.
type Flag string

// Critical flags, ordered from existential to merely urgent.
const (
	FlagCashFlowCrisis       Flag = "CASH_FLOW_CRISIS"
	FlagNoRunway             Flag = "NO_RUNWAY"
	FlagMarginBlindness      Flag = "MARGIN_BLINDNESS"
	FlagFounderDependency    Flag = "FOUNDER_DEPENDENCY"
	FlagUnregisteredBusiness Flag = "UNREGISTERED_BUSINESS"
	FlagCustomerChurn        Flag = "CUSTOMER_CHURN"
)

// Opportunity flags, in declaration order.
const (
	FlagPricingPower     Flag = "PRICING_POWER"
	FlagStrongFinancials Flag = "STRONG_FINANCIALS"
	FlagHighRetention    Flag = "HIGH_RETENTION"
	FlagDigitalReady     Flag = "DIGITAL_READY"
	FlagGrowthMomentum   Flag = "GROWTH_MOMENTUM"
)

// CriticalFlagOrder fixes the rendering priority for critical playbooks.
var CriticalFlagOrder = []Flag{
	FlagCashFlowCrisis,
	FlagNoRunway,
	FlagMarginBlindness,
	FlagFounderDependency,
	FlagUnregisteredBusiness,
	FlagCustomerChurn,
}

// OpportunityFlagOrder fixes the rendering order for opportunity blocks.
var OpportunityFlagOrder = []Flag{
	FlagPricingPower,
	FlagStrongFinancials,
	FlagHighRetention,
	FlagDigitalReady,
	FlagGrowthMomentum,
}

// Readiness tier labels, checked highest-first with inclusive lower bounds.
const (
	TierScaleReady       = "Scale-Ready"
	TierStableFoundation = "Stable Foundation"
	TierBuildingBlocks   = "Building Blocks"
	TierSurvivalMode     = "Survival Mode"
	TierRedAlert         = "Red Alert"
)

// CategoryScore holds one dimension's normalized result.
type CategoryScore struct {
	Name       string   `json:"name"`
	RawScore   float64  `json:"raw_score"`
	MaxScore   float64  `json:"max_score"`
	Percentage float64  `json:"percentage"`
	Grade      string   `json:"grade"`
	Insights   []string `json:"insights"`
}

// ScoreReport is the structured output of the scoring engine. It is created
// once per request and read-only afterward.
type ScoreReport struct {
	TotalScore    float64 `json:"total_score"`
	ReadinessTier string  `json:"readiness_tier"`

	FinancialHealth       CategoryScore `json:"financial_health"`
	CustomerStrength      CategoryScore `json:"customer_strength"`
	OperationalMaturity   CategoryScore `json:"operational_maturity"`
	FinancialIntelligence CategoryScore `json:"financial_intelligence"`
	GrowthResilience      CategoryScore `json:"growth_resilience"`

	PrimaryPainPoint string `json:"primary_pain_point"`
	Industry         string `json:"industry"`
	YearsInBusiness  string `json:"years_in_business"`

	CriticalFlags    []Flag `json:"critical_flags"`
	OpportunityFlags []Flag `json:"opportunity_flags"`
}

// Categories returns the five category scores in fixed declaration order:
// Financial Health, Customer Strength, Operational Maturity, Financial
// Intelligence, Growth & Resilience. The assembler relies on this order for
// stable tie-breaking.
func (r *ScoreReport) Categories() []CategoryScore {
	return []CategoryScore{
		r.FinancialHealth,
		r.CustomerStrength,
		r.OperationalMaturity,
		r.FinancialIntelligence,
		r.GrowthResilience,
	}
}

// HasCriticalFlag reports whether the given flag fired.
func (r *ScoreReport) HasCriticalFlag(f Flag) bool {
	return containsFlag(r.CriticalFlags, f)
}

// HasOpportunityFlag reports whether the given flag fired.
func (r *ScoreReport) HasOpportunityFlag(f Flag) bool {
	return containsFlag(r.OpportunityFlags, f)
}

func containsFlag(flags []Flag, f Flag) bool {
	for _, candidate := range flags {
		if candidate == f {
			return true
		}
	}
	return false
}

// Round1 rounds to one decimal place. All published scores and percentages
// go through this helper so the rounding rule lives in exactly one place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// GradeFor maps a percentage to its letter grade via fixed breakpoints.
func GradeFor(percentage float64) string {
	switch {
	case percentage >= 90:
		return "A"
	case percentage >= 80:
		return "B+"
	case percentage >= 70:
		return "B"
	case percentage >= 60:
		return "C+"
	case percentage >= 50:
		return "C"
	default:
		return "D"
	}
}

// TierFor maps a total score to its readiness tier label.
func TierFor(total float64) string {
	switch {
	case total >= 85:
		return TierScaleReady
	case total >= 70:
		return TierStableFoundation
	case total >= 50:
		return TierBuildingBlocks
	case total >= 30:
		return TierSurvivalMode
	default:
		return TierRedAlert
	}
}
