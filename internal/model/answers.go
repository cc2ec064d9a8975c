// Package model defines the questionnaire answer schema and the score
// report types shared across the scoring and advisory packages.
package model

import (
	"strings"

	"github.com/rotisserie/eris"
)

// AnswerSet holds one business self-assessment submission. Every categorical
// field is constrained to a fixed vocabulary (see the *Values slices below).
// The engine treats an AnswerSet as immutable once validated.
type AnswerSet struct {
	OwnerName       string `json:"ownerName"`
	BusinessName    string `json:"businessName"`
	Industry        string `json:"industry"`
	YearsInBusiness string `json:"yearsInBusiness"`

	// Financial health.
	CashFlow     string `json:"cashFlow"`
	ProfitMargin string `json:"profitMargin"`
	CashRunway   string `json:"cashRunway"`
	PaymentSpeed string `json:"paymentSpeed"`

	// Customer strength.
	RepeatCustomerRate string `json:"repeatCustomerRate"`
	AcquisitionChannel string `json:"acquisitionChannel"`
	PricingPower       string `json:"pricingPower"`

	// Operational maturity.
	FounderDependency    string `json:"founderDependency"`
	ProcessDocumentation string `json:"processDocumentation"`
	InventoryTracking    string `json:"inventoryTracking"`

	// Financial intelligence.
	ExpenseAwareness string `json:"expenseAwareness"`
	ProfitPerProduct string `json:"profitPerProduct"`
	PricingStrategy  string `json:"pricingStrategy"`

	// Growth and resilience.
	BusinessTrajectory     string `json:"businessTrajectory"`
	RevenueDiversification string `json:"revenueDiversification"`
	DigitalPayments        string `json:"digitalPayments"`
	FormalRegistration     string `json:"formalRegistration"`
	Infrastructure         string `json:"infrastructure"`
	BankingRelationship    string `json:"bankingRelationship"`

	PrimaryPainPoint string `json:"primaryPainPoint"`
}

// Fixed answer vocabularies. Scoring tables in internal/scorer must cover
// every value listed here; the coverage test enforces that.
var (
	CashFlowValues = []string{
		"Consistent surplus",
		"Breaking even",
		"Unpredictable (some surplus, some deficit)",
		"Burning cash consistently",
		"Don't know",
	}
	ProfitMarginValues = []string{
		"30%+",
		"20-30%",
		"10-20%",
		"5-10%",
		"Less than 5% or negative",
		"Don't know",
	}
	CashRunwayValues = []string{
		"6+ months",
		"3-6 months",
		"1-3 months",
		"Less than 1 month",
		"Don't know",
	}
	PaymentSpeedValues = []string{
		"Paid upfront or same day",
		"1-7 days",
		"8-30 days",
		"31-60 days",
		"60+ days",
	}
	RepeatCustomerRateValues = []string{
		"70%+ repeat",
		"50-70% repeat",
		"25-50% repeat",
		"10-25% repeat",
		"Less than 10% repeat",
		"Don't know",
	}
	AcquisitionChannelValues = []string{
		"Referrals and word of mouth",
		"Repeat customer base",
		"Organic social media",
		"Paid advertising",
		"Marketplace platforms",
		"Walk-ins / passing trade",
	}
	PricingPowerValues = []string{
		"Raised prices recently, kept customers",
		"Most customers would stay",
		"About half would stay",
		"Most would leave",
		"Have never raised prices",
	}
	FounderDependencyValues = []string{
		"Runs fine without me for a month",
		"Can step away 1 week",
		"Can step away 2-3 days",
		"Can miss one day at most",
		"Cannot miss a single day",
	}
	ProcessDocumentationValues = []string{
		"Fully documented, team follows them",
		"Some key processes documented",
		"Mostly in my head",
		"Nothing written down",
	}
	InventoryTrackingValues = []string{
		"Real-time software tracking",
		"Regular manual/spreadsheet",
		"Occasional rough counts",
		"No formal tracking",
		"No inventory (service business)",
	}
	ExpenseAwarenessValues = []string{
		"Track every expense, review monthly",
		"Know roughly",
		"Only look at tax time",
		"No real visibility",
	}
	ProfitPerProductValues = []string{
		"Know exact margins per offering",
		"Good sense of what's profitable",
		"Track revenue only",
		"No idea",
	}
	PricingStrategyValues = []string{
		"Value-based, reviewed regularly",
		"Cost-plus with target margins",
		"Match competitors",
		"Gut feeling",
		"Haven't changed prices in over a year",
	}
	BusinessTrajectoryValues = []string{
		"Growing 20%+ year on year",
		"Growing steadily",
		"Stable (±5%)",
		"Declining slowly",
		"Declining fast",
		"Don't know",
	}
	RevenueDiversificationValues = []string{
		"4+ revenue streams",
		"2-3 streams",
		"One main stream plus extras",
		"Single revenue stream",
		"One customer dominates revenue",
	}
	DigitalPaymentsValues = []string{
		"Over 80% digital",
		"50-80% digital",
		"20-50% digital",
		"Under 20% digital",
		"Cash only",
	}
	FormalRegistrationValues = []string{
		"Registered and tax compliant",
		"Registered, behind on taxes",
		"Partially registered",
		"Not registered",
	}
	InfrastructureValues = []string{
		"Reliable power and internet",
		"Mostly reliable with backups",
		"Frequent outages, have workarounds",
		"Frequent outages, no backup",
	}
	BankingRelationshipValues = []string{
		"Business accounts with credit access",
		"Accounts but no credit",
		"Personal accounts only",
		"No bank account",
	}
	YearsInBusinessValues = []string{
		"Less than 1 year",
		"1-3 years",
		"3-5 years",
		"5-10 years",
		"10+ years",
	}
	PrimaryPainPointValues = []string{
		"Cash flow and money management",
		"Finding new customers",
		"Customers don't come back",
		"Everything depends on me",
		"Can't compete on price",
		"Don't understand my numbers",
		"Staff hiring and retention",
		"Supply costs keep rising",
		"Growth has stalled",
	}
	IndustryValues = []string{
		"Retail & Trading",
		"Food & Beverage",
		"Fashion & Tailoring",
		"Beauty & Personal Care",
		"Agriculture & Agro-processing",
		"Professional Services",
		"Technology",
		"Logistics & Transport",
		"Manufacturing & Crafts",
		"Construction & Real Estate",
		"Education & Training",
		"Healthcare",
		"Other",
	}
)

// categoricalField pairs an answer value with its allowed vocabulary, in
// questionnaire declaration order.
type categoricalField struct {
	name    string
	value   string
	allowed []string
}

func (a *AnswerSet) fields() []categoricalField {
	return []categoricalField{
		{"cashFlow", a.CashFlow, CashFlowValues},
		{"profitMargin", a.ProfitMargin, ProfitMarginValues},
		{"cashRunway", a.CashRunway, CashRunwayValues},
		{"paymentSpeed", a.PaymentSpeed, PaymentSpeedValues},
		{"repeatCustomerRate", a.RepeatCustomerRate, RepeatCustomerRateValues},
		{"acquisitionChannel", a.AcquisitionChannel, AcquisitionChannelValues},
		{"pricingPower", a.PricingPower, PricingPowerValues},
		{"founderDependency", a.FounderDependency, FounderDependencyValues},
		{"processDocumentation", a.ProcessDocumentation, ProcessDocumentationValues},
		{"inventoryTracking", a.InventoryTracking, InventoryTrackingValues},
		{"expenseAwareness", a.ExpenseAwareness, ExpenseAwarenessValues},
		{"profitPerProduct", a.ProfitPerProduct, ProfitPerProductValues},
		{"pricingStrategy", a.PricingStrategy, PricingStrategyValues},
		{"businessTrajectory", a.BusinessTrajectory, BusinessTrajectoryValues},
		{"revenueDiversification", a.RevenueDiversification, RevenueDiversificationValues},
		{"digitalPayments", a.DigitalPayments, DigitalPaymentsValues},
		{"formalRegistration", a.FormalRegistration, FormalRegistrationValues},
		{"infrastructure", a.Infrastructure, InfrastructureValues},
		{"bankingRelationship", a.BankingRelationship, BankingRelationshipValues},
		{"yearsInBusiness", a.YearsInBusiness, YearsInBusinessValues},
		{"primaryPainPoint", a.PrimaryPainPoint, PrimaryPainPointValues},
		{"industry", a.Industry, IndustryValues},
	}
}

// Validate checks every categorical answer against its vocabulary. The
// scoring engine assumes a validated AnswerSet; callers (HTTP handler, CLI)
// must reject invalid submissions before scoring.
func (a *AnswerSet) Validate() error {
	var bad []string
	for _, f := range a.fields() {
		if !contains(f.allowed, f.value) {
			bad = append(bad, f.name+"="+quoteValue(f.value))
		}
	}
	if a.BusinessName == "" {
		bad = append(bad, "businessName is required")
	}
	if len(bad) > 0 {
		return eris.Errorf("model: invalid answers: %s", strings.Join(bad, "; "))
	}
	return nil
}

func quoteValue(v string) string {
	if v == "" {
		return "(empty)"
	}
	return `"` + v + `"`
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
