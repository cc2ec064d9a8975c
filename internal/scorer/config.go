// Package scorer converts questionnaire answers into the five-dimension
// score report, derives risk and opportunity flags, and generates the
// per-category insight lines attached to each score.
package scorer

import (
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
)

// Weighting constants, version 2 of the scorecard. The per-dimension raw
// maxima and the growth base/context split are calibrated together; they are
// not interchangeable with earlier weightings (v1 normalized three answers
// over 11 points to a 25-point dimension). Changing any of these requires
// re-deriving every table ceiling, so they live here as one named set.
const (
	WeightingVersion = 2

	financialHealthRawMax       = 20.0
	customerStrengthRawMax      = 15.0
	operationalMaturityRawMax   = 15.0
	financialIntelligenceRawMax = 15.0

	// Growth & Resilience splits into a primary base (trajectory +
	// diversification, out of 10, scaled to 12) and a secondary enabling
	// context worth up to 8: 12 + 8 = 20.
	growthBaseRawMax  = 10.0
	growthBaseCeiling = 12.0

	digitalPaymentsWeight    = 2.0 / 5.0
	formalRegistrationWeight = 3.0 / 5.0
	infrastructureWeight     = 2.0 / 5.0
	bankingWeight            = 1.0 / 5.0

	// Opportunity threshold: Financial Health at or above 16/20 marks a
	// financing-ready business.
	strongFinancialsThreshold = 16.0
)

// tablePoints is the [0,5] ceiling every ordinal table is calibrated to.
const tablePoints = 5.0

// ValidateWeighting checks that the versioned constants are internally
// consistent. A failure here is a programming error in the weighting set,
// not a user error, so it is meant to run at startup and in tests.
func ValidateWeighting() error {
	var errs []string

	if financialHealthRawMax != 4*tablePoints {
		errs = append(errs, "financial health raw max must equal its four table ceilings")
	}
	for name, max := range map[string]float64{
		"customer strength":      customerStrengthRawMax,
		"operational maturity":   operationalMaturityRawMax,
		"financial intelligence": financialIntelligenceRawMax,
	} {
		if max != 3*tablePoints {
			errs = append(errs, fmt.Sprintf("%s raw max must equal its three table ceilings", name))
		}
	}

	contextCeiling := tablePoints * (digitalPaymentsWeight + formalRegistrationWeight +
		infrastructureWeight + bankingWeight)
	if growthBaseCeiling+contextCeiling != 20.0 {
		errs = append(errs, fmt.Sprintf(
			"growth base (%.0f) + context (%.1f) must total 20", growthBaseCeiling, contextCeiling))
	}

	if strongFinancialsThreshold <= 0 || strongFinancialsThreshold > 20 {
		errs = append(errs, "strong financials threshold must be in (0,20]")
	}

	if len(errs) > 0 {
		return eris.Errorf("scorer: weighting v%d invalid: %s", WeightingVersion, strings.Join(errs, "; "))
	}
	return nil
}
