package scorer

// Ordinal lookup tables mapping each categorical answer to points in [0,5].
// Tables are monotonic in the intuitive ordinal sense; "Don't know" style
// answers sit at or near the bottom because uncertainty is itself a risk
// signal. Every value declared in internal/model must have an entry here;
// the coverage test in tables_test.go enforces totality.

var cashFlowPoints = map[string]int{
	"Consistent surplus":                         5,
	"Breaking even":                              3,
	"Unpredictable (some surplus, some deficit)": 2,
	"Burning cash consistently":                  0,
	"Don't know":                                 0,
}

var profitMarginPoints = map[string]int{
	"30%+":                     5,
	"20-30%":                   4,
	"10-20%":                   3,
	"5-10%":                    2,
	"Less than 5% or negative": 1,
	"Don't know":               0,
}

var cashRunwayPoints = map[string]int{
	"6+ months":         5,
	"3-6 months":        4,
	"1-3 months":        2,
	"Less than 1 month": 1,
	"Don't know":        0,
}

var paymentSpeedPoints = map[string]int{
	"Paid upfront or same day": 5,
	"1-7 days":                 4,
	"8-30 days":                3,
	"31-60 days":               1,
	"60+ days":                 0,
}

var repeatCustomerRatePoints = map[string]int{
	"70%+ repeat":          5,
	"50-70% repeat":        4,
	"25-50% repeat":        3,
	"10-25% repeat":        2,
	"Less than 10% repeat": 1,
	"Don't know":           0,
}

var acquisitionChannelPoints = map[string]int{
	"Referrals and word of mouth": 5,
	"Repeat customer base":        4,
	"Organic social media":        3,
	"Paid advertising":            2,
	"Marketplace platforms":       2,
	"Walk-ins / passing trade":    1,
}

var pricingPowerPoints = map[string]int{
	"Raised prices recently, kept customers": 5,
	"Most customers would stay":              4,
	"About half would stay":                  2,
	"Most would leave":                       1,
	"Have never raised prices":               0,
}

var founderDependencyPoints = map[string]int{
	"Runs fine without me for a month": 5,
	"Can step away 1 week":             4,
	"Can step away 2-3 days":           3,
	"Can miss one day at most":         1,
	"Cannot miss a single day":         0,
}

var processDocumentationPoints = map[string]int{
	"Fully documented, team follows them": 5,
	"Some key processes documented":       4,
	"Mostly in my head":                   2,
	"Nothing written down":                0,
}

var inventoryTrackingPoints = map[string]int{
	"Real-time software tracking":     5,
	"Regular manual/spreadsheet":      4,
	"Occasional rough counts":         2,
	"No formal tracking":              0,
	"No inventory (service business)": 3,
}

var expenseAwarenessPoints = map[string]int{
	"Track every expense, review monthly": 5,
	"Know roughly":                        4,
	"Only look at tax time":               2,
	"No real visibility":                  0,
}

var profitPerProductPoints = map[string]int{
	"Know exact margins per offering": 5,
	"Good sense of what's profitable": 4,
	"Track revenue only":              2,
	"No idea":                         0,
}

var pricingStrategyPoints = map[string]int{
	"Value-based, reviewed regularly":       5,
	"Cost-plus with target margins":         4,
	"Match competitors":                     3,
	"Gut feeling":                           1,
	"Haven't changed prices in over a year": 0,
}

var businessTrajectoryPoints = map[string]int{
	"Growing 20%+ year on year": 5,
	"Growing steadily":          4,
	"Stable (±5%)":              3,
	"Declining slowly":          1,
	"Declining fast":            0,
	"Don't know":                0,
}

var revenueDiversificationPoints = map[string]int{
	"4+ revenue streams":             5,
	"2-3 streams":                    4,
	"One main stream plus extras":    2,
	"Single revenue stream":          1,
	"One customer dominates revenue": 0,
}

var digitalPaymentsPoints = map[string]int{
	"Over 80% digital":  5,
	"50-80% digital":    4,
	"20-50% digital":    3,
	"Under 20% digital": 1,
	"Cash only":         0,
}

var formalRegistrationPoints = map[string]int{
	"Registered and tax compliant": 5,
	"Registered, behind on taxes":  3,
	"Partially registered":         2,
	"Not registered":               0,
}

var infrastructurePoints = map[string]int{
	"Reliable power and internet":        5,
	"Mostly reliable with backups":       4,
	"Frequent outages, have workarounds": 2,
	"Frequent outages, no backup":        0,
}

var bankingRelationshipPoints = map[string]int{
	"Business accounts with credit access": 5,
	"Accounts but no credit":               3,
	"Personal accounts only":               1,
	"No bank account":                      0,
}
