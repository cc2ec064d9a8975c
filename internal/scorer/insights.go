package scorer

import "github.com/BeamX-Solutions/beamx-scorecard/internal/model"

// Per-dimension insight generators. Each walks its answer fields in
// declaration order and appends at most one fixed observation per field.
// Branches cover every vocabulary value, so the returned list is never
// empty for a valid AnswerSet; it is never nil either.

func financialHealthInsights(a *model.AnswerSet) []string {
	insights := []string{}

	switch a.CashFlow {
	case "Consistent surplus":
		insights = append(insights, "Consistent cash surplus gives you room to invest in growth.")
	case "Breaking even":
		insights = append(insights, "Breaking even keeps the lights on, but leaves no buffer for shocks or opportunities.")
	case "Unpredictable (some surplus, some deficit)":
		insights = append(insights, "Unpredictable cash flow makes planning hard; smoothing receivables should be a priority.")
	default:
		insights = append(insights, "Cash flow is the first number to get under control; nothing else stabilizes until it does.")
	}

	if a.ProfitMargin == "30%+" || a.ProfitMargin == "20-30%" {
		insights = append(insights, "Healthy margins mean each sale genuinely builds the business.")
	} else if a.ProfitMargin == "10-20%" || a.ProfitMargin == "5-10%" {
		insights = append(insights, "Margins are workable but thin; small cost or price changes will move profit noticeably.")
	} else {
		insights = append(insights, "Without a clear, positive margin, growth multiplies losses instead of profit.")
	}

	if a.CashRunway == "6+ months" {
		insights = append(insights, "A six-month runway is a real safety net most small businesses never build.")
	} else if a.CashRunway == "3-6 months" {
		insights = append(insights, "Your runway covers a bad quarter, but not a bad season.")
	} else {
		insights = append(insights, "A short runway means one slow month can become an existential problem.")
	}

	if a.PaymentSpeed == "Paid upfront or same day" || a.PaymentSpeed == "1-7 days" {
		insights = append(insights, "Fast payment collection keeps working capital where it belongs: with you.")
	} else {
		insights = append(insights, "Slow-paying customers are financing their business with your cash.")
	}

	return insights
}

func customerStrengthInsights(a *model.AnswerSet) []string {
	insights := []string{}

	if a.RepeatCustomerRate == "70%+ repeat" || a.RepeatCustomerRate == "50-70% repeat" {
		insights = append(insights, "A strong repeat-customer base is the cheapest revenue you will ever earn.")
	} else {
		insights = append(insights, "Low repeat business means every month starts from zero; retention deserves as much attention as acquisition.")
	}

	switch a.AcquisitionChannel {
	case "Referrals and word of mouth", "Repeat customer base":
		insights = append(insights, "Customers arriving through referrals signal a product people vouch for.")
	case "Organic social media":
		insights = append(insights, "Organic social reach is valuable but rented ground; build a direct channel you own.")
	default:
		insights = append(insights, "Paid or passive acquisition works, but watch the cost of each new customer closely.")
	}

	if a.PricingPower == "Raised prices recently, kept customers" || a.PricingPower == "Most customers would stay" {
		insights = append(insights, "Customers who would stay through a price rise are telling you your value exceeds your price.")
	} else {
		insights = append(insights, "If a price rise would scatter your customers, you are competing on price alone, a race with no winner.")
	}

	return insights
}

func operationalMaturityInsights(a *model.AnswerSet) []string {
	insights := []string{}

	switch a.FounderDependency {
	case "Runs fine without me for a month":
		insights = append(insights, "A business that runs without you is an asset; one that doesn't is a job.")
	case "Can step away 1 week", "Can step away 2-3 days":
		insights = append(insights, "You can step away briefly; the next milestone is a business that grows while you're gone.")
	default:
		insights = append(insights, "Everything routing through you is the single biggest cap on growth and on the business's sale value.")
	}

	if a.ProcessDocumentation == "Fully documented, team follows them" {
		insights = append(insights, "Documented, followed processes make quality repeatable and hiring far easier.")
	} else if a.ProcessDocumentation == "Some key processes documented" {
		insights = append(insights, "Partial documentation is a good start; finish the processes that would hurt most if you were unavailable.")
	} else {
		insights = append(insights, "Undocumented know-how walks out the door with whoever holds it.")
	}

	if a.InventoryTracking == "Real-time software tracking" || a.InventoryTracking == "No inventory (service business)" {
		insights = append(insights, "Your stock position isn't a source of surprises; that's operational discipline.")
	} else if a.InventoryTracking == "Regular manual/spreadsheet" {
		insights = append(insights, "Manual stock tracking works at your size, but it will strain first as volume grows.")
	} else {
		insights = append(insights, "Untracked inventory quietly leaks cash through stockouts, spoilage, and shrinkage.")
	}

	return insights
}

func financialIntelligenceInsights(a *model.AnswerSet) []string {
	insights := []string{}

	if a.ExpenseAwareness == "Track every expense, review monthly" {
		insights = append(insights, "Monthly expense reviews put you ahead of most businesses twice your size.")
	} else if a.ExpenseAwareness == "Know roughly" {
		insights = append(insights, "A rough sense of expenses is enough to survive, not enough to optimize.")
	} else {
		insights = append(insights, "Flying blind on expenses means your profit figure is a guess.")
	}

	if a.ProfitPerProduct == "Know exact margins per offering" || a.ProfitPerProduct == "Good sense of what's profitable" {
		insights = append(insights, "Knowing which offerings actually make money lets you double down on the right ones.")
	} else {
		insights = append(insights, "Without per-offering margins, you may be working hardest on the products that pay least.")
	}

	switch a.PricingStrategy {
	case "Value-based, reviewed regularly", "Cost-plus with target margins":
		insights = append(insights, "Deliberate pricing is one of the fastest levers on profit, and you're already using it.")
	case "Match competitors":
		insights = append(insights, "Matching competitors outsources your pricing to businesses with different costs than yours.")
	default:
		insights = append(insights, "Prices set by gut feel or left untouched almost always sit below what the market would pay.")
	}

	return insights
}

func growthResilienceInsights(a *model.AnswerSet) []string {
	insights := []string{}

	switch a.BusinessTrajectory {
	case "Growing 20%+ year on year", "Growing steadily":
		insights = append(insights, "You have growth momentum; the task now is building the structure to sustain it.")
	case "Stable (±5%)":
		insights = append(insights, "A stable business is a solid base, and a sign it's time to test a new growth lever.")
	default:
		insights = append(insights, "A declining or unknown trajectory is a signal to diagnose causes before investing further.")
	}

	if a.RevenueDiversification == "4+ revenue streams" || a.RevenueDiversification == "2-3 streams" {
		insights = append(insights, "Multiple revenue streams cushion you when any one market wobbles.")
	} else {
		insights = append(insights, "Concentrated revenue is fragile; one lost customer or channel shouldn't be able to break the business.")
	}

	if a.DigitalPayments == "Over 80% digital" || a.DigitalPayments == "50-80% digital" {
		insights = append(insights, "Digital payment records double as the financial history lenders and partners ask for.")
	} else {
		insights = append(insights, "Cash-heavy takings leave no trail; moving payments digital builds a bankable record.")
	}

	if a.FormalRegistration == "Registered and tax compliant" {
		insights = append(insights, "Full registration and compliance opens doors to contracts, credit, and partners.")
	} else {
		insights = append(insights, "Registration or tax gaps silently disqualify you from the best contracts and financing.")
	}

	if a.Infrastructure == "Reliable power and internet" || a.Infrastructure == "Mostly reliable with backups" {
		insights = append(insights, "Reliable infrastructure (or solid backups) keeps downtime from eating your margin.")
	} else {
		insights = append(insights, "Every outage without a backup plan is unearned revenue you already paid the costs for.")
	}

	if a.BankingRelationship == "Business accounts with credit access" {
		insights = append(insights, "An established credit relationship means growth capital is available when the moment comes.")
	} else {
		insights = append(insights, "A deeper banking relationship, built before you need it, is what makes future credit possible.")
	}

	return insights
}
