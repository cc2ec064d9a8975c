package advisor

import (
	"fmt"

	"github.com/BeamX-Solutions/beamx-scorecard/internal/model"
)

// tierSummary pairs a tier-label fragment with its executive summary. Entries
// are checked in order and the first fragment contained in the tier label
// wins, so the more specific fragments come first.
type tierSummary struct {
	fragment string
	text     string
}

var executiveSummaries = []tierSummary{
	{"Scale-Ready", "## Executive Summary\n\nThis business is scale-ready. The fundamentals are strong across the board: cash generation, customer economics, and operations can all support a larger business than the one running today. The work ahead is not fixing weaknesses but choosing which growth lever to pull first, and putting the capital and management structure in place to pull it hard."},
	{"Stable", "## Executive Summary\n\nThis business has a stable foundation. It earns its keep, holds on to customers, and runs with reasonable discipline. What separates it from the scale-ready tier is depth: margins, systems, and growth infrastructure are adequate rather than strong. The priority now is converting stability into momentum by fixing the one or two weakest dimensions flagged below."},
	{"Building", "## Executive Summary\n\nThis business is still assembling its building blocks. Some dimensions work, others are held together by effort rather than systems. That is normal for a business at this stage, but the gaps compound: weak financial visibility makes every other decision harder. The recommendations below are sequenced so the foundational fixes come first."},
	{"Survival", "## Executive Summary\n\nThis business is in survival mode. One or more core dimensions are weak enough to threaten continuity, and the immediate job is stabilization, not growth. Ignore expansion ideas for the next quarter. The critical priorities below are ordered by urgency; work through them in order before anything else."},
	{"Red", "## Executive Summary\n\nThis business is in the red zone. The assessment shows serious weaknesses across most dimensions, and without decisive action in the next 30 days the business is at real risk of closure. This is recoverable, but only with focus: drop everything that is not on the critical list below."},
}

// criticalPlaybooks holds one fixed markdown block per critical flag:
// a headline plus concrete 30-day steps.
var criticalPlaybooks = map[model.Flag]string{
	model.FlagCashFlowCrisis: "### Cash Flow Crisis\n\nThe business is losing money or does not know whether it is. Nothing else matters until this is fixed.\n\nNext 30 days:\n- Write down every naira/dollar in and out for 30 straight days, no exceptions.\n- Cut the three largest discretionary expenses immediately.\n- Chase every outstanding customer payment this week.\n- Stop any spending that does not directly produce revenue this month.",
	model.FlagNoRunway: "### No Cash Runway\n\nWith less than a month of reserves, a single bad week can close the business.\n\nNext 30 days:\n- Build a minimum one-month cash buffer before any other spending.\n- Negotiate payment terms with your largest suppliers now, before you need to.\n- Invoice immediately on delivery and follow up within 48 hours.\n- Identify which expenses you would cut first in an emergency, in writing.",
	model.FlagMarginBlindness: "### Margin Blindness\n\nThe business does not know what it earns on what it sells. Every pricing and volume decision is a guess.\n\nNext 30 days:\n- Calculate the true cost of your top three products or services, including your own time.\n- Price every offering against its actual cost, not against habit.\n- Drop or re-price anything selling below cost.\n- Set a monthly half-hour review of margins by offering.",
	model.FlagFounderDependency: "### Founder Dependency\n\nThe business stops when you stop. That caps growth and makes the business unsellable and fragile.\n\nNext 30 days:\n- Write down the three tasks only you can do, and the reason why.\n- Document one recurring process per week, simply enough for someone else to follow.\n- Delegate one full responsibility, with authority, to a team member.\n- Take one full day away and note what breaks.",
	model.FlagUnregisteredBusiness: "### Unregistered Business\n\nOperating without registration blocks bank credit, formal contracts, and most growth funding.\n\nNext 30 days:\n- Start the business registration process this week.\n- Open a dedicated business bank account the moment registration allows.\n- Separate business and personal money completely from day one.\n- Ask a registered peer what the process actually cost them in time and fees.",
	model.FlagCustomerChurn: "### Customer Churn\n\nFewer than one in ten customers comes back. Acquisition is paying for a leaking bucket.\n\nNext 30 days:\n- Call ten past customers and ask why they did not return; write down the answers.\n- Fix the single most-cited reason before spending anything on new-customer marketing.\n- Collect contact details from every new customer and follow up within a week.\n- Introduce one simple repeat incentive and measure whether it moves the rate.",
}

// opportunityBlocks holds one fixed block per opportunity flag.
var opportunityBlocks = map[model.Flag]string{
	model.FlagPricingPower: "### Pricing Power\n\nYour customers have shown they will stay through a price change. Most businesses never test this. A measured increase on your strongest offerings is the fastest margin improvement available to you, and it costs nothing to implement.",
	model.FlagStrongFinancials: "### Strong Financials\n\nYour financial health is in the top band. This is the position from which growth investments actually pay off: expansion, equipment, or hiring funded from strength rather than hope. Consider which constraint money can now remove.",
	model.FlagHighRetention: "### High Retention\n\nMore than 70% of your customers come back. That loyalty is an asset most competitors cannot buy. It supports premium pricing, makes referral programs unusually effective, and means every new customer you win is worth more than their first purchase.",
	model.FlagDigitalReady: "### Digital Ready\n\nWith over 80% of payments digital, you have transaction records most businesses lack. That history supports credit applications, reveals your real sales patterns, and removes the cash-handling losses that quietly tax analog businesses.",
	model.FlagGrowthMomentum: "### Growth Momentum\n\nGrowing 20%+ year on year is momentum worth protecting. The risk at this pace is outgrowing your systems; the opportunity is compounding. Reinvest deliberately in the capacity bottleneck you will hit next, before you hit it.",
}

// categoryRecommendations holds one improvement block per scored dimension,
// rendered for the weakest one or two categories.
var categoryRecommendations = map[string]string{
	"Financial Health": "### Strengthen Financial Health\n\nYour weakest area is the money itself: cash flow, margins, runway, or collection speed.\n\nFocus:\n- Track cash in and out weekly; a simple notebook beats an abandoned app.\n- Push payment terms toward upfront or within seven days.\n- Build toward three months of operating reserves.\n- Review your margin band quarterly and raise prices before costs force you to.",
	"Customer Strength": "### Strengthen Customer Strength\n\nYour weakest area is the customer base: retention, acquisition, or pricing power.\n\nFocus:\n- Measure your repeat rate; what gets measured improves.\n- Ask every new customer how they found you, and double down on the channel that brings the ones who stay.\n- Test a modest price increase on new customers before assuming you cannot charge more.\n- Build a referral habit: ask happy customers to send one friend.",
	"Operational Maturity": "### Strengthen Operational Maturity\n\nYour weakest area is how the business runs: founder dependency, documentation, or tracking.\n\nFocus:\n- Document your most frequent process first, not your most complex.\n- Move inventory or job tracking from memory to a shared sheet.\n- Train one person to cover each critical task, including yours.\n- Schedule one founder-free day per month and treat what breaks as the to-do list.",
	"Financial Intelligence": "### Strengthen Financial Intelligence\n\nYour weakest area is financial visibility: expense awareness, per-offering margins, or pricing method.\n\nFocus:\n- Record every expense for one full month to establish the baseline.\n- Work out profit per offering for your top sellers; the answer usually surprises.\n- Move from matching competitors to pricing on the value you deliver.\n- Put a monthly numbers review in the calendar and keep it.",
	"Growth & Resilience": "### Strengthen Growth & Resilience\n\nYour weakest area is growth infrastructure: trajectory, revenue concentration, digital adoption, formalization, or banking.\n\nFocus:\n- Reduce dependence on your single largest revenue source; one more stream halves the risk.\n- Accept digital payments everywhere a customer might want to pay.\n- Complete registration and tax compliance; credit access depends on it.\n- Open or upgrade to a business bank account and run all revenue through it.",
}

// painPointPlaybooks maps the declared primary pain point to a block that
// ties the complaint back to the measured scores.
var painPointPlaybooks = map[string]func(r *model.ScoreReport) string{
	"Cash flow and money management": func(r *model.ScoreReport) string {
		return fmt.Sprintf("### Your Stated Challenge: Cash Flow\n\nYou named cash flow as your biggest challenge, and your Financial Health score (%s, %.1f%%) confirms there is work to do here. The fix is visibility first, then discipline: you cannot manage what you do not see. Start with the weekly cash tracking above and give it four weeks before judging the results.", r.FinancialHealth.Grade, r.FinancialHealth.Percentage)
	},
	"Finding new customers": func(r *model.ScoreReport) string {
		return fmt.Sprintf("### Your Stated Challenge: Finding New Customers\n\nYou named customer acquisition as your biggest challenge. Your Customer Strength score (%s, %.1f%%) shows how the current base is performing. Before spending more on reaching strangers, squeeze the channels that already work: referrals from existing customers convert better and cost nothing. New-customer spend only makes sense once the repeat rate justifies it.", r.CustomerStrength.Grade, r.CustomerStrength.Percentage)
	},
	"Customers don't come back": func(r *model.ScoreReport) string {
		return fmt.Sprintf("### Your Stated Challenge: Retention\n\nYou named customer retention as your biggest challenge, consistent with your Customer Strength score (%s, %.1f%%). Retention problems are almost always experience problems, not marketing problems. Ten honest conversations with customers who left will tell you more than any campaign.", r.CustomerStrength.Grade, r.CustomerStrength.Percentage)
	},
	"Everything depends on me": func(r *model.ScoreReport) string {
		return fmt.Sprintf("### Your Stated Challenge: Founder Dependency\n\nYou named founder dependency as your biggest challenge, and your Operational Maturity score (%s, %.1f%%) reflects it. The way out is documentation plus delegation, in that order: nobody can take over a process that lives only in your head. One documented process per week compounds fast.", r.OperationalMaturity.Grade, r.OperationalMaturity.Percentage)
	},
	"Can't compete on price": func(r *model.ScoreReport) string {
		return fmt.Sprintf("### Your Stated Challenge: Price Competition\n\nYou named price competition as your biggest challenge. Your Financial Intelligence score (%s, %.1f%%) matters here: businesses that know their per-offering margins stop competing on price and start competing on value. If you are matching competitors without knowing your costs, you may be underpricing work you should walk away from.", r.FinancialIntelligence.Grade, r.FinancialIntelligence.Percentage)
	},
	"Don't understand my numbers": func(r *model.ScoreReport) string {
		return fmt.Sprintf("### Your Stated Challenge: Financial Visibility\n\nYou named understanding your numbers as your biggest challenge, matching your Financial Intelligence score (%s, %.1f%%). This is the most fixable problem on the list: one month of complete expense tracking plus a per-offering margin calculation changes every decision that follows.", r.FinancialIntelligence.Grade, r.FinancialIntelligence.Percentage)
	},
	"Staff hiring and retention": func(r *model.ScoreReport) string {
		return fmt.Sprintf("### Your Stated Challenge: Staffing\n\nYou named staff hiring and retention as your biggest challenge. Your Operational Maturity score (%s, %.1f%%) is the lever: documented processes make new hires productive in days instead of months, and clear responsibilities are what keep good people. Fix the systems and the staffing problem shrinks.", r.OperationalMaturity.Grade, r.OperationalMaturity.Percentage)
	},
	"Supply costs keep rising": func(r *model.ScoreReport) string {
		return fmt.Sprintf("### Your Stated Challenge: Rising Supply Costs\n\nYou named rising supply costs as your biggest challenge. Two scores matter: Financial Health (%s, %.1f%%) and Financial Intelligence (%s, %.1f%%). When input costs rise, the businesses that survive are the ones that know their margins well enough to re-price quickly and negotiate from numbers, not feelings.", r.FinancialHealth.Grade, r.FinancialHealth.Percentage, r.FinancialIntelligence.Grade, r.FinancialIntelligence.Percentage)
	},
	"Growth has stalled": func(r *model.ScoreReport) string {
		return fmt.Sprintf("### Your Stated Challenge: Stalled Growth\n\nYou named stalled growth as your biggest challenge. Your Growth & Resilience score (%s, %.1f%%) points at the structural side: revenue concentration, digital reach, and formalization set the ceiling on how far the current model can grow. Stalls usually mean the business has maxed out its current channels, not its market.", r.GrowthResilience.Grade, r.GrowthResilience.Percentage)
	},
}

// industryTips holds short sector-specific guidance for the industries where
// the advice differs materially from the general playbook. Industries without
// an entry simply get no block.
var industryTips = map[string]string{
	"Retail & Trading": "### Retail & Trading Notes\n\n- Stock turn beats stock size: slow-moving inventory is cash in a cage.\n- Track your top 20% of products; they likely carry 80% of profit.\n- Digital payments widen your customer base beyond walk-in distance.",
	"Food & Beverage": "### Food & Beverage Notes\n\n- Food cost percentage is the number to know per dish; waste hides inside it.\n- Consistency drives repeat custom more than novelty does.\n- Supplier relationships are margin: negotiate volume terms once purchases are predictable.",
	"Agriculture & Agro-processing": "### Agriculture & Agro-processing Notes\n\n- Seasonality makes the cash runway question existential; bank the good season.\n- Post-harvest losses are usually the cheapest margin to recover.\n- Forward agreements with buyers smooth revenue better than spot selling.",
	"Fashion & Tailoring": "### Fashion & Tailoring Notes\n\n- Deposits before work starts; finished custom pieces have one buyer.\n- Standardize your best sellers to escape the one-off treadmill.\n- Photograph everything; your portfolio is your acquisition channel.",
	"Professional Services": "### Professional Services Notes\n\n- Sell outcomes, not hours; hourly pricing caps your income at your calendar.\n- Retainers convert feast-and-famine into predictable revenue.\n- Document your delivery method; it is the asset that lets you delegate.",
	"Technology": "### Technology Notes\n\n- Recurring revenue changes every metric; push toward subscriptions where the product allows.\n- Churn compounds faster than growth; measure it monthly.\n- One concentrated client is a job with extra steps; diversify deliberately.",
}

// Next-step blocks by total-score tier. Ranges are mutually exclusive and
// cover 0-100: >=70, 50-69, <50.
const (
	nextStepsStrong = "## Next Steps\n\nYour score puts you in the top band of businesses we assess. The immediate actions:\n\n1. Pick the single weakest dimension above and commit to one measurable improvement this quarter.\n2. Revisit this assessment in 90 days to confirm the trend.\n3. Start the conversations growth requires early: bankers, suppliers, and key hires all move slower than you will want.\n\nHow we can help: BeamX works with scale-stage businesses on growth strategy, funding readiness, and management systems. Reply to this report to book a strategy session."

	nextStepsModerate = "## Next Steps\n\nYour score shows a working business with clear gaps. The immediate actions:\n\n1. Work the strategic recommendations above in order; they are sequenced by impact.\n2. Do not add new initiatives until the top recommendation shows measurable progress.\n3. Re-assess in 60 days; at this stage scores move quickly when the right things get attention.\n\nHow we can help: BeamX runs structured improvement programs for growing businesses: financial systems, customer economics, and operational playbooks. Reply to this report to talk through yours."

	nextStepsUrgent = "## Next Steps\n\nYour score signals that stabilization comes before everything else. The immediate actions:\n\n1. Address the critical priorities above in order; do not skip ahead.\n2. Park all expansion plans for 60 days; growth on a cracked foundation widens the cracks.\n3. Re-assess in 30 days to confirm the critical items are moving.\n\nHow we can help: BeamX offers hands-on turnaround support for businesses under pressure: cash control, creditor negotiation, and week-by-week stabilization plans. Reply to this report for an urgent review."
)
