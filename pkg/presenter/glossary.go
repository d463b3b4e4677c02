package presenter

// GlossaryEntry documents one metric for the glossary view.
type GlossaryEntry struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Formula     string `json:"formula"`
	Example     string `json:"example"`
}

// Glossary returns the metric documentation in card order.
func Glossary() []GlossaryEntry {
	return []GlossaryEntry{
		{
			Title:       "Annual Base Salary",
			Description: "Primary annual compensation before benefits and bonuses, calculated based on location, grade, and experience.",
			Formula:     "Base Salary = (Grade Base Salary × Experience Multiplier) × Currency Rate",
			Example:     "Experience Multiplier = 1 + (Years of Experience × 0.1)",
		},
		{
			Title:       "Monthly Draw",
			Description: "Monthly salary amount, calculated by dividing the annual base salary by 12 months.",
			Formula:     "Monthly Draw = Annual Base Salary ÷ 12",
			Example:     "Example: £124,800 ÷ 12 = £10,400",
		},
		{
			Title:       "USD Equivalent",
			Description: "Annual salary converted to US Dollars for global comparison, using standard conversion rates.",
			Formula:     "USD Equivalent = Local Salary (INR) ÷ 83",
			Example:     "Example: ₹13,12,000 ÷ 83 = $15,807",
		},
		{
			Title:       "Total CTC",
			Description: "Cost to Company including benefits, taxes, and additional compensation components.",
			Formula:     "Total CTC = Annual Base Salary × 1.3",
			Example:     "Includes 30% overhead for benefits and taxes",
		},
		{
			Title:       "Total Annual Hours",
			Description: "Total working hours in a year, calculated based on location-specific working days.",
			Formula:     "Total Hours = Annual Workdays × 8 hours",
			Example:     "Example: 227 days × 8 = 1,816 hours",
		},
		{
			Title:       "Annual Billable Hours",
			Description: "Hours that can be directly billed to clients, based on daily billable capacity.",
			Formula:     "Billable Hours = Annual Workdays × Daily Billable Hours",
			Example:     "Example: 227 × 4 = 908 hours",
		},
		{
			Title:       "Internal Hourly Cost",
			Description: "Cost per hour for the company, including all employee expenses divided by total working hours.",
			Formula:     "Hourly Cost = Annual Base Salary ÷ Total Annual Hours",
			Example:     "Example: £124,800 ÷ 1,816 = £68.73/hour",
		},
		{
			Title:       "Minimum Hourly Rate",
			Description: "Break-even hourly billing rate required to achieve the target profit margin.",
			Formula:     "Min Rate = Cost per Billable Hour ÷ (1 - Target Margin ÷ 100)",
			Example:     "Cost per Billable Hour = (Annual Salary USD) ÷ Annual Billable Hours",
		},
		{
			Title:       "Client Billing Rate",
			Description: "Recommended premium billing rate for clients, with additional markup for competitive positioning.",
			Formula:     "Client Rate = Minimum Hourly Rate × 1.75",
			Example:     "Includes 75% markup over minimum rate",
		},
		{
			Title:       "Actual Profit Margin",
			Description: "Real profit percentage achieved at the recommended client billing rate.",
			Formula:     "Profit Margin = ((Client Rate - Cost per Hour) ÷ Client Rate) × 100",
			Example:     "Shows actual profitability at recommended rates",
		},
		{
			Title:       "Monthly Revenue Projection",
			Description: "Expected monthly revenue generated from this resource at full billable capacity.",
			Formula:     "Monthly Revenue = Client Rate × Daily Billable Hours × (Workdays ÷ 12)",
			Example:     "Projected earnings at full capacity",
		},
	}
}

// Assumptions returns the calculation assumptions shown alongside the
// glossary.
func Assumptions() []string {
	return []string{
		"Experience multiplier adds 10% to base salary for each year",
		"Total CTC includes 30% overhead for benefits and taxes",
		"USD conversion uses standard rate of 83 INR = 1 USD",
		"Working days vary by location based on local practices",
		"Standard working day is 8 hours for capacity calculations",
		"Client billing rate includes 75% markup over minimum rate",
		"All calculations rounded for practical use",
	}
}
