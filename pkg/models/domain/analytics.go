package domain

type HealthStatus string

// Health statuses keep the wire values the product has always served.
const (
	StatusHealthy  HealthStatus = "sehat"
	StatusCaution  HealthStatus = "hati-hati"
	StatusCritical HealthStatus = "kritis"
)

type SuggestionLevel string

const (
	LevelLow    SuggestionLevel = "low"
	LevelMedium SuggestionLevel = "medium"
	LevelHigh   SuggestionLevel = "high"
)

// Summary holds aggregate totals for the full visible transaction set.
// CategoryOrder records categories in first-seen order so downstream
// ranking stays deterministic where totals tie.
type Summary struct {
	MonthlyIncome   float64
	MonthlyExpenses float64
	ByCategory      map[string]float64
	CategoryOrder   []string
	EmergencyFund   float64
}

// HealthAssessment is a 0-100 heuristic derived from the savings rate.
type HealthAssessment struct {
	Score   int
	Status  HealthStatus
	Savings float64
}

// Suggestion is a structured recommendation with an estimated monetary
// impact in whole rupiah.
type Suggestion struct {
	ID              string
	Message         string
	Reason          string
	SuggestedAction string
	ImpactIDR       int64
	Level           SuggestionLevel
}

// TrendSeries is a month-bucketed income/expense time series. Income and
// Expenses are aligned index-for-index with Months.
type TrendSeries struct {
	Months   []string // YYYY-MM, ascending
	Income   []float64
	Expenses []float64
}

// CategoryMatrix maps each expense category onto a per-month series
// aligned with Months.
type CategoryMatrix struct {
	Months     []string
	Categories map[string][]float64
}

// BudgetActual pairs planned and actual spend series for one category.
type BudgetActual struct {
	Budget []float64
	Actual []float64
}

// BudgetComparison lines up budgets against actual spending per category
// per month.
type BudgetComparison struct {
	Months     []string
	Categories []string
	Data       map[string]BudgetActual
}

// AnalysisContext carries light request-scoped context into the
// suggestion engine.
type AnalysisContext struct {
	TransactionCount int
}
