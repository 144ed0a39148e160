package api

type Transaction struct {
	ID          int64   `json:"id"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Type        string  `json:"type"`
	Category    string  `json:"category"`
}

type Goal struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Target  float64 `json:"target"`
	Current float64 `json:"current"`
}

type Budget struct {
	ID       int64   `json:"id"`
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Month    string  `json:"month"`
}

type Summary struct {
	MonthlyIncome   float64            `json:"monthly_income"`
	MonthlyExpenses float64            `json:"monthly_expenses"`
	ByCategory      map[string]float64 `json:"by_category"`
	EmergencyFund   float64            `json:"emergency_fund"`
}

type HealthAssessment struct {
	Score   int     `json:"score"`
	Status  string  `json:"status"`
	Savings float64 `json:"savings"`
}

type Suggestion struct {
	ID              string `json:"id"`
	Message         string `json:"message"`
	Reason          string `json:"reason"`
	SuggestedAction string `json:"suggested_action"`
	ImpactIDR       int64  `json:"impact_idr"`
	Level           string `json:"level"`
}

type TrendSeries struct {
	Months   []string  `json:"months"`
	Income   []float64 `json:"income"`
	Expenses []float64 `json:"expenses"`
}

type CategoryMatrix struct {
	Months     []string             `json:"months"`
	Categories map[string][]float64 `json:"categories"`
}

type BudgetActual struct {
	Budget []float64 `json:"budget"`
	Actual []float64 `json:"actual"`
}

type BudgetComparison struct {
	Months     []string                `json:"months"`
	Categories []string                `json:"categories"`
	Data       map[string]BudgetActual `json:"data"`
}
