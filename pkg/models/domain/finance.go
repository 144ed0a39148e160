package domain

const (
	TypeIncome  = "income"
	TypeExpense = "expense"

	// CategoryOther is the bucket for transactions recorded without a category.
	CategoryOther = "other"
)

// Transaction is a single dated money movement. Amounts are absolute;
// the Type field decides whether it counts as income or expense.
type Transaction struct {
	ID          int64
	Date        string // YYYY-MM-DD
	Description string
	Amount      float64
	Type        string
	Category    string
}

// Goal is a named savings target with current progress. Current may
// exceed Target for over-achieved goals.
type Goal struct {
	ID      int64
	Name    string
	Target  float64
	Current float64
}

// Budget caps planned spending for one category in one month.
type Budget struct {
	ID       int64
	Category string
	Amount   float64
	Month    string // YYYY-MM
}
