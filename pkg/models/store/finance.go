package store

// Transaction mirrors a row of the transactions table.
type Transaction struct {
	ID          int64
	Date        string
	Description string
	Amount      float64
	Type        string
	Category    string
}

// Goal mirrors a row of the goals table.
type Goal struct {
	ID      int64
	Name    string
	Target  float64
	Current float64
}

// Budget mirrors a row of the budgets table.
type Budget struct {
	ID       int64
	Category string
	Amount   float64
	Month    string
}
