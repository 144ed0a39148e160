// Package terminal renders finance reports for the CLI.
package terminal

import (
	"fmt"
	"io"
	"os"
	"sort"
	"text/template"

	"github.com/fin-tools/finsight/pkg/models/domain"
)

// Report bundles everything the CLI prints for one snapshot.
type Report struct {
	Summary         domain.Summary
	Health          domain.HealthAssessment
	Recommendations []string
	Suggestions     []domain.Suggestion
}

// Reporter outputs reports to the console in a formatted text form.
type Reporter struct {
	writer io.Writer
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

func (c *Reporter) Handle(report *Report) error {
	tmpl := `
Financial Overview
Income:   {{printf "%.2f" .Summary.MonthlyIncome}}
Expenses: {{printf "%.2f" .Summary.MonthlyExpenses}}
Emergency fund target: {{printf "%.2f" .Summary.EmergencyFund}}

Health: {{.Health.Status}} (score {{.Health.Score}}, savings {{printf "%.2f" .Health.Savings}})

=== Spending by category ===
{{range .Categories}}
- {{.Name}}: {{printf "%.2f" .Amount}}
{{end}}
=== Recommendations ===
{{range .Recommendations}}
- {{.}}
{{end}}
=== Suggestions ===
{{range .Suggestions}}
- [{{.Level}}] {{.Message}} (~{{.ImpactIDR}})
  {{.SuggestedAction}}
{{end}}
`
	t, err := template.New("report").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	type categoryLine struct {
		Name   string
		Amount float64
	}
	categories := make([]categoryLine, 0, len(report.Summary.ByCategory))
	for name, amount := range report.Summary.ByCategory {
		categories = append(categories, categoryLine{Name: name, Amount: amount})
	}
	sort.Slice(categories, func(i, j int) bool {
		if categories[i].Amount != categories[j].Amount {
			return categories[i].Amount > categories[j].Amount
		}
		return categories[i].Name < categories[j].Name
	})

	data := struct {
		*Report
		Categories []categoryLine
	}{Report: report, Categories: categories}

	return t.Execute(c.writer, data)
}
