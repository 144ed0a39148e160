package main

import (
	"fmt"
	"os"

	"github.com/fin-tools/finsight/pkg/adapters"
	"github.com/fin-tools/finsight/pkg/models/domain"
	"github.com/fin-tools/finsight/pkg/runtime/terminal"
	"github.com/fin-tools/finsight/pkg/services/analytics"
	"github.com/fin-tools/finsight/pkg/store/sqlite"
	"github.com/fin-tools/finsight/pkg/store/sqlite/goal"
	"github.com/fin-tools/finsight/pkg/store/sqlite/transaction"
	"github.com/spf13/cobra"
)

func newReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Print a financial overview for the current data",
		RunE:  runReport,
	}
}

func runReport(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	db, err := sqlite.NewDB(sqlite.Settings{Path: dbPath})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	transactionStore, err := transaction.NewStore(db)
	if err != nil {
		return err
	}
	goalStore, err := goal.NewStore(db)
	if err != nil {
		return err
	}

	txRecords, err := transactionStore.List(ctx)
	if err != nil {
		return fmt.Errorf("list transactions: %w", err)
	}
	goalRecords, err := goalStore.List(ctx)
	if err != nil {
		return fmt.Errorf("list goals: %w", err)
	}

	txs := make([]domain.Transaction, 0, len(txRecords))
	for _, record := range txRecords {
		txs = append(txs, adapters.MapTransactionStoreToDomain(record))
	}
	goals := make([]domain.Goal, 0, len(goalRecords))
	for _, record := range goalRecords {
		goals = append(goals, adapters.MapGoalStoreToDomain(record))
	}

	summary := analytics.Summarize(txs)
	engine := analytics.NewEngine()

	reporter := terminal.NewReporter(os.Stdout)
	return reporter.Handle(&terminal.Report{
		Summary:         summary,
		Health:          analytics.Assess(summary),
		Recommendations: analytics.Recommend(summary),
		Suggestions: engine.Suggest(summary, goals, domain.AnalysisContext{
			TransactionCount: len(txs),
		}),
	})
}
