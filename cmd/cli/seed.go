package main

import (
	"fmt"

	"github.com/fin-tools/finsight/pkg/models/store"
	"github.com/fin-tools/finsight/pkg/store/sqlite"
	"github.com/fin-tools/finsight/pkg/store/sqlite/budget"
	"github.com/fin-tools/finsight/pkg/store/sqlite/goal"
	"github.com/fin-tools/finsight/pkg/store/sqlite/transaction"
	"github.com/spf13/cobra"
)

var sampleTransactions = []store.Transaction{
	{Date: "2025-09-01", Description: "Gaji September", Amount: 8000000, Type: "income", Category: "salary"},
	{Date: "2025-09-02", Description: "Makan pagi", Amount: 25000, Type: "expense", Category: "food"},
	{Date: "2025-09-02", Description: "Transportasi", Amount: 15000, Type: "expense", Category: "transport"},
	{Date: "2025-09-05", Description: "Belanja bulanan", Amount: 450000, Type: "expense", Category: "shopping"},
	{Date: "2025-09-08", Description: "Tagihan listrik", Amount: 200000, Type: "expense", Category: "utilities"},
	{Date: "2025-09-10", Description: "Bonus proyek", Amount: 1500000, Type: "income", Category: "bonus"},
	{Date: "2025-09-15", Description: "Makan siang", Amount: 45000, Type: "expense", Category: "food"},
	{Date: "2025-09-18", Description: "Kuliah online", Amount: 300000, Type: "expense", Category: "education"},
	{Date: "2025-09-20", Description: "Investasi reksadana", Amount: 500000, Type: "expense", Category: "investment"},
	{Date: "2025-09-22", Description: "Makan malam", Amount: 60000, Type: "expense", Category: "food"},
	{Date: "2025-09-25", Description: "Pengembalian uang", Amount: 100000, Type: "income", Category: "other"},
	{Date: "2025-10-01", Description: "Gaji Oktober", Amount: 8000000, Type: "income", Category: "salary"},
	{Date: "2025-10-03", Description: "Bensin mobil", Amount: 150000, Type: "expense", Category: "transport"},
	{Date: "2025-10-05", Description: "Warung makan", Amount: 35000, Type: "expense", Category: "food"},
	{Date: "2025-10-07", Description: "Internet bulanan", Amount: 300000, Type: "expense", Category: "utilities"},
	{Date: "2025-10-10", Description: "Coffe shop", Amount: 55000, Type: "expense", Category: "food"},
	{Date: "2025-10-15", Description: "Buku pelajaran", Amount: 150000, Type: "expense", Category: "education"},
	{Date: "2025-10-18", Description: "Donasi", Amount: 100000, Type: "expense", Category: "other"},
	{Date: "2025-10-20", Description: "Streaming service", Amount: 75000, Type: "expense", Category: "entertainment"},
	{Date: "2025-10-22", Description: "Laundry", Amount: 30000, Type: "expense", Category: "other"},
	{Date: "2025-10-25", Description: "Makan di restoran", Amount: 120000, Type: "expense", Category: "food"},
	{Date: "2025-10-27", Description: "Pembelian aplikasi", Amount: 45000, Type: "expense", Category: "entertainment"},
}

var sampleGoals = []store.Goal{
	{Name: "Dana Darurat", Target: 20000000, Current: 8000000},
	{Name: "Liburan Akhir Tahun", Target: 10000000, Current: 2500000},
	{Name: "Pembelian Laptop Baru", Target: 15000000, Current: 5000000},
	{Name: "Tabungan Pensiun", Target: 500000000, Current: 50000000},
}

var sampleBudgets = []store.Budget{
	{Category: "food", Amount: 1500000, Month: "2025-10"},
	{Category: "transport", Amount: 600000, Month: "2025-10"},
	{Category: "utilities", Amount: 500000, Month: "2025-10"},
	{Category: "entertainment", Amount: 400000, Month: "2025-10"},
	{Category: "shopping", Amount: 1000000, Month: "2025-10"},
	{Category: "education", Amount: 500000, Month: "2025-10"},
	{Category: "investment", Amount: 1000000, Month: "2025-10"},
	{Category: "other", Amount: 500000, Month: "2025-10"},
}

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load sample transactions, goals and budgets into the database",
		RunE:  runSeed,
	}
}

func runSeed(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	db, err := sqlite.NewDB(sqlite.Settings{Path: dbPath})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	for _, table := range []string{"transactions", "goals", "budgets"} {
		if _, err := db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	transactionStore, err := transaction.NewStore(db)
	if err != nil {
		return err
	}
	goalStore, err := goal.NewStore(db)
	if err != nil {
		return err
	}
	budgetStore, err := budget.NewStore(db)
	if err != nil {
		return err
	}

	for _, t := range sampleTransactions {
		if _, err := transactionStore.Add(ctx, t); err != nil {
			return fmt.Errorf("seed transaction: %w", err)
		}
	}
	for _, g := range sampleGoals {
		if _, err := goalStore.Add(ctx, g); err != nil {
			return fmt.Errorf("seed goal: %w", err)
		}
	}
	for _, b := range sampleBudgets {
		if _, err := budgetStore.Add(ctx, b); err != nil {
			return fmt.Errorf("seed budget: %w", err)
		}
	}

	fmt.Println("Sample data has been inserted into the database.")
	return nil
}
