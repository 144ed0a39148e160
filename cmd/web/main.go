package main

import (
	"fmt"
	"net"
	"os"

	"github.com/fin-tools/finsight/pkg/server"
	"github.com/fin-tools/finsight/pkg/services/config"
	"github.com/fin-tools/finsight/pkg/store/sqlite"
	"github.com/fin-tools/finsight/pkg/store/sqlite/budget"
	"github.com/fin-tools/finsight/pkg/store/sqlite/goal"
	"github.com/fin-tools/finsight/pkg/store/sqlite/transaction"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the FinSight web server",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "finsight.yaml",
		"Path to the configuration file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := sqlite.NewDB(sqlite.Settings{Path: cfg.Database.Path})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	transactionStore, err := transaction.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create transaction store: %w", err)
	}
	goalStore, err := goal.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create goal store: %w", err)
	}
	budgetStore, err := budget.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create budget store: %w", err)
	}

	addr := net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)
	logger.Info().Str("db", cfg.Database.Path).Msgf("starting server on %s", addr)

	api := server.NewWebAPI(server.Config{
		Addr:            addr,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Dependencies: server.Dependencies{
			Transactions: transactionStore,
			Goals:        goalStore,
			Budgets:      budgetStore,
			Logger:       logger,
		},
	})

	return api.Start()
}
