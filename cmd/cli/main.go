package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var dbPath string

func main() {
	rootCmd := &cobra.Command{
		Use:   "finsight",
		Short: "FinSight command line tools",
	}

	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "finsight.db", "Path to the sqlite database")
	rootCmd.AddCommand(newSeedCmd())
	rootCmd.AddCommand(newReportCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
