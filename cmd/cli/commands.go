package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/iho/expenseledger/internal/adapter/export"
	"github.com/iho/expenseledger/internal/domain"
	"github.com/iho/expenseledger/internal/usecase"
)

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "expenseledger",
		Short:         "Personal income and expense ledger",
		Long:          `Record income and expenses in a flat text file and review monthly summaries by category.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.dataFile, "data-file", "expense_data.csv", "Path of the ledger file (overrides LEDGER_DATA_FILE)")

	rootCmd.AddCommand(
		addCmd(a),
		listCmd(a),
		summaryCmd(a),
		importCmd(a),
		exportCmd(a),
		categoriesCmd(),
	)

	return rootCmd
}

func addCmd(a *app) *cobra.Command {
	var input usecase.AddTransactionInput

	cmd := &cobra.Command{
		Use:       "add income|expense",
		Short:     "Record an income or expense",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"income", "expense"},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := domain.ParseKindFold(args[0])
			if err != nil {
				return err
			}
			input.Kind = kind

			tx, err := a.ledger.AddTransaction(cmd.Context(), input)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s added successfully!\n", tx.Kind.Label())
			return nil
		},
	}

	cmd.Flags().StringVarP(&input.Category, "category", "c", "", "Category name or its number from 'categories'")
	cmd.Flags().StringVarP(&input.Amount, "amount", "a", "", "Amount, e.g. 125.50")
	cmd.Flags().StringVarP(&input.Date, "date", "d", "", "Date as YYYY-MM-DD (default today)")
	cmd.Flags().StringVarP(&input.Description, "description", "m", "", "Optional description")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func listCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all transactions in entry order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printTransactions(cmd.OutOrStdout(), a.ledger.All())
		},
	}
}

func summaryCmd(a *app) *cobra.Command {
	now := time.Now()
	var (
		year   int
		month  int
		format string
	)

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show income and expense totals for one month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.summary.MonthlySummary(cmd.Context(), year, time.Month(month))
			if err != nil {
				return err
			}

			if strings.EqualFold(format, "text") {
				return printSummary(cmd.OutOrStdout(), s)
			}
			return export.WriteSummary(cmd.OutOrStdout(), format, s)
		},
	}

	cmd.Flags().IntVarP(&year, "year", "y", now.Year(), "Year, e.g. 2025")
	cmd.Flags().IntVarP(&month, "month", "M", int(now.Month()), "Month (1-12)")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text, json or yaml")

	return cmd
}

func importCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import <path>",
		Short: "Import transactions from a delimited file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.importer.ImportFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, skipped := range result.Skipped {
				fmt.Fprintf(out, "Skipping line %d: %v\n", skipped.Line, skipped.Err)
			}
			fmt.Fprintf(out, "Successfully imported %d transactions.\n", result.ImportedCount)
			return nil
		},
	}
}

func exportCmd(a *app) *cobra.Command {
	var (
		format string
		out    string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all transactions as csv, json or yaml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			enc, err := export.NewEncoder(format)
			if err != nil {
				return err
			}

			if out == "" {
				return enc.Encode(cmd.OutOrStdout(), a.ledger.All())
			}

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("%w: %w", domain.ErrWriteFailure, err)
			}
			defer f.Close()

			if err := enc.Encode(f, a.ledger.All()); err != nil {
				return fmt.Errorf("%w: %w", domain.ErrWriteFailure, err)
			}
			return f.Close()
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", export.FormatCSV, "Output format: csv, json or yaml")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write to file instead of stdout")

	return cmd
}

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "categories [income|expense]",
		Short:       "List the categories offered for each type",
		Args:        cobra.MaximumNArgs(1),
		Annotations: map[string]string{skipLoad: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			kinds := []domain.Kind{domain.KindIncome, domain.KindExpense}
			if len(args) == 1 {
				kind, err := domain.ParseKindFold(args[0])
				if err != nil {
					return err
				}
				kinds = []domain.Kind{kind}
			}

			printCategories(cmd.OutOrStdout(), kinds)
			return nil
		},
	}
}
