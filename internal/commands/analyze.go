package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/insightdelivered/finance-insights/internal/categorize"
	"github.com/insightdelivered/finance-insights/internal/config"
	"github.com/insightdelivered/finance-insights/internal/insights"
	"github.com/insightdelivered/finance-insights/internal/loader"
	"github.com/insightdelivered/finance-insights/internal/logger"
	"github.com/insightdelivered/finance-insights/internal/models"
	"github.com/insightdelivered/finance-insights/internal/writer"
)

func newAnalyzeCommand() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "analyze <statement.pdf|statement.csv>",
		Short: "Run the full pipeline over one statement and print insights",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			return runAnalyze(args[0], outputPath, cfg)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "output_categorized.csv",
		"path for the categorized transaction CSV")
	return cmd
}

func runAnalyze(inputPath, outputPath string, cfg config.Config) error {
	log := logger.Default()

	stmt, err := loader.Load(inputPath)
	if err != nil {
		return err
	}
	if len(stmt.Ledger) == 0 {
		return fmt.Errorf("no transactions found in %s: the file may be missing Description/Amount columns or use an unrecognized layout", inputPath)
	}

	log.Info("statement loaded", "file", inputPath,
		"rows", len(stmt.Ledger), "rule", stmt.Rule, "dropped", stmt.DroppedRows)

	model, err := categorize.LoadClassifier(cfg.ModelPath)
	if err != nil {
		log.Info("classifier unavailable, using rule-based categorization", "path", cfg.ModelPath)
		model = nil
	}
	cat := categorize.New(cfg.Rules(), model)
	ledger := cat.Categorize(stmt.Ledger)

	out := os.Stdout
	fmt.Fprintf(out, "Loaded %d transaction(s) from %s (%s mode)\n\n",
		len(ledger), inputPath, cat.Mode())

	printMonthly(out, insights.Monthly(ledger))
	printLedgerSection(out, "Top Expenses", insights.TopExpenses(ledger, cfg.Thresholds.TopExpenses))
	printRecurring(out, insights.Recurring(ledger, cfg.Thresholds.MinOccurrences))
	printAnomalies(out, insights.Anomalies(ledger, cfg.Thresholds.AnomalyZScore))

	if err := writer.WriteLedgerFile(outputPath, ledger); err != nil {
		return err
	}
	fmt.Fprintf(out, "Saved categorized transactions to %s\n", outputPath)
	return nil
}

func printMonthly(out *os.File, summary insights.MonthlySummary) {
	fmt.Fprintln(out, "Monthly Summary:")
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprint(w, "Month")
	for _, cat := range summary.Categories {
		fmt.Fprintf(w, "\t%s", cat)
	}
	fmt.Fprintln(w)
	for _, month := range summary.Months {
		fmt.Fprint(w, month)
		for _, cat := range summary.Categories {
			fmt.Fprintf(w, "\t%s", summary.Total(month, cat).StringFixed(2))
		}
		fmt.Fprintln(w)
	}
	w.Flush()
	fmt.Fprintln(out)
}

func printLedgerSection(out *os.File, title string, ledger models.Ledger) {
	fmt.Fprintf(out, "%s:\n", title)
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, txn := range ledger {
		fmt.Fprintf(w, "%s\t%s\t%s\n",
			txn.Date.Format("2006-01-02"), txn.Description, txn.Amount.StringFixed(2))
	}
	w.Flush()
	fmt.Fprintln(out)
}

func printRecurring(out *os.File, groups []insights.RecurringGroup) {
	fmt.Fprintln(out, "Recurring Transactions:")
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, g := range groups {
		for _, txn := range g.Transactions {
			fmt.Fprintf(w, "%s\t%s\t%s\n",
				txn.Date.Format("2006-01-02"), txn.Description, txn.Amount.StringFixed(2))
		}
	}
	w.Flush()
	fmt.Fprintln(out)
}

func printAnomalies(out *os.File, anomalies []insights.Anomaly) {
	fmt.Fprintln(out, "Anomalies Detected:")
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, a := range anomalies {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\n",
			a.Date.Format("2006-01-02"), a.Description, a.Amount.StringFixed(2), a.ZScore)
	}
	w.Flush()
	fmt.Fprintln(out)
}
