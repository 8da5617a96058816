package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/insightdelivered/finance-insights/internal/categorize"
	"github.com/insightdelivered/finance-insights/internal/config"
	"github.com/insightdelivered/finance-insights/internal/loader"
	"github.com/insightdelivered/finance-insights/internal/models"
)

func newTrainCommand() *cobra.Command {
	var modelPath string

	cmd := &cobra.Command{
		Use:   "train <labeled.csv>",
		Short: "Fit the description classifier from a labeled CSV and persist it",
		Long: `Train fits a naive-Bayes text classifier on a CSV with Description,
Amount and Category columns, then persists the model. Subsequent runs
of analyze and serve pick it up and categorize in model mode.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			if modelPath == "" {
				modelPath = cfg.ModelPath
			}
			return runTrain(args[0], modelPath)
		},
	}

	cmd.Flags().StringVar(&modelPath, "model", "", "output path for the model artifact (defaults to config model_path)")
	return cmd
}

func runTrain(inputPath, modelPath string) error {
	f, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("opening %s: %w", inputPath, err)
	}
	defer f.Close()

	stmt, err := loader.LoadCSV(f)
	if err != nil {
		return err
	}

	var descriptions, labels []string
	for _, txn := range stmt.Ledger {
		if txn.Category == "" {
			continue
		}
		descriptions = append(descriptions, txn.Description)
		labels = append(labels, txn.Category)
	}
	if len(descriptions) == 0 {
		return fmt.Errorf("%w: %s has no Category column or no labeled rows",
			models.ErrTrainingPrecondition, inputPath)
	}

	model, err := categorize.Train(descriptions, labels)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(modelPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating model dir: %w", err)
		}
	}
	if err := model.Save(modelPath); err != nil {
		return err
	}

	fmt.Printf("Trained on %d labeled transaction(s), model saved to %s\n",
		len(descriptions), modelPath)
	return nil
}
