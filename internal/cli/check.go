package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/avetrov/kyclens/internal/model"
	"github.com/avetrov/kyclens/internal/pipeline"
	"github.com/avetrov/kyclens/internal/server"
)

var (
	checkOutJSON   string
	checkTimeout   time.Duration
	checkProvider  string
	checkModel     string
	checkClassify  bool
	checkSample    bool
	checkShowSteps bool
)

// caseFile is the JSON shape accepted by `kyclens check`.
type caseFile struct {
	UserProfile model.UserProfile `json:"user_profile"`
	MediaHits   []model.MediaHit  `json:"media_hits"`
}

var checkCmd = &cobra.Command{
	Use:   "check [case.json]",
	Short: "Run one compliance case from a JSON file",
	Long: `Check reads a case file containing a user profile and a set of media
hits, runs the full review, prints the compliance memo, and optionally
writes the complete result as JSON for audit storage.

Example:
  kyclens check case.json
  kyclens check case.json --json result.json --oracle openai
  kyclens check --sample`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVar(&checkOutJSON, "json", "", "write full result JSON to this path")
	checkCmd.Flags().DurationVar(&checkTimeout, "timeout", 2*time.Minute, "case processing timeout")
	checkCmd.Flags().StringVar(&checkProvider, "oracle", "", "oracle provider (openai, anthropic); empty runs deterministic fallbacks")
	checkCmd.Flags().StringVar(&checkModel, "oracle-model", "", "oracle model name")
	checkCmd.Flags().BoolVar(&checkClassify, "classify", false, "enable outcome/category classification")
	checkCmd.Flags().BoolVar(&checkSample, "sample", false, "run the built-in sample case")
	checkCmd.Flags().BoolVar(&checkShowSteps, "steps", false, "print per-step progress to stderr")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Concurrency.CaseTimeout = checkTimeout
	}
	if checkProvider != "" {
		cfg.Oracle.Provider = checkProvider
	}
	if checkModel != "" {
		cfg.Oracle.Model = checkModel
	}
	if checkClassify {
		cfg.Classify.Enabled = true
	}

	var profile model.UserProfile
	var hits []model.MediaHit
	switch {
	case checkSample:
		profile, hits = server.SampleCase()
	case len(args) == 1:
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read case file: %w", err)
		}
		var cf caseFile
		if err := json.Unmarshal(raw, &cf); err != nil {
			return fmt.Errorf("parse case file: %w", err)
		}
		profile, hits = cf.UserProfile, cf.MediaHits
	default:
		return fmt.Errorf("provide a case file or --sample")
	}

	logger := newLogger()
	p, err := buildPipeline(cfg, logger)
	if err != nil {
		return err
	}

	var progress pipeline.Progress
	if checkShowSteps || verbose {
		progress = func(step int, message string) {
			fmt.Fprintf(os.Stderr, "Step %d: %s\n", step, message)
		}
	}

	result, err := p.Check(context.Background(), profile, hits, progress)
	if err != nil {
		return err
	}

	fmt.Println(result.FinalMemo)
	fmt.Println()
	fmt.Println(result.OverallRationale)
	if result.Partial {
		fmt.Println("Note: case deadline reached; result is partial.")
	}

	if checkOutJSON != "" {
		raw, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
		if err := os.WriteFile(checkOutJSON, raw, 0o644); err != nil {
			return fmt.Errorf("write result: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "Wrote result JSON: %s\n", checkOutJSON)
		}
	}
	return nil
}
