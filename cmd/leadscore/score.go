package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/xavierca1/lead-scoring/internal/config"
	"github.com/xavierca1/lead-scoring/internal/entity"
	"github.com/xavierca1/lead-scoring/internal/infra/csvio"
	"github.com/xavierca1/lead-scoring/internal/infra/integration/openai"
	"github.com/xavierca1/lead-scoring/internal/infra/memory"
	"github.com/xavierca1/lead-scoring/internal/usecase"
)

var (
	offerFlag = &cli.StringFlag{
		Name:     "offer",
		Usage:    "Path to the offer file (.json, .yaml or .yml)",
		Required: true,
	}

	leadsFlag = &cli.StringFlag{
		Name:     "leads",
		Usage:    "Path to the leads CSV file",
		Required: true,
	}

	outFlag = &cli.StringFlag{
		Name:  "out",
		Usage: "Where to write the results CSV (default: stdout)",
	}

	workersFlag = &cli.IntFlag{
		Name:  "workers",
		Usage: "Number of leads scored in parallel",
		Value: 4,
	}

	heuristicFlag = &cli.BoolFlag{
		Name:  "heuristic-only",
		Usage: "Skip the remote model even if OPENAI_API_KEY is set",
	}

	scoreCmd = &cli.Command{
		Name:   "score",
		Usage:  "Score a leads CSV and write the results CSV",
		Action: cmdScore,
		Flags: []cli.Flag{
			offerFlag,
			leadsFlag,
			outFlag,
			workersFlag,
			heuristicFlag,
		},
	}
)

func cmdScore(ctx context.Context, c *cli.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	offerInput, err := readOffer(c.String(offerFlag.Name))
	if err != nil {
		return err
	}

	var model usecase.IntentModel
	if cfg.ModelEnabled() && !c.Bool(heuristicFlag.Name) {
		model = openai.NewClient(openai.Config{
			APIKey:            cfg.OpenAI.APIKey,
			BaseURL:           cfg.OpenAI.BaseURL,
			Model:             cfg.OpenAI.Model,
			Timeout:           cfg.OpenAI.Timeout,
			RequestsPerSecond: cfg.OpenAI.RequestsPerSecond,
			Burst:             cfg.OpenAI.Burst,
		})
	}

	session := memory.NewSession()
	classifier := usecase.NewIntentClassifier(model, cfg.OpenAI.Timeout)
	engine := usecase.NewScoringEngine(classifier, int(c.Int(workersFlag.Name)))

	if _, err := usecase.NewSetOfferUseCase(session).Execute(ctx, offerInput); err != nil {
		return fmt.Errorf("offer: %w", err)
	}

	leadsPath := c.String(leadsFlag.Name)
	leadsFile, err := os.Open(leadsPath)
	if err != nil {
		return fmt.Errorf("opening leads file: %w", err)
	}
	defer leadsFile.Close()

	_, err = usecase.NewUploadLeadsUseCase(session, csvio.LeadReader{}).Execute(ctx, usecase.UploadLeadsInput{
		Filename: filepath.Base(leadsPath),
		Content:  leadsFile,
	})
	if err != nil {
		return fmt.Errorf("leads: %w", err)
	}

	if _, err := usecase.NewScoreLeadsUseCase(session, engine, nil).Execute(ctx); err != nil {
		return fmt.Errorf("scoring: %w", err)
	}

	out, err := usecase.NewResultsUseCase(session).ForExport(ctx)
	if err != nil {
		return err
	}

	path := c.String(outFlag.Name)
	if path == "" {
		return csvio.WriteResults(os.Stdout, out.Batch.Results)
	}
	return writeResultsFile(path, out.Batch.Results)
}

// writeResultsFile reports a failed close, since that is where a short write
// to disk surfaces.
func writeResultsFile(path string, results []entity.ScoreResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	if err := csvio.WriteResults(f, results); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}

func readOffer(path string) (usecase.SetOfferInput, error) {
	var input usecase.SetOfferInput

	raw, err := os.ReadFile(path)
	if err != nil {
		return input, fmt.Errorf("reading offer file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(raw, &input)
	default:
		err = json.Unmarshal(raw, &input)
	}
	if err != nil {
		return input, fmt.Errorf("parsing offer file %s: %w", path, err)
	}
	return input, nil
}
