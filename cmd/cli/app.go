package main

import (
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/iho/expenseledger/internal/adapter/repository/file"
	"github.com/iho/expenseledger/internal/infrastructure/config"
	"github.com/iho/expenseledger/internal/infrastructure/logger"
	"github.com/iho/expenseledger/internal/infrastructure/metrics"
	"github.com/iho/expenseledger/internal/usecase"
)

// skipLoad marks commands that do not need the ledger.
const skipLoad = "skip-load"

// app wires the use cases for one command invocation.
type app struct {
	dataFile string

	cfg     *config.Config
	log     zerolog.Logger
	metrics *metrics.Metrics

	ledger   *usecase.LedgerUseCase
	importer *usecase.ImportUseCase
	summary  *usecase.SummaryUseCase
}

// setup loads configuration, builds the use cases and loads the store.
func (a *app) setup(cmd *cobra.Command) error {
	// .env is optional
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("data-file") {
		cfg.DataFile = a.dataFile
	}
	a.cfg = cfg

	a.log = logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: cmd.ErrOrStderr(),
	})
	a.metrics = metrics.New()

	store := file.NewStore(cfg.DataFile)
	a.ledger = usecase.NewLedgerUseCase(usecase.LedgerConfig{
		Store:          store,
		Metrics:        a.metrics,
		Logger:         &a.log,
		RejectNegative: cfg.RejectNegative,
	})
	a.importer = usecase.NewImportUseCase(a.ledger, file.NewImportReader(), file.NewULIDGenerator())
	a.summary = usecase.NewSummaryUseCase(a.ledger)

	if cmd.Annotations[skipLoad] == "true" {
		return nil
	}

	if _, err := a.ledger.Load(cmd.Context()); err != nil {
		a.log.Error().Err(err).Str("path", store.Path()).Msg("failed to load transactions")
		return err
	}

	return nil
}

// teardown flushes metrics when a textfile path is configured.
func (a *app) teardown() error {
	if a.cfg == nil || a.cfg.MetricsTextfile == "" {
		return nil
	}

	if err := a.metrics.WriteTextfile(a.cfg.MetricsTextfile); err != nil {
		a.log.Warn().Err(err).Str("path", a.cfg.MetricsTextfile).Msg("failed to write metrics")
		return err
	}

	return nil
}
