package main

import (
	"flag"
	"os"

	"zomato-insights/config"
	"zomato-insights/models"
	"zomato-insights/server"
	"zomato-insights/services"
	"zomato-insights/source"
	"zomato-insights/storage"
	"zomato-insights/utils"
)

func main() {
	serve := flag.Bool("serve", false, "start the JSON API after loading the dataset")
	flag.Parse()

	cfg := config.Load()
	logger := utils.NewLoggerAt(utils.ParseLevel(cfg.LogLevel))

	logger.Info("=== Zomato Bengaluru Insights starting ===")
	logger.Info("Config — dataset: %s (%s) | report top-N: %d",
		cfg.DatasetPath, cfg.DatasetFormat, cfg.ReportTopN)

	src, ok := pickSource(cfg)
	if !ok {
		logger.Error("Unknown DATASET_FORMAT %q (want csv, xlsx or sqlite)", cfg.DatasetFormat)
		os.Exit(1)
	}

	loader := services.NewLoader(src, logger)
	table, err := loader.Load()
	if err != nil {
		logger.Error("Dataset load failed: %v", err)
		logger.Error("Place the Zomato dataset at %s (or set DATASET_PATH) and rerun.", cfg.DatasetPath)
		os.Exit(1)
	}

	if cfg.CSVExportPath != "" {
		exportCSV(cfg.CSVExportPath, table, logger)
	}

	if cfg.PersistDataset {
		// Report over what PostgreSQL handed back, so the round trip is
		// exercised end to end; fall back to the in-memory table on failure.
		if stored := persistPostgres(cfg, table, logger); stored != nil {
			table = stored
		}
	}

	insightSvc := services.NewInsightService(logger)
	report := insightSvc.Generate(table, cfg.ReportTopN)
	insightSvc.Print(report)

	if *serve {
		if err := server.New(table, logger).Run(cfg.ServerAddr); err != nil {
			logger.Error("Server stopped: %v", err)
			os.Exit(1)
		}
	}
}

func pickSource(cfg *config.Config) (source.Source, bool) {
	switch cfg.DatasetFormat {
	case "csv":
		return source.NewCSVSource(cfg.DatasetPath), true
	case "xlsx":
		return source.NewXLSXSource(cfg.DatasetPath), true
	case "sqlite":
		return source.NewSQLiteSource(cfg.DatasetPath, cfg.SQLiteTable), true
	default:
		return nil, false
	}
}

func exportCSV(path string, table []*models.Restaurant, logger *utils.Logger) {
	w, err := storage.NewCSVWriter(path)
	if err != nil {
		logger.Error("CSV export failed: %v", err)
		return
	}
	defer w.Close()

	if err := w.Write(table); err != nil {
		logger.Error("CSV export failed: %v", err)
		return
	}
	logger.Info("Normalized table exported to %s", path)
}

// persistPostgres stores the normalized table and reads it back, returning
// the stored copy for the report. A nil return means persistence failed and
// the caller should keep the in-memory table.
func persistPostgres(cfg *config.Config, table []*models.Restaurant, logger *utils.Logger) []*models.Restaurant {
	pg, err := storage.NewPostgresWriter(cfg.DSN(), logger)
	if err != nil {
		logger.Error("PostgreSQL connect failed: %v", err)
		return nil
	}
	defer pg.Close()

	if err := pg.Write(table); err != nil {
		logger.Error("PostgreSQL write failed: %v", err)
		return nil
	}
	logger.Info("Normalized table stored in PostgreSQL (table: restaurants)")

	stored, err := pg.FetchAll()
	if err != nil {
		logger.Error("PostgreSQL fetch failed, reporting over the in-memory table: %v", err)
		return nil
	}
	return stored
}
