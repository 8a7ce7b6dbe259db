// Command migrate tags every DataSet whose name contains a Project name
// with that Project, then writes two CSV reports listing the DataSets that
// were matched and those left untagged.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/joho/godotenv"

	"dsadmin/application"
	"dsadmin/infrastructure/config"
	"dsadmin/infrastructure/dhis2"
	"dsadmin/infrastructure/repositories"
	"dsadmin/logging"
)

const (
	withProjectsReport    = "ds_with_projects.csv"
	withoutProjectsReport = "ds_without_projects.csv"
)

func main() {
	url := flag.String("url", "", "base URL of the DHIS2 instance")
	username := flag.String("username", "", "DHIS2 username")
	password := flag.String("password", "", "DHIS2 password")
	flag.Parse()

	if err := godotenv.Load(); err == nil {
		println("Loaded configuration from .env file")
	}

	cfg := config.LoadAppConfigFromEnv()
	if *url != "" {
		cfg.DHIS2.BaseURL = *url
	}
	if *username != "" {
		cfg.DHIS2.Username = *username
	}
	if *password != "" {
		cfg.DHIS2.Password = *password
	}

	logger := logging.NewLogger(cfg.Logging)
	logging.SetDefault(logger)

	if err := run(context.Background(), cfg, logger); err != nil {
		logger.Error("Migration failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.AppConfig, logger *logging.Logger) error {
	client := dhis2.NewClient(cfg.DHIS2)

	metadata, err := repositories.NewD2MetadataRepository(client).Get(ctx)
	if err != nil {
		return err
	}

	dataSetRepo := repositories.NewD2DataSetRepository(client, metadata, cfg.Chunks)
	projectRepo := repositories.NewD2ProjectRepository(client, metadata, cfg.Chunks)
	service := application.NewMigrationService(dataSetRepo, projectRepo)

	logger.Info("Migration starting", "dhis2_url", cfg.DHIS2.BaseURL)
	start := time.Now()

	result, err := service.MigrateProjects(ctx)
	if err != nil {
		return err
	}

	if err := writeReport(withProjectsReport, application.MigrationReportCSV(result.WithProjects)); err != nil {
		return err
	}
	if err := writeReport(withoutProjectsReport, application.MigrationReportCSV(result.WithoutProjects)); err != nil {
		return err
	}

	logger.Info("Migration finished",
		"matched", len(result.WithProjects),
		"unmatched", len(result.WithoutProjects),
		"duration", time.Since(start).String(),
	)
	return nil
}

func writeReport(path, content string) error {
	return os.WriteFile(path, []byte(content), 0644)
}
