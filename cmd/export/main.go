// cmd/export/main.go
package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/rs/zerolog"

	"francofolies/internal/config"
	"francofolies/internal/db"
	"francofolies/internal/logger"
	"francofolies/internal/repository"
	"francofolies/internal/services"
)

// export writes a JSON snapshot of the catalog to S3 and exits.
func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.Init(logger.Config{})
		bootLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.Init(logger.Config{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Service: "francofolies-export",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	s3Config, err := config.NewS3Config(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load S3 configuration")
	}

	database, err := db.New(ctx, cfg.Database.Driver, cfg.Database.URL, db.DefaultRetryPolicy(cfg.Database.ConnectTimeout))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer database.Close()

	exporter := services.NewSnapshotExporter(
		repository.NewConcertRepository(database.DB),
		repository.NewSceneRepository(database.DB),
		repository.NewArtistRepository(database.DB),
		manager.NewUploader(s3Config.Client),
		s3Config.Bucket,
		s3Config.Prefix,
	)

	if err := runExport(ctx, exporter, log); err != nil {
		database.Close()
		log.Fatal().Err(err).Msg("Catalog export failed")
	}
}

type catalogExporter interface {
	Export(ctx context.Context) (string, error)
}

// runExport returns the export error so main can exit non-zero on it.
func runExport(ctx context.Context, exporter catalogExporter, log zerolog.Logger) error {
	key, err := exporter.Export(ctx)
	if err != nil {
		return err
	}
	log.Info().Str("key", key).Msg("Catalog export finished")
	return nil
}
