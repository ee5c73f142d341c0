package main

import (
	"context"
	"os"

	"github.com/dlaan/geopoint/configs"
	"github.com/dlaan/geopoint/internal/catalog"
	"github.com/dlaan/geopoint/pkg/logger"
	"github.com/dlaan/geopoint/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

const serviceName = "geopoint-catalog"

// One-shot job: fetch the dataset catalog and emit one YAML descriptor per
// public, available dataset. No retries; rerunning overwrites the files.
func main() {
	config, err := configs.LoadConfig(".")
	if err != nil {
		panic(err)
	}

	log := logger.NewLogger(serviceName, config.AppEnv == "production")
	ctx := context.Background()

	if config.CatalogIndexURL == "" {
		log.Error(ctx, "CATALOG_INDEX_URL is required")
		os.Exit(1)
	}

	client := catalog.NewClient(config.CatalogIndexURL)
	datasets, err := client.FetchDatasets(ctx)
	if err != nil {
		log.Error(ctx, "failed to fetch dataset index", logger.WithError(err))
		os.Exit(1)
	}

	public := catalog.FilterPublic(datasets)
	log.Info(ctx, "fetched dataset index",
		logger.Int("total", len(datasets)),
		logger.Int("public", len(public)),
	)

	writer := &catalog.Writer{
		OutputDir:  config.CatalogOutputDir,
		FilePrefix: config.CatalogFilePrefix,
		Publisher: catalog.Publisher{
			OrganizationName: config.CatalogOrgName,
			OrganizationOOID: config.CatalogOrgOOID,
			APIBaseURL:       config.CatalogAPIBaseURL,
			ContactEmail:     config.CatalogContactEmail,
			ContactURL:       config.CatalogContactURL,
		},
		Logger:  log,
		Metrics: metrics.NewPrometheusMetrics(prometheus.NewRegistry(), serviceName),
	}

	written, err := writer.WriteAll(ctx, public)
	if err != nil {
		log.Error(ctx, "failed writing descriptors", logger.WithError(err))
		os.Exit(1)
	}

	log.Info(ctx, "catalog generated", logger.Int("descriptors", written))
}
