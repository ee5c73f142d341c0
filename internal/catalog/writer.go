package catalog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dlaan/geopoint/pkg/logger"
	"github.com/dlaan/geopoint/pkg/metrics"
	"gopkg.in/yaml.v3"
)

// Writer emits one `<prefix>-<kebab-case id>.yml` file per dataset.
type Writer struct {
	OutputDir  string
	FilePrefix string
	Publisher  Publisher
	Logger     logger.Logger
	Metrics    metrics.Metrics
}

func (w *Writer) Filename(d Dataset) string {
	return fmt.Sprintf("%s-%s.yml", w.FilePrefix, KebabCase(d.ID))
}

func (w *Writer) WriteAll(ctx context.Context, datasets []Dataset) (int, error) {
	if err := os.MkdirAll(w.OutputDir, 0o755); err != nil {
		return 0, fmt.Errorf("failed to create output dir: %w", err)
	}

	written := 0
	for _, d := range datasets {
		if err := w.write(ctx, d); err != nil {
			w.Metrics.RecordCatalogDescriptor("error")
			return written, err
		}
		w.Metrics.RecordCatalogDescriptor("success")
		written++
	}
	return written, nil
}

func (w *Writer) write(ctx context.Context, d Dataset) error {
	name := w.Filename(d)

	body, err := yaml.Marshal(NewDescriptor(w.Publisher, d))
	if err != nil {
		return fmt.Errorf("failed to marshal descriptor for %s: %w", d.ID, err)
	}

	w.Logger.Info(ctx, "writing descriptor", logger.String("file", name))
	if err := os.WriteFile(filepath.Join(w.OutputDir, name), body, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}
