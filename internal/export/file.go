package export

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"iter"
	"os"

	"github.com/klauspost/compress/gzip"
	"go.uber.org/zap"

	"github.com/tansuasici/countrystatecity-go/internal/filter"
	"github.com/tansuasici/countrystatecity-go/internal/format"
	"github.com/tansuasici/countrystatecity-go/internal/store"
)

// FileOptions tunes a file export
type FileOptions struct {
	Filter *filter.Filter
	Gzip   bool
	Format *format.Options
}

// ExportToFile writes one collection to path. CSV and JSON Lines go
// through the streaming path; the other formats are rendered in full
// first. The file is removed again when the export fails or ctx is
// cancelled partway.
func (e *Exporter) ExportToFile(ctx context.Context, entity store.Entity, kind format.Kind, path string, opts FileOptions) error {
	// validate before touching the filesystem
	if _, err := store.ParseEntity(string(entity)); err != nil {
		return err
	}
	if _, err := format.ParseKind(string(kind)); err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	err = e.writeExport(ctx, file, entity, kind, opts)
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(path)
		return err
	}

	e.logger.Info("export complete",
		zap.String("entity", string(entity)),
		zap.String("format", string(kind)),
		zap.String("path", path),
		zap.Bool("gzip", opts.Gzip))
	return nil
}

func (e *Exporter) writeExport(ctx context.Context, w io.Writer, entity store.Entity, kind format.Kind, opts FileOptions) error {
	buf := bufio.NewWriter(w)
	var out io.Writer = buf
	var gz *gzip.Writer
	if opts.Gzip {
		gz = gzip.NewWriter(buf)
		out = gz
	}

	switch kind {
	case format.KindJSONLines, format.KindCSV:
		var (
			lines iter.Seq[string]
			err   error
		)
		if kind == format.KindJSONLines {
			lines, err = e.StreamJSONLines(ctx, entity, opts.Filter)
		} else {
			lines, err = e.StreamCSV(ctx, entity, opts.Filter, opts.Format)
		}
		if err != nil {
			return err
		}
		for line := range lines {
			if _, err := io.WriteString(out, line); err != nil {
				return err
			}
		}
		// the sequence ends silently on cancellation; surface it
		if err := ctx.Err(); err != nil {
			return err
		}
	default:
		rendered, err := e.ExportFiltered(entity, kind, opts.Filter, opts.Format)
		if err != nil {
			return err
		}
		if _, err := io.WriteString(out, rendered); err != nil {
			return err
		}
	}

	if gz != nil {
		if err := gz.Close(); err != nil {
			return err
		}
	}
	return buf.Flush()
}
