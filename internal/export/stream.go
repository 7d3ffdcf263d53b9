package export

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/tansuasici/countrystatecity-go/internal/filter"
	"github.com/tansuasici/countrystatecity-go/internal/format"
	"github.com/tansuasici/countrystatecity-go/internal/store"
)

// StreamJSONLines yields one compact JSON document per surviving record,
// each line newline-terminated. The sequence is pull-based: records are
// encoded only as the consumer advances, and iteration stops early when
// ctx is cancelled or the consumer breaks.
func (e *Exporter) StreamJSONLines(ctx context.Context, entity store.Entity, f *filter.Filter) (iter.Seq[string], error) {
	switch entity {
	case store.EntityCountries:
		return streamJSONLines(ctx, e.store.Countries(), f.Countries()), nil
	case store.EntityStates:
		return streamJSONLines(ctx, e.store.States(), f.States(e.resolver())), nil
	case store.EntityCities:
		return streamJSONLines(ctx, e.store.Cities(), f.Cities(e.resolver())), nil
	default:
		return nil, fmt.Errorf("unknown entity: %s", entity)
	}
}

// StreamCSV yields newline-terminated CSV lines. Column keys come from
// the first surviving record; an optional header line precedes it.
func (e *Exporter) StreamCSV(ctx context.Context, entity store.Entity, f *filter.Filter, opts *format.Options) (iter.Seq[string], error) {
	o := format.DefaultOptions()
	if opts != nil {
		o = *opts
		if o.Delimiter == 0 {
			o.Delimiter = ','
		}
	}

	switch entity {
	case store.EntityCountries:
		return streamCSV(ctx, e.store.Countries(), f.Countries(), o), nil
	case store.EntityStates:
		return streamCSV(ctx, e.store.States(), f.States(e.resolver()), o), nil
	case store.EntityCities:
		return streamCSV(ctx, e.store.Cities(), f.Cities(e.resolver()), o), nil
	default:
		return nil, fmt.Errorf("unknown entity: %s", entity)
	}
}

func streamJSONLines[T any](ctx context.Context, records []T, pred func(T) bool) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, rec := range records {
			if ctx.Err() != nil {
				return
			}
			if !pred(rec) {
				continue
			}
			raw, err := json.Marshal(rec)
			if err != nil {
				continue
			}
			if !yield(string(raw) + "\n") {
				return
			}
		}
	}
}

func streamCSV[T any](ctx context.Context, records []T, pred func(T) bool, opts format.Options) iter.Seq[string] {
	return func(yield func(string) bool) {
		var keys []string
		for _, rec := range records {
			if ctx.Err() != nil {
				return
			}
			if !pred(rec) {
				continue
			}
			if keys == nil {
				keys = format.ScalarKeys(rec)
				if opts.Headers {
					if !yield(strings.Join(keys, string(opts.Delimiter)) + "\n") {
						return
					}
				}
			}
			if !yield(format.CSVRow(format.ScalarValues(rec, keys), opts.Delimiter) + "\n") {
				return
			}
		}
	}
}

// Compress gzips src through a pipe so compressed bytes can be read as
// they are produced instead of after the whole input is consumed
func Compress(src io.Reader) io.ReadCloser {
	pr, pw := io.Pipe()
	go func() {
		gz := gzip.NewWriter(pw)
		if _, err := io.Copy(gz, src); err != nil {
			gz.Close()
			pw.CloseWithError(err)
			return
		}
		pw.CloseWithError(gz.Close())
	}()
	return pr
}
