package api

import (
	"fmt"
	"io"
	"iter"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/klauspost/compress/gzip"
	"go.uber.org/zap"

	"github.com/tansuasici/countrystatecity-go/internal/export"
	"github.com/tansuasici/countrystatecity-go/internal/filter"
	"github.com/tansuasici/countrystatecity-go/internal/format"
	"github.com/tansuasici/countrystatecity-go/internal/store"
)

// ExportHandler serves dataset downloads
type ExportHandler struct {
	exporter *export.Exporter
	logger   *zap.Logger
}

// NewExportHandler creates a new export handler instance
func NewExportHandler(exporter *export.Exporter, logger *zap.Logger) *ExportHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportHandler{exporter: exporter, logger: logger}
}

var exportContentTypes = map[format.Kind]string{
	format.KindJSON:      "application/json",
	format.KindJSONLines: "application/x-ndjson",
	format.KindCSV:       "text/csv",
	format.KindXML:       "application/xml",
	format.KindYAML:      "application/x-yaml",
}

// Export handles GET /api/v1/export/{entity}. CSV and JSON Lines stream
// line by line; the other formats are rendered in full before the first
// byte goes out so failures can still produce an error status.
func (h *ExportHandler) Export(w http.ResponseWriter, r *http.Request) {
	entity, err := store.ParseEntity(mux.Vars(r)["entity"])
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	name := r.URL.Query().Get("format")
	if name == "" {
		name = "json"
	}
	kind, err := format.ParseKind(name)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	f, err := exportFilter(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	gzipped := r.URL.Query().Get("gzip") == "true" || r.URL.Query().Get("gzip") == "1"

	var (
		lines    iter.Seq[string]
		rendered string
	)
	switch kind {
	case format.KindJSONLines:
		lines, err = h.exporter.StreamJSONLines(r.Context(), entity, f)
	case format.KindCSV:
		lines, err = h.exporter.StreamCSV(r.Context(), entity, f, nil)
	default:
		rendered, err = h.exporter.ExportFiltered(entity, kind, f, nil)
	}
	if err != nil {
		h.logger.Error("export failed",
			zap.String("entity", string(entity)),
			zap.String("format", string(kind)),
			zap.Error(err))
		respondError(w, http.StatusInternalServerError, "export failed")
		return
	}

	filename := fmt.Sprintf("%s.%s", entity, kind)
	contentType := exportContentTypes[kind]
	if gzipped {
		filename += ".gz"
		contentType = "application/gzip"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)

	var out io.Writer = w
	var gz *gzip.Writer
	if gzipped {
		gz = gzip.NewWriter(w)
		out = gz
	}

	if lines != nil {
		for line := range lines {
			if _, err := io.WriteString(out, line); err != nil {
				h.logger.Warn("client went away during export", zap.Error(err))
				return
			}
		}
	} else {
		if _, err := io.WriteString(out, rendered); err != nil {
			h.logger.Warn("client went away during export", zap.Error(err))
			return
		}
	}

	if gz != nil {
		if err := gz.Close(); err != nil {
			h.logger.Warn("failed to finish gzip stream", zap.Error(err))
		}
	}
}

func exportFilter(r *http.Request) (*filter.Filter, error) {
	q := r.URL.Query()
	f := &filter.Filter{
		CountryCode: q.Get("countryCode"),
		Region:      q.Get("region"),
		Subregion:   q.Get("subregion"),
	}
	if s := q.Get("countryId"); s != "" {
		id, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("invalid countryId parameter")
		}
		f.CountryID = id
	}
	if s := q.Get("stateId"); s != "" {
		id, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("invalid stateId parameter")
		}
		f.StateID = id
	}
	return f, nil
}
