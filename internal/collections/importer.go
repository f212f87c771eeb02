package collections

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/z5116890/World-Bank-Economic-Indicators-REST-API/internal/models"
	"github.com/z5116890/World-Bank-Economic-Indicators-REST-API/internal/worldbank"
)

// Provider abstracts the upstream indicator API so the importer can be
// tested with a stub.
type Provider interface {
	Indicator(ctx context.Context, code string) ([]worldbank.Record, error)
}

// Importer fetches an indicator's time series from the upstream provider and
// persists it as a new collection.
type Importer struct {
	store    *Store
	provider Provider
}

// NewImporter creates an Importer.
func NewImporter(store *Store, provider Provider) *Importer {
	return &Importer{store: store, provider: provider}
}

// Import creates the collection for the given indicator code. Records with a
// null value are dropped and never persisted. The collection row and its
// entries are committed as one transaction; on any failure nothing is
// visible. A duplicate indicator is ErrConflict, an unknown indicator is
// worldbank.ErrIndicatorNotFound.
func (im *Importer) Import(ctx context.Context, code string) (models.CollectionSummary, error) {
	records, err := im.provider.Indicator(ctx, code)
	if err != nil {
		return models.CollectionSummary{}, err
	}

	// The indicator descriptor is constant across all records of one
	// response; take it from the first.
	indicator := records[0].Indicator.ID
	label := records[0].Indicator.Value

	entries := make([]models.Entry, 0, len(records))
	for _, rec := range records {
		if rec.Value == nil {
			continue
		}
		year, err := strconv.Atoi(rec.Date)
		if err != nil {
			// The yearly window never produces non-year dates; skip
			// rather than abort if one ever appears.
			slog.Warn("skipping record with non-year date", "indicator", code, "date", rec.Date)
			continue
		}
		entries = append(entries, models.Entry{
			Country: rec.Country.Value,
			Date:    year,
			Value:   *rec.Value,
		})
	}

	creationTime := time.Now().UTC().Truncate(time.Second)

	id, err := im.store.CreateCollection(ctx, creationTime, indicator, label, entries)
	if err != nil {
		return models.CollectionSummary{}, err
	}

	slog.Info("collection imported",
		"id", id,
		"indicator", indicator,
		"records", len(records),
		"entries", len(entries),
	)

	return models.CollectionSummary{
		ID:           id,
		CreationTime: creationTime,
		Indicator:    code,
	}, nil
}
