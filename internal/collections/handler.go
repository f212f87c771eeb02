package collections

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/z5116890/World-Bank-Economic-Indicators-REST-API/internal/models"
	"github.com/z5116890/World-Bank-Economic-Indicators-REST-API/internal/worldbank"
)

// Handler exposes the collections HTTP endpoints.
type Handler struct {
	store    *Store
	importer *Importer
}

// NewHandler creates a Handler backed by the given Store and Importer.
func NewHandler(store *Store, importer *Importer) *Handler {
	return &Handler{store: store, importer: importer}
}

// ---------------------------------------------------------------------------
// Response types
// ---------------------------------------------------------------------------

// CollectionRef is returned by create and list operations.
type CollectionRef struct {
	URI          string    `json:"uri" example:"/collections/1"`
	ID           int64     `json:"id" example:"1"`
	CreationTime time.Time `json:"creation_time"`
	IndicatorID  string    `json:"indicator_id" example:"NY.GDP.MKTP.CD"`
}

// CollectionResponse is the full collection including its entries.
type CollectionResponse struct {
	ID             int64          `json:"id" example:"1"`
	Indicator      string         `json:"indicator" example:"NY.GDP.MKTP.CD"`
	IndicatorValue string         `json:"indicator_value" example:"GDP (current US$)"`
	CreationTime   time.Time      `json:"creation_time"`
	Entries        []models.Entry `json:"entries"`
}

// DeleteResponse confirms a deletion.
type DeleteResponse struct {
	Message string `json:"message" example:"collection 1 deleted"`
	ID      int64  `json:"id" example:"1"`
}

// EntryResponse is a single indicator value for one country and year.
type EntryResponse struct {
	ID        int64   `json:"id" example:"1"`
	Indicator string  `json:"indicator" example:"NY.GDP.MKTP.CD"`
	Country   string  `json:"country" example:"Australia"`
	Year      int     `json:"year" example:"2016"`
	Value     float64 `json:"value" example:"1208039015201.86"`
}

// RankedResponse holds the top-N / bottom-N entries for one year.
type RankedResponse struct {
	Indicator      string               `json:"indicator" example:"NY.GDP.MKTP.CD"`
	IndicatorValue string               `json:"indicator_value" example:"GDP (current US$)"`
	Entries        []models.RankedEntry `json:"entries"`
}

type errorResponse struct {
	Error string `json:"error" example:"collection 1 not found"`
}

// ---------------------------------------------------------------------------
// POST /collections
// ---------------------------------------------------------------------------

// CreateCollection godoc
//
//	@Summary		Import an indicator as a new collection
//	@Description	Fetches the indicator's 2012–2017 values from the World Bank API
//	@Description	and caches them as a new collection.
//	@Tags			collections
//	@Produce		json
//	@Param			indicator_id	query		string	true	"World Bank indicator code"	example(NY.GDP.MKTP.CD)
//	@Success		201				{object}	CollectionRef
//	@Failure		400				{object}	errorResponse	"collection already exists or missing indicator_id"
//	@Failure		404				{object}	errorResponse	"indicator unknown upstream"
//	@Failure		502				{object}	errorResponse	"upstream unavailable"
//	@Router			/collections [post]
func (h *Handler) CreateCollection(w http.ResponseWriter, r *http.Request) {
	indicator := r.URL.Query().Get("indicator_id")
	if indicator == "" {
		writeErr(w, http.StatusBadRequest, "indicator_id is required")
		return
	}

	summary, err := h.importer.Import(r.Context(), indicator)
	switch {
	case errors.Is(err, ErrConflict):
		writeErr(w, http.StatusBadRequest,
			fmt.Sprintf("collection for indicator %s already exists", indicator))
		return
	case errors.Is(err, worldbank.ErrIndicatorNotFound):
		writeErr(w, http.StatusNotFound,
			fmt.Sprintf("indicator %s does not exist", indicator))
		return
	case errors.Is(err, worldbank.ErrUnavailable):
		slog.Error("upstream fetch failed", "indicator", indicator, "error", err)
		writeErr(w, http.StatusBadGateway, "indicator data service is unavailable")
		return
	case err != nil:
		slog.Error("import failed", "indicator", indicator, "error", err)
		writeErr(w, http.StatusInternalServerError, "failed to create collection")
		return
	}

	writeJSON(w, http.StatusCreated, toRef(summary))
}

// ---------------------------------------------------------------------------
// GET /collections
// ---------------------------------------------------------------------------

// ListCollections godoc
//
//	@Summary		List collections
//	@Description	Returns all cached collections, optionally ordered by an
//	@Description	order_by expression such as "{id},{creation_time desc}".
//	@Tags			collections
//	@Produce		json
//	@Param			order_by	query		string	false	"Order expression"	example({creation_time desc})
//	@Success		200			{array}		CollectionRef
//	@Failure		400			{object}	errorResponse	"invalid order expression"
//	@Failure		404			{object}	errorResponse	"no collections exist"
//	@Router			/collections [get]
func (h *Handler) ListCollections(w http.ResponseWriter, r *http.Request) {
	order, err := ParseOrderBy(r.URL.Query().Get("order_by"))
	if err != nil {
		writeErr(w, http.StatusBadRequest, err.Error())
		return
	}

	summaries, err := h.store.ListSummaries(r.Context(), order)
	if err != nil {
		slog.Error("list collections", "error", err)
		writeErr(w, http.StatusInternalServerError, "failed to list collections")
		return
	}
	if len(summaries) == 0 {
		writeErr(w, http.StatusNotFound, "no collections found")
		return
	}

	refs := make([]CollectionRef, len(summaries))
	for i, s := range summaries {
		refs[i] = toRef(s)
	}
	writeJSON(w, http.StatusOK, refs)
}

// ---------------------------------------------------------------------------
// GET /collections/{id}
// ---------------------------------------------------------------------------

// GetCollection godoc
//
//	@Summary	Get a collection by id, including all entries
//	@Tags		collections
//	@Produce	json
//	@Param		id	path		int	true	"Collection ID"
//	@Success	200	{object}	CollectionResponse
//	@Failure	400	{object}	errorResponse
//	@Failure	404	{object}	errorResponse
//	@Router		/collections/{id} [get]
func (h *Handler) GetCollection(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	c, err := h.store.GetCollection(r.Context(), id)
	switch {
	case errors.Is(err, ErrNotFound):
		writeErr(w, http.StatusNotFound, fmt.Sprintf("collection %d not found", id))
		return
	case err != nil:
		slog.Error("get collection", "id", id, "error", err)
		writeErr(w, http.StatusInternalServerError, "failed to fetch collection")
		return
	}

	writeJSON(w, http.StatusOK, CollectionResponse{
		ID:             c.ID,
		Indicator:      c.Indicator,
		IndicatorValue: c.IndicatorValue,
		CreationTime:   c.CreationTime,
		Entries:        c.Entries,
	})
}

// ---------------------------------------------------------------------------
// DELETE /collections/{id}
// ---------------------------------------------------------------------------

// DeleteCollection godoc
//
//	@Summary	Delete a collection and all of its entries
//	@Tags		collections
//	@Produce	json
//	@Param		id	path		int	true	"Collection ID"
//	@Success	200	{object}	DeleteResponse
//	@Failure	400	{object}	errorResponse
//	@Failure	404	{object}	errorResponse
//	@Router		/collections/{id} [delete]
func (h *Handler) DeleteCollection(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	found, err := h.store.DeleteCollection(r.Context(), id)
	if err != nil {
		slog.Error("delete collection", "id", id, "error", err)
		writeErr(w, http.StatusInternalServerError, "failed to delete collection")
		return
	}
	if !found {
		writeErr(w, http.StatusNotFound, fmt.Sprintf("collection %d not found", id))
		return
	}

	writeJSON(w, http.StatusOK, DeleteResponse{
		Message: fmt.Sprintf("collection %d deleted", id),
		ID:      id,
	})
}

// ---------------------------------------------------------------------------
// GET /collections/{id}/{year}/{country}
// ---------------------------------------------------------------------------

// GetEntry godoc
//
//	@Summary	Get the indicator value for one country and year
//	@Tags		collections
//	@Produce	json
//	@Param		id		path		int		true	"Collection ID"
//	@Param		year	path		int		true	"Year"
//	@Param		country	path		string	true	"Country name"	example(Australia)
//	@Success	200		{object}	EntryResponse
//	@Failure	400		{object}	errorResponse
//	@Failure	404		{object}	errorResponse
//	@Router		/collections/{id}/{year}/{country} [get]
func (h *Handler) GetEntry(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	year, ok := pathYear(w, r)
	if !ok {
		return
	}
	country := chi.URLParam(r, "country")

	entry, err := h.store.GetEntry(r.Context(), id, year, country)
	switch {
	case errors.Is(err, ErrNotFound):
		writeErr(w, http.StatusNotFound,
			fmt.Sprintf("no value for collection %d, country %s, year %d", id, country, year))
		return
	case err != nil:
		slog.Error("get entry", "id", id, "country", country, "year", year, "error", err)
		writeErr(w, http.StatusInternalServerError, "failed to fetch entry")
		return
	}

	// The indicator code lives on the collection row.
	meta, err := h.store.GetCollectionMeta(r.Context(), id)
	switch {
	case errors.Is(err, ErrNotFound):
		writeErr(w, http.StatusNotFound, fmt.Sprintf("collection %d not found", id))
		return
	case err != nil:
		slog.Error("get entry collection", "id", id, "error", err)
		writeErr(w, http.StatusInternalServerError, "failed to fetch entry")
		return
	}

	writeJSON(w, http.StatusOK, EntryResponse{
		ID:        id,
		Indicator: meta.Indicator,
		Country:   entry.Country,
		Year:      entry.Date,
		Value:     entry.Value,
	})
}

// ---------------------------------------------------------------------------
// GET /collections/{id}/{year}
// ---------------------------------------------------------------------------

// GetRankedEntries godoc
//
//	@Summary		Get entries for a year, optionally ranked
//	@Description	Without q, returns every entry for the year. q selects the top N
//	@Description	("+N" or "N") or bottom N ("-N") values; N is clamped to 100 and
//	@Description	results are always presented largest value first.
//	@Tags			collections
//	@Produce		json
//	@Param			id		path		int		true	"Collection ID"
//	@Param			year	path		int		true	"Year"
//	@Param			q		query		string	false	"Ranking token"	example(+10)
//	@Success		200		{object}	RankedResponse
//	@Failure		400		{object}	errorResponse	"invalid ranking token"
//	@Failure		404		{object}	errorResponse	"collection not found"
//	@Router			/collections/{id}/{year} [get]
func (h *Handler) GetRankedEntries(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	year, ok := pathYear(w, r)
	if !ok {
		return
	}

	rank, err := ParseRank(r.URL.Query().Get("q"))
	if err != nil {
		writeErr(w, http.StatusBadRequest, err.Error())
		return
	}

	meta, err := h.store.GetCollectionMeta(r.Context(), id)
	switch {
	case errors.Is(err, ErrNotFound):
		writeErr(w, http.StatusNotFound, fmt.Sprintf("collection %d not found", id))
		return
	case err != nil:
		slog.Error("ranked entries collection", "id", id, "error", err)
		writeErr(w, http.StatusInternalServerError, "failed to fetch entries")
		return
	}

	entries, err := h.store.GetRankedEntries(r.Context(), id, year, rank)
	if err != nil {
		slog.Error("ranked entries", "id", id, "year", year, "error", err)
		writeErr(w, http.StatusInternalServerError, "failed to fetch entries")
		return
	}

	writeJSON(w, http.StatusOK, RankedResponse{
		Indicator:      meta.Indicator,
		IndicatorValue: meta.IndicatorValue,
		Entries:        entries,
	})
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func toRef(s models.CollectionSummary) CollectionRef {
	return CollectionRef{
		URI:          fmt.Sprintf("/collections/%d", s.ID),
		ID:           s.ID,
		CreationTime: s.CreationTime,
		IndicatorID:  s.Indicator,
	}
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeErr(w, http.StatusBadRequest, "collection id must be an integer")
		return 0, false
	}
	return id, true
}

func pathYear(w http.ResponseWriter, r *http.Request) (int, bool) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		writeErr(w, http.StatusBadRequest, "year must be an integer")
		return 0, false
	}
	return year, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
