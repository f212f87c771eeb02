package collections

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mattn/go-sqlite3"

	"github.com/z5116890/World-Bank-Economic-Indicators-REST-API/internal/models"
)

// Store provides database access for collections and their entries.
type Store struct {
	db *sql.DB
}

// NewStore creates a Store.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// CreateCollection inserts the collection row and its entries in a single
// transaction and returns the assigned id. A duplicate indicator fails the
// insert on the unique index and is reported as ErrConflict, so concurrent
// imports of the same indicator cannot both succeed.
func (s *Store) CreateCollection(ctx context.Context, creationTime time.Time, indicator, indicatorValue string, entries []models.Entry) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, queryInsertCollection, creationTime, indicator, indicatorValue)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%w: indicator %s", ErrConflict, indicator)
		}
		return 0, fmt.Errorf("insert collection: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("collection id: %w", err)
	}

	if len(entries) > 0 {
		stmt, err := tx.PrepareContext(ctx, queryInsertEntry)
		if err != nil {
			return 0, fmt.Errorf("prepare entry insert: %w", err)
		}
		defer stmt.Close()

		for _, e := range entries {
			if _, err := stmt.ExecContext(ctx, id, e.Country, e.Date, e.Value); err != nil {
				return 0, fmt.Errorf("insert entry (%s, %d): %w", e.Country, e.Date, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return id, nil
}

// ListSummaries returns all collections, ordered by the validated order
// clause if one was supplied, else in storage order.
func (s *Store) ListSummaries(ctx context.Context, order OrderBy) ([]models.CollectionSummary, error) {
	query := querySummaries
	if order.Clause() != "" {
		query += " ORDER BY " + order.Clause()
	}

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	defer rows.Close()

	var summaries []models.CollectionSummary
	for rows.Next() {
		var c models.CollectionSummary
		if err := rows.Scan(&c.ID, &c.CreationTime, &c.Indicator); err != nil {
			return nil, fmt.Errorf("scan collection: %w", err)
		}
		summaries = append(summaries, c)
	}
	return summaries, rows.Err()
}

// GetCollectionMeta returns the collection row without its entries.
func (s *Store) GetCollectionMeta(ctx context.Context, id int64) (models.Collection, error) {
	var c models.Collection
	err := s.db.QueryRowContext(ctx, queryCollectionByID, id).
		Scan(&c.ID, &c.CreationTime, &c.Indicator, &c.IndicatorValue)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Collection{}, fmt.Errorf("%w: collection %d", ErrNotFound, id)
	}
	if err != nil {
		return models.Collection{}, fmt.Errorf("get collection %d: %w", id, err)
	}
	return c, nil
}

// GetCollection returns the collection and all of its entries. Entries is an
// empty slice, never nil, when the collection has none.
func (s *Store) GetCollection(ctx context.Context, id int64) (models.Collection, error) {
	c, err := s.GetCollectionMeta(ctx, id)
	if err != nil {
		return models.Collection{}, err
	}

	rows, err := s.db.QueryContext(ctx, queryEntriesByCollection, id)
	if err != nil {
		return models.Collection{}, fmt.Errorf("get entries for %d: %w", id, err)
	}
	defer rows.Close()

	c.Entries = []models.Entry{}
	for rows.Next() {
		var e models.Entry
		if err := rows.Scan(&e.Country, &e.Date, &e.Value); err != nil {
			return models.Collection{}, fmt.Errorf("scan entry: %w", err)
		}
		c.Entries = append(c.Entries, e)
	}
	return c, rows.Err()
}

// GetEntry returns the single entry matching (collection, year, country)
// exactly. A missing collection and a missing entry are the same ErrNotFound.
func (s *Store) GetEntry(ctx context.Context, id int64, year int, country string) (models.Entry, error) {
	var e models.Entry
	err := s.db.QueryRowContext(ctx, queryEntryExact, id, year, country).
		Scan(&e.Country, &e.Date, &e.Value)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Entry{}, fmt.Errorf("%w: collection %d, %s, %d", ErrNotFound, id, country, year)
	}
	if err != nil {
		return models.Entry{}, fmt.Errorf("get entry: %w", err)
	}
	return e, nil
}

// GetRankedEntries returns the ranked entries for a collection and year.
// Top-N is value-descending; bottom-N selects ascending and is re-sorted
// descending for presentation; no ranking returns everything for the year in
// storage order. The result is an empty slice, never nil, when nothing
// matches or the limit is zero.
func (s *Store) GetRankedEntries(ctx context.Context, id int64, year int, rank Rank) ([]models.RankedEntry, error) {
	var (
		rows *sql.Rows
		err  error
	)
	switch rank.Direction {
	case DirectionTop:
		rows, err = s.db.QueryContext(ctx, queryTopEntries, id, year, rank.Limit)
	case DirectionBottom:
		rows, err = s.db.QueryContext(ctx, queryBottomEntries, id, year, rank.Limit)
	default:
		rows, err = s.db.QueryContext(ctx, queryEntriesForYear, id, year)
	}
	if err != nil {
		return nil, fmt.Errorf("ranked entries: %w", err)
	}
	defer rows.Close()

	entries := []models.RankedEntry{}
	for rows.Next() {
		var e models.RankedEntry
		if err := rows.Scan(&e.Country, &e.Value); err != nil {
			return nil, fmt.Errorf("scan ranked entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// DeleteCollection deletes the collection and all of its entries in one
// transaction. It reports whether the collection existed.
func (s *Store) DeleteCollection(ctx context.Context, id int64) (bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, queryDeleteEntries, id); err != nil {
		return false, fmt.Errorf("delete entries for %d: %w", id, err)
	}

	res, err := tx.ExecContext(ctx, queryDeleteCollection, id)
	if err != nil {
		return false, fmt.Errorf("delete collection %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit: %w", err)
	}
	return affected > 0, nil
}

func isUniqueViolation(err error) bool {
	var se sqlite3.Error
	return errors.As(err, &se) && se.ExtendedCode == sqlite3.ErrConstraintUnique
}
