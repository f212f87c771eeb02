// Package collections implements the HTTP handlers, data access and import
// pipeline for cached indicator collections.
package collections

// SQL queries for the collections service. Every client-supplied value is a
// bound parameter; the only dynamic SQL text is the ORDER BY clause built
// from allow-listed column names (see query.go).
const (
	// queryInsertCollection creates the collection row. The unique index on
	// indicator makes a duplicate import fail the insert, which the store
	// reports as ErrConflict.
	queryInsertCollection = `INSERT INTO collections (creation_time, indicator, indicator_value) VALUES (?, ?, ?)`

	queryInsertEntry = `INSERT INTO entries (collection_id, country, date, value) VALUES (?, ?, ?, ?)`

	// querySummaries lists all collections; an optional validated ORDER BY
	// clause is appended by the store.
	querySummaries = `SELECT id, creation_time, indicator FROM collections`

	queryCollectionByID = `SELECT id, creation_time, indicator, indicator_value FROM collections WHERE id = ?`

	queryEntriesByCollection = `SELECT country, date, value FROM entries WHERE collection_id = ?`

	queryEntryExact = `SELECT country, date, value FROM entries WHERE collection_id = ? AND date = ? AND country = ?`

	queryEntriesForYear = `SELECT country, value FROM entries WHERE collection_id = ? AND date = ?`

	// queryTopEntries returns the N greatest values, descending.
	queryTopEntries = `SELECT country, value FROM entries WHERE collection_id = ? AND date = ? ORDER BY value DESC LIMIT ?`

	// queryBottomEntries selects the N smallest values ascending, then the
	// outer query re-sorts them descending for presentation. The asymmetry
	// with queryTopEntries is externally observable behavior.
	queryBottomEntries = `SELECT country, value FROM (SELECT country, value FROM entries WHERE collection_id = ? AND date = ? ORDER BY value ASC LIMIT ?) ORDER BY value DESC`

	queryDeleteEntries = `DELETE FROM entries WHERE collection_id = ?`

	queryDeleteCollection = `DELETE FROM collections WHERE id = ?`
)
