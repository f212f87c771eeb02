package collections_test

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/z5116890/World-Bank-Economic-Indicators-REST-API/internal/collections"
	"github.com/z5116890/World-Bank-Economic-Indicators-REST-API/internal/db"
	"github.com/z5116890/World-Bank-Economic-Indicators-REST-API/internal/models"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sqlDB, err := db.Connect(ctx, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.Migrate(sqlDB); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return sqlDB
}

// seedCollection creates a collection with the given entries and returns its id.
func seedCollection(t *testing.T, store *collections.Store, indicator string, entries []models.Entry) int64 {
	t.Helper()

	id, err := store.CreateCollection(context.Background(),
		time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), indicator, indicator+" label", entries)
	if err != nil {
		t.Fatalf("seed collection %s: %v", indicator, err)
	}
	return id
}

func gdpEntries() []models.Entry {
	return []models.Entry{
		{Country: "Australia", Date: 2015, Value: 1345383143356.54},
		{Country: "Australia", Date: 2016, Value: 1208039015201.86},
		{Country: "Norway", Date: 2015, Value: 385802008446.87},
		{Country: "Norway", Date: 2016, Value: 368827242033.47},
		{Country: "Chile", Date: 2016, Value: 247027912574.90},
	}
}

func TestCreateCollection_PersistsEntries(t *testing.T) {
	store := collections.NewStore(testDB(t))
	ctx := context.Background()

	id := seedCollection(t, store, "NY.GDP.MKTP.CD", gdpEntries())
	if id == 0 {
		t.Fatal("expected a non-zero assigned id")
	}

	c, err := store.GetCollection(ctx, id)
	if err != nil {
		t.Fatalf("GetCollection: %v", err)
	}
	if c.Indicator != "NY.GDP.MKTP.CD" || c.IndicatorValue != "NY.GDP.MKTP.CD label" {
		t.Errorf("unexpected collection %+v", c)
	}
	if len(c.Entries) != 5 {
		t.Errorf("expected 5 entries, got %d", len(c.Entries))
	}
}

func TestCreateCollection_DuplicateIndicator(t *testing.T) {
	store := collections.NewStore(testDB(t))
	ctx := context.Background()

	seedCollection(t, store, "NY.GDP.MKTP.CD", gdpEntries())

	_, err := store.CreateCollection(ctx, time.Now().UTC(),
		"NY.GDP.MKTP.CD", "GDP (current US$)", gdpEntries())
	if !errors.Is(err, collections.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}

	// The rejected import must leave no rows behind.
	summaries, err := store.ListSummaries(ctx, collections.OrderBy{})
	if err != nil {
		t.Fatalf("ListSummaries: %v", err)
	}
	if len(summaries) != 1 {
		t.Errorf("expected 1 collection after rejected duplicate, got %d", len(summaries))
	}
}

func TestCreateCollection_EmptyEntries(t *testing.T) {
	store := collections.NewStore(testDB(t))

	id := seedCollection(t, store, "SP.POP.TOTL", nil)

	c, err := store.GetCollection(context.Background(), id)
	if err != nil {
		t.Fatalf("GetCollection: %v", err)
	}
	if c.Entries == nil || len(c.Entries) != 0 {
		t.Errorf("expected empty entries slice, got %#v", c.Entries)
	}
}

func TestListSummaries_Ordering(t *testing.T) {
	store := collections.NewStore(testDB(t))
	ctx := context.Background()

	for _, ind := range []string{"B.IND", "C.IND", "A.IND"} {
		seedCollection(t, store, ind, nil)
	}

	order, err := collections.ParseOrderBy("{indicator desc}")
	if err != nil {
		t.Fatalf("ParseOrderBy: %v", err)
	}

	summaries, err := store.ListSummaries(ctx, order)
	if err != nil {
		t.Fatalf("ListSummaries: %v", err)
	}
	if len(summaries) != 3 {
		t.Fatalf("expected 3 summaries, got %d", len(summaries))
	}
	for i, want := range []string{"C.IND", "B.IND", "A.IND"} {
		if summaries[i].Indicator != want {
			t.Errorf("position %d: expected %s, got %s", i, want, summaries[i].Indicator)
		}
	}
}

func TestGetEntry(t *testing.T) {
	store := collections.NewStore(testDB(t))
	ctx := context.Background()

	id := seedCollection(t, store, "NY.GDP.MKTP.CD", gdpEntries())

	entry, err := store.GetEntry(ctx, id, 2016, "Norway")
	if err != nil {
		t.Fatalf("GetEntry: %v", err)
	}
	if entry.Value != 368827242033.47 {
		t.Errorf("unexpected value %v", entry.Value)
	}

	if _, err := store.GetEntry(ctx, id, 2016, "Wakanda"); !errors.Is(err, collections.ErrNotFound) {
		t.Errorf("missing country: expected ErrNotFound, got %v", err)
	}
	if _, err := store.GetEntry(ctx, id, 1999, "Norway"); !errors.Is(err, collections.ErrNotFound) {
		t.Errorf("missing year: expected ErrNotFound, got %v", err)
	}
	if _, err := store.GetEntry(ctx, id+1, 2016, "Norway"); !errors.Is(err, collections.ErrNotFound) {
		t.Errorf("missing collection: expected ErrNotFound, got %v", err)
	}
}

func rankedCountries(entries []models.RankedEntry) []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Country
	}
	return names
}

func TestGetRankedEntries(t *testing.T) {
	store := collections.NewStore(testDB(t))
	ctx := context.Background()

	// Six countries for 2015, values 1..6.
	entries := []models.Entry{
		{Country: "A", Date: 2015, Value: 1},
		{Country: "B", Date: 2015, Value: 2},
		{Country: "C", Date: 2015, Value: 3},
		{Country: "D", Date: 2015, Value: 4},
		{Country: "E", Date: 2015, Value: 5},
		{Country: "F", Date: 2015, Value: 6},
		{Country: "A", Date: 2016, Value: 99},
	}
	id := seedCollection(t, store, "RANK.IND", entries)

	tests := []struct {
		name string
		rank collections.Rank
		want []string
	}{
		{
			name: "top 3 is value descending",
			rank: collections.Rank{Direction: collections.DirectionTop, Limit: 3},
			want: []string{"F", "E", "D"},
		},
		{
			name: "bottom 3 is the smallest values presented descending",
			rank: collections.Rank{Direction: collections.DirectionBottom, Limit: 3},
			want: []string{"C", "B", "A"},
		},
		{
			name: "limit zero is empty, not an error",
			rank: collections.Rank{Direction: collections.DirectionTop, Limit: 0},
			want: []string{},
		},
		{
			name: "limit beyond the data returns everything",
			rank: collections.Rank{Direction: collections.DirectionTop, Limit: 100},
			want: []string{"F", "E", "D", "C", "B", "A"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := store.GetRankedEntries(ctx, id, 2015, tt.rank)
			if err != nil {
				t.Fatalf("GetRankedEntries: %v", err)
			}
			names := rankedCountries(got)
			if len(names) != len(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, names)
			}
			for i := range tt.want {
				if names[i] != tt.want[i] {
					t.Fatalf("expected %v, got %v", tt.want, names)
				}
			}
		})
	}

	t.Run("no ranking returns all entries for the year", func(t *testing.T) {
		got, err := store.GetRankedEntries(ctx, id, 2015, collections.Rank{})
		if err != nil {
			t.Fatalf("GetRankedEntries: %v", err)
		}
		if len(got) != 6 {
			t.Errorf("expected 6 entries, got %d", len(got))
		}
	})

	t.Run("year with no data is empty", func(t *testing.T) {
		got, err := store.GetRankedEntries(ctx, id, 1999,
			collections.Rank{Direction: collections.DirectionTop, Limit: 5})
		if err != nil {
			t.Fatalf("GetRankedEntries: %v", err)
		}
		if got == nil || len(got) != 0 {
			t.Errorf("expected empty slice, got %#v", got)
		}
	})
}

func TestDeleteCollection(t *testing.T) {
	sqlDB := testDB(t)
	store := collections.NewStore(sqlDB)
	ctx := context.Background()

	id := seedCollection(t, store, "NY.GDP.MKTP.CD", gdpEntries())
	keep := seedCollection(t, store, "SP.POP.TOTL", []models.Entry{
		{Country: "Australia", Date: 2016, Value: 24190907},
	})

	found, err := store.DeleteCollection(ctx, id)
	if err != nil {
		t.Fatalf("DeleteCollection: %v", err)
	}
	if !found {
		t.Fatal("expected delete to report found")
	}

	if _, err := store.GetCollection(ctx, id); !errors.Is(err, collections.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}

	// The entry rows must be gone too, not just the collection row.
	var orphans int
	if err := sqlDB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM entries WHERE collection_id = ?", id).Scan(&orphans); err != nil {
		t.Fatalf("count orphans: %v", err)
	}
	if orphans != 0 {
		t.Errorf("expected 0 orphaned entries, got %d", orphans)
	}

	// Other collections are untouched.
	if _, err := store.GetCollection(ctx, keep); err != nil {
		t.Errorf("unrelated collection affected: %v", err)
	}

	// Deleting again is a not-found no-op.
	found, err = store.DeleteCollection(ctx, id)
	if err != nil {
		t.Fatalf("DeleteCollection second time: %v", err)
	}
	if found {
		t.Error("expected second delete to report not found")
	}
}
