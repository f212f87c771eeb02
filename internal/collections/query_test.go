package collections_test

import (
	"errors"
	"testing"

	"github.com/z5116890/World-Bank-Economic-Indicators-REST-API/internal/collections"
)

func TestParseOrderBy(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		clause string
		err    error
	}{
		{name: "empty", raw: "", clause: ""},
		{name: "braces only", raw: "{}", clause: ""},
		{name: "single column", raw: "id", clause: "id"},
		{name: "braced column", raw: "{creation_time}", clause: "creation_time"},
		{name: "column with direction", raw: "{id desc}", clause: "id DESC"},
		{name: "lowercase asc", raw: "indicator asc", clause: "indicator ASC"},
		{name: "multiple terms", raw: "{indicator},{creation_time desc}", clause: "indicator, creation_time DESC"},
		{name: "mixed case column", raw: "Creation_Time DESC", clause: "creation_time DESC"},
		{name: "unknown column", raw: "{name}", err: collections.ErrInvalidOrder},
		{name: "injection attempt", raw: "id; drop table collections", err: collections.ErrInvalidOrder},
		{name: "bad direction", raw: "id sideways", err: collections.ErrInvalidOrder},
		{name: "too many tokens", raw: "id desc nulls", err: collections.ErrInvalidOrder},
		{name: "empty term", raw: "id,,indicator", err: collections.ErrInvalidOrder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order, err := collections.ParseOrderBy(tt.raw)
			if tt.err != nil {
				if !errors.Is(err, tt.err) {
					t.Fatalf("expected %v, got %v", tt.err, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseOrderBy(%q): %v", tt.raw, err)
			}
			if order.Clause() != tt.clause {
				t.Errorf("expected clause %q, got %q", tt.clause, order.Clause())
			}
		})
	}
}

func TestParseRank(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		direction collections.Direction
		limit     int
		err       error
	}{
		{name: "empty", raw: "", direction: collections.DirectionNone},
		{name: "brackets only", raw: "<>", direction: collections.DirectionNone},
		{name: "plain digits are top", raw: "3", direction: collections.DirectionTop, limit: 3},
		{name: "explicit plus", raw: "+3", direction: collections.DirectionTop, limit: 3},
		{name: "angle brackets stripped", raw: "<+3>", direction: collections.DirectionTop, limit: 3},
		{name: "minus is bottom", raw: "-3", direction: collections.DirectionBottom, limit: 3},
		{name: "zero is top", raw: "0", direction: collections.DirectionTop, limit: 0},
		{name: "plus zero", raw: "+0", direction: collections.DirectionTop, limit: 0},
		{name: "minus zero", raw: "-0", direction: collections.DirectionBottom, limit: 0},
		{name: "top clamps at 100", raw: "150", direction: collections.DirectionTop, limit: 100},
		{name: "bottom clamps at 100", raw: "-150", direction: collections.DirectionBottom, limit: 100},
		{name: "bare plus", raw: "+", err: collections.ErrInvalidRank},
		{name: "bare minus", raw: "-", err: collections.ErrInvalidRank},
		{name: "letters", raw: "abc", err: collections.ErrInvalidRank},
		{name: "negative top", raw: "+-3", err: collections.ErrInvalidRank},
		{name: "negative bottom", raw: "--3", err: collections.ErrInvalidRank},
		{name: "fractional", raw: "2.5", err: collections.ErrInvalidRank},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rank, err := collections.ParseRank(tt.raw)
			if tt.err != nil {
				if !errors.Is(err, tt.err) {
					t.Fatalf("expected %v, got %v", tt.err, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseRank(%q): %v", tt.raw, err)
			}
			if rank.Direction != tt.direction {
				t.Errorf("expected direction %v, got %v", tt.direction, rank.Direction)
			}
			if rank.Limit != tt.limit {
				t.Errorf("expected limit %d, got %d", tt.limit, rank.Limit)
			}
		})
	}
}
