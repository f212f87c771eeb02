package collections

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// maxRankLimit caps top-N / bottom-N queries. Larger requests are clamped,
// not rejected.
const maxRankLimit = 100

// orderableColumns is the allow-list for order_by expressions. Anything not
// named here is rejected before any SQL is assembled.
var orderableColumns = map[string]bool{
	"id":              true,
	"creation_time":   true,
	"indicator":       true,
	"indicator_value": true,
}

// OrderBy is a validated ORDER BY clause for the collection listing. The
// zero value means natural storage order.
type OrderBy struct {
	clause string
}

// Clause returns the validated SQL text, without the ORDER BY keyword, or ""
// when no ordering was requested.
func (o OrderBy) Clause() string { return o.clause }

// ParseOrderBy validates a raw client order expression such as
// "{id},{creation_time desc}". Literal braces are a client convention and are
// stripped before validation. Each comma-separated term must name an
// allow-listed column, optionally followed by ASC or DESC. The returned
// clause is reassembled from the validated tokens only, never from the raw
// input.
func ParseOrderBy(raw string) (OrderBy, error) {
	stripped := strings.NewReplacer("{", "", "}", "").Replace(raw)
	if strings.TrimSpace(stripped) == "" {
		return OrderBy{}, nil
	}

	var terms []string
	for _, term := range strings.Split(stripped, ",") {
		fields := strings.Fields(term)
		if len(fields) == 0 || len(fields) > 2 {
			return OrderBy{}, fmt.Errorf("%w: %q", ErrInvalidOrder, term)
		}

		column := strings.ToLower(fields[0])
		if !orderableColumns[column] {
			return OrderBy{}, fmt.Errorf("%w: unknown column %q", ErrInvalidOrder, fields[0])
		}

		if len(fields) == 1 {
			terms = append(terms, column)
			continue
		}

		switch strings.ToUpper(fields[1]) {
		case "ASC":
			terms = append(terms, column+" ASC")
		case "DESC":
			terms = append(terms, column+" DESC")
		default:
			return OrderBy{}, fmt.Errorf("%w: bad direction %q", ErrInvalidOrder, fields[1])
		}
	}

	return OrderBy{clause: strings.Join(terms, ", ")}, nil
}

// Direction selects which end of the value range a ranked query returns.
type Direction int

const (
	// DirectionNone returns all entries for the year, unordered.
	DirectionNone Direction = iota
	// DirectionTop returns the N greatest values.
	DirectionTop
	// DirectionBottom returns the N smallest values.
	DirectionBottom
)

// Rank is a parsed ranking token. The zero value means no ranking.
type Rank struct {
	Direction Direction
	Limit     int
}

// ParseRank interprets a raw ranking token such as "+10", "10" or "-10".
// Literal angle brackets are stripped first. A leading '+' or an all-digit
// token selects the top N; anything else drops its leading character and
// selects the bottom N. N is clamped to maxRankLimit; "0" is a valid top-0
// request and yields an empty result. A token whose number does not parse as
// a non-negative integer is ErrInvalidRank (a negative LIMIT would mean
// "unlimited" to SQLite and silently bypass the clamp).
func ParseRank(raw string) (Rank, error) {
	token := strings.NewReplacer("<", "", ">", "").Replace(raw)
	if token == "" {
		return Rank{}, nil
	}

	direction := DirectionBottom
	number := token
	if strings.HasPrefix(token, "+") || allDigits(token) {
		direction = DirectionTop
		number = strings.TrimPrefix(token, "+")
	} else {
		_, size := utf8.DecodeRuneInString(token)
		number = token[size:]
	}

	n, err := strconv.Atoi(number)
	if err != nil || n < 0 {
		return Rank{}, fmt.Errorf("%w: %q", ErrInvalidRank, raw)
	}
	if n > maxRankLimit {
		n = maxRankLimit
	}

	return Rank{Direction: direction, Limit: n}, nil
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
