// Package models contains shared domain structs used across packages.
package models

import "time"

// HealthResponse is returned by /healthz and /readyz endpoints.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// CollectionSummary identifies a cached collection without its entries.
type CollectionSummary struct {
	ID           int64     `json:"id"`
	CreationTime time.Time `json:"creation_time"`
	Indicator    string    `json:"indicator"`
}

// Collection is one cached import of an upstream indicator's time series.
type Collection struct {
	ID             int64     `json:"id"`
	CreationTime   time.Time `json:"creation_time"`
	Indicator      string    `json:"indicator"`
	IndicatorValue string    `json:"indicator_value"`
	Entries        []Entry   `json:"entries"`
}

// Entry is one (country, year, value) observation belonging to a Collection.
type Entry struct {
	Country string  `json:"country"`
	Date    int     `json:"date"`
	Value   float64 `json:"value"`
}

// RankedEntry is one row of a top-N / bottom-N query result.
type RankedEntry struct {
	Country string  `json:"country"`
	Value   float64 `json:"value"`
}
