package model

import "time"

// Row is a single result row returned by a catalog query, keyed by column
// name. Values are normalized by the executor to string, int64, float64,
// time.Time, bool or nil.
type Row map[string]any

// Str returns the value under key as a string, or "" when absent or not a
// string.
func (r Row) Str(key string) string {
	s, _ := r[key].(string)
	return s
}

// Int returns the value under key as an int, accepting the integer and float
// widths the database drivers produce.
func (r Row) Int(key string) int {
	switch v := r[key].(type) {
	case int:
		return v
	case int32:
		return int(v)
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}

// Float returns the value under key as a float64.
func (r Row) Float(key string) float64 {
	switch v := r[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	default:
		return 0
	}
}

// Time returns the value under key as a time.Time.
func (r Row) Time(key string) (time.Time, bool) {
	t, ok := r[key].(time.Time)
	return t, ok
}
