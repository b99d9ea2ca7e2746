package repository

import (
	"database/sql"
)

// requireRow returns notFound when the statement affected no rows.
func requireRow(result sql.Result, notFound error) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return notFound
	}
	return nil
}

// nullIfEmpty stores empty strings as NULL.
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// nullableFloat converts an optional float to a driver value.
func nullableFloat(f *float64) any {
	if f == nil {
		return nil
	}
	return *f
}

// floatPtr converts a nullable column back to an optional float.
func floatPtr(f sql.NullFloat64) *float64 {
	if !f.Valid {
		return nil
	}
	v := f.Float64
	return &v
}
