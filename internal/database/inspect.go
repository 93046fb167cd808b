package database

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/Ponloe/kinohod-store/internal/catalog"
)

type TableStatus struct {
	Name    string   `json:"name"`
	Present bool     `json:"present"`
	Columns []string `json:"columns,omitempty"`
	Missing []string `json:"missing,omitempty"`
}

// Inspect compares one declared table with what the store holds.
func Inspect(ctx context.Context, db *gorm.DB, t catalog.Table) (TableStatus, error) {
	tx := db.WithContext(ctx)
	st := TableStatus{Name: t.Name}
	ok, err := hasTable(tx, t.Name)
	if err != nil {
		return st, err
	}
	if !ok {
		st.Missing = t.ColumnNames()
		return st, nil
	}
	st.Present = true

	cols, err := tx.Migrator().ColumnTypes(t.Name)
	if err != nil {
		return st, fmt.Errorf("inspect table %s: %w", t.Name, err)
	}
	present := make(map[string]bool, len(cols))
	for _, c := range cols {
		st.Columns = append(st.Columns, c.Name())
		present[strings.ToLower(c.Name())] = true
	}
	for _, c := range t.Columns {
		if !present[strings.ToLower(c.Name)] {
			st.Missing = append(st.Missing, c.Name)
		}
	}
	return st, nil
}

// hasTable reports whether the store holds table name. Unlike
// Migrator().HasTable it returns the query error instead of false.
func hasTable(tx *gorm.DB, name string) (bool, error) {
	var q string
	switch tx.Dialector.Name() {
	case "postgres":
		q = "SELECT count(*) FROM information_schema.tables WHERE table_schema = CURRENT_SCHEMA() AND table_name = ? AND table_type = 'BASE TABLE'"
	default:
		q = "SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name = ?"
	}
	var n int64
	if err := tx.Raw(q, name).Scan(&n).Error; err != nil {
		return false, fmt.Errorf("%w: look up table %s: %w", ErrStorageUnavailable, name, err)
	}
	return n > 0, nil
}

// InspectAll runs Inspect over every table in reg.
func InspectAll(ctx context.Context, db *gorm.DB, reg *catalog.Registry) ([]TableStatus, error) {
	tables, err := reg.Tables()
	if err != nil {
		return nil, fmt.Errorf("declared schema: %w", err)
	}
	out := make([]TableStatus, 0, len(tables))
	for _, t := range tables {
		st, err := Inspect(ctx, db, t)
		if err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	return out, nil
}
