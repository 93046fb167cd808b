package database

import (
	"context"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/Ponloe/kinohod-store/internal/catalog"
)

// Migrate creates every table declared in reg that the store does not have
// yet. Existing tables are never dropped or altered: if one lacks a declared
// column the whole run is rolled back with a *ConflictError. Only missing
// columns are detected; a column whose type drifted is accepted as is.
//
// Migrate reads and writes no rows and is safe to call any number of times.
func Migrate(ctx context.Context, db *gorm.DB, reg *catalog.Registry, log *slog.Logger) error {
	tables, err := reg.Tables()
	if err != nil {
		return fmt.Errorf("declared schema: %w", err)
	}

	log.Info("initializing schema", "tables", len(tables))
	created := 0
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m := tx.Migrator()
		for _, t := range tables {
			ok, err := hasTable(tx, t.Name)
			if err != nil {
				return err
			}
			if ok {
				st, err := Inspect(ctx, tx, t)
				if err != nil {
					return err
				}
				if len(st.Missing) > 0 {
					return &ConflictError{Table: t.Name, Missing: st.Missing}
				}
				continue
			}
			if err := m.CreateTable(t.Model); err != nil {
				return fmt.Errorf("create table %s: %w", t.Name, err)
			}
			created++
			log.Debug("created table", "table", t.Name)
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Info("schema ready", "created", created, "existing", len(tables)-created)
	return nil
}
