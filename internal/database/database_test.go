package database

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Ponloe/kinohod-store/internal/catalog"
	"github.com/Ponloe/kinohod-store/internal/config"
	"github.com/Ponloe/kinohod-store/internal/listings"
)

type columnInfo struct {
	CID     int     `gorm:"column:cid"`
	Name    string  `gorm:"column:name"`
	Type    string  `gorm:"column:type"`
	NotNull int     `gorm:"column:notnull"`
	Default *string `gorm:"column:dflt_value"`
	PK      int     `gorm:"column:pk"`
}

type foreignKeyInfo struct {
	Table string `gorm:"column:table"`
	From  string `gorm:"column:from"`
	To    string `gorm:"column:to"`
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sqliteConfig(path string) config.Config {
	var cfg config.Config
	cfg.DB.Driver = config.DriverSQLite
	cfg.DB.Path = path
	cfg.DB.LogLevel = "silent"
	return cfg
}

func openTemp(t *testing.T) (*gorm.DB, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kinohod.db")
	db, err := Open(sqliteConfig(path), discardLogger())
	require.NoError(t, err)
	t.Cleanup(func() { Close(db) })
	return db, path
}

func migrate(t *testing.T, db *gorm.DB, reg *catalog.Registry) {
	t.Helper()
	require.NoError(t, Migrate(context.Background(), db, reg, discardLogger()))
}

func storeTables(t *testing.T, db *gorm.DB) []string {
	t.Helper()
	var names []string
	err := db.Raw("SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name").
		Scan(&names).Error
	require.NoError(t, err)
	return names
}

func tableInfo(t *testing.T, db *gorm.DB, table string) map[string]columnInfo {
	t.Helper()
	var cols []columnInfo
	require.NoError(t, db.Raw("PRAGMA table_info(" + table + ")").Scan(&cols).Error)
	out := make(map[string]columnInfo, len(cols))
	for _, c := range cols {
		out[c.Name] = c
	}
	return out
}

func declaredNames(t *testing.T, reg *catalog.Registry) []string {
	t.Helper()
	tables, err := reg.Tables()
	require.NoError(t, err)
	var names []string
	for _, tbl := range tables {
		names = append(names, tbl.Name)
	}
	sort.Strings(names)
	return names
}

func TestMigrateCreatesStoreFile(t *testing.T) {
	db, path := openTemp(t)
	reg := listings.NewRegistry()

	migrate(t, db, reg)

	_, err := os.Stat(path)
	require.NoError(t, err)
	if diff := cmp.Diff(declaredNames(t, reg), storeTables(t, db)); diff != "" {
		t.Errorf("tables mismatch (-declared +store):\n%s", diff)
	}

	var rows int64
	require.NoError(t, db.Table("movies").Count(&rows).Error)
	assert.Zero(t, rows)
}

func TestMigrateIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kinohod.db")
	db, err := Open(sqliteConfig(path), discardLogger())
	require.NoError(t, err)
	reg := listings.NewRegistry()

	migrate(t, db, reg)
	first := storeTables(t, db)
	var firstSQL []string
	require.NoError(t, db.Raw("SELECT sql FROM sqlite_master WHERE sql IS NOT NULL ORDER BY name").Scan(&firstSQL).Error)

	migrate(t, db, reg)
	require.NoError(t, Close(db))

	// a fresh connection and registry see the same store
	db2, err := Open(sqliteConfig(path), discardLogger())
	require.NoError(t, err)
	defer Close(db2)
	migrate(t, db2, listings.NewRegistry())

	var secondSQL []string
	require.NoError(t, db2.Raw("SELECT sql FROM sqlite_master WHERE sql IS NOT NULL ORDER BY name").Scan(&secondSQL).Error)

	assert.Equal(t, first, storeTables(t, db2))
	if diff := cmp.Diff(firstSQL, secondSQL); diff != "" {
		t.Errorf("schema changed on re-run (-first +second):\n%s", diff)
	}
}

func TestMigrateColumnFidelity(t *testing.T) {
	db, _ := openTemp(t)
	migrate(t, db, listings.NewRegistry())

	tests := []struct {
		table    string
		notNull  []string
		nullable []string
	}{
		{
			table:    "movies",
			notNull:  []string{"movie_id"},
			nullable: []string{"title", "duration", "premiere_date_russia", "budget", "rating", "count_votes", "is_dolby_atmos", "is_imax", "is4dx", "is_presale", "distributor_id"},
		},
		{
			table:    "cinemas",
			notNull:  []string{"cinema_id"},
			nullable: []string{"title", "address", "mall", "hall_count", "subway_stations", "goodies", "city_id", "network_id", "location", "photo", "phones"},
		},
		{
			table:    "seances",
			notNull:  []string{"seance_id"},
			nullable: []string{"movie_id", "cinema_id", "hall_id", "date", "time", "start_time", "min_price", "max_price", "max_seats_in_order", "language_id", "group_name", "group_order"},
		},
		{
			table:   "locations",
			notNull: []string{"latitude", "longitude"},
		},
		{
			table:   "images",
			notNull: []string{"rgb", "name"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.table, func(t *testing.T) {
			cols := tableInfo(t, db, tt.table)

			id, ok := cols["id"]
			require.True(t, ok, "synthetic id missing")
			assert.Equal(t, 1, id.PK)

			for _, name := range tt.notNull {
				c, ok := cols[name]
				if assert.True(t, ok, "column %s missing", name) {
					assert.Equal(t, 1, c.NotNull, "column %s should be NOT NULL", name)
				}
			}
			for _, name := range tt.nullable {
				c, ok := cols[name]
				if assert.True(t, ok, "column %s missing", name) {
					assert.Equal(t, 0, c.NotNull, "column %s should be nullable", name)
				}
			}
		})
	}
}

func TestMigrateJoinTableShape(t *testing.T) {
	db, _ := openTemp(t)
	migrate(t, db, listings.NewRegistry())

	tests := map[string][]string{
		"movies_genres":          {"movie_id", "genre_id"},
		"movies_companies":       {"movie_id", "company_id"},
		"movies_actors":          {"movie_id", "actor_id"},
		"movies_producers":       {"movie_id", "producer_id"},
		"movies_directors":       {"movie_id", "director_id"},
		"movies_countries":       {"movie_id", "country"},
		"goodies_cinema":         {"cinema_id", "good_title"},
		"subwaystations_cinemas": {"cinema_id", "subway_id", "distance"},
	}

	for table, want := range tests {
		t.Run(table, func(t *testing.T) {
			var cols []columnInfo
			require.NoError(t, db.Raw("PRAGMA table_info("+table+")").Scan(&cols).Error)
			got := make([]string, 0, len(cols))
			for _, c := range cols {
				got = append(got, c.Name)
			}
			assert.ElementsMatch(t, want, got)
		})
	}
}

func TestMigrateForeignKeys(t *testing.T) {
	db, _ := openTemp(t)
	migrate(t, db, listings.NewRegistry())

	var fks []foreignKeyInfo
	require.NoError(t, db.Raw("PRAGMA foreign_key_list(cinemas)").Scan(&fks).Error)
	assert.ElementsMatch(t, []foreignKeyInfo{
		{Table: "cities", From: "city_id", To: "city_id"},
		{Table: "networksinfo", From: "network_id", To: "network_id"},
	}, fks)

	fks = nil
	require.NoError(t, db.Raw("PRAGMA foreign_key_list(locations)").Scan(&fks).Error)
	assert.Empty(t, fks, "locations only cross-references its owners")

	err := db.Exec("INSERT INTO halls (hall_id, cinema_id) VALUES (1, 404)").Error
	assert.Error(t, err, "hall pointing at an unknown cinema must be rejected")

	require.NoError(t, db.Exec("INSERT INTO cinemas (cinema_id) VALUES (404)").Error)
	require.NoError(t, db.Exec("INSERT INTO halls (hall_id, cinema_id) VALUES (1, 404)").Error)
}

func TestOpenMissingParent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "kinohod.db")

	_, err := Open(sqliteConfig(path), discardLogger())
	require.ErrorIs(t, err, ErrStorageUnavailable)

	_, statErr := os.Stat(filepath.Dir(path))
	assert.ErrorIs(t, statErr, os.ErrNotExist)
}

func TestOpenParentIsFile(t *testing.T) {
	parent := filepath.Join(t.TempDir(), "plain")
	require.NoError(t, os.WriteFile(parent, []byte("x"), 0o644))

	_, err := Open(sqliteConfig(filepath.Join(parent, "kinohod.db")), discardLogger())
	require.ErrorIs(t, err, ErrStorageUnavailable)
}

func TestMigrateConflict(t *testing.T) {
	db, _ := openTemp(t)
	require.NoError(t, db.Exec("CREATE TABLE movies (id integer PRIMARY KEY, movie_id integer NOT NULL)").Error)

	err := Migrate(context.Background(), db, listings.NewRegistry(), discardLogger())
	require.ErrorIs(t, err, ErrSchemaConflict)

	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "movies", conflict.Table)
	assert.Contains(t, conflict.Missing, "title")
	assert.NotContains(t, conflict.Missing, "movie_id")

	// the failed run leaves no partial schema behind
	assert.Equal(t, []string{"movies"}, storeTables(t, db))
}

func TestMigrateToleratesExtraColumns(t *testing.T) {
	db, _ := openTemp(t)
	reg := listings.NewRegistry()
	migrate(t, db, reg)

	require.NoError(t, db.Exec("ALTER TABLE genres ADD COLUMN legacy text").Error)
	migrate(t, db, reg)

	assert.Contains(t, tableInfo(t, db, "genres"), "legacy")
}

func TestInspect(t *testing.T) {
	db, _ := openTemp(t)
	reg := listings.NewRegistry()

	before, err := InspectAll(context.Background(), db, reg)
	require.NoError(t, err)
	for _, st := range before {
		assert.False(t, st.Present, st.Name)
		assert.NotEmpty(t, st.Missing, st.Name)
	}

	migrate(t, db, reg)

	after, err := InspectAll(context.Background(), db, reg)
	require.NoError(t, err)
	require.Len(t, after, len(before))
	for _, st := range after {
		assert.True(t, st.Present, st.Name)
		assert.Empty(t, st.Missing, st.Name)
	}
}

func TestInspectClosedStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kinohod.db")
	db, err := Open(sqliteConfig(path), discardLogger())
	require.NoError(t, err)
	reg := listings.NewRegistry()
	migrate(t, db, reg)
	require.NoError(t, Close(db))

	_, err = InspectAll(context.Background(), db, reg)
	require.ErrorIs(t, err, ErrStorageUnavailable)

	err = Migrate(context.Background(), db, reg, discardLogger())
	require.Error(t, err)
}
