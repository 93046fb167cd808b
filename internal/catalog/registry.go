// Package catalog holds the explicit registry of table models that the schema
// store materialises. A registry is built once at startup and handed to the
// code that needs it; there is no package-level registration.
//
// Besides the models themselves the registry records relations between
// tables. Foreign keys come from the gorm tags on the models and are enforced
// by the store. Cross-references are plain integer columns that point at
// another table by matching raw ids; they are documented here and never
// turned into constraints.
package catalog

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"gorm.io/gorm/schema"
)

var (
	ErrDuplicateTable   = errors.New("table registered twice")
	ErrUnknownReference = errors.New("foreign key references unregistered table")
)

type Column struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	NotNull    bool   `json:"notNull"`
	PrimaryKey bool   `json:"primaryKey"`
	Unique     bool   `json:"unique"`
}

type Table struct {
	Name        string     `json:"name"`
	Model       any        `json:"-"`
	Columns     []Column   `json:"columns"`
	ForeignKeys []Relation `json:"foreignKeys,omitempty"`
}

// ColumnNames returns the declared column names in declaration order.
func (t Table) ColumnNames() []string {
	names := make([]string, 0, len(t.Columns))
	for _, c := range t.Columns {
		names = append(names, c.Name)
	}
	return names
}

type Relation struct {
	From       string `json:"from"`
	FromColumn string `json:"fromColumn"`
	To         string `json:"to"`
	ToColumn   string `json:"toColumn"`
	Enforced   bool   `json:"enforced"`
	Note       string `json:"note,omitempty"`
}

func (r Relation) String() string {
	arrow := "->"
	if !r.Enforced {
		arrow = "~>"
	}
	return fmt.Sprintf("%s.%s %s %s.%s", r.From, r.FromColumn, arrow, r.To, r.ToColumn)
}

type Registry struct {
	namer      schema.Namer
	models     []any
	references []Relation

	once   sync.Once
	tables []Table
	err    error
}

func New() *Registry {
	return &Registry{namer: schema.NamingStrategy{}}
}

// Register appends models in creation order: a table must be registered after
// every table its foreign keys point at.
func (r *Registry) Register(models ...any) {
	r.models = append(r.models, models...)
}

// Reference records an unenforced cross-reference between two columns.
func (r *Registry) Reference(from, fromColumn, to, toColumn, note string) {
	r.references = append(r.references, Relation{
		From:       from,
		FromColumn: fromColumn,
		To:         to,
		ToColumn:   toColumn,
		Note:       note,
	})
}

func (r *Registry) Models() []any {
	return append([]any(nil), r.models...)
}

// Tables parses every registered model and returns the declared table shapes
// in registration order. The result is computed once; models registered after
// the first call are not seen.
func (r *Registry) Tables() ([]Table, error) {
	r.once.Do(func() {
		r.tables, r.err = r.parse()
	})
	return r.tables, r.err
}

// Table looks up a declared table by name.
func (r *Registry) Table(name string) (Table, bool, error) {
	tables, err := r.Tables()
	if err != nil {
		return Table{}, false, err
	}
	for _, t := range tables {
		if t.Name == name {
			return t, true, nil
		}
	}
	return Table{}, false, nil
}

// Relations returns every enforced foreign key and every cross-reference,
// sorted by source table and column.
func (r *Registry) Relations() ([]Relation, error) {
	tables, err := r.Tables()
	if err != nil {
		return nil, err
	}
	var out []Relation
	for _, t := range tables {
		out = append(out, t.ForeignKeys...)
	}
	out = append(out, r.references...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].FromColumn < out[j].FromColumn
	})
	return out, nil
}

func (r *Registry) parse() ([]Table, error) {
	cache := &sync.Map{}
	seen := make(map[string]bool, len(r.models))
	tables := make([]Table, 0, len(r.models))

	for _, m := range r.models {
		s, err := schema.Parse(m, cache, r.namer)
		if err != nil {
			return nil, fmt.Errorf("parse %T: %w", m, err)
		}
		if seen[s.Table] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateTable, s.Table)
		}

		t := Table{Name: s.Table, Model: m}
		for _, f := range s.Fields {
			if f.DBName == "" || f.IgnoreMigration {
				continue
			}
			t.Columns = append(t.Columns, Column{
				Name:       f.DBName,
				Type:       string(f.DataType),
				NotNull:    f.NotNull || f.PrimaryKey,
				PrimaryKey: f.PrimaryKey,
				Unique:     f.Unique,
			})
		}

		fks, err := foreignKeys(s)
		if err != nil {
			return nil, err
		}
		for _, fk := range fks {
			if !seen[fk.To] && fk.To != s.Table {
				return nil, fmt.Errorf("%w: %s", ErrUnknownReference, fk)
			}
		}
		t.ForeignKeys = fks

		seen[s.Table] = true
		tables = append(tables, t)
	}

	return tables, nil
}

func foreignKeys(s *schema.Schema) ([]Relation, error) {
	var out []Relation
	for _, rel := range s.Relationships.Relations {
		if rel.Field.IgnoreMigration {
			continue
		}
		c := rel.ParseConstraint()
		if c == nil || c.Schema != s {
			continue
		}
		if len(c.ForeignKeys) != 1 || len(c.References) != 1 {
			return nil, fmt.Errorf("%s: composite foreign key on %s is not supported", s.Table, rel.Name)
		}
		out = append(out, Relation{
			From:       s.Table,
			FromColumn: c.ForeignKeys[0].DBName,
			To:         c.ReferenceSchema.Table,
			ToColumn:   c.References[0].DBName,
			Enforced:   true,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FromColumn < out[j].FromColumn })
	return out, nil
}
