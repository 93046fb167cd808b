package listings

import (
	"time"

	"github.com/shopspring/decimal"
)

type Language struct {
	ID         uint   `gorm:"primaryKey;autoIncrement"`
	ExternalID string `gorm:"column:language_id;not null;unique"`
	Title      string
	PrepTitle  string
	OrigTitle  string
	ShortTitle string
	Greeting   string
}

// Seance is a single showtime. Unlike the catalog tables it points at movies,
// cinemas, halls and languages by their synthetic ids.
type Seance struct {
	ID              uint `gorm:"primaryKey;autoIncrement"`
	ExternalID      int  `gorm:"column:seance_id;not null;unique"`
	MovieID         *uint
	CinemaID        *uint
	Date            *time.Time
	Time            *time.Time
	StartTime       *time.Time
	HallID          *uint
	Formats         string
	IsSaleAllowed   *bool
	MinPrice        decimal.NullDecimal `gorm:"type:numeric"`
	MaxPrice        decimal.NullDecimal `gorm:"type:numeric"`
	MaxSeatsInOrder *int
	SubtitleID      *int
	LanguageID      *uint
	GroupName       string
	GroupOrder      *int

	Movie    *Movie    `gorm:"foreignKey:MovieID" json:"-"`
	Cinema   *Cinema   `gorm:"foreignKey:CinemaID" json:"-"`
	Hall     *Hall     `gorm:"foreignKey:HallID" json:"-"`
	Language *Language `gorm:"foreignKey:LanguageID" json:"-"`
}

type Format struct {
	ID          uint   `gorm:"primaryKey;autoIncrement"`
	FormatName  string `gorm:"index"`
	Description string
}

// SeanceFormat is one format tag of a seance. Both SeanceID and FormatName
// are matched by value; seances.formats holds the raw list.
type SeanceFormat struct {
	ID         uint `gorm:"primaryKey;autoIncrement"`
	SeanceID   *int `gorm:"index"`
	FormatName string
}

func (SeanceFormat) TableName() string { return "seance_format" }
