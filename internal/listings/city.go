package listings

import (
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type City struct {
	ID         uint `gorm:"primaryKey;autoIncrement"`
	ExternalID int  `gorm:"column:city_id;not null;unique"`
	Title      string
	Alias      string
	UTCOffset  *int `gorm:"column:utc_offset"`
	Location   *int
}

// BeforeCreate fills an empty alias from the title.
func (c *City) BeforeCreate(tx *gorm.DB) error {
	if c.Alias == "" && c.Title != "" {
		c.Alias = slug.Make(c.Title)
	}
	return nil
}

type SubwayStation struct {
	ID         uint `gorm:"primaryKey;autoIncrement"`
	ExternalID int  `gorm:"column:subway_id;not null;unique"`
	Title      string
	Line       string
	Color      string
	Location   *int
	CityID     *int

	City *City `gorm:"foreignKey:CityID;references:ExternalID" json:"-"`
}

func (SubwayStation) TableName() string { return "subwaystations" }

// Location is matched to its owner through whichever of CinemaID, CityID or
// SubwayID is set. None of them is a foreign key.
type Location struct {
	ID        uint            `gorm:"primaryKey;autoIncrement"`
	Latitude  decimal.Decimal `gorm:"type:numeric;not null"`
	Longitude decimal.Decimal `gorm:"type:numeric;not null"`
	CinemaID  *int            `gorm:"index"`
	CityID    *int            `gorm:"index"`
	SubwayID  *int            `gorm:"index"`
}
