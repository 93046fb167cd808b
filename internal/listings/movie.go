package listings

import (
	"time"

	"github.com/shopspring/decimal"
)

type Distributor struct {
	ID              uint `gorm:"primaryKey;autoIncrement"`
	ExternalID      int  `gorm:"column:distributor_id;not null;unique"`
	DistributorName string
}

// Movie mirrors the API's movie info. Countries, Producers, Companies,
// Directors, Actors and Genres are the raw comma lists; the join tables hold
// the normalized links. Trailers, Images, Poster and PosterLandscape are raw
// ids into videos and images.
type Movie struct {
	ID                 uint `gorm:"primaryKey;autoIncrement"`
	ExternalID         int  `gorm:"column:movie_id;not null;unique"`
	Title              string
	Duration           *int
	OriginalTitle      string
	ProductionYear     *int
	PremiereDateRussia *time.Time          `gorm:"type:date"`
	PremiereDateWorld  *time.Time          `gorm:"type:date"`
	Budget             decimal.NullDecimal `gorm:"type:numeric"`
	Countries          string
	Producers          string
	Companies          string
	Directors          string
	Actors             string
	Genres             string
	AnnotationShort    string
	AnnotationFull     string
	AgeRestriction     string
	GrossRevenueRus    decimal.NullDecimal `gorm:"type:numeric"`
	GrossRevenueWorld  decimal.NullDecimal `gorm:"type:numeric"`
	Trailers           *int
	Images             *int
	Rating             decimal.NullDecimal `gorm:"type:numeric"`
	ImdbID             string
	ExternalTrailer    string
	Poster             *int
	PosterLandscape    *int
	CountScreens       *int
	CountVotes         *int
	CountComments      *int
	Weight             *int
	IsDolbyAtmos       *bool
	IsImax             *bool
	Is4dx              *bool `gorm:"column:is4dx"`
	IsPresale          *bool
	DistributorID      *int

	Distributor *Distributor `gorm:"foreignKey:DistributorID;references:ExternalID" json:"-"`

	GenreList    []Genre    `gorm:"many2many:movies_genres;foreignKey:ExternalID;joinForeignKey:MovieID;references:ExternalID;joinReferences:GenreID" json:"-"`
	CompanyList  []Company  `gorm:"many2many:movies_companies;foreignKey:ExternalID;joinForeignKey:MovieID;references:FieldID;joinReferences:CompanyID" json:"-"`
	ActorList    []Actor    `gorm:"many2many:movies_actors;foreignKey:ExternalID;joinForeignKey:MovieID;references:FieldID;joinReferences:ActorID" json:"-"`
	ProducerList []Producer `gorm:"many2many:movies_producers;foreignKey:ExternalID;joinForeignKey:MovieID;references:FieldID;joinReferences:ProducerID" json:"-"`
	DirectorList []Director `gorm:"many2many:movies_directors;foreignKey:ExternalID;joinForeignKey:MovieID;references:FieldID;joinReferences:DirectorID" json:"-"`
}

type Genre struct {
	ID         uint   `gorm:"primaryKey;autoIncrement"`
	ExternalID string `gorm:"column:genre_id;not null;unique"`
	GenreName  string
}

// Dictionary is the shape shared by the people and company tables that are
// built from the movie lists rather than fetched directly.
type Dictionary struct {
	ID      uint `gorm:"primaryKey;autoIncrement"`
	FieldID int  `gorm:"not null;unique"`
	Name    string
}

type Company struct{ Dictionary }

type Actor struct{ Dictionary }

type Producer struct{ Dictionary }

type Director struct{ Dictionary }

type Video struct {
	ID            uint `gorm:"primaryKey;autoIncrement"`
	Filename      *int
	Duration      decimal.NullDecimal `gorm:"type:numeric"`
	ContentType   string
	TrailerSource *int
	TrailerID     *int `gorm:"index"`
}

// Image rows carry one owner column per kind of owner. Exactly which one is
// set depends on where the image came from; none is a foreign key.
type Image struct {
	ID                uint   `gorm:"primaryKey;autoIncrement"`
	RGB               string `gorm:"not null"`
	Name              string `gorm:"not null"`
	CinemaID          *int   `gorm:"index"`
	MovieID           *int   `gorm:"index"`
	PosterLandMovieID *int
	PosterMovieID     *int
	ImageMovieID      *int
	PreviewTrailerID  *int
	SourceTrailerID   *int
	VideoID           *int
}
