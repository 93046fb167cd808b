package listings

// Join tables. Each one is keyed by the pair of domain ids it links and has
// no synthetic id of its own.

type MovieGenre struct {
	MovieID int    `gorm:"primaryKey;autoIncrement:false"`
	GenreID string `gorm:"primaryKey"`

	Movie *Movie `gorm:"foreignKey:MovieID;references:ExternalID" json:"-"`
	Genre *Genre `gorm:"foreignKey:GenreID;references:ExternalID" json:"-"`
}

func (MovieGenre) TableName() string { return "movies_genres" }

type MovieCompany struct {
	MovieID   int `gorm:"primaryKey;autoIncrement:false"`
	CompanyID int `gorm:"primaryKey;autoIncrement:false"`

	Movie   *Movie   `gorm:"foreignKey:MovieID;references:ExternalID" json:"-"`
	Company *Company `gorm:"foreignKey:CompanyID;references:FieldID" json:"-"`
}

func (MovieCompany) TableName() string { return "movies_companies" }

type MovieActor struct {
	MovieID int `gorm:"primaryKey;autoIncrement:false"`
	ActorID int `gorm:"primaryKey;autoIncrement:false"`

	Movie *Movie `gorm:"foreignKey:MovieID;references:ExternalID" json:"-"`
	Actor *Actor `gorm:"foreignKey:ActorID;references:FieldID" json:"-"`
}

func (MovieActor) TableName() string { return "movies_actors" }

type MovieProducer struct {
	MovieID    int `gorm:"primaryKey;autoIncrement:false"`
	ProducerID int `gorm:"primaryKey;autoIncrement:false"`

	Movie    *Movie    `gorm:"foreignKey:MovieID;references:ExternalID" json:"-"`
	Producer *Producer `gorm:"foreignKey:ProducerID;references:FieldID" json:"-"`
}

func (MovieProducer) TableName() string { return "movies_producers" }

type MovieDirector struct {
	MovieID    int `gorm:"primaryKey;autoIncrement:false"`
	DirectorID int `gorm:"primaryKey;autoIncrement:false"`

	Movie    *Movie    `gorm:"foreignKey:MovieID;references:ExternalID" json:"-"`
	Director *Director `gorm:"foreignKey:DirectorID;references:FieldID" json:"-"`
}

func (MovieDirector) TableName() string { return "movies_directors" }

// MovieCountry links a movie to a country name; there is no countries table.
type MovieCountry struct {
	MovieID int    `gorm:"primaryKey;autoIncrement:false"`
	Country string `gorm:"primaryKey"`

	Movie *Movie `gorm:"foreignKey:MovieID;references:ExternalID" json:"-"`
}

func (MovieCountry) TableName() string { return "movies_countries" }

type CinemaGoodies struct {
	CinemaID  int    `gorm:"primaryKey;autoIncrement:false"`
	GoodTitle string `gorm:"primaryKey"`

	Cinema  *Cinema  `gorm:"foreignKey:CinemaID;references:ExternalID" json:"-"`
	Goodies *Goodies `gorm:"foreignKey:GoodTitle;references:Title" json:"-"`
}

func (CinemaGoodies) TableName() string { return "goodies_cinema" }

// SubwayStationCinema is the only join table with a payload: the walking
// distance from the station to the cinema.
type SubwayStationCinema struct {
	CinemaID int `gorm:"primaryKey;autoIncrement:false"`
	SubwayID int `gorm:"primaryKey;autoIncrement:false"`
	Distance *int

	Cinema *Cinema        `gorm:"foreignKey:CinemaID;references:ExternalID" json:"-"`
	Subway *SubwayStation `gorm:"foreignKey:SubwayID;references:ExternalID" json:"-"`
}

func (SubwayStationCinema) TableName() string { return "subwaystations_cinemas" }
