package listings

// NetworkInfo is a cinema chain.
type NetworkInfo struct {
	ID         uint   `gorm:"primaryKey;autoIncrement"`
	ExternalID string `gorm:"column:network_id;not null;unique"`
	Title      string
	IsSale     *bool
}

func (NetworkInfo) TableName() string { return "networksinfo" }

// Cinema keeps the API's subway and goodies lists as denormalized strings;
// the normalized forms live in subwaystations_cinemas and goodies_cinema.
// Location, Photo and Phones point at their tables by raw id only.
type Cinema struct {
	ID             uint `gorm:"primaryKey;autoIncrement"`
	ExternalID     int  `gorm:"column:cinema_id;not null;unique"`
	Title          string
	ShortTitle     string
	Description    string
	Website        string
	CityID         *int
	Address        string
	Location       *int
	NetworkID      *string
	IsSale         *bool
	Mall           string
	TimeToRefund   *int
	HallCount      *int
	SubwayStations string
	Goodies        string
	Photo          *int
	Phones         *int

	City    *City        `gorm:"foreignKey:CityID;references:ExternalID" json:"-"`
	Network *NetworkInfo `gorm:"foreignKey:NetworkID;references:ExternalID" json:"-"`

	GoodiesList []Goodies       `gorm:"many2many:goodies_cinema;foreignKey:ExternalID;joinForeignKey:CinemaID;references:Title;joinReferences:GoodTitle" json:"-"`
	Subways     []SubwayStation `gorm:"many2many:subwaystations_cinemas;foreignKey:ExternalID;joinForeignKey:CinemaID;references:ExternalID;joinReferences:SubwayID" json:"-"`
}

func (Cinema) TableName() string { return "cinemas" }

type Hall struct {
	ID            uint `gorm:"primaryKey;autoIncrement"`
	ExternalID    int  `gorm:"column:hall_id;not null;index"`
	CinemaID      *int
	Title         string
	Description   string
	PlaceCount    *int
	IsVIP         *bool
	IsIMAX        *bool
	OrderScanner  *bool
	TicketScanner *bool

	Cinema *Cinema `gorm:"foreignKey:CinemaID;references:ExternalID" json:"-"`
}

type Goodies struct {
	ID    uint   `gorm:"primaryKey;autoIncrement"`
	Title string `gorm:"column:good_title;not null;unique"`
	Name  string
}

func (Goodies) TableName() string { return "goodies" }

// Phone.CinemaID is a cross-reference to cinemas.cinema_id, not a constraint.
type Phone struct {
	ID          uint `gorm:"primaryKey;autoIncrement"`
	CinemaID    *int `gorm:"index"`
	Number      string
	Description string
}

type PhotoCinema struct {
	ID       uint  `gorm:"primaryKey;autoIncrement"`
	CinemaID *uint `gorm:"index"`
	RGB      string
	Name     string

	Cinema *Cinema `gorm:"foreignKey:CinemaID" json:"-"`
}

func (PhotoCinema) TableName() string { return "photos_cinemas" }
