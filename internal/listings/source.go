package listings

type Source struct {
	ID          uint `gorm:"primaryKey;autoIncrement"`
	ExternalID  int  `gorm:"column:source_id;not null;unique"`
	Description string
}

type SourceEntityInfo struct {
	ID          uint  `gorm:"primaryKey;autoIncrement"`
	SourceID    *uint `gorm:"index"`
	Description string

	Source *Source `gorm:"foreignKey:SourceID" json:"-"`
}

func (SourceEntityInfo) TableName() string { return "sourceentityinfo" }
