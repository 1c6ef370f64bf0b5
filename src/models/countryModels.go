package models

type CountryModel struct {
	ID   int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"column:name;type:varchar(255);not null;index"`
	AuditFields
}

func (CountryModel) TableName() string {
	return "countries"
}
