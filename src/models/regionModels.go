package models

type RegionModel struct {
	ID        int           `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string        `json:"name" gorm:"column:name;type:varchar(255);not null;index"`
	CountryID int           `json:"countryId" gorm:"column:country_id;not null;index"`
	Country   *CountryModel `json:"country,omitempty" gorm:"foreignKey:CountryID;references:ID"`
	AuditFields
}

func (RegionModel) TableName() string {
	return "regions"
}
