package models

type CityModel struct {
	ID       int          `json:"id" gorm:"primaryKey;autoIncrement"`
	Name     string       `json:"name" gorm:"column:name;type:varchar(255);not null;index"`
	RegionID int          `json:"regionId" gorm:"column:region_id;not null;index"`
	Region   *RegionModel `json:"region,omitempty" gorm:"foreignKey:RegionID;references:ID"`
	AuditFields
}

func (CityModel) TableName() string {
	return "cities"
}
