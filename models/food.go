package models

import "time"

// Food is one row of the nutrition database. food_cd is the business key;
// id is the surrogate key and never changes once assigned.
type Food struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	FoodCd              string    `gorm:"size:50;uniqueIndex;not null" json:"food_cd"`
	GroupName           string    `gorm:"size:100;not null" json:"group_name"`
	FoodName            string    `gorm:"size:200;index;not null" json:"food_name"`
	ResearchYear        string    `gorm:"size:4;index;not null" json:"research_year"`
	MakerName           string    `gorm:"size:100;index;not null" json:"maker_name"`
	RefName             string    `gorm:"size:100;not null" json:"ref_name"`
	ServingSize         string    `gorm:"size:50;not null" json:"serving_size"`
	Calorie             float64   `gorm:"not null" json:"calorie"`
	Carbohydrate        float64   `gorm:"not null" json:"carbohydrate"`
	Protein             float64   `gorm:"not null" json:"protein"`
	Fat                 float64   `gorm:"not null" json:"fat"`
	Sugars              float64   `gorm:"not null" json:"sugars"`
	Sodium              float64   `gorm:"not null" json:"sodium"`
	Cholesterol         float64   `gorm:"not null" json:"cholesterol"`
	SaturatedFattyAcids float64   `gorm:"not null" json:"saturated_fatty_acids"`
	TransFat            float64   `gorm:"not null" json:"trans_fat"`
	CreatedAt           time.Time `json:"-"`
	UpdatedAt           time.Time `json:"-"`
}

func (Food) TableName() string {
	return "foods"
}
