package schemas

import "foodapi/models"

// FoodCreate is the payload for POST /v1/foods. Nutrient values are
// pointers so that a missing field and an explicit zero can be told apart:
// required rejects nil, gte=0 checks the value.
type FoodCreate struct {
	FoodCd              string   `json:"food_cd" binding:"required,max=50"`
	GroupName           string   `json:"group_name" binding:"required,max=100"`
	FoodName            string   `json:"food_name" binding:"required,max=200"`
	ResearchYear        string   `json:"research_year" binding:"required,researchyear"`
	MakerName           string   `json:"maker_name" binding:"required,max=100"`
	RefName             string   `json:"ref_name" binding:"required,max=100"`
	ServingSize         string   `json:"serving_size" binding:"required,max=50"`
	Calorie             *float64 `json:"calorie" binding:"required,gte=0"`
	Carbohydrate        *float64 `json:"carbohydrate" binding:"required,gte=0"`
	Protein             *float64 `json:"protein" binding:"required,gte=0"`
	Fat                 *float64 `json:"fat" binding:"required,gte=0"`
	Sugars              *float64 `json:"sugars" binding:"required,gte=0"`
	Sodium              *float64 `json:"sodium" binding:"required,gte=0"`
	Cholesterol         *float64 `json:"cholesterol" binding:"required,gte=0"`
	SaturatedFattyAcids *float64 `json:"saturated_fatty_acids" binding:"required,gte=0"`
	TransFat            *float64 `json:"trans_fat" binding:"required,gte=0"`
}

// FoodUpdate is the payload for PUT /v1/foods/:id; a full replace carries
// the same fields and rules as a create.
type FoodUpdate = FoodCreate

// Apply copies every payload field onto the model.
func (p *FoodCreate) Apply(m *models.Food) {
	m.FoodCd = p.FoodCd
	m.GroupName = p.GroupName
	m.FoodName = p.FoodName
	m.ResearchYear = p.ResearchYear
	m.MakerName = p.MakerName
	m.RefName = p.RefName
	m.ServingSize = p.ServingSize
	m.Calorie = *p.Calorie
	m.Carbohydrate = *p.Carbohydrate
	m.Protein = *p.Protein
	m.Fat = *p.Fat
	m.Sugars = *p.Sugars
	m.Sodium = *p.Sodium
	m.Cholesterol = *p.Cholesterol
	m.SaturatedFattyAcids = *p.SaturatedFattyAcids
	m.TransFat = *p.TransFat
}

// FoodPartialUpdate is the payload for PATCH /v1/foods/:id. Every field is
// optional; a field that is present must satisfy the same rule as on
// create (omitnil skips nil pointers but still validates present values,
// including empty strings).
type FoodPartialUpdate struct {
	FoodCd              *string  `json:"food_cd" binding:"omitnil,min=1,max=50"`
	GroupName           *string  `json:"group_name" binding:"omitnil,min=1,max=100"`
	FoodName            *string  `json:"food_name" binding:"omitnil,min=1,max=200"`
	ResearchYear        *string  `json:"research_year" binding:"omitnil,researchyear"`
	MakerName           *string  `json:"maker_name" binding:"omitnil,min=1,max=100"`
	RefName             *string  `json:"ref_name" binding:"omitnil,min=1,max=100"`
	ServingSize         *string  `json:"serving_size" binding:"omitnil,min=1,max=50"`
	Calorie             *float64 `json:"calorie" binding:"omitnil,gte=0"`
	Carbohydrate        *float64 `json:"carbohydrate" binding:"omitnil,gte=0"`
	Protein             *float64 `json:"protein" binding:"omitnil,gte=0"`
	Fat                 *float64 `json:"fat" binding:"omitnil,gte=0"`
	Sugars              *float64 `json:"sugars" binding:"omitnil,gte=0"`
	Sodium              *float64 `json:"sodium" binding:"omitnil,gte=0"`
	Cholesterol         *float64 `json:"cholesterol" binding:"omitnil,gte=0"`
	SaturatedFattyAcids *float64 `json:"saturated_fatty_acids" binding:"omitnil,gte=0"`
	TransFat            *float64 `json:"trans_fat" binding:"omitnil,gte=0"`
}

// Apply copies only the fields present in the payload onto the model.
func (p *FoodPartialUpdate) Apply(m *models.Food) {
	if p.FoodCd != nil {
		m.FoodCd = *p.FoodCd
	}
	if p.GroupName != nil {
		m.GroupName = *p.GroupName
	}
	if p.FoodName != nil {
		m.FoodName = *p.FoodName
	}
	if p.ResearchYear != nil {
		m.ResearchYear = *p.ResearchYear
	}
	if p.MakerName != nil {
		m.MakerName = *p.MakerName
	}
	if p.RefName != nil {
		m.RefName = *p.RefName
	}
	if p.ServingSize != nil {
		m.ServingSize = *p.ServingSize
	}
	if p.Calorie != nil {
		m.Calorie = *p.Calorie
	}
	if p.Carbohydrate != nil {
		m.Carbohydrate = *p.Carbohydrate
	}
	if p.Protein != nil {
		m.Protein = *p.Protein
	}
	if p.Fat != nil {
		m.Fat = *p.Fat
	}
	if p.Sugars != nil {
		m.Sugars = *p.Sugars
	}
	if p.Sodium != nil {
		m.Sodium = *p.Sodium
	}
	if p.Cholesterol != nil {
		m.Cholesterol = *p.Cholesterol
	}
	if p.SaturatedFattyAcids != nil {
		m.SaturatedFattyAcids = *p.SaturatedFattyAcids
	}
	if p.TransFat != nil {
		m.TransFat = *p.TransFat
	}
}

// FoodSearchParams are the query parameters of GET /v1/foods/search.
// Name, maker and code are substring matches, year is an exact match.
type FoodSearchParams struct {
	FoodName     string `form:"food_name" binding:"omitempty"`
	ResearchYear string `form:"research_year" binding:"omitempty,yyyy"`
	MakerName    string `form:"maker_name" binding:"omitempty"`
	FoodCode     string `form:"food_code" binding:"omitempty"`
}

// PaginationParams are the query parameters of GET /v1/foods.
type PaginationParams struct {
	Page  int `form:"page,default=1" binding:"min=1"`
	Limit int `form:"limit,default=20" binding:"min=1,max=100"`
}
