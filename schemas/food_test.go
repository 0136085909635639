package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodapi/apperrors"
	"foodapi/models"
)

func fptr(f float64) *float64 { return &f }
func sptr(s string) *string   { return &s }

func validCreate() *FoodCreate {
	return &FoodCreate{
		FoodCd:              "D000001",
		GroupName:           "가공식품",
		FoodName:            "김치찌개",
		ResearchYear:        "2023",
		MakerName:           "테스트제조사",
		RefName:             "식약처",
		ServingSize:         "100g",
		Calorie:             fptr(250),
		Carbohydrate:        fptr(30.5),
		Protein:             fptr(8.2),
		Fat:                 fptr(12),
		Sugars:              fptr(5.5),
		Sodium:              fptr(320),
		Cholesterol:         fptr(15),
		SaturatedFattyAcids: fptr(3.1),
		TransFat:            fptr(0),
	}
}

func TestValidateCreate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*FoodCreate)
		wantErr bool
	}{
		{name: "valid payload"},
		{name: "zero nutrients are fine", mutate: func(p *FoodCreate) { p.Calorie = fptr(0) }},
		{name: "year lower bound", mutate: func(p *FoodCreate) { p.ResearchYear = "1900" }},
		{name: "year upper bound", mutate: func(p *FoodCreate) { p.ResearchYear = "2100" }},
		{name: "missing food_cd", mutate: func(p *FoodCreate) { p.FoodCd = "" }, wantErr: true},
		{name: "missing nutrient", mutate: func(p *FoodCreate) { p.Calorie = nil }, wantErr: true},
		{name: "negative nutrient", mutate: func(p *FoodCreate) { p.Sodium = fptr(-1) }, wantErr: true},
		{name: "year too short", mutate: func(p *FoodCreate) { p.ResearchYear = "202" }, wantErr: true},
		{name: "year not numeric", mutate: func(p *FoodCreate) { p.ResearchYear = "abcd" }, wantErr: true},
		{name: "year below range", mutate: func(p *FoodCreate) { p.ResearchYear = "1899" }, wantErr: true},
		{name: "year above range", mutate: func(p *FoodCreate) { p.ResearchYear = "2101" }, wantErr: true},
		{name: "food_cd too long", mutate: func(p *FoodCreate) {
			long := make([]byte, 51)
			for i := range long {
				long[i] = 'x'
			}
			p.FoodCd = string(long)
		}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validCreate()
			if tt.mutate != nil {
				tt.mutate(p)
			}
			err := ValidateStruct(p)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePartialUpdate(t *testing.T) {
	tests := []struct {
		name    string
		payload FoodPartialUpdate
		wantErr bool
	}{
		{name: "empty payload is valid"},
		{name: "single field", payload: FoodPartialUpdate{Calorie: fptr(500)}},
		{name: "present empty string fails", payload: FoodPartialUpdate{FoodCd: sptr("")}, wantErr: true},
		{name: "present bad year fails", payload: FoodPartialUpdate{ResearchYear: sptr("20XX")}, wantErr: true},
		{name: "present negative fails", payload: FoodPartialUpdate{Fat: fptr(-0.1)}, wantErr: true},
		{name: "present valid year", payload: FoodPartialUpdate{ResearchYear: sptr("1999")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&tt.payload)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateSearchParams(t *testing.T) {
	assert.NoError(t, ValidateStruct(&FoodSearchParams{}))
	assert.NoError(t, ValidateStruct(&FoodSearchParams{FoodName: "김치", ResearchYear: "2023"}))
	// Search only checks the 4-digit form, not the range.
	assert.NoError(t, ValidateStruct(&FoodSearchParams{ResearchYear: "1234"}))
	assert.Error(t, ValidateStruct(&FoodSearchParams{ResearchYear: "23"}))
	assert.Error(t, ValidateStruct(&FoodSearchParams{ResearchYear: "abcd"}))
}

func TestNewValidationErrorCollectsFieldErrors(t *testing.T) {
	p := validCreate()
	p.FoodCd = ""
	p.Sodium = fptr(-5)

	err := ValidateStruct(p)
	require.Error(t, err)

	appErr := NewValidationError(err)
	assert.Equal(t, apperrors.CodeValidation, appErr.Code)
	assert.Equal(t, 422, appErr.Status)

	errs, ok := appErr.Details["errors"].([]map[string]interface{})
	require.True(t, ok)
	require.Len(t, errs, 2)
	fields := []string{errs[0]["field"].(string), errs[1]["field"].(string)}
	assert.Contains(t, fields, "food_cd")
	assert.Contains(t, fields, "sodium")
}

func TestPartialUpdateApply(t *testing.T) {
	m := models.Food{FoodCd: "D001", FoodName: "김치찌개", Calorie: 250, Protein: 8.2}

	(&FoodPartialUpdate{Calorie: fptr(500)}).Apply(&m)

	assert.Equal(t, 500.0, m.Calorie)
	assert.Equal(t, "D001", m.FoodCd)
	assert.Equal(t, "김치찌개", m.FoodName)
	assert.Equal(t, 8.2, m.Protein)
}
