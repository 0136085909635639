package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"foodapi/apperrors"
	"foodapi/repositories"
	"foodapi/schemas"
)

type FoodController struct {
	repo *repositories.FoodRepository
}

func NewFoodController(repo *repositories.FoodRepository) *FoodController {
	return &FoodController{repo: repo}
}

// GET /v1/foods/search
func (fc *FoodController) Search(c *gin.Context) {
	var params schemas.FoodSearchParams
	if err := c.ShouldBindQuery(&params); err != nil {
		_ = c.Error(schemas.NewValidationError(err))
		return
	}

	foods, err := fc.repo.Search(c.Request.Context(), params)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, schemas.SuccessList(foods))
}

// GET /v1/foods
func (fc *FoodController) List(c *gin.Context) {
	var params schemas.PaginationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		_ = c.Error(schemas.NewValidationError(err))
		return
	}

	foods, total, err := fc.repo.List(c.Request.Context(), params)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, schemas.SuccessPage(foods, params.Page, params.Limit, total))
}

// GET /v1/foods/:id
func (fc *FoodController) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	food, err := fc.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, schemas.Success(food))
}

// POST /v1/foods
func (fc *FoodController) Create(c *gin.Context) {
	var payload schemas.FoodCreate
	if err := c.ShouldBindJSON(&payload); err != nil {
		_ = c.Error(schemas.NewValidationError(err))
		return
	}

	food, err := fc.repo.Create(c.Request.Context(), &payload)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, schemas.Success(food))
}

// PUT /v1/foods/:id
func (fc *FoodController) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var payload schemas.FoodUpdate
	if err := c.ShouldBindJSON(&payload); err != nil {
		_ = c.Error(schemas.NewValidationError(err))
		return
	}

	food, err := fc.repo.Update(c.Request.Context(), id, &payload)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, schemas.Success(food))
}

// PATCH /v1/foods/:id
func (fc *FoodController) PartialUpdate(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var payload schemas.FoodPartialUpdate
	if err := c.ShouldBindJSON(&payload); err != nil {
		_ = c.Error(schemas.NewValidationError(err))
		return
	}

	food, err := fc.repo.PartialUpdate(c.Request.Context(), id, &payload)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, schemas.Success(food))
}

// DELETE /v1/foods/:id
func (fc *FoodController) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := fc.repo.Delete(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

// pathID parses the :id parameter. A non-numeric id is a validation
// failure, matching how a typed path parameter behaves.
func pathID(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		_ = c.Error(apperrors.Validation("id must be a positive integer", nil, err))
		return 0, false
	}
	return uint(id), true
}
