// Package repositories mediates all access to the foods table and
// translates store faults into domain error kinds.
package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"foodapi/apperrors"
	"foodapi/logger"
	"foodapi/models"
	"foodapi/schemas"
)

type FoodRepository struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewFoodRepository(db *gorm.DB, log *logger.Logger) *FoodRepository {
	return &FoodRepository{db: db, log: log.With("repo", "food")}
}

// Create inserts a new food. Uniqueness of food_cd is enforced by the
// store's unique index, not a pre-check, so two concurrent creates with
// the same code cannot both succeed.
func (r *FoodRepository) Create(ctx context.Context, payload *schemas.FoodCreate) (*models.Food, error) {
	var food models.Food
	payload.Apply(&food)

	if err := r.db.WithContext(ctx).Create(&food).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.AlreadyExists(payload.FoodCd)
		}
		return nil, apperrors.Database("create food", err)
	}
	return &food, nil
}

// GetByID returns the food with the given id or NotFound.
func (r *FoodRepository) GetByID(ctx context.Context, id uint) (*models.Food, error) {
	return getByID(r.db.WithContext(ctx), id)
}

func getByID(tx *gorm.DB, id uint) (*models.Food, error) {
	var food models.Food
	if err := tx.First(&food, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound(id)
		}
		return nil, apperrors.Database("get food by id", err)
	}
	return &food, nil
}

// GetByFoodCd returns the food with the given business key, or nil when
// no such food exists. Absence is not an error here; the duplicate checks
// depend on that.
func (r *FoodRepository) GetByFoodCd(ctx context.Context, foodCd string) (*models.Food, error) {
	return getByFoodCd(r.db.WithContext(ctx), foodCd)
}

func getByFoodCd(tx *gorm.DB, foodCd string) (*models.Food, error) {
	var food models.Food
	err := tx.Where("food_cd = ?", foodCd).First(&food).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Database("get food by code", err)
	}
	return &food, nil
}

// List returns one page of foods ordered by id ascending, plus the total
// count. An offset past the end yields an empty page, not an error.
func (r *FoodRepository) List(ctx context.Context, p schemas.PaginationParams) ([]models.Food, int64, error) {
	tx := r.db.WithContext(ctx)

	var total int64
	if err := tx.Model(&models.Food{}).Count(&total).Error; err != nil {
		return nil, 0, apperrors.Database("count foods", err)
	}

	foods := make([]models.Food, 0, p.Limit)
	offset := (p.Page - 1) * p.Limit
	if err := tx.Order("id ASC").Offset(offset).Limit(p.Limit).Find(&foods).Error; err != nil {
		return nil, 0, apperrors.Database("list foods", err)
	}
	return foods, total, nil
}

// Search applies the supplied criteria combined with AND. Name, maker and
// code are substring matches; year is exact. Results are ordered by id.
func (r *FoodRepository) Search(ctx context.Context, params schemas.FoodSearchParams) ([]models.Food, error) {
	tx := r.db.WithContext(ctx).Model(&models.Food{})

	if params.FoodName != "" {
		tx = tx.Where("food_name LIKE ?", "%"+params.FoodName+"%")
	}
	if params.ResearchYear != "" {
		tx = tx.Where("research_year = ?", params.ResearchYear)
	}
	if params.MakerName != "" {
		tx = tx.Where("maker_name LIKE ?", "%"+params.MakerName+"%")
	}
	if params.FoodCode != "" {
		tx = tx.Where("food_cd LIKE ?", "%"+params.FoodCode+"%")
	}

	foods := make([]models.Food, 0)
	if err := tx.Order("id ASC").Find(&foods).Error; err != nil {
		return nil, apperrors.Database("search foods", err)
	}
	return foods, nil
}

// Update replaces every field of the food with the given id. A changed
// food_cd is checked against every other record; the unique index backs
// the pre-check up in case a concurrent writer slips past it.
func (r *FoodRepository) Update(ctx context.Context, id uint, payload *schemas.FoodUpdate) (*models.Food, error) {
	var updated *models.Food
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		food, err := getByID(tx, id)
		if err != nil {
			return err
		}
		if payload.FoodCd != food.FoodCd {
			if err := checkFoodCdFree(tx, payload.FoodCd, id); err != nil {
				return err
			}
		}
		payload.Apply(food)
		if err := tx.Save(food).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.AlreadyExists(food.FoodCd)
			}
			return apperrors.Database("update food", err)
		}
		updated = food
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// PartialUpdate applies only the fields present in the payload. A present
// food_cd still goes through the duplicate check.
func (r *FoodRepository) PartialUpdate(ctx context.Context, id uint, payload *schemas.FoodPartialUpdate) (*models.Food, error) {
	var updated *models.Food
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		food, err := getByID(tx, id)
		if err != nil {
			return err
		}
		if payload.FoodCd != nil && *payload.FoodCd != food.FoodCd {
			if err := checkFoodCdFree(tx, *payload.FoodCd, id); err != nil {
				return err
			}
		}
		payload.Apply(food)
		if err := tx.Save(food).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.AlreadyExists(food.FoodCd)
			}
			return apperrors.Database("partially update food", err)
		}
		updated = food
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes the food with the given id or fails with NotFound.
func (r *FoodRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		food, err := getByID(tx, id)
		if err != nil {
			return err
		}
		if err := tx.Delete(food).Error; err != nil {
			return apperrors.Database("delete food", err)
		}
		return nil
	})
}

func checkFoodCdFree(tx *gorm.DB, foodCd string, selfID uint) error {
	existing, err := getByFoodCd(tx, foodCd)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != selfID {
		return apperrors.AlreadyExists(foodCd)
	}
	return nil
}
