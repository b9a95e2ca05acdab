package food

import (
	"context"

	"food-diary/entities"

	"gorm.io/gorm"
)

type (
	FoodRepository interface {
		AddFood(ctx context.Context, food *entities.Food) error
		GetFoodByID(ctx context.Context, id uint) (*entities.Food, error)
		GetFoods(ctx context.Context) ([]*entities.Food, error)
		DeleteFood(ctx context.Context, id uint) error
	}

	foodRepository struct {
		db *gorm.DB
	}
)

func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepository{db: db}
}

func (r *foodRepository) AddFood(ctx context.Context, food *entities.Food) error {
	return r.db.WithContext(ctx).Create(food).Error
}

func (r *foodRepository) GetFoodByID(ctx context.Context, id uint) (*entities.Food, error) {
	var food entities.Food
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&food).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

func (r *foodRepository) GetFoods(ctx context.Context) ([]*entities.Food, error) {
	var foods []*entities.Food
	if err := r.db.WithContext(ctx).Order("id asc").Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}

// DeleteFood detaches the food from every log and removes it in one
// transaction. Returns gorm.ErrRecordNotFound when no food row matched.
func (r *foodRepository) DeleteFood(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("food_id = ?", id).Delete(&entities.LogFood{}).Error; err != nil {
			return err
		}

		res := tx.Where("id = ?", id).Delete(&entities.Food{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
