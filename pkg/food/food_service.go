package food

import (
	"context"
	"errors"

	"food-diary/domain"
	"food-diary/entities"
	"food-diary/pkg/nutrition"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

type (
	FoodService interface {
		AddFood(ctx context.Context, req domain.CreateFoodRequest) (domain.FoodResponse, error)
		GetFoods(ctx context.Context) ([]domain.FoodResponse, error)
		DeleteFood(ctx context.Context, id uint) error
	}

	foodService struct {
		foodRepository FoodRepository
	}
)

func NewFoodService(foodRepository FoodRepository) FoodService {
	return &foodService{
		foodRepository: foodRepository,
	}
}

func (s *foodService) AddFood(ctx context.Context, req domain.CreateFoodRequest) (domain.FoodResponse, error) {
	food := &entities.Food{
		Name:     req.Name,
		Proteins: req.Proteins,
		Carbs:    req.Carbohydrates,
		Fats:     req.Fats,
	}

	if err := s.foodRepository.AddFood(ctx, food); err != nil {
		log.Errorf("add food %q: %v", req.Name, err)
		return domain.FoodResponse{}, err
	}

	return nutrition.ToFoodResponse(food), nil
}

func (s *foodService) GetFoods(ctx context.Context) ([]domain.FoodResponse, error) {
	foods, err := s.foodRepository.GetFoods(ctx)
	if err != nil {
		return nil, err
	}

	return nutrition.ToFoodResponses(foods), nil
}

func (s *foodService) DeleteFood(ctx context.Context, id uint) error {
	if err := s.foodRepository.DeleteFood(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFoodNotFound
		}
		log.Errorf("delete food %d: %v", id, err)
		return err
	}
	return nil
}
