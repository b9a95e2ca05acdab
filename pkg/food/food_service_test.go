package food

import (
	"context"
	"errors"
	"testing"

	"food-diary/domain"
	"food-diary/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeFoodRepo struct {
	foods  map[uint]*entities.Food
	nextID uint
	err    error
}

func newFakeFoodRepo() *fakeFoodRepo {
	return &fakeFoodRepo{foods: map[uint]*entities.Food{}, nextID: 1}
}

func (f *fakeFoodRepo) AddFood(_ context.Context, food *entities.Food) error {
	if f.err != nil {
		return f.err
	}
	food.ID = f.nextID
	f.nextID++
	stored := *food
	f.foods[food.ID] = &stored
	return nil
}

func (f *fakeFoodRepo) GetFoodByID(_ context.Context, id uint) (*entities.Food, error) {
	if f.err != nil {
		return nil, f.err
	}
	food, ok := f.foods[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return food, nil
}

func (f *fakeFoodRepo) GetFoods(_ context.Context) ([]*entities.Food, error) {
	if f.err != nil {
		return nil, f.err
	}
	foods := make([]*entities.Food, 0, len(f.foods))
	for id := uint(1); id < f.nextID; id++ {
		if food, ok := f.foods[id]; ok {
			foods = append(foods, food)
		}
	}
	return foods, nil
}

func (f *fakeFoodRepo) DeleteFood(_ context.Context, id uint) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.foods[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.foods, id)
	return nil
}

func TestFoodService_AddFood(t *testing.T) {
	repo := newFakeFoodRepo()
	svc := NewFoodService(repo)
	ctx := context.Background()

	created, err := svc.AddFood(ctx, domain.CreateFoodRequest{
		Name: "Egg", Proteins: 6, Carbohydrates: 1, Fats: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, 73, created.Calories)

	stored, err := repo.GetFoodByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Egg", stored.Name)
	assert.Equal(t, 6, stored.Proteins)
	assert.Equal(t, 1, stored.Carbs)
	assert.Equal(t, 5, stored.Fats)
}

func TestFoodService_GetFoods(t *testing.T) {
	repo := newFakeFoodRepo()
	svc := NewFoodService(repo)
	ctx := context.Background()

	foods, err := svc.GetFoods(ctx)
	require.NoError(t, err)
	assert.Empty(t, foods)

	_, _ = svc.AddFood(ctx, domain.CreateFoodRequest{Name: "Egg", Proteins: 6, Carbohydrates: 1, Fats: 5})
	_, _ = svc.AddFood(ctx, domain.CreateFoodRequest{Name: "Rice", Carbohydrates: 25})

	foods, err = svc.GetFoods(ctx)
	require.NoError(t, err)
	require.Len(t, foods, 2)
	assert.Equal(t, "Egg", foods[0].Name)
	assert.Equal(t, 100, foods[1].Calories)
}

func TestFoodService_DeleteFood(t *testing.T) {
	svc := NewFoodService(newFakeFoodRepo())
	ctx := context.Background()

	created, err := svc.AddFood(ctx, domain.CreateFoodRequest{Name: "Egg"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteFood(ctx, created.ID))
	assert.ErrorIs(t, svc.DeleteFood(ctx, created.ID), domain.ErrFoodNotFound)
}

func TestFoodService_RepositoryErrorsPassThrough(t *testing.T) {
	repo := newFakeFoodRepo()
	repo.err = errors.New("db down")
	svc := NewFoodService(repo)
	ctx := context.Background()

	_, err := svc.AddFood(ctx, domain.CreateFoodRequest{Name: "Egg"})
	assert.EqualError(t, err, "db down")

	_, err = svc.GetFoods(ctx)
	assert.EqualError(t, err, "db down")

	err = svc.DeleteFood(ctx, 1)
	assert.EqualError(t, err, "db down")
	assert.NotErrorIs(t, err, domain.ErrFoodNotFound)
}
