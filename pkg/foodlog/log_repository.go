package foodlog

import (
	"context"

	"food-diary/entities"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	LogRepository interface {
		CreateLog(ctx context.Context, log *entities.Log) error
		GetLogByID(ctx context.Context, id uint) (*entities.Log, error)
		GetLogsByDateDesc(ctx context.Context) ([]*entities.Log, error)
		DeleteLog(ctx context.Context, id uint) error

		// Log <-> food associations
		GetLogFoods(ctx context.Context, logID uint) ([]*entities.Food, error)
		GetFoodsByLogIDs(ctx context.Context, logIDs []uint) (map[uint][]*entities.Food, error)
		AddFoodToLog(ctx context.Context, logID, foodID uint) (bool, error)
		RemoveFoodFromLog(ctx context.Context, logID, foodID uint) error
	}

	logRepository struct {
		db *gorm.DB
	}
)

func NewLogRepository(db *gorm.DB) LogRepository {
	return &logRepository{db: db}
}

func (r *logRepository) CreateLog(ctx context.Context, log *entities.Log) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *logRepository) GetLogByID(ctx context.Context, id uint) (*entities.Log, error) {
	var log entities.Log
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&log).Error; err != nil {
		return nil, err
	}
	return &log, nil
}

func (r *logRepository) GetLogsByDateDesc(ctx context.Context) ([]*entities.Log, error) {
	var logs []*entities.Log
	if err := r.db.WithContext(ctx).
		Order("date desc").
		Order("id desc").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// DeleteLog removes the log and its associations in one transaction.
// Returns gorm.ErrRecordNotFound when no log row matched.
func (r *logRepository) DeleteLog(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("log_id = ?", id).Delete(&entities.LogFood{}).Error; err != nil {
			return err
		}

		res := tx.Where("id = ?", id).Delete(&entities.Log{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *logRepository) GetLogFoods(ctx context.Context, logID uint) ([]*entities.Food, error) {
	var foods []*entities.Food
	if err := r.db.WithContext(ctx).
		Joins("JOIN log_foods ON log_foods.food_id = foods.id").
		Where("log_foods.log_id = ?", logID).
		Order("foods.id asc").
		Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}

// GetFoodsByLogIDs loads the foods of several logs at once, keyed by log id.
// Logs without foods have no entry in the map.
func (r *logRepository) GetFoodsByLogIDs(ctx context.Context, logIDs []uint) (map[uint][]*entities.Food, error) {
	result := make(map[uint][]*entities.Food, len(logIDs))
	if len(logIDs) == 0 {
		return result, nil
	}

	var links []*entities.LogFood
	if err := r.db.WithContext(ctx).
		Preload("Food").
		Where("log_id IN ?", logIDs).
		Order("food_id asc").
		Find(&links).Error; err != nil {
		return nil, err
	}

	for _, link := range links {
		if link.Food == nil {
			continue
		}
		result[link.LogID] = append(result[link.LogID], link.Food)
	}
	return result, nil
}

// AddFoodToLog inserts the association unless it already exists. The
// returned bool is false when the food was already in the log.
func (r *logRepository) AddFoodToLog(ctx context.Context, logID, foodID uint) (bool, error) {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&entities.LogFood{LogID: logID, FoodID: foodID})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *logRepository) RemoveFoodFromLog(ctx context.Context, logID, foodID uint) error {
	return r.db.WithContext(ctx).
		Where("log_id = ? AND food_id = ?", logID, foodID).
		Delete(&entities.LogFood{}).Error
}
