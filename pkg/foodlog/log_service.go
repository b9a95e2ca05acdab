package foodlog

import (
	"context"
	"errors"
	"time"

	"food-diary/domain"
	"food-diary/entities"
	"food-diary/pkg/food"
	"food-diary/pkg/nutrition"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

type (
	LogService interface {
		CreateLog(ctx context.Context, req domain.CreateLogRequest) (domain.LogResponse, error)
		GetLogs(ctx context.Context) ([]domain.LogSummaryResponse, error)
		GetLogDetail(ctx context.Context, id uint) (domain.LogDetailResponse, error)
		DeleteLog(ctx context.Context, id uint) error
		AddFoodToLog(ctx context.Context, logID uint, req domain.AddFoodToLogRequest) error
		RemoveFoodFromLog(ctx context.Context, logID, foodID uint) error
	}

	logService struct {
		logRepository  LogRepository
		foodRepository food.FoodRepository
	}
)

func NewLogService(logRepository LogRepository, foodRepository food.FoodRepository) LogService {
	return &logService{
		logRepository:  logRepository,
		foodRepository: foodRepository,
	}
}

func (s *logService) CreateLog(ctx context.Context, req domain.CreateLogRequest) (domain.LogResponse, error) {
	date, err := time.Parse(domain.DateLayout, req.Date)
	if err != nil {
		return domain.LogResponse{}, domain.ErrInvalidDate
	}

	entry := &entities.Log{Date: date}
	if err := s.logRepository.CreateLog(ctx, entry); err != nil {
		log.Errorf("create log for %s: %v", req.Date, err)
		return domain.LogResponse{}, err
	}

	return toLogResponse(entry), nil
}

func (s *logService) GetLogs(ctx context.Context) ([]domain.LogSummaryResponse, error) {
	logs, err := s.logRepository.GetLogsByDateDesc(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(logs))
	for _, entry := range logs {
		ids = append(ids, entry.ID)
	}

	foodsByLog, err := s.logRepository.GetFoodsByLogIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	response := make([]domain.LogSummaryResponse, 0, len(logs))
	for _, entry := range logs {
		response = append(response, domain.LogSummaryResponse{
			LogResponse: toLogResponse(entry),
			Totals:      nutrition.Sum(foodsByLog[entry.ID]),
		})
	}

	return response, nil
}

func (s *logService) GetLogDetail(ctx context.Context, id uint) (domain.LogDetailResponse, error) {
	entry, err := s.getLog(ctx, id)
	if err != nil {
		return domain.LogDetailResponse{}, err
	}

	logFoods, err := s.logRepository.GetLogFoods(ctx, id)
	if err != nil {
		return domain.LogDetailResponse{}, err
	}

	allFoods, err := s.foodRepository.GetFoods(ctx)
	if err != nil {
		return domain.LogDetailResponse{}, err
	}

	return domain.LogDetailResponse{
		LogResponse: toLogResponse(entry),
		Foods:       nutrition.ToFoodResponses(logFoods),
		Totals:      nutrition.Sum(logFoods),
		AllFoods:    nutrition.ToFoodResponses(allFoods),
	}, nil
}

func (s *logService) DeleteLog(ctx context.Context, id uint) error {
	if err := s.logRepository.DeleteLog(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrLogNotFound
		}
		log.Errorf("delete log %d: %v", id, err)
		return err
	}
	return nil
}

func (s *logService) AddFoodToLog(ctx context.Context, logID uint, req domain.AddFoodToLogRequest) error {
	if _, err := s.getLog(ctx, logID); err != nil {
		return err
	}

	if _, err := s.foodRepository.GetFoodByID(ctx, req.FoodID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFoodNotFound
		}
		return err
	}

	added, err := s.logRepository.AddFoodToLog(ctx, logID, req.FoodID)
	if err != nil {
		// the log or the food was deleted between the lookups and the insert
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			if _, lookupErr := s.getLog(ctx, logID); lookupErr != nil {
				return lookupErr
			}
			return domain.ErrFoodNotFound
		}
		log.Errorf("add food %d to log %d: %v", req.FoodID, logID, err)
		return err
	}
	if !added {
		return domain.ErrFoodAlreadyInLog
	}
	return nil
}

// RemoveFoodFromLog is a no-op when the food is not in the log. The log
// itself must exist.
func (s *logService) RemoveFoodFromLog(ctx context.Context, logID, foodID uint) error {
	if _, err := s.getLog(ctx, logID); err != nil {
		return err
	}

	if err := s.logRepository.RemoveFoodFromLog(ctx, logID, foodID); err != nil {
		log.Errorf("remove food %d from log %d: %v", foodID, logID, err)
		return err
	}
	return nil
}

func (s *logService) getLog(ctx context.Context, id uint) (*entities.Log, error) {
	entry, err := s.logRepository.GetLogByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrLogNotFound
		}
		return nil, err
	}
	return entry, nil
}

func toLogResponse(entry *entities.Log) domain.LogResponse {
	return domain.LogResponse{
		ID:        entry.ID,
		Date:      entry.Date,
		DateLabel: domain.FormatLogDate(entry.Date),
	}
}
