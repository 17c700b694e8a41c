package goalService

import (
	"FiscalGolang/internal/api/goal"
	goalRepository "FiscalGolang/internal/api/goal/repository"
	"FiscalGolang/internal/entity"
	"FiscalGolang/pkg/utils"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IGoalService interface {
	CreateGoal(ctx context.Context, req goal.CreateGoalRequest) (entity.Goal, error)
	GetGoalByID(ctx context.Context, id string, userID string) (entity.Goal, error)
	GetGoals(ctx context.Context, userID string) ([]entity.Goal, error)
	UpdateGoal(ctx context.Context, req goal.UpdateGoalRequest) (entity.Goal, error)
	DeleteGoal(ctx context.Context, id string, userID string) error
	AddMoney(ctx context.Context, req goal.AddMoneyRequest) (entity.Goal, error)
}

type goalService struct {
	log            *logrus.Logger
	goalRepository goalRepository.Repository
	utils          utils.IUtils
}

func NewGoalService(log *logrus.Logger, gr goalRepository.Repository, utils utils.IUtils) IGoalService {
	return &goalService{
		log:            log,
		goalRepository: gr,
		utils:          utils,
	}
}
