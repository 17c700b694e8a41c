package budgetService

import (
	"FiscalGolang/internal/api/budget"
	budgetRepository "FiscalGolang/internal/api/budget/repository"
	"FiscalGolang/internal/entity"
	"FiscalGolang/pkg/utils"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IBudgetService interface {
	CreateBudget(ctx context.Context, req budget.CreateBudgetRequest) (entity.Budget, error)
	GetBudgetByID(ctx context.Context, id string, userID string) (entity.Budget, error)
	GetBudgets(ctx context.Context, userID string) ([]entity.Budget, error)
	UpdateBudget(ctx context.Context, req budget.UpdateBudgetRequest) (entity.Budget, error)
	DeleteBudget(ctx context.Context, id string, userID string) error
	GetBudgetProgress(ctx context.Context, id string, userID string) (entity.Budget, budget.Progress, error)
}

type budgetService struct {
	log              *logrus.Logger
	budgetRepository budgetRepository.Repository
	utils            utils.IUtils
}

func NewBudgetService(log *logrus.Logger, br budgetRepository.Repository, utils utils.IUtils) IBudgetService {
	return &budgetService{
		log:              log,
		budgetRepository: br,
		utils:            utils,
	}
}
