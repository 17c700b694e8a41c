package budgetService

import (
	"FiscalGolang/internal/api/budget"
	"FiscalGolang/internal/entity"
	contextPkg "FiscalGolang/pkg/context"
	"FiscalGolang/pkg/money"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *budgetService) CreateBudget(ctx context.Context, req budget.CreateBudgetRequest) (entity.Budget, error) {
	requestID := contextPkg.GetRequestID(ctx)

	amount, err := money.ParseNonNegative(req.Amount)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"amount":     req.Amount,
		}).Warn("Rejected malformed or negative budget amount")
		return entity.Budget{}, budget.ErrInvalidAmount
	}

	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return entity.Budget{}, err
	}

	period := req.Period
	if period == "" {
		period = string(entity.BudgetPeriodMonthly)
	}

	b := entity.Budget{
		ID:         id,
		UserID:     req.UserID,
		CategoryID: req.CategoryID,
		Amount:     amount,
		Period:     period,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		IsActive:   true,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	if err := b.Validate(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid budget data")
		return entity.Budget{}, err
	}

	repo, err := s.budgetRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Budget{}, err
	}

	if err := repo.Budgets.Create(ctx, b); err != nil {
		if err == budget.ErrCategoryNotFound {
			return entity.Budget{}, err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create budget")
		return entity.Budget{}, budget.ErrCreateBudget
	}

	return b, nil
}

func (s *budgetService) GetBudgetByID(ctx context.Context, id string, userID string) (entity.Budget, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.budgetRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Budget{}, err
	}

	return repo.Budgets.GetByID(ctx, id, userID)
}

func (s *budgetService) GetBudgets(ctx context.Context, userID string) ([]entity.Budget, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.budgetRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, err
	}

	return repo.Budgets.GetAll(ctx, userID)
}

// UpdateBudget applies the partial fields from the request on top of the
// stored budget and re-validates the merged result, so a window can never
// be narrowed into start > end.
func (s *budgetService) UpdateBudget(ctx context.Context, req budget.UpdateBudgetRequest) (entity.Budget, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.budgetRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Budget{}, err
	}

	b, err := repo.Budgets.GetByID(ctx, req.ID, req.UserID)
	if err != nil {
		return entity.Budget{}, err
	}

	if req.Amount != "" {
		amount, err := money.ParseNonNegative(req.Amount)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"amount":     req.Amount,
			}).Warn("Rejected malformed or negative budget amount")
			return entity.Budget{}, budget.ErrInvalidAmount
		}
		b.Amount = amount
	}
	if req.Period != "" {
		b.Period = req.Period
	}
	if req.StartDate != "" {
		b.StartDate = req.StartDate
	}
	if req.EndDate != "" {
		b.EndDate = req.EndDate
	}
	if req.IsActive != nil {
		b.IsActive = *req.IsActive
	}
	b.UpdatedAt = time.Now()

	if err := b.Validate(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid budget data")
		return entity.Budget{}, err
	}

	if err := repo.Budgets.Update(ctx, b); err != nil {
		if err == budget.ErrBudgetNotFound {
			return entity.Budget{}, err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to update budget")
		return entity.Budget{}, budget.ErrUpdateBudget
	}

	return b, nil
}

func (s *budgetService) DeleteBudget(ctx context.Context, id string, userID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.budgetRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	if err := repo.Budgets.Delete(ctx, id, userID); err != nil {
		if err == budget.ErrBudgetNotFound {
			return err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to delete budget")
		return budget.ErrDeleteBudget
	}

	return nil
}

// GetBudgetProgress recomputes spend for the budget's category over its
// inclusive date window. remaining may go negative; percentage is a
// two-decimal string and reads "0.00" for a zero-amount budget.
func (s *budgetService) GetBudgetProgress(ctx context.Context, id string, userID string) (entity.Budget, budget.Progress, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.budgetRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Budget{}, budget.Progress{}, err
	}

	b, err := repo.Budgets.GetByID(ctx, id, userID)
	if err != nil {
		return entity.Budget{}, budget.Progress{}, err
	}

	spent, err := repo.Spending.SumExpenses(ctx, userID, b.CategoryID, b.StartDate, b.EndDate)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"budget_id":  id,
			"error":      err.Error(),
		}).Error("Failed to sum budget spending")
		return entity.Budget{}, budget.Progress{}, err
	}

	return b, budget.Progress{
		Spent:        spent,
		Remaining:    b.Amount.Sub(spent),
		Percentage:   money.Percentage(spent, b.Amount),
		IsOverBudget: spent.GreaterThan(b.Amount),
	}, nil
}
