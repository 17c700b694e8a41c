package goalService

import (
	"FiscalGolang/internal/api/goal"
	goalRepository "FiscalGolang/internal/api/goal/repository"
	"FiscalGolang/internal/entity"
	contextPkg "FiscalGolang/pkg/context"
	"FiscalGolang/pkg/money"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *goalService) CreateGoal(ctx context.Context, req goal.CreateGoalRequest) (entity.Goal, error) {
	requestID := contextPkg.GetRequestID(ctx)

	target, err := money.ParsePositive(req.TargetAmount)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id":    requestID,
			"target_amount": req.TargetAmount,
		}).Warn("Rejected non-positive or malformed goal target")
		return entity.Goal{}, goal.ErrInvalidAmount
	}

	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return entity.Goal{}, err
	}

	g := entity.Goal{
		ID:            id,
		UserID:        req.UserID,
		Name:          req.Name,
		TargetAmount:  target,
		CurrentAmount: decimal.Zero,
		Deadline:      req.Deadline,
		Icon:          req.Icon,
		Color:         req.Color,
		IsCompleted:   false,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	if err := g.Validate(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid goal data")
		return entity.Goal{}, err
	}

	repo, err := s.goalRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Goal{}, err
	}

	if err := repo.Goals.Create(ctx, g); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create goal")
		return entity.Goal{}, goal.ErrCreateGoal
	}

	return g, nil
}

func (s *goalService) GetGoalByID(ctx context.Context, id string, userID string) (entity.Goal, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.goalRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Goal{}, err
	}

	return repo.Goals.GetByID(ctx, id, userID)
}

func (s *goalService) GetGoals(ctx context.Context, userID string) ([]entity.Goal, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.goalRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, err
	}

	return repo.Goals.GetAll(ctx, userID)
}

// UpdateGoal merges partial fields and re-derives IsCompleted, so
// lowering the target below the saved progress completes the goal.
func (s *goalService) UpdateGoal(ctx context.Context, req goal.UpdateGoalRequest) (entity.Goal, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.goalRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Goal{}, err
	}

	g, err := repo.Goals.GetByID(ctx, req.ID, req.UserID)
	if err != nil {
		return entity.Goal{}, err
	}

	if req.Name != "" {
		g.Name = req.Name
	}
	if req.TargetAmount != "" {
		target, err := money.ParsePositive(req.TargetAmount)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id":    requestID,
				"target_amount": req.TargetAmount,
			}).Warn("Rejected non-positive or malformed goal target")
			return entity.Goal{}, goal.ErrInvalidAmount
		}
		g.TargetAmount = target
	}
	if req.Deadline != "" {
		g.Deadline = req.Deadline
	}
	if req.Icon != "" {
		g.Icon = req.Icon
	}
	if req.Color != "" {
		g.Color = req.Color
	}
	g.IsCompleted = g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount)
	g.UpdatedAt = time.Now()

	if err := g.Validate(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid goal data")
		return entity.Goal{}, err
	}

	if err := repo.Goals.Update(ctx, g); err != nil {
		if err == goal.ErrGoalNotFound {
			return entity.Goal{}, err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to update goal")
		return entity.Goal{}, goal.ErrUpdateGoal
	}

	return g, nil
}

func (s *goalService) DeleteGoal(ctx context.Context, id string, userID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.goalRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	if err := repo.Goals.Delete(ctx, id, userID); err != nil {
		if err == goal.ErrGoalNotFound {
			return err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to delete goal")
		return goal.ErrDeleteGoal
	}

	return nil
}

// AddMoney increments saved progress under a row lock so concurrent
// deposits never lose an increment.
func (s *goalService) AddMoney(ctx context.Context, req goal.AddMoneyRequest) (res entity.Goal, err error) {
	requestID := contextPkg.GetRequestID(ctx)

	amount, err := money.ParsePositive(req.Amount)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"amount":     req.Amount,
		}).Warn("Rejected non-positive or malformed deposit amount")
		return entity.Goal{}, goal.ErrInvalidAmount
	}

	repo, err := s.goalRepository.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Goal{}, err
	}
	defer s.rollbackOnError(repo, &err, requestID)

	g, err := repo.Goals.GetForUpdate(ctx, req.ID, req.UserID)
	if err != nil {
		return entity.Goal{}, err
	}

	g.CurrentAmount = g.CurrentAmount.Add(amount)
	g.IsCompleted = g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount)
	g.UpdatedAt = time.Now()

	if err = repo.Goals.Update(ctx, g); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to apply deposit")
		return entity.Goal{}, goal.ErrUpdateGoal
	}

	if err = repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit deposit")
		return entity.Goal{}, goal.ErrUpdateGoal
	}

	return g, nil
}

func (s *goalService) rollbackOnError(repo goalRepository.Client, err *error, requestID string) {
	if *err == nil {
		return
	}
	if rbErr := repo.Rollback(); rbErr != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      rbErr.Error(),
		}).Error("Failed to rollback")
	}
}
