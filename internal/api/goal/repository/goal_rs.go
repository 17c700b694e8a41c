package goalRepository

import (
	"FiscalGolang/internal/api/goal"
	"FiscalGolang/internal/entity"
	contextPkg "FiscalGolang/pkg/context"
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type GoalDB struct {
	ID            sql.NullString `db:"id"`
	UserID        sql.NullString `db:"user_id"`
	Name          sql.NullString `db:"name"`
	TargetAmount  sql.NullString `db:"target_amount"`
	CurrentAmount sql.NullString `db:"current_amount"`
	Deadline      sql.NullString `db:"deadline"`
	Icon          sql.NullString `db:"icon"`
	Color         sql.NullString `db:"color"`
	IsCompleted   bool           `db:"is_completed"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
}

func (r *goalRepository) Create(c context.Context, g entity.Goal) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":             g.ID,
		"user_id":        g.UserID,
		"name":           g.Name,
		"target_amount":  g.TargetAmount.String(),
		"current_amount": g.CurrentAmount.String(),
		"deadline":       g.Deadline,
		"icon":           g.Icon,
		"color":          g.Color,
		"is_completed":   g.IsCompleted,
		"created_at":     time.Now(),
		"updated_at":     time.Now(),
	}

	query, args, err := sqlx.Named(queryCreateGoal, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for Create goal")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating goal")
		return err
	}

	return nil
}

func (r *goalRepository) GetByID(c context.Context, id string, userID string) (entity.Goal, error) {
	return r.getGoal(c, queryGetGoalByID, id, userID)
}

// GetForUpdate locks the goal row for the duration of the surrounding DB
// transaction so concurrent add-money calls serialize.
func (r *goalRepository) GetForUpdate(c context.Context, id string, userID string) (entity.Goal, error) {
	return r.getGoal(c, queryGetGoalForUpdate, id, userID)
}

func (r *goalRepository) getGoal(c context.Context, baseQuery string, id string, userID string) (entity.Goal, error) {
	requestID := contextPkg.GetRequestID(c)
	var g GoalDB

	argsKV := map[string]interface{}{
		"id":      id,
		"user_id": userID,
	}

	query, args, err := sqlx.Named(baseQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("getGoal named query preparation err")
		return entity.Goal{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&g); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("getGoal no goal found")
			return entity.Goal{}, goal.ErrGoalNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("getGoal execution err")
		return entity.Goal{}, err
	}

	return r.makeGoal(g)
}

func (r *goalRepository) GetAll(c context.Context, userID string) ([]entity.Goal, error) {
	requestID := contextPkg.GetRequestID(c)
	var goals []GoalDB

	argsKV := map[string]interface{}{
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryGetGoalsByUserID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAll named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &goals, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAll execution err")
		return nil, err
	}

	result := make([]entity.Goal, 0, len(goals))
	for _, g := range goals {
		made, err := r.makeGoal(g)
		if err != nil {
			return nil, err
		}
		result = append(result, made)
	}

	return result, nil
}

func (r *goalRepository) Update(c context.Context, g entity.Goal) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":             g.ID,
		"user_id":        g.UserID,
		"name":           g.Name,
		"target_amount":  g.TargetAmount.String(),
		"current_amount": g.CurrentAmount.String(),
		"deadline":       g.Deadline,
		"icon":           g.Icon,
		"color":          g.Color,
		"is_completed":   g.IsCompleted,
		"updated_at":     time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateGoal, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Update named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Update execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("Update no rows affected")
		return goal.ErrGoalNotFound
	}

	return nil
}

func (r *goalRepository) Delete(c context.Context, id string, userID string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":      id,
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryDeleteGoal, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Delete named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Delete execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("Delete no rows affected")
		return goal.ErrGoalNotFound
	}

	return nil
}

func (r *goalRepository) makeGoal(g GoalDB) (entity.Goal, error) {
	target, err := decimal.NewFromString(g.TargetAmount.String)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"id":            g.ID.String,
			"target_amount": g.TargetAmount.String,
		}).Error("Stored goal target is not a valid decimal")
		return entity.Goal{}, goal.ErrInvalidAmount
	}

	current, err := decimal.NewFromString(g.CurrentAmount.String)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"id":             g.ID.String,
			"current_amount": g.CurrentAmount.String,
		}).Error("Stored goal progress is not a valid decimal")
		return entity.Goal{}, goal.ErrInvalidAmount
	}

	return entity.Goal{
		ID:            g.ID.String,
		UserID:        g.UserID.String,
		Name:          g.Name.String,
		TargetAmount:  target,
		CurrentAmount: current,
		Deadline:      g.Deadline.String,
		Icon:          g.Icon.String,
		Color:         g.Color.String,
		IsCompleted:   g.IsCompleted,
		CreatedAt:     g.CreatedAt,
		UpdatedAt:     g.UpdatedAt,
	}, nil
}
