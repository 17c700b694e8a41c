package authRepository

import (
	"FiscalGolang/internal/api/auth"
	"FiscalGolang/internal/entity"
	contextPkg "FiscalGolang/pkg/context"
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

type UserDB struct {
	ID        sql.NullString `db:"id"`
	Email     sql.NullString `db:"email"`
	Name      sql.NullString `db:"name"`
	Password  sql.NullString `db:"password"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

func (r *userRepository) Create(c context.Context, u entity.User) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":         u.ID,
		"email":      u.Email,
		"name":       u.Name,
		"password":   u.Password,
		"created_at": time.Now(),
		"updated_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryCreateUser, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for Create user")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(c, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"email":      u.Email,
			}).Warn("Email already registered")
			return auth.ErrEmailAlreadyExists
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating user")
		return err
	}

	return nil
}

func (r *userRepository) GetByID(c context.Context, id string) (entity.User, error) {
	return r.getUser(c, queryGetUserByID, map[string]interface{}{"id": id})
}

func (r *userRepository) GetByEmail(c context.Context, email string) (entity.User, error) {
	return r.getUser(c, queryGetUserByEmail, map[string]interface{}{"email": email})
}

func (r *userRepository) getUser(c context.Context, baseQuery string, argsKV map[string]interface{}) (entity.User, error) {
	requestID := contextPkg.GetRequestID(c)
	var u UserDB

	query, args, err := sqlx.Named(baseQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("getUser named query preparation err")
		return entity.User{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&u); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
			}).Warn("getUser no user found")
			return entity.User{}, auth.ErrUserNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("getUser execution err")
		return entity.User{}, err
	}

	return makeUser(u), nil
}

func (r *userRepository) Update(c context.Context, u entity.User) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":         u.ID,
		"name":       u.Name,
		"updated_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateUser, argsKV)
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
		return auth.ErrUserNotFound
	}

	return nil
}

// Delete removes the user row; accounts, transactions, budgets, goals and
// owned categories follow through ON DELETE CASCADE.
func (r *userRepository) Delete(c context.Context, id string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeleteUser, argsKV)
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
		return auth.ErrUserNotFound
	}

	return nil
}

func makeUser(u UserDB) entity.User {
	return entity.User{
		ID:        u.ID.String,
		Email:     u.Email.String,
		Name:      u.Name.String,
		Password:  u.Password.String,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
