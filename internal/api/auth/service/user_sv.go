package authService

import (
	"FiscalGolang/internal/api/auth"
	"FiscalGolang/internal/entity"
	contextPkg "FiscalGolang/pkg/context"
	"errors"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *authService) GetProfile(ctx context.Context, userID string) (entity.User, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.authRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.User{}, err
	}

	return repo.Users.GetByID(ctx, userID)
}

func (s *authService) UpdateProfile(ctx context.Context, req auth.UpdateUserRequest) (entity.User, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.authRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.User{}, err
	}

	user, err := repo.Users.GetByID(ctx, req.ID)
	if err != nil {
		return entity.User{}, err
	}

	user.Name = req.Name

	if err := repo.Users.Update(ctx, user); err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return entity.User{}, err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to update user")
		return entity.User{}, auth.ErrUpdateUser
	}

	return user, nil
}

// DeleteUser removes the account row; owned financial data cascades in
// the database. The active session is dropped so the token stops working
// immediately.
func (s *authService) DeleteUser(ctx context.Context, userID string, sessionID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.authRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	if err := repo.Users.Delete(ctx, userID); err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to delete user")
		return auth.ErrDeleteUser
	}

	if err := s.sessions.DeleteSession(ctx, sessionID); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to delete session after user removal")
	}

	return nil
}
