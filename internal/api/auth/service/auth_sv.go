package authService

import (
	"FiscalGolang/internal/api/auth"
	"FiscalGolang/internal/entity"
	contextPkg "FiscalGolang/pkg/context"
	jwtPkg "FiscalGolang/pkg/jwt"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const sessionTTL = time.Hour * 1

func (s *authService) Register(ctx context.Context, req auth.RegisterUserRequest) (entity.User, error) {
	requestID := contextPkg.GetRequestID(ctx)

	hashed, err := s.bcryptUtils.HashPassword(req.Password)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to hash password")
		return entity.User{}, err
	}

	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return entity.User{}, err
	}

	user := entity.User{
		ID:        id,
		Email:     req.Email,
		Name:      req.Name,
		Password:  hashed,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	repo, err := s.authRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.User{}, err
	}

	if err := repo.Users.Create(ctx, user); err != nil {
		if errors.Is(err, auth.ErrEmailAlreadyExists) {
			return entity.User{}, err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create user")
		return entity.User{}, auth.ErrCreateUser
	}

	return user, nil
}

// Login verifies credentials, records a server-side session in redis and
// issues a JWT carrying the session ID. A missing user and a wrong
// password are reported identically.
func (s *authService) Login(ctx context.Context, req auth.LoginUserRequest) (auth.LoginUserResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.authRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return auth.LoginUserResponse{}, err
	}

	user, err := repo.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
			}).Warn("Login attempt for unknown email")
			return auth.LoginUserResponse{}, auth.ErrInvalidEmailOrPassword
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get user by email")
		return auth.LoginUserResponse{}, err
	}

	if err := s.bcryptUtils.ComparePassword(user.Password, req.Password); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("Password comparison failed")
		return auth.LoginUserResponse{}, auth.ErrInvalidEmailOrPassword
	}

	sessionID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate session ID")
		return auth.LoginUserResponse{}, err
	}

	if err := s.sessions.SetSession(ctx, sessionID, user.ID, sessionTTL); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to store session")
		return auth.LoginUserResponse{}, err
	}

	token, expired, err := jwtPkg.Sign(map[string]interface{}{
		"id":    user.ID,
		"email": user.Email,
		"name":  user.Name,
		"sid":   sessionID,
	}, sessionTTL)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to sign token")
		return auth.LoginUserResponse{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
	}).Info("Token created")

	return auth.LoginUserResponse{
		AccessToken:      token,
		ExpiresInMinutes: time.Until(time.Unix(expired, 0)).Minutes(),
	}, nil
}

// Logout drops the redis session; the JWT dies with it even though its
// signature stays valid until expiry.
func (s *authService) Logout(ctx context.Context, sessionID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	if err := s.sessions.DeleteSession(ctx, sessionID); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to delete session")
		return err
	}

	return nil
}
