package authService

import (
	"FiscalGolang/internal/api/auth"
	authRepository "FiscalGolang/internal/api/auth/repository"
	"FiscalGolang/internal/entity"
	"FiscalGolang/pkg/bcrypt"
	"FiscalGolang/pkg/redis"
	"FiscalGolang/pkg/utils"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IAuthService interface {
	Register(ctx context.Context, req auth.RegisterUserRequest) (entity.User, error)
	Login(ctx context.Context, req auth.LoginUserRequest) (auth.LoginUserResponse, error)
	Logout(ctx context.Context, sessionID string) error
	GetProfile(ctx context.Context, userID string) (entity.User, error)
	UpdateProfile(ctx context.Context, req auth.UpdateUserRequest) (entity.User, error)
	DeleteUser(ctx context.Context, userID string, sessionID string) error
}

type authService struct {
	log            *logrus.Logger
	authRepository authRepository.Repository
	bcryptUtils    bcrypt.IBcrypt
	sessions       redis.IRedis
	utils          utils.IUtils
}

func NewAuthService(
	log *logrus.Logger,
	ar authRepository.Repository,
	bcryptUtils bcrypt.IBcrypt,
	sessions redis.IRedis,
	utils utils.IUtils,
) IAuthService {
	return &authService{
		log:            log,
		authRepository: ar,
		bcryptUtils:    bcryptUtils,
		sessions:       sessions,
		utils:          utils,
	}
}
