package accountService

import (
	"FiscalGolang/internal/api/account"
	accountRepository "FiscalGolang/internal/api/account/repository"
	"FiscalGolang/internal/entity"
	"FiscalGolang/pkg/utils"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IAccountService interface {
	CreateAccount(ctx context.Context, req account.CreateAccountRequest) (entity.Account, error)
	GetAccountByID(ctx context.Context, id string, userID string) (entity.Account, error)
	GetAccounts(ctx context.Context, userID string) ([]entity.Account, error)
	UpdateAccount(ctx context.Context, req account.UpdateAccountRequest) (entity.Account, error)
	DeleteAccount(ctx context.Context, id string, userID string) error
	GetTotalBalance(ctx context.Context, userID string) (decimal.Decimal, error)
}

type accountService struct {
	log               *logrus.Logger
	accountRepository accountRepository.Repository
	utils             utils.IUtils
}

func NewAccountService(log *logrus.Logger, ar accountRepository.Repository, utils utils.IUtils) IAccountService {
	return &accountService{
		log:               log,
		accountRepository: ar,
		utils:             utils,
	}
}
