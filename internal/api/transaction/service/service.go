package transactionService

import (
	"FiscalGolang/internal/api/transaction"
	transactionRepository "FiscalGolang/internal/api/transaction/repository"
	"FiscalGolang/internal/entity"
	"FiscalGolang/pkg/utils"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type ITransactionService interface {
	CreateTransaction(ctx context.Context, req transaction.CreateTransactionRequest) (entity.Transaction, error)
	GetTransactionByID(ctx context.Context, id string, userID string) (entity.Transaction, error)
	GetTransactions(ctx context.Context, req transaction.ListTransactionsRequest) ([]entity.Transaction, error)
	UpdateTransaction(ctx context.Context, req transaction.UpdateTransactionRequest) (entity.Transaction, error)
	DeleteTransaction(ctx context.Context, id string, userID string) error
}

type transactionService struct {
	log                   *logrus.Logger
	transactionRepository transactionRepository.Repository
	utils                 utils.IUtils
}

func NewTransactionService(log *logrus.Logger, tr transactionRepository.Repository, utils utils.IUtils) ITransactionService {
	return &transactionService{
		log:                   log,
		transactionRepository: tr,
		utils:                 utils,
	}
}
