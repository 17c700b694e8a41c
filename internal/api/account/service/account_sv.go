package accountService

import (
	"FiscalGolang/internal/api/account"
	"FiscalGolang/internal/entity"
	contextPkg "FiscalGolang/pkg/context"
	"FiscalGolang/pkg/money"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const defaultCurrency = "IDR"

func (s *accountService) CreateAccount(ctx context.Context, req account.CreateAccountRequest) (entity.Account, error) {
	requestID := contextPkg.GetRequestID(ctx)

	balance := decimal.Zero
	if req.Balance != "" {
		parsed, err := money.Parse(req.Balance)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"balance":    req.Balance,
			}).Warn("Rejected malformed opening balance")
			return entity.Account{}, account.ErrInvalidBalance
		}
		balance = parsed
	}

	currency := req.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return entity.Account{}, err
	}

	a := entity.Account{
		ID:        id,
		UserID:    req.UserID,
		Name:      req.Name,
		Type:      req.Type,
		Balance:   balance,
		Currency:  currency,
		Color:     req.Color,
		Icon:      req.Icon,
		IsActive:  true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := a.Validate(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid account data")
		return entity.Account{}, err
	}

	repo, err := s.accountRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Account{}, err
	}

	if err := repo.Accounts.Create(ctx, a); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create account")
		return entity.Account{}, account.ErrCreateAccount
	}

	return a, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, id string, userID string) (entity.Account, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.accountRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Account{}, err
	}

	return repo.Accounts.GetByID(ctx, id, userID)
}

func (s *accountService) GetAccounts(ctx context.Context, userID string) ([]entity.Account, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.accountRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, err
	}

	return repo.Accounts.GetAll(ctx, userID)
}

// UpdateAccount merges the partial request into the stored account. The
// balance field is untouchable here: it only moves through transaction
// posting, amendment, and voiding.
func (s *accountService) UpdateAccount(ctx context.Context, req account.UpdateAccountRequest) (entity.Account, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.accountRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Account{}, err
	}

	a, err := repo.Accounts.GetByID(ctx, req.ID, req.UserID)
	if err != nil {
		return entity.Account{}, err
	}

	if req.Name != "" {
		a.Name = req.Name
	}
	if req.Type != "" {
		a.Type = req.Type
	}
	if req.Color != "" {
		a.Color = req.Color
	}
	if req.Icon != "" {
		a.Icon = req.Icon
	}
	if req.IsActive != nil {
		a.IsActive = *req.IsActive
	}
	a.UpdatedAt = time.Now()

	if err := a.Validate(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid account data")
		return entity.Account{}, err
	}

	if err := repo.Accounts.Update(ctx, a); err != nil {
		if err == account.ErrAccountNotFound {
			return entity.Account{}, err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to update account")
		return entity.Account{}, account.ErrUpdateAccount
	}

	return a, nil
}

func (s *accountService) DeleteAccount(ctx context.Context, id string, userID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.accountRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	if err := repo.Accounts.Delete(ctx, id, userID); err != nil {
		if err == account.ErrAccountNotFound {
			return err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to delete account")
		return account.ErrDeleteAccount
	}

	return nil
}

// GetTotalBalance sums the balances of the caller's active accounts with
// exact decimal arithmetic.
func (s *accountService) GetTotalBalance(ctx context.Context, userID string) (decimal.Decimal, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.accountRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return decimal.Zero, err
	}

	accounts, err := repo.Accounts.GetActive(ctx, userID)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, a := range accounts {
		total = total.Add(a.Balance)
	}

	return total, nil
}
