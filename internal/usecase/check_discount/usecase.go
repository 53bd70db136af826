package check_discount

import (
	"context"
	"fmt"

	"github.com/AnshGupta06/Mindsettler-GWOC-26-sub001/internal/domain"
)

// UseCase use case проверки скидок клиента
type UseCase struct {
	ruleRepo   RuleRepository
	ledgerRepo LedgerRepository
	txManager  TransactionManager
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	ruleRepo RuleRepository,
	ledgerRepo LedgerRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		ruleRepo:   ruleRepo,
		ledgerRepo: ledgerRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

// Execute резолвит все тиры скидок, совпавшие с количеством подтвержденных
// бронирований клиента
//
// Переключатель, активные правила и счетчик читаются в одной read-only
// транзакции: резолв работает над консистентным снапшотом
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckDiscount: user=%d", req.UserID)

	if req.UserID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	var resp *Response

	err := uc.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		// 1. Глобальный переключатель: выключен - тиров нет, независимо от is_active
		enabled, err := uc.ruleRepo.GetGlobalEnabled(txCtx)
		if err != nil {
			uc.logger.Error("CheckDiscount: failed to get global switch: %v", err)
			return fmt.Errorf("%w: failed to get global switch: %v", ErrInternal, err)
		}

		if !enabled {
			uc.logger.Info("CheckDiscount: discounts globally disabled, user=%d", req.UserID)
			resp = &Response{Enabled: false, Matches: []MatchedRule{}}
			return nil
		}

		// 2. Активные правила
		rules, err := uc.ruleRepo.ListActive(txCtx)
		if err != nil {
			uc.logger.Error("CheckDiscount: failed to list active rules: %v", err)
			return fmt.Errorf("%w: failed to list active rules: %v", ErrInternal, err)
		}

		// 3. Количество подтвержденных бронирований из журнала
		count, err := uc.ledgerRepo.CountConfirmed(txCtx, req.UserID)
		if err != nil {
			uc.logger.Error("CheckDiscount: failed to count confirmed bookings for user=%d: %v", req.UserID, err)
			return fmt.Errorf("%w: failed to count confirmed bookings: %v", ErrInternal, err)
		}

		// 4. Чистый резолв: все совпавшие тиры, без выбора победителя
		matched := domain.ResolveDiscounts(count, rules)

		resp = &Response{
			Enabled:        true,
			ConfirmedCount: count,
			Matches:        fromDomainRules(matched),
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CheckDiscount: user=%d, confirmed=%d, matches=%d",
		req.UserID, resp.ConfirmedCount, len(resp.Matches))

	return resp, nil
}
