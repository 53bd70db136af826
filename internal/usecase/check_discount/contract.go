package check_discount

import (
	"context"

	"github.com/AnshGupta06/Mindsettler-GWOC-26-sub001/internal/domain"
)

// RuleRepository интерфейс репозитория правил скидок
type RuleRepository interface {
	GetGlobalEnabled(ctx context.Context) (bool, error)
	ListActive(ctx context.Context) ([]*domain.DiscountRule, error)
}

// LedgerRepository интерфейс для чтения журнала бронирований
type LedgerRepository interface {
	CountConfirmed(ctx context.Context, userID int64) (int, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
