package discounts

import (
	"context"

	"github.com/AnshGupta06/Mindsettler-GWOC-26-sub001/internal/domain"
)

// RuleRepository интерфейс репозитория правил скидок
type RuleRepository interface {
	Create(ctx context.Context, rule *domain.DiscountRule) (*domain.DiscountRule, error)
	Delete(ctx context.Context, id int64) error
	ListAll(ctx context.Context) ([]*domain.DiscountRule, error)
	DeleteAll(ctx context.Context) error
	CreateMany(ctx context.Context, rules []*domain.DiscountRule) error
	GetGlobalEnabled(ctx context.Context) (bool, error)
	SetGlobalEnabled(ctx context.Context, enabled bool) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
