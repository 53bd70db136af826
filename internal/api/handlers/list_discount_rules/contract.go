package list_discount_rules

import (
	"context"

	"github.com/AnshGupta06/Mindsettler-GWOC-26-sub001/internal/service/discounts/models"
)

type DiscountsService interface {
	ListRules(ctx context.Context) (*models.RuleListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
