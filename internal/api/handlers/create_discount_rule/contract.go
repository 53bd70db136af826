package create_discount_rule

import (
	"context"

	"github.com/AnshGupta06/Mindsettler-GWOC-26-sub001/internal/service/discounts/models"
)

type DiscountsService interface {
	CreateRule(ctx context.Context, req *models.CreateRuleRequest) (*models.RuleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
