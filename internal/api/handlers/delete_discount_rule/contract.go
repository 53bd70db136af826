package delete_discount_rule

import "context"

type DiscountsService interface {
	DeleteRule(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
