package check_discount_eligibility

import (
	"context"

	checkDiscount "github.com/AnshGupta06/Mindsettler-GWOC-26-sub001/internal/usecase/check_discount"
)

type CheckDiscountUseCase interface {
	Execute(ctx context.Context, req *checkDiscount.Request) (*checkDiscount.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
