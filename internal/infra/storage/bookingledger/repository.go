package bookingledger

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/AnshGupta06/Mindsettler-GWOC-26-sub001/internal/domain"
	"github.com/AnshGupta06/Mindsettler-GWOC-26-sub001/pkg/dbmetrics"
	"github.com/AnshGupta06/Mindsettler-GWOC-26-sub001/pkg/psqlbuilder"
)

// Repository read-only доступ к журналу бронирований
// Журналом владеет booking flow; здесь только подсчет подтвержденных записей
// для резолва скидок
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория журнала бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CountConfirmed возвращает количество подтвержденных бронирований пользователя
func (r *Repository) CountConfirmed(ctx context.Context, userID int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("bookings").
		Where(squirrel.Eq{
			"user_id": userID,
			"status":  domain.StatusConfirmed,
		}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountConfirmed - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountConfirmed - execute query: %v", ErrExecQuery, err)
	}

	return count, nil
}
