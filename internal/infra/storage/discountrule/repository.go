package discountrule

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/AnshGupta06/Mindsettler-GWOC-26-sub001/internal/domain"
	"github.com/AnshGupta06/Mindsettler-GWOC-26-sub001/pkg/dbmetrics"
	"github.com/AnshGupta06/Mindsettler-GWOC-26-sub001/pkg/psqlbuilder"
)

// settingsRowID единственная строка таблицы discount_settings
const settingsRowID = 1

// Repository репозиторий для работы с правилами скидок и глобальным переключателем
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория правил скидок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое правило скидки
func (r *Repository) Create(ctx context.Context, rule *domain.DiscountRule) (*domain.DiscountRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("discount_rules").
		Columns(
			"booking_count_from",
			"booking_count_to",
			"discount_percent",
			"label",
			"is_active",
		).
		Values(
			rule.BookingCountFrom,
			rule.BookingCountTo,
			rule.DiscountPercent,
			rule.Label,
			rule.IsActive,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&rule.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	rule.CreatedAt = createdAt.Time
	rule.UpdatedAt = updatedAt.Time

	return rule, nil
}

// GetByID получает правило скидки по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.DiscountRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"booking_count_from",
		"booking_count_to",
		"discount_percent",
		"label",
		"is_active",
		"created_at",
		"updated_at",
	).
		From("discount_rules").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var rule domain.DiscountRule
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&rule.ID,
		&rule.BookingCountFrom,
		&rule.BookingCountTo,
		&rule.DiscountPercent,
		&rule.Label,
		&rule.IsActive,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrRuleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan rule: %v", ErrScanRow, err)
	}

	rule.CreatedAt = createdAt.Time
	rule.UpdatedAt = updatedAt.Time

	return &rule, nil
}

// ListAll получает все правила скидок, включая неактивные
func (r *Repository) ListAll(ctx context.Context) ([]*domain.DiscountRule, error) {
	return r.list(ctx, false)
}

// ListActive получает только активные правила скидок
// Глобальный переключатель здесь не учитывается - он применяется сервисным слоем
func (r *Repository) ListActive(ctx context.Context) ([]*domain.DiscountRule, error) {
	return r.list(ctx, true)
}

func (r *Repository) list(ctx context.Context, activeOnly bool) ([]*domain.DiscountRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"booking_count_from",
		"booking_count_to",
		"discount_percent",
		"label",
		"is_active",
		"created_at",
		"updated_at",
	).
		From("discount_rules").
		OrderBy("booking_count_from ASC, booking_count_to ASC, id ASC")

	if activeOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_active": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: list - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: list - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanRules(rows)
}

// Delete удаляет правило скидки
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("discount_rules").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrRuleNotFound
	}

	return nil
}

// DeleteAll удаляет все правила скидок
// Используется только операцией сброса внутри транзакции вместе с CreateMany
func (r *Repository) DeleteAll(ctx context.Context) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("discount_rules").ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteAll - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeleteAll - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

// CreateMany вставляет набор правил одним запросом
func (r *Repository) CreateMany(ctx context.Context, rules []*domain.DiscountRule) error {
	if len(rules) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("discount_rules").
		Columns(
			"booking_count_from",
			"booking_count_to",
			"discount_percent",
			"label",
			"is_active",
		)

	for _, rule := range rules {
		insertBuilder = insertBuilder.Values(
			rule.BookingCountFrom,
			rule.BookingCountTo,
			rule.DiscountPercent,
			rule.Label,
			rule.IsActive,
		)
	}

	query, args, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: CreateMany - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: CreateMany - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetGlobalEnabled читает состояние глобального переключателя скидок
func (r *Repository) GetGlobalEnabled(ctx context.Context) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("discounts_enabled").
		From("discount_settings").
		Where(squirrel.Eq{"id": settingsRowID}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: GetGlobalEnabled - build select query: %v", ErrBuildQuery, err)
	}

	var enabled bool
	err = executor.QueryRowContext(ctx, query, args...).Scan(&enabled)

	if err == sql.ErrNoRows {
		return false, ErrSettingsNotFound
	}
	if err != nil {
		return false, fmt.Errorf("%w: GetGlobalEnabled - scan settings: %v", ErrScanRow, err)
	}

	return enabled, nil
}

// SetGlobalEnabled переключает глобальный переключатель скидок
func (r *Repository) SetGlobalEnabled(ctx context.Context, enabled bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("discount_settings").
		Set("discounts_enabled", enabled).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": settingsRowID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetGlobalEnabled - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetGlobalEnabled - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetGlobalEnabled - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSettingsNotFound
	}

	return nil
}

// scanRules сканирует результаты запроса в слайс правил
func (r *Repository) scanRules(rows *sql.Rows) ([]*domain.DiscountRule, error) {
	rules := make([]*domain.DiscountRule, 0)

	for rows.Next() {
		var rule domain.DiscountRule
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&rule.ID,
			&rule.BookingCountFrom,
			&rule.BookingCountTo,
			&rule.DiscountPercent,
			&rule.Label,
			&rule.IsActive,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanRules - scan row: %v", ErrScanRow, err)
		}

		rule.CreatedAt = createdAt.Time
		rule.UpdatedAt = updatedAt.Time

		rules = append(rules, &rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanRules - rows error: %v", ErrScanRow, err)
	}

	return rules, nil
}
