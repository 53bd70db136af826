package discountrule

import "errors"

var (
	// ErrRuleNotFound возвращается, когда правило скидки не найдено
	ErrRuleNotFound = errors.New("discountrule.repository: rule not found")

	// ErrSettingsNotFound возвращается, когда строка настроек скидок отсутствует
	// Строка настроек создается миграцией и существует всегда
	ErrSettingsNotFound = errors.New("discountrule.repository: discount settings row not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("discountrule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("discountrule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("discountrule.repository: failed to scan row")
)
