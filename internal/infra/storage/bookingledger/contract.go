package bookingledger

import (
	"github.com/AnshGupta06/Mindsettler-GWOC-26-sub001/pkg/dbmetrics"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor
