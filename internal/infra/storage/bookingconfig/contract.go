package bookingconfig

import "github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"

// Переиспользуем интерфейс из dbmetrics для работы с БД (*sql.DB или *dbmetrics.DB)
type DBExecutor = dbmetrics.DBExecutor
