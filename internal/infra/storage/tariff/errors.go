package tariff

import "errors"

var (
	// ErrTariffNotFound возвращается, когда строка тарифа отсутствует
	// (БД не была инициализирована миграциями)
	ErrTariffNotFound = errors.New("tariff.repository: tariff settings not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("tariff.repository: failed to build query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("tariff.repository: failed to scan row")
)
