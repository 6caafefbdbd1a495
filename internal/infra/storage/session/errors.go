package session

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена
	ErrSessionNotFound = errors.New("session.repository: vehicle session not found")

	// ErrSessionAlreadyClosed возвращается, когда защищенное закрытие
	// не нашло открытой сессии (exit_time уже проставлен)
	ErrSessionAlreadyClosed = errors.New("session.repository: vehicle session already closed")

	// ErrDuplicateOpenSession возвращается при нарушении инварианта
	// "одна открытая сессия на (location_id, license_plate)" -
	// частичный уникальный индекс БД отбил вставку
	ErrDuplicateOpenSession = errors.New("session.repository: open session already exists for this plate")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("session.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("session.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("session.repository: failed to scan row")
)
