package driveup_checkout

import "errors"

var (
	// ErrSessionNotFound возвращается, когда открытая сессия не найдена
	// на указанной локации
	ErrSessionNotFound = errors.New("driveup_checkout: vehicle session not found")

	// ErrSessionAlreadyClosed возвращается при повторном выезде
	ErrSessionAlreadyClosed = errors.New("driveup_checkout: vehicle session already closed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("driveup_checkout: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("driveup_checkout: internal error")
)
