package entity

import "errors"

var (
	// ErrInvalidDate cuando la fecha no viene como YYYY-MM-DD
	ErrInvalidDate = errors.New("invalid date format, expected YYYY-MM-DD")

	// ErrInvalidMonth cuando el mes queda fuera de 1 a 12
	ErrInvalidMonth = errors.New("month must be between 1 and 12")

	// ErrInvalidYear cuando el año no es un entero positivo
	ErrInvalidYear = errors.New("year must be a positive integer")

	// ErrSnapshotNotFound cuando no hay cierre guardado para la fecha
	ErrSnapshotNotFound = errors.New("stats snapshot not found")
)
