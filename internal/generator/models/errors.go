package models

import "errors"

var (
	// ErrInvalidConfig: неположительный размер, шаг рам или значение вне диапазона.
	ErrInvalidConfig = errors.New("invalid config")

	// ErrUnsupportedRoofType: тип крыши известен схеме, но геометрия для него не реализована.
	ErrUnsupportedRoofType = errors.New("unsupported roof type")
)
