package utils

import "math"

// Round округляет число до places знаков после запятой
func Round(value float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(value*scale) / scale
}

// Round2 округляет денежную сумму до 2 знаков после запятой
func Round2(value float64) float64 {
	return Round(value, 2)
}

// IsFinite проверяет, является ли число конечным
func IsFinite(value float64) bool {
	return !math.IsInf(value, 0) && !math.IsNaN(value)
}
