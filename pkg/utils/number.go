package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// SafeDivide divide protegendo contra divisão por zero: o denominador é
// elevado a no mínimo 1, de forma que razões derivadas de contagens zeradas
// resultem em 0 em vez de pânico.
func SafeDivide(numerator, denominator float64) float64 {
	if denominator < 1 {
		denominator = 1
	}

	return numerator / denominator
}
