package scalar

import (
	"math"
)

func Sigmoid(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}

func SigmoidGrad(y float64) float64 {
	return y * (1.0 - y)
}

func SigmoidDerivative(x float64) float64 {
	y := Sigmoid(x)
	return SigmoidGrad(y)
}

func TanhGrad(y float64) float64 {
	return 1.0 - (y * y)
}

func TanhDerivative(x float64) float64 {
	y := math.Tanh(x)
	return TanhGrad(y)
}

func ReLU(x float64) float64 {
	if x > 0 {
		return x
	}
	return 0.0
}

func LeakyReLU(alpha float64) func(float64) float64 {
	return func(x float64) float64 {
		if x >= 0 {
			return x
		} else {
			return x * alpha
		}
	}
}
