package mlfuncs1d

import (
	"fmt"
	"math"

	"github.com/sw965/omw/fn"
	omwmath "github.com/sw965/omw/math"
	"github.com/sw965/uguisu/mlfuncs/scalar"
	"github.com/sw965/uguisu/tensor"
)

func Sigmoid(x tensor.D1) tensor.D1 {
	return fn.Map[tensor.D1](x, scalar.Sigmoid)
}

func Tanh(x tensor.D1) tensor.D1 {
	return fn.Map[tensor.D1](x, math.Tanh)
}

func ReLU(x tensor.D1) tensor.D1 {
	return fn.Map[tensor.D1](x, scalar.ReLU)
}

func LeakyReLU(x tensor.D1, alpha float64) tensor.D1 {
	return fn.Map[tensor.D1](x, scalar.LeakyReLU(alpha))
}

func Softmax(x tensor.D1) tensor.D1 {
	maxX := omwmath.Max(x...) // オーバーフロー対策
	expX := make(tensor.D1, len(x))
	sumExpX := 0.0
	for i, xi := range x {
		expX[i] = math.Exp(xi - maxX)
		sumExpX += expX[i]
	}
	y := make(tensor.D1, len(x))
	for i := range expX {
		y[i] = expX[i] / sumExpX
	}
	return y
}

/*
BinaryCrossEntropy は、予測確率 y と二値ラベル t の交差エントロピーの総和を返す。

	Σ t[i]*(-ln(y[i])) + (1-t[i])*(-ln(1-y[i]))

平均ではなく総和である事に注意。
Goの math.Log(0) は -Inf を返して止まらないので、y[i] が (0, 1) の範囲外である場合は、
エラーとして呼び出し側に伝える。
*/
func BinaryCrossEntropy(y, t tensor.D1) (float64, error) {
	if len(y) != len(t) {
		return 0.0, fmt.Errorf("len(y) != len(t) であるため、BinaryCrossEntropyを計算できません。")
	}

	total := 0.0
	for i := range y {
		yi := y[i]
		if yi <= 0.0 || yi >= 1.0 {
			return 0.0, fmt.Errorf("y[%d] = %v が (0, 1) の範囲外であるため、BinaryCrossEntropyを計算できません。", i, yi)
		}
		ti := t[i]
		total += ti*(-math.Log(yi)) + (1.0-ti)*(-math.Log(1.0-yi))
	}
	return total, nil
}

// one-hotなtを想定している。
func CrossEntropy(y, t tensor.D1) (float64, error) {
	if len(y) != len(t) {
		return 0.0, fmt.Errorf("len(y) != len(t) であるため、CrossEntropyを計算できません。")
	}

	loss := 0.0
	e := 0.0001
	for i := range y {
		yi := math.Max(y[i], e)
		loss += -t[i] * math.Log(yi)
	}
	return loss, nil
}

func SumSquaredError(y, t tensor.D1) (float64, error) {
	if len(y) != len(t) {
		return 0.0, fmt.Errorf("len(y) != len(t) であるため、SumSquaredErrorを計算できません。")
	}

	sqSum := 0.0
	for i := range y {
		diff := y[i] - t[i]
		sqSum += (diff * diff)
	}
	return 0.5 * sqSum, nil
}

func MeanSquaredError(y, t tensor.D1) (float64, error) {
	n := len(y)
	if n == 0 {
		return 0.0, fmt.Errorf("len(y) == 0 であるため、MeanSquaredErrorを計算できません。")
	}

	sqSum, err := SumSquaredError(y, t)
	return sqSum / float64(n), err
}
