package tensor

import (
	"fmt"
	"slices"

	"github.com/sw965/omw/fn"
	omwmath "github.com/sw965/omw/math"
)

type D1 []float64

func (d1 D1) AddScalar(s float64) {
	for i := range d1 {
		d1[i] += s
	}
}

func (d1 D1) Add(other D1) error {
	if len(d1) != len(other) {
		return fmt.Errorf("tensor.D1 の長さが一致しないため、加算できません。")
	}

	for i := range d1 {
		d1[i] += other[i]
	}
	return nil
}

func (d1 D1) SubScalar(s float64) {
	for i := range d1 {
		d1[i] -= s
	}
}

func (d1 D1) Sub(other D1) error {
	if len(d1) != len(other) {
		return fmt.Errorf("tensor.D1 の長さが一致しないため、減算できません。")
	}

	for i := range d1 {
		d1[i] -= other[i]
	}
	return nil
}

func (d1 D1) MulScalar(s float64) {
	for i := range d1 {
		d1[i] *= s
	}
}

func (d1 D1) Mul(other D1) error {
	if len(d1) != len(other) {
		return fmt.Errorf("tensor.D1 の長さが一致しないため、乗算できません。")
	}

	for i := range d1 {
		d1[i] *= other[i]
	}
	return nil
}

func (d1 D1) DivScalar(s float64) {
	for i := range d1 {
		d1[i] /= s
	}
}

func (d1 D1) Div(other D1) error {
	if len(d1) != len(other) {
		return fmt.Errorf("tensor.D1 の長さが一致しないため、除算できません。")
	}

	for i := range d1 {
		d1[i] /= other[i]
	}
	return nil
}

func (d1 D1) Clone() D1 {
	return slices.Clone(d1)
}

func (d1 D1) Copy(src D1) {
	for i := range d1 {
		d1[i] = src[i]
	}
}

func (d1 D1) Equal(other D1) bool {
	return slices.Equal(d1, other)
}

func (d1 D1) Max() float64 {
	return omwmath.Max(d1...)
}

func (d1 D1) Sum() float64 {
	return omwmath.Sum(d1...)
}

func (d1 D1) MapFunc(f func(float64) float64) D1 {
	return fn.Map[D1](d1, f)
}

func (d1 D1) DotProduct(other D1) (float64, error) {
	if len(d1) != len(other) {
		return 0.0, fmt.Errorf("tensor.D1 の長さが一致しないため、内積を計算できません。")
	}

	sum := 0.0
	for i := range d1 {
		sum += d1[i] * other[i]
	}
	return sum, nil
}

func D1AddScalar(d1 D1, s float64) D1 {
	y := slices.Clone(d1)
	y.AddScalar(s)
	return y
}

func D1Add(d1, other D1) (D1, error) {
	y := slices.Clone(d1)
	err := y.Add(other)
	return y, err
}

func D1SubScalar(d1 D1, s float64) D1 {
	y := slices.Clone(d1)
	y.SubScalar(s)
	return y
}

func D1Sub(d1, other D1) (D1, error) {
	y := slices.Clone(d1)
	err := y.Sub(other)
	return y, err
}

func D1MulScalar(d1 D1, s float64) D1 {
	y := slices.Clone(d1)
	y.MulScalar(s)
	return y
}

func D1Mul(d1, other D1) (D1, error) {
	y := slices.Clone(d1)
	err := y.Mul(other)
	return y, err
}

func D1DivScalar(d1 D1, s float64) D1 {
	y := slices.Clone(d1)
	y.DivScalar(s)
	return y
}

func D1Div(d1, other D1) (D1, error) {
	y := slices.Clone(d1)
	err := y.Div(other)
	return y, err
}
