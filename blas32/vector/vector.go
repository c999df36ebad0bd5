package vector

import (
	"fmt"
	"math"
	"math/rand"
	"slices"

	"github.com/chewxy/math32"
	omwmath "github.com/sw965/omw/math"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"
)

func NewZeros(n int) blas32.Vector {
	return blas32.Vector{
		N:    n,
		Inc:  1,
		Data: make([]float32, n),
	}
}

func NewZerosLike(vec blas32.Vector) blas32.Vector {
	return NewZeros(vec.N)
}

func NewOnes(n int) blas32.Vector {
	vec := NewZeros(n)
	for i := range vec.Data {
		vec.Data[i] = 1.0
	}
	return vec
}

func NewRandNormal(n int, rng *rand.Rand) blas32.Vector {
	vec := NewZeros(n)
	for i := range vec.Data {
		vec.Data[i] = float32(rng.NormFloat64())
	}
	return vec
}

func NewRandNormalLike(vec blas32.Vector, rng *rand.Rand) blas32.Vector {
	return NewRandNormal(vec.N, rng)
}

func New(data []float32) blas32.Vector {
	return blas32.Vector{
		N:    len(data),
		Inc:  1,
		Data: data,
	}
}

func Clone(vec blas32.Vector) blas32.Vector {
	return blas32.Vector{
		N:    vec.N,
		Inc:  vec.Inc,
		Data: slices.Clone(vec.Data),
	}
}

func Affine(x blas32.Vector, w blas32.General, b blas32.Vector) blas32.Vector {
	yn := len(b.Data)
	y := blas32.Vector{N: yn, Inc: 1, Data: make([]float32, yn)}
	blas32.Copy(b, y)
	blas32.Gemv(blas.Trans, 1.0, w, x, 1.0, y)
	return y
}

func Sigmoid(x blas32.Vector) blas32.Vector {
	y := make([]float32, x.N)
	for i, e := range x.Data {
		y[i] = 1.0 / (1.0 + math32.Exp(-e))
	}
	x.Data = y
	return x
}

func ReLU(x blas32.Vector) blas32.Vector {
	y := make([]float32, x.N)
	for i, e := range x.Data {
		if e > 0 {
			y[i] = e
		}
	}
	x.Data = y
	return x
}

func Softmax(x blas32.Vector) blas32.Vector {
	maxX := omwmath.Max(x.Data...) // オーバーフロー対策
	expX := make([]float32, x.N)
	sumExpX := float32(0.0)
	for i, e := range x.Data {
		expX[i] = math32.Exp(e - maxX)
		sumExpX += expX[i]
	}

	y := make([]float32, x.N)
	for i := range expX {
		y[i] = expX[i] / sumExpX
	}

	x.Data = y
	return x
}

// one-hotなtを想定している。
func CrossEntropy(y, t blas32.Vector) (float32, error) {
	if y.N != t.N {
		return 0.0, fmt.Errorf("要素数が一致しないため、CrossEntropyを計算できません。")
	}

	loss := float32(0.0)
	e := float32(0.0001)
	for i := range y.Data {
		ye := omwmath.Max(y.Data[i], e)
		loss += -t.Data[i] * math32.Log(ye)
	}
	return loss, nil
}

// mlfuncs1d.BinaryCrossEntropy のfloat32版。総和であり、平均ではない。
func BinaryCrossEntropy(y, t blas32.Vector) (float32, error) {
	if y.N != t.N {
		return 0.0, fmt.Errorf("要素数が一致しないため、BinaryCrossEntropyを計算できません。")
	}

	total := float32(0.0)
	for i := range y.Data {
		ye := y.Data[i]
		if ye <= 0.0 || ye >= 1.0 {
			return 0.0, fmt.Errorf("y.Data[%d] = %v が (0, 1) の範囲外であるため、BinaryCrossEntropyを計算できません。", i, ye)
		}
		te := t.Data[i]
		total += te*(-math32.Log(ye)) + (1.0-te)*(-math32.Log(1.0-ye))
	}
	return total, nil
}

func SumSquaredError(y, t blas32.Vector) (float32, error) {
	if y.N != t.N {
		return 0.0, fmt.Errorf("要素数が一致しないため、SumSquaredErrorを計算できません。")
	}

	sqSum := float32(0.0)
	for i := range y.Data {
		diff := y.Data[i] - t.Data[i]
		sqSum += diff * diff
	}
	return 0.5 * sqSum, nil
}

func Standardize(x blas32.Vector) blas32.Vector {
	mean := omwmath.Sum(x.Data...) / float32(x.N)

	//分散を求める
	meanDeviationSqSum := float32(0.0)
	for _, e := range x.Data {
		d := e - mean
		meanDeviationSqSum += d * d
	}
	vari := meanDeviationSqSum / float32(x.N)

	//標準偏差
	std := math32.Sqrt(vari + 1e-5)

	z := make([]float32, x.N)
	for i, e := range x.Data {
		z[i] = (e - mean) / std
	}

	x.Data = z
	return x
}

func Sum(x blas32.Vector) float32 {
	return omwmath.Sum(x.Data...)
}

func ToD1(x blas32.Vector) []float64 {
	y := make([]float64, x.N)
	for i, e := range x.Data {
		y[i] = float64(e)
	}
	return y
}

func IsFinite(x blas32.Vector) bool {
	for _, e := range x.Data {
		e64 := float64(e)
		if math.IsNaN(e64) || math.IsInf(e64, 0) {
			return false
		}
	}
	return true
}
