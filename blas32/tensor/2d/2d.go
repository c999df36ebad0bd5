package tensor2d

import (
	"math"
	"math/rand"
	"slices"

	"github.com/chewxy/math32"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"
)

func NewZeros(rows, cols int) blas32.General {
	return blas32.General{
		Rows:   rows,
		Cols:   cols,
		Stride: cols,
		Data:   make([]float32, rows*cols),
	}
}

func NewZerosLike(gen blas32.General) blas32.General {
	return NewZeros(gen.Rows, gen.Cols)
}

func NewOnes(rows, cols int) blas32.General {
	gen := NewZeros(rows, cols)
	for i := range gen.Data {
		gen.Data[i] = 1.0
	}
	return gen
}

func NewRandNormal(rows, cols int, rng *rand.Rand) blas32.General {
	gen := NewZeros(rows, cols)
	for i := range gen.Data {
		gen.Data[i] = float32(rng.NormFloat64())
	}
	return gen
}

func NewHe(rows, cols int, rng *rand.Rand) blas32.General {
	gen := NewZeros(rows, cols)
	fanIn := float64(rows)
	std := math.Sqrt(2.0 / fanIn)
	for i := range gen.Data {
		gen.Data[i] = float32(rng.NormFloat64() * std)
	}
	return gen
}

func N(gen blas32.General) int {
	return gen.Rows * gen.Cols
}

func Clone(gen blas32.General) blas32.General {
	return blas32.General{
		Rows:   gen.Rows,
		Cols:   gen.Cols,
		Stride: gen.Stride,
		Data:   slices.Clone(gen.Data),
	}
}

func At(gen blas32.General, row, col int) int {
	return row*gen.Stride + col
}

func ToVector(gen blas32.General) blas32.Vector {
	return blas32.Vector{
		N:    N(gen),
		Inc:  1,
		Data: gen.Data,
	}
}

func Flatten(gen blas32.General) blas32.Vector {
	return blas32.Vector{
		N:    N(gen),
		Inc:  1,
		Data: slices.Clone(gen.Data),
	}
}

func RowView(gen blas32.General, row int) blas32.Vector {
	offset := row * gen.Stride
	return blas32.Vector{
		N:    gen.Cols,
		Inc:  1,
		Data: gen.Data[offset : offset+gen.Cols],
	}
}

func Transpose(gen blas32.General) blas32.General {
	y := NewZeros(gen.Cols, gen.Rows)
	for r := 0; r < gen.Rows; r++ {
		for c := 0; c < gen.Cols; c++ {
			y.Data[At(y, c, r)] = gen.Data[At(gen, r, c)]
		}
	}
	return y
}

// Affine は y = x・w の各行に b を足したものを返す。xの各行が1サンプル。
func Affine(x, w blas32.General, b blas32.Vector) blas32.General {
	y := NewZeros(x.Rows, w.Cols)
	blas32.Gemm(blas.NoTrans, blas.NoTrans, 1.0, x, w, 0.0, y)
	for r := 0; r < y.Rows; r++ {
		blas32.Axpy(1.0, b, RowView(y, r))
	}
	return y
}

func Sigmoid(gen blas32.General) blas32.General {
	y := NewZerosLike(gen)
	for i, e := range gen.Data {
		y.Data[i] = 1.0 / (1.0 + math32.Exp(-e))
	}
	return y
}

func ReLU(gen blas32.General) blas32.General {
	y := NewZerosLike(gen)
	for i, e := range gen.Data {
		if e > 0 {
			y.Data[i] = e
		}
	}
	return y
}

func Scal(alpha float32, gen blas32.General) {
	vec := ToVector(gen)
	blas32.Scal(alpha, vec)
}

func Axpy(alpha float32, x, y blas32.General) {
	xv := ToVector(x)
	yv := ToVector(y)
	blas32.Axpy(alpha, xv, yv)
}
