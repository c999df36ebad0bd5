package vector_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/chewxy/math32"
	orand "github.com/sw965/omw/math/rand"
	"github.com/sw965/uguisu/blas32/vector"
	"gonum.org/v1/gonum/blas/blas32"
)

func TestNewZeros(t *testing.T) {
	result := vector.NewZeros(7)
	fmt.Println(result)
}

func TestClone(t *testing.T) {
	vec := blas32.Vector{
		N:    3,
		Inc:  1,
		Data: []float32{1.0, 2.0, 3.0},
	}

	result := vector.Clone(vec)
	result.Data[0] = 1000.0

	if vec.Data[0] != 1.0 {
		t.Errorf("テスト失敗")
	}
}

func TestAffine(t *testing.T) {
	//w は (入力数, 出力数) の形
	w := blas32.General{
		Rows:   3,
		Cols:   2,
		Stride: 2,
		Data: []float32{
			1, 2,
			3, 4,
			5, 6,
		},
	}

	x := vector.New([]float32{1, 1, 1})
	b := vector.New([]float32{10, 20})

	result := vector.Affine(x, w, b)
	expected := []float32{1 + 3 + 5 + 10, 2 + 4 + 6 + 20}

	for i := range expected {
		if math32.Abs(result.Data[i]-expected[i]) > 1e-6 {
			t.Errorf("テスト失敗")
		}
	}
}

func TestSigmoid(t *testing.T) {
	x := vector.New([]float32{0.0})
	y := vector.Sigmoid(x)
	if math32.Abs(y.Data[0]-0.5) > 1e-6 {
		t.Errorf("テスト失敗")
	}
}

func TestSoftmax(t *testing.T) {
	rng := orand.NewMt19937()
	x := vector.NewRandNormal(10, rng)
	y := vector.Softmax(x)

	sum := vector.Sum(y)
	if math32.Abs(sum-1.0) > 1e-5 {
		t.Errorf("テスト失敗")
	}
}

func TestBinaryCrossEntropy(t *testing.T) {
	y := vector.New([]float32{0.4, 0.6, 0.9, 0.2})
	label := vector.New([]float32{1, 0, 1, 1})

	result, err := vector.BinaryCrossEntropy(y, label)
	if err != nil {
		panic(err)
	}

	expected := -math.Log(0.4) - math.Log(1.0-0.6) - math.Log(0.9) - math.Log(0.2)
	if math.Abs(float64(result)-expected) > 1e-5 {
		t.Errorf("テスト失敗")
	}

	_, err = vector.BinaryCrossEntropy(vector.New([]float32{0.0}), vector.New([]float32{1}))
	if err == nil {
		t.Errorf("テスト失敗")
	}

	_, err = vector.BinaryCrossEntropy(vector.New([]float32{0.5, 0.5}), vector.New([]float32{1}))
	if err == nil {
		t.Errorf("テスト失敗")
	}
}

func TestCrossEntropy(t *testing.T) {
	y := vector.New([]float32{0.1, 0.8, 0.1})
	label := vector.New([]float32{0, 1, 0})

	result, err := vector.CrossEntropy(y, label)
	if err != nil {
		panic(err)
	}

	expected := float32(-math.Log(0.8))
	if math32.Abs(result-expected) > 1e-5 {
		t.Errorf("テスト失敗")
	}
}

func TestStandardize(t *testing.T) {
	rng := orand.NewMt19937()
	x := vector.NewRandNormal(100, rng)
	z := vector.Standardize(x)

	mean := vector.Sum(z) / float32(z.N)
	if math32.Abs(mean) > 1e-4 {
		t.Errorf("テスト失敗")
	}
}
