package tensor2d_test

import (
	"slices"
	"testing"

	"github.com/chewxy/math32"
	orand "github.com/sw965/omw/math/rand"
	tensor2d "github.com/sw965/uguisu/blas32/tensor/2d"
	"github.com/sw965/uguisu/blas32/vector"
	"gonum.org/v1/gonum/blas/blas32"
)

func TestTranspose(t *testing.T) {
	x := blas32.General{
		Rows:   2,
		Cols:   3,
		Stride: 3,
		Data: []float32{
			1, 2, 3,
			4, 5, 6,
		},
	}

	result := tensor2d.Transpose(x)
	expected := blas32.General{
		Rows:   3,
		Cols:   2,
		Stride: 2,
		Data: []float32{
			1, 4,
			2, 5,
			3, 6,
		},
	}

	if result.Rows != expected.Rows {
		t.Errorf("テスト失敗")
	}

	if result.Cols != expected.Cols {
		t.Errorf("テスト失敗")
	}

	if !slices.Equal(result.Data, expected.Data) {
		t.Errorf("テスト失敗")
	}
}

func TestAffine(t *testing.T) {
	//2サンプルのバッチ
	x := blas32.General{
		Rows:   2,
		Cols:   3,
		Stride: 3,
		Data: []float32{
			1, 0, 0,
			0, 1, 1,
		},
	}

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

	b := vector.New([]float32{10, 20})

	result := tensor2d.Affine(x, w, b)

	expected := []float32{
		1 + 10, 2 + 20,
		3 + 5 + 10, 4 + 6 + 20,
	}

	for i := range expected {
		if math32.Abs(result.Data[i]-expected[i]) > 1e-6 {
			t.Errorf("テスト失敗")
		}
	}
}

func TestAffineAgainstVector(t *testing.T) {
	rng := orand.NewMt19937()
	batch := 4
	xn := 5
	yn := 3

	x := tensor2d.NewRandNormal(batch, xn, rng)
	w := tensor2d.NewHe(xn, yn, rng)
	b := vector.NewRandNormal(yn, rng)

	batchY := tensor2d.Affine(x, w, b)

	//1行ずつGemvで計算した結果と一致する事
	for r := 0; r < batch; r++ {
		rowY := vector.Affine(tensor2d.RowView(x, r), w, b)
		for c := 0; c < yn; c++ {
			idx := tensor2d.At(batchY, r, c)
			if math32.Abs(batchY.Data[idx]-rowY.Data[c]) > 1e-4 {
				t.Errorf("テスト失敗")
			}
		}
	}
}

func TestSigmoid(t *testing.T) {
	x := tensor2d.NewZeros(2, 2)
	y := tensor2d.Sigmoid(x)
	for _, e := range y.Data {
		if math32.Abs(e-0.5) > 1e-6 {
			t.Errorf("テスト失敗")
		}
	}
}
