package layer1d_test

import (
	"testing"

	"github.com/chewxy/math32"
	orand "github.com/sw965/omw/math/rand"
	tensor2d "github.com/sw965/uguisu/blas32/tensor/2d"
	"github.com/sw965/uguisu/blas32/vector"
	layer1d "github.com/sw965/uguisu/layer/1d"
)

func TestPropagate(t *testing.T) {
	rng := orand.NewMt19937()

	w1 := tensor2d.NewHe(3, 4, rng)
	b1 := vector.NewZeros(4)
	w2 := tensor2d.NewHe(4, 2, rng)
	b2 := vector.NewZeros(2)

	forwards := layer1d.Forwards{
		layer1d.NewAffineForward(w1, b1),
		layer1d.SigmoidForward,
		layer1d.NewAffineForward(w2, b2),
		layer1d.SoftmaxForward,
	}

	x := vector.NewRandNormal(3, rng)
	y, err := forwards.Propagate(x)
	if err != nil {
		panic(err)
	}

	//手動で合成した場合と一致する事
	expected := vector.Softmax(vector.Affine(vector.Sigmoid(vector.Affine(x, w1, b1)), w2, b2))

	if y.N != expected.N {
		t.Errorf("テスト失敗")
	}

	for i := range y.Data {
		if math32.Abs(y.Data[i]-expected.Data[i]) > 1e-6 {
			t.Errorf("テスト失敗")
		}
	}

	sum := vector.Sum(y)
	if math32.Abs(sum-1.0) > 1e-5 {
		t.Errorf("テスト失敗")
	}
}

func TestLeakyReLUForward(t *testing.T) {
	f := layer1d.NewLeakyReLUForward(0.1)
	x := vector.New([]float32{-10.0, 10.0})
	y, err := f(x)
	if err != nil {
		panic(err)
	}

	if math32.Abs(y.Data[0]-(-1.0)) > 1e-6 {
		t.Errorf("テスト失敗")
	}

	if math32.Abs(y.Data[1]-10.0) > 1e-6 {
		t.Errorf("テスト失敗")
	}
}
