package layer1d

import (
	"github.com/sw965/uguisu/blas32/vector"
	"gonum.org/v1/gonum/blas/blas32"
)

type Forward func(blas32.Vector) (blas32.Vector, error)
type Forwards []Forward

func (fs Forwards) Propagate(x blas32.Vector) (blas32.Vector, error) {
	var err error
	for _, f := range fs {
		x, err = f(x)
		if err != nil {
			return blas32.Vector{}, err
		}
	}
	y := x
	return y, nil
}

func NewAffineForward(w blas32.General, b blas32.Vector) Forward {
	return func(x blas32.Vector) (blas32.Vector, error) {
		return vector.Affine(x, w, b), nil
	}
}

func SigmoidForward(x blas32.Vector) (blas32.Vector, error) {
	return vector.Sigmoid(x), nil
}

func ReLUForward(x blas32.Vector) (blas32.Vector, error) {
	return vector.ReLU(x), nil
}

func NewLeakyReLUForward(alpha float32) Forward {
	return func(x blas32.Vector) (blas32.Vector, error) {
		yData := make([]float32, x.N)
		for i, e := range x.Data {
			if e > 0 {
				yData[i] = e
			} else {
				yData[i] = alpha * e
			}
		}
		x.Data = yData
		return x, nil
	}
}

func SoftmaxForward(x blas32.Vector) (blas32.Vector, error) {
	return vector.Softmax(x), nil
}
