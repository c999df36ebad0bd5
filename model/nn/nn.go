package nn

import (
	"fmt"
	"math/rand"
	"strings"

	omwjson "github.com/sw965/omw/json"
	oslices "github.com/sw965/omw/slices"
	tensor2d "github.com/sw965/uguisu/blas32/tensor/2d"
	"github.com/sw965/uguisu/blas32/vector"
	layer1d "github.com/sw965/uguisu/layer/1d"
	"gonum.org/v1/gonum/blas/blas32"
)

type Parameter struct {
	Weights []blas32.General
	Biases  []blas32.Vector
}

func LoadParameterJSON(path string) (Parameter, error) {
	param, err := omwjson.Load[Parameter](path)
	return param, err
}

func (p *Parameter) WriteJSON(path string) error {
	err := omwjson.Write[Parameter](p, path)
	return err
}

func (p Parameter) Clone() Parameter {
	weights := make([]blas32.General, len(p.Weights))
	for i, w := range p.Weights {
		weights[i] = tensor2d.Clone(w)
	}
	biases := make([]blas32.Vector, len(p.Biases))
	for i, b := range p.Biases {
		biases[i] = vector.Clone(b)
	}
	return Parameter{Weights: weights, Biases: biases}
}

// 順伝搬のみの全結合ニューラルネットワーク。
type FullyConnected struct {
	Parameter Parameter
	Forwards  layer1d.Forwards

	LossCalculator func(y, t blas32.Vector) (float32, error)

	layerNames []string
}

func (fc *FullyConnected) SetParameter(param *Parameter) error {
	if len(fc.Parameter.Weights) != len(param.Weights) {
		return fmt.Errorf("層の数が一致しないため、Parameterを設定できません。")
	}

	if len(fc.Parameter.Biases) != len(param.Biases) {
		return fmt.Errorf("バイアスの数が一致しないため、Parameterを設定できません。")
	}

	for i, w := range param.Weights {
		copy(fc.Parameter.Weights[i].Data, w.Data)
	}
	for i, b := range param.Biases {
		copy(fc.Parameter.Biases[i].Data, b.Data)
	}
	return nil
}

func (fc *FullyConnected) SetCrossEntropy() {
	fc.LossCalculator = vector.CrossEntropy
}

func (fc *FullyConnected) SetBinaryCrossEntropy() {
	fc.LossCalculator = vector.BinaryCrossEntropy
}

func (fc *FullyConnected) SetSumSquaredError() {
	fc.LossCalculator = vector.SumSquaredError
}

func (fc *FullyConnected) AppendFullyConnectedLayer(xn, yn int, rng *rand.Rand) {
	w := tensor2d.NewHe(xn, yn, rng)
	b := vector.NewZeros(yn)
	fc.Parameter.Weights = append(fc.Parameter.Weights, w)
	fc.Parameter.Biases = append(fc.Parameter.Biases, b)
	fc.Forwards = append(fc.Forwards, layer1d.NewAffineForward(w, b))
	fc.layerNames = append(fc.layerNames, fmt.Sprintf("Affine(in=%d, out=%d)", xn, yn))
}

func (fc *FullyConnected) AppendSigmoidLayer() {
	fc.Forwards = append(fc.Forwards, layer1d.SigmoidForward)
	fc.layerNames = append(fc.layerNames, "Sigmoid()")
}

func (fc *FullyConnected) AppendReLULayer() {
	fc.Forwards = append(fc.Forwards, layer1d.ReLUForward)
	fc.layerNames = append(fc.layerNames, "ReLU()")
}

func (fc *FullyConnected) AppendLeakyReLULayer(alpha float32) {
	fc.Forwards = append(fc.Forwards, layer1d.NewLeakyReLUForward(alpha))
	fc.layerNames = append(fc.layerNames, fmt.Sprintf("LeakyReLU(alpha=%v)", alpha))
}

func (fc *FullyConnected) AppendSoftmaxLayer() {
	fc.Forwards = append(fc.Forwards, layer1d.SoftmaxForward)
	fc.layerNames = append(fc.layerNames, "Softmax()")
}

func (fc *FullyConnected) Predict(x blas32.Vector) (blas32.Vector, error) {
	return fc.Forwards.Propagate(x)
}

func (fc *FullyConnected) MeanLoss(xs, ts []blas32.Vector) (float32, error) {
	n := len(xs)
	if n != len(ts) {
		return 0.0, fmt.Errorf("バッチサイズが一致しないため、MeanLossを計算できません。")
	}

	sum := float32(0.0)
	for i := range xs {
		y, err := fc.Predict(xs[i])
		if err != nil {
			return 0.0, err
		}
		loss, err := fc.LossCalculator(y, ts[i])
		if err != nil {
			return 0.0, err
		}
		sum += loss
	}
	mean := sum / float32(n)
	return mean, nil
}

func (fc *FullyConnected) Accuracy(xs, ts []blas32.Vector) (float32, error) {
	n := len(xs)
	if n != len(ts) {
		return 0.0, fmt.Errorf("バッチサイズが一致しないため、Accuracyを計算できません。")
	}

	correct := 0
	for i := range xs {
		y, err := fc.Predict(xs[i])
		if err != nil {
			return 0.0, err
		}
		if oslices.MaxIndices(y.Data)[0] == oslices.MaxIndices(ts[i].Data)[0] {
			correct += 1
		}
	}
	return float32(correct) / float32(n), nil
}

func (fc *FullyConnected) String() string {
	var sb strings.Builder
	sb.WriteString("FullyConnected(\n")
	for i, name := range fc.layerNames {
		sb.WriteString(fmt.Sprintf("  (%d): %s\n", i, name))
	}
	sb.WriteString(")")
	return sb.String()
}
