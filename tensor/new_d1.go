package tensor

import (
	"math"
	"math/rand"

	omwrand "github.com/sw965/omw/math/rand"
)

func NewD1Zeros(n int) D1 {
	return make(D1, n)
}

func NewD1ZerosLike(d1 D1) D1 {
	return NewD1Zeros(len(d1))
}

func NewD1Ones(n int) D1 {
	ret := make(D1, n)
	for i := range ret {
		ret[i] = 1.0
	}
	return ret
}

func NewD1OnesLike(d1 D1) D1 {
	return NewD1Ones(len(d1))
}

func NewD1RandUniform(n int, min, max float64, rng *rand.Rand) D1 {
	ret := make(D1, n)
	for i := range ret {
		ret[i] = omwrand.Float64Uniform(min, max, rng)
	}
	return ret
}

func NewD1RandNormal(n int, rng *rand.Rand) D1 {
	ret := make(D1, n)
	for i := range ret {
		ret[i] = rng.NormFloat64()
	}
	return ret
}

func NewD1He(n int, rng *rand.Rand) D1 {
	std := math.Sqrt(2.0 / float64(n))
	he := make(D1, n)
	for i := range he {
		he[i] = rng.NormFloat64() * std
	}
	return he
}
