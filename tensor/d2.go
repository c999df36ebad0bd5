package tensor

import (
	"fmt"
)

type D2 []D1

func (d2 D2) AddScalar(s float64) {
	for i := range d2 {
		d2[i].AddScalar(s)
	}
}

func (d2 D2) Add(other D2) error {
	if len(d2) != len(other) {
		return fmt.Errorf("tensor.D2 の行数が一致しないため、加算できません。")
	}

	for i := range d2 {
		err := d2[i].Add(other[i])
		if err != nil {
			return err
		}
	}
	return nil
}

func (d2 D2) MulScalar(s float64) {
	for i := range d2 {
		d2[i].MulScalar(s)
	}
}

func (d2 D2) AddD1(d1 D1) error {
	for i := range d2 {
		err := d2[i].Add(d1)
		if err != nil {
			return err
		}
	}
	return nil
}

func (d2 D2) Clone() D2 {
	y := make(D2, len(d2))
	for i := range d2 {
		y[i] = d2[i].Clone()
	}
	return y
}

func (d2 D2) Copy(src D2) {
	for i := range d2 {
		d2[i].Copy(src[i])
	}
}

func (d2 D2) Equal(other D2) bool {
	if len(d2) != len(other) {
		return false
	}

	for i := range d2 {
		if !d2[i].Equal(other[i]) {
			return false
		}
	}
	return true
}

func (d2 D2) MapFunc(f func(float64) float64) D2 {
	y := make(D2, len(d2))
	for i := range d2 {
		y[i] = d2[i].MapFunc(f)
	}
	return y
}

func (d2 D2) Transpose() D2 {
	if len(d2) == 0 {
		return D2{}
	}

	yr, yc := len(d2[0]), len(d2)
	y := NewD2Zeros(yr, yc)
	for i := 0; i < yr; i++ {
		for j := 0; j < yc; j++ {
			y[i][j] = d2[j][i]
		}
	}
	return y
}

func (d2 D2) DotProduct(other D2) (D2, error) {
	if len(d2) == 0 || len(other) == 0 {
		return nil, fmt.Errorf("tensor.D2 が空であるため、内積を計算できません。")
	}

	if len(d2[0]) != len(other) {
		return nil, fmt.Errorf("tensor.D2 の列数と行数が一致しないため、内積を計算できません。")
	}

	var err error
	t := other.Transpose()
	y := NewD2Zeros(len(d2), len(other[0]))
	for i := range d2 {
		row := d2[i]
		for j := range t {
			y[i][j], err = row.DotProduct(t[j])
			if err != nil {
				return D2{}, err
			}
		}
	}
	return y, nil
}

func D2AddScalar(d2 D2, s float64) D2 {
	y := d2.Clone()
	y.AddScalar(s)
	return y
}

func D2AddD1(d2 D2, d1 D1) (D2, error) {
	y := d2.Clone()
	err := y.AddD1(d1)
	return y, err
}
