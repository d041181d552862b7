package utils

import (
	"fmt"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

type Matrix struct {
	M *mat.Dense
}

func NewMatrix(nr, nc int, dataO ...[]float64) (r Matrix) {
	var m *mat.Dense
	if len(dataO) != 0 {
		if len(dataO[0]) != nr*nc {
			err := fmt.Errorf("mismatch in allocation: NewMatrix nr,nc = %v,%v, len(data[0]) = %v", nr, nc, len(dataO[0]))
			panic(err)
		}
		m = mat.NewDense(nr, nc, dataO[0])
	} else {
		m = mat.NewDense(nr, nc, make([]float64, nr*nc))
	}
	r = Matrix{m}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m Matrix) Dims() (r, c int)          { return m.M.Dims() }
func (m Matrix) At(i, j int) float64       { return m.M.At(i, j) }
func (m Matrix) T() mat.Matrix             { return m.M.T() }
func (m Matrix) Set(i, j int, val float64) { m.M.Set(i, j, val) }
func (m Matrix) RawMatrix() blas64.General { return m.M.RawMatrix() }

// DataP exposes the backing slice, row-major.
func (m Matrix) DataP() []float64 { return m.M.RawMatrix().Data }

func (m Matrix) Copy() (r Matrix) {
	var (
		nr, nc = m.Dims()
		data   = m.M.RawMatrix().Data
		dataR  = make([]float64, len(data))
	)
	copy(dataR, data)
	r = NewMatrix(nr, nc, dataR)
	return
}

// Row copies row i out into a Vector.
func (m Matrix) Row(i int) (v Vector) {
	var (
		_, nc = m.Dims()
		dataR = make([]float64, nc)
	)
	copy(dataR, m.M.RawRowView(i))
	v = NewVector(nc, dataR)
	return
}

// Col copies column j out into a Vector.
func (m Matrix) Col(j int) (v Vector) {
	var (
		nr, _ = m.Dims()
		dataR = make([]float64, nr)
	)
	for i := 0; i < nr; i++ {
		dataR[i] = m.M.At(i, j)
	}
	v = NewVector(nr, dataR)
	return
}

// SetRow overwrites row i from v.
func (m Matrix) SetRow(i int, v Vector) {
	m.M.SetRow(i, v.DataP())
}

// SetCol overwrites column j from v.
func (m Matrix) SetCol(j int, v Vector) {
	var (
		nr, _ = m.Dims()
		data  = v.DataP()
	)
	for i := 0; i < nr; i++ {
		m.M.Set(i, j, data[i])
	}
}

func (m Matrix) Sum() (sum float64) {
	var (
		data = m.M.RawMatrix().Data
	)
	for _, val := range data {
		sum += val
	}
	return
}

func (m Matrix) Min() (min float64) {
	var (
		data = m.M.RawMatrix().Data
	)
	min = data[0]
	for _, val := range data {
		if val < min {
			min = val
		}
	}
	return
}

func (m Matrix) Max() (max float64) {
	var (
		data = m.M.RawMatrix().Data
	)
	max = data[0]
	for _, val := range data {
		if val > max {
			max = val
		}
	}
	return
}
