package gonum

import (
	"github.com/aretw0/boardchain/pkg/ports"
	"gonum.org/v1/gonum/mat"
)

// Oracle implements ports.RegularityOracle with gonum's repeated squaring.
type Oracle struct{}

var _ ports.RegularityOracle = Oracle{}

// NewOracle returns a gonum backed oracle.
func NewOracle() Oracle { return Oracle{} }

// Power returns m^n. n == 0 yields the identity.
func (Oracle) Power(m mat.Matrix, n int) *mat.Dense {
	var p mat.Dense
	p.Pow(m, n)
	return &p
}

// Positive reports whether every entry is strictly positive.
func (Oracle) Positive(m mat.Matrix) bool {
	r, c := m.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if !(m.At(i, j) > 0) {
				return false
			}
		}
	}
	return true
}
