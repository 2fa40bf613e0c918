// Package assemble materializes a model.Relation in the shapes its consumers
// expect.
//
// Dense and Exact excise the goto_jail row and column and transpose the result
// so every column sums to one. Sparse keeps the full state space in
// row-stochastic, pair-keyed form.
package assemble

import (
	"fmt"

	"github.com/aretw0/boardchain/pkg/model"
)

// Table is a dense row-major matrix over any value type.
type Table[T any] struct {
	rows, cols int
	data       []T
}

// NewTable returns a rows×cols table with every cell set to fill.
func NewTable[T any](rows, cols int, fill T) *Table[T] {
	data := make([]T, rows*cols)
	for i := range data {
		data[i] = fill
	}
	return &Table[T]{rows: rows, cols: cols, data: data}
}

// Dims returns the number of rows and columns.
func (t *Table[T]) Dims() (rows, cols int) { return t.rows, t.cols }

// At returns the cell at row i, column j.
func (t *Table[T]) At(i, j int) T {
	t.check(i, j)
	return t.data[i*t.cols+j]
}

// Set overwrites the cell at row i, column j.
func (t *Table[T]) Set(i, j int, v T) {
	t.check(i, j)
	t.data[i*t.cols+j] = v
}

func (t *Table[T]) check(i, j int) {
	if i < 0 || i >= t.rows || j < 0 || j >= t.cols {
		panic(fmt.Sprintf("assemble: index (%d, %d) out of range for %d×%d table", i, j, t.rows, t.cols))
	}
}

// Excise returns a copy without row k and column k.
func (t *Table[T]) Excise(k int) *Table[T] {
	out := &Table[T]{rows: t.rows - 1, cols: t.cols - 1}
	out.data = make([]T, 0, out.rows*out.cols)
	for i := 0; i < t.rows; i++ {
		if i == k {
			continue
		}
		for j := 0; j < t.cols; j++ {
			if j == k {
				continue
			}
			out.data = append(out.data, t.data[i*t.cols+j])
		}
	}
	return out
}

// Transpose returns a transposed copy.
func (t *Table[T]) Transpose() *Table[T] {
	out := &Table[T]{rows: t.cols, cols: t.rows, data: make([]T, len(t.data))}
	for i := 0; i < t.rows; i++ {
		for j := 0; j < t.cols; j++ {
			out.data[j*out.cols+i] = t.data[i*t.cols+j]
		}
	}
	return out
}

// Map converts every cell with f.
func Map[T, U any](t *Table[T], f func(T) U) *Table[U] {
	out := &Table[U]{rows: t.rows, cols: t.cols, data: make([]U, len(t.data))}
	for i, v := range t.data {
		out.data[i] = f(v)
	}
	return out
}

// Full lays the relation out as a (size+3)² row-stochastic table.
func Full[T any](r *model.Relation[T]) *Table[T] {
	n := r.Topology().NumStates()
	t := NewTable(n, n, r.Arith().Zero())
	for _, p := range r.Pairs() {
		t.Set(int(p.From), int(p.To), r.At(p.From, p.To))
	}
	return t
}

// Column drops goto_jail from the full table and transposes it, yielding the
// column-stochastic (size+2)² layout shared by Dense and Exact.
func Column[T any](r *model.Relation[T]) *Table[T] {
	return Full(r).Excise(int(r.Topology().GoToJail)).Transpose()
}
