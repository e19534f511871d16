// Package dataset provides labeled numeric columns and design matrix
// construction for the estimation engine.
//
// A Table holds uniquely named, equal-length columns in insertion order.
// Design materializes the table as a gonum matrix whose column order is the
// single source of coefficient alignment downstream: estimators and result
// assemblers never reorder it.
package dataset

import (
	"github.com/YuminosukeSato/statgo/core/parallel"
	"github.com/YuminosukeSato/statgo/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// InterceptName is the name given to the constant column appended by
// Design when an intercept is requested.
const InterceptName = "intercept"

// Column is a named numeric vector.
type Column struct {
	Name   string
	Values []float64
}

// NewColumn creates a column after validating that the name is non-empty
// and at least one value is present. Values are consumed as provided;
// nothing is copied, coerced, or imputed.
func NewColumn(name string, values []float64) (*Column, error) {
	if name == "" {
		return nil, errors.NewValueError("NewColumn", "column name must not be empty")
	}
	if len(values) == 0 {
		return nil, errors.Wrapf(errors.ErrEmptyData, "NewColumn: column %q", name)
	}
	return &Column{Name: name, Values: values}, nil
}

// Len returns the number of observations in the column.
func (c *Column) Len() int {
	return len(c.Values)
}

// Table is an ordered collection of uniquely named, equal-length columns.
type Table struct {
	cols  []Column
	index map[string]int
	nrows int
}

// NewTable creates an empty table. The first Add fixes the row count.
func NewTable() *Table {
	return &Table{index: make(map[string]int)}
}

// FromColumns builds a table from the given columns, preserving their order.
func FromColumns(cols ...Column) (*Table, error) {
	t := NewTable()
	for _, c := range cols {
		if err := t.Add(c.Name, c.Values); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Add appends a named column. Every column after the first must match the
// established row count.
func (t *Table) Add(name string, values []float64) error {
	col, err := NewColumn(name, values)
	if err != nil {
		return err
	}
	if _, exists := t.index[name]; exists {
		return errors.NewValueError("Table.Add", "duplicate column name: "+name)
	}
	if len(t.cols) > 0 && len(values) != t.nrows {
		return errors.NewDimensionError("Table.Add", t.nrows, len(values), 0)
	}
	if len(t.cols) == 0 {
		t.nrows = len(values)
	}
	t.index[name] = len(t.cols)
	t.cols = append(t.cols, *col)
	return nil
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return t.nrows
}

// Width returns the number of columns.
func (t *Table) Width() int {
	return len(t.cols)
}

// Names returns the column names in insertion order.
func (t *Table) Names() []string {
	names := make([]string, len(t.cols))
	for i, c := range t.cols {
		names[i] = c.Name
	}
	return names
}

// Column returns the named column and whether it exists.
func (t *Table) Column(name string) (Column, bool) {
	i, ok := t.index[name]
	if !ok {
		return Column{}, false
	}
	return t.cols[i], true
}

// Columns returns the columns in insertion order.
func (t *Table) Columns() []Column {
	cols := make([]Column, len(t.cols))
	copy(cols, t.cols)
	return cols
}

// Design is a materialized design matrix. Names aligns one to one with the
// matrix columns.
type Design struct {
	Matrix *mat.Dense
	Names  []string
}

// 並列処理の閾値（この値以下の行数では逐次処理を使用）
const parallelThreshold = 1000

// Design materializes the table as an n x k dense matrix with columns in
// insertion order. When addIntercept is true a column of ones named
// "intercept" is appended last.
func (t *Table) Design(addIntercept bool) (*Design, error) {
	if len(t.cols) == 0 || t.nrows == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "Table.Design")
	}
	if addIntercept {
		if _, exists := t.index[InterceptName]; exists {
			return nil, errors.NewValueError("Table.Design",
				"regressor column "+InterceptName+" collides with the appended intercept column")
		}
	}

	k := len(t.cols)
	if addIntercept {
		k++
	}

	x := mat.NewDense(t.nrows, k, nil)
	parallel.RangesThreshold(t.nrows, parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			for j, c := range t.cols {
				x.Set(i, j, c.Values[i])
			}
			if addIntercept {
				x.Set(i, k-1, 1.0)
			}
		}
	})

	names := make([]string, 0, k)
	names = append(names, t.Names()...)
	if addIntercept {
		names = append(names, InterceptName)
	}

	return &Design{Matrix: x, Names: names}, nil
}

// NumColumns returns the number of design matrix columns.
func (d *Design) NumColumns() int {
	return len(d.Names)
}

// NumRows returns the number of observations.
func (d *Design) NumRows() int {
	r, _ := d.Matrix.Dims()
	return r
}
