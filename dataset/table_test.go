package dataset

import (
	"testing"

	"github.com/YuminosukeSato/statgo/pkg/errors"
)

func TestTableAdd(t *testing.T) {
	tbl := NewTable()

	if err := tbl.Add("age", []float64{31, 34, 65}); err != nil {
		t.Fatalf("Add(age) failed: %v", err)
	}
	if err := tbl.Add("educ", []float64{12, 16, 9}); err != nil {
		t.Fatalf("Add(educ) failed: %v", err)
	}

	if got := tbl.Len(); got != 3 {
		t.Errorf("Len() = %d, want 3", got)
	}
	if got := tbl.Width(); got != 2 {
		t.Errorf("Width() = %d, want 2", got)
	}

	col, ok := tbl.Column("age")
	if !ok {
		t.Fatal("Column(age) not found")
	}
	if col.Values[2] != 65 {
		t.Errorf("age[2] = %v, want 65", col.Values[2])
	}

	if _, ok := tbl.Column("sex"); ok {
		t.Error("Column(sex) should not exist")
	}
}

func TestTableAddErrors(t *testing.T) {
	tbl := NewTable()
	if err := tbl.Add("age", []float64{31, 34, 65}); err != nil {
		t.Fatalf("Add(age) failed: %v", err)
	}

	// Duplicate name
	err := tbl.Add("age", []float64{1, 2, 3})
	var valErr *errors.ValueError
	if !errors.As(err, &valErr) {
		t.Errorf("duplicate Add error = %T, want *ValueError", err)
	}

	// Row count mismatch
	err = tbl.Add("educ", []float64{12, 16})
	var dimErr *errors.DimensionError
	if !errors.As(err, &dimErr) {
		t.Errorf("short Add error = %T, want *DimensionError", err)
	}
	if dimErr != nil && (dimErr.Expected != 3 || dimErr.Got != 2) {
		t.Errorf("DimensionError = (%d, %d), want (3, 2)", dimErr.Expected, dimErr.Got)
	}

	// Empty name
	err = tbl.Add("", []float64{1, 2, 3})
	if !errors.As(err, &valErr) {
		t.Errorf("empty-name Add error = %T, want *ValueError", err)
	}

	// Empty values
	err = tbl.Add("empty", nil)
	if !errors.Is(err, errors.ErrEmptyData) {
		t.Errorf("empty-values Add error = %v, want ErrEmptyData", err)
	}
}

func TestDesignColumnOrder(t *testing.T) {
	tbl := NewTable()
	for _, c := range []struct {
		name string
		vals []float64
	}{
		{"sex", []float64{1, 0, 1, 0}},
		{"age", []float64{31, 34, 65, 23}},
		{"educ", []float64{12, 16, 9, 12}},
	} {
		if err := tbl.Add(c.name, c.vals); err != nil {
			t.Fatalf("Add(%s) failed: %v", c.name, err)
		}
	}

	d, err := tbl.Design(true)
	if err != nil {
		t.Fatalf("Design failed: %v", err)
	}

	// Insertion order with the intercept appended last
	wantNames := []string{"sex", "age", "educ", "intercept"}
	if len(d.Names) != len(wantNames) {
		t.Fatalf("Names = %v, want %v", d.Names, wantNames)
	}
	for i, name := range wantNames {
		if d.Names[i] != name {
			t.Errorf("Names[%d] = %q, want %q", i, d.Names[i], name)
		}
	}

	r, c := d.Matrix.Dims()
	if r != 4 || c != 4 {
		t.Fatalf("Matrix dims = (%d, %d), want (4, 4)", r, c)
	}

	// Regressor values in place, intercept column all ones
	if got := d.Matrix.At(2, 1); got != 65 {
		t.Errorf("Matrix[2,1] = %v, want 65", got)
	}
	for i := 0; i < r; i++ {
		if got := d.Matrix.At(i, 3); got != 1.0 {
			t.Errorf("intercept[%d] = %v, want 1", i, got)
		}
	}
}

func TestDesignWithoutIntercept(t *testing.T) {
	tbl := NewTable()
	if err := tbl.Add("x", []float64{1, 2, 3}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	d, err := tbl.Design(false)
	if err != nil {
		t.Fatalf("Design failed: %v", err)
	}

	if len(d.Names) != 1 || d.Names[0] != "x" {
		t.Errorf("Names = %v, want [x]", d.Names)
	}
	if _, c := d.Matrix.Dims(); c != 1 {
		t.Errorf("Matrix cols = %d, want 1", c)
	}
}

func TestDesignEmptyTable(t *testing.T) {
	_, err := NewTable().Design(true)
	if !errors.Is(err, errors.ErrEmptyData) {
		t.Errorf("Design on empty table = %v, want ErrEmptyData", err)
	}
}

func TestDesignInterceptNameCollision(t *testing.T) {
	tbl := NewTable()
	if err := tbl.Add(InterceptName, []float64{1, 1, 1}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	_, err := tbl.Design(true)
	var valErr *errors.ValueError
	if !errors.As(err, &valErr) {
		t.Errorf("Design with colliding column = %T, want *ValueError", err)
	}

	// Without the appended intercept the name is just another column.
	d, err := tbl.Design(false)
	if err != nil {
		t.Fatalf("Design without intercept failed: %v", err)
	}
	if len(d.Names) != 1 || d.Names[0] != InterceptName {
		t.Errorf("Names = %v, want [%s]", d.Names, InterceptName)
	}
}

func TestFromColumns(t *testing.T) {
	tbl, err := FromColumns(
		Column{Name: "a", Values: []float64{1, 2}},
		Column{Name: "b", Values: []float64{3, 4}},
	)
	if err != nil {
		t.Fatalf("FromColumns failed: %v", err)
	}

	names := tbl.Names()
	if names[0] != "a" || names[1] != "b" {
		t.Errorf("Names = %v, want [a b]", names)
	}

	// Propagates column validation
	if _, err := FromColumns(Column{Name: "a", Values: []float64{1}}, Column{Name: "a", Values: []float64{2}}); err == nil {
		t.Error("FromColumns with duplicate names should fail")
	}
}

// The fill switches to the parallel path above the row threshold; the
// resulting matrix must be identical to a sequential fill.
func TestDesignLargeTable(t *testing.T) {
	const n = 2500

	xs := make([]float64, n)
	ys := make([]float64, n)
	for i := 0; i < n; i++ {
		xs[i] = float64(i)
		ys[i] = float64(2 * i)
	}

	tbl := NewTable()
	if err := tbl.Add("x", xs); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := tbl.Add("y", ys); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	d, err := tbl.Design(true)
	if err != nil {
		t.Fatalf("Design failed: %v", err)
	}

	for _, i := range []int{0, 1, 999, 1000, 1001, n - 1} {
		if got := d.Matrix.At(i, 0); got != float64(i) {
			t.Errorf("Matrix[%d,0] = %v, want %v", i, got, float64(i))
		}
		if got := d.Matrix.At(i, 1); got != float64(2*i) {
			t.Errorf("Matrix[%d,1] = %v, want %v", i, got, float64(2*i))
		}
		if got := d.Matrix.At(i, 2); got != 1.0 {
			t.Errorf("Matrix[%d,2] = %v, want 1", i, got)
		}
	}
}
