package store

import (
	"context"
	"errors"
	"testing"
)

// fakeRows feeds canned scalar rows to the helpers
type fakeRows struct {
	vals []int
	pos  int
	err  error
}

func (f *fakeRows) Next() bool {
	if f.pos >= len(f.vals) {
		return false
	}
	f.pos++
	return true
}

func (f *fakeRows) Scan(dest ...any) error {
	if len(dest) != 1 {
		return errors.New("want one dest")
	}
	p, ok := dest[0].(*int)
	if !ok {
		return errors.New("want *int dest")
	}
	*p = f.vals[f.pos-1]
	return nil
}

func (f *fakeRows) Err() error        { return f.err }
func (f *fakeRows) Close()            {}
func (f *fakeRows) Columns() []string { return []string{"n"} }

type fakeQuerier struct {
	rows *fakeRows
	tag  string
}

type fakeTag struct{ s string }

func (t fakeTag) String() string      { return t.s }
func (t fakeTag) RowsAffected() int64 { return 0 }

func (f *fakeQuerier) Exec(ctx context.Context, sql string, args ...any) (CommandTag, error) {
	return fakeTag{s: f.tag}, nil
}

func (f *fakeQuerier) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	return f.rows, nil
}

func (f *fakeQuerier) QueryRow(ctx context.Context, sql string, args ...any) Row {
	f.rows.Next() // position on the first row like pgx QueryRow does
	return &rowFromRows{rows: f.rows}
}

func scanInt(r Row) (int, error) {
	var n int
	err := r.Scan(&n)
	return n, err
}

func TestManyCollectsAllRows(t *testing.T) {
	q := &fakeQuerier{rows: &fakeRows{vals: []int{1, 2, 3}}}
	got, err := Many(context.Background(), q, scanInt, "SELECT n")
	if err != nil {
		t.Fatalf("Many: %v", err)
	}
	if len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Fatalf("Many = %v", got)
	}
}

func TestScalarReadsFirstColumn(t *testing.T) {
	q := &fakeQuerier{rows: &fakeRows{vals: []int{42}}}
	got, err := Scalar[int](context.Background(), q, "SELECT COUNT(*)")
	if err != nil {
		t.Fatalf("Scalar: %v", err)
	}
	if got != 42 {
		t.Fatalf("Scalar = %d", got)
	}
}

func TestExecOne(t *testing.T) {
	if err := ExecOne(context.Background(), &fakeQuerier{tag: "UPDATE 1"}, "UPDATE x"); err != nil {
		t.Fatalf("UPDATE 1 should pass: %v", err)
	}
	if err := ExecOne(context.Background(), &fakeQuerier{tag: "UPDATE 0"}, "UPDATE x"); err == nil {
		t.Fatalf("UPDATE 0 should fail")
	}
}
