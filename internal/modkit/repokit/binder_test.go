package repokit

import (
	"context"
	"testing"

	"atelier/internal/platform/store"
)

type fakeRepo struct{ q Queryer }

func TestBindFunc(t *testing.T) {
	b := BindFunc[*fakeRepo](func(q Queryer) *fakeRepo { return &fakeRepo{q: q} })

	var q Queryer = stubQuerier{}
	r := MustBind[*fakeRepo](b, q)
	if r.q != q {
		t.Fatalf("queryer not bound")
	}
}

func TestMustBindNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("nil queryer must panic")
		}
	}()
	b := BindFunc[*fakeRepo](func(q Queryer) *fakeRepo { return &fakeRepo{q: q} })
	MustBind[*fakeRepo](b, nil)
}

type stubQuerier struct{}

func (stubQuerier) Exec(ctx context.Context, sql string, args ...any) (store.CommandTag, error) {
	return nil, nil
}

func (stubQuerier) Query(ctx context.Context, sql string, args ...any) (store.Rows, error) {
	return nil, nil
}

func (stubQuerier) QueryRow(ctx context.Context, sql string, args ...any) store.Row { return nil }
