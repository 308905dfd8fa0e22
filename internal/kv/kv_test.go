// ABOUTME: Contract tests run against every local key-value backend.
// ABOUTME: Charm is excluded because it needs a Charm account on disk.
package kv

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func backends(t *testing.T) map[string]Store {
	t.Helper()

	b, err := OpenBadgerInMemory()
	if err != nil {
		t.Fatalf("OpenBadgerInMemory failed: %v", err)
	}
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}

	stores := map[string]Store{
		BackendMemory: NewMemory(),
		BackendBadger: b,
		BackendSQLite: s,
	}
	t.Cleanup(func() {
		for _, st := range stores {
			_ = st.Close()
		}
	})
	return stores
}

func TestStoreContract(t *testing.T) {
	ctx := context.Background()
	for name, st := range backends(t) {
		t.Run(name, func(t *testing.T) {
			if _, err := st.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
				t.Fatalf("Get(missing) error = %v, want ErrNotFound", err)
			}

			if err := st.Set(ctx, "a", []byte("one")); err != nil {
				t.Fatalf("Set failed: %v", err)
			}
			if err := st.Set(ctx, "a", []byte("two")); err != nil {
				t.Fatalf("Set overwrite failed: %v", err)
			}
			got, err := st.Get(ctx, "a")
			if err != nil {
				t.Fatalf("Get failed: %v", err)
			}
			if !bytes.Equal(got, []byte("two")) {
				t.Errorf("Get = %q, want %q", got, "two")
			}

			if err := st.Set(ctx, "b", []byte("x")); err != nil {
				t.Fatalf("Set b failed: %v", err)
			}
			if err := st.Delete(ctx, "a", "b", "never-set"); err != nil {
				t.Fatalf("Delete failed: %v", err)
			}
			for _, k := range []string{"a", "b"} {
				if _, err := st.Get(ctx, k); !errors.Is(err, ErrNotFound) {
					t.Errorf("Get(%s) after delete error = %v, want ErrNotFound", k, err)
				}
			}
		})
	}
}

func TestMemoryCopiesValues(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	v := []byte("abc")
	if err := m.Set(ctx, "k", v); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	v[0] = 'z'

	got, _ := m.Get(ctx, "k")
	if string(got) != "abc" {
		t.Errorf("stored value aliased caller slice: %q", got)
	}
	got[1] = 'z'
	again, _ := m.Get(ctx, "k")
	if string(again) != "abc" {
		t.Errorf("returned value aliased storage: %q", again)
	}
}

func TestSQLitePersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "kv.db")

	s, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}
	if err := s.Set(ctx, "check_ins", []byte("[]")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	s, err = OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer func() { _ = s.Close() }()
	got, err := s.Get(ctx, "check_ins")
	if err != nil {
		t.Fatalf("Get after reopen failed: %v", err)
	}
	if string(got) != "[]" {
		t.Errorf("Get = %q, want []", got)
	}
}

func TestBadgerPersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	b, err := OpenBadger(dir)
	if err != nil {
		t.Fatalf("OpenBadger failed: %v", err)
	}
	if err := b.Set(ctx, "onboarding_completed", []byte("true")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := b.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	b, err = OpenBadger(dir)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer func() { _ = b.Close() }()
	got, err := b.Get(ctx, "onboarding_completed")
	if err != nil {
		t.Fatalf("Get after reopen failed: %v", err)
	}
	if string(got) != "true" {
		t.Errorf("Get = %q, want true", got)
	}
}

func TestOpenUnknownBackend(t *testing.T) {
	if _, err := Open("postgres", Options{Dir: t.TempDir()}); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}

func TestOpenMemory(t *testing.T) {
	st, err := Open(BackendMemory, Options{})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if _, ok := st.(*Memory); !ok {
		t.Errorf("Open(memory) returned %T", st)
	}
}
