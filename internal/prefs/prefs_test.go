package prefs

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

// exercise runs the shared Store contract against s.
func exercise(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	if _, ok, err := s.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("Get(missing) = ok %v, err %v", ok, err)
	}
	if err := s.Set(ctx, "a", "1"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if v, ok, err := s.Get(ctx, "a"); err != nil || !ok || v != "1" {
		t.Fatalf("Get(a) = %q, %v, %v", v, ok, err)
	}
	if err := s.Set(ctx, "a", "2"); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}
	if v, _, _ := s.Get(ctx, "a"); v != "2" {
		t.Errorf("Get(a) after overwrite = %q", v)
	}
	if err := s.Remove(ctx, "a"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, ok, _ := s.Get(ctx, "a"); ok {
		t.Error("key survived Remove")
	}
	if err := s.Remove(ctx, "a"); err != nil {
		t.Errorf("Remove of absent key: %v", err)
	}

	if on, err := GetBool(ctx, s, "flag"); err != nil || on {
		t.Errorf("GetBool(absent) = %v, %v", on, err)
	}
	if err := SetBool(ctx, s, "flag", true); err != nil {
		t.Fatal(err)
	}
	if on, _ := GetBool(ctx, s, "flag"); !on {
		t.Error("GetBool after SetBool(true) = false")
	}
	SetBool(ctx, s, "flag", false)
	if on, _ := GetBool(ctx, s, "flag"); on {
		t.Error("GetBool after SetBool(false) = true")
	}
}

func TestMemoryStore(t *testing.T) {
	exercise(t, NewMemoryStore())
}

func TestMemoryStoreConcurrent(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Set(ctx, "k", "v")
			s.Get(ctx, "k")
			s.Remove(ctx, "k")
		}()
	}
	wg.Wait()
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.json")
	s, err := NewFileStore(path)
	if err != nil {
		t.Fatal(err)
	}
	exercise(t, s)
}

func TestFileStorePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	ctx := context.Background()

	first, err := NewFileStore(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := first.Set(ctx, "intro", "true"); err != nil {
		t.Fatal(err)
	}

	second, err := NewFileStore(path)
	if err != nil {
		t.Fatal(err)
	}
	if v, ok, _ := second.Get(ctx, "intro"); !ok || v != "true" {
		t.Errorf("second store Get = %q, %v", v, ok)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temp file left behind")
	}
}

func TestFileStoreCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	s, err := NewFileStore(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := s.Get(context.Background(), "k"); err == nil {
		t.Error("expected parse error")
	}
	if err := s.Set(context.Background(), "k", "v"); err == nil {
		t.Error("Set should not overwrite a corrupt document")
	}
}

func TestOpen(t *testing.T) {
	ctx := context.Background()
	s, err := Open(ctx, Options{Backend: "memory"})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := s.(*MemoryStore); !ok {
		t.Errorf("Open(memory) = %T", s)
	}

	s, err = Open(ctx, Options{Path: filepath.Join(t.TempDir(), "p.json")})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := s.(*FileStore); !ok {
		t.Errorf("Open(default) = %T", s)
	}

	if _, err := Open(ctx, Options{Backend: "etcd"}); err == nil {
		t.Error("Open(etcd) should fail")
	}
}

func TestRedisStore(t *testing.T) {
	addr := os.Getenv("STYLEBOOK_TEST_REDIS")
	if addr == "" {
		t.Skip("STYLEBOOK_TEST_REDIS not set")
	}
	s, err := NewRedisStore(context.Background(), RedisConfig{Addr: addr, Prefix: "stylebook:test:"})
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	exercise(t, s)
}
