package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/adproof/adproof/pkg/creative"
)

func testCreative(name string) *Creative {
	return &Creative{
		Name: name,
		Record: &creative.Record{
			DisplayAd: &creative.DisplayAd{
				Headlines: []creative.TextAsset{{Text: name}},
			},
		},
	}
}

func TestMemoryStorePutAssignsID(t *testing.T) {
	s := NewMemoryStore()
	c := testCreative("first")

	if err := s.Put(context.Background(), c); err != nil {
		t.Fatalf("Put() error: %v", err)
	}
	if c.ID == "" {
		t.Error("Put() left ID empty")
	}
	if c.CreatedAt.IsZero() || c.UpdatedAt.IsZero() {
		t.Error("Put() left timestamps unset")
	}
}

func TestMemoryStoreGet(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	c := testCreative("stored")
	if err := s.Put(ctx, c); err != nil {
		t.Fatalf("Put() error: %v", err)
	}

	got, err := s.Get(ctx, c.ID)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if got.Name != "stored" {
		t.Errorf("Name = %q", got.Name)
	}

	// Mutating the returned copy must not affect the store.
	got.Name = "mutated"
	again, err := s.Get(ctx, c.ID)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if again.Name != "stored" {
		t.Error("stored creative was mutated through a returned copy")
	}
}

func TestMemoryStoreGetMissing(t *testing.T) {
	s := NewMemoryStore()
	_, err := s.Get(context.Background(), "nope")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() error = %v, want ErrNotFound", err)
	}
}

func TestMemoryStorePutRejectsEmptyRecord(t *testing.T) {
	s := NewMemoryStore()
	err := s.Put(context.Background(), &Creative{Name: "hollow"})
	if !errors.Is(err, ErrInvalidRecord) {
		t.Errorf("Put() error = %v, want ErrInvalidRecord", err)
	}
}

func TestMemoryStoreListNewestFirst(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	older := testCreative("older")
	older.CreatedAt = time.Now().UTC().Add(-time.Hour)
	newer := testCreative("newer")

	for _, c := range []*Creative{older, newer} {
		if err := s.Put(ctx, c); err != nil {
			t.Fatalf("Put() error: %v", err)
		}
	}

	out, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("List() count = %d, want 2", len(out))
	}
	if out[0].Name != "newer" || out[1].Name != "older" {
		t.Errorf("order = [%s, %s], want [newer, older]", out[0].Name, out[1].Name)
	}
}

func TestMemoryStoreDelete(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	c := testCreative("doomed")
	if err := s.Put(ctx, c); err != nil {
		t.Fatalf("Put() error: %v", err)
	}
	if err := s.Delete(ctx, c.ID); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if _, err := s.Get(ctx, c.ID); !errors.Is(err, ErrNotFound) {
		t.Error("creative survived Delete")
	}
	// Deleting a missing ID is not an error.
	if err := s.Delete(ctx, c.ID); err != nil {
		t.Errorf("Delete() of missing ID: %v", err)
	}
}
