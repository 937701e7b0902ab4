package storage

import (
	"errors"
	"testing"
)

func TestMemoryGetSet(t *testing.T) {
	var m Memory

	if _, ok, _ := m.Get("missing"); ok {
		t.Error("zero Memory should report missing keys as absent")
	}

	if err := m.Set("k", "v"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	v, ok, err := m.Get("k")
	if err != nil || !ok || v != "v" {
		t.Errorf("Get() = %q, %v, %v", v, ok, err)
	}
}

func TestMemoryUpdate(t *testing.T) {
	m := NewMemory()

	err := m.Update("k", func(value string, ok bool) (string, error) {
		if ok {
			t.Error("first update should see an absent key")
		}
		return value + "a", nil
	})
	if err != nil {
		t.Fatalf("Update() failed: %v", err)
	}

	boom := errors.New("boom")
	if err := m.Update("k", func(string, bool) (string, error) { return "z", boom }); !errors.Is(err, boom) {
		t.Fatalf("Update() error = %v, want boom", err)
	}

	v, _, _ := m.Get("k")
	if v != "a" {
		t.Errorf("value = %q, want a", v)
	}
}
