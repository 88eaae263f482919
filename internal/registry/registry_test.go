package registry

import (
	"errors"
	"testing"
)

func TestRegisterAndLookup(t *testing.T) {
	Register(Pack{Name: "zz-test", Title: "Test", Words: []string{"ONE", "TWO"}})

	if !Exists("zz-test") {
		t.Fatal("Exists() = false after Register")
	}

	p, err := Lookup("zz-test")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if p.Title != "Test" || len(p.Words) != 2 {
		t.Errorf("Lookup() = %+v", p)
	}

	// Callers get a copy.
	p.Words[0] = "CHANGED"
	again, _ := Lookup("zz-test")
	if again.Words[0] != "ONE" {
		t.Error("modifying a looked-up pack changed the registry")
	}

	found := false
	for _, info := range List() {
		if info.Name == "zz-test" {
			found = true
			if info.Size != 2 {
				t.Errorf("List() Size = %d, expected 2", info.Size)
			}
		}
	}
	if !found {
		t.Error("List() does not include the registered pack")
	}
}

func TestLookupMissing(t *testing.T) {
	if _, err := Lookup("does-not-exist"); !errors.Is(err, ErrPackNotFound) {
		t.Errorf("Lookup() error = %v, expected ErrPackNotFound", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register(Pack{Name: "zz-dup"})

	defer func() {
		if recover() == nil {
			t.Error("Register() of a duplicate name should panic")
		}
	}()
	Register(Pack{Name: "zz-dup"})
}

func TestListSorted(t *testing.T) {
	Register(Pack{Name: "zz-b"})
	Register(Pack{Name: "zz-a"})

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].Name > list[i].Name {
			t.Fatalf("List() not sorted: %q before %q", list[i-1].Name, list[i].Name)
		}
	}
}
