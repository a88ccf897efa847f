package items

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadMissingSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items_data.json")

	set, err := Load(path)
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected ErrNotExist, got %v", err)
	}
	if set == nil || len(set) != 0 {
		t.Fatalf("expected empty set, got %#v", set)
	}
}

func TestLoadCorruptSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items_data.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	set, err := Load(path)
	if err == nil {
		t.Fatalf("expected decode error")
	}
	if len(set) != 0 {
		t.Fatalf("corrupt snapshot must degrade to empty set, got %+v", set)
	}
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items_data.json")
	in := []Item{
		{
			Name:          "Windtrap",
			Recipe:        []Component{{Name: "Plank", Count: 4}},
			Power:         PowerSpec{Provides: 8},
			WaterCapacity: 500,
		},
		{Name: "Fuel Cell", IsConsumable: true},
	}

	if err := Save(path, in); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if len(got) != 2 || got[0].Name != "Windtrap" || got[0].WaterCapacity != 500 {
		t.Fatalf("roundtrip mismatch: %+v", got)
	}
	if got[1].Recipe == nil || len(got[1].Recipe) != 0 {
		t.Fatalf("nil recipe should be saved as empty list: %#v", got[1].Recipe)
	}
}

func TestSaveIsPrettyPrinted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items_data.json")
	if err := Save(path, []Item{{Name: "Windtrap"}}); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "\n        \"Name\": \"Windtrap\"") {
		t.Fatalf("snapshot not indented as expected:\n%s", data)
	}
}

func TestSaveOverwritesPriorSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items_data.json")
	if err := Save(path, []Item{{Name: "Old"}, {Name: "Older"}}); err != nil {
		t.Fatal(err)
	}
	if err := Save(path, []Item{{Name: "New"}}); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Name != "New" {
		t.Fatalf("expected full overwrite, got %+v", got)
	}
}
