package identity

import (
	"regexp"
	"strings"
	"testing"
)

var pseudonymPattern = regexp.MustCompile(`^[A-Za-z]+[0-9]{1,3}$`)

func TestGeneratePseudonymPattern(t *testing.T) {
	for i := 0; i < 200; i++ {
		name := GeneratePseudonym()
		if !pseudonymPattern.MatchString(name) {
			t.Fatalf("pseudonym %q does not match expected pattern", name)
		}
	}
}

func TestNewDeviceIDFormat(t *testing.T) {
	id := NewDeviceID()
	parts := strings.Split(id, "_")
	if len(parts) != 3 || parts[0] != "guest" {
		t.Fatalf("device id %q not of the form guest_<millis>_<suffix>", id)
	}
	if len(parts[2]) != 9 {
		t.Fatalf("device id suffix %q is not 9 characters", parts[2])
	}
}

func TestGetOrCreateDeviceIDIsIdempotent(t *testing.T) {
	m, err := NewManager(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	first, err := m.GetOrCreateDeviceID()
	if err != nil {
		t.Fatal(err)
	}
	second, err := m.GetOrCreateDeviceID()
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Fatalf("device id changed between calls: %q vs %q", first, second)
	}
}

func TestDeviceIDSurvivesReload(t *testing.T) {
	dir := t.TempDir()

	m, err := NewManager(dir)
	if err != nil {
		t.Fatal(err)
	}
	id, err := m.GetOrCreateDeviceID()
	if err != nil {
		t.Fatal(err)
	}

	reloaded, err := NewManager(dir)
	if err != nil {
		t.Fatal(err)
	}
	got, err := reloaded.GetOrCreateDeviceID()
	if err != nil {
		t.Fatal(err)
	}
	if got != id {
		t.Fatalf("device id not persisted: got %q, want %q", got, id)
	}
}

func TestGetOrCreateDisplayName(t *testing.T) {
	m, err := NewManager(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	// Explicit name wins and is persisted.
	name, err := m.GetOrCreateDisplayName("Sam")
	if err != nil {
		t.Fatal(err)
	}
	if name != "Sam" {
		t.Fatalf("got %q, want Sam", name)
	}

	// Blank falls back to the persisted value.
	name, err = m.GetOrCreateDisplayName("   ")
	if err != nil {
		t.Fatal(err)
	}
	if name != "Sam" {
		t.Fatalf("got %q, want persisted Sam", name)
	}
}

func TestGetOrCreateDisplayNameGeneratesPseudonym(t *testing.T) {
	m, err := NewManager(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	name, err := m.GetOrCreateDisplayName("")
	if err != nil {
		t.Fatal(err)
	}
	if !pseudonymPattern.MatchString(name) {
		t.Fatalf("generated name %q is not a pseudonym", name)
	}

	// The generated pseudonym is itself persisted.
	again, err := m.GetOrCreateDisplayName("")
	if err != nil {
		t.Fatal(err)
	}
	if again != name {
		t.Fatalf("pseudonym not sticky: %q vs %q", again, name)
	}
}
