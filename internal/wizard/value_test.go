package wizard

import (
	"errors"
	"testing"
)

func TestValueParseByKind(t *testing.T) {
	if v, err := Text("x").Parse("  render-node  "); err != nil || v.String() != "render-node" {
		t.Fatalf("text parse: %v %q", err, v.String())
	}
	if _, err := Text("x").Parse("   "); err == nil {
		t.Fatal("empty text must be refused")
	}

	if v, err := UnsignedInt(0).Parse("42"); err != nil || v.Uint() != 42 {
		t.Fatalf("unsigned parse: %v %d", err, v.Uint())
	}
	if _, err := UnsignedInt(0).Parse("-1"); err == nil {
		t.Fatal("negative input must be refused for unsigned fields")
	}

	if v, err := SignedInt(0).Parse("-30"); err != nil || v.Int() != -30 {
		t.Fatalf("signed parse: %v %d", err, v.Int())
	}
	if _, err := SignedInt(0).Parse("ten"); err == nil {
		t.Fatal("non-numeric input must be refused")
	}

	if _, err := Identifier("abc").Parse("abc"); !errors.Is(err, ErrGeneratedValue) {
		t.Fatalf("identifier parse should refuse input, got %v", err)
	}
}

func TestValueEqualRequiresSameKind(t *testing.T) {
	if Text("7").Equal(UnsignedInt(7)) {
		t.Fatal("values of different kinds must not compare equal")
	}
	if !UnsignedInt(7).Equal(UnsignedInt(7)) {
		t.Fatal("equal unsigned values must compare equal")
	}
	if SignedInt(-1).Equal(SignedInt(1)) {
		t.Fatal("different payloads must not compare equal")
	}
}
