package engine

import (
	"errors"
	"testing"
)

func TestSelfTestPasses(t *testing.T) {
	n, err := SelfTest(Fixtures)
	if err != nil {
		t.Fatalf("SelfTest: %v", err)
	}
	if n != len(Fixtures) {
		t.Errorf("SelfTest passed %d fixtures, want %d", n, len(Fixtures))
	}
	if len(Fixtures) != 13 {
		t.Errorf("len(Fixtures) = %d, want 13", len(Fixtures))
	}
}

func TestSelfTestReportsFirstFailure(t *testing.T) {
	fixtures := []Fixture{
		{In: [Size]uint8{1, 1, 0, 0}, Out: [Size]uint8{2, 0, 0, 0}},
		{In: [Size]uint8{1, 1, 1, 0}, Out: [Size]uint8{3, 0, 0, 0}},
		{In: [Size]uint8{0, 0, 0, 0}, Out: [Size]uint8{1, 0, 0, 0}},
	}

	n, err := SelfTest(fixtures)
	if n != 1 {
		t.Errorf("SelfTest passed %d fixtures, want 1", n)
	}

	var fe *FixtureError
	if !errors.As(err, &fe) {
		t.Fatalf("SelfTest error = %v, want *FixtureError", err)
	}
	if fe.Index != 1 {
		t.Errorf("FixtureError.Index = %d, want 1", fe.Index)
	}
	if fe.Got != [Size]uint8{2, 1, 0, 0} {
		t.Errorf("FixtureError.Got = %v, want [2 1 0 0]", fe.Got)
	}
}
