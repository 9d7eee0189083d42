package engine

import "fmt"

// Fixture is one row through SlideArray with its expected result.
// Values are exponents (1=2, 2=4, 3=8).
type Fixture struct {
	In  [Size]uint8
	Out [Size]uint8
}

// Fixtures is the deterministic self-test table run by the test command.
var Fixtures = []Fixture{
	{In: [Size]uint8{0, 0, 0, 1}, Out: [Size]uint8{1, 0, 0, 0}},
	{In: [Size]uint8{0, 0, 1, 1}, Out: [Size]uint8{2, 0, 0, 0}},
	{In: [Size]uint8{0, 1, 0, 1}, Out: [Size]uint8{2, 0, 0, 0}},
	{In: [Size]uint8{1, 0, 0, 1}, Out: [Size]uint8{2, 0, 0, 0}},
	{In: [Size]uint8{1, 0, 1, 0}, Out: [Size]uint8{2, 0, 0, 0}},
	{In: [Size]uint8{1, 1, 1, 0}, Out: [Size]uint8{2, 1, 0, 0}},
	{In: [Size]uint8{1, 0, 1, 1}, Out: [Size]uint8{2, 1, 0, 0}},
	{In: [Size]uint8{1, 1, 0, 1}, Out: [Size]uint8{2, 1, 0, 0}},
	{In: [Size]uint8{1, 1, 1, 1}, Out: [Size]uint8{2, 2, 0, 0}},
	{In: [Size]uint8{2, 2, 1, 1}, Out: [Size]uint8{3, 2, 0, 0}},
	{In: [Size]uint8{1, 1, 2, 2}, Out: [Size]uint8{2, 3, 0, 0}},
	{In: [Size]uint8{3, 0, 1, 1}, Out: [Size]uint8{3, 2, 0, 0}},
	{In: [Size]uint8{2, 0, 1, 1}, Out: [Size]uint8{2, 2, 0, 0}},
}

// FixtureError reports the first fixture SlideArray got wrong.
type FixtureError struct {
	Index int
	Fixture
	Got [Size]uint8
}

func (e *FixtureError) Error() string {
	return fmt.Sprintf("fixture %d: %v => %v expected %v => %v", e.Index, e.In, e.Got, e.In, e.Out)
}

// SelfTest runs fixtures through SlideArray and returns how many passed.
// It stops at the first mismatch and returns a *FixtureError.
func SelfTest(fixtures []Fixture) (int, error) {
	for i, f := range fixtures {
		row := f.In
		SlideArray(&row)
		if row != f.Out {
			return i, &FixtureError{Index: i, Fixture: f, Got: row}
		}
	}
	return len(fixtures), nil
}
