package ncube

import "testing"

func TestNewCubeIsSolved(t *testing.T) {
	for size := 1; size <= 7; size++ {
		c := New(size)
		if !c.IsSolved() {
			t.Errorf("New(%d) should be solved", size)
		}
		for face := Up; face <= Down; face++ {
			if len(c.Faces[face]) != size {
				t.Fatalf("New(%d): face %v has %d rows", size, face, len(c.Faces[face]))
			}
			for _, row := range c.Faces[face] {
				if len(row) != size {
					t.Fatalf("New(%d): face %v has a row of length %d", size, face, len(row))
				}
			}
		}
	}
}

func TestNewPanicsOnInvalidSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("New(%d) should panic", size)
				}
			}()
			New(size)
		}()
	}
}

func TestSolvedColors(t *testing.T) {
	c := New(3)
	want := map[Face]Color{
		Up:    Yellow,
		Left:  Orange,
		Front: Blue,
		Right: Red,
		Back:  Green,
		Down:  White,
	}
	for face, color := range want {
		if got := c.At(face, 1, 1); got != color {
			t.Errorf("face %v: got %v, want %v", face, got, color)
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	c := New(3)
	clone := c.Clone()
	if !c.Equal(clone) {
		t.Fatal("clone should equal original")
	}

	clone.Rotate(Right, Clockwise, 0)
	if c.Equal(clone) {
		t.Error("rotating the clone should not affect the original")
	}
	if !c.IsSolved() {
		t.Error("original should still be solved")
	}
}

func TestEqualDifferentSizes(t *testing.T) {
	if New(2).Equal(New(3)) {
		t.Error("cubes of different sizes should not be equal")
	}
}

func TestSingleMoveBreaksSolved(t *testing.T) {
	c := New(3)
	c.Rotate(Right, Clockwise, 0)
	if c.IsSolved() {
		t.Error("cube should not be solved after a face turn")
	}
}

func TestEquatorTurnBreaksSolved(t *testing.T) {
	c := New(3)
	c.Rotate(Right, Clockwise, 1)
	if c.IsSolved() {
		t.Error("cube should not be solved after an equator turn")
	}
}

func TestStringSolved(t *testing.T) {
	want := "" +
		"   YYY\n" +
		"   YYY\n" +
		"   YYY\n" +
		"OOOBBBRRRGGG\n" +
		"OOOBBBRRRGGG\n" +
		"OOOBBBRRRGGG\n" +
		"   WWW\n" +
		"   WWW\n" +
		"   WWW\n"
	if got := New(3).String(); got != want {
		t.Errorf("solved 3x3 net mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestParseFace(t *testing.T) {
	for face := Up; face <= Down; face++ {
		got, err := ParseFace(face.String())
		if err != nil {
			t.Fatalf("ParseFace(%q): %v", face.String(), err)
		}
		if got != face {
			t.Errorf("ParseFace(%q) = %v", face.String(), got)
		}
	}
	if _, err := ParseFace("X"); err == nil {
		t.Error("ParseFace(\"X\") should fail")
	}
}
