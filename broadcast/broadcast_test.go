package broadcast

import "testing"

func TestValue_Scalar(t *testing.T) {
	v := Scalar(9)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if got := v.ILoc(r, c); got != 9 {
				t.Errorf("ILoc(%d,%d) = %d, want 9", r, c, got)
			}
		}
	}
}

func TestValue_Row(t *testing.T) {
	v, err := Row([]string{"l", "c", "r"})
	if err != nil {
		t.Fatalf("Row() error = %v", err)
	}
	for r := 0; r < 5; r++ {
		if got := v.ILoc(r, 1); got != "c" {
			t.Errorf("ILoc(%d,1) = %q, want c", r, got)
		}
	}
	if got := v.ILoc(0, 3); got != "l" {
		t.Errorf("ILoc(0,3) = %q, want wraparound to l", got)
	}
}

func TestValue_Col(t *testing.T) {
	v, err := Col([]float64{1.0, 2.0})
	if err != nil {
		t.Fatalf("Col() error = %v", err)
	}
	if got := v.ILoc(0, 5); got != 1.0 {
		t.Errorf("ILoc(0,5) = %v, want 1.0", got)
	}
	if got := v.ILoc(1, 5); got != 2.0 {
		t.Errorf("ILoc(1,5) = %v, want 2.0", got)
	}
	if got := v.ILoc(2, 0); got != 1.0 {
		t.Errorf("ILoc(2,0) = %v, want wraparound to 1.0", got)
	}
}

func TestValue_Matrix(t *testing.T) {
	v, err := Matrix([][]int{{1, 2}, {3, 4}})
	if err != nil {
		t.Fatalf("Matrix() error = %v", err)
	}
	cases := []struct{ r, c, want int }{
		{0, 0, 1}, {0, 1, 2}, {1, 0, 3}, {1, 1, 4}, {2, 2, 1},
	}
	for _, tc := range cases {
		if got := v.ILoc(tc.r, tc.c); got != tc.want {
			t.Errorf("ILoc(%d,%d) = %d, want %d", tc.r, tc.c, got, tc.want)
		}
	}
}

func TestValue_Materialize(t *testing.T) {
	v := Scalar("x")
	m := v.Materialize(2, 3)
	if len(m) != 2 || len(m[0]) != 3 {
		t.Fatalf("Materialize() shape = %dx%d, want 2x3", len(m), len(m[0]))
	}
	for _, row := range m {
		for _, val := range row {
			if val != "x" {
				t.Errorf("Materialize() cell = %q, want x", val)
			}
		}
	}
}

func TestValue_UpdateRow(t *testing.T) {
	v := Scalar(0)
	m, err := v.UpdateRow(3, 2, 1, []int{9, 9})
	if err != nil {
		t.Fatalf("UpdateRow() error = %v", err)
	}
	if m[1][0] != 9 || m[1][1] != 9 {
		t.Errorf("UpdateRow() row 1 = %v, want [9 9]", m[1])
	}
	if m[0][0] != 0 || m[2][0] != 0 {
		t.Errorf("UpdateRow() should not mutate other rows")
	}
	// original value unaffected
	if got := v.ILoc(1, 0); got != 0 {
		t.Errorf("UpdateRow() must not mutate receiver, ILoc(1,0) = %d", got)
	}
}

func TestValue_UpdateColumn(t *testing.T) {
	v := Scalar(0)
	m, err := v.UpdateColumn(2, 3, 1, []int{7, 8})
	if err != nil {
		t.Fatalf("UpdateColumn() error = %v", err)
	}
	if m[0][1] != 7 || m[1][1] != 8 {
		t.Errorf("UpdateColumn() col 1 = [%d %d], want [7 8]", m[0][1], m[1][1])
	}
}

func TestValue_UpdateCell(t *testing.T) {
	v := Scalar(0)
	m, err := v.UpdateCell(2, 2, 1, 1, 5)
	if err != nil {
		t.Fatalf("UpdateCell() error = %v", err)
	}
	if m[1][1] != 5 {
		t.Errorf("UpdateCell() (1,1) = %d, want 5", m[1][1])
	}
	if m[0][0] != 0 {
		t.Errorf("UpdateCell() must not disturb other cells")
	}
}

func TestFromSequence(t *testing.T) {
	v, err := FromSequence([]int{1, 2, 3}, 10, 3)
	if err != nil {
		t.Fatalf("FromSequence() error = %v", err)
	}
	if v.Kind() != KindRow {
		t.Errorf("FromSequence() with len==cols kind = %v, want Row", v.Kind())
	}

	v, err = FromSequence([]int{1, 2, 3}, 3, 10)
	if err != nil {
		t.Fatalf("FromSequence() error = %v", err)
	}
	if v.Kind() != KindCol {
		t.Errorf("FromSequence() with len==rows kind = %v, want Col", v.Kind())
	}
}

func TestValue_EmptyConstructors(t *testing.T) {
	if _, err := Row[int](nil); err == nil {
		t.Error("Row(nil) should error")
	}
	if _, err := Col[int](nil); err == nil {
		t.Error("Col(nil) should error")
	}
	if _, err := Matrix[int](nil); err == nil {
		t.Error("Matrix(nil) should error")
	}
	if _, err := Matrix([][]int{{1, 2}, {1}}); err == nil {
		t.Error("Matrix() with ragged rows should error")
	}
}
