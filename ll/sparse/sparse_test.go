package sparse

import "testing"

func TestMatrixSetGet(t *testing.T) {
	M := NewIntMatrix(10, 10, -1)
	if M.Value(2, 3) != -1 {
		t.Errorf("expected empty matrix to return null value, got %d", M.Value(2, 3))
	}
	M.Set(2, 3, 4711)
	M.Set(0, 9, 1)
	M.Set(9, 0, 2)
	if v := M.Value(2, 3); v != 4711 {
		t.Errorf("expected M(2,3) = 4711, is %d", v)
	}
	if M.ValueCount() != 3 {
		t.Errorf("expected 3 values in M, have %d", M.ValueCount())
	}
	M.Set(2, 3, 5)
	if v := M.Value(2, 3); v != 5 || M.ValueCount() != 3 {
		t.Errorf("expected M(2,3) to be overwritten with 5, is %d (count %d)", v, M.ValueCount())
	}
}

func TestMatrixAdd(t *testing.T) {
	M := NewIntMatrix(4, 4, DefaultNullValue)
	M.Add(1, 1, 7)
	M.Add(1, 1, 8)
	a, b := M.Values(1, 1)
	if a != 7 || b != 8 {
		t.Errorf("expected M(1,1) = (7,8), is (%d,%d)", a, b)
	}
	if M.ValueCount() != 1 {
		t.Errorf("expected 1 position to be set, have %d", M.ValueCount())
	}
}

func TestMatrixRowMajorOrder(t *testing.T) {
	M := NewIntMatrix(3, 3, -1)
	M.Set(2, 0, 20)
	M.Set(0, 2, 2)
	M.Set(1, 1, 11)
	M.Set(0, 0, 0)
	var seen []int32
	M.Each(func(i, j int, a, b int32) {
		seen = append(seen, a)
	})
	expected := []int32{0, 2, 11, 20}
	if len(seen) != len(expected) {
		t.Fatalf("expected %d entries, got %d", len(expected), len(seen))
	}
	for k := range expected {
		if seen[k] != expected[k] {
			t.Errorf("expected entry #%d to be %d, is %d", k, expected[k], seen[k])
		}
	}
}

func TestMatrixOutOfRange(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected Set out of range to panic")
		}
	}()
	M := NewIntMatrix(2, 2, -1)
	M.Set(2, 0, 1)
}
