package compile

import "testing"

func TestMatrixAccumulates(t *testing.T) {
	m := NewMatrix(2, 3)
	m.Add(0, 1, -1)
	m.Add(0, 1, -1)
	m.Add(1, 2, 1)

	if got := m.At(0, 1); got != -2 {
		t.Errorf("At(0,1) = %d, want -2", got)
	}
	if got := m.At(1, 2); got != 1 {
		t.Errorf("At(1,2) = %d, want 1", got)
	}
	if got := m.At(0, 0); got != 0 {
		t.Errorf("At(0,0) = %d, want 0", got)
	}
}

func TestMatrixColumn(t *testing.T) {
	m := NewMatrix(2, 2)
	m.Add(0, 0, 3)
	m.Add(1, 0, -1)

	col := m.Column(0)
	if col[0] != 3 || col[1] != -1 {
		t.Errorf("Column(0) = %v, want [3 -1]", col)
	}
}

func TestBoolMatrix(t *testing.T) {
	m := NewBoolMatrix(2, 2)
	m.Set(1, 0, true)

	if !m.At(1, 0) || m.At(0, 1) {
		t.Errorf("unexpected matrix contents: %v", m.ToRows())
	}

	rows := m.ToRows()
	if !rows[1][0] {
		t.Errorf("ToRows = %v", rows)
	}
}
