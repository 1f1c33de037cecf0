package compile

// Matrix is a dense integer matrix with accumulating writes. Repeated Add
// calls on the same entry sum, which is how repeated species occurrences on
// one side of a reaction build stoichiometric magnitudes above one.
type Matrix struct {
	Rows, Cols int
	data       []int
}

// NewMatrix creates a zero rows×cols matrix.
func NewMatrix(rows, cols int) *Matrix {
	return &Matrix{Rows: rows, Cols: cols, data: make([]int, rows*cols)}
}

// Add accumulates v into entry (r, c).
func (m *Matrix) Add(r, c, v int) {
	m.data[r*m.Cols+c] += v
}

// At returns entry (r, c).
func (m *Matrix) At(r, c int) int {
	return m.data[r*m.Cols+c]
}

// Column returns a copy of column c.
func (m *Matrix) Column(c int) []int {
	col := make([]int, m.Rows)
	for r := 0; r < m.Rows; r++ {
		col[r] = m.At(r, c)
	}
	return col
}

// ToRows returns the matrix as a row-major slice of slices.
func (m *Matrix) ToRows() [][]int {
	rows := make([][]int, m.Rows)
	for r := 0; r < m.Rows; r++ {
		rows[r] = make([]int, m.Cols)
		copy(rows[r], m.data[r*m.Cols:(r+1)*m.Cols])
	}
	return rows
}

// BoolMatrix is a dense boolean matrix.
type BoolMatrix struct {
	Rows, Cols int
	data       []bool
}

// NewBoolMatrix creates a false rows×cols matrix.
func NewBoolMatrix(rows, cols int) *BoolMatrix {
	return &BoolMatrix{Rows: rows, Cols: cols, data: make([]bool, rows*cols)}
}

// Set writes entry (r, c).
func (m *BoolMatrix) Set(r, c int, v bool) {
	m.data[r*m.Cols+c] = v
}

// At returns entry (r, c).
func (m *BoolMatrix) At(r, c int) bool {
	return m.data[r*m.Cols+c]
}

// ToRows returns the matrix as a row-major slice of slices.
func (m *BoolMatrix) ToRows() [][]bool {
	rows := make([][]bool, m.Rows)
	for r := 0; r < m.Rows; r++ {
		rows[r] = make([]bool, m.Cols)
		copy(rows[r], m.data[r*m.Cols:(r+1)*m.Cols])
	}
	return rows
}
