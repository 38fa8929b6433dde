package numeric

import "fmt"

// Dense is a row-major dense matrix of float64 values: a flat backing
// slice for cache-friendly access, O(1) bounds-checked At/Set, and a
// deep Clone.
type Dense struct {
	rows, cols int
	data       []float64 // length rows*cols, row-major
}

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// NewDense allocates an rows×cols Dense matrix initialized to zero.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Dense{rows: rows, cols: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFrom builds a Dense from row-major data, which must have length
// rows*cols; the slice is copied so the caller retains ownership of data.
func NewDenseFrom(rows, cols int, data []float64) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	if len(data) != rows*cols {
		return nil, ErrDimensionMismatch
	}
	cp := make([]float64, len(data))
	copy(cp, data)
	return &Dense{rows: rows, cols: cols, data: cp}, nil
}

// Identity returns an n×n identity matrix.
func Identity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1.0
	}
	return m, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.cols }

func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.rows {
		return 0, denseErrorf("At", row, col, ErrIndexOutOfBounds)
	}
	if col < 0 || col >= m.cols {
		return 0, denseErrorf("At", row, col, ErrIndexOutOfBounds)
	}
	return row*m.cols + col, nil
}

// At retrieves the element at (row, col).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, err
	}
	return m.data[idx], nil
}

// Set assigns v at (row, col).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v
	return nil
}

// Clone returns a deep copy of m.
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)
	return &Dense{rows: m.rows, cols: m.cols, data: cp}
}

// IsSquare reports whether rows == cols.
func (m *Dense) IsSquare() bool { return m.rows == m.cols }

// IsSymmetric reports whether m is symmetric within tol.
func (m *Dense) IsSymmetric(tol float64) bool {
	if !m.IsSquare() {
		return false
	}
	n := m.rows
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if absf(m.data[i*n+j]-m.data[j*n+i]) > tol {
				return false
			}
		}
	}
	return true
}

// MatVec computes y = m*x. len(x) must equal m.Cols(); the returned slice
// has length m.Rows().
func (m *Dense) MatVec(x []float64) ([]float64, error) {
	if len(x) != m.cols {
		return nil, ErrDimensionMismatch
	}
	y := make([]float64, m.rows)
	for i := 0; i < m.rows; i++ {
		var sum float64
		base := i * m.cols
		for j := 0; j < m.cols; j++ {
			sum += m.data[base+j] * x[j]
		}
		y[i] = sum
	}
	return y, nil
}

// MatVecT computes y = mᵀ*x. len(x) must equal m.Rows(); the returned
// slice has length m.Cols().
func (m *Dense) MatVecT(x []float64) ([]float64, error) {
	if len(x) != m.rows {
		return nil, ErrDimensionMismatch
	}
	y := make([]float64, m.cols)
	for i := 0; i < m.rows; i++ {
		xi := x[i]
		if xi == 0 {
			continue
		}
		base := i * m.cols
		for j := 0; j < m.cols; j++ {
			y[j] += m.data[base+j] * xi
		}
	}
	return y, nil
}

// Quadratic computes xᵀ*m*x for square m.
func (m *Dense) Quadratic(x []float64) (float64, error) {
	if !m.IsSquare() {
		return 0, ErrNonSquare
	}
	mx, err := m.MatVec(x)
	if err != nil {
		return 0, err
	}
	return Dot(x, mx), nil
}

// Scale multiplies every entry of m by s in place.
func (m *Dense) Scale(s float64) {
	for i := range m.data {
		m.data[i] *= s
	}
}

// AddScaledIdentity adds s to every diagonal entry of a square m in place.
func (m *Dense) AddScaledIdentity(s float64) error {
	if !m.IsSquare() {
		return ErrNonSquare
	}
	n := m.rows
	for i := 0; i < n; i++ {
		m.data[i*n+i] += s
	}
	return nil
}

// Add returns a new Dense containing the element-wise sum of a and b,
// which must share shape.
func Add(a, b *Dense) (*Dense, error) {
	if a.rows != b.rows || a.cols != b.cols {
		return nil, ErrDimensionMismatch
	}
	out := &Dense{rows: a.rows, cols: a.cols, data: make([]float64, len(a.data))}
	for i := range a.data {
		out.data[i] = a.data[i] + b.data[i]
	}
	return out, nil
}

// BuildS composes the generalized-eigenvalue smoothing matrix
// S = I_k + k*alpha*Omega for S_u/S_v, where k = n or p.
func BuildS(k int, alpha float64, omega *Dense) (*Dense, error) {
	if omega == nil {
		return Identity(k)
	}
	if omega.rows != k || omega.cols != k {
		return nil, ErrDimensionMismatch
	}
	s := omega.Clone()
	s.Scale(float64(k) * alpha)
	if err := s.AddScaledIdentity(1.0); err != nil {
		return nil, err
	}
	return s, nil
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
