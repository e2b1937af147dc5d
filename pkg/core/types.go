package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a cellular automaton must implement.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// IndexExporter is implemented by sims whose state can be snapshotted as
// palette indices, one byte per cell in row-major order.
type IndexExporter interface {
	ExportIndices() []uint8
}
