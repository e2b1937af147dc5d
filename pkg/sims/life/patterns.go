package life

// Offset is a cell position relative to a placement base.
type Offset struct {
	DX, DY int
}

// Pattern is a named set of relative cell offsets. Patterns are reference
// data: define once, stamp anywhere.
type Pattern struct {
	Name  string
	Cells []Offset
}

// Placement pairs a pattern with the base coordinate it is stamped at.
type Placement struct {
	Pattern Pattern
	X, Y    int
}

// Glider translates one cell diagonally every four generations.
var Glider = Pattern{Name: "glider", Cells: []Offset{
	{1, 0},
	{2, 1},
	{0, 2}, {1, 2}, {2, 2},
}}

// Block is a static 2x2 square.
var Block = Pattern{Name: "block", Cells: []Offset{
	{0, 0}, {1, 0},
	{0, 1}, {1, 1},
}}

// Blinker is a period-2 oscillator, a line of three cells.
var Blinker = Pattern{Name: "blinker", Cells: []Offset{
	{0, 0}, {1, 0}, {2, 0},
}}

// Toad is a period-2 oscillator of two offset rows.
var Toad = Pattern{Name: "toad", Cells: []Offset{
	{1, 0}, {2, 0}, {3, 0},
	{0, 1}, {1, 1}, {2, 1},
}}

// Beacon is a period-2 oscillator of two diagonal blocks.
var Beacon = Pattern{Name: "beacon", Cells: []Offset{
	{0, 0}, {1, 0},
	{0, 1},
	{3, 2},
	{2, 3}, {3, 3},
}}

// Beehive is a static six-cell hexagon.
var Beehive = Pattern{Name: "beehive", Cells: []Offset{
	{1, 0}, {2, 0},
	{0, 1}, {3, 1},
	{1, 2}, {2, 2},
}}

// LightweightSpaceship translates two cells horizontally every four
// generations.
var LightweightSpaceship = Pattern{Name: "lwss", Cells: []Offset{
	{0, 0}, {3, 0},
	{4, 1},
	{0, 2}, {4, 2},
	{1, 3}, {2, 3}, {3, 3}, {4, 3},
}}

// Pulsar is a period-3 oscillator: a cross motif mirrored top and bottom,
// 48 cells in a 13x13 bounding box.
var Pulsar = Pattern{Name: "pulsar", Cells: []Offset{
	{2, 0}, {3, 0}, {4, 0}, {8, 0}, {9, 0}, {10, 0},
	{0, 2}, {5, 2}, {7, 2}, {12, 2},
	{0, 3}, {5, 3}, {7, 3}, {12, 3},
	{0, 4}, {5, 4}, {7, 4}, {12, 4},
	{2, 5}, {3, 5}, {4, 5}, {8, 5}, {9, 5}, {10, 5},

	{2, 7}, {3, 7}, {4, 7}, {8, 7}, {9, 7}, {10, 7},
	{0, 8}, {5, 8}, {7, 8}, {12, 8},
	{0, 9}, {5, 9}, {7, 9}, {12, 9},
	{0, 10}, {5, 10}, {7, 10}, {12, 10},
	{2, 12}, {3, 12}, {4, 12}, {8, 12}, {9, 12}, {10, 12},
}}

// DefaultPlacements returns the stock arrangement stamped on top of the
// random seed: two gliders, two blocks, one of each oscillator and static
// shape, a lightweight spaceship and a pulsar. The bases are chosen for a
// 100x100 grid so no two bounding boxes collide.
func DefaultPlacements() []Placement {
	return []Placement{
		{Glider, 15, 15},
		{Glider, 70, 10},
		{Block, 5, 5},
		{Block, 90, 90},
		{Blinker, 25, 25},
		{Toad, 35, 35},
		{Beacon, 45, 45},
		{Beehive, 60, 60},
		{LightweightSpaceship, 10, 50},
		{Pulsar, 50, 20},
	}
}
