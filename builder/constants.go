package builder

// Topology names, used as error context and by the CLI generator.
const (
	MethodPath              = "Path"
	MethodCycle             = "Cycle"
	MethodStar              = "Star"
	MethodWheel             = "Wheel"
	MethodComplete          = "Complete"
	MethodCompleteBipartite = "CompleteBipartite"
	MethodGrid              = "Grid"
	MethodRandomTree        = "RandomTree"
	MethodRandomSparse      = "RandomSparse"
)

// CenterVertexID is the fixed hub label of Star and Wheel.
const CenterVertexID = "Center"

// Topology minima.
const (
	MinPathNodes  = 2
	MinCycleNodes = 3
	MinStarNodes  = 2
	MinWheelNodes = 4
	MinGridDim    = 1
	MinTreeNodes  = 1
)

// Bipartite side prefixes.
const (
	LeftPrefix  = "L"
	RightPrefix = "R"
)
