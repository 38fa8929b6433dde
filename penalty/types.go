package penalty

import "github.com/katalvlaran/moma/logging"

// Kind enumerates the supported penalty families.
type Kind int

const (
	None Kind = iota
	Lasso
	SCAD
	MCP
	GroupLasso
	OrderedFused
	UnorderedFusion
)

func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case Lasso:
		return "lasso"
	case SCAD:
		return "scad"
	case MCP:
		return "mcp"
	case GroupLasso:
		return "group_lasso"
	case OrderedFused:
		return "ordered_fused"
	case UnorderedFusion:
		return "unordered_fusion"
	default:
		return "unknown"
	}
}

// Params bundles every tunable a penalty kind might need; only the
// fields relevant to the requested Kind are read.
type Params struct {
	Lambda float64

	// Gamma is the non-convexity parameter: SCAD requires gamma>2,
	// MCP requires gamma>1.
	Gamma float64

	// Groups partitions {0,...,n-1} into disjoint index sets for
	// GroupLasso: an equivalent of a 1..G group-label vector, pre-split
	// by label so the ProxOp never has to bucket indices itself.
	// Validated on every ProxOp call, since n is not known at Make time.
	Groups [][]int

	// Weight is the edge-weight matrix for UnorderedFusion, forwarded
	// to fusionprox.Config.
	Weight [][]float64
	ADMM   bool
	Accel  bool

	// NonNeg requests the project-then-prox non-negative variant.
	NonNeg bool

	// ProxEps and MaxIter tune the iterative solvers used by
	// UnorderedFusion; zero selects their package defaults.
	ProxEps float64
	MaxIter int

	Logger logging.Logger
}

// ProxOp evaluates a proximal operator at x, returning the penalized
// estimate. Implementations may be stateful (UnorderedFusion warm-starts
// an internal cache across calls).
type ProxOp func(x []float64) ([]float64, error)
