package explanation

type Kind string

const (
	KindComprehensive Kind = "comprehensive"
	KindDiagram       Kind = "diagram"
	KindFlow          Kind = "flow"
	KindOverview      Kind = "overview"
	KindFunction      Kind = "function"
	KindClass         Kind = "class"
)

// Sentinel file paths for repository-wide explanations. Per-file
// explanations use the real file path instead.
const (
	PathComprehensive = "comprehensive-analysis"
	PathDataFlow      = "data-flow-diagram"
	PathConceptMap    = "concept-map-diagram"
)

func (k Kind) IsValid() bool {
	switch k {
	case KindComprehensive, KindDiagram, KindFlow, KindOverview, KindFunction, KindClass:
		return true
	}
	return false
}
