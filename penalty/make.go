package penalty

// Make builds a ProxOp for the requested Kind, validating the parameters
// that can be checked without knowing the input dimension (dimension-
// dependent checks, like group coverage, run on every call of the
// returned ProxOp).
func Make(kind Kind, p Params) (ProxOp, error) {
	if p.Lambda < 0 {
		return nil, ErrNegativeLambda
	}
	if p.NonNeg && (kind == OrderedFused || kind == UnorderedFusion) {
		return nil, ErrNonNegFusionUnsupported
	}
	switch kind {
	case None:
		return makeNone(p), nil
	case Lasso:
		return makeLasso(p), nil
	case SCAD:
		return makeSCAD(p)
	case MCP:
		return makeMCP(p)
	case GroupLasso:
		return makeGroupLasso(p), nil
	case OrderedFused:
		return makeOrderedFused(p), nil
	case UnorderedFusion:
		return makeUnorderedFusion(p), nil
	default:
		return nil, ErrUnknownKind
	}
}
