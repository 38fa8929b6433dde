package penalty

import "errors"

// ErrUnknownKind is returned by Make for a Kind value outside the
// defined enumeration.
var ErrUnknownKind = errors.New("penalty: unknown kind")

// ErrNegativeLambda is returned when Params.Lambda is negative.
var ErrNegativeLambda = errors.New("penalty: lambda must be non-negative")

// ErrInvalidGamma is returned when Params.Gamma is out of range for the
// requested kind (SCAD requires gamma>2, MCP requires gamma>1).
var ErrInvalidGamma = errors.New("penalty: gamma out of range for this kind")

// ErrInvalidGroups is returned when Params.Groups does not partition the
// input domain: empty, overlapping, or out-of-range indices.
var ErrInvalidGroups = errors.New("penalty: groups must be a non-overlapping partition of valid indices")

// ErrNonNegFusionUnsupported is returned when Params.NonNeg is requested
// together with OrderedFused or UnorderedFusion, a combination the core
// does not define a proximal map for.
var ErrNonNegFusionUnsupported = errors.New("penalty: non-negative variant is not supported for fusion kinds")
