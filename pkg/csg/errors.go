package csg

import "fmt"

// Severity indicates whether a diagnostic fails the run or is advisory.
// Only SeverityError fails a conversion.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// MarshalText implements encoding.TextMarshaler for JSON output.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Diagnostic codes. Conversion codes mark a converter boundary failure,
// structural codes a shape violation during building, validation codes a
// post-hoc invariant violation.
const (
	CodeCubeConversion       = "CUBE_CONVERSION_ERROR"
	CodeSphereConversion     = "SPHERE_CONVERSION_ERROR"
	CodeCylinderConversion   = "CYLINDER_CONVERSION_ERROR"
	CodePolyhedronConversion = "POLYHEDRON_CONVERSION_ERROR"
	CodeOperation            = "CSG_OPERATION_ERROR"
	CodeTransformConversion  = "TRANSFORM_CONVERSION_ERROR"
	CodeConversion           = "CONVERSION_ERROR"
	CodeProcessing           = "PROCESSING_ERROR"

	CodeEmptyOperation   = "EMPTY_CSG_OPERATION"
	CodeInvalidTransform = "INVALID_TRANSFORM"
	CodeTransformNoChild = "TRANSFORM_NO_CHILD"
	CodeMaxDepth         = "MAX_DEPTH_EXCEEDED"
	CodeMaxNodes         = "MAX_NODES_EXCEEDED"

	CodeMissingNodeID         = "MISSING_NODE_ID"
	CodeMissingNodeType       = "MISSING_NODE_TYPE"
	CodeInvalidCubeSize       = "INVALID_CUBE_SIZE"
	CodeInvalidSphereRadius   = "INVALID_SPHERE_RADIUS"
	CodeInvalidCylinderHeight = "INVALID_CYLINDER_HEIGHT"
	CodeInvalidCylinderRadius = "INVALID_CYLINDER_RADIUS"
	CodeInvalidPolyhedron     = "INVALID_POLYHEDRON"

	CodeUnsupportedNodeType = "UNSUPPORTED_NODE_TYPE"
)

// Error describes a single conversion or validation finding.
type Error struct {
	Message  string          `json:"message"`
	Code     string          `json:"code"`
	Severity Severity        `json:"severity"`
	Source   *SourceLocation `json:"sourceLocation,omitempty"`
	NodeID   string          `json:"nodeId,omitempty"`
}

func (e Error) Error() string {
	context := ""
	if e.NodeID != "" {
		context = fmt.Sprintf(" (node: %s)", e.NodeID)
	}
	return fmt.Sprintf("[%s] %s: %s%s", e.Severity, e.Code, e.Message, context)
}
