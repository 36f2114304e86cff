package csg

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/adze-cad/adze/pkg/ast"
	"github.com/adze-cad/adze/pkg/eval"
)

// Result bundles the full output of a conversion run. Success is true
// exactly when no error-severity diagnostic was recorded; warnings never
// fail a run.
type Result struct {
	Success bool    `json:"success"`
	Tree    *Tree   `json:"tree,omitempty"`
	Errors  []Error `json:"errors"`
	Warns   []Error `json:"warnings"`

	// ProcessingTime is the wall-clock duration of the call in
	// milliseconds.
	ProcessingTime float64 `json:"processingTime"`
}

// Processor converts AST forests into CSG trees. It holds no per-run
// state, so a single Processor may be used from multiple goroutines.
type Processor struct {
	cfg  Config
	log  *slog.Logger
	eval *eval.Evaluator
}

// NewProcessor returns a Processor for the given configuration.
func NewProcessor(cfg Config) *Processor {
	log := cfg.logger()
	return &Processor{
		cfg:  cfg,
		log:  log,
		eval: &eval.Evaluator{Log: log, Scraper: eval.NewScraper()},
	}
}

// Process converts an AST forest with the given configuration. See
// Processor.Process.
func Process(nodes []*ast.Node, cfg Config) *Result {
	return NewProcessor(cfg).Process(nodes)
}

// Process converts each top-level AST node independently: one failing
// root never blocks its siblings, and an empty input is a valid no-op.
// Expected failures surface as diagnostics on the Result; only a truly
// unanticipated fault is recovered into a single PROCESSING_ERROR.
func (p *Processor) Process(nodes []*ast.Node) (res *Result) {
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			p.log.Error("conversion panicked", "panic", r)
			res = &Result{
				Errors: []Error{{
					Message:  fmt.Sprintf("unexpected fault during processing: %v", r),
					Code:     CodeProcessing,
					Severity: SeverityError,
				}},
				ProcessingTime: millisSince(start),
			}
		}
	}()

	var roots []*Node
	var diags []Error
	for _, n := range nodes {
		node, errs := p.convert(n, 0)
		diags = append(diags, errs...)
		if node != nil {
			roots = append(roots, node)
		}
	}

	tree := &Tree{Roots: roots, Source: nodes}
	tree.Meta = computeMetadata(roots)

	if p.cfg.MaxNodes > 0 && tree.Meta.NodeCount > p.cfg.MaxNodes {
		diags = append(diags, Error{
			Message:  fmt.Sprintf("tree has %d nodes, budget is %d", tree.Meta.NodeCount, p.cfg.MaxNodes),
			Code:     CodeMaxNodes,
			Severity: SeverityWarning,
		})
	}

	errors := make([]Error, 0, len(diags))
	warnings := make([]Error, 0, len(diags))
	for _, d := range diags {
		if d.Severity == SeverityError {
			errors = append(errors, d)
		} else {
			warnings = append(warnings, d)
		}
	}

	p.log.Debug("conversion finished",
		"roots", len(roots),
		"nodes", tree.Meta.NodeCount,
		"errors", len(errors),
		"warnings", len(warnings))

	return &Result{
		Success:        len(errors) == 0,
		Tree:           tree,
		Errors:         errors,
		Warns:          warnings,
		ProcessingTime: millisSince(start),
	}
}

// convert dispatches one AST node. It returns the converted node (nil
// when the subtree was dropped) together with every diagnostic the branch
// produced; the caller concatenates.
func (p *Processor) convert(n *ast.Node, depth int) (*Node, []Error) {
	if n == nil {
		return nil, nil
	}
	if depth > p.cfg.MaxDepth {
		return nil, []Error{{
			Message:  fmt.Sprintf("node at depth %d exceeds limit %d", depth, p.cfg.MaxDepth),
			Code:     CodeMaxDepth,
			Severity: SeverityError,
			Source:   sourceOf(n),
		}}
	}

	node, errs := p.dispatch(n, depth)
	return node, errs
}

// dispatch routes by node type. A panic anywhere below drops this subtree
// with a CONVERSION_ERROR; siblings are unaffected.
func (p *Processor) dispatch(n *ast.Node, depth int) (node *Node, errs []Error) {
	defer func() {
		if r := recover(); r != nil {
			node = nil
			errs = append(errs, Error{
				Message:  fmt.Sprintf("conversion of %q node failed: %v", n.Type, r),
				Code:     CodeConversion,
				Severity: SeverityError,
				Source:   sourceOf(n),
			})
		}
	}()

	appendErr := func(cerr *Error) {
		if cerr != nil {
			errs = append(errs, *cerr)
		}
	}

	switch n.Type {
	case "cube":
		node, cerr := p.convertCube(n)
		appendErr(cerr)
		return node, errs

	case "sphere":
		node, cerr := p.convertSphere(n)
		appendErr(cerr)
		return node, errs

	case "cylinder":
		node, cerr := p.convertCylinder(n, KindCylinder)
		appendErr(cerr)
		return node, errs

	case "cone":
		node, cerr := p.convertCylinder(n, KindCone)
		appendErr(cerr)
		return node, errs

	case "polyhedron":
		node, cerr := p.convertPolyhedron(n)
		appendErr(cerr)
		return node, errs

	case "union", "difference", "intersection":
		kind := KindUnion
		switch n.Type {
		case "difference":
			kind = KindDifference
		case "intersection":
			kind = KindIntersection
		}
		// Convert declared children first; a failing child is omitted and
		// a degraded operation may still form from the survivors.
		var children []*Node
		for _, c := range n.Children {
			child, childErrs := p.convert(c, depth+1)
			errs = append(errs, childErrs...)
			if child != nil {
				children = append(children, child)
			}
		}
		node, cerr := p.convertOperation(kind, n, children)
		appendErr(cerr)
		return node, errs

	case "translate", "rotate", "scale":
		// Transforms are modeled strictly unary: only the first declared
		// child converts, extras are noted and skipped.
		var child *Node
		if len(n.Children) > 0 {
			var childErrs []Error
			child, childErrs = p.convert(n.Children[0], depth+1)
			errs = append(errs, childErrs...)
		}
		if len(n.Children) > 1 {
			errs = append(errs, Error{
				Message:  fmt.Sprintf("%s has %d children; transforms are unary, extras ignored", n.Type, len(n.Children)),
				Code:     CodeUnsupportedNodeType,
				Severity: SeverityInfo,
				Source:   sourceOf(n),
			})
		}
		node, cerr := p.convertTransform(n, child)
		appendErr(cerr)
		return node, errs

	case "group", "block":
		var children []*Node
		for _, c := range n.Children {
			child, childErrs := p.convert(c, depth+1)
			errs = append(errs, childErrs...)
			if child != nil {
				children = append(children, child)
			}
		}
		node, cerr := p.convertGroup(n, children)
		appendErr(cerr)
		return node, errs
	}

	p.log.Debug("skipping unsupported node", "type", n.Type)
	return nil, append(errs, Error{
		Message:  fmt.Sprintf("unsupported node type %q", n.Type),
		Code:     CodeUnsupportedNodeType,
		Severity: SeverityWarning,
		Source:   sourceOf(n),
	})
}

func millisSince(start time.Time) float64 {
	return float64(time.Since(start).Microseconds()) / 1000.0
}
