package lint

import (
	"fmt"

	"github.com/bsltools/bsllint/internal/logging"
	"github.com/bsltools/bsllint/pkg/bslast"
)

// visitorEntry pairs a node visitor with its per-module state.
type visitorEntry struct {
	visitor  NodeVisitor
	ruleCtx  *RuleContext
	disabled bool
	err      error
}

// Walker drives a single pre-order traversal of a module's tree and
// dispatches each node to the visitors subscribed to its kind. A visitor
// that returns an error or panics is disabled for the remainder of the
// module; other visitors keep running.
type Walker struct {
	byKind  map[bslast.NodeKind][]*visitorEntry
	entries []*visitorEntry
}

// NewWalker builds a walker over the given visitor rules. Each visitor gets
// its own rule context.
func NewWalker() *Walker {
	return &Walker{byKind: make(map[bslast.NodeKind][]*visitorEntry)}
}

// Subscribe adds a visitor with its rule context to the walk.
func (w *Walker) Subscribe(visitor NodeVisitor, ruleCtx *RuleContext) {
	entry := &visitorEntry{visitor: visitor, ruleCtx: ruleCtx}
	w.entries = append(w.entries, entry)
	for _, kind := range visitor.Kinds() {
		w.byKind[kind] = append(w.byKind[kind], entry)
	}
}

// Walk traverses the tree once, dispatching nodes in source order. The
// returned map holds the first error of each visitor that failed, keyed by
// rule ID. Walk itself returns an error only when the walk context is done.
func (w *Walker) Walk(root *bslast.Node) (map[string]error, error) {
	errs := make(map[string]error)

	walkErr := bslast.Walk(root, func(node *bslast.Node) error {
		entries := w.byKind[node.Kind]
		if len(entries) == 0 {
			return nil
		}

		for _, entry := range entries {
			if entry.disabled {
				continue
			}
			if entry.ruleCtx.Cancelled() {
				return entry.ruleCtx.Ctx.Err()
			}
			w.dispatch(entry, node)
		}
		return nil
	})

	for _, entry := range w.entries {
		if entry.err != nil {
			errs[entry.visitor.ID()] = entry.err
		}
	}

	if walkErr != nil {
		return errs, walkErr
	}
	return errs, nil
}

// dispatch runs one visitor on one node, converting a panic into a visitor
// error so a single broken rule cannot take down the module analysis.
func (w *Walker) dispatch(entry *visitorEntry, node *bslast.Node) {
	defer func() {
		if r := recover(); r != nil {
			entry.disabled = true
			entry.err = fmt.Errorf("visitor panicked: %v", r)
			logging.FromContext(entry.ruleCtx.Ctx).Error("rule panicked, disabled for module",
				logging.FieldRule, entry.visitor.ID(),
				logging.FieldError, entry.err)
		}
	}()

	if err := entry.visitor.Visit(node, entry.ruleCtx); err != nil {
		entry.disabled = true
		entry.err = err
		logging.FromContext(entry.ruleCtx.Ctx).Warn("rule failed, disabled for module",
			logging.FieldRule, entry.visitor.ID(),
			logging.FieldError, err)
	}
}
