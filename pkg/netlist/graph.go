package netlist

// Graph is the directed-graph abstraction the renamer and reporter operate
// on. The graph is owned by the caller; this package only iterates it, reads
// node attributes, and relabels keys. Any graph structure that can present
// this surface can be substituted for the built-in DiGraph.
type Graph interface {
	// Len returns the number of nodes
	Len() int
	// Keys returns all node keys in insertion order
	Keys() []string
	// Attrs returns the attribute bundle of a node
	Attrs(key string) (Attrs, bool)
	// Relabel applies a bulk key mapping atomically, preserving attributes
	// and edges. Keys absent from the mapping keep their identity.
	Relabel(mapping map[string]string) error
}

// DiGraph is an insertion-ordered, in-memory directed graph carrying an
// attribute bundle per node. It is the concrete graph the framework builds
// from parsed netlists.
type DiGraph struct {
	keys  []string
	attrs map[string]Attrs
	succs map[string]map[string]struct{}
	preds map[string]map[string]struct{}
}

// NewDiGraph creates an empty graph
func NewDiGraph() *DiGraph {
	return &DiGraph{
		attrs: make(map[string]Attrs),
		succs: make(map[string]map[string]struct{}),
		preds: make(map[string]map[string]struct{}),
	}
}

// Len returns the number of nodes
func (g *DiGraph) Len() int {
	return len(g.keys)
}

// Keys returns all node keys in insertion order
func (g *DiGraph) Keys() []string {
	out := make([]string, len(g.keys))
	copy(out, g.keys)
	return out
}

// Attrs returns the attribute bundle of a node
func (g *DiGraph) Attrs(key string) (Attrs, bool) {
	a, ok := g.attrs[key]
	return a, ok
}

// AddNode inserts a node with its attribute bundle. A nil bundle is
// allocated empty so callers can attach attributes later.
func (g *DiGraph) AddNode(key string, attrs Attrs) error {
	if _, exists := g.attrs[key]; exists {
		return &GraphError{Op: "add", Node: key, Cause: ErrDuplicateKey}
	}
	if attrs == nil {
		attrs = make(Attrs)
	}
	g.keys = append(g.keys, key)
	g.attrs[key] = attrs
	g.succs[key] = make(map[string]struct{})
	g.preds[key] = make(map[string]struct{})
	return nil
}

// AddEdge connects two existing nodes
func (g *DiGraph) AddEdge(from, to string) error {
	if _, ok := g.attrs[from]; !ok {
		return &GraphError{Op: "edge", Node: from, Cause: ErrNodeNotFound}
	}
	if _, ok := g.attrs[to]; !ok {
		return &GraphError{Op: "edge", Node: to, Cause: ErrNodeNotFound}
	}
	g.succs[from][to] = struct{}{}
	g.preds[to][from] = struct{}{}
	return nil
}

// Successors returns the keys this node has edges to, in insertion order of
// the node set.
func (g *DiGraph) Successors(key string) []string {
	set, ok := g.succs[key]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(set))
	for _, k := range g.keys {
		if _, hit := set[k]; hit {
			out = append(out, k)
		}
	}
	return out
}

// Relabel applies a bulk key mapping computed from a single snapshot of the
// node set. No remapped key is itself re-looked-up in the mapping, so the
// operation is order independent. Fails without modifying the graph if the
// mapping names an unknown node or two keys collide after mapping.
func (g *DiGraph) Relabel(mapping map[string]string) error {
	if len(mapping) == 0 {
		return nil
	}

	target := func(key string) string {
		if to, ok := mapping[key]; ok {
			return to
		}
		return key
	}

	seen := make(map[string]struct{}, len(g.keys))
	for from := range mapping {
		if _, ok := g.attrs[from]; !ok {
			return &GraphError{Op: "relabel", Node: from, Cause: ErrNodeNotFound}
		}
	}
	for _, key := range g.keys {
		to := target(key)
		if _, dup := seen[to]; dup {
			return &GraphError{Op: "relabel", Node: to, Cause: ErrDuplicateKey}
		}
		seen[to] = struct{}{}
	}

	keys := make([]string, len(g.keys))
	attrs := make(map[string]Attrs, len(g.attrs))
	succs := make(map[string]map[string]struct{}, len(g.succs))
	preds := make(map[string]map[string]struct{}, len(g.preds))

	for i, key := range g.keys {
		to := target(key)
		keys[i] = to
		attrs[to] = g.attrs[key]

		ns := make(map[string]struct{}, len(g.succs[key]))
		for s := range g.succs[key] {
			ns[target(s)] = struct{}{}
		}
		succs[to] = ns

		np := make(map[string]struct{}, len(g.preds[key]))
		for p := range g.preds[key] {
			np[target(p)] = struct{}{}
		}
		preds[to] = np
	}

	g.keys = keys
	g.attrs = attrs
	g.succs = succs
	g.preds = preds
	return nil
}
