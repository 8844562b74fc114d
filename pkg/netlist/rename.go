package netlist

// RenameNodes appends suffix to every node key in the graph, keeping the
// attached record's Name field in lockstep with the key. With ignoreInputs
// set, nodes whose record type is "input" keep both their key and their
// record name, so cloned subgraphs merged into a parent still share primary
// inputs.
//
// The mapping is computed from one snapshot of the node set before any key
// changes, so renaming is a pure mapping old key -> old key + suffix applied
// atomically. An empty suffix is the identity. A node without an attached
// record fails the whole operation; no caller builds graphs with bare nodes,
// so hitting one means the graph is corrupt.
//
// The returned graph is the caller's graph; it is returned for call chaining
// and callers must not assume a fresh instance.
func RenameNodes(g Graph, suffix string, ignoreInputs bool) (Graph, error) {
	mapping := make(map[string]string, g.Len())
	renamed := make([]*Node, 0, g.Len())

	for _, key := range g.Keys() {
		attrs, ok := g.Attrs(key)
		if !ok {
			return nil, &GraphError{Op: "rename", Node: key, Cause: ErrNodeNotFound}
		}
		record, ok := attrs.Record()
		if !ok {
			return nil, &GraphError{Op: "rename", Node: key, Cause: ErrNoRecord}
		}
		if ignoreInputs && record.Type == TypeInput {
			continue
		}
		mapping[key] = key + suffix
		renamed = append(renamed, record)
	}

	if err := g.Relabel(mapping); err != nil {
		return nil, err
	}

	// Records only change once the relabel is committed, keeping names and
	// keys consistent on failure.
	for _, record := range renamed {
		record.Name += suffix
	}
	return g, nil
}
