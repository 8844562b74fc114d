package netlist

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Snapshot is the YAML document the framework uses to pass parsed netlist
// graphs between tools. It is an interchange format for graphs this
// framework already built; netlist source formats are parsed elsewhere.
type Snapshot struct {
	Module string         `yaml:"module,omitempty"`
	Nodes  []Node         `yaml:"nodes"`
	Edges  []SnapshotEdge `yaml:"edges,omitempty"`
	Ports  []SnapshotPort `yaml:"ports,omitempty"`
}

// SnapshotEdge is one directed wire between two node keys
type SnapshotEdge struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// SnapshotPort is the serialized form of a module port
type SnapshotPort struct {
	Name      string   `yaml:"name"`
	Pins      []string `yaml:"pins,omitempty"`
	Direction string   `yaml:"direction"`
	Length    int      `yaml:"length"`
}

// LoadSnapshot reads a graph snapshot file
func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	var s Snapshot
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("snapshot %s: %w", path, err)
	}
	return &s, nil
}

// Graph materializes the snapshot as a DiGraph. Node keys are the record
// names; each node's record is attached under AttrNode.
func (s *Snapshot) Graph() (*DiGraph, error) {
	g := NewDiGraph()
	for i := range s.Nodes {
		record := &s.Nodes[i]
		if record.Name == "" {
			return nil, fmt.Errorf("snapshot node %d has no name", i)
		}
		if err := g.AddNode(record.Name, Attrs{AttrNode: record}); err != nil {
			return nil, err
		}
	}
	for _, e := range s.Edges {
		if err := g.AddEdge(e.From, e.To); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// PortList materializes the snapshot's port declarations in order
func (s *Snapshot) PortList() (*PortList, error) {
	pl := NewPortList()
	for _, sp := range s.Ports {
		dir, err := ParsePortDirection(sp.Direction)
		if err != nil {
			return nil, fmt.Errorf("port %s: %w", sp.Name, err)
		}
		p, err := NewPort(sp.Name, sp.Pins, dir, sp.Length)
		if err != nil {
			return nil, err
		}
		if err := pl.Add(p); err != nil {
			return nil, err
		}
	}
	return pl, nil
}

// TakeSnapshot serializes a graph back into snapshot form, preserving node
// iteration order. Ports may be nil.
func TakeSnapshot(moduleName string, g *DiGraph, ports *PortList) (*Snapshot, error) {
	s := &Snapshot{Module: moduleName}
	for _, key := range g.Keys() {
		attrs, _ := g.Attrs(key)
		record, ok := attrs.Record()
		if !ok {
			return nil, &GraphError{Op: "snapshot", Node: key, Cause: ErrNoRecord}
		}
		s.Nodes = append(s.Nodes, *record)
		for _, succ := range g.Successors(key) {
			s.Edges = append(s.Edges, SnapshotEdge{From: key, To: succ})
		}
	}
	if ports != nil {
		for _, name := range ports.Names() {
			p := ports.Get(name)
			s.Ports = append(s.Ports, SnapshotPort{
				Name:      p.Name,
				Pins:      p.Pins,
				Direction: p.Direction.String(),
				Length:    p.Length,
			})
		}
	}
	return s, nil
}

// Save writes the snapshot to a file
func (s *Snapshot) Save(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}
