package netlist

import (
	"fmt"
)

// AttrNode is the graph attribute key under which a node's circuit record is
// stored. Every structural node in a netlist graph is expected to carry one.
const AttrNode = "node"

// TypeInput is the gate-type tag marking primary input nodes. Input nodes
// keep their identity across subgraph cloning so merged graphs still share
// their primary inputs.
const TypeInput = "input"

// Node is one gate or cell instance in a circuit.
type Node struct {
	Name       string   `yaml:"name"`
	ParentName string   `yaml:"parent,omitempty"`
	Type       string   `yaml:"type"`
	Inputs     []string `yaml:"inputs,omitempty"`
	Outputs    []string `yaml:"outputs,omitempty"`
	Stage      string   `yaml:"stage,omitempty"`
	Color      string   `yaml:"color,omitempty"`
}

// Attrs is the attribute bundle attached to a graph node.
type Attrs map[string]any

// Record returns the circuit record stored in the bundle, if any.
func (a Attrs) Record() (*Node, bool) {
	v, ok := a[AttrNode]
	if !ok {
		return nil, false
	}
	n, ok := v.(*Node)
	return n, ok
}

// PortDirection is the direction of a module port. It is a closed enum:
// anything other than "input" or "output" is rejected at construction.
type PortDirection int

const (
	Input PortDirection = iota
	Output
)

// String returns the wire-format name of the direction
func (d PortDirection) String() string {
	switch d {
	case Input:
		return "input"
	case Output:
		return "output"
	default:
		return "unknown"
	}
}

// ParsePortDirection converts a direction tag to a PortDirection
func ParsePortDirection(s string) (PortDirection, error) {
	switch s {
	case "input":
		return Input, nil
	case "output":
		return Output, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadDirection, s)
	}
}

// Port is one input or output port of a circuit module.
type Port struct {
	Name      string
	Pins      []string
	Direction PortDirection
	Length    int
}

// NewPort builds a validated port. Length is the bit width and must not be
// negative.
func NewPort(name string, pins []string, direction PortDirection, length int) (*Port, error) {
	if name == "" {
		return nil, fmt.Errorf("port name must not be empty")
	}
	if direction != Input && direction != Output {
		return nil, fmt.Errorf("%w: %d", ErrBadDirection, direction)
	}
	if length < 0 {
		return nil, fmt.Errorf("port %s: negative width %d", name, length)
	}
	return &Port{Name: name, Pins: pins, Direction: direction, Length: length}, nil
}

// PortList holds a module's ports in declaration order.
type PortList struct {
	names []string
	ports map[string]*Port
}

// NewPortList creates an empty port list
func NewPortList() *PortList {
	return &PortList{ports: make(map[string]*Port)}
}

// Add appends a port, rejecting duplicate names
func (pl *PortList) Add(p *Port) error {
	if _, exists := pl.ports[p.Name]; exists {
		return fmt.Errorf("port %s: %w", p.Name, ErrDuplicateKey)
	}
	pl.names = append(pl.names, p.Name)
	pl.ports[p.Name] = p
	return nil
}

// Names returns port names in declaration order
func (pl *PortList) Names() []string {
	out := make([]string, len(pl.names))
	copy(out, pl.names)
	return out
}

// Get returns the named port, or nil
func (pl *PortList) Get(name string) *Port {
	return pl.ports[name]
}

// Len returns the number of ports
func (pl *PortList) Len() int {
	return len(pl.names)
}
