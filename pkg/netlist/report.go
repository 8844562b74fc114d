package netlist

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"golang.org/x/term"

	"github.com/synthara-eda/netfault/pkg/celllib"
	"github.com/synthara-eda/netfault/pkg/logging"
	"github.com/synthara-eda/netfault/pkg/metrics"
)

// DefaultRuleWidth is the horizontal-rule width used when stderr is not a
// terminal, keeping report output deterministic under test and in pipelines.
const DefaultRuleWidth = 80

// Reporter emits textual summaries of a netlist graph. Reports are purely
// observational and never mutate the graph.
type Reporter struct {
	log   logging.Logger
	width int
}

// NewReporter creates a reporter writing through the given logger. A
// non-positive width sizes the rule from the attached terminal, falling back
// to DefaultRuleWidth.
func NewReporter(log logging.Logger, width int) *Reporter {
	if width <= 0 {
		width = terminalWidth()
	}
	return &Reporter{log: log, width: width}
}

func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stderr.Fd())); err == nil && w > 0 {
		return w
	}
	return DefaultRuleWidth
}

// Rule returns the horizontal-rule line used to bracket reports
func (r *Reporter) Rule() string {
	return strings.Repeat("-", r.width)
}

// GateStats counts graph nodes by gate type. Nodes that carry no circuit
// record do not contribute.
func (r *Reporter) GateStats(g Graph) (map[string]int, error) {
	counts := make(map[string]int)
	for _, key := range g.Keys() {
		attrs, ok := g.Attrs(key)
		if !ok {
			return nil, &GraphError{Op: "stats", Node: key, Cause: ErrNodeNotFound}
		}
		record, ok := attrs.Record()
		if !ok {
			continue
		}
		counts[record.Type]++
	}
	return counts, nil
}

// LogGateStats emits one "<type>: <count>" line per distinct gate type in
// ascending type order, closed by a rule line.
func (r *Reporter) LogGateStats(g Graph) error {
	counts, err := r.GateStats(g)
	if err != nil {
		return err
	}

	types := make([]string, 0, len(counts))
	for t := range counts {
		types = append(types, t)
	}
	sort.Strings(types)

	for _, t := range types {
		r.log.Info(fmt.Sprintf("%s: %d", t, counts[t]))
	}
	r.log.Info(r.Rule())
	return nil
}

// Registers returns the circuit records of all nodes whose gate type the
// cell library classifies as a register, in graph iteration order.
func (r *Reporter) Registers(g Graph, lib celllib.Classifier) ([]*Node, error) {
	var registers []*Node
	for _, key := range g.Keys() {
		attrs, ok := g.Attrs(key)
		if !ok {
			return nil, &GraphError{Op: "registers", Node: key, Cause: ErrNodeNotFound}
		}
		record, ok := attrs.Record()
		if !ok {
			continue
		}
		if lib.IsRegister(record.Type) {
			registers = append(registers, record)
		}
	}
	return registers, nil
}

// LogPorts emits the module's port partition as an "Inputs:" and an
// "Outputs:" line in declaration order, bracketed by rule lines.
func (r *Reporter) LogPorts(ports *PortList) {
	inLine := "Inputs:  "
	outLine := "Outputs: "
	for _, name := range ports.Names() {
		switch ports.Get(name).Direction {
		case Input:
			inLine += name + " "
		default:
			outLine += name + " "
		}
	}
	r.log.Info(r.Rule())
	r.log.Info(inLine)
	r.log.Info(outLine)
	r.log.Info(r.Rule())
}

// Observe publishes the graph's gate and register population to the metrics
// registry.
func (r *Reporter) Observe(g Graph, lib celllib.Classifier, reg *metrics.Registry) error {
	counts, err := r.GateStats(g)
	if err != nil {
		return err
	}
	registers, err := r.Registers(g, lib)
	if err != nil {
		return err
	}
	reg.SetGatePopulation(counts)
	reg.SetRegisterCount(len(registers))
	return nil
}
