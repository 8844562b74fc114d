package netlist

import (
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenameAllNodes(t *testing.T) {
	g := buildGraph(t,
		&Node{Name: "in_a", Type: TypeInput},
		&Node{Name: "u1", Type: "AND2"},
		&Node{Name: "u2", Type: "DFF"},
	)
	require.NoError(t, g.AddEdge("in_a", "u1"))
	require.NoError(t, g.AddEdge("u1", "u2"))

	out, err := RenameNodes(g, "_c1", false)
	require.NoError(t, err)

	assert.Equal(t, []string{"in_a_c1", "u1_c1", "u2_c1"}, out.Keys())

	// Record names follow the keys in lockstep
	for _, key := range out.Keys() {
		attrs, ok := out.Attrs(key)
		require.True(t, ok)
		record, ok := attrs.Record()
		require.True(t, ok)
		assert.Equal(t, key, record.Name)
	}

	// Edges survive the relabel
	assert.Equal(t, []string{"u1_c1"}, g.Successors("in_a_c1"))
}

func TestRenameIgnoresInputs(t *testing.T) {
	g := buildGraph(t,
		&Node{Name: "in_a", Type: TypeInput},
		&Node{Name: "in_b", Type: TypeInput},
		&Node{Name: "u1", Type: "AND2"},
	)

	_, err := RenameNodes(g, "_copy", true)
	require.NoError(t, err)

	assert.Equal(t, []string{"in_a", "in_b", "u1_copy"}, g.Keys())

	attrs, _ := g.Attrs("in_a")
	record, _ := attrs.Record()
	assert.Equal(t, "in_a", record.Name, "input record name must stay untouched")

	attrs, _ = g.Attrs("u1_copy")
	record, _ = attrs.Record()
	assert.Equal(t, "u1_copy", record.Name)
}

func TestRenameEmptySuffixIsIdentity(t *testing.T) {
	g := buildGraph(t,
		&Node{Name: "in_a", Type: TypeInput},
		&Node{Name: "u1", Type: "AND2"},
	)

	_, err := RenameNodes(g, "", false)
	require.NoError(t, err)

	assert.Equal(t, []string{"in_a", "u1"}, g.Keys())
}

func TestRenameFailsOnBareNode(t *testing.T) {
	g := buildGraph(t, &Node{Name: "u1", Type: "AND2"})
	require.NoError(t, g.AddNode("stray", nil))

	_, err := RenameNodes(g, "_x", false)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoRecord)
	assert.Contains(t, err.Error(), "stray")

	// Failed rename must not leave half-renamed records behind
	attrs, _ := g.Attrs("u1")
	record, _ := attrs.Record()
	assert.Equal(t, "u1", record.Name)
}

// propertyGraph builds a graph whose keys are name_<index>, so generated
// names never collide with each other or with a suffixed sibling (suffixes
// generated below never contain an underscore).
func propertyGraph(names []string, inputEvery2 bool) (*DiGraph, []string, error) {
	g := NewDiGraph()
	keys := make([]string, len(names))
	for i, name := range names {
		key := fmt.Sprintf("%s_%d", name, i)
		keys[i] = key
		nodeType := "AND2"
		if inputEvery2 && i%2 == 0 {
			nodeType = TypeInput
		}
		if err := g.AddNode(key, Attrs{AttrNode: &Node{Name: key, Type: nodeType}}); err != nil {
			return nil, nil, err
		}
	}
	return g, keys, nil
}

// TestRenameProperties verifies the rename mapping rule over generated
// graphs: every non-ignored key maps to exactly old key + suffix, and the
// node count never changes.
func TestRenameProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)

	genNames := gen.SliceOfN(6, gen.Identifier())

	properties.Property("suffix mapping is key -> key + suffix", prop.ForAll(
		func(names []string, suffix string) bool {
			g, keys, err := propertyGraph(names, false)
			if err != nil {
				return false
			}

			if _, err := RenameNodes(g, suffix, false); err != nil {
				return false
			}

			got := g.Keys()
			if len(got) != len(keys) {
				return false
			}
			for i, key := range keys {
				if got[i] != key+suffix {
					return false
				}
			}
			return true
		},
		genNames,
		gen.Identifier(),
	))

	properties.Property("ignored inputs keep identity", prop.ForAll(
		func(names []string, suffix string) bool {
			g, keys, err := propertyGraph(names, true)
			if err != nil {
				return false
			}

			if _, err := RenameNodes(g, suffix, true); err != nil {
				return false
			}

			got := g.Keys()
			for i, key := range keys {
				want := key + suffix
				if i%2 == 0 {
					want = key
				}
				if got[i] != want {
					return false
				}
			}
			return true
		},
		genNames,
		gen.Identifier(),
	))

	properties.TestingRun(t)
}
