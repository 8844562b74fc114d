package netlist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSnapshot = `module: toy_core
nodes:
  - name: in_a
    type: input
  - name: u1
    type: AND2
    inputs: [in_a, in_b]
    outputs: [n1]
  - name: r1
    type: DFF
    parent: u_state
    stage: ex
edges:
  - {from: in_a, to: u1}
  - {from: u1, to: r1}
ports:
  - name: in_a
    direction: input
    pins: [in_a]
    length: 1
  - name: q_o
    direction: output
    pins: [q_o]
    length: 1
`

func writeSnapshot(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graph.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSnapshotGraph(t *testing.T) {
	snap, err := LoadSnapshot(writeSnapshot(t, sampleSnapshot))
	require.NoError(t, err)
	assert.Equal(t, "toy_core", snap.Module)

	g, err := snap.Graph()
	require.NoError(t, err)
	assert.Equal(t, []string{"in_a", "u1", "r1"}, g.Keys())
	assert.Equal(t, []string{"u1"}, g.Successors("in_a"))

	attrs, ok := g.Attrs("r1")
	require.True(t, ok)
	record, ok := attrs.Record()
	require.True(t, ok)
	assert.Equal(t, "DFF", record.Type)
	assert.Equal(t, "u_state", record.ParentName)
	assert.Equal(t, "ex", record.Stage)
}

func TestLoadSnapshotPorts(t *testing.T) {
	snap, err := LoadSnapshot(writeSnapshot(t, sampleSnapshot))
	require.NoError(t, err)

	ports, err := snap.PortList()
	require.NoError(t, err)
	assert.Equal(t, []string{"in_a", "q_o"}, ports.Names())
	assert.Equal(t, Input, ports.Get("in_a").Direction)
	assert.Equal(t, Output, ports.Get("q_o").Direction)
}

func TestSnapshotRejectsBadDirection(t *testing.T) {
	snap, err := LoadSnapshot(writeSnapshot(t, `
nodes:
  - {name: u1, type: AND2}
ports:
  - {name: x, direction: inout, length: 1}
`))
	require.NoError(t, err)

	_, err = snap.PortList()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadDirection)
}

func TestSnapshotRejectsNamelessNode(t *testing.T) {
	snap := &Snapshot{Nodes: []Node{{Type: "AND2"}}}
	_, err := snap.Graph()
	require.Error(t, err)
}

func TestSnapshotRoundTrip(t *testing.T) {
	snap, err := LoadSnapshot(writeSnapshot(t, sampleSnapshot))
	require.NoError(t, err)
	g, err := snap.Graph()
	require.NoError(t, err)
	ports, err := snap.PortList()
	require.NoError(t, err)

	_, err = RenameNodes(g, "_c0", true)
	require.NoError(t, err)

	out, err := TakeSnapshot(snap.Module, g, ports)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "renamed.yaml")
	require.NoError(t, out.Save(path))

	reloaded, err := LoadSnapshot(path)
	require.NoError(t, err)
	g2, err := reloaded.Graph()
	require.NoError(t, err)

	assert.Equal(t, []string{"in_a", "u1_c0", "r1_c0"}, g2.Keys())
	assert.Equal(t, []string{"r1_c0"}, g2.Successors("u1_c0"))
}

func TestTakeSnapshotFailsOnBareNode(t *testing.T) {
	g := NewDiGraph()
	require.NoError(t, g.AddNode("stray", nil))

	_, err := TakeSnapshot("m", g, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoRecord)
}
