package version

import (
	"bytes"
	"path/filepath"
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubBuildInfo(t *testing.T, info *debug.BuildInfo, ok bool) {
	t.Helper()
	orig := readBuildInfo
	readBuildInfo = func() (*debug.BuildInfo, bool) { return info, ok }
	t.Cleanup(func() { readBuildInfo = orig })
}

func testBuildInfo() *debug.BuildInfo {
	return &debug.BuildInfo{
		Main: debug.Module{Path: "github.com/synthara-eda/netfault", Version: "(devel)"},
		Deps: []*debug.Module{
			{Path: "gopkg.in/yaml.v3", Version: "v3.0.1"},
			{Path: "github.com/spf13/cobra", Version: "v1.10.1"},
		},
	}
}

func TestDescribeOutsideRepository(t *testing.T) {
	// A fresh temp dir is not under version control
	tool := filepath.Join(t.TempDir(), "netfault")
	assert.Equal(t, NotFound, Describe(tool))
}

func TestDependencies(t *testing.T) {
	stubBuildInfo(t, testBuildInfo(), true)

	lines, err := Dependencies([]string{"gopkg.in/yaml.v3", "github.com/spf13/cobra"})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"gopkg.in/yaml.v3 v3.0.1",
		"github.com/spf13/cobra v1.10.1",
	}, lines)
}

func TestDependenciesIncludesMainModule(t *testing.T) {
	stubBuildInfo(t, testBuildInfo(), true)

	lines, err := Dependencies([]string{"github.com/synthara-eda/netfault"})
	require.NoError(t, err)
	assert.Equal(t, []string{"github.com/synthara-eda/netfault (devel)"}, lines)
}

func TestDependenciesUnknownModule(t *testing.T) {
	stubBuildInfo(t, testBuildInfo(), true)

	_, err := Dependencies([]string{"example.com/nope"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "example.com/nope")
}

func TestDependenciesNoBuildInfo(t *testing.T) {
	stubBuildInfo(t, nil, false)

	_, err := Dependencies([]string{"gopkg.in/yaml.v3"})
	require.Error(t, err)
}

func TestShow(t *testing.T) {
	stubBuildInfo(t, testBuildInfo(), true)

	tool := filepath.Join(t.TempDir(), "netfault")
	var buf bytes.Buffer
	require.NoError(t, Show(&buf, tool, []string{"gopkg.in/yaml.v3"}))

	out := buf.String()
	assert.Contains(t, out, tool+" Git version "+NotFound)
	assert.Contains(t, out, "gopkg.in/yaml.v3 v3.0.1")
}

func TestShowAndExitStatus(t *testing.T) {
	stubBuildInfo(t, testBuildInfo(), true)

	var code int
	origExit := osExit
	osExit = func(c int) { code = c }
	t.Cleanup(func() { osExit = origExit })

	ShowAndExit(filepath.Join(t.TempDir(), "netfault"), []string{"gopkg.in/yaml.v3"})
	assert.Equal(t, 0, code)
}
