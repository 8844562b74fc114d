// Package version reports the provenance of a running tool: the git revision
// of its checkout and the resolved versions of its module dependencies.
package version

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime/debug"
	"strings"
)

// NotFound is printed when the tool does not live in a git checkout
const NotFound = "not found (not in Git repository?)"

// osExit is swapped out in tests
var osExit = os.Exit

// readBuildInfo is swapped out in tests
var readBuildInfo = debug.ReadBuildInfo

// Describe returns a descriptive revision string for the checkout containing
// toolPath, as produced by git describe with dirty and broken markers.
// returns NotFound when git is unavailable or the directory is not versioned.
func Describe(toolPath string) string {
	dir, err := filepath.Abs(filepath.Dir(toolPath))
	if err != nil {
		return NotFound
	}
	out, err := exec.Command("git", "-C", dir, "describe", "--always", "--dirty", "--broken").Output()
	if err != nil {
		return NotFound
	}
	rev := strings.TrimSpace(string(out))
	if rev == "" {
		return NotFound
	}
	return rev
}

// Dependencies resolves the given module paths against the running binary's
// build information. An unknown module path is an error: asking for a module
// the binary was not built with is an operator mistake, not a condition to
// paper over.
func Dependencies(names []string) ([]string, error) {
	info, ok := readBuildInfo()
	if !ok {
		return nil, fmt.Errorf("build information unavailable")
	}

	versions := make(map[string]string, len(info.Deps)+1)
	versions[info.Main.Path] = info.Main.Version
	for _, dep := range info.Deps {
		versions[dep.Path] = dep.Version
	}

	out := make([]string, 0, len(names))
	for _, name := range names {
		v, ok := versions[name]
		if !ok {
			return nil, fmt.Errorf("module %s not present in build info", name)
		}
		out = append(out, name+" "+v)
	}
	return out, nil
}

// Show writes the tool's git revision and the versions of the named modules,
// one line each.
func Show(w io.Writer, toolPath string, names []string) error {
	fmt.Fprintf(w, "%s Git version %s\n", toolPath, Describe(toolPath))
	deps, err := Dependencies(names)
	if err != nil {
		return err
	}
	for _, line := range deps {
		fmt.Fprintln(w, line)
	}
	return nil
}

// ShowAndExit prints provenance to stderr and terminates the process. It is
// wired to early-startup version flags and never returns; stderr is used
// directly because logging is not configured yet at that point.
func ShowAndExit(toolPath string, names []string) {
	if err := Show(os.Stderr, toolPath, names); err != nil {
		fmt.Fprintln(os.Stderr, err)
		osExit(1)
	}
	osExit(0)
}
