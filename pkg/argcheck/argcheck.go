// Package argcheck validates filesystem paths handed to the command-line
// tools. Failures are plain errors carrying the offending path, so cobra
// surfaces them as argument errors rather than internal crashes.
package argcheck

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// FileExists checks that path names an existing regular file and returns it.
func FileExists(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", fmt.Errorf("file %s does not exist", path)
	}
	return path, nil
}

// Creatable checks that the parent directory of path exists, so the path
// itself can be created by a later write. The path is returned as given.
func Creatable(path string) (string, error) {
	parent := filepath.Dir(path)
	info, err := os.Stat(parent)
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf("path %s does not exist", parent)
	}
	return path, nil
}

// ExistingFileArgs is a cobra positional-args validator requiring exactly n
// arguments, each an existing regular file.
func ExistingFileArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return err
		}
		for _, arg := range args {
			if _, err := FileExists(arg); err != nil {
				return err
			}
		}
		return nil
	}
}
