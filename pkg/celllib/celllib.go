// Package celllib loads and queries the standard-cell classification table
// used to tell stateful cells apart from combinational logic. The table is
// technology specific and shipped as data, not code, so different cell
// libraries can be swapped without rebuilding the tools.
package celllib

import (
	"fmt"
	"os"
	"regexp"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Cell classes
const (
	ClassRegister      = "register"
	ClassCombinational = "combinational"
	ClassInput         = "input"
	ClassOutput        = "output"
)

var (
	// validate is a singleton validator instance
	validate *validator.Validate

	cellNamePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]*$`)
)

func init() {
	validate = validator.New()
	validate.RegisterValidation("cellname", func(fl validator.FieldLevel) bool {
		return cellNamePattern.MatchString(fl.Field().String())
	})
}

// Classifier answers membership queries against a cell classification table.
// The reporter depends on this interface only, never on a concrete library.
type Classifier interface {
	// IsRegister reports whether the gate type names a stateful cell
	IsRegister(cellType string) bool
}

// Cell is one entry of a cell-library table
type Cell struct {
	Name  string `yaml:"name" validate:"required,cellname"`
	Class string `yaml:"class" validate:"required,oneof=register combinational input output"`
}

// Library is a loaded cell classification table
type Library struct {
	Name  string `yaml:"library"`
	Cells []Cell `yaml:"cells" validate:"required,min=1,dive"`

	registers map[string]struct{}
}

// Load reads and validates a cell library file
func Load(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read cell library: %w", err)
	}
	lib, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("cell library %s: %w", path, err)
	}
	return lib, nil
}

// Parse decodes and validates a YAML cell library document
func Parse(data []byte) (*Library, error) {
	var lib Library
	if err := yaml.Unmarshal(data, &lib); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if err := validate.Struct(&lib); err != nil {
		return nil, formatValidationError(err)
	}

	lib.registers = make(map[string]struct{})
	seen := make(map[string]struct{}, len(lib.Cells))
	for _, c := range lib.Cells {
		if _, dup := seen[c.Name]; dup {
			return nil, fmt.Errorf("duplicate cell %s", c.Name)
		}
		seen[c.Name] = struct{}{}
		if c.Class == ClassRegister {
			lib.registers[c.Name] = struct{}{}
		}
	}
	return &lib, nil
}

// IsRegister reports whether the gate type names a stateful cell
func (l *Library) IsRegister(cellType string) bool {
	_, ok := l.registers[cellType]
	return ok
}

// Registers returns the register cell-type names, unordered
func (l *Library) Registers() []string {
	out := make([]string, 0, len(l.registers))
	for name := range l.registers {
		out = append(out, name)
	}
	return out
}

func formatValidationError(err error) error {
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return err
	}
	first := errs[0]
	switch first.Tag() {
	case "required":
		return fmt.Errorf("%s is required", first.Field())
	case "cellname":
		return fmt.Errorf("%s: %q is not a valid cell name", first.Field(), first.Value())
	case "oneof":
		return fmt.Errorf("%s: %q is not a recognized cell class", first.Field(), first.Value())
	case "min":
		return fmt.Errorf("%s: library has no cells", first.Field())
	default:
		return fmt.Errorf("%s failed %s validation", first.Field(), first.Tag())
	}
}
