package logging

// Common field constructors
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

func Error(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

func Any(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Field helpers for names that recur across the netlist tooling
func Component(name string) Field {
	return String("component", name)
}

func Cell(name string) Field {
	return String("cell", name)
}

func GateType(t string) Field {
	return String("gate_type", t)
}

func Module(name string) Field {
	return String("module", name)
}

func Suffix(s string) Field {
	return String("suffix", s)
}

func Count(n int) Field {
	return Int("count", n)
}

func Path(p string) Field {
	return String("path", p)
}

func RunID(id string) Field {
	return String("run_id", id)
}
