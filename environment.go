package karou

// Environment is one scope frame. Frames link outward through enclosing;
// the global frame has none.
type Environment struct {
	enclosing *Environment
	values    map[string]Value
}

func NewEnvironment(enclosing *Environment) *Environment {
	return &Environment{enclosing, make(map[string]Value)}
}

// Get walks the chain from this frame outward.
func (e *Environment) Get(key string) (Value, bool) {
	val, ok := e.values[key]
	if ok {
		return val, true
	}

	if e.enclosing != nil {
		return e.enclosing.Get(key)
	}

	return nil, false
}

// Define binds key in this frame, shadowing any outer binding.
func (e *Environment) Define(key string, value Value) {
	e.values[key] = value
}

