package kox

// Env is one lexical scope: a name-to-value table plus a shared pointer to
// the enclosing scope. Child scopes reference their parent rather than copy
// it, so mutations through any scope in the chain stay visible to closures
// holding older links.
type Env struct {
	parent *Env
	values map[string]Value
}

func newEnv(parent *Env) *Env {
	return &Env{parent: parent, values: make(map[string]Value)}
}

// NewEnv returns a fresh scope rooted at parent, which may be nil.
func NewEnv(parent *Env) *Env {
	return newEnv(parent)
}

// Get walks the scope chain from innermost outward.
func (e *Env) Get(name string) (Value, bool) {
	if val, ok := e.values[name]; ok {
		return val, true
	}
	if e.parent != nil {
		return e.parent.Get(name)
	}
	return Value{}, false
}

// Define inserts into the current scope, shadowing any outer binding.
func (e *Env) Define(name string, val Value) {
	e.values[name] = val
}

// Assign mutates the nearest enclosing scope that already defines name and
// reports whether one was found. It never creates a binding.
func (e *Env) Assign(name string, val Value) bool {
	if _, ok := e.values[name]; ok {
		e.values[name] = val
		return true
	}
	if e.parent != nil {
		return e.parent.Assign(name, val)
	}
	return false
}

// Child returns a scope enclosed by e.
func (e *Env) Child() *Env {
	return newEnv(e)
}

// Local returns a copy of the bindings in this scope only, without the
// chain. Used by the REPL variables panel.
func (e *Env) Local() map[string]Value {
	out := make(map[string]Value, len(e.values))
	for k, v := range e.values {
		out[k] = v
	}
	return out
}
