package domain

import "strings"

// Environment is an immutable snapshot of process environment variables in
// "KEY=VALUE" form. Every external command invocation receives one explicitly;
// nothing reads the ambient process environment implicitly. Mutating
// operations return a new snapshot and leave the receiver untouched.
type Environment struct {
	vars []string
}

// NewEnvironment builds a snapshot from "KEY=VALUE" entries. Later entries for
// the same key win, matching os/exec semantics.
func NewEnvironment(vars []string) Environment {
	out := make([]string, len(vars))
	copy(out, vars)
	return Environment{vars: out}
}

// Slice returns the variables as a fresh "KEY=VALUE" slice suitable for
// exec.Cmd.Env.
func (e Environment) Slice() []string {
	out := make([]string, len(e.vars))
	copy(out, e.vars)
	return out
}

// Lookup returns the value of key and whether it is set. The last entry for a
// duplicated key wins.
func (e Environment) Lookup(key string) (string, bool) {
	value, found := "", false
	for _, kv := range e.vars {
		if k, v, ok := strings.Cut(kv, "="); ok && k == key {
			value, found = v, true
		}
	}
	return value, found
}

// With returns a snapshot where key is set to value, replacing any existing
// entry for that key.
func (e Environment) With(key, value string) Environment {
	out := make([]string, 0, len(e.vars)+1)
	for _, kv := range e.vars {
		if k, _, ok := strings.Cut(kv, "="); ok && k == key {
			continue
		}
		out = append(out, kv)
	}
	out = append(out, key+"="+value)
	return Environment{vars: out}
}

// Prepend returns a snapshot where the list-valued variable key starts with
// entries, in the given order, followed by the previous value. The new entries
// take lookup priority over anything already present.
func (e Environment) Prepend(key string, sep string, entries ...string) Environment {
	if len(entries) == 0 {
		return e
	}
	value := strings.Join(entries, sep)
	if cur, ok := e.Lookup(key); ok && cur != "" {
		value += sep + cur
	}
	return e.With(key, value)
}
