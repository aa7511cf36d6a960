// Copyright 2024 The Lingo Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package value

// Scope is the lexical Context described in spec.md §3 and §6: an ordered
// chain of frames mapping identifiers to values. Reads walk the chain from
// innermost to outermost and yield Nothing on a miss; writes always go to
// the innermost frame.
//
// A *Scope is never copied after creation; a Function closes over the
// *Scope pointer in effect at its definition, so later writes to an outer
// frame are observable through the closure (lexical-scope semantics), and
// Go's ordinary garbage collector reclaims the chain once both the
// evaluation and every capturing Function release their references —
// no manual reference counting is needed, unlike the arena/refcount
// schemes a non-garbage-collected target language would require.
type Scope struct {
	vars   map[string]Value
	order  []string
	parent *Scope
}

// NewScope creates a root scope with no parent.
func NewScope() *Scope {
	return &Scope{vars: make(map[string]Value)}
}

// Child creates a new innermost frame sharing s's chain.
func (s *Scope) Child() *Scope {
	return &Scope{vars: make(map[string]Value), parent: s}
}

// WithNamespace creates a child frame pre-populated with ns's owned
// entries, used by the subcontexting ('.') operator: the right operand is
// evaluated in the scope returned here, so ns's names shadow (without
// replacing) identically-named bindings further out in s's chain.
func (s *Scope) WithNamespace(ns *Namespace) *Scope {
	child := s.Child()
	for _, k := range ns.keys {
		child.Set(k, ns.vals[k])
	}
	return child
}

// Get resolves name by walking the chain innermost to outermost, returning
// Nothing if it is unbound anywhere. Identifiers that are not legal (see
// IsIdent) never resolve, even if a caller's map happens to contain such a
// key, preserving the "identifier whitelist" invariant.
func (s *Scope) Get(name string) Value {
	if !IsIdent(name) {
		return Nothing
	}
	for sc := s; sc != nil; sc = sc.parent {
		if v, ok := sc.vars[name]; ok {
			return v
		}
	}
	return Nothing
}

// Set binds name to v in s's own (innermost) frame, recording first-seen
// order for OwnNamespace.
func (s *Scope) Set(name string, v Value) {
	if !IsIdent(name) {
		return
	}
	if _, ok := s.vars[name]; !ok {
		s.order = append(s.order, name)
	}
	s.vars[name] = v
}

// OwnNamespace collects the names bound directly in s's own frame (not its
// parents) into a Namespace, in the order they were first bound. This
// realizes the '{ expr }' namespace literal: names written into the parent
// chain by a nested subcontext are not captured, only s's own bindings
// are.
func (s *Scope) OwnNamespace() *Namespace {
	vals := make(map[string]Value, len(s.order))
	for _, k := range s.order {
		vals[k] = s.vars[k]
	}
	return NewNamespace(s.order, vals)
}

// Global installs globals into s's own frame. It is used once, by the
// embedding surface's NewContext, to seed the root scope with built-ins
// and host-supplied bindings before any evaluation begins.
func (s *Scope) Global(name string, v Value) {
	s.Set(name, v)
}
