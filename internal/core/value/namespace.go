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

import "sort"

// reserved hook names a Namespace may honor.
const (
	HookApply = "__apply__"
	HookStr   = "__str__"
)

// Namespace maps legal identifiers to values, preserving insertion order
// (observable through the enum built-in). Namespace lookup only ever
// considers entries the namespace itself owns — there is no parent chain
// on the value itself; subcontexting layers a namespace's entries onto the
// lexical Scope instead (see Scope.WithNamespace), which keeps the
// Invariant "Namespace lookup ... must only consider entries the
// namespace genuinely owns" trivially true by construction.
type Namespace struct {
	keys []string
	vals map[string]Value
}

func (*Namespace) Kind() Kind { return NamespaceKind }

// NewNamespace builds a Namespace from keys in the given (already
// deduplicated) insertion order and their values.
func NewNamespace(keys []string, vals map[string]Value) *Namespace {
	ns := &Namespace{keys: append([]string(nil), keys...), vals: make(map[string]Value, len(vals))}
	for _, k := range keys {
		ns.vals[k] = vals[k]
	}
	return ns
}

// NamespaceFromMap builds a Namespace from an ordinary Go map. Go maps
// carry no intrinsic order, so keys are sorted for deterministic Enum
// output. Namespaces built by evaluating a { } block do not go through
// it; they use the scope's true binding order via NewNamespace.
func NamespaceFromMap(m map[string]Value) *Namespace {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return NewNamespace(keys, m)
}

// Get returns the value owned by name, and whether name is owned at all.
func (ns *Namespace) Get(name string) (Value, bool) {
	v, ok := ns.vals[name]
	return v, ok
}

// Len returns the number of identifiers the namespace owns.
func (ns *Namespace) Len() int { return len(ns.keys) }

// Keys returns the namespace's owned identifiers in insertion order.
func (ns *Namespace) Keys() []string {
	return append([]string(nil), ns.keys...)
}

// Apply returns the namespace's __apply__ hook if it is a callable.
func (ns *Namespace) Apply() (*Function, bool) {
	v, ok := ns.Get(HookApply)
	if !ok {
		return nil, false
	}
	fn, ok := v.(*Function)
	return fn, ok
}

// Str returns the namespace's __str__ hook value, if owned.
func (ns *Namespace) Str() (string, bool) {
	v, ok := ns.Get(HookStr)
	if !ok {
		return "", false
	}
	s, ok := v.(String)
	return string(s), ok
}

// MergeNamespaces implements the NS+NS operator: a right-biased union of
// owned entries, preserving a's key order followed by any keys unique to
// b.
func MergeNamespaces(a, b *Namespace) *Namespace {
	keys := append([]string(nil), a.keys...)
	vals := make(map[string]Value, len(a.vals)+len(b.vals))
	for k, v := range a.vals {
		vals[k] = v
	}
	for _, k := range b.keys {
		if _, ok := vals[k]; !ok {
			keys = append(keys, k)
		}
		vals[k] = b.vals[k]
	}
	return &Namespace{keys: keys, vals: vals}
}

// EqualNamespace reports whether two namespaces own the same set of
// identifiers, each mapping to an Equal value.
func EqualNamespace(a, b *Namespace) bool {
	if a.Len() != b.Len() {
		return false
	}
	for k, av := range a.vals {
		bv, ok := b.vals[k]
		if !ok || !Equal(av, bv) {
			return false
		}
	}
	return true
}
