// This file is part of gel - https://github.com/tigrux/gel-sub000
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

import "github.com/pkg/errors"

// Array is a shared-mutable ordered sequence of Values. It is always held
// behind a pointer so that aliases created by copying a Value see the same
// underlying storage.
type Array struct {
	items []Value
}

// NewArrayFrom returns an Array backed by the given slice of items. The
// slice is taken over by the Array, not copied.
func NewArrayFrom(items []Value) *Array {
	return &Array{items: items}
}

// EmptyArray returns a new, empty Array.
func EmptyArray() *Array { return &Array{} }

// Len returns the number of elements.
func (a *Array) Len() int { return len(a.items) }

// Items returns the backing slice. Callers must not retain it across a
// mutation of a.
func (a *Array) Items() []Value { return a.items }

// resolveIndex converts a possibly-negative index (counted from the end,
// per spec section 4.5) into an absolute index, returning an
// index-out-of-bounds error if it is outside [0, len).
func (a *Array) resolveIndex(i int64) (int, error) {
	n := int64(len(a.items))
	idx := i
	if idx < 0 {
		idx += n
	}
	if idx < 0 || idx >= n {
		return 0, errors.Errorf("index %d out of bounds (size %d)", i, n)
	}
	return int(idx), nil
}

// Get returns the element at index i (negative counts from the end).
func (a *Array) Get(i int64) (Value, error) {
	idx, err := a.resolveIndex(i)
	if err != nil {
		return Value{}, err
	}
	return a.items[idx], nil
}

// Set replaces the element at index i (negative counts from the end).
func (a *Array) Set(i int64, v Value) error {
	idx, err := a.resolveIndex(i)
	if err != nil {
		return err
	}
	a.items[idx] = v
	return nil
}

// Append adds v to the end of the array in place.
func (a *Array) Append(v Value) {
	a.items = append(a.items, v)
}

// Remove deletes the element at index i (negative counts from the end) in
// place, preserving the order of the remaining elements.
func (a *Array) Remove(i int64) error {
	idx, err := a.resolveIndex(i)
	if err != nil {
		return err
	}
	a.items = append(a.items[:idx], a.items[idx+1:]...)
	return nil
}

// Equal reports element-wise recursive equality between two arrays.
func (a *Array) Equal(other *Array) bool {
	if a == other {
		return true
	}
	if len(a.items) != len(other.items) {
		return false
	}
	for i := range a.items {
		if !a.items[i].Equal(other.items[i]) {
			return false
		}
	}
	return true
}

// Compare implements lexicographic, then-length ordering between two
// arrays, per spec section 4.2.
func (a *Array) Compare(other *Array) (int, error) {
	n := len(a.items)
	if len(other.items) < n {
		n = len(other.items)
	}
	for i := 0; i < n; i++ {
		c, err := a.items[i].Compare(other.items[i])
		if err != nil {
			return 0, err
		}
		if c != 0 {
			return c, nil
		}
	}
	switch {
	case len(a.items) < len(other.items):
		return -1, nil
	case len(a.items) > len(other.items):
		return 1, nil
	default:
		return 0, nil
	}
}

// Clone returns a shallow copy of the array: a new container with the same
// element Values (which, for container-typed elements, remain aliases of
// the originals — only the outer Array is duplicated).
func (a *Array) Clone() *Array {
	items := make([]Value, len(a.items))
	copy(items, a.items)
	return &Array{items: items}
}
