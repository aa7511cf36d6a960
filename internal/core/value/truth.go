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

// Truthy implements spec.md §4.3's truthiness rule, used by bool, not,
// |, &, and ?.
func Truthy(v Value) bool {
	switch t := v.(type) {
	case nothingType:
		return false
	case Boolean:
		return bool(t)
	case Number:
		return float64(t) != 0
	case String:
		return len(t) > 0
	case List:
		return len(t) > 0
	case *Namespace:
		return t.Len() > 0
	case *Function:
		return true
	case Tuple:
		for _, e := range t {
			if Truthy(e) {
				return true
			}
		}
		return false
	default:
		return false
	}
}
