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

import "strconv"

// Stringify implements spec.md §4.14's str table. It backs both the str
// built-in and the embedding surface's Stringify convenience function.
func Stringify(v Value) string {
	switch t := v.(type) {
	case nothingType:
		return ""
	case Boolean:
		if t {
			return "TRUE"
		}
		return "FALSE"
	case Number:
		return strconv.FormatFloat(float64(t), 'g', -1, 64)
	case String:
		return string(t)
	case List:
		return "[list]"
	case *Namespace:
		if s, ok := t.Str(); ok {
			return s
		}
		return "[namespace]"
	case *Function:
		return "[function]"
	case Tuple:
		var b []byte
		for _, e := range t {
			b = append(b, Stringify(e)...)
		}
		return string(b)
	default:
		return ""
	}
}
