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

package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"lingolang.dev/go/internal/core/value"
)

// loadGlobals reads a YAML document from path and converts its top-level
// mapping into a globals map suitable for lingo.NewContext. YAML null
// becomes Nothing; booleans, numbers, strings, sequences and string-keyed
// mappings are converted to the closest matching value.Value kind; any
// other decoded value (for example a mapping with non-string keys) is
// rejected, since the language has no corresponding kind to receive it.
func loadGlobals(path string) (map[string]value.Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc map[string]interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	globals := make(map[string]value.Value, len(doc))
	for k, v := range doc {
		cv, err := convertYAML(v)
		if err != nil {
			return nil, fmt.Errorf("global %q: %w", k, err)
		}
		globals[k] = cv
	}
	return globals, nil
}

func convertYAML(v interface{}) (value.Value, error) {
	switch t := v.(type) {
	case nil:
		return value.Nothing, nil
	case bool:
		return value.Boolean(t), nil
	case int:
		return value.Number(t), nil
	case int64:
		return value.Number(t), nil
	case float64:
		return value.Number(t), nil
	case string:
		return value.String(t), nil
	case []interface{}:
		out := make(value.List, len(t))
		for i, e := range t {
			cv, err := convertYAML(e)
			if err != nil {
				return nil, err
			}
			out[i] = cv
		}
		return out, nil
	case map[string]interface{}:
		keys := make([]string, 0, len(t))
		vals := make(map[string]value.Value, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		for _, k := range keys {
			cv, err := convertYAML(t[k])
			if err != nil {
				return nil, err
			}
			vals[k] = cv
		}
		return value.NewNamespace(keys, vals), nil
	default:
		return nil, fmt.Errorf("unsupported YAML value %#v", v)
	}
}
