// flex_list.go
//
// Fluent HTTP assertions for exercising in-process web applications in tests
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of httpassert.
// httpassert is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// httpassert is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with httpassert.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package types

import (
	"encoding/json"
	"strings"
)

// FlexList is a list of tags that can be unmarshaled from a JSON array, a single
// JSON string, or a comma separated string.
type FlexList[T ~string] []T

// UnmarshalJSON implements the json.Unmarshaler interface.
func (f *FlexList[T]) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*f = nil
		return nil
	}

	if data[0] == '[' {
		var items []T
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		*f = compact(items)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*f = Split[T](s)
	return nil
}

// Split builds a FlexList from a comma separated string, dropping blanks.
func Split[T ~string](s string) FlexList[T] {
	parts := strings.Split(s, ",")
	items := make([]T, 0, len(parts))
	for _, p := range parts {
		items = append(items, T(p))
	}
	return compact(items)
}

// Slice converts FlexList[T] back to []T, never nil.
func (f FlexList[T]) Slice() []T {
	if f == nil {
		return []T{}
	}
	return []T(f)
}

func compact[T ~string](items []T) FlexList[T] {
	out := make(FlexList[T], 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(string(item)); trimmed != "" {
			out = append(out, T(trimmed))
		}
	}
	return out
}
