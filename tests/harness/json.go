// json.go
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

package harness

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

var errExpectedNotJSON = errors.New("expected value is not valid JSON")

// expectedJSON turns an expected value into JSON text. Strings, byte slices and
// json.RawMessage are taken as JSON text as written; anything else is marshalled.
func expectedJSON(expected any) (string, error) {
	var raw string
	switch v := expected.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	case json.RawMessage:
		raw = string(v)
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		raw = string(b)
	}
	if !gjson.Valid(raw) {
		return "", errExpectedNotJSON
	}
	return raw, nil
}

// canonicalJSON rewrites JSON text compactly while keeping object key order,
// number literals and value types exactly as they appear.
func canonicalJSON(raw string) string {
	var b strings.Builder
	writeCanonical(&b, gjson.Parse(raw))
	return b.String()
}

func writeCanonical(b *strings.Builder, v gjson.Result) {
	switch {
	case v.IsObject():
		b.WriteByte('{')
		first := true
		v.ForEach(func(key, value gjson.Result) bool {
			if !first {
				b.WriteByte(',')
			}
			first = false
			writeString(b, key.String())
			b.WriteByte(':')
			writeCanonical(b, value)
			return true
		})
		b.WriteByte('}')
	case v.IsArray():
		b.WriteByte('[')
		first := true
		v.ForEach(func(_, value gjson.Result) bool {
			if !first {
				b.WriteByte(',')
			}
			first = false
			writeCanonical(b, value)
			return true
		})
		b.WriteByte(']')
	case v.Type == gjson.String:
		writeString(b, v.String())
	default:
		b.WriteString(strings.TrimSpace(v.Raw))
	}
}

func writeString(b *strings.Builder, s string) {
	enc, _ := json.Marshal(s)
	b.Write(enc)
}

// prettyJSON indents canonical JSON so failure diffs are line oriented.
func prettyJSON(canonical string) string {
	return string(pretty.Pretty([]byte(canonical)))
}
