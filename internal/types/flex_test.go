package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexListUnmarshal(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{`["a", " b ", ""]`, []string{"a", "b"}},
		{`"a, b,,c"`, []string{"a", "b", "c"}},
		{`"solo"`, []string{"solo"}},
		{`null`, nil},
	}

	for _, tt := range tests {
		var payload struct {
			Tags FlexList[string] `json:"tags"`
		}
		require.NoError(t, json.Unmarshal([]byte(`{"tags":`+tt.in+`}`), &payload), tt.in)
		if tt.want == nil {
			assert.Nil(t, payload.Tags, tt.in)
			continue
		}
		assert.Equal(t, tt.want, payload.Tags.Slice(), tt.in)
	}
}

func TestFlexListRejectsNumbers(t *testing.T) {
	var f FlexList[string]
	assert.Error(t, json.Unmarshal([]byte(`42`), &f))
}

func TestFlexListSliceNeverNil(t *testing.T) {
	var f FlexList[string]
	assert.Equal(t, []string{}, f.Slice())
}

func TestFlexUint64(t *testing.T) {
	tests := []struct {
		in      string
		want    uint64
		wantErr bool
	}{
		{`7`, 7, false},
		{`"12"`, 12, false},
		{`""`, 0, false},
		{`null`, 0, false},
		{`"abc"`, 0, true},
		{`true`, 0, true},
		{`-1`, 0, true},
	}

	for _, tt := range tests {
		var f FlexUint64
		err := json.Unmarshal([]byte(tt.in), &f)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, f.Uint64(), tt.in)
	}
}

func TestCustomError(t *testing.T) {
	err := NewError(403, "nope", "session.missing")
	assert.Equal(t, "403: nope [type: session.missing]", err.Error())
}
