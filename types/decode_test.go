package types

import (
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeObject_NonObjectPayload(t *testing.T) {
	tests := []struct {
		name       string
		payload    string
		wantActual string
	}{
		{
			name:       "数组负载",
			payload:    `[1,2]`,
			wantActual: "array",
		},
		{
			name:       "字符串负载",
			payload:    `"not an object"`,
			wantActual: "string",
		},
		{
			name:       "数字负载",
			payload:    `42`,
			wantActual: "number",
		},
		{
			name:       "null负载",
			payload:    `null`,
			wantActual: "null",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var span ContentSpan
			err := sonic.Unmarshal([]byte(tt.payload), &span)
			require.Error(t, err)

			var de *DecodeError
			require.ErrorAs(t, err, &de)
			assert.Equal(t, "ContentSpan", de.Type)
			assert.Empty(t, de.Field)
			assert.Equal(t, "object", de.Expected)
			assert.Equal(t, tt.wantActual, de.Actual)
		})
	}
}

func TestDecodeObject_InvalidJSON(t *testing.T) {
	var link SupplementaryWebLink
	err := sonic.Unmarshal([]byte(`{"url":`), &link)
	require.Error(t, err)
}

func TestOptionalFields_NullTreatedAsAbsent(t *testing.T) {
	var link SupplementaryWebLink
	require.NoError(t, sonic.Unmarshal([]byte(`{"url":"https://test.com","title":null}`), &link))
	assert.Nil(t, link.Title)
}

func TestDecodeError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  *DecodeError
		want []string
	}{
		{
			name: "缺少必需字段",
			err:  &DecodeError{Type: "SupplementaryWebLink", Field: "url", Expected: "string", Actual: "missing"},
			want: []string{"SupplementaryWebLink", "url", "string"},
		},
		{
			name: "类型不匹配",
			err:  &DecodeError{Type: "ContentSpan", Field: "start", Expected: "number", Actual: "string"},
			want: []string{"ContentSpan", "start", "number", "string"},
		},
		{
			name: "负载不是对象",
			err:  &DecodeError{Type: "Reference", Expected: "object", Actual: "array"},
			want: []string{"Reference", "array"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, part := range tt.want {
				assert.Contains(t, msg, part)
			}
		})
	}
}

func TestJSONTypeName(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{name: "null", value: nil, want: "null"},
		{name: "布尔", value: true, want: "boolean"},
		{name: "数字", value: float64(1.5), want: "number"},
		{name: "字符串", value: "s", want: "string"},
		{name: "数组", value: []any{}, want: "array"},
		{name: "对象", value: map[string]any{}, want: "object"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, jsonTypeName(tt.value))
		})
	}
}
