package types

import (
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentSpan_LenAndIsEmpty(t *testing.T) {
	tests := []struct {
		name      string
		start     int
		end       int
		wantLen   int
		wantEmpty bool
	}{
		{
			name:      "正常范围",
			start:     10,
			end:       20,
			wantLen:   10,
			wantEmpty: false,
		},
		{
			name:      "空范围",
			start:     5,
			end:       5,
			wantLen:   0,
			wantEmpty: true,
		},
		{
			name:      "起点大于终点（宽松行为，长度为负）",
			start:     8,
			end:       3,
			wantLen:   -5,
			wantEmpty: true,
		},
		{
			name:      "从零开始",
			start:     0,
			end:       1,
			wantLen:   1,
			wantEmpty: false,
		},
		{
			name:      "负数区间",
			start:     -4,
			end:       -1,
			wantLen:   3,
			wantEmpty: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			span := NewContentSpan(tt.start, tt.end)
			assert.Equal(t, tt.wantLen, span.Len())
			assert.Equal(t, tt.wantEmpty, span.IsEmpty())
		})
	}
}

func TestContentSpan_RoundTrip(t *testing.T) {
	span := NewContentSpan(10, 20)

	data, err := sonic.Marshal(span)
	require.NoError(t, err)
	assert.JSONEq(t, `{"start":10,"end":20}`, string(data))

	var decoded ContentSpan
	require.NoError(t, sonic.Unmarshal(data, &decoded))
	assert.Equal(t, span, decoded)
}

func TestContentSpan_MissingField(t *testing.T) {
	tests := []struct {
		name      string
		payload   string
		wantField string
	}{
		{
			name:      "缺少start",
			payload:   `{"end":20}`,
			wantField: "start",
		},
		{
			name:      "缺少end",
			payload:   `{"start":10}`,
			wantField: "end",
		},
		{
			name:      "空对象",
			payload:   `{}`,
			wantField: "start",
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
			assert.Equal(t, tt.wantField, de.Field)
			assert.Equal(t, "number", de.Expected)
			assert.Equal(t, "missing", de.Actual)
		})
	}
}

func TestContentSpan_TypeMismatch(t *testing.T) {
	var span ContentSpan
	err := sonic.Unmarshal([]byte(`{"start":"10","end":20}`), &span)
	require.Error(t, err)

	var de *DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "start", de.Field)
	assert.Equal(t, "number", de.Expected)
	assert.Equal(t, "string", de.Actual)
}
