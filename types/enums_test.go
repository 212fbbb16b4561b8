package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserIntent_IsValid(t *testing.T) {
	tests := []struct {
		name   string
		intent UserIntent
		want   bool
	}{
		{name: "改进代码", intent: UserIntentImproveCode, want: true},
		{name: "解释选中代码", intent: UserIntentExplainCodeSelection, want: true},
		{name: "引用来源", intent: UserIntentCiteSources, want: true},
		{name: "未知token", intent: UserIntent("FUTURE_INTENT"), want: false},
		{name: "空字符串", intent: UserIntent(""), want: false},
		{name: "小写token", intent: UserIntent("improve_code"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.intent.IsValid())
		})
	}
}
