package types

// ContentSpan 内容范围标记
//
// 以半开区间 [start, end) 标识内容在响应文本中的位置
type ContentSpan struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// NewContentSpan 创建新的内容范围
// 不做校验：start 大于 end 的范围按空范围处理，保持上游的宽松约定
func NewContentSpan(start, end int) ContentSpan {
	return ContentSpan{Start: start, End: end}
}

// Len 获取范围长度（end - start，start 大于 end 时为负数，不截断）
func (s ContentSpan) Len() int {
	return s.End - s.Start
}

// IsEmpty 判断范围是否为空
func (s ContentSpan) IsEmpty() bool {
	return s.Start >= s.End
}

// UnmarshalJSON 自定义JSON反序列化，start/end 均为必需字段
func (s *ContentSpan) UnmarshalJSON(data []byte) error {
	obj, err := decodeObject("ContentSpan", data)
	if err != nil {
		return err
	}
	return s.fromObject(obj)
}

func (s *ContentSpan) fromObject(obj map[string]any) error {
	start, err := requireInt("ContentSpan", obj, "start")
	if err != nil {
		return err
	}
	end, err := requireInt("ContentSpan", obj, "end")
	if err != nil {
		return err
	}
	s.Start = start
	s.End = end
	return nil
}
