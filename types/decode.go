package types

import (
	"fmt"

	"github.com/bytedance/sonic"
)

// actualMissing 表示字段在负载中缺失（区别于类型不匹配）
const actualMissing = "missing"

// DecodeError 线格式解码错误
//
// 携带目标类型名、字段路径（嵌套字段用点号连接）以及期望/实际的JSON类型，
// 便于调用方做诊断日志。字段路径为空表示负载整体不是合法对象。
type DecodeError struct {
	Type     string // 目标类型名
	Field    string // 字段路径
	Expected string // 期望的JSON类型
	Actual   string // 实际的JSON类型，字段缺失时为 "missing"
}

// Error 实现 error 接口
func (e *DecodeError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("解码 %s 失败: 负载不是JSON对象, 实际类型 %s", e.Type, e.Actual)
	}
	if e.Actual == actualMissing {
		return fmt.Sprintf("解码 %s 失败: 缺少必需字段 %s (期望 %s)", e.Type, e.Field, e.Expected)
	}
	return fmt.Sprintf("解码 %s 失败: 字段 %s 类型不匹配, 期望 %s, 实际 %s",
		e.Type, e.Field, e.Expected, e.Actual)
}

// jsonTypeName 返回解码后值对应的JSON类型名
func jsonTypeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// decodeObject 将原始负载解码为JSON对象，非对象负载返回结构化错误
func decodeObject(typeName string, data []byte) (map[string]any, error) {
	var raw any
	if err := sonic.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("解码 %s 失败: 非法JSON负载: %w", typeName, err)
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, &DecodeError{Type: typeName, Expected: "object", Actual: jsonTypeName(raw)}
	}
	return obj, nil
}

// prefixDecodeError 为嵌套字段的解码错误补全外层字段路径
func prefixDecodeError(err error, prefix string) error {
	if de, ok := err.(*DecodeError); ok {
		field := prefix
		if de.Field != "" {
			field = prefix + "." + de.Field
		}
		return &DecodeError{Type: de.Type, Field: field, Expected: de.Expected, Actual: de.Actual}
	}
	return err
}

// ========== 字段提取策略（snake_case字段名与camelCase线格式的映射集中在各类型的tag与此处的解码逻辑）==========

// requireString 提取必需的字符串字段，缺失或类型不匹配时报错
func requireString(typeName string, obj map[string]any, field string) (string, error) {
	v, ok := obj[field]
	if !ok {
		return "", &DecodeError{Type: typeName, Field: field, Expected: "string", Actual: actualMissing}
	}
	s, ok := v.(string)
	if !ok {
		return "", &DecodeError{Type: typeName, Field: field, Expected: "string", Actual: jsonTypeName(v)}
	}
	return s, nil
}

// requireInt 提取必需的整数字段
// JSON数字统一以float64到达，按上游约定截断为int
func requireInt(typeName string, obj map[string]any, field string) (int, error) {
	v, ok := obj[field]
	if !ok {
		return 0, &DecodeError{Type: typeName, Field: field, Expected: "number", Actual: actualMissing}
	}
	f, ok := v.(float64)
	if !ok {
		return 0, &DecodeError{Type: typeName, Field: field, Expected: "number", Actual: jsonTypeName(v)}
	}
	return int(f), nil
}

// optionalString 提取可选的字符串字段，缺失或为null时返回nil
func optionalString(typeName string, obj map[string]any, field string) (*string, error) {
	v, ok := obj[field]
	if !ok || v == nil {
		return nil, nil
	}
	s, ok := v.(string)
	if !ok {
		return nil, &DecodeError{Type: typeName, Field: field, Expected: "string", Actual: jsonTypeName(v)}
	}
	return &s, nil
}

// optionalFloat 提取可选的浮点字段，缺失或为null时返回nil
func optionalFloat(typeName string, obj map[string]any, field string) (*float64, error) {
	v, ok := obj[field]
	if !ok || v == nil {
		return nil, nil
	}
	f, ok := v.(float64)
	if !ok {
		return nil, &DecodeError{Type: typeName, Field: field, Expected: "number", Actual: jsonTypeName(v)}
	}
	return &f, nil
}

// optionalObject 提取可选的嵌套对象字段，缺失或为null时返回nil
func optionalObject(typeName string, obj map[string]any, field string) (map[string]any, error) {
	v, ok := obj[field]
	if !ok || v == nil {
		return nil, nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, &DecodeError{Type: typeName, Field: field, Expected: "object", Actual: jsonTypeName(v)}
	}
	return m, nil
}
