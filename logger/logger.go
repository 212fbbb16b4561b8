package logger

import (
	"fmt"
	"log"
	"os"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"github.com/bytedance/sonic"
)

// Level 日志级别类型
type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
	FATAL
)

var levelNames = map[Level]string{
	DEBUG: "DEBUG",
	INFO:  "INFO",
	WARN:  "WARN",
	ERROR: "ERROR",
	FATAL: "FATAL",
}

// Field 日志字段结构
type Field struct {
	Key   string
	Value any
}

// Logger 结构化日志器，输出字段顺序固定的JSON行
type Logger struct {
	level  int64 // 原子操作的日志级别
	logger *log.Logger
}

var defaultLogger *Logger

func init() {
	defaultLogger = createLogger()
}

// createLogger 创建并按环境变量配置logger实例
func createLogger() *Logger {
	l := &Logger{
		level:  int64(INFO),
		logger: log.New(os.Stdout, "", 0),
	}
	if debug := os.Getenv("DEBUG"); debug == "true" || debug == "1" {
		atomic.StoreInt64(&l.level, int64(DEBUG))
	}
	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		if level, err := ParseLevel(logLevel); err == nil {
			atomic.StoreInt64(&l.level, int64(level))
		}
	}
	return l
}

// ParseLevel 从字符串解析日志级别
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return DEBUG, nil
	case "INFO":
		return INFO, nil
	case "WARN", "WARNING":
		return WARN, nil
	case "ERROR":
		return ERROR, nil
	case "FATAL":
		return FATAL, nil
	default:
		return INFO, fmt.Errorf("unknown log level: %s", s)
	}
}

func (l *Logger) shouldLog(level Level) bool {
	return atomic.LoadInt64(&l.level) <= int64(level)
}

// log 内部日志记录方法
// 手动拼接JSON保证字段顺序：timestamp > level > message > 动态字段（按键名排序）
func (l *Logger) log(level Level, msg string, fields []Field) {
	if !l.shouldLog(level) {
		return
	}

	var b strings.Builder
	b.WriteString(`{"timestamp":"`)
	b.WriteString(time.Now().Format("2006-01-02T15:04:05.000Z07:00"))
	b.WriteString(`","level":"`)
	b.WriteString(levelNames[level])
	b.WriteString(`","message":`)
	if msgJSON, err := sonic.MarshalString(msg); err == nil {
		b.WriteString(msgJSON)
	} else {
		b.WriteString(`""`)
	}

	if len(fields) > 0 {
		values := make(map[string]any, len(fields))
		keys := make([]string, 0, len(fields))
		for _, f := range fields {
			if _, seen := values[f.Key]; !seen {
				keys = append(keys, f.Key)
			}
			values[f.Key] = f.Value
		}
		sort.Strings(keys)
		for _, k := range keys {
			b.WriteString(`,`)
			if keyJSON, err := sonic.MarshalString(k); err == nil {
				b.WriteString(keyJSON)
			} else {
				continue
			}
			b.WriteString(`:`)
			if valJSON, err := sonic.Marshal(values[k]); err == nil {
				b.Write(valJSON)
			} else {
				b.WriteString(`null`)
			}
		}
	}
	b.WriteString(`}`)

	// log.Logger本身线程安全
	l.logger.Println(b.String())

	if level == FATAL {
		os.Exit(1)
	}
}

// SetLevel 设置日志级别
func SetLevel(level Level) {
	atomic.StoreInt64(&defaultLogger.level, int64(level))
}

// Reinitialize 重新初始化默认logger（用于.env文件加载后）
func Reinitialize() {
	defaultLogger = createLogger()
}

// 全局日志函数
func Debug(msg string, fields ...Field) {
	defaultLogger.log(DEBUG, msg, fields)
}

func Info(msg string, fields ...Field) {
	defaultLogger.log(INFO, msg, fields)
}

func Warn(msg string, fields ...Field) {
	defaultLogger.log(WARN, msg, fields)
}

func Error(msg string, fields ...Field) {
	defaultLogger.log(ERROR, msg, fields)
}

func Fatal(msg string, fields ...Field) {
	defaultLogger.log(FATAL, msg, fields)
}

// 字段构造函数
func String(key, val string) Field {
	return Field{Key: key, Value: val}
}

func Int(key string, val int) Field {
	return Field{Key: key, Value: val}
}

func Float64(key string, val float64) Field {
	return Field{Key: key, Value: val}
}

func Bool(key string, val bool) Field {
	return Field{Key: key, Value: val}
}

func Err(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

func Any(key string, val any) Field {
	return Field{Key: key, Value: val}
}
