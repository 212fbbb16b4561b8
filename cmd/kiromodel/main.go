package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"kiromodel/logger"
	"kiromodel/types"

	"github.com/bytedance/sonic"
	"github.com/joho/godotenv"
)

// decodeAs 将负载严格解码为指定类型（缺少必需字段或类型不匹配即报错）
func decodeAs[T any](data []byte) (any, error) {
	var v T
	if err := sonic.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// 支持检查的线格式类型，键为命令行参数中的类型名
var decoders = map[string]func([]byte) (any, error){
	"contentSpan":                   decodeAs[types.ContentSpan],
	"supplementaryWebLink":          decodeAs[types.SupplementaryWebLink],
	"mostRelevantMissedAlternative": decodeAs[types.MostRelevantMissedAlternative],
	"reference":                     decodeAs[types.Reference],
	"followupPrompt":                decodeAs[types.FollowupPrompt],
	"programmingLanguage":           decodeAs[types.ProgrammingLanguage],
	"customization":                 decodeAs[types.Customization],
	"codeQuery":                     decodeAs[types.CodeQuery],
}

func main() {
	// 尝试加载 .env 文件（CI等环境直接注入环境变量，无需此文件）
	if err := godotenv.Load(); err == nil {
		logger.Reinitialize()
		logger.Debug("已从 .env 文件加载配置")
	}

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	typeName := os.Args[1]
	decode, ok := decoders[typeName]
	if !ok {
		logger.Error("未知的类型名", logger.String("type", typeName))
		usage()
		os.Exit(2)
	}

	payload, err := io.ReadAll(os.Stdin)
	if err != nil {
		logger.Error("读取标准输入失败", logger.Err(err))
		os.Exit(1)
	}

	value, err := decode(payload)
	if err != nil {
		var de *types.DecodeError
		if errors.As(err, &de) {
			logger.Error("负载解码失败",
				logger.String("type", de.Type),
				logger.String("field", de.Field),
				logger.String("expected", de.Expected),
				logger.String("actual", de.Actual))
		} else {
			logger.Error("负载解码失败", logger.Err(err))
		}
		os.Exit(1)
	}

	if prompt, ok := value.(types.FollowupPrompt); ok {
		if prompt.UserIntent != nil && !prompt.UserIntent.IsValid() {
			logger.Warn("userIntent 不在已知token集合中",
				logger.String("userIntent", string(*prompt.UserIntent)))
		}
	}

	out, err := sonic.ConfigStd.MarshalIndent(value, "", "  ")
	if err != nil {
		logger.Error("序列化失败", logger.Err(err))
		os.Exit(1)
	}
	fmt.Println(string(out))
}

func usage() {
	names := make([]string, 0, len(decoders))
	for name := range decoders {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(os.Stderr, "用法: kiromodel <类型名> < payload.json")
	fmt.Fprintln(os.Stderr, "从标准输入读取JSON负载，按指定类型严格解码并回显规范化结果")
	fmt.Fprintln(os.Stderr, "支持的类型名:")
	for _, name := range names {
		fmt.Fprintf(os.Stderr, "  %s\n", name)
	}
}
