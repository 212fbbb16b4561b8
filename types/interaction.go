package types

// FollowupPrompt 后续提示
//
// 助手建议的下一条用户消息，可携带一个已分类的用户意图
type FollowupPrompt struct {
	Content    string      `json:"content"`
	UserIntent *UserIntent `json:"userIntent,omitempty"`
}

// NewFollowupPrompt 创建新的后续提示
func NewFollowupPrompt(content string) FollowupPrompt {
	return FollowupPrompt{Content: content}
}

// WithUserIntent 设置用户意图
func (p FollowupPrompt) WithUserIntent(intent UserIntent) FollowupPrompt {
	p.UserIntent = &intent
	return p
}

// UnmarshalJSON 自定义JSON反序列化，content 为必需字段
// userIntent 不做token集合校验（集合由上游定义），调用方可通过 IsValid 检查
func (p *FollowupPrompt) UnmarshalJSON(data []byte) error {
	obj, err := decodeObject("FollowupPrompt", data)
	if err != nil {
		return err
	}
	out := FollowupPrompt{}
	if out.Content, err = requireString("FollowupPrompt", obj, "content"); err != nil {
		return err
	}
	intent, err := optionalString("FollowupPrompt", obj, "userIntent")
	if err != nil {
		return err
	}
	if intent != nil {
		ui := UserIntent(*intent)
		out.UserIntent = &ui
	}
	*p = out
	return nil
}

// ProgrammingLanguage 编程语言
type ProgrammingLanguage struct {
	LanguageName string `json:"languageName"`
}

// NewProgrammingLanguage 创建新的编程语言
// 不校验语言名是否属于已知语言集合
func NewProgrammingLanguage(name string) ProgrammingLanguage {
	return ProgrammingLanguage{LanguageName: name}
}

// UnmarshalJSON 自定义JSON反序列化，languageName 为必需字段
func (pl *ProgrammingLanguage) UnmarshalJSON(data []byte) error {
	obj, err := decodeObject("ProgrammingLanguage", data)
	if err != nil {
		return err
	}
	return pl.fromObject(obj)
}

func (pl *ProgrammingLanguage) fromObject(obj map[string]any) error {
	name, err := requireString("ProgrammingLanguage", obj, "languageName")
	if err != nil {
		return err
	}
	pl.LanguageName = name
	return nil
}

// Customization 自定义模型
//
// arn 为模型资源标识符，按不透明字符串处理
type Customization struct {
	ARN  string  `json:"arn"`
	Name *string `json:"name,omitempty"`
}

// NewCustomization 创建新的自定义模型引用
func NewCustomization(arn string) Customization {
	return Customization{ARN: arn}
}

// WithName 设置配置名称
func (c Customization) WithName(name string) Customization {
	c.Name = &name
	return c
}

// UnmarshalJSON 自定义JSON反序列化，arn 为必需字段
func (c *Customization) UnmarshalJSON(data []byte) error {
	obj, err := decodeObject("Customization", data)
	if err != nil {
		return err
	}
	out := Customization{}
	if out.ARN, err = requireString("Customization", obj, "arn"); err != nil {
		return err
	}
	if out.Name, err = optionalString("Customization", obj, "name"); err != nil {
		return err
	}
	*c = out
	return nil
}

// CodeQuery 代码查询
type CodeQuery struct {
	CodeQueryID         string               `json:"codeQueryId"`
	ProgrammingLanguage *ProgrammingLanguage `json:"programmingLanguage,omitempty"`
	UserInputMessageID  *string              `json:"userInputMessageId,omitempty"`
}

// NewCodeQuery 创建新的代码查询
func NewCodeQuery(codeQueryID string) CodeQuery {
	return CodeQuery{CodeQueryID: codeQueryID}
}

// WithProgrammingLanguage 设置编程语言
func (q CodeQuery) WithProgrammingLanguage(lang ProgrammingLanguage) CodeQuery {
	q.ProgrammingLanguage = &lang
	return q
}

// WithUserInputMessageID 设置来源用户消息ID
func (q CodeQuery) WithUserInputMessageID(id string) CodeQuery {
	q.UserInputMessageID = &id
	return q
}

// UnmarshalJSON 自定义JSON反序列化，codeQueryId 为必需字段
func (q *CodeQuery) UnmarshalJSON(data []byte) error {
	obj, err := decodeObject("CodeQuery", data)
	if err != nil {
		return err
	}
	out := CodeQuery{}
	if out.CodeQueryID, err = requireString("CodeQuery", obj, "codeQueryId"); err != nil {
		return err
	}
	langObj, err := optionalObject("CodeQuery", obj, "programmingLanguage")
	if err != nil {
		return err
	}
	if langObj != nil {
		lang := &ProgrammingLanguage{}
		if err := lang.fromObject(langObj); err != nil {
			return prefixDecodeError(err, "programmingLanguage")
		}
		out.ProgrammingLanguage = lang
	}
	if out.UserInputMessageID, err = optionalString("CodeQuery", obj, "userInputMessageId"); err != nil {
		return err
	}
	*q = out
	return nil
}
