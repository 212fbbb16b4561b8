package types

// SupplementaryWebLink 补充网页链接
//
// 助手响应中引用的相关网页资源，除 url 外均为可选字段
type SupplementaryWebLink struct {
	URL     string   `json:"url"`
	Title   *string  `json:"title,omitempty"`
	Snippet *string  `json:"snippet,omitempty"`
	Score   *float64 `json:"score,omitempty"`
}

// NewSupplementaryWebLink 创建新的网页链接
func NewSupplementaryWebLink(url string) SupplementaryWebLink {
	return SupplementaryWebLink{URL: url}
}

// WithTitle 设置标题
func (l SupplementaryWebLink) WithTitle(title string) SupplementaryWebLink {
	l.Title = &title
	return l
}

// WithSnippet 设置摘要
func (l SupplementaryWebLink) WithSnippet(snippet string) SupplementaryWebLink {
	l.Snippet = &snippet
	return l
}

// WithScore 设置相关性评分（不做范围约束）
func (l SupplementaryWebLink) WithScore(score float64) SupplementaryWebLink {
	l.Score = &score
	return l
}

// UnmarshalJSON 自定义JSON反序列化，url 为必需字段
func (l *SupplementaryWebLink) UnmarshalJSON(data []byte) error {
	obj, err := decodeObject("SupplementaryWebLink", data)
	if err != nil {
		return err
	}
	out := SupplementaryWebLink{}
	if out.URL, err = requireString("SupplementaryWebLink", obj, "url"); err != nil {
		return err
	}
	if out.Title, err = optionalString("SupplementaryWebLink", obj, "title"); err != nil {
		return err
	}
	if out.Snippet, err = optionalString("SupplementaryWebLink", obj, "snippet"); err != nil {
		return err
	}
	if out.Score, err = optionalFloat("SupplementaryWebLink", obj, "score"); err != nil {
		return err
	}
	*l = out
	return nil
}

// MostRelevantMissedAlternative 最相关的错过替代方案
//
// 当存在许可证更合适的同类资源时，随引用一并下发
type MostRelevantMissedAlternative struct {
	URL         string  `json:"url"`
	LicenseName *string `json:"licenseName,omitempty"`
	Repository  *string `json:"repository,omitempty"`
}

// NewMostRelevantMissedAlternative 创建新的替代方案
func NewMostRelevantMissedAlternative(url string) MostRelevantMissedAlternative {
	return MostRelevantMissedAlternative{URL: url}
}

// WithLicenseName 设置许可证名称
func (a MostRelevantMissedAlternative) WithLicenseName(name string) MostRelevantMissedAlternative {
	a.LicenseName = &name
	return a
}

// WithRepository 设置仓库名称
func (a MostRelevantMissedAlternative) WithRepository(repo string) MostRelevantMissedAlternative {
	a.Repository = &repo
	return a
}

// UnmarshalJSON 自定义JSON反序列化，url 为必需字段
func (a *MostRelevantMissedAlternative) UnmarshalJSON(data []byte) error {
	obj, err := decodeObject("MostRelevantMissedAlternative", data)
	if err != nil {
		return err
	}
	return a.fromObject(obj)
}

func (a *MostRelevantMissedAlternative) fromObject(obj map[string]any) error {
	out := MostRelevantMissedAlternative{}
	var err error
	if out.URL, err = requireString("MostRelevantMissedAlternative", obj, "url"); err != nil {
		return err
	}
	if out.LicenseName, err = optionalString("MostRelevantMissedAlternative", obj, "licenseName"); err != nil {
		return err
	}
	if out.Repository, err = optionalString("MostRelevantMissedAlternative", obj, "repository"); err != nil {
		return err
	}
	*a = out
	return nil
}

// Reference 代码引用
//
// 助手响应中引用的代码来源信息，全部字段可选，空引用合法
type Reference struct {
	LicenseName                   *string                        `json:"licenseName,omitempty"`
	Repository                    *string                        `json:"repository,omitempty"`
	URL                           *string                        `json:"url,omitempty"`
	Information                   *string                        `json:"information,omitempty"`
	RecommendationContentSpan     *ContentSpan                   `json:"recommendationContentSpan,omitempty"`
	MostRelevantMissedAlternative *MostRelevantMissedAlternative `json:"mostRelevantMissedAlternative,omitempty"`
}

// NewReference 创建新的空引用
func NewReference() Reference {
	return Reference{}
}

// WithLicenseName 设置许可证名称
func (r Reference) WithLicenseName(name string) Reference {
	r.LicenseName = &name
	return r
}

// WithRepository 设置仓库名称
func (r Reference) WithRepository(repo string) Reference {
	r.Repository = &repo
	return r
}

// WithURL 设置引用URL
func (r Reference) WithURL(url string) Reference {
	r.URL = &url
	return r
}

// WithInformation 设置附加信息
func (r Reference) WithInformation(info string) Reference {
	r.Information = &info
	return r
}

// WithRecommendationContentSpan 设置推荐内容在响应中的位置范围
func (r Reference) WithRecommendationContentSpan(span ContentSpan) Reference {
	r.RecommendationContentSpan = &span
	return r
}

// WithMostRelevantMissedAlternative 设置最相关的错过替代方案
func (r Reference) WithMostRelevantMissedAlternative(alt MostRelevantMissedAlternative) Reference {
	r.MostRelevantMissedAlternative = &alt
	return r
}

// UnmarshalJSON 自定义JSON反序列化
// 全部字段可选，但嵌套对象一旦出现则按各自的必需字段严格校验
func (r *Reference) UnmarshalJSON(data []byte) error {
	obj, err := decodeObject("Reference", data)
	if err != nil {
		return err
	}
	out := Reference{}
	if out.LicenseName, err = optionalString("Reference", obj, "licenseName"); err != nil {
		return err
	}
	if out.Repository, err = optionalString("Reference", obj, "repository"); err != nil {
		return err
	}
	if out.URL, err = optionalString("Reference", obj, "url"); err != nil {
		return err
	}
	if out.Information, err = optionalString("Reference", obj, "information"); err != nil {
		return err
	}

	spanObj, err := optionalObject("Reference", obj, "recommendationContentSpan")
	if err != nil {
		return err
	}
	if spanObj != nil {
		span := &ContentSpan{}
		if err := span.fromObject(spanObj); err != nil {
			return prefixDecodeError(err, "recommendationContentSpan")
		}
		out.RecommendationContentSpan = span
	}

	altObj, err := optionalObject("Reference", obj, "mostRelevantMissedAlternative")
	if err != nil {
		return err
	}
	if altObj != nil {
		alt := &MostRelevantMissedAlternative{}
		if err := alt.fromObject(altObj); err != nil {
			return prefixDecodeError(err, "mostRelevantMissedAlternative")
		}
		out.MostRelevantMissedAlternative = alt
	}

	*r = out
	return nil
}
