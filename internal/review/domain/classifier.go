package domain

import "strings"

// KeywordRule 一个情感类别的关键词列表
type KeywordRule struct {
	Label    Sentiment
	Keywords []string
}

// Classifier 基于关键词规则表的确定性分类器
// 规则不可变，构造时注入；neutral 没有规则，是所有规则落空后的兜底标签
type Classifier struct {
	rules []KeywordRule
}

// NewClassifier 创建分类器，规则按传入顺序扫描
func NewClassifier(rules []KeywordRule) *Classifier {
	copied := make([]KeywordRule, len(rules))
	for i, rule := range rules {
		copied[i] = KeywordRule{
			Label:    rule.Label,
			Keywords: append([]string(nil), rule.Keywords...),
		}
	}
	return &Classifier{rules: copied}
}

// DefaultRules 默认关键词规则，positive 先于 negative 扫描
func DefaultRules() []KeywordRule {
	return []KeywordRule{
		{Label: SentimentPositive, Keywords: []string{"люблю", "хорошо", "отлично"}},
		{Label: SentimentNegative, Keywords: []string{"плохо", "ужасно", "отвратительно"}},
	}
}

// Classify 返回文本的情感标签
// 逐规则、逐关键词扫描，第一个命中的类别即为结果；匹配是区分大小写的
// 字面子串包含，关键词嵌在更长的词里同样命中
func (c *Classifier) Classify(text string) Sentiment {
	for _, rule := range c.rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(text, keyword) {
				return rule.Label
			}
		}
	}
	return SentimentNeutral
}
