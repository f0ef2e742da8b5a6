package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_PositiveKeyword(t *testing.T) {
	c := NewClassifier(DefaultRules())

	assert.Equal(t, SentimentPositive, c.Classify("Это было отлично"))
	assert.Equal(t, SentimentPositive, c.Classify("я люблю этот сервис"))
	assert.Equal(t, SentimentPositive, c.Classify("всё хорошо"))
}

func TestClassify_NegativeKeyword(t *testing.T) {
	c := NewClassifier(DefaultRules())

	assert.Equal(t, SentimentNegative, c.Classify("всё очень плохо"))
	assert.Equal(t, SentimentNegative, c.Classify("ужасно долго ждал"))
	assert.Equal(t, SentimentNegative, c.Classify("отвратительно"))
}

func TestClassify_NoKeywordIsNeutral(t *testing.T) {
	c := NewClassifier(DefaultRules())

	assert.Equal(t, SentimentNeutral, c.Classify("обычный день, ничего особенного"))
	assert.Equal(t, SentimentNeutral, c.Classify(""))
}

func TestClassify_FirstMatchWins(t *testing.T) {
	c := NewClassifier(DefaultRules())

	// 文本里 negative 关键词先出现，但 positive 类别先扫描
	assert.Equal(t, SentimentPositive, c.Classify("сначала было плохо, потом отлично"))
	assert.Equal(t, SentimentPositive, c.Classify("плохо? нет, хорошо!"))
}

func TestClassify_SubstringInsideLongerWord(t *testing.T) {
	c := NewClassifier(DefaultRules())

	// 子串包含匹配，关键词嵌在更长的词里同样命中
	assert.Equal(t, SentimentPositive, c.Classify("нехорошо получилось"))
}

func TestClassify_CaseSensitive(t *testing.T) {
	c := NewClassifier(DefaultRules())

	assert.Equal(t, SentimentNeutral, c.Classify("ОТЛИЧНО"))
}

func TestClassify_CustomRuleOrder(t *testing.T) {
	c := NewClassifier([]KeywordRule{
		{Label: SentimentNegative, Keywords: []string{"bad"}},
		{Label: SentimentPositive, Keywords: []string{"good"}},
	})

	// 规则顺序由注入方决定，negative 先扫描时两者皆有则判 negative
	assert.Equal(t, SentimentNegative, c.Classify("good and bad"))
	assert.Equal(t, SentimentPositive, c.Classify("all good"))
	assert.Equal(t, SentimentNeutral, c.Classify("meh"))
}

func TestClassify_NoRules(t *testing.T) {
	c := NewClassifier(nil)

	assert.Equal(t, SentimentNeutral, c.Classify("всё отлично"))
}

func TestParseSentiment(t *testing.T) {
	for _, valid := range []string{"positive", "negative", "neutral"} {
		s, err := ParseSentiment(valid)
		assert.NoError(t, err)
		assert.Equal(t, Sentiment(valid), s)
	}

	_, err := ParseSentiment("mixed")
	assert.ErrorIs(t, err, ErrUnsupportedSentiment)
	assert.Contains(t, err.Error(), "positive, negative or neutral")
	assert.Contains(t, err.Error(), "mixed")
}
