package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const validConfig = `
service_name = "review"
version = "0.1.0"

[[classifier.rules]]
label = "positive"
keywords = ["хорошо"]

[[classifier.rules]]
label = "negative"
keywords = ["плохо"]
`

func TestLoad_DefaultsAndRuleOrder(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t, "review", cfg.ServiceName)
	assert.Equal(t, "dev", cfg.Environment)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.False(t, cfg.Kafka.Enabled)

	// 规则数组保持声明顺序，顺序即扫描顺序
	require.Len(t, cfg.Classifier.Rules, 2)
	assert.Equal(t, "positive", cfg.Classifier.Rules[0].Label)
	assert.Equal(t, "negative", cfg.Classifier.Rules[1].Label)
	assert.Equal(t, []string{"хорошо"}, cfg.Classifier.Rules[0].Keywords)
}

func TestLoad_MissingServiceName(t *testing.T) {
	_, err := Load(writeConfig(t, `version = "0.1.0"`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "service_name")
}

func TestLoad_UnsupportedDriver(t *testing.T) {
	_, err := Load(writeConfig(t, validConfig+`
[database]
driver = "mysql"
dsn = "reviews"
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database driver")
}

func TestLoad_InvalidRuleLabel(t *testing.T) {
	_, err := Load(writeConfig(t, `
service_name = "review"

[[classifier.rules]]
label = "neutral"
keywords = ["никак"]
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid classifier rule label")
}

func TestLoad_KafkaEnabledRequiresBrokers(t *testing.T) {
	_, err := Load(writeConfig(t, validConfig+`
[kafka]
enabled = true
brokers = []
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kafka.brokers")
}
