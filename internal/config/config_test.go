package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	cfg := fromViper(v)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 8090, cfg.Server.Port)
	assert.Equal(t, 20*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "https://api.github.com", cfg.GitHub.APIURL)
	assert.Equal(t, "SkillSwap-Hub", cfg.GitHub.UserAgent)
	assert.Equal(t, 10*time.Second, cfg.GitHub.Timeout)
	assert.Equal(t, 30*time.Minute, cfg.Quiz.SessionTTL)
	assert.Equal(t, time.Hour, cfg.Auth.AccessTokenTTL)
	assert.False(t, cfg.Auth.AllowDemoTokens)
	assert.False(t, cfg.LLM.Enabled)
	assert.Equal(t, 4, cfg.Batch.Concurrency)
	assert.Equal(t, "localhost:6379", cfg.Redis.Address)
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("github.timeout", 3)
	v.Set("quiz.session_ttl", 5)
	v.Set("llm.enabled", true)

	cfg := fromViper(v)
	assert.Equal(t, 3*time.Second, cfg.GitHub.Timeout)
	assert.Equal(t, 5*time.Minute, cfg.Quiz.SessionTTL)
	assert.True(t, cfg.LLM.Enabled)
}

func TestValidate(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	cfg := fromViper(v)
	cfg.Batch.Concurrency = 0
	assert.Error(t, cfg.Validate())

	cfg = fromViper(v)
	cfg.GitHub.Timeout = 0
	assert.Error(t, cfg.Validate())

	cfg = fromViper(v)
	cfg.Quiz.SessionTTL = 0
	assert.Error(t, cfg.Validate())
}

func TestGetDSN(t *testing.T) {
	cfg := &Config{DB: DBConfig{Host: "db", Port: 1521, User: "u", Password: "p", DBName: "FREEPDB1"}}
	assert.Equal(t, "oracle://u:p@db:1521/FREEPDB1", cfg.GetDSN())
}
