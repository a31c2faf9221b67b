package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnvDefaults(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "test-token")
	t.Setenv("DEVELOPER_ID", "")
	t.Setenv("COMMAND_PREFIX", "")
	t.Setenv("REMINDERS_FILE", "")
	t.Setenv("TIMEZONE", "")
	t.Setenv("MORNING_DIGEST", "")
	t.Setenv("EVENING_DIGEST", "")
	t.Setenv("DEBUG", "")

	LoadEnv()

	assert.Equal(t, "test-token", DiscordToken)
	assert.Equal(t, "!", CommandPrefix)
	assert.Equal(t, "pomni.json", RemindersFile)
	require.NotNil(t, Timezone)
	assert.Equal(t, "Europe/Moscow", Timezone.String())
	assert.Equal(t, 8, MorningDigest)
	assert.Equal(t, 22, EveningDigest)
	assert.False(t, Debug)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "test-token")
	t.Setenv("DEVELOPER_ID", "1337")
	t.Setenv("COMMAND_PREFIX", "?")
	t.Setenv("REMINDERS_FILE", "/tmp/custom.json")
	t.Setenv("TIMEZONE", "UTC")
	t.Setenv("MORNING_DIGEST", "7")
	t.Setenv("EVENING_DIGEST", "21")
	t.Setenv("DEBUG", "true")

	LoadEnv()

	assert.Equal(t, "?", CommandPrefix)
	assert.Equal(t, "/tmp/custom.json", RemindersFile)
	assert.Equal(t, time.UTC, Timezone)
	assert.Equal(t, 7, MorningDigest)
	assert.Equal(t, 21, EveningDigest)
	assert.True(t, Debug)
	assert.Equal(t, uint64(1337), uint64(DeveloperID))
}
