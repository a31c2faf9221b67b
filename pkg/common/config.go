package common

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/andersfylling/disgord"
)

// Environmental variable.
var (
	DiscordToken  string
	DeveloperID   disgord.Snowflake
	CommandPrefix string
	RemindersFile string
	Timezone      *time.Location
	MorningDigest int
	EveningDigest int
	Debug         bool
)

// LoadEnv reads the bot configuration from the environment.
// The Discord token is the only variable without a default.
func LoadEnv() {
	// Discord bot token.
	DiscordToken = os.Getenv("DISCORD_TOKEN")
	if DiscordToken == "" {
		log.Fatal("DISCORD_TOKEN must be set")
	}

	// Developer (Discord user) ID
	id, err := strconv.ParseUint(os.Getenv("DEVELOPER_ID"), 10, 64)
	if err != nil {
		id = 0
	}
	DeveloperID = disgord.NewSnowflake(id)

	// Global command prefix.
	CommandPrefix = os.Getenv("COMMAND_PREFIX")
	if CommandPrefix == "" {
		CommandPrefix = "!"
	}

	// File the reminder store persists to.
	RemindersFile = os.Getenv("REMINDERS_FILE")
	if RemindersFile == "" {
		RemindersFile = "pomni.json"
	}

	// Reference time zone every time phrase is interpreted in.
	tz := os.Getenv("TIMEZONE")
	if tz == "" {
		tz = "Europe/Moscow"
	}
	Timezone, err = time.LoadLocation(tz)
	if err != nil {
		log.Fatalf("invalid TIMEZONE %q: %v", tz, err)
	}

	// Weather digest hours (local to the reference time zone).
	MorningDigest = intEnv("MORNING_DIGEST", 8)
	EveningDigest = intEnv("EVENING_DIGEST", 22)

	debug, err := strconv.ParseBool(os.Getenv("DEBUG"))
	if err != nil {
		debug = false
	}
	Debug = debug
}

func intEnv(name string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(name))
	if err != nil {
		return fallback
	}
	return v
}
