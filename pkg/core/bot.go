package core

import (
	"github.com/andersfylling/disgord"

	"github.com/ndanilko/pomni/pkg/commands"
	"github.com/ndanilko/pomni/pkg/common"
)

var (
	// Client Disgord client.
	Client *disgord.Client

	// Index bot command index.
	Index *commands.CommandIndex
)

// NewClient creates the Disgord client without connecting it, so that the
// engine's gateway adapter can be wired before recovery runs.
func NewClient() *disgord.Client {
	Client = disgord.New(&disgord.Config{
		BotToken: common.DiscordToken,
		Logger:   disgord.DefaultLogger(common.Debug),
	})
	return Client
}

// Start connects the client and begins dispatching commands.
func Start(index *commands.CommandIndex) {
	if err := Client.Connect(); err != nil {
		panic(err)
	}

	Index = index

	go ListenMessages()
}

// StopOnInterrupt blocks until an OS interrupt, then disconnects the client.
func StopOnInterrupt() {
	Client.DisconnectOnInterrupt()
}
