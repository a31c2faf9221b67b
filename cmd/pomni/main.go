package main

import (
	_ "github.com/joho/godotenv/autoload"

	"github.com/ndanilko/pomni/pkg/commands"
	"github.com/ndanilko/pomni/pkg/common"
	"github.com/ndanilko/pomni/pkg/core"
	"github.com/ndanilko/pomni/pkg/scheduler"
	"github.com/ndanilko/pomni/pkg/services/digest"
	"github.com/ndanilko/pomni/pkg/services/reminders"
	"github.com/ndanilko/pomni/pkg/store"
	"github.com/ndanilko/pomni/pkg/weather"
)

func main() {
	// Load env variables.
	common.LoadEnv()
	common.InitLogger(common.Debug)

	// Load persisted reminders. A missing or broken file starts empty.
	st := store.New(common.RemindersFile)
	if err := st.Load(); err != nil {
		common.Logger.Fatal(err)
	}

	sched := scheduler.New()

	client := core.NewClient()
	gateway := core.NewGateway(client)

	// Recovery replays the store into the scheduler before the bot
	// handles any traffic.
	engine := reminders.New(st, sched, gateway, common.Timezone)
	engine.Recover()

	locations := weather.NewLocations()
	provider := weather.NewOpenMeteo()

	// Connect and start dispatching commands.
	core.Start(commands.Init(engine, provider, locations))

	digests := digest.Start(gateway, provider, locations, common.Timezone,
		common.MorningDigest, common.EveningDigest)

	core.StopOnInterrupt()

	digests.Stop()
	sched.Stop()
}
