package weather

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/andersfylling/disgord"

	"github.com/ndanilko/pomni/pkg/common"
	"github.com/ndanilko/pomni/pkg/weather"
)

// Weather current-forecast command.
type Weather struct {
	provider  weather.Provider
	locations *weather.Locations
}

func Init(provider weather.Provider, locations *weather.Locations) *Weather {
	return &Weather{provider: provider, locations: locations}
}

func (*Weather) Name() string {
	return "weather"
}

func (*Weather) Aliases() []string {
	return []string{"wx"}
}

func (*Weather) Description() string {
	return "Show today's forecast for your coordinates."
}

func (*Weather) Permission() common.PermissionLevel {
	return common.PermissionDefault
}

func (*Weather) Active() bool {
	return true
}

func (c *Weather) Execute(s common.MessageState) {
	userID := uint64(s.UserID())
	args := s.UserCommandArgs()

	var point weather.Point
	if len(args) >= 2 {
		lat, errLat := strconv.ParseFloat(args[0], 64)
		lon, errLon := strconv.ParseFloat(args[1], 64)
		if errLat != nil || errLon != nil {
			s.Reply("Invalid coordinates. Example: `" + common.CommandPrefix + "weather 55.75 37.61`")
			return
		}
		point = weather.Point{Lat: lat, Lon: lon}
		c.locations.Set(userID, point)
	} else {
		var known bool
		point, known = c.locations.Get(userID)
		if !known {
			s.Reply("Tell me where you are first: `" + common.CommandPrefix + "weather 55.75 37.61`")
			return
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	conditions, err := c.provider.Today(ctx, point.Lat, point.Lon)
	if err != nil {
		common.Logger.Error(err)
		s.Reply("Weather is unavailable right now, try again later.")
		return
	}

	s.Reply(weather.Format(conditions))
}

func (c *Weather) Help(s common.MessageState) {
	cmd := common.CommandPrefix + c.Name()
	fields := []*disgord.EmbedField{}

	// Command aliases.
	fields = append(fields, &disgord.EmbedField{
		Name:  "Aliases",
		Value: strings.Join(c.Aliases(), ", "),
	})

	// Usage example.
	fields = append(fields, &disgord.EmbedField{
		Name:  "[Example] Setting your location",
		Value: fmt.Sprintf("%s 55.75 37.61", cmd),
	})

	// Usage example.
	fields = append(fields, &disgord.EmbedField{
		Name:  "[Example] Reusing the remembered location",
		Value: cmd,
	})

	embed := &disgord.Embed{
		Title:       fmt.Sprintf("Command \"%s\" usage", c.Name()),
		Description: fmt.Sprintf("%s [latitude? longitude?]", cmd),
		Color:       0xe5004c,
		Fields:      fields,
	}
	s.SendEmbed(embed)
}
