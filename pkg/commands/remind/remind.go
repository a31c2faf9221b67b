package remind

import (
	"errors"
	"fmt"
	"strings"

	"github.com/andersfylling/disgord"
	"github.com/nleeper/goment"

	"github.com/ndanilko/pomni/pkg/common"
	"github.com/ndanilko/pomni/pkg/services/reminders"
)

// Remind reminder registration command.
type Remind struct {
	engine *reminders.Engine
}

func Init(engine *reminders.Engine) *Remind {
	return &Remind{engine: engine}
}

func (*Remind) Name() string {
	return "remind"
}

func (*Remind) Aliases() []string {
	return []string{"remindme", "re", "r"}
}

func (*Remind) Description() string {
	return "Register a reminder and receive a DM when it is due."
}

func (*Remind) Permission() common.PermissionLevel {
	return common.PermissionDefault
}

func (*Remind) Active() bool {
	return true
}

func (c *Remind) Execute(s common.MessageState) {
	raw := s.RawArgs()
	if raw == "" {
		c.Help(s)
		return
	}

	result, err := c.engine.Create(uint64(s.UserID()), raw)
	switch {
	case errors.Is(err, reminders.ErrBadFormat):
		s.Reply(fmt.Sprintf(
			"Use the format `text %s time`. Example: `Call mom %s in 10 minutes`",
			reminders.Separator, reminders.Separator,
		))
		return
	case errors.Is(err, reminders.ErrUnrecognizedTime):
		s.Reply("Sorry, I don't understand that time. Try `in 10 minutes`, `tomorrow at 13:00` or `18.02 at 13:00`.")
		return
	case err != nil:
		common.Logger.Error(err)
		s.Reply(fmt.Sprintf("Unexpected error: %s", err.Error()))
		return
	}

	g, _ := goment.New(result.Time)
	reply := fmt.Sprintf(
		"Reminder #%d registered for %s (%s).",
		result.ID, g.Format("DD.MM.YYYY HH:mm"), g.FromNow(),
	)
	for _, note := range result.Adjustments {
		reply += "\n" + note
	}

	s.Reply(reply)
}

func (c *Remind) Help(s common.MessageState) {
	cmd := common.CommandPrefix + c.Name()
	fields := []*disgord.EmbedField{}

	// Command aliases.
	fields = append(fields, &disgord.EmbedField{
		Name:  "Aliases",
		Value: strings.Join(c.Aliases(), ", "),
	})

	// Relative time phrases.
	fields = append(fields, &disgord.EmbedField{
		Name:  "[Time] Relative",
		Value: "in 10 minutes, in a minute, in 2 hours, in an hour",
	})

	// Absolute time phrases.
	fields = append(fields, &disgord.EmbedField{
		Name:  "[Time] Absolute",
		Value: "today at 18:30, tomorrow at 13:00, day after tomorrow at 9:00, 18.02 at 13:00, 18.02, 13:00",
	})

	// Usage example.
	fields = append(fields, &disgord.EmbedField{
		Name:  "[Example] Relative reminder",
		Value: fmt.Sprintf("%s Call mom %s in 10 minutes", cmd, reminders.Separator),
	})

	// Usage example.
	fields = append(fields, &disgord.EmbedField{
		Name:  "[Example] Absolute reminder",
		Value: fmt.Sprintf("%s Dentist %s 18.02 at 13:00", cmd, reminders.Separator),
	})

	s.SendEmbed(&disgord.Embed{
		Title:       fmt.Sprintf("Command \"%s\" usage", c.Name()),
		Description: fmt.Sprintf("%s [text] %s [time]", cmd, reminders.Separator),
		Color:       0xe5004c,
		Fields:      fields,
	})
}
