package list

import (
	"fmt"
	"strings"

	"github.com/andersfylling/disgord"
	"github.com/nleeper/goment"

	"github.com/ndanilko/pomni/pkg/common"
	"github.com/ndanilko/pomni/pkg/services/reminders"
)

// List reminder listing command.
type List struct {
	engine *reminders.Engine
}

func Init(engine *reminders.Engine) *List {
	return &List{engine: engine}
}

func (*List) Name() string {
	return "list"
}

func (*List) Aliases() []string {
	return []string{"ls"}
}

func (*List) Description() string {
	return "List all of your reminders (sent via DM)."
}

func (*List) Permission() common.PermissionLevel {
	return common.PermissionDefault
}

func (*List) Active() bool {
	return true
}

func (c *List) Execute(s common.MessageState) {
	pending := c.engine.List(uint64(s.UserID()))

	if len(pending) == 0 {
		s.Reply("You currently don't have any reminders registered.")
		return
	}

	var fields []*disgord.EmbedField
	for _, reminder := range pending {
		due, _ := goment.New(reminder.Time)
		fields = append(fields, &disgord.EmbedField{
			Name:  fmt.Sprintf("Reminder #%d at %s", reminder.ID, due.Format("DD.MM.YYYY HH:mm")),
			Value: reminder.Text,
		})
	}

	embed := &disgord.Embed{
		Title:  "List of your registered reminders:",
		Color:  0xe5004c,
		Fields: fields,
	}

	s.DMEmbed(embed)
}

func (c *List) Help(s common.MessageState) {
	cmd := common.CommandPrefix + c.Name()
	fields := []*disgord.EmbedField{}

	// Command aliases.
	fields = append(fields, &disgord.EmbedField{
		Name:  "Aliases",
		Value: strings.Join(c.Aliases(), ", "),
	})

	embed := &disgord.Embed{
		Title:       fmt.Sprintf("Command \"%s\" usage", c.Name()),
		Description: cmd,
		Color:       0xe5004c,
		Fields:      fields,
	}
	s.SendEmbed(embed)
}
