package remove

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/andersfylling/disgord"

	"github.com/ndanilko/pomni/pkg/common"
	"github.com/ndanilko/pomni/pkg/services/reminders"
)

// Remove reminder cancellation command.
type Remove struct {
	engine *reminders.Engine
}

func Init(engine *reminders.Engine) *Remove {
	return &Remove{engine: engine}
}

func (*Remove) Name() string {
	return "remove"
}

func (*Remove) Aliases() []string {
	return []string{"rm", "delete", "del"}
}

func (*Remove) Description() string {
	return "Cancel a reminder of yours."
}

func (*Remove) Permission() common.PermissionLevel {
	return common.PermissionDefault
}

func (*Remove) Active() bool {
	return true
}

func (c *Remove) Execute(s common.MessageState) {
	userID := uint64(s.UserID())

	pending := c.engine.List(userID)
	if len(pending) == 0 {
		s.Reply("You currently don't have any reminders registered.")
		return
	}

	// Without an argument, cancel the most recently added reminder.
	id := pending[len(pending)-1].ID
	if len(s.UserCommandArgs()) != 0 {
		parsed, err := strconv.Atoi(s.UserCommandArgs()[0])
		if err != nil {
			s.Reply("Invalid reminder ID.")
			return
		}
		id = parsed
	}

	if !c.engine.Cancel(userID, id) {
		s.Reply("The reminder you're trying to cancel does not exist.")
		return
	}

	s.Reply(fmt.Sprintf("Cancelled reminder #%d.", id))
}

func (c *Remove) Help(s common.MessageState) {
	cmd := common.CommandPrefix + c.Name()
	fields := []*disgord.EmbedField{}

	// Command aliases.
	fields = append(fields, &disgord.EmbedField{
		Name:  "Aliases",
		Value: strings.Join(c.Aliases(), ", "),
	})

	// Usage example.
	fields = append(fields, &disgord.EmbedField{
		Name:  "[Example] Cancelling reminder #3",
		Value: fmt.Sprintf("%s 3", cmd),
	})

	// Usage example.
	fields = append(fields, &disgord.EmbedField{
		Name:  "[Example] Cancelling the most recently added reminder",
		Value: cmd,
	})

	embed := &disgord.Embed{
		Title:       fmt.Sprintf("Command \"%s\" usage", c.Name()),
		Description: fmt.Sprintf("%s [reminder ID?]", cmd),
		Color:       0xe5004c,
		Fields:      fields,
	}
	s.SendEmbed(embed)
}
