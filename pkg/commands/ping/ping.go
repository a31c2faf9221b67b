package ping

import (
	"github.com/andersfylling/disgord"

	"github.com/ndanilko/pomni/pkg/common"
)

// Ping Ping-Pong command.
type Ping struct{}

func Init() *Ping {
	return &Ping{}
}

func (*Ping) Name() string {
	return "ping"
}

func (*Ping) Aliases() []string {
	return []string{}
}

func (*Ping) Description() string {
	return "Test command. Send a ping, receive a pong."
}

func (*Ping) Permission() common.PermissionLevel {
	return common.PermissionDefault
}

func (*Ping) Active() bool {
	return true
}

func (*Ping) Execute(s common.MessageState) {
	s.Send("pong")
}

func (p *Ping) Help(s common.MessageState) {
	// Unnecessary but I'll leave it as a template for upcomming commands.
	embed := &disgord.Embed{
		Title:       "Command \"" + p.Name() + "\" usage",
		Description: common.CommandPrefix + p.Name(),
		Color:       0xe5004c,
	}
	s.SendEmbed(embed)
}
