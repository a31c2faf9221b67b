package core

import (
	"github.com/andersfylling/disgord"
)

// Gateway adapts the Disgord client to the numeric-ID delivery interface the
// reminder engine and the digest service expect.
type Gateway struct {
	client *disgord.Client
}

func NewGateway(client *disgord.Client) *Gateway {
	return &Gateway{client: client}
}

// SendDM opens (or reuses) the user's DM channel and sends the text.
func (g *Gateway) SendDM(userID uint64, text string) error {
	ch, err := g.client.CreateDM(disgord.NewSnowflake(userID))
	if err != nil {
		return err
	}

	_, err = g.client.SendMsg(ch.ID, text)
	return err
}
