package bot

import "github.com/vkc/ponto_backendl/internal/services/discord"

// Logbook forwards shift events to the log channel. It satisfies
// shift.Notifier.
type Logbook struct {
	client    *discord.Client
	channelID string
}

func NewLogbook(client *discord.Client, channelID string) *Logbook {
	return &Logbook{client: client, channelID: channelID}
}

func (l *Logbook) PostShiftEvent(text string) error {
	return l.client.PostToChannel(l.channelID, text)
}
