package bot

import (
	"log"
	"strings"

	"github.com/vkc/ponto_backendl/config"
	"github.com/vkc/ponto_backendl/internal/services/discord"
	"github.com/vkc/ponto_backendl/internal/services/moderation"
	"github.com/vkc/ponto_backendl/internal/services/sheets"
	"github.com/vkc/ponto_backendl/internal/services/shift"
)

const (
	customIDEntrada = "ponto_entrada_button"
	customIDSaida   = "ponto_saida_button"

	reportCommand = "!prisoes"
)

// Dispatcher routes gateway events to the shift and incident handlers.
// It implements discord.EventHandler; events arrive one at a time from the
// gateway read loop, and the tracker's own lock covers re-entrant
// double-presses anyway.
type Dispatcher struct {
	cfg     *config.Config
	client  *discord.Client
	tracker *shift.Tracker
	counter *moderation.Counter
	mirror  *sheets.Mirror
}

func NewDispatcher(cfg *config.Config, client *discord.Client, tracker *shift.Tracker,
	counter *moderation.Counter, mirror *sheets.Mirror) *Dispatcher {
	return &Dispatcher{
		cfg:     cfg,
		client:  client,
		tracker: tracker,
		counter: counter,
		mirror:  mirror,
	}
}

// OnReady posts a fresh punch-clock message so the buttons are always live,
// even after a restart.
func (d *Dispatcher) OnReady() {
	msg := &discord.MessagePayload{
		Content: "🕒 **Sistema de Ponto** — use os botões abaixo:",
		Components: []discord.ActionRow{{
			Type: discord.ComponentActionRow,
			Components: []discord.Button{
				{Type: discord.ComponentButton, Style: discord.ButtonStyleSuccess, Label: "📥 Entrada", CustomID: customIDEntrada},
				{Type: discord.ComponentButton, Style: discord.ButtonStyleDanger, Label: "📤 Saída", CustomID: customIDSaida},
			},
		}},
	}
	if err := d.client.PostMessage(d.cfg.PontoChannelID, msg); err != nil {
		log.Printf("Failed to post punch-clock message: %v", err)
		return
	}
	log.Println("✅ Punch-clock message posted")
}

func (d *Dispatcher) OnInteraction(ev *discord.InteractionEvent) {
	if ev.Type != discord.InteractionTypeComponent {
		return
	}
	switch ev.CustomID {
	case customIDEntrada:
		d.handleEntrada(ev)
	case customIDSaida:
		d.handleSaida(ev)
	}
}

func (d *Dispatcher) OnMessage(ev *discord.MessageEvent) {
	if ev.Author.Bot {
		return
	}

	// commands work anywhere, like the prefix commands they replace
	if strings.TrimSpace(ev.Content) == reportCommand {
		d.handleReportCommand(ev)
		return
	}

	if ev.ChannelID != d.cfg.PrisoesChannel {
		return
	}
	d.handleIncidentScan(ev)
}

// replyEphemeral answers a button press with a message only the presser sees.
func (d *Dispatcher) replyEphemeral(ev *discord.InteractionEvent, text string) {
	resp := &discord.InteractionResponse{
		Type: discord.ResponseChannelMessage,
		Data: &discord.InteractionResponseData{
			Content: text,
			Flags:   discord.MessageFlagEphemeral,
		},
	}
	if err := d.client.RespondToInteraction(ev.ID, ev.Token, resp); err != nil {
		log.Printf("Failed to respond to interaction %s: %v", ev.ID, err)
	}
}
