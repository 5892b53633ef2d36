package bot

import (
	"fmt"
	"log"
	"time"

	"github.com/vkc/ponto_backendl/internal/services/discord"
)

const embedColorBlue = 0x3498DB

// handleIncidentScan counts flagged-phrase occurrences in the message and
// records one incident per occurrence. The reaction mirrors the outcome of
// the persistence step: ✅ only when every row landed.
func (d *Dispatcher) handleIncidentScan(ev *discord.MessageEvent) {
	now := time.Now().In(d.cfg.Location)
	matches, total, err := d.counter.CountAndRecord(ev.Content, ev.Author.ID, ev.Author.Username, now)
	if err != nil {
		log.Printf("Failed to record incidents for %s: %v", ev.Author.ID, err)
		if rerr := d.client.ReactToMessage(ev.ChannelID, ev.ID, "❌"); rerr != nil {
			log.Printf("WARN: failure reaction failed: %v", rerr)
		}
		return
	}
	if matches == 0 {
		return
	}

	dm := fmt.Sprintf("🚨 **Confirmação de Registro** 🚨\n"+
		"Olá! Sua prisão registrada foi contabilizada com sucesso.\n"+
		"Você registrou: **%d** prisão(ões).\n"+
		"Seu total agora é: **%d** prisões.", matches, total)
	if err := d.client.SendDirectMessage(ev.Author.ID, dm); err != nil {
		log.Printf("WARN: could not DM %s, user may have DMs disabled: %v", ev.Author.Username, err)
	}

	if err := d.client.ReactToMessage(ev.ChannelID, ev.ID, "✅"); err != nil {
		log.Printf("WARN: confirmation reaction failed: %v", err)
	}
}

// handleReportCommand answers !prisoes with the per-actor totals embed.
// Gated on the admin role.
func (d *Dispatcher) handleReportCommand(ev *discord.MessageEvent) {
	guildID := ev.GuildID
	if guildID == "" {
		guildID = d.cfg.GuildID
	}

	allowed, err := d.client.HasRole(guildID, ev.Author.ID, d.cfg.AdminRoleID)
	if err != nil {
		log.Printf("Role check failed for %s: %v", ev.Author.ID, err)
		d.post(ev.ChannelID, "Ocorreu um erro ao buscar o relatório de prisões.")
		return
	}
	if !allowed {
		d.post(ev.ChannelID, "Você não tem permissão para usar este comando.")
		return
	}

	report, err := d.counter.Report()
	if err != nil {
		log.Printf("Failed to build incident report: %v", err)
		d.post(ev.ChannelID, "Ocorreu um erro ao buscar o relatório de prisões.")
		return
	}
	if len(report) == 0 {
		d.post(ev.ChannelID, "Nenhuma prisão registrada ainda.")
		return
	}

	embed := discord.Embed{
		Title: "📊 Relatório de Prisões por Policial",
		Color: embedColorBlue,
	}
	for _, row := range report {
		embed.Fields = append(embed.Fields, discord.EmbedField{
			Name:  "👮 " + row.ActorLabel,
			Value: fmt.Sprintf("**%d** prisões", row.Total),
		})
	}
	if err := d.client.PostMessage(ev.ChannelID, &discord.MessagePayload{Embeds: []discord.Embed{embed}}); err != nil {
		log.Printf("Failed to post incident report: %v", err)
	}
}

func (d *Dispatcher) post(channelID, text string) {
	if err := d.client.PostToChannel(channelID, text); err != nil {
		log.Printf("Failed to post to channel %s: %v", channelID, err)
	}
}
