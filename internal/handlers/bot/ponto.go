package bot

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/vkc/ponto_backendl/internal/services/discord"
	"github.com/vkc/ponto_backendl/internal/services/shift"
)

func (d *Dispatcher) handleEntrada(ev *discord.InteractionEvent) {
	startedAt, err := d.tracker.Open(ev.User.ID, ev.User.Username, time.Now())
	if errors.Is(err, shift.ErrShiftAlreadyOpen) {
		d.replyEphemeral(ev, fmt.Sprintf("<@%s>, você já tem um ponto em aberto!", ev.User.ID))
		return
	}
	if err != nil {
		log.Printf("Failed to open shift for %s: %v", ev.User.ID, err)
		d.replyEphemeral(ev, "❌ Ocorreu um erro ao registrar sua entrada.")
		return
	}

	d.replyEphemeral(ev, fmt.Sprintf("<@%s> bateu ponto de **entrada** às %s.",
		ev.User.ID, startedAt.Format("15:04:05")))
}

func (d *Dispatcher) handleSaida(ev *discord.InteractionEvent) {
	rec, err := d.tracker.Close(ev.User.ID, time.Now())
	if errors.Is(err, shift.ErrShiftNotOpen) {
		d.replyEphemeral(ev, fmt.Sprintf("<@%s>, você não registrou entrada!", ev.User.ID))
		return
	}
	if err != nil {
		log.Printf("Failed to close shift for %s: %v", ev.User.ID, err)
		d.replyEphemeral(ev, "❌ Ocorreu um erro ao registrar sua saída.")
		return
	}

	d.replyEphemeral(ev, fmt.Sprintf("<@%s> bateu ponto de **saída** às %s.\n⏱️ Tempo de serviço: %s",
		ev.User.ID, rec.EndedAt.Format("15:04:05"), rec.DurationText))

	d.mirror.AppendShift(rec)
}
