// services/sheets/mirror.go
package sheets

import (
	"context"
	"fmt"
	"log"
	"time"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/vkc/ponto_backendl/internal/models"
)

// Mirror appends closed shifts to a shared Google spreadsheet. It is a
// best-effort side channel: every failure is logged and swallowed. A nil
// Mirror is valid and does nothing.
type Mirror struct {
	spreadsheetID string
	srv           *sheets.Service
}

// NewMirror returns nil (disabled) when either setting is empty.
func NewMirror(credentialsFile, spreadsheetID string) (*Mirror, error) {
	if credentialsFile == "" || spreadsheetID == "" {
		return nil, nil
	}

	srv, err := sheets.NewService(context.Background(), option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("init sheets service: %w", err)
	}
	return &Mirror{spreadsheetID: spreadsheetID, srv: srv}, nil
}

func (m *Mirror) AppendShift(rec *models.ShiftRecord) {
	if m == nil {
		return
	}

	vr := &sheets.ValueRange{
		Values: [][]interface{}{{
			rec.ActorID,
			rec.ActorLabel,
			rec.StartedAt.Format(time.RFC3339),
			rec.EndedAt.Format(time.RFC3339),
			rec.DurationText,
		}},
	}
	_, err := m.srv.Spreadsheets.Values.
		Append(m.spreadsheetID, "A1", vr).
		ValueInputOption("RAW").
		Do()
	if err != nil {
		log.Printf("WARN: sheets mirror append failed: %v", err)
	}
}
