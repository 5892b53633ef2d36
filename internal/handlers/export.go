package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/vkc/ponto_backendl/internal/pkg/response"
	"github.com/vkc/ponto_backendl/internal/repositories"
)

// ExportShiftHistoryHandler streams the closed-shift history as an xlsx
// workbook.
func ExportShiftHistoryHandler(repo *repositories.ShiftRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := repo.ListHistory(0)
		if err != nil {
			log.Printf("DB query error (shift export): %v", err)
			response.RespondWithError(w, http.StatusInternalServerError, "Database error")
			return
		}

		f := excelize.NewFile()
		defer f.Close()
		sheet := f.GetSheetName(0)

		header := []interface{}{"ID", "Usuário", "Nome", "Entrada", "Saída", "Tempo total"}
		if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
			log.Printf("Failed to write export header: %v", err)
			response.RespondWithError(w, http.StatusInternalServerError, "Export error")
			return
		}

		for i, rec := range records {
			row := []interface{}{
				rec.ID,
				rec.ActorID,
				rec.ActorLabel,
				rec.StartedAt.Format("2006-01-02 15:04:05"),
				rec.EndedAt.Format("2006-01-02 15:04:05"),
				rec.DurationText,
			}
			cell := fmt.Sprintf("A%d", i+2)
			if err := f.SetSheetRow(sheet, cell, &row); err != nil {
				log.Printf("Failed to write export row %d: %v", i, err)
				response.RespondWithError(w, http.StatusInternalServerError, "Export error")
				return
			}
		}

		filename := fmt.Sprintf("registros_%s.xlsx", time.Now().Format("2006-01-02"))
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
		if err := f.Write(w); err != nil {
			log.Printf("Failed to stream export: %v", err)
		}
	}
}
