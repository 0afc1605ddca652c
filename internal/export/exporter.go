// Package export renders score tables in CSV form for download.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/rowhist/whist-server/pkg/models"
)

// WriteScoreTable writes the full score table as CSV: one row per round,
// with a bid/tricks/points column group per seated player.
func WriteScoreTable(w io.Writer, rows []models.ScoreTableRow) error {
	writer := csv.NewWriter(w)

	header := []string{"Round", "HandSize", "Played"}
	if len(rows) > 0 {
		for _, pd := range rows[0].PlayersData {
			header = append(header,
				fmt.Sprintf("%s_Bet", pd.User.Name),
				fmt.Sprintf("%s_Tricks", pd.User.Name),
				fmt.Sprintf("%s_Points", pd.User.Name),
			)
		}
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, row := range rows {
		record := []string{
			fmt.Sprintf("%d", row.GameNumber),
			fmt.Sprintf("%d", row.NrOfCards),
			fmt.Sprintf("%t", row.HasBeenPlayed),
		}
		for _, pd := range row.PlayersData {
			bet := ""
			if pd.Bet != nil {
				bet = fmt.Sprintf("%d", *pd.Bet)
			}
			record = append(record,
				bet,
				fmt.Sprintf("%d", pd.ActualScore),
				fmt.Sprintf("%d", pd.Points),
			)
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
