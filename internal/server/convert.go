package server

import (
	"github.com/rowhist/whist-server/internal/whist"
	"github.com/rowhist/whist-server/pkg/models"
)

func toCard(c whist.Card) models.Card {
	return models.Card{CardNumber: c.Rank, CardType: int(c.Suit)}
}

func fromCard(c models.Card) whist.Card {
	return whist.Card{Rank: c.CardNumber, Suit: whist.Suit(c.CardType)}
}

func toCards(cards []whist.Card) []models.Card {
	out := make([]models.Card, len(cards))
	for i, c := range cards {
		out[i] = toCard(c)
	}
	return out
}

func toUser(p *whist.Player) models.User {
	return models.User{ID: p.ID, Name: p.Name}
}

func toScoreTable(rounds []*whist.Round) []models.ScoreTableRow {
	rows := make([]models.ScoreTableRow, len(rounds))
	for i, r := range rounds {
		row := models.ScoreTableRow{
			GameNumber:    r.Number,
			NrOfCards:     r.HandSize,
			PlayersData:   make([]models.PlayerData, len(r.Players)),
			HasBeenPlayed: r.Played,
		}
		for seat, ps := range r.Players {
			pd := models.PlayerData{
				User:          toUser(ps.Player),
				ActualScore:   ps.TricksWon,
				Points:        ps.Points,
				IsFirstPlayer: ps.FirstPlayer,
			}
			if ps.Bid != whist.BidUnset {
				bid := ps.Bid
				pd.Bet = &bid
			}
			row.PlayersData[seat] = pd
		}
		rows[i] = row
	}
	return rows
}

// toGameState builds the public snapshot of a game. Hands stay private;
// players see their own cards through the playable-cards endpoint.
func toGameState(gameID string, g *whist.Game) models.GameState {
	state := models.GameState{
		GameID:     gameID,
		Phase:      g.Phase.String(),
		Users:      make([]models.User, len(g.Players)),
		Table:      toCards(g.Table),
		ScoreTable: toScoreTable(g.Rounds),
	}
	for i, p := range g.Players {
		state.Users[i] = toUser(p)
	}
	if g.TrumpCard != nil {
		c := toCard(*g.TrumpCard)
		state.TrumpCard = &c
	}
	return state
}
