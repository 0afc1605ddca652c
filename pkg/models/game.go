package models

// User is the wire form of a seated player.
type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Card is the wire form of a playing card. CardType is the suit
// (0 hearts, 1 diamonds, 2 clubs, 3 spades).
type Card struct {
	CardNumber int `json:"cardNumber"`
	CardType   int `json:"cardType"`
}

// PlayerData is one player's slice of a score table row. Bet is nil until
// the player has declared a bid for that round.
type PlayerData struct {
	User          User `json:"user"`
	Bet           *int `json:"bet,omitempty"`
	ActualScore   int  `json:"actualScore"`
	Points        int  `json:"points"`
	IsFirstPlayer bool `json:"isFirstPlayer"`
}

// ScoreTableRow is one scheduled round of a game.
type ScoreTableRow struct {
	GameNumber    int          `json:"gameNumber"`
	NrOfCards     int          `json:"nrOfCards"`
	PlayersData   []PlayerData `json:"playersData"`
	HasBeenPlayed bool         `json:"hasBeenPlayed"`
}

// GameState is the public snapshot of a running game, pushed to websocket
// subscribers after every change and served on the REST surface.
type GameState struct {
	GameID     string          `json:"gameId"`
	Phase      string          `json:"phase"`
	Users      []User          `json:"users"`
	TrumpCard  *Card           `json:"trumpCard,omitempty"`
	Table      []Card          `json:"table"`
	ScoreTable []ScoreTableRow `json:"scoreTable"`
}
