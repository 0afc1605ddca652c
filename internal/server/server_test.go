package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/rowhist/whist-server/internal/room"
	"github.com/rowhist/whist-server/pkg/models"
)

type harness struct {
	t *testing.T
	e *echo.Echo
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	return &harness{t: t, e: New(room.NewRegistry(7)).Router()}
}

func (h *harness) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	h.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			h.t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	h.e.ServeHTTP(rec, req)
	return rec
}

func (h *harness) decode(rec *httptest.ResponseRecorder, v interface{}) {
	h.t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		h.t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
}

func (h *harness) createRoom() string {
	rec := h.do(http.MethodPost, "/romanian-whist/rooms", nil)
	if rec.Code != http.StatusCreated {
		h.t.Fatalf("create room status = %d", rec.Code)
	}
	var resp map[string]string
	h.decode(rec, &resp)
	return resp["gameId"]
}

func (h *harness) addPlayer(gameID, name string) string {
	rec := h.do(http.MethodPost, "/romanian-whist/rooms/"+gameID+"/players", map[string]string{"name": name})
	if rec.Code != http.StatusCreated {
		h.t.Fatalf("add player status = %d: %s", rec.Code, rec.Body.String())
	}
	var resp map[string]string
	h.decode(rec, &resp)
	return resp["playerId"]
}

func (h *harness) state(gameID string) models.GameState {
	rec := h.do(http.MethodGet, "/romanian-whist/games/"+gameID+"/state", nil)
	if rec.Code != http.StatusOK {
		h.t.Fatalf("state status = %d", rec.Code)
	}
	var state models.GameState
	h.decode(rec, &state)
	return state
}

func TestRoomLifecycle(t *testing.T) {
	h := newHarness(t)
	gameID := h.createRoom()

	playerID := h.addPlayer(gameID, "Ana")

	if rec := h.do(http.MethodPost, "/romanian-whist/rooms/"+gameID+"/players", map[string]string{"name": "Ana"}); rec.Code != http.StatusConflict {
		t.Errorf("duplicate name status = %d, want 409", rec.Code)
	}
	if rec := h.do(http.MethodPost, "/romanian-whist/rooms/"+gameID+"/players", map[string]string{}); rec.Code != http.StatusBadRequest {
		t.Errorf("missing name status = %d, want 400", rec.Code)
	}
	if rec := h.do(http.MethodPost, "/romanian-whist/rooms/missing/players", map[string]string{"name": "Bea"}); rec.Code != http.StatusNotFound {
		t.Errorf("unknown game status = %d, want 404", rec.Code)
	}

	if rec := h.do(http.MethodDelete, "/romanian-whist/rooms/"+gameID+"/players/"+playerID, nil); rec.Code != http.StatusNoContent {
		t.Errorf("remove player status = %d, want 204", rec.Code)
	}
	if rec := h.do(http.MethodDelete, "/romanian-whist/rooms/"+gameID, nil); rec.Code != http.StatusNoContent {
		t.Errorf("remove game status = %d, want 204", rec.Code)
	}
	if rec := h.do(http.MethodGet, "/romanian-whist/games/"+gameID+"/state", nil); rec.Code != http.StatusNotFound {
		t.Errorf("state of removed game status = %d, want 404", rec.Code)
	}
}

func TestStartGameValidation(t *testing.T) {
	h := newHarness(t)
	gameID := h.createRoom()
	h.addPlayer(gameID, "Ana")

	if rec := h.do(http.MethodPost, "/romanian-whist/rooms/"+gameID+"/start", nil); rec.Code != http.StatusConflict {
		t.Errorf("start with one player status = %d, want 409", rec.Code)
	}

	h.addPlayer(gameID, "Bea")
	if rec := h.do(http.MethodPost, "/romanian-whist/rooms/"+gameID+"/start", nil); rec.Code != http.StatusNoContent {
		t.Fatalf("start status = %d: %s", rec.Code, rec.Body.String())
	}
	if rec := h.do(http.MethodPost, "/romanian-whist/rooms/"+gameID+"/start", nil); rec.Code != http.StatusConflict {
		t.Errorf("second start status = %d, want 409", rec.Code)
	}
}

// TestGameFlow drives round 1 of a four-player game through the REST
// surface only: bids in seat order, plays in derived turn order, then the
// score table after the trick.
func TestGameFlow(t *testing.T) {
	h := newHarness(t)
	gameID := h.createRoom()

	names := []string{"Ana", "Bea", "Cristi", "Dan"}
	ids := make([]string, len(names))
	for i, name := range names {
		ids[i] = h.addPlayer(gameID, name)
	}

	if rec := h.do(http.MethodPost, "/romanian-whist/rooms/"+gameID+"/start", nil); rec.Code != http.StatusNoContent {
		t.Fatalf("start status = %d: %s", rec.Code, rec.Body.String())
	}

	state := h.state(gameID)
	if state.Phase != "betting" {
		t.Fatalf("phase = %q, want betting", state.Phase)
	}
	if state.TrumpCard == nil {
		t.Fatal("round 1 should reveal a trump indicator")
	}

	// Out-of-turn bid and bid listing.
	if rec := h.do(http.MethodPost, fmt.Sprintf("/romanian-whist/games/%s/players/%s/bets", gameID, ids[1]), placeBidRequest{Bet: 0}); rec.Code != http.StatusConflict {
		t.Errorf("out-of-turn bid status = %d, want 409", rec.Code)
	}
	var bids []int
	rec := h.do(http.MethodGet, fmt.Sprintf("/romanian-whist/games/%s/players/%s/bets", gameID, ids[1]), nil)
	h.decode(rec, &bids)
	if len(bids) != 0 {
		t.Errorf("out-of-turn player offered bids %v", bids)
	}

	// Bids in seat order; the hook rule pins the last one to 0.
	for i, id := range ids {
		rec := h.do(http.MethodGet, fmt.Sprintf("/romanian-whist/games/%s/players/%s/bets", gameID, id), nil)
		h.decode(rec, &bids)
		if i == 3 && (len(bids) != 1 || bids[0] != 0) {
			t.Fatalf("last bidder offered %v, want [0]", bids)
		}
		if rec := h.do(http.MethodPost, fmt.Sprintf("/romanian-whist/games/%s/players/%s/bets", gameID, id), placeBidRequest{Bet: bids[0]}); rec.Code != http.StatusNoContent {
			t.Fatalf("bid %d status = %d: %s", i, rec.Code, rec.Body.String())
		}
	}

	if state := h.state(gameID); state.Phase != "playing" {
		t.Fatalf("phase after bids = %q, want playing", state.Phase)
	}

	// Play the single trick, deriving the turn from the public state.
	for i := 0; i < len(ids); i++ {
		state := h.state(gameID)
		row := currentRow(t, state)
		leader := -1
		for seat, pd := range row.PlayersData {
			if pd.IsFirstPlayer {
				leader = seat
			}
		}
		if leader < 0 {
			t.Fatal("no first player in current row")
		}
		turnID := row.PlayersData[(leader+len(state.Table))%len(ids)].User.ID

		var cards []models.Card
		rec := h.do(http.MethodGet, fmt.Sprintf("/romanian-whist/games/%s/players/%s/cards", gameID, turnID), nil)
		h.decode(rec, &cards)
		if len(cards) != 1 {
			t.Fatalf("playable cards = %v, want one", cards)
		}
		if rec := h.do(http.MethodPost, fmt.Sprintf("/romanian-whist/games/%s/players/%s/cards", gameID, turnID), cards[0]); rec.Code != http.StatusNoContent {
			t.Fatalf("play %d status = %d: %s", i, rec.Code, rec.Body.String())
		}
	}

	// Round 1 is scored and round 2 is live.
	var rows []models.ScoreTableRow
	rec = h.do(http.MethodGet, "/romanian-whist/games/"+gameID+"/score", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("score status = %d", rec.Code)
	}
	h.decode(rec, &rows)
	if !rows[0].HasBeenPlayed {
		t.Error("round 1 not marked played")
	}
	total := 0
	for _, pd := range rows[0].PlayersData {
		total += pd.Points
	}
	if total != 16 { // three made 0-bids (+5 each) and one missed by one (+1)
		t.Errorf("round 1 points total = %d, want 16", total)
	}

	// Repeated reads return byte-identical score tables.
	again := h.do(http.MethodGet, "/romanian-whist/games/"+gameID+"/score", nil)
	if !bytes.Equal(rec.Body.Bytes(), again.Body.Bytes()) {
		t.Error("score table reads differ without intervening mutations")
	}

	// CSV export mirrors the same table.
	csvRec := h.do(http.MethodGet, "/romanian-whist/games/"+gameID+"/score.csv", nil)
	if csvRec.Code != http.StatusOK {
		t.Fatalf("csv status = %d", csvRec.Code)
	}
	if !strings.HasPrefix(csvRec.Body.String(), "Round,HandSize,Played") {
		t.Errorf("csv header = %q", strings.SplitN(csvRec.Body.String(), "\n", 2)[0])
	}
}

func currentRow(t *testing.T, state models.GameState) models.ScoreTableRow {
	t.Helper()
	for _, row := range state.ScoreTable {
		if !row.HasBeenPlayed {
			return row
		}
	}
	t.Fatal("no unplayed row in score table")
	return models.ScoreTableRow{}
}
