package server

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rowhist/whist-server/internal/export"
	"github.com/rowhist/whist-server/internal/whist"
	"github.com/rowhist/whist-server/pkg/models"
)

type addPlayerRequest struct {
	Name string `json:"name"`
}

type placeBidRequest struct {
	Bet int `json:"bet"`
}

// broadcastState pushes a fresh snapshot to the game's websocket
// subscribers. Lookup failures just mean the game is gone.
func (s *Server) broadcastState(gameID string) {
	var state models.GameState
	err := s.rooms.WithGame(gameID, func(g *whist.Game) error {
		state = toGameState(gameID, g)
		return nil
	})
	if err != nil {
		return
	}
	s.hub.Broadcast(gameID, state)
}

func (s *Server) createRoom(c echo.Context) error {
	gameID := s.rooms.CreateGame()
	return c.JSON(http.StatusCreated, map[string]string{"gameId": gameID})
}

func (s *Server) addPlayer(c echo.Context) error {
	var req addPlayerRequest
	if err := c.Bind(&req); err != nil || req.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "player name required")
	}
	playerID, err := s.rooms.AddPlayer(c.Param("gameId"), req.Name)
	if err != nil {
		return httpError(err)
	}
	s.broadcastState(c.Param("gameId"))
	return c.JSON(http.StatusCreated, map[string]string{"playerId": playerID})
}

func (s *Server) removePlayer(c echo.Context) error {
	if err := s.rooms.RemovePlayer(c.Param("gameId"), c.Param("playerId")); err != nil {
		return httpError(err)
	}
	s.broadcastState(c.Param("gameId"))
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) removeGame(c echo.Context) error {
	gameID := c.Param("gameId")
	if err := s.rooms.RemoveGame(gameID); err != nil {
		return httpError(err)
	}
	s.hub.CloseGame(gameID)
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) startGame(c echo.Context) error {
	gameID := c.Param("gameId")
	err := s.rooms.WithGame(gameID, func(g *whist.Game) error {
		return g.Start()
	})
	if err != nil {
		return httpError(err)
	}
	s.broadcastState(gameID)
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) gameState(c echo.Context) error {
	gameID := c.Param("gameId")
	var state models.GameState
	err := s.rooms.WithGame(gameID, func(g *whist.Game) error {
		state = toGameState(gameID, g)
		return nil
	})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, state)
}

func (s *Server) scoreTable(c echo.Context) error {
	var rows []models.ScoreTableRow
	err := s.rooms.WithGame(c.Param("gameId"), func(g *whist.Game) error {
		rows = toScoreTable(g.ScoreTable())
		return nil
	})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (s *Server) scoreTableCSV(c echo.Context) error {
	var rows []models.ScoreTableRow
	err := s.rooms.WithGame(c.Param("gameId"), func(g *whist.Game) error {
		rows = toScoreTable(g.ScoreTable())
		return nil
	})
	if err != nil {
		return httpError(err)
	}
	c.Response().Header().Set(echo.HeaderContentType, "text/csv")
	c.Response().WriteHeader(http.StatusOK)
	return export.WriteScoreTable(c.Response(), rows)
}

func (s *Server) availableBids(c echo.Context) error {
	var bids []int
	err := s.rooms.WithGame(c.Param("gameId"), func(g *whist.Game) error {
		var err error
		bids, err = g.AvailableBids(c.Param("playerId"))
		return err
	})
	if err != nil {
		return httpError(err)
	}
	if bids == nil {
		bids = []int{}
	}
	return c.JSON(http.StatusOK, bids)
}

func (s *Server) placeBid(c echo.Context) error {
	var req placeBidRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid bet")
	}
	gameID := c.Param("gameId")
	err := s.rooms.WithGame(gameID, func(g *whist.Game) error {
		return g.PlaceBid(c.Param("playerId"), req.Bet)
	})
	if err != nil {
		return httpError(err)
	}
	s.broadcastState(gameID)
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) playableCards(c echo.Context) error {
	var cards []whist.Card
	err := s.rooms.WithGame(c.Param("gameId"), func(g *whist.Game) error {
		var err error
		cards, err = g.PlayableCards(c.Param("playerId"))
		return err
	})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, toCards(cards))
}

func (s *Server) playCard(c echo.Context) error {
	var req models.Card
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid card")
	}
	gameID := c.Param("gameId")
	err := s.rooms.WithGame(gameID, func(g *whist.Game) error {
		return g.PlayCard(c.Param("playerId"), fromCard(req))
	})
	if err != nil {
		return httpError(err)
	}
	s.broadcastState(gameID)
	return c.NoContent(http.StatusNoContent)
}

// subscribe upgrades the connection and streams state snapshots until the
// client goes away.
func (s *Server) subscribe(c echo.Context) error {
	gameID := c.Param("gameId")

	var state models.GameState
	err := s.rooms.WithGame(gameID, func(g *whist.Game) error {
		state = toGameState(gameID, g)
		return nil
	})
	if err != nil {
		return httpError(err)
	}

	conn, err := s.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		log.Printf("WebSocket upgrade error: %v", err)
		return nil
	}
	defer conn.Close()

	s.hub.Add(gameID, conn)
	defer s.hub.Remove(gameID, conn)

	if err := conn.WriteJSON(state); err != nil {
		log.Printf("Error sending initial game state: %v", err)
		return nil
	}

	// Keep the connection alive and notice the disconnect.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	return nil
}
