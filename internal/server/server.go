// Package server is the thin routing layer: it translates HTTP requests
// into engine operations and engine errors into status codes. No game rules
// live here.
package server

import (
	"errors"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/rowhist/whist-server/internal/room"
	"github.com/rowhist/whist-server/internal/whist"
)

type Server struct {
	rooms    *room.Registry
	hub      *Hub
	upgrader websocket.Upgrader
}

func New(rooms *room.Registry) *Server {
	return &Server{
		rooms: rooms,
		hub:   NewHub(),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true // Allow all origins in development
			},
		},
	}
}

// Router builds the echo instance with all routes mounted.
func (s *Server) Router() *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.GET("/ping", func(c echo.Context) error {
		return c.String(http.StatusOK, "pong")
	})

	rw := e.Group("/romanian-whist")
	rw.POST("/rooms", s.createRoom)
	rw.POST("/rooms/:gameId/players", s.addPlayer)
	rw.DELETE("/rooms/:gameId/players/:playerId", s.removePlayer)
	rw.DELETE("/rooms/:gameId", s.removeGame)
	rw.POST("/rooms/:gameId/start", s.startGame)
	rw.GET("/games/:gameId/state", s.gameState)
	rw.GET("/games/:gameId/score", s.scoreTable)
	rw.GET("/games/:gameId/score.csv", s.scoreTableCSV)
	rw.GET("/games/:gameId/players/:playerId/bets", s.availableBids)
	rw.POST("/games/:gameId/players/:playerId/bets", s.placeBid)
	rw.GET("/games/:gameId/players/:playerId/cards", s.playableCards)
	rw.POST("/games/:gameId/players/:playerId/cards", s.playCard)
	rw.GET("/games/:gameId/ws", s.subscribe)

	return e
}

// httpError maps engine error kinds onto HTTP statuses: unknown references
// are 404, everything the rules reject is 409.
func httpError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, whist.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, whist.ErrOutOfTurn),
		errors.Is(err, whist.ErrInvalidAction),
		errors.Is(err, whist.ErrNotReady):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
