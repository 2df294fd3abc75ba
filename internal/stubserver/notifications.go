package stubserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

func (s *Server) handleListNotifications(c echo.Context) error {
	unreadOnly, _ := strconv.ParseBool(c.QueryParam("unread_only"))
	return c.JSON(http.StatusOK, s.store.listNotifications(userID(c), unreadOnly))
}

func (s *Server) handleMarkRead(c echo.Context) error {
	n, err := s.store.markNotificationRead(userID(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, n)
}
