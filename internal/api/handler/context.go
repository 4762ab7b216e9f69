package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apimw "github.com/electriclarrys/shop-api/internal/api/middleware"
)

// callerIdentity extracts the identity injected by the Auth middleware
// and fast-fails when it is absent: a non-empty username proves the
// middleware ran before the handler.
func callerIdentity(c echo.Context) (userID, username string, isAdmin bool, err error) {
	username, _ = c.Get(apimw.CtxUsername).(string)
	if username == "" {
		return "", "", false, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	userID, _ = c.Get(apimw.CtxUserID).(string)
	isAdmin, _ = c.Get(apimw.CtxIsAdmin).(bool)
	return userID, username, isAdmin, nil
}
