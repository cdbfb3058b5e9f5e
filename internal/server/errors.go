package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/specboard/internal/handlers"
	appmiddleware "github.com/nfrund/specboard/internal/middleware"
)

// newErrorHandler renders errors under /api as JSON {"error": ...} and leaves
// everything else to echo's default handler. Internal details are only
// exposed in debug mode.
func newErrorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		if !isAPIPath(c.Request().URL.Path) {
			e.DefaultHTTPErrorHandler(err, c)
			return
		}

		code := http.StatusInternalServerError
		resp := handlers.ErrorResponse{Error: handlers.MsgInternal}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			switch {
			case code == http.StatusNotFound:
				resp.Error = handlers.MsgNotFound
			case code < http.StatusInternalServerError:
				resp.Error = strings.ToLower(http.StatusText(code))
			}
		}
		if code >= http.StatusInternalServerError {
			appmiddleware.FromContext(c.Request().Context()).Error("API request failed", "error", err)
			if e.Debug {
				resp.Detail = err.Error()
			}
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, resp)
		}
		if err != nil {
			e.Logger.Error(err)
		}
	}
}

func isAPIPath(path string) bool {
	return path == "/api" || strings.HasPrefix(path, "/api/")
}
