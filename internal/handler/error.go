package handler

import (
	"fmt"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the JSON error envelope for every failed API call. The
// browser client and pkg/apiclient compare its message field against the
// shared unauthorized constant.
type ErrorResponse struct {
	Message string `json:"message"`
}

func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	switch e := err.(type) {
	case *echo.HTTPError:
		c.Logger().Errorf(
			"handler internal error %s [%d]: %+v\n",
			c.Request().URL.Path, e.Code, e.Internal,
		)
		if err := c.JSON(e.Code, ErrorResponse{Message: fmt.Sprintf("%v", e.Message)}); err != nil {
			log.Printf("err returning json: %+v\n", err)
		}
	default:
		c.Logger().Errorf("handler error: %+v\n", e)
		if err := c.JSON(
			http.StatusInternalServerError,
			ErrorResponse{Message: "something went terribly wrong"},
		); err != nil {
			log.Printf("err returning json: %+v\n", err)
		}
	}
}

func newError(c echo.Context, err error, status int, message string) error {
	e := echo.NewHTTPError(status, message)
	if err != nil {
		e = e.WithInternal(err)
	}
	return e
}
