package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/go-clean-forum/domain"
	"github.com/Guyuepp/go-clean-forum/internal/rest/response"
)

const (
	msgMissingProperty = "Missing required property"
	msgWrongDataType   = "Invalid data type"
)

// getStatusCode will get the code of the error from the usecases
func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	switch {
	case domain.Is[*domain.ValidationError](err):
		return http.StatusBadRequest
	case domain.Is[*domain.NotFoundError](err):
		return http.StatusNotFound
	case domain.Is[*domain.AuthorizationError](err):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrBadParamInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// errorMessage hides internals of server errors and translates validation codes.
func errorMessage(code int, err error) string {
	if code >= http.StatusInternalServerError {
		return domain.ErrInternalServerError.Error()
	}
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		switch {
		case verr.MissingProperty():
			return msgMissingProperty
		case verr.WrongDataType():
			return msgWrongDataType
		}
	}
	return err.Error()
}

func abortWithError(c *gin.Context, err error) {
	code := getStatusCode(err)
	if code >= http.StatusInternalServerError {
		logrus.Errorf("%s %s: %v", c.Request.Method, c.FullPath(), err)
	} else {
		logrus.Debugf("%s %s: %v", c.Request.Method, c.FullPath(), err)
	}
	c.AbortWithStatusJSON(code, response.Failure(code, errorMessage(code, err)))
}

// NotFound answers unknown routes.
func NotFound(c *gin.Context) {
	abortWithError(c, domain.ErrNotFound)
}
