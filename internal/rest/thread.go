package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/go-clean-forum/domain"
	"github.com/Guyuepp/go-clean-forum/internal/rest/request"
	"github.com/Guyuepp/go-clean-forum/internal/rest/response"
)

// ThreadHandler represent the httphandler for thread
type ThreadHandler struct {
	Service domain.ThreadUsecase
}

func NewThreadHandler(svc domain.ThreadUsecase) *ThreadHandler {
	return &ThreadHandler{
		Service: svc,
	}
}

// PostThread will store the thread by given request body
func (h *ThreadHandler) PostThread(c *gin.Context) {
	uid, err := userID(c)
	if err != nil {
		abortWithError(c, err)
		return
	}
	payload, err := request.BindPayload(c)
	if err != nil {
		abortWithError(c, err)
		return
	}

	added, err := h.Service.AddThread(c.Request.Context(), uid, payload)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(gin.H{
		"addedThread": response.NewAddedThreadFromDomain(added),
	}))
}

// GetThreadByID will get the thread with its comments and replies
func (h *ThreadHandler) GetThreadByID(c *gin.Context) {
	detail, err := h.Service.GetThreadDetail(c.Request.Context(), c.Param("threadId"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(gin.H{
		"thread": response.NewThreadDetailFromDomain(detail),
	}))
}
