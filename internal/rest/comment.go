package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/go-clean-forum/domain"
	"github.com/Guyuepp/go-clean-forum/internal/rest/request"
	"github.com/Guyuepp/go-clean-forum/internal/rest/response"
)

type commentHandler struct {
	Service domain.CommentUsecase
}

func NewCommentHandler(svc domain.CommentUsecase) *commentHandler {
	return &commentHandler{
		Service: svc,
	}
}

func commentParams(c *gin.Context) domain.CommentParams {
	return domain.CommentParams{
		ThreadID:  c.Param("threadId"),
		CommentID: c.Param("commentId"),
	}
}

func (h *commentHandler) PostComment(c *gin.Context) {
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

	added, err := h.Service.AddComment(c.Request.Context(), uid, c.Param("threadId"), payload)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(gin.H{
		"addedComment": response.NewAddedCommentFromDomain(added),
	}))
}

func (h *commentHandler) DeleteComment(c *gin.Context) {
	uid, err := userID(c)
	if err != nil {
		abortWithError(c, err)
		return
	}

	if err := h.Service.DeleteComment(c.Request.Context(), uid, commentParams(c)); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(nil))
}
