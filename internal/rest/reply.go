package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/go-clean-forum/domain"
	"github.com/Guyuepp/go-clean-forum/internal/rest/request"
	"github.com/Guyuepp/go-clean-forum/internal/rest/response"
)

type replyHandler struct {
	Service domain.ReplyUsecase
}

func NewReplyHandler(svc domain.ReplyUsecase) *replyHandler {
	return &replyHandler{
		Service: svc,
	}
}

func (h *replyHandler) PostReply(c *gin.Context) {
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

	added, err := h.Service.AddReply(c.Request.Context(), uid, commentParams(c), payload)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(gin.H{
		"addedReply": response.NewAddedReplyFromDomain(added),
	}))
}

func (h *replyHandler) DeleteReply(c *gin.Context) {
	uid, err := userID(c)
	if err != nil {
		abortWithError(c, err)
		return
	}

	params := domain.ReplyParams{
		ThreadID:  c.Param("threadId"),
		CommentID: c.Param("commentId"),
		ReplyID:   c.Param("replyId"),
	}
	if err := h.Service.DeleteReply(c.Request.Context(), uid, params); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(nil))
}

// GetReplies lists the replies of one comment.
func (h *replyHandler) GetReplies(c *gin.Context) {
	replies, err := h.Service.GetCommentReplies(c.Request.Context(), commentParams(c))
	if err != nil {
		abortWithError(c, err)
		return
	}

	res := make([]response.ReplyDetail, len(replies))
	for i := range replies {
		res[i] = response.NewReplyDetailFromDomain(replies[i])
	}
	c.JSON(http.StatusOK, response.Success(gin.H{"replies": res}))
}
