package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/go-clean-forum/domain"
	"github.com/Guyuepp/go-clean-forum/internal/rest/response"
)

type likeHandler struct {
	Service domain.LikeUsecase
}

func NewLikeHandler(svc domain.LikeUsecase) *likeHandler {
	return &likeHandler{
		Service: svc,
	}
}

// PutLike toggles the caller's like on the comment.
func (h *likeHandler) PutLike(c *gin.Context) {
	uid, err := userID(c)
	if err != nil {
		abortWithError(c, err)
		return
	}

	liked, err := h.Service.LikeOrDislikeComment(c.Request.Context(), uid, commentParams(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(gin.H{"liked": liked}))
}
