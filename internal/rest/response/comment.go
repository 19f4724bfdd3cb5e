package response

import "github.com/Guyuepp/go-clean-forum/domain"

type AddedComment struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Owner   string `json:"owner"`
}

func NewAddedCommentFromDomain(c domain.AddedComment) AddedComment {
	return AddedComment{ID: c.ID, Content: c.Content, Owner: c.Owner}
}

type CommentDetail struct {
	ID        string        `json:"id"`
	Username  string        `json:"username"`
	Date      string        `json:"date"`
	Replies   []ReplyDetail `json:"replies"`
	Content   string        `json:"content"`
	LikeCount int           `json:"likeCount"`
}

func NewCommentDetailFromDomain(c domain.CommentDetail) CommentDetail {
	replies := make([]ReplyDetail, len(c.Replies))
	for i := range c.Replies {
		replies[i] = NewReplyDetailFromDomain(c.Replies[i])
	}
	return CommentDetail{
		ID:        c.ID,
		Username:  c.Username,
		Date:      c.Date,
		Replies:   replies,
		Content:   c.Content,
		LikeCount: c.LikeCount,
	}
}
