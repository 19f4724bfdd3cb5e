package response

import "github.com/Guyuepp/go-clean-forum/domain"

type AddedThread struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Owner string `json:"owner"`
}

func NewAddedThreadFromDomain(t domain.AddedThread) AddedThread {
	return AddedThread{ID: t.ID, Title: t.Title, Owner: t.Owner}
}

type ThreadDetail struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Body     string          `json:"body"`
	Date     string          `json:"date"`
	Username string          `json:"username"`
	Comments []CommentDetail `json:"comments"`
}

// NewThreadDetailFromDomain: Domain -> Response
func NewThreadDetailFromDomain(t domain.ThreadDetail) ThreadDetail {
	comments := make([]CommentDetail, len(t.Comments))
	for i := range t.Comments {
		comments[i] = NewCommentDetailFromDomain(t.Comments[i])
	}
	return ThreadDetail{
		ID:       t.ID,
		Title:    t.Title,
		Body:     t.Body,
		Date:     t.Date,
		Username: t.Username,
		Comments: comments,
	}
}
