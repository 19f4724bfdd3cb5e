package response

import "github.com/Guyuepp/go-clean-forum/domain"

type AddedReply struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Owner   string `json:"owner"`
}

func NewAddedReplyFromDomain(r domain.AddedReply) AddedReply {
	return AddedReply{ID: r.ID, Content: r.Content, Owner: r.Owner}
}

type ReplyDetail struct {
	ID       string `json:"id"`
	Content  string `json:"content"`
	Date     string `json:"date"`
	Username string `json:"username"`
}

func NewReplyDetailFromDomain(r domain.ReplyDetail) ReplyDetail {
	return ReplyDetail{ID: r.ID, Content: r.Content, Date: r.Date, Username: r.Username}
}
