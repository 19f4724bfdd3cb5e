package thread

import (
	"github.com/Guyuepp/go-clean-forum/domain"
)

// BuildThreadDetail merges the four flat collections of a thread into one
// nested view. comments and replies must already be in ascending date order;
// the order is kept as is inside every group.
func BuildThreadDetail(t domain.ThreadRow, comments []domain.CommentRow, replies []domain.ReplyRow, likes []domain.LikeRow) (domain.ThreadDetail, error) {
	likeCount := make(map[string]int, len(comments))
	for _, l := range likes {
		likeCount[l.CommentID]++
	}

	repliesByComment := make(map[string][]domain.ReplyDetail, len(comments))
	for _, r := range replies {
		rd, err := r.Detail()
		if err != nil {
			return domain.ThreadDetail{}, err
		}
		repliesByComment[r.CommentID] = append(repliesByComment[r.CommentID], rd)
	}

	details := make([]domain.CommentDetail, 0, len(comments))
	for _, c := range comments {
		group := repliesByComment[c.ID]
		if group == nil {
			group = []domain.ReplyDetail{}
		}
		cd, err := domain.ParseCommentDetail(domain.Payload{
			"id":        c.ID,
			"username":  c.Username,
			"date":      domain.FormatDate(c.Date),
			"content":   c.Content,
			"likeCount": likeCount[c.ID],
			"replies":   group,
			"status":    c.Status,
		})
		if err != nil {
			return domain.ThreadDetail{}, err
		}
		details = append(details, cd)
	}

	return domain.ParseThreadDetail(domain.Payload{
		"id":       t.ID,
		"title":    t.Title,
		"body":     t.Body,
		"date":     domain.FormatDate(t.Date),
		"username": t.Username,
		"comments": details,
	})
}
