package domain

import (
	"context"
	"time"
)

// DeletedReplyContent replaces the content of a soft-deleted reply in every detail view.
const DeletedReplyContent = "**balasan telah dihapus**"

type NewReply struct {
	Content string
}

func ParseNewReply(p Payload) (NewReply, error) {
	if err := verifyPayload("NEW_REPLY", p, requiredString("content")); err != nil {
		return NewReply{}, err
	}
	return NewReply{Content: p.str("content")}, nil
}

type AddedReply struct {
	ID      string
	Content string
	Owner   string
}

func ParseAddedReply(p Payload) (AddedReply, error) {
	if err := verifyPayload("ADDED_REPLY", p,
		requiredString("id"),
		requiredString("content"),
		requiredString("owner"),
	); err != nil {
		return AddedReply{}, err
	}
	return AddedReply{ID: p.str("id"), Content: p.str("content"), Owner: p.str("owner")}, nil
}

// ReplyDetail is a reply as shown inside a CommentDetail.
type ReplyDetail struct {
	ID       string
	Content  string
	Date     string
	Username string
}

func ParseReplyDetail(p Payload) (ReplyDetail, error) {
	if err := verifyPayload("REPLY_DETAIL", p,
		requiredString("id"),
		requiredString("content"),
		requiredString("date"),
		requiredString("username"),
		property{name: "status", kind: kindStatus, presence: optional},
	); err != nil {
		return ReplyDetail{}, err
	}

	content := p.str("content")
	if p.status().IsDeleted() {
		content = DeletedReplyContent
	}
	return ReplyDetail{
		ID:       p.str("id"),
		Content:  content,
		Date:     p.str("date"),
		Username: p.str("username"),
	}, nil
}

// ReplyRow is a flat reply record. CommentID is the stored parent comment.
type ReplyRow struct {
	ID        string
	CommentID string
	Content   string
	Owner     string
	Username  string
	Date      time.Time
	Status    Status
}

// Detail renders the row as it appears in a comment's reply list.
func (r ReplyRow) Detail() (ReplyDetail, error) {
	return ParseReplyDetail(Payload{
		"id":       r.ID,
		"content":  r.Content,
		"date":     FormatDate(r.Date),
		"username": r.Username,
		"status":   r.Status,
	})
}

// ReplyParams locates a reply inside a comment inside a thread.
type ReplyParams struct {
	ThreadID  string
	CommentID string
	ReplyID   string
}

// CommentParams returns the ancestor part of p.
func (p ReplyParams) CommentParams() CommentParams {
	return CommentParams{ThreadID: p.ThreadID, CommentID: p.CommentID}
}

// ReplyRepository defines the storage capabilities the core may use for replies.
type ReplyRepository interface {
	AddReply(ctx context.Context, userID, commentID string, nr NewReply) (AddedReply, error)

	// CheckReplyAvailability returns NotFoundError("reply not found") if the
	// reply does not exist, NotFoundError("reply invalid") if it is deleted and
	// NotFoundError("reply in comment invalid") if its parent is not commentID.
	CheckReplyAvailability(ctx context.Context, replyID, commentID string) (ReplyRow, error)

	// VerifyReplyOwner returns AuthorizationError if userID does not own the reply.
	VerifyReplyOwner(ctx context.Context, replyID, userID string) error

	DeleteReplyByID(ctx context.Context, replyID string) error

	// GetRepliesByCommentID returns every reply of the comment, deleted ones
	// included, in ascending date order.
	GetRepliesByCommentID(ctx context.Context, commentID string) ([]ReplyRow, error)

	// GetRepliesByThreadID returns the replies of every non-deleted comment of
	// the thread in ascending date order.
	GetRepliesByThreadID(ctx context.Context, threadID string) ([]ReplyRow, error)
}

type ReplyUsecase interface {
	AddReply(ctx context.Context, userID string, params CommentParams, p Payload) (AddedReply, error)
	DeleteReply(ctx context.Context, userID string, params ReplyParams) error

	// GetCommentReplies lists the replies of a live comment, deleted replies
	// shown with DeletedReplyContent.
	GetCommentReplies(ctx context.Context, params CommentParams) ([]ReplyDetail, error)
}
