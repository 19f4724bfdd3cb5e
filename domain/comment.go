package domain

import (
	"context"
	"time"
)

// DeletedCommentContent replaces the content of a soft-deleted comment in every detail view.
const DeletedCommentContent = "**komentar telah dihapus**"

// NewComment is the validated payload of a comment creation request.
type NewComment struct {
	Content string
}

func ParseNewComment(p Payload) (NewComment, error) {
	if err := verifyPayload("NEW_COMMENT", p, requiredString("content")); err != nil {
		return NewComment{}, err
	}
	return NewComment{Content: p.str("content")}, nil
}

type AddedComment struct {
	ID      string
	Content string
	Owner   string
}

func ParseAddedComment(p Payload) (AddedComment, error) {
	if err := verifyPayload("ADDED_COMMENT", p,
		requiredString("id"),
		requiredString("content"),
		requiredString("owner"),
	); err != nil {
		return AddedComment{}, err
	}
	return AddedComment{ID: p.str("id"), Content: p.str("content"), Owner: p.str("owner")}, nil
}

// CommentDetail is a comment as shown inside a ThreadDetail.
type CommentDetail struct {
	ID        string
	Username  string
	Date      string
	Content   string
	LikeCount int
	Replies   []ReplyDetail
}

// ParseCommentDetail validates p and substitutes DeletedCommentContent when
// the payload status is StatusDeleted.
func ParseCommentDetail(p Payload) (CommentDetail, error) {
	if err := verifyPayload("COMMENT_DETAIL", p,
		requiredString("id"),
		requiredString("username"),
		requiredString("date"),
		requiredString("content"),
		property{name: "replies", kind: kindReplies, presence: required},
		property{name: "likeCount", kind: kindCount, presence: present},
		property{name: "status", kind: kindStatus, presence: optional},
	); err != nil {
		return CommentDetail{}, err
	}

	content := p.str("content")
	if p.status().IsDeleted() {
		content = DeletedCommentContent
	}
	return CommentDetail{
		ID:        p.str("id"),
		Username:  p.str("username"),
		Date:      p.str("date"),
		Content:   content,
		LikeCount: p.count("likeCount"),
		Replies:   p["replies"].([]ReplyDetail),
	}, nil
}

// CommentRow is a flat comment record. Username is only filled by
// GetCommentsByThreadID.
type CommentRow struct {
	ID       string
	ThreadID string
	Content  string
	Owner    string
	Username string
	Date     time.Time
	Status   Status
}

// CommentParams locates a comment inside a thread.
type CommentParams struct {
	ThreadID  string
	CommentID string
}

// CommentRepository defines the storage capabilities the core may use for comments.
type CommentRepository interface {
	AddComment(ctx context.Context, userID, threadID string, nc NewComment) (AddedComment, error)

	// CheckCommentAvailability returns the comment scoped to threadID.
	// Returns NotFoundError("comment not found") if there is no such comment in
	// the thread and NotFoundError("comment invalid") if it is deleted.
	CheckCommentAvailability(ctx context.Context, commentID, threadID string) (CommentRow, error)

	// VerifyCommentOwner returns AuthorizationError if userID does not own the comment.
	VerifyCommentOwner(ctx context.Context, commentID, userID string) error

	// DeleteCommentByID marks the comment as deleted.
	DeleteCommentByID(ctx context.Context, commentID string) error

	// GetCommentsByThreadID returns every comment of the thread, deleted ones
	// included, in ascending date order.
	GetCommentsByThreadID(ctx context.Context, threadID string) ([]CommentRow, error)
}

type CommentUsecase interface {
	AddComment(ctx context.Context, userID, threadID string, p Payload) (AddedComment, error)
	DeleteComment(ctx context.Context, userID string, params CommentParams) error
}
