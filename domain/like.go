package domain

import "context"

// Like is a (comment, user) approval. Likes are toggled, never soft-deleted.
type Like struct {
	CommentID string
	Owner     string
}

func ParseLike(p Payload) (Like, error) {
	if err := verifyPayload("LIKE", p,
		requiredString("commentId"),
		requiredString("owner"),
	); err != nil {
		return Like{}, err
	}
	return Like{CommentID: p.str("commentId"), Owner: p.str("owner")}, nil
}

// LikeRow is a stored like record.
type LikeRow struct {
	ID        string
	CommentID string
	Owner     string
}

// CommentLikeRepository defines the storage capabilities the core may use for likes.
type CommentLikeRepository interface {
	AddLike(ctx context.Context, like Like) error
	DeleteLike(ctx context.Context, like Like) error
	VerifyUserCommentLike(ctx context.Context, like Like) (bool, error)

	// GetLikesByThreadID returns every like on any comment of the thread.
	GetLikesByThreadID(ctx context.Context, threadID string) ([]LikeRow, error)

	// ToggleLike removes the like if it exists and adds it otherwise. Concurrent
	// first likes leave exactly one like. It reports whether the comment is
	// liked afterwards.
	ToggleLike(ctx context.Context, like Like) (liked bool, err error)
}

type LikeUsecase interface {
	LikeOrDislikeComment(ctx context.Context, userID string, params CommentParams) (bool, error)
}
