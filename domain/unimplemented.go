package domain

import "context"

// The Unimplemented* types can be embedded by a partial repository so that it
// satisfies the full contract. Every method it does not override fails with
// NotImplementedError.

const (
	threadRepositoryName      = "THREAD_REPOSITORY"
	commentRepositoryName     = "COMMENT_REPOSITORY"
	replyRepositoryName       = "REPLY_REPOSITORY"
	commentLikeRepositoryName = "COMMENT_LIKE_REPOSITORY"
)

type UnimplementedThreadRepository struct{}

var _ ThreadRepository = UnimplementedThreadRepository{}

func (UnimplementedThreadRepository) AddThread(context.Context, string, NewThread) (AddedThread, error) {
	return AddedThread{}, NewNotImplementedError(threadRepositoryName)
}

func (UnimplementedThreadRepository) VerifyAvailableThread(context.Context, string) error {
	return NewNotImplementedError(threadRepositoryName)
}

func (UnimplementedThreadRepository) GetThreadByID(context.Context, string) (ThreadRow, error) {
	return ThreadRow{}, NewNotImplementedError(threadRepositoryName)
}

type UnimplementedCommentRepository struct{}

var _ CommentRepository = UnimplementedCommentRepository{}

func (UnimplementedCommentRepository) AddComment(context.Context, string, string, NewComment) (AddedComment, error) {
	return AddedComment{}, NewNotImplementedError(commentRepositoryName)
}

func (UnimplementedCommentRepository) CheckCommentAvailability(context.Context, string, string) (CommentRow, error) {
	return CommentRow{}, NewNotImplementedError(commentRepositoryName)
}

func (UnimplementedCommentRepository) VerifyCommentOwner(context.Context, string, string) error {
	return NewNotImplementedError(commentRepositoryName)
}

func (UnimplementedCommentRepository) DeleteCommentByID(context.Context, string) error {
	return NewNotImplementedError(commentRepositoryName)
}

func (UnimplementedCommentRepository) GetCommentsByThreadID(context.Context, string) ([]CommentRow, error) {
	return nil, NewNotImplementedError(commentRepositoryName)
}

type UnimplementedReplyRepository struct{}

var _ ReplyRepository = UnimplementedReplyRepository{}

func (UnimplementedReplyRepository) AddReply(context.Context, string, string, NewReply) (AddedReply, error) {
	return AddedReply{}, NewNotImplementedError(replyRepositoryName)
}

func (UnimplementedReplyRepository) CheckReplyAvailability(context.Context, string, string) (ReplyRow, error) {
	return ReplyRow{}, NewNotImplementedError(replyRepositoryName)
}

func (UnimplementedReplyRepository) VerifyReplyOwner(context.Context, string, string) error {
	return NewNotImplementedError(replyRepositoryName)
}

func (UnimplementedReplyRepository) DeleteReplyByID(context.Context, string) error {
	return NewNotImplementedError(replyRepositoryName)
}

func (UnimplementedReplyRepository) GetRepliesByCommentID(context.Context, string) ([]ReplyRow, error) {
	return nil, NewNotImplementedError(replyRepositoryName)
}

func (UnimplementedReplyRepository) GetRepliesByThreadID(context.Context, string) ([]ReplyRow, error) {
	return nil, NewNotImplementedError(replyRepositoryName)
}

type UnimplementedCommentLikeRepository struct{}

var _ CommentLikeRepository = UnimplementedCommentLikeRepository{}

func (UnimplementedCommentLikeRepository) AddLike(context.Context, Like) error {
	return NewNotImplementedError(commentLikeRepositoryName)
}

func (UnimplementedCommentLikeRepository) DeleteLike(context.Context, Like) error {
	return NewNotImplementedError(commentLikeRepositoryName)
}

func (UnimplementedCommentLikeRepository) VerifyUserCommentLike(context.Context, Like) (bool, error) {
	return false, NewNotImplementedError(commentLikeRepositoryName)
}

func (UnimplementedCommentLikeRepository) GetLikesByThreadID(context.Context, string) ([]LikeRow, error) {
	return nil, NewNotImplementedError(commentLikeRepositoryName)
}

func (UnimplementedCommentLikeRepository) ToggleLike(context.Context, Like) (bool, error) {
	return false, NewNotImplementedError(commentLikeRepositoryName)
}
