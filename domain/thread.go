package domain

import (
	"context"
	"time"
)

// DateFormat is the wire and detail-view representation of every resource date.
const DateFormat = "2006-01-02T15:04:05.000Z07:00"

// FormatDate renders t in DateFormat, in UTC.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateFormat)
}

// NewThread is the validated payload of a thread creation request.
type NewThread struct {
	Title string
	Body  string
}

func ParseNewThread(p Payload) (NewThread, error) {
	if err := verifyPayload("NEW_THREAD", p,
		requiredString("title"),
		requiredString("body"),
	); err != nil {
		return NewThread{}, err
	}
	return NewThread{Title: p.str("title"), Body: p.str("body")}, nil
}

// AddedThread is what the caller gets back after creating a thread.
type AddedThread struct {
	ID    string
	Title string
	Owner string
}

func ParseAddedThread(p Payload) (AddedThread, error) {
	if err := verifyPayload("ADDED_THREAD", p,
		requiredString("id"),
		requiredString("title"),
		requiredString("owner"),
	); err != nil {
		return AddedThread{}, err
	}
	return AddedThread{ID: p.str("id"), Title: p.str("title"), Owner: p.str("owner")}, nil
}

// ThreadDetail is the fully aggregated view of a thread.
type ThreadDetail struct {
	ID       string
	Title    string
	Body     string
	Date     string
	Username string
	// Comments are in ascending chronological order
	Comments []CommentDetail
}

func ParseThreadDetail(p Payload) (ThreadDetail, error) {
	if err := verifyPayload("THREAD_DETAIL", p,
		requiredString("id"),
		requiredString("title"),
		requiredString("body"),
		requiredString("date"),
		requiredString("username"),
		property{name: "comments", kind: kindComments, presence: required},
	); err != nil {
		return ThreadDetail{}, err
	}
	return ThreadDetail{
		ID:       p.str("id"),
		Title:    p.str("title"),
		Body:     p.str("body"),
		Date:     p.str("date"),
		Username: p.str("username"),
		Comments: p["comments"].([]CommentDetail),
	}, nil
}

// ThreadRow is a flat thread record joined with its owner's username.
type ThreadRow struct {
	ID       string
	Title    string
	Body     string
	Date     time.Time
	Username string
}

// ThreadRepository defines the storage capabilities the core may use for threads.
type ThreadRepository interface {
	// AddThread stores a new thread owned by userID.
	AddThread(ctx context.Context, userID string, nt NewThread) (AddedThread, error)

	// VerifyAvailableThread returns NotFoundError("thread not found") if the
	// thread does not exist.
	VerifyAvailableThread(ctx context.Context, threadID string) error

	// GetThreadByID returns the flat thread row.
	// Returns NotFoundError("thread not found") if the thread does not exist.
	GetThreadByID(ctx context.Context, threadID string) (ThreadRow, error)
}

// ThreadDBRepository is the database side of ThreadRepository. FetchIDs pages
// thread ids in ascending order, starting after cursor.
type ThreadDBRepository interface {
	ThreadRepository
	FetchIDs(ctx context.Context, cursor string, limit int) ([]string, error)
}

type ThreadUsecase interface {
	AddThread(ctx context.Context, userID string, p Payload) (AddedThread, error)
	GetThreadDetail(ctx context.Context, threadID string) (ThreadDetail, error)
}
