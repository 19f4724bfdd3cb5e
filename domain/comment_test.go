package domain_test

import (
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/go-clean-forum/domain"
)

func TestParseNewComment(t *testing.T) {
	t.Run("missing-property", func(t *testing.T) {
		_, err := domain.ParseNewComment(domain.Payload{})
		assertValidationCode(t, err, "NEW_COMMENT.NOT_CONTAIN_NEEDED_PROPERTY")
	})

	t.Run("nil-property", func(t *testing.T) {
		_, err := domain.ParseNewComment(domain.Payload{"content": nil})
		assertValidationCode(t, err, "NEW_COMMENT.NOT_CONTAIN_NEEDED_PROPERTY")
	})

	t.Run("wrong-type", func(t *testing.T) {
		_, err := domain.ParseNewComment(domain.Payload{"content": []string{"abc"}})
		assertValidationCode(t, err, "NEW_COMMENT.NOT_MEET_DATA_TYPE_SPECIFICATION")
	})

	t.Run("success", func(t *testing.T) {
		content := faker.Sentence()
		nc, err := domain.ParseNewComment(domain.Payload{"content": content})
		require.NoError(t, err)
		assert.Equal(t, content, nc.Content)
	})
}

func TestParseAddedComment(t *testing.T) {
	t.Run("missing-property", func(t *testing.T) {
		_, err := domain.ParseAddedComment(domain.Payload{"id": "comment-123", "content": "abc"})
		assertValidationCode(t, err, "ADDED_COMMENT.NOT_CONTAIN_NEEDED_PROPERTY")
	})

	t.Run("wrong-type", func(t *testing.T) {
		_, err := domain.ParseAddedComment(domain.Payload{"id": "comment-123", "content": "abc", "owner": 1})
		assertValidationCode(t, err, "ADDED_COMMENT.NOT_MEET_DATA_TYPE_SPECIFICATION")
	})

	t.Run("success", func(t *testing.T) {
		ac, err := domain.ParseAddedComment(domain.Payload{"id": "comment-123", "content": "abc", "owner": "user-123"})
		require.NoError(t, err)
		assert.Equal(t, domain.AddedComment{ID: "comment-123", Content: "abc", Owner: "user-123"}, ac)
	})
}

func TestParseCommentDetail(t *testing.T) {
	base := func() domain.Payload {
		return domain.Payload{
			"id":        "comment-123",
			"username":  "dicoding",
			"date":      "2021-08-08T07:22:33.555Z",
			"content":   "sebuah comment",
			"likeCount": 0,
			"replies":   []domain.ReplyDetail{},
		}
	}

	t.Run("missing-like-count", func(t *testing.T) {
		p := base()
		delete(p, "likeCount")
		_, err := domain.ParseCommentDetail(p)
		assertValidationCode(t, err, "COMMENT_DETAIL.NOT_CONTAIN_NEEDED_PROPERTY")
	})

	t.Run("missing-replies", func(t *testing.T) {
		p := base()
		delete(p, "replies")
		_, err := domain.ParseCommentDetail(p)
		assertValidationCode(t, err, "COMMENT_DETAIL.NOT_CONTAIN_NEEDED_PROPERTY")
	})

	t.Run("wrong-like-count-type", func(t *testing.T) {
		p := base()
		p["likeCount"] = "2"
		_, err := domain.ParseCommentDetail(p)
		assertValidationCode(t, err, "COMMENT_DETAIL.NOT_MEET_DATA_TYPE_SPECIFICATION")
	})

	t.Run("negative-like-count", func(t *testing.T) {
		p := base()
		p["likeCount"] = -1
		_, err := domain.ParseCommentDetail(p)
		assertValidationCode(t, err, "COMMENT_DETAIL.NOT_MEET_DATA_TYPE_SPECIFICATION")
	})

	t.Run("wrong-status-type", func(t *testing.T) {
		p := base()
		p["status"] = true
		_, err := domain.ParseCommentDetail(p)
		assertValidationCode(t, err, "COMMENT_DETAIL.NOT_MEET_DATA_TYPE_SPECIFICATION")
	})

	t.Run("success", func(t *testing.T) {
		p := base()
		p["likeCount"] = float64(2)
		p["status"] = domain.StatusActive
		cd, err := domain.ParseCommentDetail(p)
		require.NoError(t, err)
		assert.Equal(t, "sebuah comment", cd.Content)
		assert.Equal(t, 2, cd.LikeCount)
		assert.Equal(t, "dicoding", cd.Username)
		assert.Empty(t, cd.Replies)
	})

	t.Run("deleted-content-is-replaced", func(t *testing.T) {
		for _, content := range []string{"sebuah comment", faker.Sentence(), domain.DeletedCommentContent} {
			p := base()
			p["content"] = content
			p["status"] = domain.StatusDeleted
			cd, err := domain.ParseCommentDetail(p)
			require.NoError(t, err)
			assert.Equal(t, domain.DeletedCommentContent, cd.Content)
		}
	})
}
