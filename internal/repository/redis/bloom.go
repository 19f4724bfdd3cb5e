package redis

import (
	"context"
	"hash/crc32"
	"hash/fnv"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/go-clean-forum/domain"
)

const (
	KeyThreadBloom = "bloom:thread:ids"
	// KeyThreadBloomReady is written once a warm-up has loaded every id.
	KeyThreadBloomReady = "bloom:thread:ready"

	defaultHashCount = 3
)

// redisBloomRepo keeps the filter as a redis bitmap so every server instance
// shares it.
type redisBloomRepo struct {
	client       redis.Cmdable
	BloomBitSize uint64
	hashCount    int
}

var _ domain.BloomRepository = (*redisBloomRepo)(nil)

func NewRedisBloomRepo(client redis.Cmdable, bitSize uint64) *redisBloomRepo {
	return &redisBloomRepo{
		client:       client,
		BloomBitSize: bitSize,
		hashCount:    defaultHashCount,
	}
}

// Add sets the bits of id. If that fails the ready marker is dropped, so
// no instance trusts a filter that is missing id.
func (r *redisBloomRepo) Add(ctx context.Context, id string) error {
	err := r.BulkAdd(ctx, []string{id})
	if err != nil {
		if delErr := r.client.Del(ctx, KeyThreadBloomReady).Err(); delErr != nil {
			logrus.Warnf("failed to drop bloom ready marker: %v", delErr)
		}
	}
	return err
}

// Exists reads the ready marker and the bits in one round trip. Both keys
// must be present: a flush or an eviction of either one makes the filter
// unusable until the next warm-up.
func (r *redisBloomRepo) Exists(ctx context.Context, id string) (bool, error) {
	pipe := r.client.Pipeline()
	ready := pipe.Exists(ctx, KeyThreadBloomReady, KeyThreadBloom)
	bits := make([]*redis.IntCmd, 0, r.hashCount)
	for _, offset := range r.getOffset(id) {
		bits = append(bits, pipe.GetBit(ctx, KeyThreadBloom, int64(offset)))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}

	if ready.Val() < 2 {
		return false, domain.ErrBloomNotReady
	}
	for _, bit := range bits {
		if bit.Val() == 0 {
			return false, nil
		}
	}
	return true, nil
}

// MarkReady writes the ready marker. It also sets a bit past the hashed
// range so the bitmap key exists even when no id has been added.
func (r *redisBloomRepo) MarkReady(ctx context.Context) error {
	pipe := r.client.Pipeline()
	pipe.SetBit(ctx, KeyThreadBloom, int64(r.BloomBitSize), 1)
	pipe.Set(ctx, KeyThreadBloomReady, "1", 0)
	_, err := pipe.Exec(ctx)
	return err
}

// getOffset derives hashCount bit positions for id by double hashing:
// offset_i = crc32(id) + i*fnv64a(id) mod size.
func (r *redisBloomRepo) getOffset(id string) []uint64 {
	data := []byte(id)
	h1 := uint64(crc32.ChecksumIEEE(data))
	h := fnv.New64a()
	_, _ = h.Write(data)
	h2 := h.Sum64() | 1

	offsets := make([]uint64, r.hashCount)
	for i := range offsets {
		offsets[i] = (h1 + uint64(i)*h2) % r.BloomBitSize
	}
	return offsets
}

func (r *redisBloomRepo) BulkAdd(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	pipe := r.client.Pipeline()
	for _, id := range ids {
		for _, offset := range r.getOffset(id) {
			pipe.SetBit(ctx, KeyThreadBloom, int64(offset), 1)
		}
	}

	_, err := pipe.Exec(ctx)
	return err
}
