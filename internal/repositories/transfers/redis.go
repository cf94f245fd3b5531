package transfers

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/equipbest/internal/entities/equipment"
	"github.com/KirkDiggler/equipbest/internal/errors"
	redisclient "github.com/KirkDiggler/equipbest/internal/redis"
)

const (
	keyPrefix = "transfers:character:"

	// DefaultTTL is how long an idle journal is kept
	DefaultTTL = 24 * time.Hour

	errCharacterIDEmpty = "character ID cannot be empty"
)

// Config contains configuration for the Redis transfer repository
type Config struct {
	Client redisclient.Client
}

// Validate validates the Config.
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("Client")
	}
	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
}

// NewRedisRepository creates a new Redis-backed transfer journal
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{client: cfg.Client}, nil
}

func (r *redisRepository) Append(ctx context.Context, input AppendInput) (*AppendOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	key := GetKey(input.CharacterID)
	if len(input.Transfers) == 0 {
		length, err := r.client.LLen(ctx, key).Result()
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read journal for %s", input.CharacterID)
		}
		return &AppendOutput{Length: length}, nil
	}

	values := make([]interface{}, 0, len(input.Transfers))
	for _, cmd := range input.Transfers {
		data, err := json.Marshal(cmd)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to marshal transfer %s", cmd.ID)
		}
		values = append(values, data)
	}

	ttl := input.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	var push *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		push = pipe.RPush(ctx, key, values...)
		pipe.Expire(ctx, key, ttl)
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to append transfers for %s", input.CharacterID)
	}

	return &AppendOutput{Length: push.Val()}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	start := int64(0)
	if input.Limit > 0 {
		start = -input.Limit
	}

	raw, err := r.client.LRange(ctx, GetKey(input.CharacterID), start, -1).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list transfers for %s", input.CharacterID)
	}

	out := &ListOutput{Transfers: make([]equipment.TransferCommand, 0, len(raw))}
	for _, entry := range raw {
		var cmd equipment.TransferCommand
		if err := json.Unmarshal([]byte(entry), &cmd); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal transfer")
		}
		out.Transfers = append(out.Transfers, cmd)
	}

	return out, nil
}

func (r *redisRepository) Clear(ctx context.Context, input ClearInput) (*ClearOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	key := GetKey(input.CharacterID)
	var length *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		length = pipe.LLen(ctx, key)
		pipe.Del(ctx, key)
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to clear transfers for %s", input.CharacterID)
	}

	return &ClearOutput{Deleted: length.Val()}, nil
}

func (r *redisRepository) Trim(ctx context.Context, input TrimInput) (*TrimOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}
	if input.Keep < 0 {
		return nil, errors.InvalidArgumentf("keep must not be negative: %d", input.Keep)
	}

	key := GetKey(input.CharacterID)
	var length *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		length = pipe.LLen(ctx, key)
		if input.Keep == 0 {
			pipe.Del(ctx, key)
		} else {
			pipe.LTrim(ctx, key, -input.Keep, -1)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to trim transfers for %s", input.CharacterID)
	}

	removed := length.Val() - input.Keep
	if removed < 0 {
		removed = 0
	}
	return &TrimOutput{Removed: removed}, nil
}

// GetKey returns the Redis key for a character's journal
func GetKey(characterID string) string {
	return fmt.Sprintf("%s%s", keyPrefix, characterID)
}

// KeyPattern matches every journal key
func KeyPattern() string {
	return keyPrefix + "*"
}

// CharacterIDFromKey extracts the character ID from a journal key
func CharacterIDFromKey(key string) (string, bool) {
	if len(key) <= len(keyPrefix) || key[:len(keyPrefix)] != keyPrefix {
		return "", false
	}
	return key[len(keyPrefix):], true
}
