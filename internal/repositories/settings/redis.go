package settings

import (
	"context"
	"encoding/json"
	"fmt"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/equipbest/internal/entities/equipment"
	"github.com/KirkDiggler/equipbest/internal/errors"
	redisclient "github.com/KirkDiggler/equipbest/internal/redis"
)

const (
	characterKeyPrefix = "settings:character:"
	globalKey          = "settings:global"

	errCharacterNameEmpty = "character name cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis settings repository.
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed settings repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

// filterData is what gets stored per character
type filterData struct {
	Weapon [equipment.NumWeaponFilters]equipment.WeaponFilter `json:"weapon"`
	Armor  [equipment.NumArmorFilters]equipment.ArmorFilter   `json:"armor"`
	Mount  equipment.MountFilter                              `json:"mount"`
}

// lockData is stored once for every character
type lockData struct {
	LeftLocked  bool `json:"left_locked"`
	RightLocked bool `json:"right_locked"`
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.CharacterName == "" {
		return nil, errors.InvalidArgument(errCharacterNameEmpty)
	}

	results, err := r.client.MGet(ctx, GetKey(input.CharacterName), globalKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get settings for %s", input.CharacterName)
	}

	raw, ok := results[0].(string)
	if !ok {
		return nil, errors.NotFoundf("settings for %s not found", input.CharacterName)
	}

	var filters filterData
	if err := json.Unmarshal([]byte(raw), &filters); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal settings data")
	}

	var locks lockData
	if rawLocks, ok := results[1].(string); ok {
		if err := json.Unmarshal([]byte(rawLocks), &locks); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal lock data")
		}
	}

	return &GetOutput{
		Settings: &equipment.Settings{
			Weapon:      filters.Weapon,
			Armor:       filters.Armor,
			Mount:       filters.Mount,
			LeftLocked:  locks.LeftLocked,
			RightLocked: locks.RightLocked,
		},
	}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.CharacterName == "" {
		return nil, errors.InvalidArgument(errCharacterNameEmpty)
	}
	if input.Settings == nil {
		return nil, errors.InvalidArgument("settings cannot be nil")
	}

	filters, err := json.Marshal(filterData{
		Weapon: input.Settings.Weapon,
		Armor:  input.Settings.Armor,
		Mount:  input.Settings.Mount,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal settings data")
	}

	locks, err := json.Marshal(lockData{
		LeftLocked:  input.Settings.LeftLocked,
		RightLocked: input.Settings.RightLocked,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal lock data")
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, GetKey(input.CharacterName), filters, 0)
		pipe.Set(ctx, globalKey, locks, 0)
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update settings for %s", input.CharacterName)
	}

	return &UpdateOutput{Settings: input.Settings}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.CharacterName == "" {
		return nil, errors.InvalidArgument(errCharacterNameEmpty)
	}

	deleted, err := r.client.Del(ctx, GetKey(input.CharacterName)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete settings for %s", input.CharacterName)
	}
	if deleted == 0 {
		return nil, errors.NotFoundf("settings for %s not found", input.CharacterName)
	}

	return &DeleteOutput{}, nil
}

// GetKey returns the Redis key for a character's filters
func GetKey(characterName string) string {
	return fmt.Sprintf("%s%s", characterKeyPrefix, characterName)
}

// GlobalKey returns the Redis key for the lock flags
func GlobalKey() string {
	return globalKey
}
