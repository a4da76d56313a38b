package game

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/randomnetcat/hitlerbot/internal/common/clock"
	"github.com/randomnetcat/hitlerbot/internal/common/uuid"
	"github.com/randomnetcat/hitlerbot/internal/engine"
	"github.com/randomnetcat/hitlerbot/internal/models"
)

const (
	// Key prefixes for Redis
	gameKeyPrefix    = "game:"
	channelKeyPrefix = "channel:"
	activeGamesKey   = "active_games"

	// maxUpdateRetries bounds the optimistic retry loop in UpdateGame
	maxUpdateRetries = 10
)

// ErrGameNotFound is returned when a game is not found
var ErrGameNotFound = errors.New("game not found")

// ErrUpdateConflict is returned when an update keeps losing the
// optimistic transaction race
var ErrUpdateConflict = errors.New("game update conflicted too many times")

// Config holds configuration for the Redis game repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// Clock provides timestamps; defaults to the system clock
	Clock clock.Clock

	// UUIDGenerator provides game IDs; defaults to random UUIDs
	UUIDGenerator uuid.UUID
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	clock  clock.Clock
	uuid   uuid.UUID
}

// NewRedis creates a new Redis-backed game repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	repoClock := cfg.Clock
	if repoClock == nil {
		repoClock = &clock.DefaultClock{}
	}

	uuidGenerator := cfg.UUIDGenerator
	if uuidGenerator == nil {
		uuidGenerator = uuid.New()
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
		clock:  repoClock,
		uuid:   uuidGenerator,
	}, nil
}

// CreateGame creates a new game with a generated UUID
func (r *redisRepository) CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.ChannelID == "" {
		return nil, errors.New("channel ID cannot be empty")
	}

	if input.CreatorID == "" {
		return nil, errors.New("creator ID cannot be empty")
	}

	now := r.clock.Now()
	game := &models.Game{
		ID:        r.uuid.NewUUID(),
		ChannelID: input.ChannelID,
		CreatorID: input.CreatorID,
		State:     engine.NewGame(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := r.saveGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	return &CreateGameOutput{Game: game}, nil
}

// saveGame writes a game and its indexes in one pipeline
func (r *redisRepository) saveGame(ctx context.Context, game *models.Game) error {
	record, err := newGameRecord(game)
	if err != nil {
		return err
	}

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal game: %w", err)
	}

	pipe := r.client.Pipeline()
	r.queueSave(ctx, pipe, game, data)

	if _, err := pipe.Exec(ctx); err != nil {
		return err
	}

	return nil
}

// queueSave adds the writes for one game to a pipeline
func (r *redisRepository) queueSave(ctx context.Context, pipe redis.Pipeliner, game *models.Game, data []byte) {
	pipe.Set(ctx, gameKeyPrefix+game.ID, data, 0)

	if game.ChannelID != "" {
		pipe.Set(ctx, channelKeyPrefix+game.ChannelID, game.ID, 0)
	}

	if game.Status() == engine.StatusCompleted {
		pipe.SRem(ctx, activeGamesKey, game.ID)
	} else {
		pipe.SAdd(ctx, activeGamesKey, game.ID)
	}
}

// GetGame retrieves a game by ID from Redis
func (r *redisRepository) GetGame(ctx context.Context, input *GetGameInput) (*models.Game, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	data, err := r.client.Get(ctx, gameKeyPrefix+input.GameID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return unmarshalGame([]byte(data))
}

// GetGameByChannel retrieves a game by channel ID from Redis
func (r *redisRepository) GetGameByChannel(ctx context.Context, input *GetGameByChannelInput) (*models.Game, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("input and channel ID cannot be empty")
	}

	gameID, err := r.client.Get(ctx, channelKeyPrefix+input.ChannelID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game ID for channel: %w", err)
	}

	return r.GetGame(ctx, &GetGameInput{
		GameID: gameID,
	})
}

// UpdateGame applies an atomic read-modify-write using WATCH. The
// update function runs against the freshly loaded state; if it
// returns an error nothing is written and the error is passed
// through. Losing an optimistic race retries against the committed
// state, so concurrent updates to one game serialize while different
// games never contend.
func (r *redisRepository) UpdateGame(ctx context.Context, input *UpdateGameInput) (*models.Game, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	if input.Update == nil {
		return nil, errors.New("update function cannot be nil")
	}

	gameKey := gameKeyPrefix + input.GameID

	var updated *models.Game
	txn := func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, gameKey).Result()
		if err != nil {
			if err == redis.Nil {
				return ErrGameNotFound
			}
			return fmt.Errorf("failed to get game: %w", err)
		}

		game, err := unmarshalGame([]byte(data))
		if err != nil {
			return err
		}

		if err := input.Update(game); err != nil {
			return err
		}

		game.UpdatedAt = r.clock.Now()

		record, err := newGameRecord(game)
		if err != nil {
			return err
		}

		newData, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("failed to marshal game: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			r.queueSave(ctx, pipe, game, newData)
			return nil
		})
		if err != nil {
			return err
		}

		updated = game
		return nil
	}

	for attempt := 0; attempt < maxUpdateRetries; attempt++ {
		err := r.client.Watch(ctx, txn, gameKey)
		if err == redis.TxFailedErr {
			// Lost the race; reload and try again
			continue
		}
		if err != nil {
			return nil, err
		}
		return updated, nil
	}

	return nil, ErrUpdateConflict
}

// DeleteGame removes a game from Redis
func (r *redisRepository) DeleteGame(ctx context.Context, input *DeleteGameInput) error {
	if input == nil || input.GameID == "" {
		return errors.New("input and game ID cannot be empty")
	}

	game, err := r.GetGame(ctx, &GetGameInput{
		GameID: input.GameID,
	})
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, gameKeyPrefix+input.GameID)

	if game.ChannelID != "" {
		pipe.Del(ctx, channelKeyPrefix+game.ChannelID)
	}

	pipe.SRem(ctx, activeGamesKey, input.GameID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	return nil
}

// GetActiveGames retrieves all non-completed games from Redis
func (r *redisRepository) GetActiveGames(ctx context.Context, input *GetActiveGamesInput) (*GetActiveGamesOutput, error) {
	gameIDs, err := r.client.SMembers(ctx, activeGamesKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get active game IDs: %w", err)
	}

	if len(gameIDs) == 0 {
		return &GetActiveGamesOutput{
			Games: []*models.Game{},
		}, nil
	}

	pipe := r.client.Pipeline()
	gameCommands := make(map[string]*redis.StringCmd)
	for _, gameID := range gameIDs {
		gameCommands[gameID] = pipe.Get(ctx, gameKeyPrefix+gameID)
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get active games: %w", err)
	}

	games := make([]*models.Game, 0, len(gameIDs))
	for gameID, cmd := range gameCommands {
		data, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Game was deleted between getting the IDs and fetching it
				continue
			}
			return nil, fmt.Errorf("failed to get game %s: %w", gameID, err)
		}

		game, err := unmarshalGame([]byte(data))
		if err != nil {
			return nil, fmt.Errorf("failed to unmarshal game %s: %w", gameID, err)
		}

		games = append(games, game)
	}

	return &GetActiveGamesOutput{
		Games: games,
	}, nil
}

// unmarshalGame decodes a persisted record into a domain game
func unmarshalGame(data []byte) (*models.Game, error) {
	var record gameRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return record.toDomain()
}
