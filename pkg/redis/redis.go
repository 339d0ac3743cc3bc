package redis

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

var ErrSessionNotFound = errors.New("session not found")

const sessionKeyPrefix = "session:"

type IRedis interface {
	SetSession(ctx context.Context, sessionID string, record string, expiration time.Duration) error
	GetSession(ctx context.Context, sessionID string) (string, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

type redisClient struct {
	client *redis.Client
}

func New() IRedis {
	db, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	redisAddr := os.Getenv("REDIS_ADDRESS")
	redisPassword := os.Getenv("REDIS_PASSWORD")

	logrus.Info(fmt.Sprintf("Connecting to Redis at %s...", redisAddr))

	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		logrus.Error(fmt.Sprintf("Failed to connect to Redis: %v", err))
	} else {
		logrus.Info("Successfully connected to Redis")
	}

	return &redisClient{client: client}
}

func (r *redisClient) SetSession(ctx context.Context, sessionID string, record string, expiration time.Duration) error {
	key := sessionKeyPrefix + sessionID
	if err := r.client.Set(ctx, key, record, expiration).Err(); err != nil {
		logrus.Error(fmt.Sprintf("Error storing session %s: %v", sessionID, err))
		return err
	}
	return nil
}

func (r *redisClient) GetSession(ctx context.Context, sessionID string) (string, error) {
	key := sessionKeyPrefix + sessionID
	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrSessionNotFound
	} else if err != nil {
		logrus.Error(fmt.Sprintf("Error reading session %s: %v", sessionID, err))
		return "", err
	}
	return val, nil
}

func (r *redisClient) DeleteSession(ctx context.Context, sessionID string) error {
	key := sessionKeyPrefix + sessionID
	if _, err := r.client.Del(ctx, key).Result(); err != nil {
		logrus.Error(fmt.Sprintf("Error deleting session %s: %v", sessionID, err))
		return err
	}
	return nil
}
