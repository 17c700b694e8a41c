package redis

import (
	"context"
	"errors"
	"fmt"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"os"
	"strconv"
	"time"
)

var ErrSessionNotFound = errors.New("session not found")

type IRedis interface {
	SetSession(ctx context.Context, sessionID string, userID string, expiration time.Duration) error
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

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}

func (r *redisClient) SetSession(ctx context.Context, sessionID string, userID string, expiration time.Duration) error {
	err := r.client.Set(ctx, sessionKey(sessionID), userID, expiration).Err()
	if err != nil {
		logrus.Error(fmt.Sprintf("Error storing session %s: %v", sessionID, err))
		return err
	}
	return nil
}

func (r *redisClient) GetSession(ctx context.Context, sessionID string) (string, error) {
	userID, err := r.client.Get(ctx, sessionKey(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrSessionNotFound
	}
	if err != nil {
		logrus.Error(fmt.Sprintf("Error reading session %s: %v", sessionID, err))
		return "", err
	}
	return userID, nil
}

func (r *redisClient) DeleteSession(ctx context.Context, sessionID string) error {
	err := r.client.Del(ctx, sessionKey(sessionID)).Err()
	if err != nil {
		logrus.Error(fmt.Sprintf("Error deleting session %s: %v", sessionID, err))
		return err
	}
	return nil
}
