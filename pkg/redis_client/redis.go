package redis_client

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/travigo/ybs/pkg/util"
)

var Client *redis.Client

const defaultConnectionAddress = "localhost:6379"
const defaultConnectionPassword = ""
const defaultDatabase = 0

const connectRetries = 5

func Connect() error {
	address := defaultConnectionAddress
	password := defaultConnectionPassword
	database := defaultDatabase

	env := util.GetEnvironmentVariables()

	if env["YBS_REDIS_ADDRESS"] != "" {
		address = env["YBS_REDIS_ADDRESS"]
	}

	if env["YBS_REDIS_PASSWORD"] != "" {
		password = env["YBS_REDIS_PASSWORD"]
	}

	if env["YBS_REDIS_DATABASE"] != "" {
		if n, err := strconv.Atoi(env["YBS_REDIS_DATABASE"]); err == nil {
			database = n
		} else {
			return fmt.Errorf("invalid YBS_REDIS_DATABASE: %w", err)
		}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     address,
		Password: password,
		DB:       database,
	})

	retryBackoff := backoff.NewExponentialBackOff()
	retryBackoff.InitialInterval = 500 * time.Millisecond

	err := backoff.Retry(func() error {
		err := client.Ping(context.Background()).Err()
		if err != nil {
			log.Warn().Err(err).Str("address", address).Msg("Redis ping failed")
		}
		return err
	}, backoff.WithMaxRetries(retryBackoff, connectRetries))
	if err != nil {
		return fmt.Errorf("connecting to redis at %s: %w", address, err)
	}

	Client = client

	log.Info().Str("address", address).Int("database", database).Msg("Connected to Redis")

	return nil
}
