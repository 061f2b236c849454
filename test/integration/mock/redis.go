package mock

import (
	"context"
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var redisConnOnce sync.Once
var redisMock *Redis

// Redis pairs a miniredis server with a client connected to it.
type Redis struct {
	Server *miniredis.Miniredis
	Client *redis.Client
}

func NewRedis() *Redis {
	redisConnOnce.Do(
		func() {
			redisMock = openRedisConn()
		},
	)

	return redisMock
}

func openRedisConn() *Redis {
	miniRedis, err := miniredis.Run()
	if err != nil {
		panic(err)
	}

	conn := redis.NewClient(
		&redis.Options{
			Addr: miniRedis.Addr(),
		},
	)

	return &Redis{Server: miniRedis, Client: conn}
}

// Clear flushes all keys and makes the server answer normally again.
func (r *Redis) Clear() error {
	r.Server.SetError("")
	return r.Client.FlushAll(context.TODO()).Err()
}

// Break makes every subsequent command fail until Clear is called.
func (r *Redis) Break() {
	r.Server.SetError("LOADING cache is unavailable")
}
