// Package redis connects to the Redis server backing the redis record sink.
//
// Connect parses REDIS_URL and pings with retries; Healthcheck adapts the
// client to the readiness endpoint of pkg/httpserver.
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
package redis
