package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"studyhall_backend/internals/configs"
)

// DedupWindow guards against double-fire scans from a jittery camera: two
// reads of the same code inside the window must not toggle the state twice.
const DedupWindow = 10 * time.Second

var dedupClient *redis.Client

// InitDedup connects the optional redis-backed scan guard. Without
// REDIS_ADDR the guard is a no-op and every scan goes through.
func InitDedup() {
	addr := configs.GetEnv("REDIS_ADDR")
	if addr == "" {
		return
	}
	dedupClient = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: configs.GetEnv("REDIS_PASSWORD"),
	})
	if err := dedupClient.Ping(context.Background()).Err(); err != nil {
		log.Printf("redis dedup disabled: %v", err)
		dedupClient = nil
	}
}

// IsDuplicateScan marks the student's scan slot and reports whether a scan
// already landed inside the window. Fail-open: a redis error never blocks a
// legitimate scan.
func IsDuplicateScan(ctx context.Context, studentID uuid.UUID) bool {
	if dedupClient == nil {
		return false
	}
	ok, err := dedupClient.SetNX(ctx, "scan:"+studentID.String(), 1, DedupWindow).Result()
	if err != nil {
		log.Printf("scan dedup err: %v", err)
		return false
	}
	return !ok
}
