package middleware

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "bark:idem:"

// epoch values above this are milliseconds
const epochMillisFloor = 1e12

var reActor = regexp.MustCompile(`^[A-Za-z0-9._@-]{1,64}$`)

func bodyHash(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

func nowUTC() time.Time { return time.Now().UTC() }

// buildKey scopes a request id to the route and the calling actor.
func buildKey(method, path, actorID, requestID string) string {
	return keyPrefix + strings.Join([]string{strings.ToLower(method), path, actorID, requestID}, ":")
}

// validReqID accepts a lowercase canonical uuid (v1-v5) or 32 lowercase hex characters.
func validReqID(id string) bool {
	id = strings.TrimSpace(id)
	if id == "" || id != strings.ToLower(id) {
		return false
	}
	if len(id) == 32 {
		_, err := hex.DecodeString(id)
		return err == nil
	}
	if len(id) != 36 {
		return false
	}
	u, err := uuid.Parse(id)
	if err != nil {
		return false
	}
	v := u.Version()
	return v >= 1 && v <= 5 && u.Variant() == uuid.RFC4122
}

func validActorID(id string) bool { return reActor.MatchString(id) }

// parseRequestAt reads Ax-Request-At as epoch seconds, epoch millis or an
// RFC3339 timestamp carrying a zone. Zoneless timestamps are rejected.
func parseRequestAt(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, fmt.Errorf("missing %s", HeaderRequestAt)
	}
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		if n > epochMillisFloor {
			return time.UnixMilli(n).UTC(), nil
		}
		return time.Unix(n, 0).UTC(), nil
	}
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s must be epoch (s/ms) or RFC3339 with timezone", HeaderRequestAt)
	}
	return t.UTC(), nil
}

var errCorruptEntry = errors.New("idempotency entry is not valid json")

func putEntry(ctx context.Context, rdb *redis.Client, key string, e idempEntry, ttl time.Duration, onlyNew bool) (bool, error) {
	payload, err := json.Marshal(e)
	if err != nil {
		return false, err
	}
	if onlyNew {
		return rdb.SetNX(ctx, key, payload, ttl).Result()
	}
	return true, rdb.Set(ctx, key, payload, ttl).Err()
}

// provisionalSet claims the key for an in-flight request. False means someone holds it.
func provisionalSet(ctx context.Context, rdb *redis.Client, key string, e idempEntry) (bool, error) {
	return putEntry(ctx, rdb, key, e, provisionalLockTTL, true)
}

func saveFinal(ctx context.Context, rdb *redis.Client, key string, e idempEntry, ttl time.Duration) error {
	_, err := putEntry(ctx, rdb, key, e, ttl, false)
	return err
}

func loadEntry(ctx context.Context, rdb *redis.Client, key string) (idempEntry, error) {
	var e idempEntry
	raw, err := rdb.Get(ctx, key).Bytes()
	if err != nil {
		return e, err
	}
	if err := json.Unmarshal(raw, &e); err != nil {
		return e, errCorruptEntry
	}
	return e, nil
}
