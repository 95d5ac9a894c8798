package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache is the surface the answer cache layers share. Values are
// opaque bytes; a TTL of 0 on Set means the layer's default.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
}

// AnswerKey generates a cache key for one generated answer. Provider and
// model are part of the key: the same question answered by a different
// model is a different cache entry.
func AnswerKey(provider, model, question string) string {
	hash := sha256.Sum256([]byte(provider + "\x00" + model + "\x00" + question))
	return "ragmark:v1:" + hex.EncodeToString(hash[:])
}
