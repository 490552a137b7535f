package middleware

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/menu-service/internal/domain/dto"
	"github.com/guttosm/menu-service/internal/i18n"
	"github.com/guttosm/menu-service/internal/logger"
)

const (
	// IdempotencyKeyHeader is the HTTP header name for idempotency key (RFC standard).
	IdempotencyKeyHeader = "Idempotency-Key"
	// IdempotencyReplayedHeader marks a response served from the idempotency store.
	IdempotencyReplayedHeader = "X-Idempotency-Replayed"
	// IdempotencyKeyTTL is the default TTL for cached idempotency responses.
	IdempotencyKeyTTL = 24 * time.Hour
)

// CachedResponse is a stored HTTP response replayed for a repeated key.
type CachedResponse struct {
	StatusCode  int       `json:"status_code"`
	ContentType string    `json:"content_type"`
	Body        []byte    `json:"body"`
	Timestamp   time.Time `json:"timestamp"`
}

// IdempotencyStore persists responses by idempotency key.
type IdempotencyStore interface {
	// Get returns the stored response, or ok=false when there is none.
	Get(ctx context.Context, key string) (resp *CachedResponse, ok bool, err error)
	Set(ctx context.Context, key string, resp *CachedResponse, ttl time.Duration) error
}

// IdempotencyConfig holds configuration for idempotency middleware.
type IdempotencyConfig struct {
	Store   IdempotencyStore
	TTL     time.Duration
	Enabled bool
}

// DefaultIdempotencyConfig returns an enabled config backed by store.
func DefaultIdempotencyConfig(store IdempotencyStore) IdempotencyConfig {
	return IdempotencyConfig{
		Store:   store,
		TTL:     IdempotencyKeyTTL,
		Enabled: true,
	}
}

// Idempotency replays the stored response when a POST, PUT or PATCH arrives
// with an Idempotency-Key already seen for the same method, path and body.
// Only 2xx responses are stored.
func Idempotency(cfg IdempotencyConfig) gin.HandlerFunc {
	if !cfg.Enabled || cfg.Store == nil {
		return func(c *gin.Context) {
			c.Next()
		}
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = IdempotencyKeyTTL
	}

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost &&
			c.Request.Method != http.MethodPut &&
			c.Request.Method != http.MethodPatch {
			c.Next()
			return
		}

		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" {
			c.Next()
			return
		}

		storeKey := idempotencyStoreKey(key, c.Request)
		ctx := c.Request.Context()
		log := logger.FromContext(ctx)

		cached, ok, err := cfg.Store.Get(ctx, storeKey)
		if err != nil {
			log.Error().Err(err).Msg("Idempotency store lookup failed")
			message := i18n.GetTranslator().Translate(i18n.ErrKeyIdempotencyUnavailable, i18n.GetLocale(c))
			c.AbortWithStatusJSON(http.StatusServiceUnavailable,
				dto.NewError(dto.ErrCodeUnavailable, message).WithRequestID(GetRequestID(c)))
			return
		}
		if ok {
			c.Header(IdempotencyReplayedHeader, "true")
			c.Data(cached.StatusCode, cached.ContentType, cached.Body)
			c.Abort()
			return
		}

		writer := &responseWriter{
			ResponseWriter: c.Writer,
			body:           &bytes.Buffer{},
			statusCode:     http.StatusOK,
		}
		c.Writer = writer

		c.Next()

		if writer.statusCode < 200 || writer.statusCode >= 300 {
			return
		}
		resp := &CachedResponse{
			StatusCode:  writer.statusCode,
			ContentType: writer.Header().Get("Content-Type"),
			Body:        writer.body.Bytes(),
			Timestamp:   time.Now(),
		}
		if err := cfg.Store.Set(context.WithoutCancel(ctx), storeKey, resp, ttl); err != nil {
			log.Warn().Err(err).Msg("Failed to store idempotent response")
		}
	}
}

// idempotencyStoreKey hashes the client key with the method, path and body
// so a reused key on a different request does not replay.
func idempotencyStoreKey(idempotencyKey string, req *http.Request) string {
	hasher := sha256.New()
	hasher.Write([]byte(idempotencyKey))
	hasher.Write([]byte(req.Method))
	hasher.Write([]byte(req.URL.Path))

	if req.Body != nil {
		bodyBytes, _ := io.ReadAll(req.Body)
		req.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
		hasher.Write(bodyBytes)
	}

	return hex.EncodeToString(hasher.Sum(nil))
}

// responseWriter captures the response for storing.
type responseWriter struct {
	gin.ResponseWriter
	body       *bytes.Buffer
	statusCode int
}

func (w *responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *responseWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

func (w *responseWriter) WriteHeader(statusCode int) {
	w.statusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}
