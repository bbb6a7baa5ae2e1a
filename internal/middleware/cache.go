package middleware

import (
	"bytes"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/library-reservation/internal/config"
)

// captureWriter captures the response body and status while forwarding
// them to the client, so a successful response can be stored in Redis
// after the handler runs.
type captureWriter struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
	size   int
	limit  int
}

func (w *captureWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.size += len(b)
	if w.size <= w.limit {
		w.buf.Write(b)
	}
	return w.ResponseWriter.Write(b)
}

// cacheEntry is the JSON document stored in Redis for each cached
// response.
type cacheEntry struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// ResponseCache returns a middleware that serves repeated read requests
// from Redis.  Only configured methods (GET by default) are considered,
// and only 200 responses small enough to fit under MaxBodyBytes are
// stored.  The cache key hashes method, path and raw query so distinct
// filters cache separately.  When caching is disabled or Redis is
// unavailable the middleware passes every request straight through.
func ResponseCache(cfg config.CacheConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error { return next(c) }
		}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if !cfg.Methods[req.Method] {
				return next(c)
			}

			sum := sha1.Sum([]byte(req.Method + "|" + req.URL.Path + "|" + req.URL.RawQuery))
			key := cfg.Prefix + ":" + hex.EncodeToString(sum[:])

			ctx := req.Context()
			if raw, err := rdb.Get(ctx, key).Bytes(); err == nil {
				var ent cacheEntry
				if json.Unmarshal(raw, &ent) == nil {
					c.Response().Header().Set("X-Cache", "HIT")
					return c.Blob(ent.Status, ent.ContentType, ent.Body)
				}
			}

			cw := &captureWriter{ResponseWriter: c.Response().Writer, status: http.StatusOK, limit: cfg.MaxBodyBytes}
			c.Response().Writer = cw
			c.Response().Header().Set("X-Cache", "MISS")

			if err := next(c); err != nil {
				return err
			}

			// Only cache complete 200 responses; oversized bodies were
			// truncated in the buffer and must not be stored.
			if cw.status == http.StatusOK && cw.size <= cfg.MaxBodyBytes {
				ent := cacheEntry{
					Status:      cw.status,
					ContentType: c.Response().Header().Get(echo.HeaderContentType),
					Body:        cw.buf.Bytes(),
				}
				if raw, err := json.Marshal(ent); err == nil {
					if err := rdb.Set(ctx, key, raw, cfg.TTL).Err(); err != nil {
						c.Logger().Warnf("cache store failed (middleware::ResponseCache): %v", err)
					}
				}
			}
			return nil
		}
	}
}
