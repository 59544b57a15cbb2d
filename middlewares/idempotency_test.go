package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func doPost(r *gin.Engine, reqID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/things", nil)
	if reqID != "" {
		req.Header.Set("X-Request-Id", reqID)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIdempotency_ReplaysCompletedResponse(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rdb := newTestRedis(t)

	calls := 0
	r := gin.New()
	r.POST("/things", IdempotencyMiddleware(rdb, time.Minute), func(c *gin.Context) {
		calls++
		c.JSON(http.StatusCreated, gin.H{"ok": true, "call": calls})
	})

	w1 := doPost(r, "req-1")
	w2 := doPost(r, "req-1")
	assert.Equal(t, http.StatusCreated, w1.Code)
	assert.Equal(t, http.StatusCreated, w2.Code)
	assert.Equal(t, w1.Body.String(), w2.Body.String()) // replay คำตอบเดิม
	assert.Equal(t, 1, calls)

	// request id ใหม่ = งานใหม่
	doPost(r, "req-2")
	assert.Equal(t, 2, calls)
}

func TestIdempotency_NoHeaderPassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rdb := newTestRedis(t)

	calls := 0
	r := gin.New()
	r.POST("/things", IdempotencyMiddleware(rdb, time.Minute), func(c *gin.Context) {
		calls++
		c.JSON(http.StatusCreated, gin.H{"ok": true})
	})

	doPost(r, "")
	doPost(r, "")
	assert.Equal(t, 2, calls)
}

// 5xx ห้ามถูกจำ — client ต้อง retry ด้วย request id เดิมแล้วได้ทำงานจริง
func TestIdempotency_ServerErrorNotCached(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rdb := newTestRedis(t)

	calls := 0
	r := gin.New()
	r.POST("/things", IdempotencyMiddleware(rdb, time.Minute), func(c *gin.Context) {
		calls++
		if calls == 1 {
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "boom"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"ok": true})
	})

	w1 := doPost(r, "req-1")
	assert.Equal(t, http.StatusInternalServerError, w1.Code)

	w2 := doPost(r, "req-1")
	assert.Equal(t, http.StatusCreated, w2.Code)
	assert.Equal(t, 2, calls)
}
