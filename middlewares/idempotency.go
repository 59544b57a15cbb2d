package middlewares

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// กันกดซ้ำ (double-tap) บน endpoint ที่เปลี่ยนสถานะ
// client ส่ง X-Request-Id มา → request id เดิมได้คำตอบเดิม ไม่ทำซ้ำ
// ไม่ส่ง header มาก็ผ่านปกติ (opt-in)

const provisionalLockTTL = 60 * time.Second

type idempEntry struct {
	InProgress bool   `json:"in_progress"`
	Code       int    `json:"code"`
	Body       []byte `json:"body"`
}

type bodyRecorder struct {
	gin.ResponseWriter
	buf *bytes.Buffer
}

func (r *bodyRecorder) Write(b []byte) (int, error) {
	r.buf.Write(b)
	return r.ResponseWriter.Write(b)
}

func IdempotencyMiddleware(rdb *redis.Client, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}
		reqID := c.GetHeader("X-Request-Id")
		if reqID == "" {
			c.Next()
			return
		}

		key := fmt.Sprintf("idemp:%s:%s:%d:%s",
			c.Request.Method, c.FullPath(), utils.CurrentUserID(c), reqID)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		raw, _ := json.Marshal(idempEntry{InProgress: true})
		ok, err := rdb.SetNX(ctx, key, raw, provisionalLockTTL).Result()
		if err != nil {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable,
				gin.H{"ok": false, "error": "idempotency store unavailable"})
			return
		}
		if !ok {
			// เคยเห็น request id นี้แล้ว → replay ถ้าจบแล้ว, 409 ถ้ายังวิ่งอยู่
			var cur idempEntry
			if data, err := rdb.Get(ctx, key).Bytes(); err == nil {
				_ = json.Unmarshal(data, &cur)
			}
			if !cur.InProgress && cur.Code != 0 {
				c.Data(cur.Code, "application/json", cur.Body)
				c.Abort()
				return
			}
			c.AbortWithStatusJSON(http.StatusConflict,
				gin.H{"ok": false, "error": "request is already in progress"})
			return
		}

		rec := &bodyRecorder{ResponseWriter: c.Writer, buf: &bytes.Buffer{}}
		c.Writer = rec

		c.Next()

		// 5xx = อาการชั่วคราว ไม่เก็บไว้ replay — ปล่อย lock ให้ retry ได้
		if rec.Status() >= http.StatusInternalServerError {
			if err := rdb.Del(context.Background(), key).Err(); err != nil {
				log.Printf("idempotency: release %s failed: %v", key, err)
			}
			return
		}

		final, _ := json.Marshal(idempEntry{
			InProgress: false,
			Code:       rec.Status(),
			Body:       rec.buf.Bytes(),
		})
		if err := rdb.Set(context.Background(), key, final, ttl).Err(); err != nil {
			log.Printf("idempotency: save %s failed: %v", key, err)
		}
	}
}
