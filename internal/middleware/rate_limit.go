package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	// Limit za checkout endpoint, po IP adresi.
	OrderMaxRequests = 100
	OrderWindow      = 1 * time.Minute
)

// OrderRateLimit ograničava broj zahteva ka checkout-u po klijentskoj IP
// adresi. Bez Redis-a (nil klijent) middleware propušta sve.
func OrderRateLimit(client *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if client == nil {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		key := "orders_rate:" + c.ClientIP()

		pipe := client.Pipeline()
		incr := pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, OrderWindow)
		if _, err := pipe.Exec(ctx); err != nil {
			// Redis problem ne sme da obori checkout.
			c.Next()
			return
		}

		if incr.Val() > OrderMaxRequests {
			ttl := client.TTL(ctx, key).Val()
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       fmt.Sprintf("Previše zahteva. Pokušajte ponovo za %d sekundi", int(ttl.Seconds())),
				"retry_after": int(ttl.Seconds()),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
