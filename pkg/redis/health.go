package redis

import (
	"context"
	"strconv"
	"time"
)

// HealthCheck pings the server and reports the pool state
func (c *Client) HealthCheck(ctx context.Context) (HealthStatus, map[string]string) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	details := map[string]string{
		"host":     c.config.Host,
		"port":     strconv.Itoa(c.config.Port),
		"database": strconv.Itoa(c.config.Database),
	}

	if err := c.Ping(ctx); err != nil {
		details["message"] = err.Error()
		return StatusDown, details
	}

	stats := c.rdb.PoolStats()
	details["total_conns"] = strconv.FormatUint(uint64(stats.TotalConns), 10)
	details["idle_conns"] = strconv.FormatUint(uint64(stats.IdleConns), 10)
	details["message"] = string(StatusUp)
	return StatusUp, details
}
