package cache

import (
	"context"
	"strconv"

	"ecogarden-api/internal/domain/model"
	"ecogarden-api/pkg/redis"
)

type HealthGateway interface {
	Health(ctx context.Context) model.ComponentHealthStatus
}

// StoreHealthGateway reports the state of the store behind the weather cache
type StoreHealthGateway struct {
	memory *MemoryStore
	client *redis.Client
}

func NewMemoryHealthGateway(store *MemoryStore) *StoreHealthGateway {
	return &StoreHealthGateway{memory: store}
}

func NewRedisHealthGateway(client *redis.Client) *StoreHealthGateway {
	return &StoreHealthGateway{client: client}
}

func (gateway *StoreHealthGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	switch {
	case gateway.client != nil:
		status, details := gateway.client.HealthCheck(ctx)
		details["driver"] = "redis"
		return model.ComponentHealthStatus{
			Status:  toModelStatus(status),
			Details: details,
		}
	case gateway.memory != nil:
		return model.ComponentHealthStatus{
			Status: model.StatusUp,
			Details: map[string]string{
				"driver":  "memory",
				"entries": strconv.Itoa(gateway.memory.Len()),
			},
		}
	default:
		return model.ComponentHealthStatus{
			Status:  model.StatusUnknown,
			Details: map[string]string{"message": "No cache store configured"},
		}
	}
}

func toModelStatus(status redis.HealthStatus) model.HealthStatus {
	switch status {
	case redis.StatusUp:
		return model.StatusUp
	case redis.StatusDown:
		return model.StatusDown
	default:
		return model.StatusUnknown
	}
}
