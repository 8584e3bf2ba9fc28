package db

import (
	"context"
	"database/sql"
	"strconv"
	"time"

	"ecogarden-api/internal/domain/model"
)

type SQLHealthDBGateway struct {
	DB     *sql.DB
	Driver string
}

var _ HealthDBGateway = (*SQLHealthDBGateway)(nil)

func NewSQLHealthDBGateway(db *sql.DB, driver string) *SQLHealthDBGateway {
	return &SQLHealthDBGateway{DB: db, Driver: driver}
}

func (gateway *SQLHealthDBGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := gateway.DB.PingContext(ctx); err != nil {
		return model.ComponentHealthStatus{
			Status: model.StatusDown,
			Details: map[string]string{
				"driver":  gateway.Driver,
				"message": err.Error(),
			},
		}
	}

	stats := gateway.DB.Stats()
	return model.ComponentHealthStatus{
		Status: model.StatusUp,
		Details: map[string]string{
			"driver":           gateway.Driver,
			"open_connections": strconv.Itoa(stats.OpenConnections),
			"in_use":           strconv.Itoa(stats.InUse),
			"message":          string(model.StatusUp),
		},
	}
}
