package health

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"ecogarden-api/internal/domain/model"
)

type staticGateway model.HealthStatus

func (g staticGateway) Health(context.Context) model.ComponentHealthStatus {
	return model.ComponentHealthStatus{Status: model.HealthStatus(g)}
}

func TestCheckHealth(t *testing.T) {
	cases := []struct {
		name     string
		db       model.HealthStatus
		cache    model.HealthStatus
		expected model.HealthStatus
	}{
		{"all up", model.StatusUp, model.StatusUp, model.StatusUp},
		{"database down", model.StatusDown, model.StatusUp, model.StatusDown},
		{"cache unknown", model.StatusUp, model.StatusUnknown, model.StatusDown},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			useCase := NewHealthUseCase(staticGateway(tc.db), staticGateway(tc.cache))
			response := useCase.CheckHealth(context.Background())
			assert.Equal(t, tc.expected, response.Status)
			assert.Equal(t, tc.db, response.Database.Status)
			assert.Equal(t, tc.cache, response.Cache.Status)
		})
	}
}
