package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecogarden-api/internal/domain/entity"
	"ecogarden-api/internal/domain/model"
	"ecogarden-api/internal/infra/database/testutil"
)

func newAdvice(text string, months ...int) *entity.Advice {
	advice := &entity.Advice{Advice: text}
	advice.SetMonths(months)
	return advice
}

func TestAdviceGatewayCRUD(t *testing.T) {
	gateway := NewGormAdviceGateway(testutil.MustOpenTestDB(t))
	ctx := context.Background()

	advice := newAdvice("Semez les tomates", 3, 4)
	require.NoError(t, gateway.Create(ctx, advice))
	require.NotZero(t, advice.ID)

	found, err := gateway.FindByID(ctx, advice.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, []int{3, 4}, found.Months())

	found.Advice = "Semez les tomates sous abri"
	found.SetMonths([]int{2, 3})
	require.NoError(t, gateway.Update(ctx, found))

	updated, err := gateway.FindByID(ctx, advice.ID)
	require.NoError(t, err)
	assert.Equal(t, "Semez les tomates sous abri", updated.Advice)
	assert.Equal(t, "2,3", updated.Month)

	require.NoError(t, gateway.Delete(ctx, advice.ID))
	missing, err := gateway.FindByID(ctx, advice.ID)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestAdviceFindByMonthMatchesWholeElements(t *testing.T) {
	gateway := NewGormAdviceGateway(testutil.MustOpenTestDB(t))
	ctx := context.Background()

	require.NoError(t, gateway.Create(ctx, newAdvice("janvier", 1)))
	require.NoError(t, gateway.Create(ctx, newAdvice("novembre", 11)))
	require.NoError(t, gateway.Create(ctx, newAdvice("hiver", 12, 1, 2)))

	january, err := gateway.FindByMonth(ctx, 1)
	require.NoError(t, err)
	require.Len(t, january, 2)
	assert.Equal(t, "janvier", january[0].Advice)
	assert.Equal(t, "hiver", january[1].Advice)

	june, err := gateway.FindByMonth(ctx, 6)
	require.NoError(t, err)
	assert.Empty(t, june)
}

func TestUserGatewayFinders(t *testing.T) {
	gateway := NewGormUserGateway(testutil.MustOpenTestDB(t))
	ctx := context.Background()

	users := []*entity.User{
		{Email: "ana@eco.fr", Password: "x", City: "Lyon", Pseudo: "ana", Roles: []string{entity.RoleUser}},
		{Email: "bob@eco.fr", Password: "x", City: "Paris", Pseudo: "bob", Roles: []string{entity.RoleAdmin}},
		{Email: "cid@eco.fr", Password: "x", City: "Lyon", Pseudo: "cid"},
		{Email: "dan@eco.fr", Password: "x", Pseudo: "dan"},
	}
	for _, user := range users {
		require.NoError(t, gateway.Create(ctx, user))
	}

	byEmail, err := gateway.FindByEmail(ctx, "bob@eco.fr")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, "bob", byEmail.Pseudo)
	assert.True(t, byEmail.HasRole(entity.RoleAdmin))

	byPseudo, err := gateway.FindByPseudo(ctx, "ana")
	require.NoError(t, err)
	require.NotNil(t, byPseudo)
	assert.Equal(t, users[0].ID, byPseudo.ID)

	byID, err := gateway.FindByID(ctx, users[2].ID)
	require.NoError(t, err)
	assert.Equal(t, "cid@eco.fr", byID.Email)

	none, err := gateway.FindByEmail(ctx, "nobody@eco.fr")
	require.NoError(t, err)
	assert.Nil(t, none)

	cities, err := gateway.FindDistinctCities(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Lyon", "Paris"}, cities)
}

func TestUserGatewayUniqueEmail(t *testing.T) {
	gateway := NewGormUserGateway(testutil.MustOpenTestDB(t))
	ctx := context.Background()

	require.NoError(t, gateway.Create(ctx, &entity.User{Email: "ana@eco.fr", Password: "x", Pseudo: "ana"}))
	assert.Error(t, gateway.Create(ctx, &entity.User{Email: "ana@eco.fr", Password: "x", Pseudo: "other"}))
}

func TestUserGatewayUpdateAndDelete(t *testing.T) {
	gateway := NewGormUserGateway(testutil.MustOpenTestDB(t))
	ctx := context.Background()

	user := &entity.User{Email: "ana@eco.fr", Password: "x", City: "Lyon", Pseudo: "ana"}
	require.NoError(t, gateway.Create(ctx, user))

	user.City = "Nantes"
	user.Roles = []string{entity.RoleAdmin}
	require.NoError(t, gateway.Update(ctx, user))

	reloaded, err := gateway.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Nantes", reloaded.City)
	assert.Equal(t, []string{entity.RoleAdmin}, []string(reloaded.Roles))

	require.NoError(t, gateway.Delete(ctx, user.ID))
	gone, err := gateway.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestSQLHealthDBGateway(t *testing.T) {
	db := testutil.MustOpenTestDB(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)

	gateway := NewSQLHealthDBGateway(sqlDB, "sqlite")
	health := gateway.Health(context.Background())
	assert.Equal(t, model.StatusUp, health.Status)
	assert.Equal(t, "sqlite", health.Details["driver"])

	require.NoError(t, sqlDB.Close())
	health = gateway.Health(context.Background())
	assert.Equal(t, model.StatusDown, health.Status)
}
