package weather

import (
	"context"

	"ecogarden-api/internal/domain/apperror"
	"ecogarden-api/internal/domain/gateway/db"
	"ecogarden-api/internal/domain/model"
	"ecogarden-api/pkg/msg"
)

// CityResolver picks the city of a weather lookup
type CityResolver struct {
	users db.UserGateway
}

func NewCityResolver(users db.UserGateway) *CityResolver {
	return &CityResolver{users: users}
}

// Resolve returns explicitCity verbatim when set, otherwise the profile city of principal
func (r *CityResolver) Resolve(ctx context.Context, explicitCity string, principal *model.Principal) (string, error) {
	if explicitCity != "" {
		return explicitCity, nil
	}

	if principal == nil || principal.Email == "" {
		return "", apperror.NotFound(msg.GetMessage("weather.error.no-city"))
	}

	user, err := r.users.FindByEmail(ctx, principal.Email)
	if err != nil {
		return "", apperror.Internal(msg.GetMessage("error.internal"), err)
	}
	if user == nil || user.City == "" {
		return "", apperror.NotFound(msg.GetMessage("weather.error.no-city"))
	}

	return user.City, nil
}
