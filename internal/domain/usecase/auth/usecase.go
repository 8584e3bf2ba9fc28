package auth

import (
	"context"

	"ecogarden-api/internal/domain/model"
)

type UseCase interface {
	// Login checks the credentials and returns a signed bearer token
	Login(ctx context.Context, request model.LoginRequest) (*model.LoginResponse, error)
}

// TokenIssuer signs a token for an authenticated principal
type TokenIssuer interface {
	Issue(principal model.Principal) (string, error)
}
