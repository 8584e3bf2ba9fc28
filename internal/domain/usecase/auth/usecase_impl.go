package auth

import (
	"context"

	"ecogarden-api/internal/domain/apperror"
	"ecogarden-api/internal/domain/gateway/db"
	"ecogarden-api/internal/domain/model"
	"ecogarden-api/pkg/crypto"
	"ecogarden-api/pkg/msg"
	"ecogarden-api/pkg/validator"
)

type authUseCase struct {
	gateway db.UserGateway
	issuer  TokenIssuer
}

func NewAuthUseCase(gateway db.UserGateway, issuer TokenIssuer) UseCase {
	return &authUseCase{
		gateway: gateway,
		issuer:  issuer,
	}
}

func (uc *authUseCase) Login(ctx context.Context, request model.LoginRequest) (*model.LoginResponse, error) {
	if err := validator.ValidateStruct(request); err != nil {
		return nil, apperror.Unauthorized(msg.GetMessage("auth.error.invalid-credentials"))
	}

	user, err := uc.gateway.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, apperror.Internal(msg.GetMessage("error.internal"), err)
	}
	if user == nil || !crypto.VerifyPassword(user.Password, request.Password) {
		return nil, apperror.Unauthorized(msg.GetMessage("auth.error.invalid-credentials"))
	}

	token, err := uc.issuer.Issue(model.Principal{Email: user.Email, Roles: user.Roles})
	if err != nil {
		return nil, apperror.Internal(msg.GetMessage("error.internal"), err)
	}
	return &model.LoginResponse{Token: token}, nil
}
