package user

import (
	"context"
	"errors"

	"ecogarden-api/internal/domain/apperror"
	"ecogarden-api/internal/domain/entity"
	"ecogarden-api/internal/domain/gateway/db"
	"ecogarden-api/internal/domain/model"
	"ecogarden-api/pkg/crypto"
	"ecogarden-api/pkg/msg"
	"ecogarden-api/pkg/validator"
)

type userUseCase struct {
	gateway db.UserGateway
}

func NewUserUseCase(gateway db.UserGateway) UseCase {
	return &userUseCase{
		gateway: gateway,
	}
}

func (uc *userUseCase) Create(ctx context.Context, request model.CreateUserRequest) (*entity.User, error) {
	if err := validate(request); err != nil {
		return nil, err
	}

	if err := uc.checkConflicts(ctx, 0, request.Email, request.Pseudo); err != nil {
		return nil, err
	}

	hash, err := crypto.HashPassword(request.Password)
	if err != nil {
		return nil, apperror.Internal(msg.GetMessage("error.internal"), err)
	}

	user := &entity.User{
		Email:    request.Email,
		Password: hash,
		City:     request.City,
		Pseudo:   request.Pseudo,
		Roles:    []string{entity.RoleUser},
	}
	if err := uc.gateway.Create(ctx, user); err != nil {
		return nil, apperror.Internal(msg.GetMessage("error.internal"), err)
	}
	return user, nil
}

func (uc *userUseCase) Update(ctx context.Context, id uint, request model.UpdateUserRequest) (*entity.User, error) {
	user, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := validate(request); err != nil {
		return nil, err
	}

	if err := uc.checkConflicts(ctx, user.ID, request.Email, request.Pseudo); err != nil {
		return nil, err
	}

	hash, err := crypto.HashPassword(request.Password)
	if err != nil {
		return nil, apperror.Internal(msg.GetMessage("error.internal"), err)
	}

	user.Email = request.Email
	user.Password = hash
	user.City = request.City
	user.Pseudo = request.Pseudo
	user.Roles = []string(request.Role)

	if err := uc.gateway.Update(ctx, user); err != nil {
		return nil, apperror.Internal(msg.GetMessage("error.internal"), err)
	}
	return user, nil
}

func (uc *userUseCase) Delete(ctx context.Context, id uint) error {
	if _, err := uc.find(ctx, id); err != nil {
		return err
	}

	if err := uc.gateway.Delete(ctx, id); err != nil {
		return apperror.Internal(msg.GetMessage("error.internal"), err)
	}
	return nil
}

func (uc *userUseCase) find(ctx context.Context, id uint) (*entity.User, error) {
	user, err := uc.gateway.FindByID(ctx, id)
	if err != nil {
		return nil, apperror.Internal(msg.GetMessage("error.internal"), err)
	}
	if user == nil {
		return nil, apperror.NotFound(msg.GetMessage("user.error.not-found"))
	}
	return user, nil
}

// checkConflicts rejects an email or pseudo owned by another user than selfID
func (uc *userUseCase) checkConflicts(ctx context.Context, selfID uint, email, pseudo string) error {
	byEmail, err := uc.gateway.FindByEmail(ctx, email)
	if err != nil {
		return apperror.Internal(msg.GetMessage("error.internal"), err)
	}
	if byEmail != nil && byEmail.ID != selfID {
		return apperror.Conflict(msg.GetMessage("user.error.email-taken"))
	}

	byPseudo, err := uc.gateway.FindByPseudo(ctx, pseudo)
	if err != nil {
		return apperror.Internal(msg.GetMessage("error.internal"), err)
	}
	if byPseudo != nil && byPseudo.ID != selfID {
		return apperror.Conflict(msg.GetMessage("user.error.pseudo-taken"))
	}
	return nil
}

// validate reports missing fields first, then the email format, then the password length
func validate(request any) error {
	err := validator.ValidateStruct(request)
	if err == nil {
		return nil
	}

	var failures validator.FieldErrors
	if !errors.As(err, &failures) || len(failures) == 0 {
		return apperror.Internal(msg.GetMessage("error.internal"), err)
	}

	for _, failure := range failures {
		if failure.Tag == "required" || (failure.Field == "role" && failure.Tag == "min") {
			return apperror.Validation(msg.GetMessage("user.error.required", failure.Field))
		}
	}
	for _, failure := range failures {
		if failure.Field == "email" {
			return apperror.Validation(msg.GetMessage("user.error.email-format"))
		}
	}
	return apperror.ValidationWithDetails(msg.GetMessage("user.error.password-length"), failures)
}
