package advice

import (
	"context"
	"errors"
	"time"

	"ecogarden-api/internal/domain/apperror"
	"ecogarden-api/internal/domain/entity"
	"ecogarden-api/internal/domain/gateway/db"
	"ecogarden-api/internal/domain/model"
	"ecogarden-api/pkg/msg"
	"ecogarden-api/pkg/util/numberutils"
	"ecogarden-api/pkg/validator"
)

type adviceUseCase struct {
	gateway db.AdviceGateway
	now     func() time.Time
}

// NewAdviceUseCase builds the use case, now defaults to time.Now
func NewAdviceUseCase(gateway db.AdviceGateway, now func() time.Time) UseCase {
	if now == nil {
		now = time.Now
	}
	return &adviceUseCase{
		gateway: gateway,
		now:     now,
	}
}

func (uc *adviceUseCase) FindCurrentMonth(ctx context.Context) ([]entity.Advice, error) {
	return uc.FindByMonth(ctx, int(uc.now().Month()))
}

func (uc *adviceUseCase) FindByMonth(ctx context.Context, month int) ([]entity.Advice, error) {
	if !numberutils.IsIntInRange(month, 1, 12) {
		return nil, apperror.Validation(msg.GetMessage("advice.error.month-range"))
	}

	advices, err := uc.gateway.FindByMonth(ctx, month)
	if err != nil {
		return nil, apperror.Internal(msg.GetMessage("error.internal"), err)
	}
	if len(advices) == 0 {
		return nil, apperror.NotFound(msg.GetMessage("advice.error.none-for-month"))
	}
	return advices, nil
}

func (uc *adviceUseCase) Create(ctx context.Context, request model.AdviceRequest) (*entity.Advice, error) {
	if err := validate(request); err != nil {
		return nil, err
	}

	advice := &entity.Advice{Advice: *request.Advice}
	advice.SetMonths(request.Months)

	if err := uc.gateway.Create(ctx, advice); err != nil {
		return nil, apperror.Internal(msg.GetMessage("error.internal"), err)
	}
	return advice, nil
}

func (uc *adviceUseCase) Update(ctx context.Context, id uint, request model.AdviceRequest) (*entity.Advice, error) {
	advice, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := validate(request); err != nil {
		return nil, err
	}

	advice.Advice = *request.Advice
	advice.SetMonths(request.Months)

	if err := uc.gateway.Update(ctx, advice); err != nil {
		return nil, apperror.Internal(msg.GetMessage("error.internal"), err)
	}
	return advice, nil
}

func (uc *adviceUseCase) Delete(ctx context.Context, id uint) error {
	if _, err := uc.find(ctx, id); err != nil {
		return err
	}

	if err := uc.gateway.Delete(ctx, id); err != nil {
		return apperror.Internal(msg.GetMessage("error.internal"), err)
	}
	return nil
}

func (uc *adviceUseCase) find(ctx context.Context, id uint) (*entity.Advice, error) {
	advice, err := uc.gateway.FindByID(ctx, id)
	if err != nil {
		return nil, apperror.Internal(msg.GetMessage("error.internal"), err)
	}
	if advice == nil {
		return nil, apperror.NotFound(msg.GetMessage("advice.error.not-found"))
	}
	return advice, nil
}

// validate reports the first failing field with its catalogue message
func validate(request model.AdviceRequest) error {
	err := validator.ValidateStruct(request)
	if err == nil {
		return nil
	}

	var failures validator.FieldErrors
	if !errors.As(err, &failures) || len(failures) == 0 {
		return apperror.Validation(msg.GetMessage("advice.error.invalid"))
	}

	first := failures[0]
	switch {
	case first.Tag == "required":
		return apperror.ValidationWithDetails(msg.GetMessage("advice.error.invalid"), failures)
	case first.Field == "advice":
		return apperror.ValidationWithDetails(msg.GetMessage("advice.error.text"), failures)
	default:
		return apperror.ValidationWithDetails(msg.GetMessage("advice.error.months"), failures)
	}
}
