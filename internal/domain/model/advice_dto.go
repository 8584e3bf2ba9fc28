package model

import "ecogarden-api/internal/domain/entity"

// AdviceRequest is the body of advice creation and update
type AdviceRequest struct {
	Advice *string `json:"advice" validate:"required,min=1,max=255" example:"Paillez vos fraisiers"`
	Months []int   `json:"months" validate:"required,min=1,unique,dive,min=1,max=12" example:"3,4"`
}

type AdviceResponse struct {
	ID     uint   `json:"id"`
	Months []int  `json:"month"`
	Advice string `json:"advice"`
}

func NewAdviceResponse(advice entity.Advice) AdviceResponse {
	return AdviceResponse{
		ID:     advice.ID,
		Months: advice.Months(),
		Advice: advice.Advice,
	}
}

func NewAdviceResponses(advices []entity.Advice) []AdviceResponse {
	responses := make([]AdviceResponse, len(advices))
	for i, advice := range advices {
		responses[i] = NewAdviceResponse(advice)
	}
	return responses
}
