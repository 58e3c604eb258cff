package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/baonguyen/folio-api/internal/domain/user"
)

type GetMeUseCase struct {
	userRepo user.Repository
}

func NewGetMeUseCase(repo user.Repository) *GetMeUseCase {
	return &GetMeUseCase{userRepo: repo}
}

type GetMeInput struct {
	UserID uuid.UUID
}

type GetMeOutput struct {
	User *user.User
}

func (uc *GetMeUseCase) Execute(ctx context.Context, input GetMeInput) (*GetMeOutput, error) {
	u, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	return &GetMeOutput{User: u}, nil
}
