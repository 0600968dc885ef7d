package usecases_port

import (
	"context"

	"catalog-service/internal/core/domain"
)

type CreateTeamMemberUseCase interface {
	Execute(ctx context.Context, input domain.NewTeamMember) (*domain.TeamMember, error)
}
