package usecases_port

import (
	"context"

	"catalog-service/internal/core/domain"
)

type GetTeamMembersUseCase interface {
	Execute(ctx context.Context) ([]domain.TeamMember, error)
}
