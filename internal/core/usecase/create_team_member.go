package usecase

import (
	"context"
	"fmt"

	"catalog-service/internal/contextkeys"
	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/port"
)

// CreateTeamMemberUseCase добавляет сотрудника (админская операция).
type CreateTeamMemberUseCase struct {
	repo port.CatalogRepositoryPort
}

func NewCreateTeamMemberUseCase(repo port.CatalogRepositoryPort) *CreateTeamMemberUseCase {
	return &CreateTeamMemberUseCase{repo: repo}
}

func (uc *CreateTeamMemberUseCase) Execute(ctx context.Context, input domain.NewTeamMember) (*domain.TeamMember, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "CreateTeamMember",
		"name":     input.Name,
	})

	ucLogger.Info("Use case started: creating team member", nil)

	member, err := uc.repo.CreateTeamMember(ctx, input)
	if err != nil {
		ucLogger.Error("Repository returned an error during create", err, nil)
		return nil, fmt.Errorf("failed to create team member: %w", err)
	}

	ucLogger.Info("Use case finished: team member created", port.Fields{"member_id": member.ID})
	return member, nil
}
