package program

import "context"

type ProgramRepository interface {
	Create(ctx context.Context, program *Program) error
	Update(ctx context.Context, program *Program) error
	GetByID(ctx context.Context, programID string) (*Program, error)
	ListActive(ctx context.Context) ([]*Program, error)
	ListByCoachID(ctx context.Context, coachID string) ([]*Program, error)
}
