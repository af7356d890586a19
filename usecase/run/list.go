package run

import (
	"context"

	"github.com/hostwire/hostwire/domain/model"
)

func (u *UseCase) List(ctx context.Context) ([]*model.ResolutionRun, error) {
	return u.Repos.Run.List(ctx)
}
