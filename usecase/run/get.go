package run

import (
	"context"

	"github.com/hostwire/hostwire/domain/model"
)

func (u *UseCase) Get(ctx context.Context, id string) (*model.ResolutionRun, error) {
	if id == "" {
		return nil, model.ErrRunNotFound
	}
	return u.Repos.Run.Get(ctx, id)
}
