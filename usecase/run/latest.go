package run

import (
	"context"

	"github.com/hostwire/hostwire/domain/model"
)

// Latest returns the most recent run for hostname, or every hostname when
// hostname is empty. Returns model.ErrRunNotFound when no run matches.
func (u *UseCase) Latest(ctx context.Context, hostname string) (*model.ResolutionRun, error) {
	runs, err := u.Repos.Run.List(ctx)
	if err != nil {
		return nil, err
	}
	var latest *model.ResolutionRun
	for _, r := range runs {
		if hostname != "" && r.Hostname != hostname {
			continue
		}
		if latest == nil || r.CreatedAt.After(latest.CreatedAt) {
			latest = r
		}
	}
	if latest == nil {
		return nil, model.ErrRunNotFound
	}
	return latest, nil
}
