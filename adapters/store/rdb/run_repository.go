package rdb

import (
	"context"

	"github.com/google/uuid"
	"github.com/hostwire/hostwire/domain"
	"github.com/hostwire/hostwire/domain/model"
	"gorm.io/gorm"
)

// RunRepository is a GORM-backed implementation of domain.RunRepository.
type RunRepository struct{ db *gorm.DB }

func NewRunRepository(db *gorm.DB) *RunRepository { return &RunRepository{db: db} }

func runToRecord(r *model.ResolutionRun) *RunRecord {
	return &RunRecord{
		ID:                  r.ID,
		Name:                r.Name,
		ProviderID:          r.ProviderID,
		Hostname:            r.Hostname,
		DNSProvider:         string(r.DNSProvider),
		Outcome:             string(r.Outcome),
		ZoneID:              r.ZoneID,
		CertificateARN:      r.CertificateARN,
		LoadBalancerDNSName: r.LoadBalancerDNSName,
		Error:               r.Error,
		CreatedAt:           r.CreatedAt,
		UpdatedAt:           r.UpdatedAt,
	}
}

func runToModel(r *RunRecord) *model.ResolutionRun {
	return &model.ResolutionRun{
		ID:                  r.ID,
		Name:                r.Name,
		ProviderID:          r.ProviderID,
		Hostname:            r.Hostname,
		DNSProvider:         model.DNSProviderMode(r.DNSProvider),
		Outcome:             model.ResolveOutcome(r.Outcome),
		ZoneID:              r.ZoneID,
		CertificateARN:      r.CertificateARN,
		LoadBalancerDNSName: r.LoadBalancerDNSName,
		Error:               r.Error,
		CreatedAt:           r.CreatedAt,
		UpdatedAt:           r.UpdatedAt,
	}
}

func (r *RunRepository) Create(ctx context.Context, run *model.ResolutionRun) error {
	rec := runToRecord(run)
	if rec.ID == "" {
		rec.ID = "run-" + uuid.NewString()
		run.ID = rec.ID
	}
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *RunRepository) Get(ctx context.Context, id string) (*model.ResolutionRun, error) {
	var rec RunRecord
	if err := r.db.WithContext(ctx).First(&rec, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, model.ErrRunNotFound
		}
		return nil, err
	}
	return runToModel(&rec), nil
}

func (r *RunRepository) List(ctx context.Context) ([]*model.ResolutionRun, error) {
	var recs []RunRecord
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&recs).Error; err != nil {
		return nil, err
	}
	out := make([]*model.ResolutionRun, 0, len(recs))
	for i := range recs {
		out = append(out, runToModel(&recs[i]))
	}
	return out, nil
}

func (r *RunRepository) Update(ctx context.Context, run *model.ResolutionRun) error {
	rec := runToRecord(run)
	return r.db.WithContext(ctx).Model(&RunRecord{}).Where("id = ?", rec.ID).Updates(rec).Error
}

func (r *RunRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&RunRecord{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return model.ErrRunNotFound
	}
	return nil
}

var _ domain.RunRepository = (*RunRepository)(nil)
