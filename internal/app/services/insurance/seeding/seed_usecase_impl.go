package seeding

import (
	"aushealthsim/internal/app/contracts"
	"aushealthsim/internal/pkg/constvars"
	"aushealthsim/internal/pkg/dto/records"
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

type seedUsecase struct {
	SampleDataRepository   contracts.SampleDataRepository
	MemberRepository       contracts.MemberRepository
	CoveragePlanRepository contracts.CoveragePlanRepository
	ProviderRepository     contracts.ProviderRepository
	Log                    *zap.Logger
}

var (
	seedUsecaseInstance contracts.SeedUsecase
	onceSeedUsecase     sync.Once
)

func NewSeedUsecase(
	sampleDataRepository contracts.SampleDataRepository,
	memberRepository contracts.MemberRepository,
	coveragePlanRepository contracts.CoveragePlanRepository,
	providerRepository contracts.ProviderRepository,
	logger *zap.Logger,
) contracts.SeedUsecase {
	onceSeedUsecase.Do(func() {
		instance := &seedUsecase{
			SampleDataRepository:   sampleDataRepository,
			MemberRepository:       memberRepository,
			CoveragePlanRepository: coveragePlanRepository,
			ProviderRepository:     providerRepository,
			Log:                    logger,
		}
		seedUsecaseInstance = instance
	})
	return seedUsecaseInstance
}

func (uc *seedUsecase) SeedMembers(ctx context.Context, count int, asOf time.Time) (int, error) {
	uc.Log.Info("seedUsecase.SeedMembers called",
		zap.Int(constvars.LoggingCountKey, count),
		zap.Time(constvars.LoggingDateKey, asOf),
	)

	numbers, err := uc.MemberRepository.FindNumbers(ctx)
	if err != nil {
		uc.Log.Error("seedUsecase.SeedMembers error listing existing member numbers", zap.Error(err))
		return 0, err
	}
	taken := make(map[string]bool, len(numbers))
	for _, number := range numbers {
		taken[number] = true
	}

	sampleRecords, err := uc.SampleDataRepository.TakeUnused(count)
	if err != nil {
		uc.Log.Error("seedUsecase.SeedMembers error drawing sample records", zap.Error(err))
		return 0, err
	}

	// A drawn record whose member number already sits in the database is
	// dropped rather than inserted again, so resetting the used list and
	// reseeding never trips the unique member number key.
	fresh := make([]records.SampleMemberRecord, 0, len(sampleRecords))
	for _, record := range sampleRecords {
		if taken[record.MemberID] {
			continue
		}
		fresh = append(fresh, record)
	}
	if skipped := len(sampleRecords) - len(fresh); skipped > 0 {
		uc.Log.Warn("seedUsecase.SeedMembers dropping records already in the database",
			zap.Int(constvars.LoggingCountKey, skipped),
		)
	}

	members := convertMembers(fresh, asOf, uc.Log)
	if len(members) == 0 {
		uc.Log.Warn("seedUsecase.SeedMembers produced no insertable members")
		return 0, nil
	}

	inserted, err := uc.MemberRepository.BulkInsert(ctx, members, asOf)
	if err != nil {
		uc.Log.Error("seedUsecase.SeedMembers error inserting members", zap.Error(err))
		return inserted, err
	}

	uc.Log.Info("seedUsecase.SeedMembers succeeded",
		zap.Int(constvars.LoggingRowsKey, inserted),
	)
	return inserted, nil
}

func (uc *seedUsecase) SeedPlans(ctx context.Context, count int, asOf time.Time) (int, error) {
	uc.Log.Info("seedUsecase.SeedPlans called",
		zap.Int(constvars.LoggingCountKey, count),
		zap.Time(constvars.LoggingDateKey, asOf),
	)

	existing, err := uc.CoveragePlanRepository.FindAll(ctx)
	if err != nil {
		uc.Log.Error("seedUsecase.SeedPlans error listing existing plans", zap.Error(err))
		return 0, err
	}
	taken := make(map[string]bool, len(existing))
	for _, plan := range existing {
		taken[plan.PlanCode] = true
	}

	plans := generatePlans(count, asOf, taken)

	inserted, err := uc.CoveragePlanRepository.BulkInsert(ctx, plans, asOf)
	if err != nil {
		uc.Log.Error("seedUsecase.SeedPlans error inserting plans", zap.Error(err))
		return inserted, err
	}

	uc.Log.Info("seedUsecase.SeedPlans succeeded",
		zap.Int(constvars.LoggingRowsKey, inserted),
	)
	return inserted, nil
}

func (uc *seedUsecase) SeedProviders(ctx context.Context, count int, asOf time.Time) (int, error) {
	uc.Log.Info("seedUsecase.SeedProviders called",
		zap.Int(constvars.LoggingCountKey, count),
		zap.Time(constvars.LoggingDateKey, asOf),
	)

	existing, err := uc.ProviderRepository.FindAll(ctx)
	if err != nil {
		uc.Log.Error("seedUsecase.SeedProviders error listing existing providers", zap.Error(err))
		return 0, err
	}
	taken := make(map[string]bool, len(existing))
	for _, provider := range existing {
		taken[provider.ProviderNumber] = true
	}

	providers, err := generateProviders(count, asOf, taken)
	if err != nil {
		uc.Log.Error("seedUsecase.SeedProviders error generating providers", zap.Error(err))
		return 0, err
	}

	inserted, err := uc.ProviderRepository.BulkInsert(ctx, providers, asOf)
	if err != nil {
		uc.Log.Error("seedUsecase.SeedProviders error inserting providers", zap.Error(err))
		return inserted, err
	}

	uc.Log.Info("seedUsecase.SeedProviders succeeded",
		zap.Int(constvars.LoggingRowsKey, inserted),
	)
	return inserted, nil
}
