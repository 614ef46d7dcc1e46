package sampledata

import (
	"aushealthsim/internal/app/config"
	"aushealthsim/internal/app/contracts"
	"aushealthsim/internal/pkg/constvars"
	"aushealthsim/internal/pkg/dto/records"
	"aushealthsim/internal/pkg/exceptions"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type sampleDataFileRepository struct {
	SamplePath string
	UsedPath   string
	Log        *zap.Logger
}

var (
	sampleDataFileRepositoryInstance contracts.SampleDataRepository
	onceSampleDataFileRepository     sync.Once
)

func NewSampleDataFileRepository(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.SampleDataRepository {
	onceSampleDataFileRepository.Do(func() {
		instance := &sampleDataFileRepository{
			SamplePath: internalConfig.App.SampleDataPath,
			UsedPath:   internalConfig.App.UsedMembersPath,
			Log:        logger,
		}
		sampleDataFileRepositoryInstance = instance
	})
	return sampleDataFileRepositoryInstance
}

func (r *sampleDataFileRepository) LoadAll() ([]records.SampleMemberRecord, error) {
	raw, err := os.ReadFile(r.SamplePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, exceptions.ErrSampleDataNotFound(err, r.SamplePath)
		}
		return nil, exceptions.ErrCannotReadFile(err, r.SamplePath)
	}

	var sampleRecords []records.SampleMemberRecord
	if err := json.Unmarshal(raw, &sampleRecords); err != nil {
		return nil, exceptions.ErrCannotUnmarshalJSON(err)
	}

	r.Log.Info("sample data loaded",
		zap.String(constvars.LoggingPathKey, r.SamplePath),
		zap.Int(constvars.LoggingCountKey, len(sampleRecords)),
	)
	return sampleRecords, nil
}

// TakeUnused returns up to count records that have never been handed out
// before, in file order, and marks them used. Fewer than count come back
// once the file runs low.
func (r *sampleDataFileRepository) TakeUnused(count int) ([]records.SampleMemberRecord, error) {
	all, err := r.LoadAll()
	if err != nil {
		return nil, err
	}

	used, err := r.loadUsed()
	if err != nil {
		return nil, err
	}

	var unused []records.SampleMemberRecord
	for _, record := range all {
		if !used[record.MemberID] {
			unused = append(unused, record)
		}
	}

	if len(unused) < count {
		r.Log.Warn("fewer unused sample members available than requested",
			zap.Int("available", len(unused)),
			zap.Int("requested", count),
		)
	}
	if count < len(unused) {
		unused = unused[:count]
	}

	for _, record := range unused {
		used[record.MemberID] = true
	}
	if err := r.saveUsed(used); err != nil {
		return nil, err
	}

	r.Log.Info("unused sample members selected",
		zap.Int(constvars.LoggingCountKey, len(unused)),
	)
	return unused, nil
}

func (r *sampleDataFileRepository) UsedMemberIDs() ([]string, error) {
	used, err := r.loadUsed()
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(used))
	for id := range used {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func (r *sampleDataFileRepository) Reset() error {
	if err := os.Remove(r.UsedPath); err != nil && !os.IsNotExist(err) {
		return exceptions.ErrCannotWriteFile(err, r.UsedPath)
	}
	r.Log.Info("used member tracking reset",
		zap.String(constvars.LoggingPathKey, r.UsedPath),
	)
	return nil
}

func (r *sampleDataFileRepository) loadUsed() (map[string]bool, error) {
	raw, err := os.ReadFile(r.UsedPath)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]bool{}, nil
		}
		return nil, exceptions.ErrCannotReadFile(err, r.UsedPath)
	}

	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, exceptions.ErrCannotUnmarshalJSON(err)
	}

	used := make(map[string]bool, len(ids))
	for _, id := range ids {
		used[id] = true
	}
	return used, nil
}

func (r *sampleDataFileRepository) saveUsed(used map[string]bool) error {
	ids := make([]string, 0, len(used))
	for id := range used {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	raw, err := json.Marshal(ids)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	if err := os.MkdirAll(filepath.Dir(r.UsedPath), 0755); err != nil {
		return exceptions.ErrCannotWriteFile(err, r.UsedPath)
	}
	if err := os.WriteFile(r.UsedPath, raw, 0644); err != nil {
		return exceptions.ErrCannotWriteFile(err, r.UsedPath)
	}
	return nil
}
