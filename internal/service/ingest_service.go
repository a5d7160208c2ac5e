package service

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"college-compass-be/internal/entity"
	"college-compass-be/internal/pkg/logger"
	"college-compass-be/internal/repository/specification"
	"college-compass-be/internal/repository/unitofwork"
	"college-compass-be/pkg/recommender"

	"github.com/google/uuid"
)

type IIngestService interface {
	IngestAll(ctx context.Context, records []recommender.CollegeRecord)
}

// ingestService persists recommended colleges after a successful upstream
// call. Everything here is best-effort: the recommendation response is more
// valuable to the user than perfect persistence, so per-college failures are
// logged and swallowed, never propagated.
type ingestService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewIngestService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IIngestService {
	return &ingestService{
		uowFactory: uowFactory,
		logger:     log,
	}
}

// IngestAll processes records sequentially, not in parallel. Running them
// one at a time in a stable order sidesteps duplicate-insert races within a
// single request, including two records that share a name.
func (s *ingestService) IngestAll(ctx context.Context, records []recommender.CollegeRecord) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	for _, record := range records {
		if err := s.ingestOne(ctx, uow, record); err != nil {
			s.logger.Warn("ingest", "Failed to persist college", map[string]interface{}{
				"college": record.Name,
				"error":   err.Error(),
			})
		}
	}
}

func (s *ingestService) ingestOne(ctx context.Context, uow unitofwork.UnitOfWork, record recommender.CollegeRecord) error {
	id := NormalizeCollegeID(record.ID)
	if id == "" {
		id = uuid.New().String()
	}

	// Insert-if-absent keyed by id OR name, first match wins. Two distinct
	// colleges sharing a name collapse into one row.
	existing, err := uow.CollegeRepository().FindOne(ctx, specification.ByIDOrName{ID: id, Name: record.Name})
	if err != nil {
		return err
	}

	if existing == nil {
		college := &entity.College{
			Id:             id,
			Name:           record.Name,
			State:          record.State,
			City:           record.City,
			Type:           record.Type,
			Tuition:        tuitionOf(record),
			AcceptanceRate: acceptanceRateOf(record),
			EnrollmentSize: enrollmentOf(record),
			Website:        record.Website,
			Description:    record.Description,
			ImageURL:       record.ImageURL,
			CreatedAt:      time.Now(),
		}
		if err := uow.CollegeRepository().Create(ctx, college); err != nil {
			return err
		}
		existing = college
	}

	for _, majorName := range record.TopMajors {
		if err := s.linkMajor(ctx, uow, existing.Id, majorName); err != nil {
			s.logger.Warn("ingest", "Failed to link major", map[string]interface{}{
				"college": existing.Id,
				"major":   majorName,
				"error":   err.Error(),
			})
		}
	}

	return nil
}

func (s *ingestService) linkMajor(ctx context.Context, uow unitofwork.UnitOfWork, collegeId, majorName string) error {
	major, err := uow.MajorRepository().FindOne(ctx, specification.ByName{Name: majorName})
	if err != nil {
		return err
	}
	if major == nil {
		major = &entity.Major{
			Id:   uuid.New(),
			Name: majorName,
		}
		if err := uow.MajorRepository().Create(ctx, major); err != nil {
			return err
		}
	}

	// No existence check on the join row itself; duplicate joins are
	// possible under concurrent upserts of the same college.
	return uow.MajorRepository().CreateJoin(ctx, &entity.CollegeMajor{
		Id:        uuid.New(),
		CollegeId: collegeId,
		MajorId:   major.Id,
	})
}

// NormalizeCollegeID converts the upstream id, which arrives as either a
// JSON number or string, into a plain string. Empty when absent.
func NormalizeCollegeID(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		return strings.TrimSpace(asString)
	}
	var asNumber json.Number
	if err := json.Unmarshal(raw, &asNumber); err == nil {
		return asNumber.String()
	}
	return ""
}

func tuitionOf(record recommender.CollegeRecord) *int {
	if record.Cost == nil {
		return nil
	}
	return parseInt(record.Cost.Amount)
}

func enrollmentOf(record recommender.CollegeRecord) *int {
	if record.Size == nil {
		return nil
	}
	return parseInt(record.Size.Students)
}

func acceptanceRateOf(record recommender.CollegeRecord) *float64 {
	return parseFloat(record.AcceptanceRate)
}

// parseInt accepts numbers or numeric strings, nil on anything else.
// Pointer targets keep JSON null distinct from zero.
func parseInt(raw json.RawMessage) *int {
	if len(raw) == 0 {
		return nil
	}
	var num *float64
	if err := json.Unmarshal(raw, &num); err == nil && num != nil {
		v := int(*num)
		return &v
	}
	var str *string
	if err := json.Unmarshal(raw, &str); err == nil && str != nil {
		if v, err := strconv.Atoi(strings.TrimSpace(*str)); err == nil {
			return &v
		}
	}
	return nil
}

func parseFloat(raw json.RawMessage) *float64 {
	if len(raw) == 0 {
		return nil
	}
	var num *float64
	if err := json.Unmarshal(raw, &num); err == nil && num != nil {
		return num
	}
	var str *string
	if err := json.Unmarshal(raw, &str); err == nil && str != nil {
		if v, err := strconv.ParseFloat(strings.TrimSpace(*str), 64); err == nil {
			return &v
		}
	}
	return nil
}
