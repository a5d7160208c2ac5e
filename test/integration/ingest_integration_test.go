package integration

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"testing"

	"college-compass-be/internal/repository/specification"
	"college-compass-be/internal/repository/unitofwork"
	"college-compass-be/internal/service"
	"college-compass-be/pkg/database"
	"college-compass-be/pkg/recommender"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func testFactory(t *testing.T) unitofwork.RepositoryFactory {
	t.Helper()
	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}
	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}
	gormDB, err := database.NewGormDBFromDSN(dsn)
	require.NoError(t, err)
	return unitofwork.NewRepositoryFactory(gormDB)
}

func TestIngestIsIdempotentPerID(t *testing.T) {
	uowFactory := testFactory(t)
	ingest := service.NewIngestService(uowFactory, nopLogger{})
	ctx := context.Background()

	collegeId := "it-" + uuid.New().String()
	record := recommender.CollegeRecord{
		ID:        json.RawMessage(`"` + collegeId + `"`),
		Name:      "Integration University " + collegeId,
		State:     "CA",
		Cost:      &recommender.CostInfo{Amount: json.RawMessage(`52000`)},
		TopMajors: []string{"Computer Science"},
	}

	// Two batches with the same record must leave exactly one row.
	ingest.IngestAll(ctx, []recommender.CollegeRecord{record})
	ingest.IngestAll(ctx, []recommender.CollegeRecord{record})

	uow := uowFactory.NewUnitOfWork(ctx)
	count, err := uow.CollegeRepository().Count(ctx, specification.ByCollegeID{ID: collegeId})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	college, err := uow.CollegeRepository().FindOne(ctx, specification.ByCollegeID{ID: collegeId})
	require.NoError(t, err)
	require.NotNil(t, college)
	require.NotNil(t, college.Tuition)
	assert.Equal(t, 52000, *college.Tuition)

	majors, err := uow.MajorRepository().FindMajorsForCollege(ctx, collegeId)
	require.NoError(t, err)
	assert.NotEmpty(t, majors)
}

func TestIngestMatchesByNameWhenIDDiffers(t *testing.T) {
	uowFactory := testFactory(t)
	ingest := service.NewIngestService(uowFactory, nopLogger{})
	ctx := context.Background()

	name := "Name Collision College " + uuid.New().String()
	first := recommender.CollegeRecord{
		ID:   json.RawMessage(`"` + uuid.New().String() + `"`),
		Name: name,
	}
	second := recommender.CollegeRecord{
		ID:   json.RawMessage(`"` + uuid.New().String() + `"`),
		Name: name,
	}

	ingest.IngestAll(ctx, []recommender.CollegeRecord{first, second})

	// Same name, different ids: the first row wins and the second record
	// does not create a duplicate.
	uow := uowFactory.NewUnitOfWork(ctx)
	count, err := uow.CollegeRepository().Count(ctx, specification.ByName{Name: name})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestIngestGeneratesIDWhenAbsent(t *testing.T) {
	uowFactory := testFactory(t)
	ingest := service.NewIngestService(uowFactory, nopLogger{})
	ctx := context.Background()

	name := "Anonymous ID College " + uuid.New().String()
	ingest.IngestAll(ctx, []recommender.CollegeRecord{{Name: name}})

	uow := uowFactory.NewUnitOfWork(ctx)
	college, err := uow.CollegeRepository().FindOne(ctx, specification.ByName{Name: name})
	require.NoError(t, err)
	require.NotNil(t, college)
	assert.NotEmpty(t, college.Id)
}
