package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/peterbuiltwl/portal/internal/core/domain"
)

const collectionReports = "stress_test_reports"

// ReportRepository archives stress-test reports in MongoDB.
type ReportRepository struct {
	col *mongo.Collection
}

func NewReportRepository(db *mongo.Database) *ReportRepository {
	return &ReportRepository{col: db.Collection(collectionReports)}
}

// Save upserts the report by its ID, so downloading the same run twice
// keeps a single document.
func (r *ReportRepository) Save(ctx context.Context, report *domain.StressTestReport) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": report.ID}, report, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("save report %s: %w", report.ID, err)
	}
	return nil
}

// FindLatest returns the newest report of the principal.
func (r *ReportRepository) FindLatest(ctx context.Context, principal string) (*domain.StressTestReport, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOne().SetSort(bson.D{{Key: "generated_at", Value: -1}})

	var report domain.StressTestReport
	err := r.col.FindOne(ctx, bson.M{"principal": principal}, opts).Decode(&report)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &report, nil
}

// List returns up to limit reports of the principal, newest first.
func (r *ReportRepository) List(ctx context.Context, principal string, limit int) ([]*domain.StressTestReport, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "generated_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cur, err := r.col.Find(ctx, bson.M{"principal": principal}, opts)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	defer cur.Close(ctx)

	reports := make([]*domain.StressTestReport, 0)
	if err := cur.All(ctx, &reports); err != nil {
		return nil, fmt.Errorf("decode reports: %w", err)
	}
	return reports, nil
}

// EnsureIndexes creates the indexes used by FindLatest and List.
func (r *ReportRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "principal", Value: 1}, {Key: "generated_at", Value: -1}},
	})
	return err
}
