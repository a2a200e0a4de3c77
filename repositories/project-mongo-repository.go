package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/itdeptjamiat/portfolio/logging"
	"github.com/itdeptjamiat/portfolio/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProjectMongoRepository struct {
	collection *mongo.Collection
}

func NewProjectMongoRepository(collection *mongo.Collection) *ProjectMongoRepository {
	return &ProjectMongoRepository{collection: collection}
}

// EnsureIndexes creates the text index over the searchable fields and the
// compound index backing the listing sort.
func (r *ProjectMongoRepository) EnsureIndexes(ctx context.Context) error {
	indexModels := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "name", Value: "text"},
				{Key: "description", Value: "text"},
				{Key: "shortDescription", Value: "text"},
				{Key: "technologies", Value: "text"},
			},
			Options: options.Index().SetName("project_text"),
		},
		{
			Keys:    projectSort,
			Options: options.Index().SetName("project_listing"),
		},
	}
	names, err := r.collection.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create project indexes: %w", err)
	}
	logging.Logger.Infof("Event ID: DB_INDEXES_READY, Description: Project indexes ensured: %v", names)
	return nil
}

func (r *ProjectMongoRepository) Find(ctx context.Context, q models.ProjectQuery) ([]models.Project, error) {
	opts := options.Find().
		SetSort(projectSort).
		SetSkip(q.Skip()).
		SetLimit(int64(q.Limit))

	cursor, err := r.collection.Find(ctx, BuildProjectFilter(q), opts)
	if err != nil {
		return nil, fmt.Errorf("unsuccessful procurement of projects: %w", err)
	}
	defer cursor.Close(ctx)

	projects := []models.Project{}
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, fmt.Errorf("unsuccessful decoding of projects: %w", err)
	}
	return projects, nil
}

func (r *ProjectMongoRepository) Count(ctx context.Context, q models.ProjectQuery) (int64, error) {
	total, err := r.collection.CountDocuments(ctx, BuildProjectFilter(q))
	if err != nil {
		return 0, fmt.Errorf("failed to count projects: %w", err)
	}
	return total, nil
}

func (r *ProjectMongoRepository) FindFeatured(ctx context.Context, limit int) ([]models.Project, error) {
	opts := options.Find().SetSort(featuredSort).SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{"featured": true}, opts)
	if err != nil {
		return nil, fmt.Errorf("unsuccessful procurement of featured projects: %w", err)
	}
	defer cursor.Close(ctx)

	projects := []models.Project{}
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, fmt.Errorf("unsuccessful decoding of featured projects: %w", err)
	}
	return projects, nil
}

func (r *ProjectMongoRepository) FindByID(ctx context.Context, id string) (*models.Project, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.ErrNotFound
	}

	var project models.Project
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&project)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("error fetching project: %w", err)
	}
	return &project, nil
}

func (r *ProjectMongoRepository) Insert(ctx context.Context, p *models.Project) error {
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	if _, err := r.collection.InsertOne(ctx, p); err != nil {
		return fmt.Errorf("failed to insert project: %w", err)
	}
	return nil
}

func (r *ProjectMongoRepository) Replace(ctx context.Context, p *models.Project) error {
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": p.ID}, p)
	if err != nil {
		return fmt.Errorf("failed to replace project: %w", err)
	}
	if result.MatchedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *ProjectMongoRepository) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.ErrNotFound
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if result.DeletedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *ProjectMongoRepository) DistinctCategories(ctx context.Context) ([]string, error) {
	return r.distinctStrings(ctx, "category")
}

// DistinctTechnologies flattens the technologies arrays of every project.
func (r *ProjectMongoRepository) DistinctTechnologies(ctx context.Context) ([]string, error) {
	return r.distinctStrings(ctx, "technologies")
}

func (r *ProjectMongoRepository) distinctStrings(ctx context.Context, field string) ([]string, error) {
	values, err := r.collection.Distinct(ctx, field, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to read distinct %s: %w", field, err)
	}

	out := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out, nil
}
