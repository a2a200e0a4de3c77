package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/itdeptjamiat/portfolio/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

const projectsNS = "portfolio.projects"

func projectDoc(id primitive.ObjectID, name string, featured bool) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "name", Value: name},
		{Key: "description", Value: name + " description"},
		{Key: "shortDescription", Value: name + " short"},
		{Key: "image", Value: "/img/" + name + ".png"},
		{Key: "technologies", Value: bson.A{"Go", "MongoDB"}},
		{Key: "category", Value: "web"},
		{Key: "status", Value: "completed"},
		{Key: "featured", Value: featured},
		{Key: "teamSize", Value: 2},
		{Key: "createdAt", Value: primitive.NewDateTimeFromTime(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC))},
	}
}

func TestProjectMongoRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("find decodes documents", func(mt *mtest.T) {
		repo := NewProjectMongoRepository(mt.Coll)
		first, second := primitive.NewObjectID(), primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, projectsNS, mtest.FirstBatch,
			projectDoc(first, "alpha", true),
			projectDoc(second, "beta", false),
		))

		got, err := repo.Find(context.Background(), models.ProjectQuery{Category: "web", Page: 1, Limit: 20})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, first, got[0].ID)
		assert.Equal(t, "alpha", got[0].Name)
		assert.True(t, got[0].Featured)
		assert.Equal(t, []string{"Go", "MongoDB"}, got[0].Technologies)
		assert.Equal(t, 2, got[0].TeamSize)
		assert.Equal(t, "beta", got[1].Name)
	})

	mt.Run("find with no matches is empty not nil", func(mt *mtest.T) {
		repo := NewProjectMongoRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, projectsNS, mtest.FirstBatch))

		got, err := repo.Find(context.Background(), models.ProjectQuery{Page: 1, Limit: 20})
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	mt.Run("find surfaces driver errors", func(mt *mtest.T) {
		repo := NewProjectMongoRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Name:    "BadValue",
			Message: "bad query",
		}))

		_, err := repo.Find(context.Background(), models.ProjectQuery{Page: 1, Limit: 20})
		assert.Error(t, err)
	})

	mt.Run("count", func(mt *mtest.T) {
		repo := NewProjectMongoRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, projectsNS, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: 1}, {Key: "n", Value: int64(7)}},
		))

		n, err := repo.Count(context.Background(), models.ProjectQuery{Search: "go", Page: 1, Limit: 20})
		require.NoError(t, err)
		assert.Equal(t, int64(7), n)
	})

	mt.Run("find featured", func(mt *mtest.T) {
		repo := NewProjectMongoRepository(mt.Coll)
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, projectsNS, mtest.FirstBatch, projectDoc(id, "star", true)))

		got, err := repo.FindFeatured(context.Background(), models.FeaturedProjectsMax)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "star", got[0].Name)
	})

	mt.Run("find by id", func(mt *mtest.T) {
		repo := NewProjectMongoRepository(mt.Coll)
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, projectsNS, mtest.FirstBatch, projectDoc(id, "alpha", false)))

		got, err := repo.FindByID(context.Background(), id.Hex())
		require.NoError(t, err)
		assert.Equal(t, id, got.ID)
		assert.Equal(t, models.CategoryWeb, got.Category)
	})

	mt.Run("find by id missing", func(mt *mtest.T) {
		repo := NewProjectMongoRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, projectsNS, mtest.FirstBatch))

		_, err := repo.FindByID(context.Background(), primitive.NewObjectID().Hex())
		assert.ErrorIs(t, err, models.ErrNotFound)
	})

	mt.Run("malformed id never reaches the server", func(mt *mtest.T) {
		repo := NewProjectMongoRepository(mt.Coll)

		_, err := repo.FindByID(context.Background(), "abc")
		assert.ErrorIs(t, err, models.ErrNotFound)
		assert.ErrorIs(t, repo.Delete(context.Background(), "abc"), models.ErrNotFound)
	})

	mt.Run("insert assigns an id", func(mt *mtest.T) {
		repo := NewProjectMongoRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		p := &models.Project{Name: "new"}
		require.NoError(t, repo.Insert(context.Background(), p))
		assert.False(t, p.ID.IsZero())
	})

	mt.Run("replace", func(mt *mtest.T) {
		repo := NewProjectMongoRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		require.NoError(t, repo.Replace(context.Background(), &models.Project{ID: primitive.NewObjectID(), Name: "x"}))
	})

	mt.Run("replace missing", func(mt *mtest.T) {
		repo := NewProjectMongoRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 0},
			bson.E{Key: "nModified", Value: 0},
		))

		err := repo.Replace(context.Background(), &models.Project{ID: primitive.NewObjectID(), Name: "x"})
		assert.ErrorIs(t, err, models.ErrNotFound)
	})

	mt.Run("delete", func(mt *mtest.T) {
		repo := NewProjectMongoRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		require.NoError(t, repo.Delete(context.Background(), primitive.NewObjectID().Hex()))
	})

	mt.Run("delete missing", func(mt *mtest.T) {
		repo := NewProjectMongoRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		err := repo.Delete(context.Background(), primitive.NewObjectID().Hex())
		assert.ErrorIs(t, err, models.ErrNotFound)
	})

	mt.Run("distinct keeps string values", func(mt *mtest.T) {
		repo := NewProjectMongoRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "values", Value: bson.A{"Go", "React", 42}},
		))

		got, err := repo.DistinctTechnologies(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"Go", "React"}, got)
	})
}

func TestContactMongoRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	const ns = "portfolio.contacts"

	contactDoc := func(id, status string) bson.D {
		return bson.D{
			{Key: "_id", Value: id},
			{Key: "name", Value: "Ada"},
			{Key: "email", Value: "ada@example.com"},
			{Key: "subject", Value: "Hello"},
			{Key: "message", Value: "Let's build something"},
			{Key: "status", Value: status},
		}
	}

	mt.Run("append", func(mt *mtest.T) {
		repo := NewContactMongoRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		require.NoError(t, repo.Append(context.Background(), models.Contact{ID: "c1", Name: "Ada"}))
	})

	mt.Run("list", func(mt *mtest.T) {
		repo := NewContactMongoRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			contactDoc("c2", "read"),
			contactDoc("c1", "pending"),
		))

		got, err := repo.List(context.Background())
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "c2", got[0].ID)
		assert.Equal(t, models.ContactRead, got[0].Status)
	})

	mt.Run("update status", func(mt *mtest.T) {
		repo := NewContactMongoRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: contactDoc("c1", "replied")}))

		got, err := repo.UpdateStatus(context.Background(), "c1", models.ContactReplied)
		require.NoError(t, err)
		assert.Equal(t, models.ContactReplied, got.Status)
	})

	mt.Run("update status missing", func(mt *mtest.T) {
		repo := NewContactMongoRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}))

		_, err := repo.UpdateStatus(context.Background(), "nope", models.ContactRead)
		assert.ErrorIs(t, err, models.ErrNotFound)
	})
}

func TestContactMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewContactMemoryRepository()

	require.NoError(t, repo.Append(ctx, models.Contact{ID: "first", Status: models.ContactPending}))
	require.NoError(t, repo.Append(ctx, models.Contact{ID: "second", Status: models.ContactPending}))

	got, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "second", got[0].ID)

	updated, err := repo.UpdateStatus(ctx, "first", models.ContactRead)
	require.NoError(t, err)
	assert.Equal(t, models.ContactRead, updated.Status)

	_, err = repo.UpdateStatus(ctx, "missing", models.ContactRead)
	assert.ErrorIs(t, err, models.ErrNotFound)
}
