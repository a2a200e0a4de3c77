package repositories

import (
	"testing"

	"github.com/itdeptjamiat/portfolio/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func boolPtr(b bool) *bool { return &b }

func TestBuildProjectFilterEmptyQuery(t *testing.T) {
	assert.Empty(t, BuildProjectFilter(models.ProjectQuery{Page: 1, Limit: 20}))
}

func TestBuildProjectFilterEqualityClauses(t *testing.T) {
	filter := BuildProjectFilter(models.ProjectQuery{
		Category:   "mobile",
		Technology: "React Native",
		Featured:   boolPtr(false),
		Status:     "completed",
	})

	assert.Equal(t, bson.M{
		"category":     "mobile",
		"featured":     false,
		"status":       "completed",
		"technologies": bson.M{"$in": bson.A{"React Native"}},
	}, filter)
}

func TestBuildProjectFilterSearchClause(t *testing.T) {
	filter := BuildProjectFilter(models.ProjectQuery{Category: "web", Search: "C++ (beta)"})

	assert.Equal(t, "web", filter["category"])

	or, ok := filter["$or"].(bson.A)
	require.True(t, ok)
	require.Len(t, or, 4)

	want := primitive.Regex{Pattern: `C\+\+ \(beta\)`, Options: "i"}
	fields := []string{"name", "description", "shortDescription", "technologies"}
	for i, field := range fields {
		clause, ok := or[i].(bson.M)
		require.True(t, ok)
		assert.Equal(t, want, clause[field], field)
	}
}

func TestProjectSortOrder(t *testing.T) {
	require.Len(t, projectSort, 3)
	assert.Equal(t, bson.E{Key: "featured", Value: -1}, projectSort[0])
	assert.Equal(t, bson.E{Key: "createdAt", Value: -1}, projectSort[1])
	assert.Equal(t, bson.E{Key: "_id", Value: -1}, projectSort[2])
}
