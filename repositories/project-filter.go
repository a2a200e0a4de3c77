package repositories

import (
	"regexp"

	"github.com/itdeptjamiat/portfolio/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// projectSort orders featured projects first, newest first within each
// group, with _id as the last tie-break so paging is stable.
var projectSort = bson.D{
	{Key: "featured", Value: -1},
	{Key: "createdAt", Value: -1},
	{Key: "_id", Value: -1},
}

var featuredSort = bson.D{
	{Key: "createdAt", Value: -1},
	{Key: "_id", Value: -1},
}

// BuildProjectFilter translates a listing query into a MongoDB filter.
// Equality filters are ANDed; search adds a single $or clause.
func BuildProjectFilter(q models.ProjectQuery) bson.M {
	filter := bson.M{}

	if q.Category != "" {
		filter["category"] = q.Category
	}
	if q.Featured != nil {
		filter["featured"] = *q.Featured
	}
	if q.Status != "" {
		filter["status"] = q.Status
	}
	if q.Technology != "" {
		filter["technologies"] = bson.M{"$in": bson.A{q.Technology}}
	}

	if q.Search != "" {
		// the search term is literal text, not a pattern
		re := primitive.Regex{Pattern: regexp.QuoteMeta(q.Search), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"name": re},
			bson.M{"description": re},
			bson.M{"shortDescription": re},
			bson.M{"technologies": re},
		}
	}

	return filter
}
