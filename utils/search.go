package utils

import (
	"regexp"
	"strings"

	"github.com/novaclothing/novabackend/models"
	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/text/cases"
)

// ProductSearch holds the optional product list filters: an exact-match
// category and a free-text query matched case-insensitively as a substring
// of the title or of any tag. When both are set, both must hold.
type ProductSearch struct {
	Category string
	Query    string
}

// Filter builds the Mongo filter document. The query is regex-quoted so
// the match stays a plain substring even for inputs like "c++".
func (s ProductSearch) Filter() bson.M {
	filter := bson.M{}
	if s.Category != "" {
		filter["category"] = s.Category
	}
	if s.Query != "" {
		pattern := regexp.QuoteMeta(s.Query)
		filter["$or"] = bson.A{
			bson.M{"title": bson.M{"$regex": pattern, "$options": "i"}},
			bson.M{"tags": bson.M{"$regex": pattern, "$options": "i"}},
		}
	}
	return filter
}

// Matches applies the same semantics as Filter to an in-memory product,
// keeping the matching contract independent of the store backing it.
func (s ProductSearch) Matches(p models.Product) bool {
	if s.Category != "" && p.Category != s.Category {
		return false
	}
	if s.Query == "" {
		return true
	}
	if ContainsFold(p.Title, s.Query) {
		return true
	}
	for _, tag := range p.Tags {
		if ContainsFold(tag, s.Query) {
			return true
		}
	}
	return false
}

// ContainsFold reports whether substr occurs in s under Unicode case
// folding.
func ContainsFold(s, substr string) bool {
	folder := cases.Fold()
	return strings.Contains(folder.String(s), folder.String(substr))
}
