package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestGeneratePostFilter(t *testing.T) {
	cases := []struct {
		name     string
		search   string
		username string
		hashtag  string
		key      string
	}{
		{"search wins", "hello", "alice", "go", "slug"},
		{"username over hashtag", "", "alice", "go", "author.username"},
		{"hashtag alone", "", "", "go", "hashtags"},
	}
	for _, tc := range cases {
		filter := GeneratePostFilter(tc.search, tc.username, tc.hashtag)
		if len(filter) != 1 {
			t.Fatalf("%s: expected single-key filter, got %v", tc.name, filter)
		}
		if _, ok := filter[tc.key]; !ok {
			t.Fatalf("%s: expected key %q in filter %v", tc.name, tc.key, filter)
		}
	}

	if len(GeneratePostFilter("", "", "")) != 0 {
		t.Fatalf("empty params should produce an empty filter")
	}
}

func TestGeneratePostFilterSearchIsCaseInsensitiveRegex(t *testing.T) {
	filter := GeneratePostFilter("Hello-World", "", "")
	inner, ok := filter["slug"].(bson.M)
	if !ok {
		t.Fatalf("expected nested slug filter, got %v", filter["slug"])
	}
	re, ok := inner["$regex"].(primitive.Regex)
	if !ok {
		t.Fatalf("expected primitive.Regex, got %T", inner["$regex"])
	}
	if re.Pattern != "Hello-World" {
		t.Fatalf("unexpected pattern %q", re.Pattern)
	}
	if re.Options != "i" {
		t.Fatalf("expected case-insensitive option, got %q", re.Options)
	}
}

func TestGeneratePostFilterEscapesMetacharacters(t *testing.T) {
	filter := GeneratePostFilter("c++.and.(stuff)", "", "")
	inner := filter["slug"].(bson.M)
	re := inner["$regex"].(primitive.Regex)

	want := `c\+\+\.and\.\(stuff\)`
	if re.Pattern != want {
		t.Fatalf("got pattern %q, want %q", re.Pattern, want)
	}
}

func TestParseListParams(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		query string
		page  int64
		limit int64
	}{
		{"", 1, 10},
		{"?page=3&limit=20", 3, 20},
		{"?page=0&limit=-5", 1, 10},
		{"?page=abc&limit=xyz", 1, 10},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest("GET", "/posts"+tc.query, nil)

		page, limit := ParseListParams(c)
		if page != tc.page || limit != tc.limit {
			t.Fatalf("query %q: got page=%d limit=%d, want page=%d limit=%d",
				tc.query, page, limit, tc.page, tc.limit)
		}
	}
}
