package exclusion

import (
	"context"
	"testing"

	"exclusion-screener/feature/exclusion/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(t *testing.T, buckets map[string]*models.LetterBucket) *Service {
	t.Helper()
	return NewService(newTestMatcher(t, buckets), zap.NewNop())
}

func TestServiceSearch_ResultsInQueryOrder(t *testing.T) {
	bucket := jungBucket()
	bucket.Businesses = map[string][]models.ExclusionRecord{}
	svc := newTestService(t, map[string]*models.LetterBucket{"j": bucket})

	resp := svc.Search(context.Background(), SearchRequest{
		Names: []NameQuery{
			{FirstName: "Daniel", LastName: "Jung"},
			{FirstName: "Ann", LastName: "Zorn"},
		},
		Businesses: []string{"Jupiter Imaging"},
	})

	require.Len(t, resp.Results, 3)
	assert.Equal(t, "Daniel Jung", resp.Results[0].QueriedName)
	assert.Equal(t, models.StatusMatch, resp.Results[0].Status)
	assert.Equal(t, "Ann Zorn", resp.Results[1].QueriedName)
	assert.Equal(t, models.StatusClear, resp.Results[1].Status)
	assert.Equal(t, "Jupiter Imaging", resp.Results[2].QueriedName)
	assert.Equal(t, models.StatusClear, resp.Results[2].Status)
}

func TestServiceSearch_EmptyRequest(t *testing.T) {
	svc := newTestService(t, nil)
	resp := svc.Search(context.Background(), SearchRequest{})
	assert.Empty(t, resp.Results)
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name     string
		query    NameQuery
		expected string
	}{
		{"FirstLast", NameQuery{FirstName: "Daniel", LastName: "Jung"}, "Daniel Jung"},
		{"WithMiddle", NameQuery{FirstName: "Daniel", MiddleName: "F", LastName: "Jung"}, "Daniel F Jung"},
		{"LastOnly", NameQuery{LastName: "Jung"}, "Jung"},
		{"Empty", NameQuery{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, displayName(tt.query))
		})
	}
}
