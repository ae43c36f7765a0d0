package exclusion

import (
	"context"
	"strings"

	"exclusion-screener/feature/exclusion/models"

	"go.uber.org/zap"
)

// NameQuery is one person to screen, as produced by the upstream extractor.
type NameQuery struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	MiddleName string `json:"middleName,omitempty"`
}

// SearchRequest is the body of a screening request.
type SearchRequest struct {
	Names      []NameQuery `json:"names"`
	Businesses []string    `json:"businesses"`
}

// SearchResponse carries one result per queried name or business, in order.
type SearchResponse struct {
	Results []models.SearchResult `json:"results"`
}

// Service handles exclusion screening operations.
type Service struct {
	matcher *Matcher
	logger  *zap.Logger
}

// NewService creates a new exclusion service.
func NewService(matcher *Matcher, logger *zap.Logger) *Service {
	return &Service{matcher: matcher, logger: logger}
}

// Search screens every name and business in the request.
func (s *Service) Search(ctx context.Context, req SearchRequest) SearchResponse {
	results := make([]models.SearchResult, 0, len(req.Names)+len(req.Businesses))

	for _, name := range req.Names {
		matches := s.matcher.SearchIndividual(ctx, name.FirstName, name.LastName, name.MiddleName)
		results = append(results, models.SearchResult{
			QueriedName: displayName(name),
			Matches:     matches,
			Status:      IndividualStatus(matches),
		})
	}

	for _, busName := range req.Businesses {
		matches := s.matcher.SearchBusiness(ctx, busName)
		results = append(results, models.SearchResult{
			QueriedName: busName,
			Matches:     matches,
			Status:      BusinessStatus(matches),
		})
	}

	return SearchResponse{Results: results}
}

// displayName echoes the queried person as "First Middle Last", skipping
// blank parts.
func displayName(n NameQuery) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{n.FirstName, n.MiddleName, n.LastName} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}
