package exclusion

import (
	"context"
	"strings"

	"exclusion-screener/feature/exclusion/index"
	"exclusion-screener/feature/exclusion/models"
)

// maxBusinessMatches caps the partial business scan. The cap bounds the scan
// itself, not just the output, so a large bucket never costs more than 10
// accumulated matches worth of work. Individual partial matching deliberately
// has no such cap.
const maxBusinessMatches = 10

// Matcher runs exclusion queries against lazily loaded letter buckets.
type Matcher struct {
	cache *Cache
}

// NewMatcher creates a matcher over the given cache.
func NewMatcher(cache *Cache) *Matcher {
	return &Matcher{cache: cache}
}

// SearchIndividual screens a person. The middle name is accepted from the
// upstream extractor but does not participate in matching. An empty lastName
// is a no-op, not an error.
//
// Exact hits (normalized lastName+firstName key) take precedence: when the
// exact key exists, its records are returned and partial matching is skipped
// entirely. Otherwise every key sharing the normalized surname prefix is
// scanned, and a record matches when its normalized first name and the
// query's are prefixes of each other in either direction (so an empty query
// first name matches the whole surname group).
func (m *Matcher) SearchIndividual(ctx context.Context, firstName, lastName, _ string) []models.Match {
	if lastName == "" {
		return nil
	}

	bucket := m.cache.Load(ctx, index.LetterOf(lastName))

	exactKey := index.IndividualKey(lastName, firstName)
	if records, ok := bucket.Individuals[exactKey]; ok {
		matches := make([]models.Match, 0, len(records))
		for _, rec := range records {
			matches = append(matches, models.Match{ExclusionRecord: rec, MatchType: models.MatchExact})
		}
		return matches
	}

	var matches []models.Match
	lastKey := index.NormalizeKey(lastName)
	fn := index.NormalizeKey(firstName)
	for key, records := range bucket.Individuals {
		if key == exactKey || !strings.HasPrefix(key, lastKey) {
			continue
		}
		for _, rec := range records {
			efn := index.NormalizeKey(rec.FirstName)
			if strings.HasPrefix(efn, fn) || strings.HasPrefix(fn, efn) {
				matches = append(matches, models.Match{ExclusionRecord: rec, MatchType: models.MatchPartial})
			}
		}
	}
	return matches
}

// SearchBusiness screens a business name. An empty name is a no-op. An exact
// key hit short-circuits; otherwise business keys are scanned for a substring
// relation in either direction, stopping outright at maxBusinessMatches.
func (m *Matcher) SearchBusiness(ctx context.Context, name string) []models.Match {
	if name == "" {
		return nil
	}

	bucket := m.cache.Load(ctx, index.LetterOf(name))

	key := index.BusinessKey(name)
	if records, ok := bucket.Businesses[key]; ok {
		matches := make([]models.Match, 0, len(records))
		for _, rec := range records {
			matches = append(matches, models.Match{ExclusionRecord: rec, MatchType: models.MatchBusiness})
		}
		return matches
	}

	var matches []models.Match
	for k, records := range bucket.Businesses {
		if !strings.Contains(k, key) && !strings.Contains(key, k) {
			continue
		}
		for _, rec := range records {
			matches = append(matches, models.Match{ExclusionRecord: rec, MatchType: models.MatchBusiness})
			if len(matches) >= maxBusinessMatches {
				return matches
			}
		}
	}
	return matches
}

// IndividualStatus derives the caller-facing status for an individual query:
// MATCH on any exact hit, POSSIBLE_MATCH on partial-only hits, else CLEAR.
func IndividualStatus(matches []models.Match) string {
	for _, m := range matches {
		if m.MatchType == models.MatchExact {
			return models.StatusMatch
		}
	}
	if len(matches) > 0 {
		return models.StatusPossibleMatch
	}
	return models.StatusClear
}

// BusinessStatus derives the status for a business query. Business matching
// has no separate exact tier, so any hit is a MATCH.
func BusinessStatus(matches []models.Match) string {
	if len(matches) > 0 {
		return models.StatusMatch
	}
	return models.StatusClear
}
