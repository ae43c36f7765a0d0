package index

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"exclusion-screener/feature/exclusion/models"
)

// recordFields is the fixed column count of the source list.
const recordFields = 18

// Stats summarizes one index build for operational reporting.
type Stats struct {
	// Individuals is the number of records indexed under a person key.
	Individuals int
	// Businesses is the number of records indexed under a business key.
	Businesses int
	// Skipped is the number of rows dropped for having fewer than 18 fields.
	Skipped int
}

// BuildIndex reads the delimited source list and partitions it into the 27
// letter buckets. The first row is a header and is skipped. Rows with fewer
// than 18 fields are counted and dropped, never fatal. A read error on the
// source aborts the whole build.
//
// Every bucket id from Letters() is present in the result, possibly empty.
func BuildIndex(r io.Reader) (map[string]*models.LetterBucket, Stats, error) {
	buckets := make(map[string]*models.LetterBucket, 27)
	for _, letter := range Letters() {
		buckets[letter] = models.NewLetterBucket()
	}

	var stats Stats

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	row := 0
	for scanner.Scan() {
		row++
		if row == 1 {
			// Header
			continue
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := splitFields(line)
		if len(fields) < recordFields {
			stats.Skipped++
			continue
		}

		rec := models.ExclusionRecord{
			LastName:           fields[0],
			FirstName:          fields[1],
			MidName:            fields[2],
			BusinessName:       fields[3],
			GeneralCategory:    fields[4],
			Specialty:          fields[5],
			LegacyProviderID:   fields[6],
			NationalProviderID: fields[7],
			DateOfBirth:        fields[8],
			Address:            fields[9],
			City:               fields[10],
			State:              fields[11],
			Zip:                fields[12],
			ExclusionType:      fields[13],
			ExclusionDate:      fields[14],
			ReinstatementDate:  fields[15],
			WaiverDate:         fields[16],
			WaiverState:        fields[17],
		}

		// A record with both a last name and a business name lands in both
		// maps, in whichever bucket each name resolves to.
		if rec.LastName != "" {
			bucket := buckets[LetterOf(rec.LastName)]
			key := IndividualKey(rec.LastName, rec.FirstName)
			bucket.Individuals[key] = append(bucket.Individuals[key], rec)
			stats.Individuals++
		}
		if rec.BusinessName != "" {
			bucket := buckets[LetterOf(rec.BusinessName)]
			key := BusinessKey(rec.BusinessName)
			bucket.Businesses[key] = append(bucket.Businesses[key], rec)
			stats.Businesses++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, Stats{}, fmt.Errorf("failed to read source list: %w", err)
	}

	return buckets, stats, nil
}

// splitFields parses one delimited row. A quote character toggles the
// in-quotes state; a comma separates fields only outside quotes. Fields are
// trimmed of surrounding whitespace. Quote characters themselves are dropped.
func splitFields(line string) []string {
	fields := make([]string, 0, recordFields)
	var current strings.Builder
	inQuotes := false

	for i := 0; i < len(line); i++ {
		switch ch := line[i]; {
		case ch == '"':
			inQuotes = !inQuotes
		case ch == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteByte(ch)
		}
	}
	return append(fields, strings.TrimSpace(current.String()))
}
