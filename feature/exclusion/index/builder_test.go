package index

import (
	"strings"
	"testing"

	"exclusion-screener/feature/exclusion/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHeader = "LASTNAME,FIRSTNAME,MIDNAME,BUSNAME,GENERAL,SPECIALTY,UPIN,NPI,DOB,ADDRESS,CITY,STATE,ZIP,EXCLTYPE,EXCLDATE,REINDATE,WAIVERDATE,WAIVERSTATE"

func buildFrom(t *testing.T, rows ...string) (map[string]*models.LetterBucket, Stats) {
	t.Helper()
	src := testHeader + "\n" + strings.Join(rows, "\n") + "\n"
	buckets, stats, err := BuildIndex(strings.NewReader(src))
	require.NoError(t, err)
	return buckets, stats
}

func TestBuildIndex_AllBucketsPresent(t *testing.T) {
	buckets, stats, err := BuildIndex(strings.NewReader(testHeader + "\n"))
	require.NoError(t, err)

	assert.Len(t, buckets, 27)
	for _, letter := range Letters() {
		require.Contains(t, buckets, letter)
		assert.Empty(t, buckets[letter].Individuals)
		assert.Empty(t, buckets[letter].Businesses)
	}
	assert.Zero(t, stats.Individuals)
	assert.Zero(t, stats.Businesses)
	assert.Zero(t, stats.Skipped)
}

func TestBuildIndex_IndexesIndividual(t *testing.T) {
	buckets, stats := buildFrom(t,
		`Jung,Daniel,F,,MD,PHYSICIAN,U123,N123,1970-01-01,"123 Main St, Apt 4",Seattle,WA,98101,1128b4,2020-01-01,,,`,
	)

	require.Len(t, buckets["j"].Individuals["jungdaniel"], 1)
	rec := buckets["j"].Individuals["jungdaniel"][0]
	assert.Equal(t, "Jung", rec.LastName)
	assert.Equal(t, "Daniel", rec.FirstName)
	assert.Equal(t, "F", rec.MidName)
	assert.Equal(t, "MD", rec.GeneralCategory)
	assert.Equal(t, "PHYSICIAN", rec.Specialty)
	assert.Equal(t, "U123", rec.LegacyProviderID)
	assert.Equal(t, "N123", rec.NationalProviderID)
	assert.Equal(t, "1970-01-01", rec.DateOfBirth)
	// Quoted field keeps its embedded comma
	assert.Equal(t, "123 Main St, Apt 4", rec.Address)
	assert.Equal(t, "Seattle", rec.City)
	assert.Equal(t, "WA", rec.State)
	assert.Equal(t, "98101", rec.Zip)
	assert.Equal(t, "1128b4", rec.ExclusionType)
	assert.Equal(t, "2020-01-01", rec.ExclusionDate)

	assert.Equal(t, 1, stats.Individuals)
	assert.Equal(t, 0, stats.Businesses)
}

func TestBuildIndex_IndexesBusiness(t *testing.T) {
	buckets, stats := buildFrom(t,
		`,,,Acme Medical Supply,DME,SUPPLIER,,,,456 Oak Ave,Portland,OR,97201,1128a1,2019-05-05,,,`,
	)

	require.Len(t, buckets["a"].Businesses["acmemedicalsupply"], 1)
	assert.Equal(t, "Acme Medical Supply", buckets["a"].Businesses["acmemedicalsupply"][0].BusinessName)
	assert.Equal(t, 0, stats.Individuals)
	assert.Equal(t, 1, stats.Businesses)
}

func TestBuildIndex_RecordWithBothNamesLandsInBothMaps(t *testing.T) {
	buckets, stats := buildFrom(t,
		`Brown,Robert,,Zenith Home Care,MD,,,,,,,,,1128b4,2021-02-02,,,`,
	)

	require.Len(t, buckets["b"].Individuals["brownrobert"], 1)
	require.Len(t, buckets["z"].Businesses["zenithhomecare"], 1)
	assert.Equal(t, 1, stats.Individuals)
	assert.Equal(t, 1, stats.Businesses)
}

func TestBuildIndex_AppendsCollidingKeys(t *testing.T) {
	buckets, _ := buildFrom(t,
		`Jung,Daniel,,,,,,,,,,,,1128b4,2018-01-01,,,`,
		`Jung,Daniel,,,,,,,,,,,,1128a1,2022-06-06,,,`,
	)

	// Same person excluded twice: both rows survive in source order.
	records := buckets["j"].Individuals["jungdaniel"]
	require.Len(t, records, 2)
	assert.Equal(t, "2018-01-01", records[0].ExclusionDate)
	assert.Equal(t, "2022-06-06", records[1].ExclusionDate)
}

func TestBuildIndex_SkipsShortRows(t *testing.T) {
	buckets, stats := buildFrom(t,
		`Smith,John,OnlyFour,Fields`,
		`Jung,Daniel,,,,,,,,,,,,1128b4,2020-01-01,,,`,
	)

	assert.Equal(t, 1, stats.Skipped)
	assert.Equal(t, 1, stats.Individuals)
	assert.Empty(t, buckets["s"].Individuals)
}

func TestBuildIndex_CatchAllBucket(t *testing.T) {
	buckets, _ := buildFrom(t,
		`,,,#1,DME,,,,,,,,,1128a1,2019-01-01,,,`,
	)

	require.Len(t, buckets[CatchAll].Businesses["1"], 1)
}

func TestBuildIndex_DigitLeadingNameUsesFirstLetter(t *testing.T) {
	// Build-time and query-time share LetterOf, so "1st Choice" lives under
	// "s" and a query for the same name resolves the same bucket.
	buckets, _ := buildFrom(t,
		`,,,1st Choice Home Care,DME,,,,,,,,,1128a1,2019-01-01,,,`,
	)

	require.Len(t, buckets[LetterOf("1st Choice Home Care")].Businesses["1stchoicehomecare"], 1)
	assert.Empty(t, buckets[CatchAll].Businesses)
}

func TestBuildIndex_SkipsBlankLines(t *testing.T) {
	src := testHeader + "\n\n\nJung,Daniel,,,,,,,,,,,,1128b4,2020-01-01,,,\n\n"
	_, stats, err := BuildIndex(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Individuals)
	assert.Zero(t, stats.Skipped)
}

func TestSplitFields(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected []string
	}{
		{"Plain", "a,b,c", []string{"a", "b", "c"}},
		{"QuotedComma", `a,"b, c",d`, []string{"a", "b, c", "d"}},
		{"TrimsWhitespace", " a , b ,c ", []string{"a", "b", "c"}},
		{"EmptyFields", ",,", []string{"", "", ""}},
		{"UnterminatedQuote", `a,"b,c`, []string{"a", "b,c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, splitFields(tt.line))
		})
	}
}
