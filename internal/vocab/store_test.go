package vocab

import (
	"strings"
	"testing"

	"github.com/Olgakatash/polish-trainer-bot/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_AddOrUpdate(t *testing.T) {
	t.Parallel()

	s := NewStore()

	s.AddOrUpdate("kot", "cat")
	translation, err := s.Translation("kot")
	require.NoError(t, err)
	assert.Equal(t, "cat", translation)

	s.AddOrUpdate("kot", "tomcat")
	translation, err = s.Translation("kot")
	require.NoError(t, err)
	assert.Equal(t, "tomcat", translation, "last write wins")

	s.AddOrUpdate("", "nothing")
	s.AddOrUpdate("   ", "nothing")
	s.AddOrUpdate("pies", "")
	assert.Equal(t, 1, s.Len(), "blank terms and translations are skipped")
}

func TestStore_Translation_Unknown(t *testing.T) {
	t.Parallel()

	s := NewStore()
	_, err := s.Translation("nie ma")
	assert.ErrorIs(t, err, ErrUnknownTerm)
}

func TestStore_Categories(t *testing.T) {
	t.Parallel()

	s := NewStore()
	s.AddOrUpdate("kot", "cat")
	s.AddOrUpdate("pies", "dog")
	s.AddCategoryTerm("animals", "kot")
	s.AddCategoryTerm("animals", "pies")
	s.AddCategoryTerm("animals", "kot") // duplicate ignored
	s.AddCategoryTerm("pets", "kot")

	assert.Equal(t, []string{"animals", "pets"}, s.Categories())
	assert.Equal(t, []string{"kot", "pies"}, s.CategoryTerms("animals"))
	assert.Empty(t, s.CategoryTerms("plants"))
}

func TestStore_Pool(t *testing.T) {
	t.Parallel()

	s := NewStore()
	s.AddOrUpdate("kot", "cat")
	s.AddOrUpdate("pies", "dog")
	s.AddOrUpdate("ryba", "fish")
	s.AddCategoryTerm("animals", "kot")
	s.AddCategoryTerm("animals", "pies")
	s.AddCategoryTerm("animals", "smok") // no translation loaded
	s.AddCategoryTerm("pets", "kot")     // overlaps animals

	tests := []struct {
		name       string
		categories []string
		want       []models.VocabPair
	}{
		{
			name:       "no categories means everything",
			categories: nil,
			want: []models.VocabPair{
				{Term: "kot", Translation: "cat"},
				{Term: "pies", Translation: "dog"},
				{Term: "ryba", Translation: "fish"},
			},
		},
		{
			name:       "single category excludes unknown terms",
			categories: []string{"animals"},
			want: []models.VocabPair{
				{Term: "kot", Translation: "cat"},
				{Term: "pies", Translation: "dog"},
			},
		},
		{
			name:       "union deduplicates overlapping terms",
			categories: []string{"animals", "pets"},
			want: []models.VocabPair{
				{Term: "kot", Translation: "cat"},
				{Term: "pies", Translation: "dog"},
			},
		},
		{
			name:       "unknown category yields empty pool",
			categories: []string{"plants"},
			want:       nil,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.ElementsMatch(t, tt.want, s.Pool(tt.categories...))
		})
	}
}

func TestDefault(t *testing.T) {
	t.Parallel()

	s := Default()

	translation, err := s.Translation("jeden")
	require.NoError(t, err)
	assert.Equal(t, "one", translation)

	assert.Equal(t, []string{"greetings", "family", "numbers", "colors", "food", "phrases"}, s.Categories())
	assert.Len(t, s.CategoryTerms("numbers"), 10)
	assert.Equal(t, 48, s.Len())
}

func TestReadCSV(t *testing.T) {
	t.Parallel()

	input := strings.Join([]string{
		"kot;cat",
		"pies;dog|doggo",
		"ryba;fish;animals",
		"too-few-fields",
		";no term",
		"puste;   ",
		"kot;tomcat",
	}, "\n")

	s := NewStore()
	require.NoError(t, ReadCSV(s, strings.NewReader(input)))

	assert.Equal(t, 3, s.Len())

	translation, err := s.Translation("pies")
	require.NoError(t, err)
	assert.Equal(t, "dog", translation, "first pipe-separated variant wins")

	translation, err = s.Translation("kot")
	require.NoError(t, err)
	assert.Equal(t, "tomcat", translation, "later row overwrites")

	assert.Equal(t, []string{"ryba"}, s.CategoryTerms("animals"))
}

func TestLoadCSV_MissingFile(t *testing.T) {
	t.Parallel()

	s := NewStore()
	assert.NoError(t, LoadCSV(s, "testdata/does-not-exist.csv"))
	assert.Equal(t, 0, s.Len())
}
