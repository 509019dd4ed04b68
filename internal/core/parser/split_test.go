package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitItems(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "newline separated",
			input: "Bread\nEggs\nButter",
			want:  []string{"Bread", "Eggs", "Butter"},
		},
		{
			name:  "newlines with blank lines",
			input: "Bread\n\n\nEggs\n  \nButter\n",
			want:  []string{"Bread", "Eggs", "Butter"},
		},
		{
			name:  "comma separated",
			input: "apples, bananas, milk",
			want:  []string{"apples", "bananas", "milk"},
		},
		{
			name:  "arabic comma separated",
			input: "חלב، ביצים، לחם",
			want:  []string{"חלב", "ביצים", "לחם"},
		},
		{
			name:  "commas within lines",
			input: "milk, eggs\nbread, butter",
			want:  []string{"milk", "eggs", "bread", "butter"},
		},
		{
			name:  "four space separated words",
			input: "milk eggs bread butter",
			want:  []string{"milk", "eggs", "bread", "butter"},
		},
		{
			name:  "three words stay one item",
			input: "Item To Delete",
			want:  []string{"Item To Delete"},
		},
		{
			name:  "two words stay one item",
			input: "ice cream",
			want:  []string{"ice cream"},
		},
		{
			name:  "single word",
			input: "milk",
			want:  []string{"milk"},
		},
		{
			name:  "four words with a single letter word stay one item",
			input: "a very long phrase",
			want:  []string{"a very long phrase"},
		},
		{
			name:  "hebrew space separated list",
			input: "חלב ביצים לחם חמאה",
			want:  []string{"חלב", "ביצים", "לחם", "חמאה"},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "whitespace only",
			input: "   \n\t  ",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitItems(tt.input))
		})
	}
}

func TestSplitItemsIdempotent(t *testing.T) {
	inputs := []string{
		"Bread\nEggs\nButter",
		"apples, bananas, milk",
		"milk eggs bread butter",
		"ice cream",
	}

	for _, input := range inputs {
		for _, item := range SplitItems(input) {
			again := SplitItems(item)
			require.Equal(t, []string{item}, again, "re-splitting %q", item)
		}
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "orange juice", Normalize("  Orange   JUICE "))
	assert.Equal(t, "חלב", Normalize(" חלב "))
	assert.Equal(t, "", Normalize("   "))
}

func TestDetectLanguage(t *testing.T) {
	assert.True(t, ContainsHebrew("טונה x8"))
	assert.False(t, ContainsHebrew("tuna x8"))
	assert.Equal(t, "he", string(DetectLanguage("חלב")))
	assert.Equal(t, "en", string(DetectLanguage("milk")))
	assert.Equal(t, "en", string(DetectLanguage("123")))
}
