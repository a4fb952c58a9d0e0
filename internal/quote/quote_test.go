package quote

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_CopiesTags(t *testing.T) {
	tags := []string{"love", "life"}
	q := New("Be yourself.", "Oscar Wilde", tags)

	tags[0] = "mutated"

	assert.Equal(t, []string{"love", "life"}, q.Tags)
}

func TestNew_EmptyTags(t *testing.T) {
	q := New("Some text", "Someone", nil)

	assert.NotNil(t, q.Tags)
	assert.Empty(t, q.Tags)
}

func TestHasTag(t *testing.T) {
	q := New("text", "author", []string{"deep-thoughts", "change"})

	tests := []struct {
		name string
		tag  string
		want bool
	}{
		{"exact match", "change", true},
		{"case insensitive", "Deep-Thoughts", true},
		{"no match", "life", false},
		{"substring is not a match", "deep", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, q.HasTag(tt.tag))
		})
	}
}

func TestTagString(t *testing.T) {
	tests := []struct {
		name string
		tags []string
		want string
	}{
		{"two tags", []string{"love", "life"}, "love,life"},
		{"single tag", []string{"inspirational"}, "inspirational"},
		{"no tags", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := New("text", "author", tt.tags)
			assert.Equal(t, tt.want, q.TagString())
		})
	}
}
