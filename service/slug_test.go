package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memSlugs map[string]bool

func (m memSlugs) SlugExists(_ context.Context, slug string) (bool, error) {
	return m[slug], nil
}

type failingSlugs struct{}

func (failingSlugs) SlugExists(context.Context, string) (bool, error) {
	return false, errors.New("db down")
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Hello World", "hello-world"},
		{"  Hello   World  ", "hello-world"},
		{"Hello, World!", "hello-world"},
		{"What's new in Go 1.22?", "whats-new-in-go-122"},
		{"already-hyphenated title", "already-hyphenated-title"},
		{"tabs\tand\nnewlines", "tabs-and-newlines"},
		{"Ünïcödé Straße", "ünïcödé-straße"},
		{"中文 标题", "中文-标题"},
		{"हिंदी पाठ", "हिंदी-पाठ"},
		{"مُحَمَّد", "مُحَمَّد"},
		{"½ price", "½-price"},
		{"Ⅻ chapter", "ⅻ-chapter"},
		{"x² + y²", "x²-y²"},
		{"!!!", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.title))
		})
	}
}

func TestSlugGenerator_Collisions(t *testing.T) {
	ctx := context.Background()
	taken := memSlugs{}
	g := &SlugGenerator{Checker: taken}

	first, err := g.Generate(ctx, "Hello World")
	require.NoError(t, err)
	assert.Equal(t, "hello-world", first)
	taken[first] = true

	second, err := g.Generate(ctx, "Hello World")
	require.NoError(t, err)
	assert.Equal(t, "hello-world-1", second)
	taken[second] = true

	third, err := g.Generate(ctx, "hello   world!")
	require.NoError(t, err)
	assert.Equal(t, "hello-world-2", third)
}

func TestSlugGenerator_EmptyBase(t *testing.T) {
	ctx := context.Background()
	taken := memSlugs{}
	g := &SlugGenerator{Checker: taken}

	slug, err := g.Generate(ctx, "???")
	require.NoError(t, err)
	assert.Equal(t, "topic", slug)
	taken[slug] = true

	slug, err = g.Generate(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "topic-1", slug)
}

func TestSlugGenerator_Errors(t *testing.T) {
	g := &SlugGenerator{Checker: failingSlugs{}}
	_, err := g.Generate(context.Background(), "x")
	assert.EqualError(t, err, "db down")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = (&SlugGenerator{Checker: memSlugs{}}).Generate(ctx, "x")
	assert.ErrorIs(t, err, context.Canceled)
}
