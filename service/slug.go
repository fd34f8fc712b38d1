package service

import (
	"context"
	"strconv"
	"strings"
	"unicode"
)

// emptySlugBase 标题里没有任何可用字符时的兜底
const emptySlugBase = "topic"

type SlugChecker interface {
	SlugExists(ctx context.Context, slug string) (bool, error)
}

// SlugGenerator 根据标题生成唯一 slug，唯一性最终由 topics.slug 唯一索引保证
type SlugGenerator struct {
	Checker SlugChecker
}

// Slugify 转小写，只保留字母、数字、空白和 '-'，空白合并后用 '-' 连接
func Slugify(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		if isSlugRune(r) {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), "-")
}

// isSlugRune 字母含元音符号等附加字母类字符，数字含 ½、Ⅻ 这类数值字符
func isSlugRune(r rune) bool {
	return unicode.IsLetter(r) ||
		unicode.IsNumber(r) ||
		unicode.Is(unicode.Other_Alphabetic, r) ||
		unicode.IsSpace(r) ||
		r == '-'
}

// Generate 冲突时依次尝试 base-1, base-2 ...
func (g *SlugGenerator) Generate(ctx context.Context, title string) (string, error) {
	base := Slugify(title)
	if base == "" {
		base = emptySlugBase
	}

	slug := base
	for n := 1; ; n++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		exists, err := g.Checker.SlugExists(ctx, slug)
		if err != nil {
			return "", err
		}
		if !exists {
			return slug, nil
		}
		slug = base + "-" + strconv.Itoa(n)
	}
}
