package naming

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTitle(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"hero-banner", "Hero Banner"},
		{"hero", "Hero"},
		{"call-to-action", "Call To Action"},
		{"two-col-layout", "Two Col Layout"},
		{"2col-grid", "2col Grid"},
		{"faq-mixedCase", "Faq MixedCase"},
		{"straße-info", "Straße Info"},
		{"ßeta", "SSeta"},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			got, err := Title(tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPascal(t *testing.T) {
	got, err := Pascal("hero-banner")
	require.NoError(t, err)
	assert.Equal(t, "HeroBanner", got)

	got, err = Pascal("a-b-c")
	require.NoError(t, err)
	assert.Equal(t, "ABC", got)
}

func TestTitle_TokenProperty(t *testing.T) {
	ids := []string{"hero-banner", "a", "one-two-three-four", "x1-y2", "émile-zola", "grid"}

	for _, id := range ids {
		got, err := Title(id)
		require.NoError(t, err, id)

		in := strings.Split(id, "-")
		out := strings.Split(got, " ")
		require.Len(t, out, len(in), id)

		for i := range in {
			r, _ := utf8.DecodeRuneInString(in[i])
			assert.True(t, strings.HasPrefix(out[i], strings.ToUpper(string(r))),
				"token %q of %q should start with upper-case %q", out[i], id, string(r))
		}
	}
}

func TestTitle_EmptyToken(t *testing.T) {
	for _, id := range []string{"hero--banner", "-hero", "hero-", "-"} {
		_, err := Title(id)
		assert.True(t, errors.Is(err, ErrEmptyToken), "Title(%q) error = %v", id, err)
	}

	_, err := Title("")
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestValidate(t *testing.T) {
	valid := []string{"hero-banner", "hero", "Hero_Banner", "faq2"}
	for _, id := range valid {
		assert.NoError(t, Validate(id), id)
	}

	invalid := []string{"", ".", "hero--banner", "../hero", "a/b", `a\b`, "hero-"}
	for _, id := range invalid {
		assert.Error(t, Validate(id), id)
	}
}
