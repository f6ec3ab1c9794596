package sanitize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		maxLength int
		want      string
	}{
		{name: "empty", input: "", maxLength: 10, want: ""},
		{name: "whitespace only", input: "   \t\n", maxLength: 10, want: ""},
		{name: "trims", input: "  Salade niçoise  ", maxLength: 100, want: "Salade niçoise"},
		{name: "truncates", input: "abcdefgh", maxLength: 3, want: "abc"},
		{name: "truncates runes not bytes", input: "éééé", maxLength: 2, want: "éé"},
		{name: "zero length", input: "abc", maxLength: 0, want: ""},
		{name: "drops invalid utf8", input: "Caf\xe9 cr\xffème", maxLength: 100, want: "Caf crème"},
		{name: "drops nul bytes", input: "Ac\x00cras", maxLength: 100, want: "Accras"},
		{name: "invalid utf8 only", input: "\xff\xfe", maxLength: 10, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, String(tt.input, tt.maxLength))
		})
	}
}

func TestURL(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "https", input: "https://example.com/a.jpg", want: "https://example.com/a.jpg"},
		{name: "http", input: " http://example.com ", want: "http://example.com"},
		{name: "relative", input: "/images/hero.jpg", want: "/images/hero.jpg"},
		{name: "javascript scheme", input: "javascript:alert(1)", want: ""},
		{name: "data scheme", input: "data:text/html;base64,xx", want: ""},
		{name: "bare host", input: "example.com", want: ""},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, URL(tt.input))
		})
	}
}

func TestURL_Truncates(t *testing.T) {
	long := "https://example.com/" + strings.Repeat("a", 3000)

	got := URL(long)

	assert.Len(t, got, MaxURLLength)
	assert.True(t, strings.HasPrefix(got, "https://example.com/"))
}

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("admin@edengarden.fr"))
	assert.True(t, ValidateEmail("a.b+c@sub.domain.org"))
	assert.False(t, ValidateEmail("admin"))
	assert.False(t, ValidateEmail("admin@localhost"))
	assert.False(t, ValidateEmail("ad min@example.com"))
	assert.False(t, ValidateEmail(""))
}

func TestEmail(t *testing.T) {
	assert.Equal(t, "admin@edengarden.fr", Email("  Admin@EdenGarden.FR ", 100))
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   float64
		wantOK bool
	}{
		{name: "zero", input: "0", want: 0, wantOK: true},
		{name: "upper bound", input: "9999.99", want: 9999.99, wantOK: true},
		{name: "comma decimal", input: "12,50", want: 12.5, wantOK: true},
		{name: "rounds", input: "3.14159", want: 3.14, wantOK: true},
		{name: "negative", input: "-0.01", wantOK: false},
		{name: "too large", input: "10000", wantOK: false},
		{name: "not a number", input: "abc", wantOK: false},
		{name: "empty", input: "", wantOK: false},
		{name: "nan", input: "NaN", wantOK: false},
		{name: "inf", input: "Inf", wantOK: false},
		{name: "two commas", input: "1,2,3", wantOK: false},
		{name: "hex float", input: "0x1p3", wantOK: false},
		{name: "exponent", input: "1e3", wantOK: false},
		{name: "explicit plus", input: "+5", wantOK: false},
		{name: "negative zero", input: "-0", wantOK: false},
		{name: "leading dot", input: ".5", wantOK: false},
		{name: "trailing dot", input: "12.", wantOK: false},
		{name: "surrounding spaces", input: " 8,90 ", want: 8.9, wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParsePrice(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.InDelta(t, tt.want, got, 0.0001)
			}
			assert.Equal(t, tt.wantOK, ValidatePrice(tt.input))
		})
	}
}

func TestPhone(t *testing.T) {
	assert.Equal(t, "+33612345678", Phone(" +33 6 12 34 56 78 ", 20))
	assert.Equal(t, "0493", Phone("04-93", 20))
	assert.Equal(t, "", Phone("abc", 20))
}
