package regex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/grepr/internal/adapters/regex"
	"go.trai.ch/zerr"
)

func TestCompiler_Compile(t *testing.T) {
	tests := []struct {
		name        string
		pattern     string
		insensitive bool
		line        string
		want        bool
	}{
		{"literal", "or", false, "Lorem\n", true},
		{"case sensitive miss", "or", false, "DOLOR", false},
		{"insensitive hit", "or", true, "DOLOR", true},
		{"insensitive upper pattern", "LOREM", true, "lorem ipsum\n", true},
		{"anchored", "^Ip", false, "Ipsum\r\n", true},
		{"character class", `\d+`, false, "line 42\n", true},
		{"empty pattern matches everything", "", false, "anything", true},
		{"alternation inside insensitive", "foo|bar", true, "BAR\n", true},
	}

	compiler := regex.NewCompiler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := compiler.Compile(tt.pattern, tt.insensitive)
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.MatchString(tt.line))
		})
	}
}

func TestCompiler_Compile_Invalid(t *testing.T) {
	compiler := regex.NewCompiler()

	for _, insensitive := range []bool{false, true} {
		m, err := compiler.Compile("a(b", insensitive)
		require.Error(t, err)
		assert.Nil(t, m)
		assert.Contains(t, err.Error(), "invalid pattern")

		var zErr *zerr.Error
		require.ErrorAs(t, err, &zErr)
		assert.Equal(t, "a(b", zErr.Metadata()["pattern"])
	}
}
