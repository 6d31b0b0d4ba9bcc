package format_test

import (
	"testing"

	"github.com/sotte/pelper/format"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		tmpl string
		args []any
		want string
	}{
		{
			name: "no placeholders",
			tmpl: "text",
			want: "text",
		},
		{
			name: "auto indexed",
			tmpl: "text {} {}",
			args: []any{"alan", "bob"},
			want: "text alan bob",
		},
		{
			name: "positional",
			tmpl: "text {1} {0}",
			args: []any{"alan", "bob"},
			want: "text bob alan",
		},
		{
			name: "repeated position",
			tmpl: "{0} {0}",
			args: []any{"hi"},
			want: "hi hi",
		},
		{
			name: "mixed types",
			tmpl: "{} is {} years old",
			args: []any{"ada", 36},
			want: "ada is 36 years old",
		},
		{
			name: "out of range renders verbatim",
			tmpl: "have {0} want {3}",
			args: []any{"one"},
			want: "have one want {3}",
		},
		{
			name: "escaped braces",
			tmpl: "{{literal}} {}",
			args: []any{"x"},
			want: "{literal} x",
		},
		{
			name: "unterminated placeholder",
			tmpl: "broken {name",
			want: "broken {name",
		},
		{
			name: "named placeholder without fields renders verbatim",
			tmpl: "text {first}",
			args: []any{"alan"},
			want: "text {first}",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, format.Format(tt.tmpl, tt.args...))
		})
	}
}

func TestFormatNamed(t *testing.T) {
	fields := map[string]any{"first": "alan", "second": "bob", "n": 7}

	assert.Equal(t, "text alan bob",
		format.FormatNamed("text {first} {second}", fields))
	assert.Equal(t, "n=7",
		format.FormatNamed("n={n}", fields))
	assert.Equal(t, "text {missing}",
		format.FormatNamed("text {missing}", fields))
	assert.Equal(t, "plain",
		format.FormatNamed("plain", nil))
}
