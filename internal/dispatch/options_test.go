package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want Options
	}{
		{
			name: "no arguments",
			args: nil,
			want: Options{},
		},
		{
			name: "single command",
			args: []string{"create"},
			want: Options{Command: "create"},
		},
		{
			name: "first positional wins",
			args: []string{"build", "create", "extra"},
			want: Options{Command: "build"},
		},
		{
			name: "value is not validated or lowered",
			args: []string{"TyPo"},
			want: Options{Command: "TyPo"},
		},
		{
			name: "unknown flags are ignored",
			args: []string{"--force", "-x", "create"},
			want: Options{Command: "create"},
		},
		{
			name: "yes flag sets skip prompts",
			args: []string{"--yes"},
			want: Options{SkipPrompts: true},
		},
		{
			name: "short yes flag with command",
			args: []string{"-y", "build"},
			want: Options{Command: "build", SkipPrompts: true},
		},
		{
			name: "double dash makes flag-like tokens positional",
			args: []string{"--", "--yes"},
			want: Options{Command: "--yes"},
		},
		{
			name: "lone dash is positional",
			args: []string{"-"},
			want: Options{Command: "-"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseArgs(tt.args))
		})
	}
}

func TestCommandNames(t *testing.T) {
	assert.Equal(t, []string{"create", "build"}, CommandNames())
}

func TestCommand_Implemented(t *testing.T) {
	assert.True(t, CommandCreate.Implemented())
	assert.False(t, CommandBuild.Implemented())
	assert.False(t, Command("typo").Implemented())
}
