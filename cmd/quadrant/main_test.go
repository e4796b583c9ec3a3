package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanRunWithoutConfig(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want bool
	}{
		{
			name: "no args opens the board",
			args: nil,
			want: false,
		},
		{
			name: "help flag",
			args: []string{"--help"},
			want: true,
		},
		{
			name: "version flag",
			args: []string{"--version"},
			want: true,
		},
		{
			name: "help subcommand",
			args: []string{"help", "add"},
			want: true,
		},
		{
			name: "config template",
			args: []string{"config", "template"},
			want: true,
		},
		{
			name: "config show needs the config",
			args: []string{"config", "show"},
			want: false,
		},
		{
			name: "board command",
			args: []string{"list", "--weekly"},
			want: false,
		},
		{
			name: "subcommand help",
			args: []string{"add", "-h"},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, canRunWithoutConfig(tt.args))
		})
	}
}
