package main

import "testing"

func TestCanRunWithoutStore(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want bool
	}{
		{name: "no args opens the board", args: nil, want: false},
		{name: "help flag", args: []string{"--help"}, want: true},
		{name: "help shorthand on subcommand", args: []string{"add", "-h"}, want: true},
		{name: "help subcommand", args: []string{"help", "export"}, want: true},
		{name: "version flag", args: []string{"--version"}, want: true},
		{name: "list needs the store", args: []string{"list"}, want: false},
		{name: "config needs the container", args: []string{"config"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := canRunWithoutStore(tt.args); got != tt.want {
				t.Fatalf("canRunWithoutStore(%v) = %v, want %v", tt.args, got, tt.want)
			}
		})
	}
}
