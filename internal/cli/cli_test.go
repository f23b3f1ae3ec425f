// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"reflect"
	"testing"

	"github.com/jeranaias/comet-tui/internal/api"
	"github.com/jeranaias/comet-tui/internal/commands"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want Command
		rest []string
	}{
		{"no args", nil, CmdTUI, nil},
		{"run", []string{"run", "getMember"}, CmdRun, []string{"getMember"}},
		{"run bare", []string{"run"}, CmdRun, nil},
		{"repl", []string{"repl"}, CmdRepl, nil},
		{"repl with noise", []string{"repl", "extra"}, CmdRepl, []string{"extra"}},
		{"version", []string{"version"}, CmdVersion, nil},
		{"version flag", []string{"--version"}, CmdVersion, nil},
		{"help", []string{"help"}, CmdHelp, nil},
		{"bare line", []string{"getMember", "--scripts", "true"}, CmdRun, []string{"getMember", "--scripts", "true"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, rest := Parse(tt.args)
			if cmd != tt.want {
				t.Errorf("command = %d, want %d", cmd, tt.want)
			}
			if !reflect.DeepEqual(rest, tt.rest) {
				t.Errorf("rest = %v, want %v", rest, tt.rest)
			}
		})
	}
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   map[string]string
	}{
		{
			"pairs",
			[]string{"--id", "150", "--source", "x"},
			map[string]string{"id": "150", "source": "x"},
		},
		{
			"trailing bare flag becomes true",
			[]string{"--id", "150", "--source"},
			map[string]string{"id": "150", "source": "true"},
		},
		{
			"bare flag before another flag",
			[]string{"--source", "--id", "150"},
			map[string]string{"source": "true", "id": "150"},
		},
		{
			"stray positional ignored",
			[]string{"stray", "--id", "1"},
			map[string]string{"id": "1"},
		},
		{
			"empty",
			nil,
			map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseFlags(tt.tokens)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseFlags(%v) = %v, want %v", tt.tokens, got, tt.want)
			}
		})
	}
}

// TestParseFlagsDivergesFromShellParser pins down the documented
// difference between the legacy flag parser and the shell's canonical
// one: a trailing bare flag is "true" here and dropped there.
func TestParseFlagsDivergesFromShellParser(t *testing.T) {
	reg := commands.NewRegistry()
	parser := commands.NewParser(reg)

	line := "getScript --id 150 --source"
	tokens := commands.Tokenize(line)

	legacy := ParseFlags(tokens[1:])
	if legacy["source"] != "true" {
		t.Errorf("legacy parser: source = %q, want \"true\"", legacy["source"])
	}

	canonical := parser.Parse(line)
	if canonical.Has("source") {
		t.Error("canonical parser should drop the trailing bare flag")
	}
	if v, _ := canonical.Get("id"); v != "150" {
		t.Errorf("canonical parser: id = %q, want \"150\"", v)
	}
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"missing param", &api.MissingParamError{Command: "x", Param: "y"}, ExitUsageError},
		{"type error", &api.TypeError{Param: "count", Want: "an integer", Raw: "x"}, ExitUsageError},
		{"api error", &api.APIError{Status: 401}, ExitAPIError},
		{"not configured", api.ErrNotConfigured, ExitConfigError},
		{"generic", errGeneric, ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetExitCode(tt.err); got != tt.want {
				t.Errorf("GetExitCode = %d, want %d", got, tt.want)
			}
		})
	}
}

var errGeneric = errTest("boom")

type errTest string

func (e errTest) Error() string { return string(e) }
