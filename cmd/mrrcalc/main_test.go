package main

import (
	"bytes"
	"testing"
)

func TestRootCommand(t *testing.T) {
	cmd := rootCmd

	if cmd == nil {
		t.Fatal("Expected root command to be created")
	}

	if cmd.Use != "mrrcalc" {
		t.Errorf("Expected root command use to be 'mrrcalc', got %s", cmd.Use)
	}

	if cmd.Short == "" {
		t.Error("Expected root command to have a short description")
	}

	if cmd.Long == "" {
		t.Error("Expected root command to have a long description")
	}
}

func TestRootCommand_Help(t *testing.T) {
	cmd := rootCmd
	cmd.SetArgs([]string{"--help"})

	var buf bytes.Buffer
	cmd.SetOutput(&buf)

	err := cmd.Execute()

	if err != nil {
		t.Errorf("Expected no error for help command, got %v", err)
	}

	output := buf.String()
	if output == "" {
		t.Error("Expected help command to show help text")
	}
}

func TestCommandSubcommands(t *testing.T) {
	// Test that all expected commands are registered
	expectedCommands := []string{
		"project",
		"impact",
		"insight",
		"plan",
		"seek",
		"compare",
		"validate",
		"version",
	}

	cmd := rootCmd.Commands()
	for _, expectedCmd := range expectedCommands {
		found := false
		for _, c := range cmd {
			if c.Name() == expectedCmd {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Expected command '%s' to be registered with root command", expectedCmd)
		}
	}
}

func TestRootCommandFlags(t *testing.T) {
	cmd := rootCmd

	for _, name := range []string{"config", "debug", "churn", "arpu", "activation"} {
		if cmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("Expected persistent flag %q to exist on root command", name)
		}
	}
}

func TestHorizonPoints(t *testing.T) {
	cases := []struct {
		horizon int
		want    []int
	}{
		{18, []int{0, 3, 6, 9, 12, 15, 18}},
		{12, []int{0, 3, 6, 9, 12}},
		{14, []int{0, 3, 6, 9, 12, 14}},
		{0, []int{0}},
	}

	for _, tc := range cases {
		got := horizonPoints(tc.horizon)
		if len(got) != len(tc.want) {
			t.Errorf("horizonPoints(%d) = %v, want %v", tc.horizon, got, tc.want)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("horizonPoints(%d) = %v, want %v", tc.horizon, got, tc.want)
				break
			}
		}
	}
}
