package main

import (
	"strings"
	"testing"
)

func TestRootCmd_RequiresProfile(t *testing.T) {
	t.Setenv("APP_PROFILE", "")

	cmd := newRootCmd()
	cmd.SetArgs(nil)

	err := cmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "--profile") {
		t.Errorf("Execute() error = %v, want missing profile error", err)
	}
}

func TestRootCmd_UnknownProfileFailsToLoad(t *testing.T) {
	t.Setenv("APP_PROFILE", "")

	cmd := newRootCmd()
	cmd.SetArgs([]string{"--profile", "nosuch", "--config-dir", t.TempDir()})

	err := cmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "loading config") {
		t.Errorf("Execute() error = %v, want config load error", err)
	}
}
