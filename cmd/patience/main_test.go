package main

import (
	"testing"

	"github.com/spf13/cobra"
)

func TestApplyEnv(t *testing.T) {
	t.Setenv("PATIENCE_DB", "/tmp/results.db")
	t.Setenv("PATIENCE_LOG_LEVEL", "debug")
	t.Setenv("PATIENCE_CONFIG", "")

	var db, level, cfg string
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().StringVar(&db, "db", "default.db", "")
	cmd.Flags().StringVar(&level, "log-level", "info", "")
	cmd.Flags().StringVar(&cfg, "config", "", "")

	if err := cmd.Flags().Set("log-level", "warn"); err != nil {
		t.Fatal(err)
	}
	applyEnv(cmd)

	if db != "/tmp/results.db" {
		t.Errorf("db = %q, expected the environment value", db)
	}
	if level != "warn" {
		t.Errorf("log-level = %q, an explicit flag should win", level)
	}
	if cfg != "" {
		t.Errorf("config = %q, empty variables should be ignored", cfg)
	}
}
