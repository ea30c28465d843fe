package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	errs "github.com/matzehuels/linguist/pkg/errors"
)

func TestRunExitCodes(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	badDataset := filepath.Join(t.TempDir(), "bad.yml")
	if err := os.WriteFile(badDataset, []byte("- not\n- a mapping\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		args    []string
		want    int
		wantErr string
	}{
		{"hit", []string{"ext", "rs"}, 0, ""},
		{"miss", []string{"ext", "notanext"}, errs.ExitFailure, `Error: no language for extension "notanext"`},
		{"bad format", []string{"graph", "--format", "gif"}, errs.ExitUsage, `Error: unknown format "gif"`},
		{"unknown flag", []string{"ext", "--nope", "rs"}, errs.ExitUsage, "Error: linguist ext: unknown flag: --nope"},
		{"missing dataset", []string{"--dataset", filepath.Join(t.TempDir(), "none.yml"), "ext", "rs"}, errs.ExitFailure, "Error: dataset "},
		{"invalid dataset", []string{"--dataset", badDataset, "ext", "rs"}, errs.ExitDataset, "Error: decode languages"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			got := run(context.Background(), tt.args, &stdout, &stderr)
			if got != tt.want {
				t.Errorf("run() = %d, want %d (stderr %q)", got, tt.want, stderr.String())
			}
			if tt.wantErr != "" && !strings.Contains(stderr.String(), tt.wantErr) {
				t.Errorf("stderr = %q, want it to contain %q", stderr.String(), tt.wantErr)
			}
			if strings.Contains(stderr.String(), "NOT_FOUND:") {
				t.Errorf("stderr %q leaks the error code prefix", stderr.String())
			}
		})
	}
}
