package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestInitializeLoadsDefaults(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	userCfg := filepath.Join(tmp, "user.yaml")

	if err := Initialize(WithWorkingDir(tmp), WithUserConfig(userCfg)); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}

	if got := GetString(KeyTheme); got != "tokyonight" {
		t.Fatalf("expected default %s to be tokyonight, got %q", KeyTheme, got)
	}
	if got := GetString(KeyOutputFormat); got != "rich" {
		t.Fatalf("expected default %s to be rich, got %q", KeyOutputFormat, got)
	}
	if got := GetString(KeyAppName); got != DefaultAppName {
		t.Fatalf("expected default %s to be %q, got %q", KeyAppName, DefaultAppName, got)
	}
	if got := GetInt(KeyDialogWidth); got != DefaultDialogWidth {
		t.Fatalf("expected default %s to be %d, got %d", KeyDialogWidth, DefaultDialogWidth, got)
	}
	if got := GetDuration(KeyPreviewTick); got != 150*time.Millisecond {
		t.Fatalf("expected default %s to be 150ms, got %s", KeyPreviewTick, got)
	}
	if got := GetFloat(KeyPreviewStep); got != 4 {
		t.Fatalf("expected default %s to be 4, got %v", KeyPreviewStep, got)
	}
}

func TestProjectConfigOverridesUser(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	projectDir := filepath.Join(tmp, "repo", "sub")
	projectCfg := filepath.Join(tmp, "repo", ".ideupdater", "config.yaml")
	mustMkdir(t, projectDir)
	writeFile(t, projectCfg, `
app:
  name: Project IDE
output:
  format: light
`)

	userCfg := filepath.Join(tmp, "user.yaml")
	writeFile(t, userCfg, `
app:
  name: User IDE
locale:
  name: de
`)

	if err := Initialize(WithWorkingDir(projectDir), WithUserConfig(userCfg)); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}

	if got := GetString(KeyAppName); got != "Project IDE" {
		t.Fatalf("expected project config to win for %s, got %q", KeyAppName, got)
	}
	if got := GetString(KeyOutputFormat); got != "light" {
		t.Fatalf("expected project output format, got %q", got)
	}
	if got := GetString(KeyLocale); got != "de" {
		t.Fatalf("expected user locale to survive merge, got %q", got)
	}
}

func TestEnvironmentAndOverridesPrecedence(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	projectCfg := filepath.Join(tmp, ".ideupdater", "config.yaml")
	writeFile(t, projectCfg, `
dialog:
  width: 50
theme: nord
`)

	t.Setenv("IU_DIALOG_WIDTH", "72")
	t.Setenv("IU_THEME", "dracula")

	if err := Initialize(
		WithWorkingDir(tmp),
		WithProjectConfig(projectCfg),
		WithUserConfig(filepath.Join(tmp, "missing.yaml")),
	); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}

	if got := GetInt(KeyDialogWidth); got != 72 {
		t.Fatalf("expected env override for %s, got %d", KeyDialogWidth, got)
	}
	if got := GetString(KeyTheme); got != "dracula" {
		t.Fatalf("expected env override for %s, got %q", KeyTheme, got)
	}

	if err := ApplyOverrides(map[string]any{KeyTheme: "solarized"}); err != nil {
		t.Fatalf("ApplyOverrides returned error: %v", err)
	}
	if got := GetString(KeyTheme); got != "solarized" {
		t.Fatalf("expected CLI override for %s, got %q", KeyTheme, got)
	}
}

func TestConfigDirectoryIsRejected(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	mustMkdir(t, filepath.Join(tmp, ".ideupdater", "config.yaml"))

	err := Initialize(WithWorkingDir(tmp), WithUserConfig(filepath.Join(tmp, "user.yaml")))
	if err == nil {
		t.Fatal("expected error when config path is a directory")
	}
}

func TestSaveThemeWritesUserConfig(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	t.Chdir(tmp)
	target := filepath.Join(tmp, "home", dirName, "config.yaml")
	userConfigPathOverride = target

	if err := SaveTheme("nord"); err != nil {
		t.Fatalf("SaveTheme returned error: %v", err)
	}

	v := viper.New()
	v.SetConfigFile(target)
	if err := v.ReadInConfig(); err != nil {
		t.Fatalf("read saved config: %v", err)
	}
	if got := v.GetString(KeyTheme); got != "nord" {
		t.Fatalf("expected saved theme nord, got %q", got)
	}
}

func TestSaveSkippedVersionPersistsAndApplies(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	t.Chdir(tmp)
	target := filepath.Join(tmp, "home", dirName, "config.yaml")
	writeFile(t, target, "theme: dracula\n")
	userConfigPathOverride = target

	if err := SaveSkippedVersion("2.1.0"); err != nil {
		t.Fatalf("SaveSkippedVersion returned error: %v", err)
	}
	if got := GetString(KeySkipped); got != "2.1.0" {
		t.Fatalf("expected skipped version in live config, got %q", got)
	}

	v := viper.New()
	v.SetConfigFile(target)
	if err := v.ReadInConfig(); err != nil {
		t.Fatalf("read saved config: %v", err)
	}
	if got := v.GetString(KeySkipped); got != "2.1.0" {
		t.Fatalf("expected saved skipped version, got %q", got)
	}
	if got := v.GetString(KeyTheme); got != "dracula" {
		t.Fatalf("existing keys must survive, got theme %q", got)
	}
}

func mustMkdir(t *testing.T, dir string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
}

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	mustMkdir(t, filepath.Dir(path))
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write file %s: %v", path, err)
	}
}
