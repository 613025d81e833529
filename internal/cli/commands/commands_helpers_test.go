package commands

import (
	"bytes"
	"path/filepath"
	"runtime"
	"testing"

	"ShopFront/internal/config"
)

// withTempConfig переопределяет пользовательские каталоги на время теста,
// чтобы артефакты (токен/логин/база) создавались в temp.
func withTempConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if runtime.GOOS == "windows" {
		t.Setenv("APPDATA", dir)
	} else {
		t.Setenv("XDG_CONFIG_HOME", dir)
	}
	return dir
}

// testConfig - конфиг клиента с локальной корзиной в temp
func testConfig(t *testing.T, serverURL string) *config.Config {
	t.Helper()
	dir := withTempConfig(t)
	return &config.Config{
		ServerURL:    serverURL,
		ClientDBPath: filepath.Join(dir, "db", "cart.sqlite"),
	}
}

// captureOut перехватывает вывод команд на время теста
func captureOut(t *testing.T) *bytes.Buffer {
	t.Helper()
	old := Out
	var buf bytes.Buffer
	Out = &buf
	t.Cleanup(func() { Out = old })
	return &buf
}
