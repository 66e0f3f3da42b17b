package configwatcher

import (
	"context"
	"fmt"
	"mathquiz_backend/internal/config"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, path string, questions int) {
	t.Helper()
	body := fmt.Sprintf("jwt:\n  secret: watcher-test\nstorage:\n  local_path: %q\nquiz:\n  default_questions: %d\n",
		filepath.Join(filepath.Dir(path), "uploads"), questions)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestWatchReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	writeConfig(t, path, 5)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloaded := make(chan *config.Config, 1)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, func(cfg *config.Config) {
			select {
			case reloaded <- cfg:
			default:
			}
		})
	}()

	// give the watcher time to register the directory
	time.Sleep(200 * time.Millisecond)
	writeConfig(t, path, 7)

	select {
	case cfg := <-reloaded:
		if cfg.Quiz.DefaultQuestions != 7 {
			t.Errorf("DefaultQuestions = %d, want 7", cfg.Quiz.DefaultQuestions)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("config was not reloaded")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Watch() error = %v", err)
		}
	case <-time.After(time.Second):
		t.Error("Watch() did not return after cancel")
	}
}

func TestWatchMissingDirectory(t *testing.T) {
	err := Watch(context.Background(), filepath.Join(t.TempDir(), "nope", "config.yaml"), func(*config.Config) {})
	if err == nil {
		t.Error("Watch() on a missing directory should fail")
	}
}
