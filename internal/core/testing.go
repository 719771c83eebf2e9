package core

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/julien-sobczak/nt-flashcards/internal/testutil"
	"github.com/julien-sobczak/nt-flashcards/pkg/clock"
)

// Reset forces singletons to be recreated. Useful between unit tests.
func Reset() {
	configOnce = sync.Once{}
	configSingleton = nil
	loggerOnce = sync.Once{}
	loggerSingleton = nil
}

/* Fixtures */

// SetUpHomeFromGoldenFile populates a temp home directory containing the golden file of the current test.
func SetUpHomeFromGoldenFile(t *testing.T) string {
	return SetUpHomeFromGoldenFileNamed(t, t.Name()+".md")
}

// SetUpHomeFromGoldenFileNamed populates a temp home directory based on the given golden file name.
func SetUpHomeFromGoldenFileNamed(t *testing.T, testname string) string {
	filename := testutil.SetUpFromGoldenFileNamed(t, testname)
	configureHome(t, filepath.Dir(filename), "")
	return filename
}

// SetUpHomeFromFileContent populates a temp home directory containing a single document.
func SetUpHomeFromFileContent(t *testing.T, name, content string) string {
	filename := testutil.SetUpFromFileContent(t, name, content)
	configureHome(t, filepath.Dir(filename), "")
	return filename
}

// SetUpHomeWithConfig populates a temp home directory using the given configuration.
func SetUpHomeWithConfig(t *testing.T, config string) string {
	dirname := t.TempDir()
	configureHome(t, dirname, config)
	return dirname
}

func configureHome(t *testing.T, dirname string, config string) {
	if config != "" {
		configDir := filepath.Join(dirname, ConfigDirName)
		if err := os.MkdirAll(configDir, os.ModePerm); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(configDir, "config"), []byte(config), 0644); err != nil {
			t.Fatal(err)
		}
	}

	// Force the application to consider the temporary directory as the home
	t.Setenv("NT_FLASHCARDS_HOME", dirname)
	Reset()
	t.Cleanup(Reset)

	// Force debug level in tests to diagnose more easily
	CurrentLogger().SetVerboseLevel(VerboseDebug)
	CurrentLogger().Debugf("✨ Set up directory %q", dirname)
}

/* Reproducible Tests */

// FreezeAt wraps the clock API to register the cleanup function at the end of the test.
func FreezeAt(t *testing.T, point time.Time) *clock.TestClock {
	testClock := clock.FreezeAt(point)
	t.Cleanup(clock.Unfreeze)
	return testClock
}
