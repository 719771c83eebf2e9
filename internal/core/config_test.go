package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/julien-sobczak/nt-flashcards/internal/markdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadConfigFromDirectory(t *testing.T) {

	t.Run("Config missing", func(t *testing.T) {
		dir := t.TempDir()

		config, err := ReadConfigFromDirectory(dir)
		require.NoError(t, err)

		assert.Equal(t, dir, config.RootDirectory)
		assert.Equal(t, ConfigFile{
			Callout: ConfigCallout{
				Keyword: "card",
			},
			Snippet: ConfigSnippet{
				Enabled: true,
				Text:    "!c",
			},
			Style: ConfigStyle{
				Color: "#ff0000",
			},
			Session: ConfigSession{
				Persist: true,
				Shuffle: false,
			},
		}, config.ConfigFile)
	})

	t.Run("Config present", func(t *testing.T) {
		dir := populate(t, map[string]string{
			".nt-flashcards/config": `
[callout]
keyword="quiz"

[style]
color="#00ff7f"

[session]
shuffle=true
`,
		})

		config, err := ReadConfigFromDirectory(dir)
		require.NoError(t, err)

		// Overridden values
		assert.Equal(t, "quiz", config.ConfigFile.Callout.Keyword)
		assert.Equal(t, "#00ff7f", config.ConfigFile.Style.Color)
		assert.True(t, config.ConfigFile.Session.Shuffle)
		// Default values
		assert.True(t, config.ConfigFile.Snippet.Enabled)
		assert.Equal(t, "!c", config.ConfigFile.Snippet.Text)
		assert.True(t, config.ConfigFile.Session.Persist)

		assert.Equal(t, markdown.CalloutSyntax{Keyword: "quiz"}, config.Syntax())
	})

	t.Run("Config invalid", func(t *testing.T) {
		var tests = []struct {
			name    string // name
			content string // input
		}{
			{
				name:    "Malformed TOML",
				content: "[callout\nkeyword=",
			},
			{
				name:    "Invalid color",
				content: "[style]\ncolor=\"red\"",
			},
			{
				name:    "Invalid keyword",
				content: "[callout]\nkeyword=\"my card]\"",
			},
			{
				name:    "Snippet with spaces",
				content: "[snippet]\ntext=\"! c\"",
			},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				dir := populate(t, map[string]string{
					".nt-flashcards/config": tt.content,
				})
				_, err := ReadConfigFromDirectory(dir)
				assert.Error(t, err)
			})
		}
	})
}

func TestCurrentConfig(t *testing.T) {
	dir := SetUpHomeWithConfig(t, `
[snippet]
enabled=false
`)

	config := CurrentConfig()
	assert.Same(t, config, CurrentConfig())
	assert.Equal(t, "", config.Snippet())
	assert.Equal(t, filepath.Join(dir, ".nt-flashcards/config"), config.ConfigPath())
	assert.Equal(t, filepath.Join(dir, ".nt-flashcards/sessions"), config.SessionsDir())
}

func TestConfigOverride(t *testing.T) {
	config, err := ReadConfigFromDirectory(t.TempDir())
	require.NoError(t, err)

	err = config.Override(ConfigFile{
		Callout: ConfigCallout{
			Keyword: "quiz",
		},
		Session: ConfigSession{
			Shuffle: true,
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "quiz", config.ConfigFile.Callout.Keyword)
	assert.True(t, config.ConfigFile.Session.Shuffle)
	// Empty values are ignored
	assert.Equal(t, "#ff0000", config.ConfigFile.Style.Color)
	assert.Equal(t, "!c", config.Snippet())
	assert.True(t, config.ConfigFile.Session.Persist)

	err = config.Override(ConfigFile{
		Callout: ConfigCallout{
			Keyword: "not valid",
		},
	})
	assert.Error(t, err)
}

func TestWriteDefault(t *testing.T) {
	dir := t.TempDir()
	config, err := ReadConfigFromDirectory(dir)
	require.NoError(t, err)

	created, err := config.WriteDefault()
	require.NoError(t, err)
	assert.True(t, created)
	require.FileExists(t, filepath.Join(dir, ".nt-flashcards/config"))

	// Existing files are never overwritten
	created, err = config.WriteDefault()
	require.NoError(t, err)
	assert.False(t, created)

	// The written file is a valid configuration
	reloaded, err := ReadConfigFromDirectory(dir)
	require.NoError(t, err)
	assert.Equal(t, config.ConfigFile, reloaded.ConfigFile)
}

func TestHexToRGB(t *testing.T) {
	var tests = []struct {
		name    string // name
		hex     string // input
		r, g, b int    // output
		valid   bool
	}{
		{
			name:  "Red",
			hex:   "#ff0000",
			r:     255,
			valid: true,
		},
		{
			name:  "Mixed case",
			hex:   "#1E90fF",
			r:     30,
			g:     144,
			b:     255,
			valid: true,
		},
		{
			name:  "Missing hash",
			hex:   "ff0000",
			valid: false,
		},
		{
			name:  "Short form",
			hex:   "#f00",
			valid: false,
		},
		{
			name:  "Not hexadecimal",
			hex:   "#gg0000",
			valid: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, err := HexToRGB(tt.hex)
			if !tt.valid {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, []int{tt.r, tt.g, tt.b}, []int{r, g, b})
		})
	}
}

/* Test Helpers */

// populate creates the given files in a new temporary directory.
func populate(t *testing.T, files map[string]string) string {
	dir := t.TempDir()
	for path, content := range files {
		filename := filepath.Join(dir, path)
		require.NoError(t, os.MkdirAll(filepath.Dir(filename), os.ModePerm))
		require.NoError(t, os.WriteFile(filename, []byte(content), 0644))
	}
	return dir
}
