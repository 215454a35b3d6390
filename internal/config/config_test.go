package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mdouchement/treesnap/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadList(t *testing.T) {
	items, err := config.LoadList("")
	assert.NoError(t, err)
	assert.Nil(t, items)

	items, err = config.LoadList("a, b ,,c")
	assert.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, items)
}

func TestLoadListFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "list.txt")
	require.NoError(t, os.WriteFile(path, []byte("one\n\n two \nthree\n"), 0644))

	items, err := config.LoadList(path)
	assert.NoError(t, err)
	assert.Equal(t, []string{"one", "two", "three"}, items)
}

func TestFromEnv(t *testing.T) {
	t.Setenv(config.EnvFolder, "/data")
	t.Setenv(config.EnvPrivate, "secrets.txt,id_rsa")
	t.Setenv(config.EnvExclude, "vendor")
	t.Setenv(config.EnvHide, "node_modules,.git")

	c, err := config.FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "/data", c.Folder)
	assert.Equal(t, "output.txt", c.Output)
	assert.Equal(t, []string{"secrets.txt", "id_rsa"}, c.Private)
	assert.Equal(t, []string{"vendor"}, c.Exclude)
	assert.Equal(t, []string{"node_modules", ".git"}, c.Hide)
}

func TestFromEnvWithRules(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yml")
	payload := "private:\n  - token.json\nexclude:\n  - dist\nhide:\n  - .git\n"
	require.NoError(t, os.WriteFile(path, []byte(payload), 0644))

	t.Setenv(config.EnvFolder, "/data")
	t.Setenv(config.EnvOutput, "/tmp/snapshot.txt")
	t.Setenv(config.EnvPrivate, "secrets.txt")
	t.Setenv(config.EnvRules, path)

	c, err := config.FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/snapshot.txt", c.Output)
	assert.Equal(t, []string{"secrets.txt", "token.json"}, c.Private)
	assert.Equal(t, []string{"dist"}, c.Exclude)
	assert.Equal(t, []string{".git"}, c.Hide)
}

func TestValidate(t *testing.T) {
	t.Setenv(config.EnvFolder, "")

	c, err := config.FromEnv()
	require.NoError(t, err)
	assert.EqualError(t, c.Validate(), "FOLDER environment variable not set")

	c.Folder = "/nonexistent-treesnap-root"
	assert.Error(t, c.Validate())

	c.Folder = t.TempDir()
	assert.NoError(t, c.Validate())
}
