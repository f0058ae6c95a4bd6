package colorscript

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	t.Setenv("HOME", "/tmp/home")

	dir := DefaultConfigDir()
	assert.Equal(t, configDirName, filepath.Base(dir))
}

func TestBootstrapFirstRun(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "png-colorscript")

	cfg, created, err := Bootstrap(dir)
	require.NoError(t, err)
	assert.True(t, created)

	assert.DirExists(t, dir)
	assert.FileExists(t, ConfigFile(dir))
	assert.Equal(t, filepath.Join(dir, "pngs"), cfg.ImagesPath())
	assert.DirExists(t, cfg.ImagesPath())

	again, created, err := Bootstrap(dir)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, cfg.ImagesPath(), again.ImagesPath())
	assert.Equal(t, DefaultExtensions, again.Exts())
}

func TestBootstrapExistingDirWithoutConfig(t *testing.T) {
	dir := t.TempDir()

	cfg, created, err := Bootstrap(dir)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, filepath.Join(dir, "pngs"), cfg.ImagesPath())
	assert.Equal(t, DefaultRenderOptions(), cfg.RenderOptions())
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name       string
		yaml       string
		wantImages func(dir string) string
		wantExts   []string
		wantCutoff uint8
		wantErr    bool
	}{
		{
			name:       "absolute images dir",
			yaml:       "images_dir: /srv/sprites\n",
			wantImages: func(string) string { return "/srv/sprites" },
			wantExts:   DefaultExtensions,
			wantCutoff: AlphaCutoff,
		},
		{
			name:       "relative images dir",
			yaml:       "images_dir: art/small\n",
			wantImages: func(dir string) string { return filepath.Join(dir, "art", "small") },
			wantExts:   DefaultExtensions,
			wantCutoff: AlphaCutoff,
		},
		{
			name:       "blank images dir falls back",
			yaml:       "images_dir: \"\"\n",
			wantImages: func(dir string) string { return filepath.Join(dir, "pngs") },
			wantExts:   DefaultExtensions,
			wantCutoff: AlphaCutoff,
		},
		{
			name:       "extensions and cutoff",
			yaml:       "images_dir: pngs\nextensions: [png, webp]\nalpha_cutoff: 200\n",
			wantImages: func(dir string) string { return filepath.Join(dir, "pngs") },
			wantExts:   []string{"png", "webp"},
			wantCutoff: 200,
		},
		{
			name:       "zero cutoff is kept",
			yaml:       "alpha_cutoff: 0\n",
			wantImages: func(dir string) string { return filepath.Join(dir, "pngs") },
			wantExts:   DefaultExtensions,
			wantCutoff: 0,
		},
		{
			name:    "cutoff out of range",
			yaml:    "alpha_cutoff: 300\n",
			wantErr: true,
		},
		{
			name:    "malformed",
			yaml:    "images_dir: [unterminated\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(ConfigFile(dir), []byte(tt.yaml), 0o644))

			cfg, err := Load(dir)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantImages(dir), cfg.ImagesPath())
			assert.Equal(t, tt.wantExts, cfg.Exts())
			assert.Equal(t, tt.wantCutoff, cfg.RenderOptions().AlphaCutoff)
		})
	}
}

func TestImagesPathExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := &Config{ImagesDir: "~/pictures/pngs", dir: "/ignored"}
	assert.Equal(t, filepath.Join(home, "pictures", "pngs"), cfg.ImagesPath())
}

func TestConfigSaveRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cfg")
	cutoff := uint8(64)
	cfg := &Config{ImagesDir: "/data/pngs", Extensions: []string{".png", ".gif"}, AlphaCutoff: &cutoff}

	require.NoError(t, cfg.Save(dir))

	loaded, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, cfg.ImagesDir, loaded.ImagesDir)
	assert.Equal(t, cfg.Extensions, loaded.Extensions)
	require.NotNil(t, loaded.AlphaCutoff)
	assert.EqualValues(t, 64, *loaded.AlphaCutoff)
}
