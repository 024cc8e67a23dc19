package batch

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var expectedSuffixes = []string{
	"saturate_hsl", "desaturate", "lighten", "darken", "shift_hue",
	"solarize", "colorize", "halftone", "inc_brightness", "vertical_strips",
	"horizontal_strips", "tint", "offset", "offset_blue", "offset_red",
	"offset_green", "multiple_offsets", "primary",
}

func writePNG(t *testing.T, path string) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 40, 40))
	for y := 0; y < 40; y++ {
		for x := 0; x < 40; x++ {
			img.SetRGBA(x, y, color.RGBA{uint8(x * 6), uint8(y * 6), 128, 255})
		}
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

func expectedOutputs(names ...string) []string {
	var files []string
	for _, name := range names {
		for _, suffix := range expectedSuffixes {
			files = append(files, name+"_"+suffix+".jpg")
		}
	}
	sort.Strings(files)
	return files
}

func TestCatalog(t *testing.T) {
	catalog := Catalog()
	names := make([]string, len(catalog))
	for i, effect := range catalog {
		names[i] = effect.Name
		assert.NotNil(t, effect.Stage, effect.Name)
	}
	assert.Equal(t, expectedSuffixes, names)
}

func TestRunner_Run(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := filepath.Join(t.TempDir(), "out")

	writePNG(t, filepath.Join(inputDir, "café-photo, final (v2).png"))
	writePNG(t, filepath.Join(inputDir, "sunset.png"))
	require.NoError(t, os.Mkdir(filepath.Join(inputDir, "nested"), 0755))

	var out bytes.Buffer
	stats, err := NewRunner(Options{Out: &out}).Run(inputDir, outputDir)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Files)
	assert.Equal(t, 2*len(expectedSuffixes), stats.Succeeded)
	assert.Zero(t, stats.Failed)
	assert.Equal(t, expectedOutputs("cafe_photo_finalv2", "sunset"), listDir(t, outputDir))

	progress := out.String()
	assert.Equal(t, 2*len(expectedSuffixes), strings.Count(progress, "Generate "))
	assert.Contains(t, progress, "Generate "+filepath.Join(outputDir, "sunset_primary.jpg")+" image.\n")
	assert.Contains(t, progress, "You can compare outputs images with the original in "+filepath.Join(inputDir, "sunset.png"))
	assert.NotContains(t, progress, "nested")
}

func TestRunner_Rerun_Overwrites(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := t.TempDir()
	writePNG(t, filepath.Join(inputDir, "a.png"))

	runner := NewRunner(Options{Out: &bytes.Buffer{}})
	_, err := runner.Run(inputDir, outputDir)
	require.NoError(t, err)
	first, err := os.ReadFile(filepath.Join(outputDir, "a_tint.jpg"))
	require.NoError(t, err)

	_, err = runner.Run(inputDir, outputDir)
	require.NoError(t, err)
	second, err := os.ReadFile(filepath.Join(outputDir, "a_tint.jpg"))
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, listDir(t, outputDir), len(expectedSuffixes))
}

func TestRunner_FailFast(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := t.TempDir()

	writePNG(t, filepath.Join(inputDir, "a.png"))
	require.NoError(t, os.WriteFile(filepath.Join(inputDir, "b.txt"), []byte("not an image"), 0644))
	writePNG(t, filepath.Join(inputDir, "c.png"))

	var out bytes.Buffer
	stats, err := NewRunner(Options{Out: &out}).Run(inputDir, outputDir)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrEffectsFailed)
	assert.Contains(t, err.Error(), "failed to create saturate_hsl image for "+filepath.Join(inputDir, "b.txt"))

	assert.Equal(t, 2, stats.Files)
	assert.Equal(t, 1, stats.Failed)
	assert.Equal(t, expectedOutputs("a"), listDir(t, outputDir))
	assert.NotContains(t, out.String(), "c.png")
}

func TestRunner_KeepGoing(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := t.TempDir()

	writePNG(t, filepath.Join(inputDir, "a.png"))
	require.NoError(t, os.WriteFile(filepath.Join(inputDir, "b.txt"), []byte("not an image"), 0644))
	writePNG(t, filepath.Join(inputDir, "c.png"))

	stats, err := NewRunner(Options{KeepGoing: true, Out: &bytes.Buffer{}}).Run(inputDir, outputDir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEffectsFailed)

	assert.Equal(t, 3, stats.Files)
	assert.Equal(t, 2*len(expectedSuffixes), stats.Succeeded)
	assert.Equal(t, len(expectedSuffixes), stats.Failed)
	assert.Len(t, stats.Errors, len(expectedSuffixes))
	assert.Equal(t, expectedOutputs("a", "c"), listDir(t, outputDir))
}

func TestRunner_MissingInputDir(t *testing.T) {
	outputDir := filepath.Join(t.TempDir(), "out")

	_, err := NewRunner(Options{KeepGoing: true, Out: &bytes.Buffer{}}).Run(filepath.Join(t.TempDir(), "missing"), outputDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read input directory")
	assert.NotErrorIs(t, err, ErrEffectsFailed)

	_, statErr := os.Stat(outputDir)
	assert.True(t, os.IsNotExist(statErr), "no output directory should be created")
}

func TestRunner_Preview(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := t.TempDir()
	writePNG(t, filepath.Join(inputDir, "a.png"))

	_, err := NewRunner(Options{Preview: true, Out: &bytes.Buffer{}}).Run(inputDir, outputDir)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(outputDir, "a_preview.png"))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")))
	assert.Len(t, listDir(t, outputDir), len(expectedSuffixes)+1)
}
