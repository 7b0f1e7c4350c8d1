// Package integration provides CLI integration tests for poseek.
package integration

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

var (
	// poseekBin is the path to the built poseek binary.
	poseekBin string
	// buildErr captures any build error.
	buildErr error
)

// BuildError wraps a build error with output.
type BuildError struct {
	Err    error
	Output string
}

func (e *BuildError) Error() string {
	return e.Err.Error() + ": " + e.Output
}

// FindProjectRoot finds the project root by walking up and looking for go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		goModPath := filepath.Join(dir, "go.mod")
		if _, err := os.Stat(goModPath); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// SetPoseekBin sets the path to the poseek binary (called from TestMain).
func SetPoseekBin(path string) {
	poseekBin = path
}

// SetBuildErr sets the build error (called from TestMain).
func SetBuildErr(err error) {
	buildErr = err
}

// TestEnv provides an isolated test environment with its own config,
// data, and images directory.
type TestEnv struct {
	t         *testing.T
	TempDir   string
	Config    string
	DataDir   string
	ImagesDir string
}

// NewTestEnv creates a new isolated test environment.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	if buildErr != nil {
		t.Fatalf("failed to build poseek: %v", buildErr)
	}
	if poseekBin == "" {
		t.Fatal("poseek binary not built (poseekBin is empty)")
	}

	tempDir := t.TempDir()
	dataDir := filepath.Join(tempDir, "data")
	configDir := filepath.Join(tempDir, "config")
	imagesDir := filepath.Join(tempDir, "images")

	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	if err := os.MkdirAll(imagesDir, 0755); err != nil {
		t.Fatalf("failed to create images dir: %v", err)
	}
	configContent := "backend: sqlite\ndata_dir: " + dataDir + "\n"
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	return &TestEnv{
		t:         t,
		TempDir:   tempDir,
		Config:    configDir,
		DataDir:   dataDir,
		ImagesDir: imagesDir,
	}
}

// CmdResult holds the result of a poseek command execution.
type CmdResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// RunPoseek executes the poseek CLI with the given arguments.
func (e *TestEnv) RunPoseek(args ...string) CmdResult {
	e.t.Helper()

	allArgs := append([]string{"--config-dir", e.Config, "--data-dir", e.DataDir}, args...)
	cmd := exec.Command(poseekBin, allArgs...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			e.t.Fatalf("failed to run poseek: %v", err)
		}
	}

	return CmdResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}
}

// MustRunPoseek executes the poseek CLI and fails the test if it returns non-zero.
func (e *TestEnv) MustRunPoseek(args ...string) CmdResult {
	e.t.Helper()
	result := e.RunPoseek(args...)
	if result.ExitCode != 0 {
		e.t.Fatalf("poseek %v failed with exit code %d:\nstdout: %s\nstderr: %s",
			args, result.ExitCode, result.Stdout, result.Stderr)
	}
	return result
}

// WritePNG writes a solid-color PNG of the given size into the images
// directory and returns its base name.
func (e *TestEnv) WritePNG(name string, width, height int) string {
	e.t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: 40, G: 40, B: 40, A: 255})
		}
	}

	f, err := os.Create(filepath.Join(e.ImagesDir, name))
	if err != nil {
		e.t.Fatalf("failed to create image %s: %v", name, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		e.t.Fatalf("failed to encode image %s: %v", name, err)
	}
	return name
}

// ParseJSON parses JSON output into the target type.
func ParseJSON[T any](t *testing.T, jsonStr string) T {
	t.Helper()
	var result T
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		t.Fatalf("failed to parse JSON %q: %v", jsonStr, err)
	}
	return result
}

// Schema mirrors the pose schema shape for JSON parsing.
type Schema struct {
	Name        string   `json:"name"`
	BodyParts   []string `json:"bodyparts"`
	Connections [][2]int `json:"connections"`
}

// Point mirrors a stored keypoint for JSON parsing.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ImageStatus mirrors one row of the images command JSON output.
type ImageStatus struct {
	Filename string `json:"filename"`
	Placed   int    `json:"placed"`
	Total    int    `json:"total"`
}

// COCODataset mirrors the COCO export shape for JSON parsing.
type COCODataset struct {
	Images []struct {
		ID       int    `json:"id"`
		FileName string `json:"file_name"`
		Width    int    `json:"width"`
		Height   int    `json:"height"`
	} `json:"images"`
	Annotations []struct {
		ID           int       `json:"id"`
		ImageID      int       `json:"image_id"`
		CategoryID   int       `json:"category_id"`
		Keypoints    []float64 `json:"keypoints"`
		NumKeypoints int       `json:"num_keypoints"`
		BBox         []float64 `json:"bbox"`
		Area         float64   `json:"area"`
	} `json:"annotations"`
	Categories []struct {
		ID            int      `json:"id"`
		Name          string   `json:"name"`
		Supercategory string   `json:"supercategory"`
		Keypoints     []string `json:"keypoints"`
		Skeleton      [][2]int `json:"skeleton"`
	} `json:"categories"`
}
