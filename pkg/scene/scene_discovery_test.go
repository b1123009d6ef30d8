package scene

import (
	"errors"
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
)

func TestTitleCase(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"cornell-smoke", "Cornell Smoke"},
		{"dragon_gold", "Dragon Gold"},
		{"simple-light", "Simple Light"},
		{"weekend", "Weekend"},
		{"UPPER-case", "Upper Case"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			result := titleCase(tc.input)
			if result != tc.expected {
				t.Errorf("titleCase(%q) = %q, want %q", tc.input, result, tc.expected)
			}
		})
	}
}

func TestListScenes(t *testing.T) {
	scenes := ListScenes()
	if len(scenes) != len(builtins) {
		t.Fatalf("Expected %d scenes, got %d", len(builtins), len(scenes))
	}

	seen := make(map[string]bool)
	for _, info := range scenes {
		if info.ID == "" || info.Name == "" || info.Description == "" {
			t.Errorf("Incomplete scene info: %+v", info)
		}
		if seen[info.ID] {
			t.Errorf("Duplicate scene ID %q", info.ID)
		}
		seen[info.ID] = true
	}

	for _, id := range []string{"weekend", "two-spheres", "cornell", "cornell-smoke", "final"} {
		if !seen[id] {
			t.Errorf("Expected built-in scene %q", id)
		}
	}
}

func TestLoadAllScenes(t *testing.T) {
	for _, info := range ListScenes() {
		if info.NeedsTexture {
			continue
		}
		t.Run(info.ID, func(t *testing.T) {
			s, err := Load(info.ID, Options{Seed: 1})
			if err != nil {
				t.Fatalf("Load(%q) failed: %v", info.ID, err)
			}

			if !s.Preprocessed() {
				t.Error("Expected a preprocessed scene")
			}
			if len(s.Objects) == 0 {
				t.Fatal("Expected objects in the scene")
			}
			if s.BVHStats.LeafNodes != len(s.Objects) {
				t.Errorf("BVH has %d leaves for %d objects", s.BVHStats.LeafNodes, len(s.Objects))
			}

			// The root box encloses every top-level object
			rootBox := s.World.BoundingBox(s.Root)
			for _, h := range s.Objects {
				box := s.World.BoundingBox(h)
				for axis := 0; axis < 3; axis++ {
					if box.Axis(axis).Min < rootBox.Axis(axis).Min || box.Axis(axis).Max > rootBox.Axis(axis).Max {
						t.Fatalf("object %d escapes the root box on axis %d", h, axis)
					}
				}
			}

			camera := s.GetCameraConfig()
			sampling := s.GetSamplingConfig()
			if camera.Width <= 0 || camera.Height() <= 0 || sampling.SamplesPerPixel <= 0 || sampling.MaxDepth <= 0 {
				t.Errorf("Unusable render settings: %+v %+v", camera, sampling)
			}
		})
	}
}

func TestLoadUnknownScene(t *testing.T) {
	_, err := Load("no-such-scene", Options{})
	if !errors.Is(err, ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}
}

func TestLoadEarth(t *testing.T) {
	if _, err := Load("earth", Options{}); !errors.Is(err, ErrTextureRequired) {
		t.Errorf("Expected ErrTextureRequired without a texture, got %v", err)
	}

	if _, err := Load("earth", Options{TexturePath: filepath.Join(t.TempDir(), "missing.png")}); err == nil {
		t.Error("Expected an error for a missing texture file")
	}

	img := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	for x := 0; x < 4; x++ {
		img.Set(x, 0, color.NRGBA{B: 255, A: 255})
		img.Set(x, 1, color.NRGBA{G: 255, A: 255})
	}
	path := filepath.Join(t.TempDir(), "earth.png")
	if err := imaging.Save(img, path); err != nil {
		t.Fatalf("Failed to save texture: %v", err)
	}

	s, err := Load("earth", Options{TexturePath: path})
	if err != nil {
		t.Fatalf("Load(earth) failed: %v", err)
	}
	if len(s.Objects) != 1 {
		t.Errorf("Expected a single globe, got %d objects", len(s.Objects))
	}
}

func TestLoadIsDeterministic(t *testing.T) {
	a, err := Load("weekend", Options{Seed: 11})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	b, err := Load("weekend", Options{Seed: 11})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(a.Objects) != len(b.Objects) || a.BVHStats != b.BVHStats {
		t.Fatalf("Same seed produced different scenes: %d/%+v vs %d/%+v",
			len(a.Objects), a.BVHStats, len(b.Objects), b.BVHStats)
	}
	for i := range a.Objects {
		if a.World.BoundingBox(a.Objects[i]) != b.World.BoundingBox(b.Objects[i]) {
			t.Fatalf("object %d differs between loads", i)
		}
	}
}
