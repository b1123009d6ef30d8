package scene

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/material"
)

var (
	// ErrUnknownScene is returned when no built-in scene has the requested ID
	ErrUnknownScene = errors.New("scene: unknown scene")

	// ErrTextureRequired is returned when a scene needs a texture image and none was given
	ErrTextureRequired = errors.New("scene: a texture image is required")
)

// Options controls how a built-in scene is generated
type Options struct {
	TexturePath string // Image wrapped around textured globes
	Seed        int64  // Seed for randomly placed objects and noise textures
}

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID           string // Unique identifier
	Name         string // Display name
	Description  string
	NeedsTexture bool // Whether Options.TexturePath must be set
}

type builtinScene struct {
	info  SceneInfo
	build func(opts Options, random *rand.Rand) (*Scene, error)
}

var builtins = []builtinScene{
	{
		info: SceneInfo{ID: "weekend", Description: "Random field of small spheres around three large ones"},
		build: func(_ Options, random *rand.Rand) (*Scene, error) {
			return NewWeekendScene(random), nil
		},
	},
	{
		info: SceneInfo{ID: "bouncing-spheres", Description: "Sphere field with motion blur on a checkered ground"},
		build: func(_ Options, random *rand.Rand) (*Scene, error) {
			return NewBouncingSpheresScene(random), nil
		},
	},
	{
		info: SceneInfo{ID: "two-spheres", Description: "Gray sphere resting on a gray ground sphere"},
		build: func(Options, *rand.Rand) (*Scene, error) {
			return NewTwoSpheresScene(), nil
		},
	},
	{
		info: SceneInfo{ID: "checkered", Description: "Two touching spheres with a 3D checker texture"},
		build: func(Options, *rand.Rand) (*Scene, error) {
			return NewCheckeredSpheresScene(), nil
		},
	},
	{
		info: SceneInfo{ID: "earth", Description: "A globe wrapped in an image texture", NeedsTexture: true},
		build: func(opts Options, _ *rand.Rand) (*Scene, error) {
			if opts.TexturePath == "" {
				return nil, ErrTextureRequired
			}
			texture, err := loaders.LoadImageTexture(opts.TexturePath)
			if err != nil {
				return nil, err
			}
			return NewEarthScene(texture), nil
		},
	},
	{
		info: SceneInfo{ID: "perlin", Description: "Marbled spheres using Perlin turbulence"},
		build: func(_ Options, random *rand.Rand) (*Scene, error) {
			return NewPerlinSpheresScene(random), nil
		},
	},
	{
		info: SceneInfo{ID: "quads", Description: "Five colored quads"},
		build: func(Options, *rand.Rand) (*Scene, error) {
			return NewQuadsScene(), nil
		},
	},
	{
		info: SceneInfo{ID: "simple-light", Description: "Marbled spheres lit by an emissive quad and sphere"},
		build: func(_ Options, random *rand.Rand) (*Scene, error) {
			return NewSimpleLightScene(random), nil
		},
	},
	{
		info: SceneInfo{ID: "cornell", Description: "Cornell box with two rotated blocks"},
		build: func(Options, *rand.Rand) (*Scene, error) {
			return NewCornellScene(), nil
		},
	},
	{
		info: SceneInfo{ID: "cornell-smoke", Description: "Cornell box with blocks of black and white smoke"},
		build: func(Options, *rand.Rand) (*Scene, error) {
			return NewCornellSmokeScene(), nil
		},
	},
	{
		info: SceneInfo{ID: "final", Description: "Every feature at once; uses the texture image for the globe when given"},
		build: func(opts Options, random *rand.Rand) (*Scene, error) {
			var surface material.ColorSource = material.NewCheckerTextureFromColors(0.05,
				core.NewVec3(0.1, 0.2, 0.6), core.NewVec3(0.9, 0.9, 0.9))
			if opts.TexturePath != "" {
				texture, err := loaders.LoadImageTexture(opts.TexturePath)
				if err != nil {
					return nil, err
				}
				surface = texture
			} else {
				logger.Notice("no texture image given, using a checker texture for the globe")
			}
			return NewFinalScene(random, surface)
		},
	},
}

// ListScenes returns every built-in scene in registration order
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, len(builtins))
	for i, b := range builtins {
		scenes[i] = b.info
		scenes[i].Name = titleCase(b.info.ID)
	}
	return scenes
}

// Load builds the built-in scene with the given ID and preprocesses it for rendering
func Load(id string, opts Options) (*Scene, error) {
	for _, b := range builtins {
		if b.info.ID != id {
			continue
		}

		s, err := b.build(opts, rand.New(rand.NewSource(opts.Seed)))
		if err != nil {
			return nil, fmt.Errorf("failed to build scene %q: %w", id, err)
		}
		if err := s.Preprocess(); err != nil {
			return nil, fmt.Errorf("failed to preprocess scene %q: %w", id, err)
		}

		logger.Infof("loaded scene %q with %d objects (%d surfaces)", id, len(s.Objects), s.World.Len())
		return s, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownScene, id)
}

// titleCase converts an identifier to title case
// e.g., "cornell-smoke" -> "Cornell Smoke"
func titleCase(s string) string {
	// Replace hyphens and underscores with spaces
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	// Title case each word
	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
