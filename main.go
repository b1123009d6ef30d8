package main

import (
	"fmt"
	"os"

	"github.com/df07/go-pathtracer/cmd"
	"github.com/urfave/cli"
)

func newApp() *cli.App {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "go-pathtracer"
	app.Usage = "render scenes using Monte Carlo path tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "scenes",
			Usage:  "list the built-in scenes",
			Action: cmd.ListScenes,
		},
		{
			Name:  "render",
			Usage: "render a built-in scene",
			Description: `
Render one of the built-in scenes to an image file. Batch mode takes every
sample of a pixel at once; progressive mode adds one sample per pixel in each
pass and can write a preview after every pass.

Width, samples and depth default to the scene's own recommendation. Flags can
also be set through PT_* environment variables or a .env file.`,
			ArgsUsage: "[scene]",
			Action:    cmd.Render,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:   "scene, s",
					Value:  "weekend",
					Usage:  "built-in scene to render",
					EnvVar: "PT_SCENE",
				},
				cli.StringFlag{
					Name:   "mode, m",
					Value:  "batch",
					Usage:  "render mode: batch or progressive",
					EnvVar: "PT_MODE",
				},
				cli.StringFlag{
					Name:   "out, o",
					Usage:  "output image (default output/<scene>/render_<timestamp>.png)",
					EnvVar: "PT_OUT",
				},
				cli.IntFlag{
					Name:   "width",
					Usage:  "image width in pixels",
					EnvVar: "PT_WIDTH",
				},
				cli.IntFlag{
					Name:   "spp",
					Usage:  "samples per pixel",
					EnvVar: "PT_SPP",
				},
				cli.IntFlag{
					Name:   "depth",
					Usage:  "maximum ray bounces",
					EnvVar: "PT_DEPTH",
				},
				cli.Int64Flag{
					Name:   "seed",
					Value:  42,
					Usage:  "seed for scene generation and sampling",
					EnvVar: "PT_SEED",
				},
				cli.IntFlag{
					Name:   "workers",
					Usage:  "number of render workers (0 uses every CPU)",
					EnvVar: "PT_WORKERS",
				},
				cli.IntFlag{
					Name:   "tile-size",
					Value:  32,
					Usage:  "edge length of render tiles in pixels",
					EnvVar: "PT_TILE_SIZE",
				},
				cli.StringFlag{
					Name:   "texture",
					Usage:  "image wrapped around textured globes",
					EnvVar: "PT_TEXTURE",
				},
				cli.BoolFlag{
					Name:   "previews",
					Usage:  "write a thumbnail after every progressive pass",
					EnvVar: "PT_PREVIEWS",
				},
				cli.UintFlag{
					Name:   "preview-size",
					Value:  256,
					Usage:  "longest edge of preview thumbnails",
					EnvVar: "PT_PREVIEW_SIZE",
				},
				cli.BoolFlag{
					Name:   "upload",
					Usage:  "upload the final image to the bucket configured by S3_* variables",
					EnvVar: "PT_UPLOAD",
				},
				cli.BoolFlag{
					Name:  "quiet, q",
					Usage: "hide the progress bar",
				},
			},
		},
	}

	return app
}

func main() {
	if err := cmd.LoadEnv(".env"); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
