package cmd

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/scene"
	"github.com/urfave/cli"
)

// ListScenes prints the built-in scenes.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	_, err := fmt.Fprint(ctx.App.Writer, formatSceneList(scene.ListScenes()))
	return err
}
