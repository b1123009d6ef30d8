package cmd

import (
	"bytes"
	"fmt"
	"time"

	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
)

// formatRenderStats builds a tabular summary of a finished render
func formatRenderStats(sceneID string, s *scene.Scene, stats renderer.RenderStats, elapsed time.Duration) string {
	camera := s.GetCameraConfig()

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Statistic", "Value"})
	table.Append([]string{"Scene", sceneID})
	table.Append([]string{"Resolution", fmt.Sprintf("%dx%d", camera.Width, camera.Height())})
	table.Append([]string{"Objects", fmt.Sprintf("%d (%d surfaces)", len(s.Objects), s.World.Len())})
	table.Append([]string{"BVH", fmt.Sprintf("%d nodes, depth %d", s.BVHStats.TotalNodes, s.BVHStats.MaxDepth)})
	table.Append([]string{"Passes", fmt.Sprintf("%d", stats.PassNumber)})
	table.Append([]string{"Samples", fmt.Sprintf("%d", stats.TotalSamples)})
	table.Append([]string{"Samples per pixel", fmt.Sprintf("%.1f (range %d - %d)", stats.AverageSamples, stats.MinSamples, stats.MaxSamplesUsed)})
	table.SetFooter([]string{"Render time", elapsed.Round(time.Millisecond).String()})

	table.Render()
	return buf.String()
}

// formatSceneList builds a table of the built-in scenes
func formatSceneList(scenes []scene.SceneInfo) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"ID", "Name", "Description"})
	for _, info := range scenes {
		description := info.Description
		if info.NeedsTexture {
			description += " (needs --texture)"
		}
		table.Append([]string{info.ID, info.Name, description})
	}

	table.Render()
	return buf.String()
}
