// Command benchmark measures round-trip latency against a live ProPresenter
// instance. It exercises only read-only endpoints so it is safe to run
// mid-service.
//
// Usage:
//
//	PROPRESENTER_HOST=10.0.1.20 go run ./cmd/benchmark
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/trop3n/propresenter-mcp-server/internal/propresenter"
)

const samplesPerEndpoint = 5

type probe struct {
	name string
	call func(*propresenter.Client, context.Context) propresenter.Result
}

var probes = []probe{
	{"get_active_presentation", func(c *propresenter.Client, ctx context.Context) propresenter.Result {
		return c.GetActivePresentation(ctx, propresenter.GetActivePresentationArgs{})
	}},
	{"get_slide_index", func(c *propresenter.Client, ctx context.Context) propresenter.Result {
		return c.GetSlideIndex(ctx, propresenter.GetSlideIndexArgs{})
	}},
	{"get_libraries", func(c *propresenter.Client, ctx context.Context) propresenter.Result {
		return c.GetLibraries(ctx, propresenter.GetLibrariesArgs{})
	}},
	{"get_playlists", func(c *propresenter.Client, ctx context.Context) propresenter.Result {
		return c.GetPlaylists(ctx, propresenter.GetPlaylistsArgs{})
	}},
	{"get_macros", func(c *propresenter.Client, ctx context.Context) propresenter.Result {
		return c.GetMacros(ctx, propresenter.GetMacrosArgs{})
	}},
	{"get_looks", func(c *propresenter.Client, ctx context.Context) propresenter.Result {
		return c.GetLooks(ctx, propresenter.GetLooksArgs{})
	}},
	{"get_timers", func(c *propresenter.Client, ctx context.Context) propresenter.Result {
		return c.GetTimers(ctx, propresenter.GetTimersArgs{})
	}},
	{"get_clear_groups", func(c *propresenter.Client, ctx context.Context) propresenter.Result {
		return c.GetClearGroups(ctx, propresenter.GetClearGroupsArgs{})
	}},
	{"get_stage_layouts", func(c *propresenter.Client, ctx context.Context) propresenter.Result {
		return c.GetStageLayouts(ctx, propresenter.GetStageLayoutsArgs{})
	}},
	{"get_video_inputs", func(c *propresenter.Client, ctx context.Context) propresenter.Result {
		return c.GetVideoInputs(ctx, propresenter.GetVideoInputsArgs{})
	}},
}

func main() {
	config, err := propresenter.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := propresenter.NewClient(config, logger)
	ctx := context.Background()

	fmt.Println("ProPresenter MCP Server - Latency Measurements")
	fmt.Println("==============================================")
	fmt.Printf("Target: %s\n\n", config.Target())

	// Reachability check before burning through the full probe set.
	warm := client.GetMacros(ctx, propresenter.GetMacrosArgs{})
	if propresenter.IsError(warm) {
		fmt.Fprintf(os.Stderr, "ProPresenter is not reachable: %v\n", warm["message"])
		os.Exit(1)
	}

	var failed int
	for _, p := range probes {
		min, max, total := time.Duration(0), time.Duration(0), time.Duration(0)
		errors := 0

		for i := 0; i < samplesPerEndpoint; i++ {
			start := time.Now()
			result := p.call(client, ctx)
			elapsed := time.Since(start)

			if propresenter.IsError(result) {
				errors++
				continue
			}
			if min == 0 || elapsed < min {
				min = elapsed
			}
			if elapsed > max {
				max = elapsed
			}
			total += elapsed
		}

		ok := samplesPerEndpoint - errors
		if ok == 0 {
			failed++
			fmt.Printf("  %-28s all %d samples failed\n", p.name, samplesPerEndpoint)
			continue
		}
		fmt.Printf("  %-28s avg %-10v min %-10v max %-10v (%d/%d ok)\n",
			p.name, (total / time.Duration(ok)).Round(time.Microsecond),
			min.Round(time.Microsecond), max.Round(time.Microsecond),
			ok, samplesPerEndpoint)
	}

	fmt.Println()
	if failed > 0 {
		fmt.Printf("%d endpoint(s) failed; the ProPresenter version may not expose them.\n", failed)
		os.Exit(1)
	}
	fmt.Println("All endpoints responded.")
}
