package cmd

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/go-drift/toolsarea/cmd/toolsarea/internal/scenario"
	"github.com/go-drift/toolsarea/pkg/theme"
)

func init() {
	RegisterCommand(&Command{
		Name:  "replay",
		Short: "Replay a scenario file",
		Long: `Replay a YAML scenario against a fresh manager.

The scenario declares windows and chrome elements, then lists steps: host
actions (show, hide, floating, rect, active, reparent, remove, ...), clock
advances and expectations on the resulting area. Time is simulated, so
debounce and animation timing are exact.

Flags:
  --metrics   Print the manager's Prometheus metrics after the run

Exits non-zero when any expectation fails.`,
		Usage: "toolsarea replay <scenario.yaml> [--metrics]",
		Run:   runReplay,
	})
}

func runReplay(args []string) error {
	var path string
	var metrics bool
	for _, arg := range args {
		switch arg {
		case "--metrics":
			metrics = true
		default:
			if path != "" {
				return fmt.Errorf("unexpected argument %q", arg)
			}
			path = arg
		}
	}
	if path == "" {
		return fmt.Errorf("scenario file is required\n\nUsage: toolsarea replay <scenario.yaml>")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	palette, err := loadPalette()
	if err != nil {
		return err
	}
	s, err := scenario.Load(path)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	res, err := scenario.Run(s, scenario.Options{
		Config:     &cfg,
		Theme:      theme.StaticProvider{P: palette},
		Logger:     newLogger(),
		Registerer: reg,
		Out:        globals.stdout,
	})
	if err != nil {
		return err
	}

	for _, f := range res.Failures {
		fmt.Fprintf(globals.stdout, "FAIL %s\n", f)
	}
	fmt.Fprintf(globals.stdout, "%d steps, %d passes (%d debounced), %d absorbed, %d transitions, %d updates\n",
		res.Steps, res.Stats.Passes, res.Stats.DebouncedPasses, res.Stats.Absorbed, res.Stats.Transitions, res.Updates)

	if metrics {
		if err := writeMetrics(reg); err != nil {
			return err
		}
	}
	if !res.OK() {
		return fmt.Errorf("%d expectation(s) failed", len(res.Failures))
	}
	return nil
}

func writeMetrics(g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(globals.stdout, mf); err != nil {
			return err
		}
	}
	return nil
}
