package cmd

import (
	"fmt"
	"io"

	"github.com/go-drift/toolsarea/pkg/theme"
)

func init() {
	RegisterCommand(&Command{
		Name:  "check",
		Short: "Validate configuration and color scheme",
		Long: `Validate the files given with --config and --theme and print the
resolved values. Defaults are shown for files that are not given.`,
		Usage: "toolsarea [--config FILE] [--theme FILE] check",
		Run:   runCheck,
	})
}

func runCheck(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("check takes no arguments")
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	p, err := loadPalette()
	if err != nil {
		return err
	}

	w := globals.stdout
	fmt.Fprintln(w, "Config:")
	fmt.Fprintf(w, "  animations:  %v\n", cfg.AnimationsEnabled)
	fmt.Fprintf(w, "  duration:    %s\n", cfg.AnimationDuration)
	fmt.Fprintf(w, "  curve:       %s\n", cfg.Curve)
	fmt.Fprintf(w, "  blend:       %s\n", cfg.Blend)
	fmt.Fprintf(w, "  debounce:    %s\n", cfg.DebounceDelay)
	fmt.Fprintf(w, "  hairline:    %g\n", cfg.Hairline)
	fmt.Fprintln(w)
	printPalette(w, p)
	return nil
}

func printPalette(w io.Writer, p theme.Palette) {
	fmt.Fprintln(w, "Palette:")
	fmt.Fprintf(w, "  brightness:  %s\n", p.Brightness)
	fmt.Fprintf(w, "  active:      fg %s  bg %s\n", p.Active.Foreground.Hex(), p.Active.Background.Hex())
	fmt.Fprintf(w, "  inactive:    fg %s  bg %s\n", p.Inactive.Foreground.Hex(), p.Inactive.Background.Hex())
	fmt.Fprintf(w, "  separator:   %s\n", p.Separator.Hex())
	if p.AlwaysActive {
		fmt.Fprintln(w, "  always active")
	}
}
