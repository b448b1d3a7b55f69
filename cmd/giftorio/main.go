// Command giftorio converts an animated GIF into a blueprint string
// that replays the animation on a lamp grid inside the game.
//
//	giftorio input.gif --signals signals.json --fps 4 > blueprint.txt
package main

import (
	"fmt"
	"image/gif"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/colinchilds/giftorio/blueprint"
	"github.com/colinchilds/giftorio/frame"
	"github.com/colinchilds/giftorio/progress"
	"github.com/colinchilds/giftorio/signal"
	"github.com/colinchilds/giftorio/synth"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "giftorio:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "giftorio <input.gif>",
		Short:         "Convert an animated GIF into a circuit-network blueprint string",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0])
		},
	}

	flags := cmd.Flags()
	flags.Int("fps", synth.DefaultTargetFPS, "target replay rate; clamped to the source rate")
	flags.Int("max-size", 30, "longest frame side after downscaling, in lamps")
	flags.String("signals", "signals.json", "path to the signal palette JSON")
	flags.Bool("dlc", false, "expand the palette with Space Age quality tiers")
	flags.String("substation-quality", signal.QualityNormal, "substation tier: normal|uncommon|rare|epic|legendary")
	flags.Bool("verbose", false, "log synthesis details to stderr")

	viper.SetEnvPrefix("GIFTORIO")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	cobra.CheckErr(viper.BindPFlags(flags))

	return cmd
}

func run(path string) error {
	maxSize := viper.GetInt("max-size")

	// Flag values are user input; reject them with an error rather than
	// letting an option constructor panic.
	targetFPS := viper.GetInt("fps")
	if targetFPS < 1 || targetFPS > 60 {
		return fmt.Errorf("fps must be within [1,60], got %d", targetFPS)
	}

	level := slog.LevelWarn
	if viper.GetBool("verbose") {
		level = slog.LevelInfo
	}
	logger := progress.NewLogger(os.Stderr, level, nil)

	timed, err := loadGIF(path, maxSize)
	if err != nil {
		return err
	}

	fps := frame.EffectiveFPS(timed, targetFPS)
	frames, err := frame.Resample(timed, fps)
	if err != nil {
		return err
	}

	palette, err := signal.LoadFile(viper.GetString("signals"))
	if err != nil {
		return err
	}
	if viper.GetBool("dlc") {
		palette = signal.ExpandQualities(palette, true)
	}

	bp, err := synth.Build(frames, palette,
		synth.WithTargetFPS(fps),
		synth.WithSubstationQuality(viper.GetString("substation-quality")),
		synth.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	logger.Info("encoding blueprint", "percent", 80)
	s, err := blueprint.Encode(bp)
	if err != nil {
		return err
	}
	logger.Info("blueprint ready", "percent", 100, "length", len(s))
	fmt.Println(s)
	return nil
}

// loadGIF decodes, coalesces, downscales and timestamps every frame of
// the GIF at path. Coalescing composites delta-encoded frames onto the
// full logical canvas per their disposal methods, so every frame comes
// out the same size. GIF delays are in centiseconds; zero delays fall
// back to the sampler's default.
func loadGIF(path string, maxSize int) ([]frame.Timed, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := gif.DecodeAll(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	timed := make([]frame.Timed, 0, len(g.Image))
	for i, img := range frame.Coalesce(g) {
		fr, err := frame.FromImage(frame.Downscale(img, maxSize))
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", i, err)
		}
		dur := 0
		if i < len(g.Delay) {
			dur = g.Delay[i] * 10
		}
		timed = append(timed, frame.Timed{Frame: fr, DurationMS: dur})
	}
	return timed, nil
}
