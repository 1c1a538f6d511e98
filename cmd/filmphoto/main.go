// Command filmphoto applies a film look to a photo.
//
// Usage:
//
//	filmphoto [flags] input [output]
//
// Without -preset the configured preset (auto by default) is applied, then
// any per-parameter flags override it. The output defaults to
// <input>_film<ext>.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/gogpu/filmphoto"
	"github.com/gogpu/filmphoto/internal/config"
	imgio "github.com/gogpu/filmphoto/internal/image"
	"github.com/gogpu/filmphoto/internal/stamp"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, "filmphoto:", err)
		os.Exit(1)
	}
}

type cli struct {
	configPath  string
	preset      string
	seed        *uint64
	stamp       bool
	stampText   string
	verbose     bool
	listPresets bool
	overrides   filmphoto.Overrides
}

func parseFlags(args []string, stderr io.Writer) (*cli, []string, error) {
	c := &cli{}
	fs := flag.NewFlagSet("filmphoto", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: filmphoto [flags] input [output]")
		fs.PrintDefaults()
	}

	fs.StringVar(&c.configPath, "config", "", "config file (yaml, toml or json)")
	fs.StringVar(&c.preset, "preset", "", "preset to apply before overrides (default from config)")
	fs.Func("seed", "grain seed for reproducible output", func(s string) error {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return err
		}
		c.seed = &v
		return nil
	})
	fs.BoolVar(&c.stamp, "stamp", false, "imprint the date in the bottom-right corner")
	fs.StringVar(&c.stampText, "stamp-text", "", "imprint this text instead of today's date")
	fs.BoolVar(&c.verbose, "v", false, "log every applied step")
	fs.BoolVar(&c.listPresets, "list-presets", false, "print preset names and exit")

	floatFlag(fs, "clarity", "blur radius", &c.overrides.Clarity)
	floatFlag(fs, "sharpness", "sharpness factor", &c.overrides.Sharpness)
	floatFlag(fs, "grain", "grain factor", &c.overrides.Grain)
	floatFlag(fs, "tonal-curve", "tonal curve exponent", &c.overrides.TonalCurve)
	floatFlag(fs, "warmness", "saturation factor", &c.overrides.Warmness)
	fs.Func("rgb", "channel factors as `r,g,b`", func(s string) error {
		rgb, err := parseRGB(s)
		if err != nil {
			return err
		}
		c.overrides.RGB = filmphoto.Set(rgb)
		return nil
	})

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return c, fs.Args(), nil
}

func floatFlag(fs *flag.FlagSet, name, usage string, dst *filmphoto.Override[float64]) {
	fs.Func(name, usage, func(s string) error {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		*dst = filmphoto.Set(v)
		return nil
	})
}

func parseRGB(s string) (filmphoto.RGB, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return filmphoto.RGB{}, fmt.Errorf("want r,g,b, got %q", s)
	}
	var v [3]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return filmphoto.RGB{}, err
		}
		v[i] = f
	}
	return filmphoto.RGB{Red: v[0], Green: v[1], Blue: v[2]}, nil
}

// withOverrides replaces the preset values that were given on the command line.
func withOverrides(p filmphoto.Params, o filmphoto.Overrides) filmphoto.Params {
	return filmphoto.Params{
		Clarity:    o.Clarity.Or(p.Clarity),
		Sharpness:  o.Sharpness.Or(p.Sharpness),
		Grain:      o.Grain.Or(p.Grain),
		TonalCurve: o.TonalCurve.Or(p.TonalCurve),
		Warmness:   o.Warmness.Or(p.Warmness),
		RGB:        o.RGB.Or(p.RGB),
	}
}

func defaultOutput(input string) string {
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + "_film" + ext
}

func run(args []string, stdout, stderr io.Writer) error {
	c, rest, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}

	level := cfg.Level()
	if c.verbose {
		level = slog.LevelDebug
	}
	filmphoto.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))

	if c.listPresets {
		names := filmphoto.PresetNames()
		names = append(names, slices.Collect(maps.Keys(cfg.Presets))...)
		slices.Sort(names)
		for _, name := range slices.Compact(names) {
			fmt.Fprintln(stdout, name)
		}
		return nil
	}

	if len(rest) < 1 || len(rest) > 2 {
		return errors.New("expected input and optional output path")
	}
	input := rest[0]
	output := defaultOutput(input)
	if len(rest) == 2 {
		output = rest[1]
	}

	presetName := cfg.Preset
	if c.preset != "" {
		presetName = c.preset
	}
	params, err := cfg.ResolvePreset(presetName)
	if err != nil {
		return err
	}

	var opts []filmphoto.Option
	switch {
	case c.seed != nil:
		opts = append(opts, filmphoto.WithSeed(*c.seed))
	case cfg.Seed != nil:
		opts = append(opts, filmphoto.WithSeed(*cfg.Seed))
	}

	photo, err := filmphoto.Open(input, opts...)
	if err != nil {
		return err
	}
	if err := photo.Apply(withOverrides(params, c.overrides)); err != nil {
		return err
	}

	if c.stamp || cfg.Stamp.Enabled {
		text := c.stampText
		if text == "" {
			text = stamp.Text(time.Now(), cfg.Stamp.Layout)
		}
		img, err := stamp.Draw(photo.Image(), text)
		if err != nil {
			return err
		}
		if err := imgio.Save(img, output); err != nil {
			return err
		}
	} else if err := photo.Save(output); err != nil {
		return err
	}

	info, err := os.Stat(output)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "wrote %s (%s, %dx%d)\n",
		output, humanize.Bytes(uint64(info.Size())), photo.Width(), photo.Height())
	return nil
}
