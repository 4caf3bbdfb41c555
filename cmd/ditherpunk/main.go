package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/png"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/codegangsta/cli"
	"github.com/fatih/color"
	"github.com/nfnt/resize"
	"go.uber.org/zap"

	"github.com/kevin-cantwell/ditherpunk"
	"github.com/kevin-cantwell/ditherpunk/internal/config"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		exit(err.Error(), 1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Version = "0.1.0"
	app.Name = "ditherpunk"
	app.Usage = "Turn images into two-color dithered art or ASCII art."
	app.UsageText = "1) ditherpunk [options] [file|url]\n" +
		/*      */ "   2) ditherpunk [options] < [file]"
	app.Author = "Kevin Cantwell"
	app.Email = "kevin.cantwell@gmail.com"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "mode,m",
			Usage: "`MODE` is either dither or ascii.",
			Value: config.ModeDither,
		},
		cli.StringFlag{
			Name:  "algorithm,a",
			Usage: "Error diffusion `KERNEL`: " + algorithmList() + ".",
			Value: string(ditherpunk.FloydSteinberg),
		},
		cli.IntFlag{
			Name:  "point-size,p",
			Usage: "`SIZE` of each dithered dot in pixels.",
			Value: ditherpunk.DefaultPointSize,
		},
		cli.StringFlag{
			Name:  "preset",
			Usage: "Palette `PRESET`: " + strings.Join(ditherpunk.PresetNames(), ", ") + ".",
		},
		cli.StringFlag{
			Name:  "ink",
			Usage: "Ink `COLOR` as #rrggbb. Defaults to black.",
		},
		cli.StringFlag{
			Name:  "bg",
			Usage: "Background `COLOR` as #rrggbb. Defaults to white.",
		},
		cli.StringFlag{
			Name:  "gradient,g",
			Usage: "Comma separated ink `STOPS` blended from top to bottom, e.g. #ff0000,#0000ff.",
		},
		cli.Float64Flag{
			Name:  "brightness,b",
			Usage: "`BRIGHTNESS` = 1 gives the original image. 0 darkens by half the range, 2 lightens by half.",
			Value: 1.0,
		},
		cli.Float64Flag{
			Name:  "contrast,c",
			Usage: "`CONTRAST` = 0 gives the original image. Negative values flatten, positive values sharpen tones.",
			Value: 0.0,
		},
		cli.Float64Flag{
			Name:  "detail",
			Usage: "`DETAIL` is accepted for compatibility and has no effect.",
			Value: 0.5,
		},
		cli.Float64Flag{
			Name:  "font-size,s",
			Usage: "ASCII cell height in `PIXELS`.",
			Value: 10,
		},
		cli.StringFlag{
			Name:  "charset",
			Usage: "ASCII `GLYPHS`, darkest first, or one of default, dense, binary.",
			Value: "default",
		},
		cli.BoolFlag{
			Name:  "invert,i",
			Usage: "Reverses the ASCII charset.",
		},
		cli.StringFlag{
			Name:  "fit,f",
			Usage: "`FIT` = 800,600 scales the input down to fit 800x600 pixels before processing.",
		},
		cli.StringFlag{
			Name:  "config",
			Usage: "YAML settings `FILE`. Flags override it.",
		},
		cli.StringFlag{
			Name:  "output,o",
			Usage: "Write the result as PNG to `FILE`. Defaults to stdout unless stdout is a terminal.",
		},
		cli.BoolFlag{
			Name:  "preview",
			Usage: "Print the result to the terminal as braille (dither) or text (ascii).",
		},
		cli.BoolFlag{
			Name:  "stream",
			Usage: "EXPERIMENTAL! Read an MJPEG stream and preview every frame. CTRL-C to quit.",
		},
		cli.BoolFlag{
			Name:  "play",
			Usage: "EXPERIMENTAL! Animates a GIF in the terminal. CTRL-C to quit.",
		},
		cli.IntFlag{
			Name:  "fps",
			Usage: "Maximum `FPS` when streaming.",
			Value: 15,
		},
		cli.StringFlag{
			Name:  "log-file",
			Usage: "Also write JSON logs to `FILE`, rotated.",
		},
		cli.BoolFlag{
			Name:  "debug",
			Usage: "Log debug output to stderr.",
		},
	}
	app.Action = run
	return app
}

func run(c *cli.Context) error {
	logger, err := newLogger(c.Bool("debug"), c.String("log-file"))
	if err != nil {
		return err
	}
	defer logger.Sync()
	ditherpunk.SetLogger(logger)

	settings, err := loadSettings(c)
	if err != nil {
		return err
	}
	if err := settings.Validate(); err != nil {
		return err
	}
	logger.Debug("settings", zap.Any("settings", settings))

	reader, closeInput, err := openInput(c.Args().First())
	if err != nil {
		return err
	}
	defer closeInput()

	if c.Bool("stream") {
		pv, err := newPreviewer(settings)
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return ditherpunk.NewAnimator(os.Stdout, nil, pv.Render).Animate(ctx, reader, c.Int("fps"))
	}

	if c.Bool("play") {
		g, err := gif.DecodeAll(reader)
		if err != nil {
			return fmt.Errorf("decode gif: %w", err)
		}
		pv, err := newPreviewer(settings)
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		frames := ditherpunk.CompositeGIF(g, pv.background())
		return ditherpunk.NewAnimator(os.Stdout, nil, pv.Render).Play(ctx, frames, g.LoopCount)
	}

	img, format, err := image.Decode(reader)
	if err != nil {
		return fmt.Errorf("decode input: %w", err)
	}
	logger.Debug("decoded input", zap.String("format", format), zap.Stringer("bounds", img.Bounds()))

	if fit := c.String("fit"); fit != "" {
		w, h, err := parseFit(fit)
		if err != nil {
			return err
		}
		img = resize.Thumbnail(w, h, img, resize.Lanczos3)
	}

	if c.Bool("preview") {
		pv, err := newPreviewer(settings)
		if err != nil {
			return err
		}
		text, err := pv.Render(img)
		if err != nil {
			return err
		}
		_, err = io.WriteString(os.Stdout, text)
		return err
	}

	out, err := process(settings, img)
	if err != nil {
		return err
	}
	return writePNG(c.String("output"), out)
}

// loadSettings layers flags over the YAML file over .env and the environment
// over the defaults.
func loadSettings(c *cli.Context) (config.Settings, error) {
	settings := config.Default()
	if path := c.String("config"); path != "" {
		var err error
		if settings, err = config.Load(path); err != nil {
			return settings, err
		}
	}
	if err := settings.FromEnv(".env"); err != nil {
		return settings, err
	}

	if c.IsSet("mode") {
		settings.Mode = c.String("mode")
	}
	if c.IsSet("algorithm") {
		settings.Algorithm = c.String("algorithm")
	}
	if c.IsSet("point-size") {
		settings.PointSize = c.Int("point-size")
	}
	if c.IsSet("preset") {
		settings.Preset = c.String("preset")
	}
	if c.IsSet("ink") {
		settings.Ink = c.String("ink")
	}
	if c.IsSet("bg") {
		settings.Bg = c.String("bg")
	}
	if c.IsSet("gradient") {
		stops, err := ditherpunk.ParseGradient(c.String("gradient"))
		if err != nil {
			return settings, err
		}
		settings.Gradient = settings.Gradient[:0]
		for _, s := range stops {
			settings.Gradient = append(settings.Gradient, s.Hex())
		}
	}
	if c.IsSet("brightness") {
		settings.Brightness = c.Float64("brightness")
	}
	if c.IsSet("contrast") {
		settings.Contrast = c.Float64("contrast")
	}
	if c.IsSet("detail") {
		settings.Detail = c.Float64("detail")
	}
	if c.IsSet("font-size") {
		settings.FontSize = c.Float64("font-size")
	}
	if c.IsSet("charset") {
		settings.CharSet = c.String("charset")
	}
	if c.IsSet("invert") {
		settings.Inverted = c.Bool("invert")
	}
	return settings, nil
}

// process runs the engine selected by settings.Mode over img.
func process(settings config.Settings, img image.Image) (image.Image, error) {
	switch settings.Mode {
	case config.ModeASCII:
		cfg, err := settings.AsciiConfig()
		if err != nil {
			return nil, err
		}
		buf := ditherpunk.FromImage(img)
		settings.Tone().Apply(buf)
		return ditherpunk.RenderASCII(buf, cfg).Image(), nil
	default:
		cfg, err := settings.DitherConfig()
		if err != nil {
			return nil, err
		}
		return ditherpunk.Pixelate(img, settings.PointSize, cfg), nil
	}
}

func writePNG(path string, img image.Image) error {
	if path == "" {
		if _, _, err := ditherpunk.TerminalSize(int(os.Stdout.Fd())); err == nil {
			return errors.New("refusing to write PNG to a terminal: use --output or --preview")
		}
		return png.Encode(os.Stdout, img)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

func parseFit(fit string) (uint, uint, error) {
	parts := strings.Split(fit, ",")
	if len(parts) != 2 {
		return 0, 0, errors.New("fit option must be comma separated")
	}
	w, err := strconv.ParseUint(strings.TrimSpace(parts[0]), 10, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("fit width: %w", err)
	}
	h, err := strconv.ParseUint(strings.TrimSpace(parts[1]), 10, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("fit height: %w", err)
	}
	return uint(w), uint(h), nil
}

func algorithmList() string {
	var names []string
	for _, a := range ditherpunk.Algorithms() {
		names = append(names, string(a))
	}
	return strings.Join(names, ", ")
}

func exit(msg string, code int) {
	color.New(color.FgRed).Fprintln(os.Stderr, msg)
	os.Exit(code)
}
