// Command texblend builds transition textures from two block textures.
//
// Usage:
//
//	texblend [-v] blend -a A.png -b B.png [-direction d] [-mode m] [-width w] [-size n] -out out.png
//	texblend [-v] batch -a A.png -b B.png -base name [-all] [-mode m] [-width w] [-size n] [-outdir dir] [-workers n]
//	texblend list
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gogpu/texblend"
	"github.com/gogpu/texblend/internal/imageio"
)

// defaultSize matches the block texture resolution of the editor.
const defaultSize = 16

var errUsage = errors.New("usage error")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("texblend", flag.ContinueOnError)
	fs.SetOutput(stderr)
	verbose := fs.Bool("v", false, "enable debug logging")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: texblend [-v] <blend|batch|list> [flags]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	texblend.SetLogger(logger)
	defer texblend.SetLogger(nil)

	rest := fs.Args()
	if len(rest) == 0 {
		fs.Usage()
		return 2
	}

	var err error
	switch rest[0] {
	case "blend":
		err = runBlend(rest[1:], stderr, logger)
	case "batch":
		err = runBatch(rest[1:], stderr, logger)
	case "list":
		err = runList(stdout)
	default:
		fmt.Fprintf(stderr, "texblend: unknown command %q\n", rest[0])
		fs.Usage()
		return 2
	}

	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUsage):
		return 2
	default:
		logger.Error("texblend failed", slog.Any("err", err))
		return 1
	}
}

// blendFlags are shared by the blend and batch subcommands.
type blendFlags struct {
	a, b  string
	mode  string
	width float64
	size  int
}

func (f *blendFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.a, "a", "", "texture A (shown where progress is 0)")
	fs.StringVar(&f.b, "b", "", "texture B (shown where progress is 1)")
	fs.StringVar(&f.mode, "mode", "gradient", "blend mode: gradient, stepped or dither")
	fs.Float64Var(&f.width, "width", 50, "transition width in percent (0-100)")
	fs.IntVar(&f.size, "size", defaultSize, "side length of the output texture")
}

// load parses the mode and loads both textures at the requested size.
func (f *blendFlags) load() (a, b *texblend.Bitmap, mode texblend.Mode, err error) {
	if f.a == "" || f.b == "" {
		return nil, nil, 0, fmt.Errorf("%w: -a and -b are required", errUsage)
	}
	mode, err = texblend.ParseMode(f.mode)
	if err != nil {
		return nil, nil, 0, err
	}
	if a, err = imageio.LoadBitmap(f.a, f.size); err != nil {
		return nil, nil, 0, err
	}
	if b, err = imageio.LoadBitmap(f.b, f.size); err != nil {
		return nil, nil, 0, err
	}
	return a, b, mode, nil
}

func runBlend(args []string, stderr io.Writer, logger *slog.Logger) error {
	fs := flag.NewFlagSet("blend", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var bf blendFlags
	bf.register(fs)
	direction := fs.String("direction", "left-to-right", "blend direction (see 'texblend list')")
	out := fs.String("out", "", "output file (.png, .jpg, .bmp, .tif)")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	if *out == "" {
		fmt.Fprintln(stderr, "texblend blend: -out is required")
		return errUsage
	}

	dir, err := texblend.ParseDirection(*direction)
	if err != nil {
		return err
	}
	a, b, mode, err := bf.load()
	if err != nil {
		return err
	}

	result, err := texblend.Blend(a, b, texblend.Params{Direction: dir, Mode: mode, Width: bf.width})
	if err != nil {
		return err
	}
	if err := imageio.Save(*out, result); err != nil {
		return err
	}
	logger.Info("texture saved", slog.String("path", *out), slog.Int("size", result.Size()))
	return nil
}

func runBatch(args []string, stderr io.Writer, logger *slog.Logger) error {
	fs := flag.NewFlagSet("batch", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var bf blendFlags
	bf.register(fs)
	base := fs.String("base", "", "base name for output files")
	all := fs.Bool("all", false, "include the eight small-corner variants (16 outputs instead of 8)")
	outDir := fs.String("outdir", ".", "output directory")
	ext := fs.String("ext", ".png", "output file extension")
	workers := fs.Int("workers", 0, "worker goroutines (0 = GOMAXPROCS)")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	if *base == "" {
		fmt.Fprintln(stderr, "texblend batch: -base is required")
		return errUsage
	}
	if _, err := imageio.FormatForPath(*ext); err != nil {
		return err
	}

	a, b, mode, err := bf.load()
	if err != nil {
		return err
	}

	catalog := texblend.PrimaryCatalog
	if *all {
		catalog = texblend.FullCatalog
	}
	set, err := texblend.GenerateSet(a, b, *base, catalog, mode, bf.width, texblend.WithWorkers(*workers))
	if err != nil {
		return err
	}

	if err := os.MkdirAll(*outDir, 0o750); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	for _, r := range set {
		path := filepath.Join(*outDir, r.Name+*ext)
		if err := imageio.Save(path, r.Bitmap); err != nil {
			return err
		}
		logger.Debug("texture saved", slog.String("path", path))
	}
	logger.Info("batch saved", slog.String("dir", *outDir), slog.Int("count", len(set)))
	return nil
}

func runList(stdout io.Writer) error {
	title := cases.Title(language.English)
	tw := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "LABEL\tNAME\tDESCRIPTION")
	for _, d := range texblend.AllDirections() {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", d.Label(), d.String(), title.String(describe(d)))
	}
	return tw.Flush()
}

// describe turns a long direction name into words, e.g.
// "small-corner-tl-inv" -> "small corner top left inverted".
func describe(d texblend.Direction) string {
	words := strings.Split(d.String(), "-")
	out := make([]string, 0, len(words)+2)
	for _, w := range words {
		switch w {
		case "tl":
			out = append(out, "top", "left")
		case "tr":
			out = append(out, "top", "right")
		case "bl":
			out = append(out, "bottom", "left")
		case "br":
			out = append(out, "bottom", "right")
		case "inv":
			out = append(out, "inverted")
		default:
			out = append(out, w)
		}
	}
	return strings.Join(out, " ")
}
