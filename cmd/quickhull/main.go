package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/quickhull"
	"github.com/osuushi/quickhull/pointset"
	"github.com/osuushi/quickhull/render"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Builds a convex hull step by step and reports every step. The first step
// lays down the baseline between the leftmost and rightmost points, every
// later step is one round. With --png, each step is also drawn.
func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type options struct {
	count   int
	seed    uint64
	bounds  pointset.Bounds
	input   string
	rounds  int
	geom    string
	png     string
	imgcat  bool
	verbose bool
	noColor bool
}

func parseArgs(args []string, stderr io.Writer) (*options, error) {
	opts := &options{}
	app := kingpin.New("quickhull", "Build a convex hull one round at a time.")
	app.Writer(stderr)
	app.Flag("random", "Number of random points to generate.").Short('n').Default("50").IntVar(&opts.count)
	app.Flag("seed", "Seed for the random points; 0 seeds from the clock.").Default("0").Uint64Var(&opts.seed)
	app.Flag("width", "Width of the area random points are drawn from.").Default("600").Float64Var(&opts.bounds.Width)
	app.Flag("height", "Height of the area random points are drawn from.").Default("400").Float64Var(&opts.bounds.Height)
	app.Flag("margin", "Keep random points this far from the edges.").Default("50").Float64Var(&opts.bounds.Margin)
	app.Flag("input", "Read points from a text or .svg file instead; - reads text from stdin.").Short('i').StringVar(&opts.input)
	app.Flag("rounds", "Stop after this many rounds; 0 runs until the hull is stable.").Default("0").IntVar(&opts.rounds)
	app.Flag("geometry", "Predicates for the side test and distance.").Default("cross").EnumVar(&opts.geom, "cross", "line")
	app.Flag("png", "Draw each step to this file; a %d in the name is replaced by the step number, otherwise only the last step is kept.").StringVar(&opts.png)
	app.Flag("imgcat", "Show every drawing inline in the terminal.").BoolVar(&opts.imgcat)
	app.Flag("verbose", "Log every split to stderr.").Short('v').BoolVar(&opts.verbose)
	app.Flag("no-color", "Disable colored output.").BoolVar(&opts.noColor)

	if _, err := app.Parse(args); err != nil {
		return nil, err
	}
	return opts, nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseArgs(args, stderr)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 2
	}
	au := aurora.NewAurora(!opts.noColor)

	points, err := loadPoints(opts, stdin)
	if err != nil {
		fmt.Fprintln(stderr, au.Red("error:"), err)
		return 1
	}

	builderOpts := []quickhull.Option{}
	if opts.geom == "line" {
		builderOpts = append(builderOpts, quickhull.WithGeometry(quickhull.LineGeometry{}))
	}
	if opts.verbose {
		handler := slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		builderOpts = append(builderOpts, quickhull.WithLogger(slog.New(handler)))
	}
	builder := quickhull.NewBuilder(builderOpts...)
	builder.Reset(points)
	fmt.Fprintf(stdout, "%d points\n", len(points))

	for step := 0; ; step++ {
		beforeAbove, beforeBelow := builder.Edges()
		if err := builder.AdvanceRound(); err != nil {
			fmt.Fprintln(stderr, au.Red("error:"), err)
			// Whatever was built so far is still intact and worth a look
			if opts.png != "" && builder.State() == quickhull.Active {
				drawStep(builder, opts, step, stdout, stderr)
			}
			return 1
		}
		above, below := builder.Edges()

		if builder.Rounds() == 0 {
			fmt.Fprintf(stdout, "%s %v\n", au.Cyan("baseline"), above[0])
		} else {
			splits := len(above) - len(beforeAbove) + len(below) - len(beforeBelow)
			fmt.Fprintf(stdout, "%s %d above, %d below, %d split\n",
				au.Cyan(fmt.Sprintf("round %d:", builder.Rounds())), len(above), len(below), splits)
		}

		if opts.png != "" && (strings.Contains(opts.png, "%d") || builder.Stable()) {
			if !drawStep(builder, opts, step, stdout, stderr) {
				return 1
			}
		}

		if builder.Stable() {
			fmt.Fprintf(stdout, "%s after %d rounds\n", au.Green("stable"), builder.Rounds())
			break
		}
		if opts.rounds > 0 && builder.Rounds() >= opts.rounds {
			fmt.Fprintf(stdout, "%s after %d rounds\n", au.Yellow("stopped"), builder.Rounds())
			if opts.png != "" && !strings.Contains(opts.png, "%d") && !drawStep(builder, opts, step, stdout, stderr) {
				return 1
			}
			break
		}
	}

	loop, err := builder.Loop()
	if err != nil {
		fmt.Fprintln(stderr, au.Red("error:"), err)
		return 1
	}
	vertices := make([]string, len(loop))
	for i, p := range loop {
		vertices[i] = p.String()
	}
	fmt.Fprintf(stdout, "%s %s\n", au.Bold("hull:"), strings.Join(vertices, " "))
	return 0
}

func loadPoints(opts *options, stdin io.Reader) ([]*quickhull.Point, error) {
	switch opts.input {
	case "":
		seed := opts.seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		return pointset.Random(pointset.RandWithSeed(seed), opts.count, opts.bounds), nil
	case "-":
		return pointset.ReadText(stdin)
	}
	return pointset.Load(opts.input)
}

func drawStep(builder *quickhull.Builder, opts *options, step int, stdout, stderr io.Writer) bool {
	path := opts.png
	if strings.Contains(path, "%d") {
		path = fmt.Sprintf(path, step)
	}

	renderOpts := render.DefaultOptions
	// Random points are generated in canvas coordinates; anything else is
	// scaled to fit.
	if opts.input == "" {
		renderOpts.Width = int(opts.bounds.Width)
		renderOpts.Height = int(opts.bounds.Height)
	} else {
		renderOpts.Fit = true
	}
	if builder.Rounds() == 0 {
		renderOpts.Label = "baseline"
	} else {
		renderOpts.Label = fmt.Sprintf("round %d", builder.Rounds())
	}

	above, below := builder.Edges()
	c := render.Draw(builder.Points(), above, below, renderOpts)
	if err := render.SavePNG(c, path); err != nil {
		fmt.Fprintln(stderr, "error: writing png:", err)
		return false
	}
	if opts.imgcat {
		render.Imgcat(path, stdout)
	}
	return true
}
