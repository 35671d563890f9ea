// Command geomdemo evaluates sample primitives of the geom library, prints a
// report and plots them to a PNG file.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"image/png"
	"io"
	"log"
	"log/slog"
	"math"
	"os"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/geom"
	"github.com/gogpu/geom/analysis"
	"github.com/gogpu/geom/plot"
	"github.com/gogpu/geom/sdfx"
)

type config struct {
	width, height int
	output        string
	thumbnail     string
	lang          string
	meshCells     int
	verbose       bool
}

func main() {
	var cfg config
	flag.IntVar(&cfg.width, "width", 800, "image width")
	flag.IntVar(&cfg.height, "height", 600, "image height")
	flag.StringVar(&cfg.output, "output", "geomdemo.png", "output file")
	flag.StringVar(&cfg.thumbnail, "thumbnail", "", "optional 1/4 scale copy of the plot")
	flag.StringVar(&cfg.lang, "lang", "en", "BCP 47 language tag for number formatting")
	flag.IntVar(&cfg.meshCells, "mesh-cells", 40, "marching cubes resolution of the sphere mesh")
	flag.BoolVar(&cfg.verbose, "v", false, "log debug messages to stderr")
	flag.Parse()

	if cfg.verbose {
		geom.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if err := run(cfg, os.Stdout); err != nil {
		log.Fatalf("geomdemo: %v", err)
	}
	log.Printf("Plot saved to %s (%dx%d)\n", cfg.output, cfg.width, cfg.height)
}

func run(cfg config, out io.Writer) error {
	tag, err := language.Parse(cfg.lang)
	if err != nil {
		return fmt.Errorf("language %q: %w", cfg.lang, err)
	}
	p := message.NewPrinter(tag)

	if err := report2D(p, out); err != nil {
		return err
	}
	if err := report3D(p, out, cfg.meshCells); err != nil {
		return err
	}
	if err := reportSequence(p, out); err != nil {
		return err
	}
	return drawPlot(cfg)
}

func report2D(p *message.Printer, out io.Writer) error {
	circle, err := geom.NewCircle(geom.Pt2(1.0, 1), 2)
	if err != nil {
		return err
	}
	line := geom.Line2DThrough(geom.Pt2(-3.0, -1), geom.Pt2(4.0, 2))
	q := geom.Pt2(3.5, -1.5)

	p.Fprintf(out, "%v\n", circle)
	p.Fprintf(out, "  area %.4f, circumference %.4f\n", circle.Area(), circle.Circumference())
	p.Fprintf(out, "  nearest point to %v: %v\n", q, circle.FindNearestPoint(q))
	p.Fprintf(out, "%v\n", line)
	p.Fprintf(out, "  signed distance of %v: %.4f (left side: %t)\n",
		q, line.SignedDistanceToCurve(q), line.IsOnLeftSide(q))
	p.Fprintf(out, "  nearest point to %v: %v\n", q, line.FindNearestPoint(q))
	return nil
}

func report3D(p *message.Printer, out io.Writer, cells int) error {
	sphere, err := geom.NewSphere(geom.Pt3(0.0, 0, 1), 250)
	if err != nil {
		return err
	}
	plane := geom.PlaneFromThreePoints(geom.Pt3(0.0, 0, 0), geom.Pt3(1.0, 0, 0), geom.Pt3(0.0, 1, 1))
	q := geom.Pt3(120.0, -80, 40)

	p.Fprintf(out, "%v\n", sphere)
	p.Fprintf(out, "  area %.2f, volume %.2f\n", sphere.Area(), sphere.Volume())
	p.Fprintf(out, "%v\n", plane)
	p.Fprintf(out, "  distance of %v: %.4f (above: %t)\n",
		q, plane.SignedDistanceToSurface(q), plane.IsAbovePlane(q))

	frame := geom.FrameFromOneVector(plane.P, plane.Normal())
	p.Fprintf(out, "%v right-handed: %t\n", frame, frame.IsRightHanded())

	solid, err := sdfx.Sphere(sphere)
	if err != nil {
		return err
	}
	faces := sdfx.Mesh(sdfx.Cut(solid, plane), cells)
	p.Fprintf(out, "  sdf distance of %v: %.4f, half-ball mesh: %d triangles\n",
		q, sdfx.Distance(solid, q), len(faces))
	return nil
}

func reportSequence(p *message.Printer, out io.Writer) error {
	seq := analysis.NewSequence1D[float64]()
	for i := range 8 {
		seq.Add(math.Sin(float64(i) * math.Pi / 4))
	}
	lin, err := analysis.Linear(seq, 2.5)
	if err != nil {
		return err
	}
	near, err := analysis.NearestNeighbor(seq, 2.5)
	if err != nil {
		return err
	}
	avg, err := seq.Average()
	if err != nil {
		return err
	}
	p.Fprintf(out, "%v\n", seq)
	p.Fprintf(out, "  linear(2.5) %.4f, nearest(2.5) %.4f, average %.4f\n", lin, near, avg)
	return nil
}

func drawPlot(cfg config) error {
	c := plot.New(cfg.width, cfg.height,
		plot.WithWindow(geom.Rect(-5.0, -4, 5, 4)),
		plot.WithStrokeWidth(2))
	defer c.Close()

	grid := color.RGBA{R: 220, G: 220, B: 220, A: 255}
	c.SetColor(grid)
	c.SetStrokeWidth(1)
	for x := -5; x <= 5; x++ {
		c.Segment(geom.Seg2(geom.Pt2(float64(x), -4), geom.Pt2(float64(x), 4)))
	}
	for y := -4; y <= 4; y++ {
		c.Segment(geom.Seg2(geom.Pt2(-5, float64(y)), geom.Pt2(5, float64(y))))
	}
	c.SetStrokeWidth(2)

	circle := geom.Circle[float64]{C: geom.Pt2(1.0, 1), R: 2}
	c.SetColor(color.RGBA{R: 90, G: 140, B: 230, A: 110})
	c.FillCircle(circle)
	c.SetColor(color.RGBA{R: 30, G: 60, B: 160, A: 255})
	c.Circle(circle)

	line := geom.Line2DThrough(geom.Pt2(-3.0, -1), geom.Pt2(4.0, 2))
	c.SetColor(color.RGBA{R: 200, G: 40, B: 40, A: 255})
	c.Line(line)

	q := geom.Pt2(3.5, -1.5)
	foot := line.FindNearestPoint(q)
	c.SetColor(color.RGBA{R: 40, G: 140, B: 60, A: 255})
	c.Segment(geom.Seg2(q, foot))
	c.Segment(geom.Seg2(q, circle.FindNearestPoint(q)))

	c.SetColor(color.Black)
	for _, pt := range []struct {
		p    geom.Point2D[float64]
		name string
	}{
		{q, "q"},
		{foot, "line foot"},
		{circle.C, "c"},
	} {
		c.Point(pt.p)
		c.Label(pt.p, pt.name)
	}
	c.Rect(geom.Rect(-4.5, -3.5, -2.5, -2))

	title, err := plot.DefaultTypeface(18)
	if err != nil {
		return err
	}
	c.Text(geom.Pt2(-4.8, 3.4), "nearest points", title)

	if err := c.SavePNG(cfg.output); err != nil {
		return err
	}
	if cfg.thumbnail == "" {
		return nil
	}

	f, err := os.Create(cfg.thumbnail) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return png.Encode(f, c.Thumbnail(max(cfg.width/4, 1), max(cfg.height/4, 1)))
}
