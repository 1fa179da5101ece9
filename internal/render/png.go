package render

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/tphakala/go-fourier-lab/internal/imageio"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// PNG renders to PNG files.
type PNG struct {
	cfg Config
}

// NewPNG creates a PNG renderer. Zero fields of cfg take their defaults.
func NewPNG(cfg Config) *PNG {
	def := DefaultConfig()
	if cfg.ImageSize <= 0 {
		cfg.ImageSize = def.ImageSize
	}
	if cfg.PanelWidth <= 0 {
		cfg.PanelWidth = def.PanelWidth
	}
	if cfg.FigureHeight <= 0 {
		cfg.FigureHeight = def.FigureHeight
	}
	if cfg.GrayLevels < minGrayLevels {
		cfg.GrayLevels = def.GrayLevels
	}
	return &PNG{cfg: cfg}
}

// RenderImage draws m as a grayscale heatmap with row 0 at the top, adds a
// colorbar on its right, and writes the result to path.
func (r *PNG) RenderImage(m mat.Matrix, path string, opts ImageOptions) error {
	rows, cols := m.Dims()
	if rows == 0 || cols == 0 {
		return fmt.Errorf("render %s: empty image", path)
	}

	values := ScaleValues(m, opts)
	data := values.RawMatrix().Data
	if floats.HasNaN(data) {
		return fmt.Errorf("render %s: image contains NaN", path)
	}
	lo, hi := floats.Min(data), floats.Max(data)
	if math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return fmt.Errorf("render %s: image contains Inf", path)
	}
	if hi <= lo {
		hi = lo + math.Max(1, math.Abs(lo))
	}

	pal, err := grayPalette(r.cfg.GrayLevels)
	if err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}
	cmap, err := grayMap(lo, hi)
	if err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}

	hm := plotter.NewHeatMap(topDownGrid{m: values}, pal)
	hm.Min, hm.Max = lo, hi

	p := plot.New()
	p.Title.Text = opts.Title
	p.HideAxes()
	p.Add(hm)

	bar := plot.New()
	bar.HideX()
	bar.Add(&plotter.ColorBar{ColorMap: cmap, Vertical: true, Colors: r.cfg.GrayLevels})

	size := r.cfg.ImageSize
	barWidth := max(size/colorBarFraction, minColorBarWidth)
	img := vgimg.New(size+barWidth, size)
	dc := draw.New(img)
	p.Draw(draw.Crop(dc, 0, -barWidth, 0, 0))
	bar.Draw(draw.Crop(dc, size, 0, 0, 0))

	return writeTo(path, vgimg.PngCanvas{Canvas: img})
}

// RenderFigure draws the panels of fig side by side and writes them to path.
func (r *PNG) RenderFigure(fig Figure, path string) error {
	if len(fig.Panels) == 0 {
		return fmt.Errorf("render %s: figure has no panels", path)
	}

	plots := make([]*plot.Plot, len(fig.Panels))
	for i, panel := range fig.Panels {
		p, err := linePlot(panel)
		if err != nil {
			return fmt.Errorf("render %s: panel %d: %w", path, i, err)
		}
		plots[i] = p
	}

	width := vg.Length(len(plots)) * r.cfg.PanelWidth
	img := vgimg.New(width, r.cfg.FigureHeight)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: 1,
		Cols: len(plots),
		PadX: vg.Millimeter,
		PadY: vg.Millimeter,
	}

	canvases := plot.Align([][]*plot.Plot{plots}, tiles, dc)
	for i, p := range plots {
		p.Draw(canvases[0][i])
	}

	return writeTo(path, vgimg.PngCanvas{Canvas: img})
}

func linePlot(panel Panel) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = panel.Title
	p.X.Label.Text = panel.XLabel
	p.Y.Label.Text = panel.YLabel

	for i, s := range panel.Series {
		line, err := plotter.NewLine(xys(s))
		if err != nil {
			return nil, err
		}
		line.Color = plotutil.Color(i)
		p.Add(line)
	}

	if panel.XMax > panel.XMin {
		p.X.Min = panel.XMin
		p.X.Max = panel.XMax
	}

	return p, nil
}

func xys(s Series) plotter.XYs {
	pts := make(plotter.XYs, len(s.Y))
	for i, y := range s.Y {
		pts[i].X = float64(i)
		if s.X != nil {
			pts[i].X = s.X[i]
		}
		pts[i].Y = y
	}
	return pts
}

func writeTo(path string, wt io.WriterTo) (err error) {
	f, err := imageio.Create(path)
	if err != nil {
		return err
	}
	defer imageio.Close(f, &err)

	w := bufio.NewWriter(f)
	if _, err := wt.WriteTo(w); err != nil {
		return imageio.Wrap(path, err)
	}
	if err := w.Flush(); err != nil {
		return imageio.Wrap(path, err)
	}
	return nil
}

// topDownGrid presents a matrix to plotter.HeatMap, which draws row 0 at
// the bottom, flipped so the first matrix row appears at the top.
type topDownGrid struct {
	m *mat.Dense
}

func (g topDownGrid) Dims() (c, r int) {
	rows, cols := g.m.Dims()
	return cols, rows
}

func (g topDownGrid) Z(c, r int) float64 {
	rows, _ := g.m.Dims()
	return g.m.At(rows-1-r, c)
}

func (g topDownGrid) X(c int) float64 { return float64(c) }

func (g topDownGrid) Y(r int) float64 { return float64(r) }

// grayMap is a black to white color map over [lo, hi] whose luminance
// grows linearly with the value.
func grayMap(lo, hi float64) (palette.ColorMap, error) {
	cmap, err := moreland.NewLuminance([]color.Color{color.Black, color.White})
	if err != nil {
		return nil, err
	}
	cmap.SetMin(lo)
	cmap.SetMax(hi)
	return cmap, nil
}

// grayPalette samples grayMap at the given number of evenly spaced levels,
// darkest first.
func grayPalette(levels int) (palette.Palette, error) {
	cmap, err := grayMap(0, 1)
	if err != nil {
		return nil, err
	}

	colors := make(grayLevels, levels)
	for i := range colors {
		// i/(levels-1) reaches exactly 1 on the last level, which At accepts.
		c, err := cmap.At(float64(i) / float64(levels-1))
		if err != nil {
			return nil, err
		}
		colors[i] = c
	}
	return colors, nil
}

// grayLevels is a fixed list of colors usable as a palette.Palette.
type grayLevels []color.Color

func (g grayLevels) Colors() []color.Color { return g }
