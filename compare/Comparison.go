// Package compare runs multiple experiment configurations on the same
// environment and overlays their smoothed learning curves in a single
// line chart.
package compare

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/gosuri/uilive"

	"sfneuman.com/gridlearn/experiment"
	"sfneuman.com/gridlearn/experiment/tracker"
	"sfneuman.com/gridlearn/experiment/trackers"
)

// Experiment names a single experiment configuration in a Comparison.
// The Label identifies the experiment's learning curve in the rendered
// chart and in the saved data files.
type Experiment struct {
	Label  string
	Config experiment.Config
}

// Comparison compares the learning curves of multiple experiments,
// usually the same agent trained with different algorithms on a single
// environment configuration. Each curve is smoothed with a trailing
// moving average before rendering.
type Comparison struct {
	title       string
	smoothing   int
	experiments []Experiment
	labels      []string
	traces      [][]float64
}

// NewComparison returns a Comparison that renders a chart with the
// argument title. The smoothing parameter sets the width of the
// trailing moving average applied to each learning curve, with a width
// of 1 leaving curves unsmoothed.
func NewComparison(title string, smoothing int,
	experiments ...Experiment) (*Comparison, error) {
	if smoothing < 1 {
		return nil, fmt.Errorf("newComparison: smoothing must be positive, "+
			"got %v", smoothing)
	}

	return &Comparison{
		title:       title,
		smoothing:   smoothing,
		experiments: experiments,
	}, nil
}

// Add records a learning curve to overlay in the rendered chart. Run
// calls Add for every configured experiment, and curves collected
// outside the Comparison can be added directly.
func (c *Comparison) Add(label string, trace []float64) {
	data := make([]float64, len(trace))
	copy(data, trace)

	c.labels = append(c.labels, label)
	c.traces = append(c.traces, data)
}

// Run runs each configured experiment for its configured number of
// episodes and records its episodic returns. All experiments share the
// argument seed. The returns of each experiment are saved in dir, one
// gob file per experiment named after its label. Progress is printed
// to the terminal while the experiments run.
func (c *Comparison) Run(dir string, seed uint64) error {
	writer := uilive.New()
	writer.Start()
	defer writer.Stop()

	for _, e := range c.experiments {
		returns := trackers.NewReturn(filepath.Join(dir, e.Label+".bin"))

		exp, err := e.Config.CreateExp(seed, []tracker.Tracker{returns}, nil)
		if err != nil {
			return fmt.Errorf("run: could not create experiment %v: %v",
				e.Label, err)
		}

		for episode := uint(0); episode < e.Config.Episodes; episode++ {
			fmt.Fprintf(writer, "%v: episode %v/%v\n", e.Label, episode+1,
				e.Config.Episodes)
			if err := exp.RunEpisode(); err != nil {
				return fmt.Errorf("run: experiment %v failed: %v", e.Label,
					err)
			}
		}
		exp.Save()

		c.Add(e.Label, returns.Data())
	}

	return nil
}

// Render writes the comparison chart to w as an HTML page
func (c *Comparison) Render(w io.Writer) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: c.title,
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: "shine",
		}),
	)

	episodes := 0
	for _, trace := range c.traces {
		if len(trace) > episodes {
			episodes = len(trace)
		}
	}
	xAxis := make([]string, episodes)
	for i := range xAxis {
		xAxis[i] = strconv.Itoa(i)
	}
	line.SetXAxis(xAxis)

	for i, trace := range c.traces {
		smoothed := smooth(trace, c.smoothing)

		items := make([]opts.LineData, len(smoothed))
		for j, point := range smoothed {
			items[j] = opts.LineData{Value: point}
		}
		line.AddSeries(c.labels[i], items)
	}

	page := components.NewPage()
	page.AddCharts(line)
	if err := page.Render(w); err != nil {
		return fmt.Errorf("render: could not render chart: %v", err)
	}
	return nil
}

// Save renders the comparison chart to the file filename
func (c *Comparison) Save(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("save: could not create chart file: %v", err)
	}
	defer file.Close()

	return c.Render(file)
}

// smooth returns a copy of trace where each point from index smoothing
// onward is replaced by the mean of the trailing window of that many
// points. Earlier points pass through unchanged.
func smooth(trace []float64, smoothing int) []float64 {
	smoothed := make([]float64, len(trace))
	sum := 0.0
	for i, point := range trace {
		if i < smoothing {
			smoothed[i] = point
			sum += point
			continue
		}
		sum += point - trace[i-smoothing]
		smoothed[i] = sum / float64(smoothing)
	}
	return smoothed
}
