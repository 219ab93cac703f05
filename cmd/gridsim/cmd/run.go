package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/griddyn/griddyn/sampling"
	"github.com/griddyn/griddyn/signals"
	"github.com/griddyn/griddyn/sim"
	"github.com/griddyn/griddyn/timing"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

type runOptions struct {
	numBuses      int
	solverFreq    float64
	start         float64
	stop          float64
	period        float64
	resolution    float64
	collectorType string
	name          string
	target        string
	fields        []string
	params        []string
	out           string
}

var runOpts runOptions

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the synthetic grid and print sampled rows as CSV.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(runOpts, cmd.OutOrStdout())
	},
}

func run(opts runOptions, stdout io.Writer) error {
	if opts.numBuses < 1 {
		return fmt.Errorf("at least one bus is required")
	}

	engine := sim.NewSerialEngine()
	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		engine.AcceptHook(sim.NewEventLogger(logrus.StandardLogger()))
	}

	grid := buildGrid(engine, opts)

	target := grid.Bus(opts.target)
	if target == nil {
		return fmt.Errorf("unknown bus %q", opts.target)
	}

	c, err := sampling.MakeCollector(opts.collectorType, opts.name)
	if err != nil {
		return err
	}

	if err := configure(c, opts); err != nil {
		return err
	}

	c.SetSourceMaker(grid)
	for _, f := range opts.fields {
		if err := c.AddField(f, target); err != nil {
			return err
		}
	}

	sink, err := newCSVSink(opts.out, stdout)
	if err != nil {
		return err
	}

	atexit.Register(func() {
		if err := c.Flush(); err != nil {
			logrus.WithError(err).Error("final flush failed")
		}

		if err := sink.Close(); err != nil {
			logrus.WithError(err).Error("closing output failed")
		}
	})

	if rec, ok := c.(*sampling.Recorder); ok {
		rec.SetSink(sink)
	} else {
		c.AcceptHook(&rowPrinter{c: c, sink: sink})
	}

	driver := sampling.NewDriver(engine, c)
	engine.RegisterSimulationEndHandler(sampling.FlushAtEnd(c))
	driver.Start()

	if err := engine.Run(); err != nil {
		return err
	}

	engine.Finished()

	for _, w := range c.Warnings() {
		logrus.WithField("collector", c.Name()).Info(w)
	}

	logrus.WithFields(logrus.Fields{
		"collector": c.Name(),
		"last":      c.LastTriggerTime().String(),
	}).Info("simulation complete")

	return nil
}

func buildGrid(engine sim.Engine, opts runOptions) *signals.Grid {
	grid := signals.NewGrid()
	freq := timing.Freq(opts.solverFreq)

	for i := 0; i < opts.numBuses; i++ {
		bus := grid.AddBus(fmt.Sprintf("bus%d", i+1))
		bus.Until = timing.Sec(opts.stop)
		bus.BaseLoad = 1 + 0.5*float64(i)

		tc := sim.NewTickingComponent(bus.Name(), engine, freq, bus)
		tc.TickNow()
	}

	return grid
}

func configure(c sampling.Collector, opts runOptions) error {
	settings := []struct {
		key   string
		value float64
		set   bool
	}{
		{"period", opts.period, true},
		{"start", opts.start, true},
		{"stop", opts.stop, true},
		{"period_resolution", opts.resolution, opts.resolution > 0},
	}

	for _, s := range settings {
		if !s.set {
			continue
		}

		if err := c.Set(s.key, s.value); err != nil {
			return err
		}
	}

	for _, p := range opts.params {
		key, value, found := strings.Cut(p, "=")
		if !found {
			return fmt.Errorf("parameter %q is not key=value", p)
		}

		if err := c.SetString(strings.TrimSpace(key), value); err != nil {
			return err
		}
	}

	return nil
}

// rowPrinter writes the buffer of a collector that keeps no history after
// every trigger.
type rowPrinter struct {
	c    sampling.Collector
	sink *csvSink
	rows sampling.TimeSeries
}

func (p *rowPrinter) Func(ctx sim.HookCtx) {
	if ctx.Pos != sampling.HookPosAfterTrigger {
		return
	}

	p.rows.Reset()
	p.rows.Append(ctx.Item.(timing.VTime), p.c.Data())

	if err := p.sink.Write(p.c.Name(), p.c.ColumnDescriptions(), &p.rows); err != nil {
		logrus.WithError(err).Error("writing row failed")
	}
}

func init() {
	f := runCmd.Flags()
	f.IntVar(&runOpts.numBuses, "buses", 2, "Number of synthetic buses")
	f.Float64Var(&runOpts.solverFreq, "solver-freq", 100,
		"Frequency at which bus states are updated, in Hz")
	f.Float64Var(&runOpts.start, "start", 0, "Collector start time in seconds")
	f.Float64Var(&runOpts.stop, "stop", 10, "Simulation stop time in seconds")
	f.Float64Var(&runOpts.period, "period", 1, "Sampling period in seconds")
	f.Float64Var(&runOpts.resolution, "period-resolution", 0,
		"Quantize the sampling period to multiples of this, in seconds")
	f.StringVar(&runOpts.collectorType, "type", "recorder",
		"Collector type (collector, recorder, rec, file)")
	f.StringVar(&runOpts.name, "name", "", "Collector name")
	f.StringVar(&runOpts.target, "bus", "bus1", "Bus the fields refer to")
	f.StringArrayVar(&runOpts.fields, "field", []string{"voltage,phases"},
		"Field expression to record; may be repeated")
	f.StringArrayVar(&runOpts.params, "set", nil,
		"Extra collector parameter as key=value; may be repeated")
	f.StringVarP(&runOpts.out, "out", "o", "", "CSV output file (default stdout)")

	rootCmd.AddCommand(runCmd)
}
