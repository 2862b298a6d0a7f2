// lutgen builds a gradient lookup table from a JSON definition and writes a
// PNG preview and/or the raw samples.
//
//	lutgen -def sunset.json -png sunset.png -json -
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/golang/glog"

	"github.com/voidshard/mlut"
	"github.com/voidshard/mlut/painter"
)

var (
	defPath    = flag.String("def", "", "gradient definition file (json)")
	resolution = flag.Int("resolution", 0, "override the definition's resolution")
	routines   = flag.Int("routines", 1, "goroutines used to fill the gradient")

	pngPath  = flag.String("png", "", "write a preview png to this path")
	jsonPath = flag.String("json", "", "write the samples as json to this path, - for stdout")
	width    = flag.Int("width", 1024, "width of the preview")
	height   = flag.Int("height", 64, "height of the preview")

	watch = flag.Bool("watch", false, "rebuild whenever the definition file changes")
)

// job is one definition -> outputs run.
type job struct {
	def        string
	resolution int
	routines   int

	pngOut        string
	jsonOut       string
	width, height int
}

func (j *job) run() error {
	def, err := mlut.LoadDefinition(j.def)
	if err != nil {
		return err
	}

	opts := []mlut.Option{mlut.Routines(j.routines)}
	if j.resolution != 0 {
		opts = append(opts, mlut.Resolution(j.resolution))
	}
	lut, err := def.Build(opts...)
	if err != nil {
		return fmt.Errorf("%s: %w", j.def, err)
	}
	glog.Infof("built %s: %d samples, %.1f%% covered", j.def, lut.Len(), 100*lut.Coverage())

	if j.pngOut != "" {
		if err := j.writePreview(lut); err != nil {
			return err
		}
	}
	if j.jsonOut != "" {
		if err := j.writeSamples(lut); err != nil {
			return err
		}
	}
	return nil
}

// writePreview renders lut left to right across a width x height image.
func (j *job) writePreview(lut mlut.Gradient) error {
	p, err := painter.New(painter.Size(j.width, j.height))
	if err != nil {
		return err
	}
	p.FillGradient(lut, 0, 0, float64(j.width), float64(j.height))
	if err := p.OutputSnapshot(j.pngOut); err != nil {
		return err
	}
	glog.Infof("wrote preview %s", j.pngOut)
	return nil
}

func (j *job) writeSamples(lut mlut.Gradient) error {
	data, err := json.Marshal(lut)
	if err != nil {
		return err
	}
	if j.jsonOut == "-" {
		_, err = fmt.Fprintln(os.Stdout, string(data))
		return err
	}
	if err := os.WriteFile(j.jsonOut, data, 0640); err != nil {
		return err
	}
	glog.Infof("wrote samples %s", j.jsonOut)
	return nil
}

func main() {
	flag.Parse()
	defer glog.Flush()

	if *defPath == "" {
		glog.Exit("-def is required")
	}

	j := &job{
		def:        *defPath,
		resolution: *resolution,
		routines:   *routines,
		pngOut:     *pngPath,
		jsonOut:    *jsonPath,
		width:      *width,
		height:     *height,
	}

	if !*watch {
		if err := j.run(); err != nil {
			glog.Exit(err)
		}
		return
	}

	if err := j.run(); err != nil {
		glog.Errorf("build failed: %v", err)
	}

	w, err := newWatcher(j.def, defaultDebounce, j.run, func(err error) {
		glog.Errorf("rebuild failed: %v", err)
	})
	if err != nil {
		glog.Exitf("could not watch %s: %v", j.def, err)
	}
	w.Start()
	glog.Infof("watching %s", j.def)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
	w.Stop()
}
