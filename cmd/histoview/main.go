// Histogram viewer.
//
// Reads one number per line from the data file, and reloads it when it changes on disk. Drag pans the view, +/- zoom, click and the arrow keys select a bucket.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/jmigpin/histogfx/util/uiutil"
	"github.com/jmigpin/histogfx/util/uiutil/event"
)

func main() {
	log.SetFlags(log.Llongfile)
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("histoview", flag.ContinueOnError)
	dataFlag := fs.String("data", "", "values file, one number per line (default: demo data)")
	configFlag := fs.String("config", "", "yaml config file")
	titleFlag := fs.String("title", "histoview", "window title")
	bucketsFlag := fs.Int("buckets", 20, "number of buckets")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := LoadConfig(*configFlag)
	if err != nil {
		return err
	}
	values := demoValues()
	if *dataFlag != "" {
		values, err = ReadValuesFile(*dataFlag)
		if err != nil {
			return err
		}
	}

	app, err := NewApp(cfg, *bucketsFlag)
	if err != nil {
		return err
	}
	app.SetValues(values)

	ui, err := uiutil.NewBasicUI(*titleFlag, app.Canvas)
	if err != nil {
		return err
	}
	defer ui.Close()
	ui.Background = app.colors.bg
	ui.OnResize = app.SetSize
	app.SetCursor = ui.SetCursor

	if *dataFlag != "" {
		filename := *dataFlag
		fw, err := watchFile(filename, func() {
			values, err := ReadValuesFile(filename)
			if err != nil {
				log.Println(err)
				return
			}
			ui.RunOnUIGoRoutine(func() { app.SetValues(values) })
		})
		if err != nil {
			return err
		}
		defer fw.Close()
	}

	uiEventLoop(ui)
	return nil
}

func uiEventLoop(ui *uiutil.BasicUI) {
	for {
		ev := ui.NextEvent()
		switch t := ev.(type) {
		case error:
			log.Println(t)
		case *event.WindowClose:
			return
		default:
			if !ui.HandleEvent(ev) {
				log.Printf("uievloop: unhandled event: %#v", ev)
			}
		}
		ui.PaintIfTime()
	}
}
