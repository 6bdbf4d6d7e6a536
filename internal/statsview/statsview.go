// Package statsview serves charts of the runtime statistics of the process,
// like heap usage and goroutine count, over HTTP.
package statsview

import (
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/retroenv/retrogolib/log"
)

const path = "/debug/statsview"

// Launch starts the stats server in a new goroutine.
func Launch(logger *log.Logger, addr string) {
	viewer.SetConfiguration(viewer.WithAddr(addr))
	mgr := statsview.New()

	go serve(logger, mgr.Start)

	logger.Info("Stats server available", log.String("url", "http://"+addr+path))
}

// serve runs the server until it stops. The emulation keeps running when
// the server fails, so the failure is only reported.
func serve(logger *log.Logger, start func() error) {
	if err := start(); err != nil {
		logger.Warn("Stats server stopped", log.Err(err))
	}
}
