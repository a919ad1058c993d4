package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"

	md2hwpx "github.com/alnah/go-md2hwpx"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	var (
		addr       string
		workers    int
		configPath string
	)
	fs := flag.NewFlagSet("md2hwpxd", flag.ContinueOnError)
	fs.StringVar(&addr, "addr", "", "listen address (overrides config)")
	fs.IntVar(&workers, "workers", 0, "max concurrent conversions (0 = auto)")
	fs.StringVar(&configPath, "config", "", "path to YAML config file")
	if err := fs.Parse(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	cfg := defaultConfig()
	if configPath != "" {
		loaded, err := loadConfig(configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		cfg = loaded
	}
	if addr != "" {
		cfg.Addr = addr
	}
	if workers != 0 {
		cfg.Workers = workers
	}

	pool := md2hwpx.NewConverterPool(md2hwpx.ResolvePoolSize(cfg.Workers))
	srv := newServer(pool)
	srv.maxSize = cfg.MaxSize

	httpSrv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           srv,
		ReadHeaderTimeout: 10 * time.Second,
	}

	fmt.Fprintf(os.Stderr, "md2hwpxd %s listening on %s (%d workers)\n",
		Version, cfg.Addr, pool.Size())
	if err := httpSrv.ListenAndServe(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
