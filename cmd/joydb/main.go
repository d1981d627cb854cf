package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/leengari/joydb/internal/catalog"
	"github.com/leengari/joydb/internal/engine"
	"github.com/leengari/joydb/internal/logging"
	"github.com/leengari/joydb/internal/repl"
)

func main() {
	execute := flag.String("e", "", "Execute the given statements and exit")
	seq := flag.String("seq", "", "Seq log sink endpoint (e.g. http://localhost:5341)")
	quiet := flag.Bool("quiet", false, "Log warnings and errors only")
	flag.Parse()

	level := slog.LevelDebug
	if *quiet {
		level = slog.LevelWarn
	}
	logger, closeFn := logging.Setup(*seq, level)
	defer closeFn()
	slog.SetDefault(logger)

	eng := engine.New(catalog.New())
	eng.AddObserver(engine.NewLoggingObserver())

	if *execute != "" {
		result, err := eng.Execute(*execute, nil)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		if result != nil {
			repl.RenderTable(os.Stdout, result)
		}
		return
	}

	repl.Start(eng)
}
