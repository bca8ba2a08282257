package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/olivier-w/driftwall/internal/server"
	"github.com/olivier-w/driftwall/internal/sim"
	"github.com/olivier-w/driftwall/internal/ui"
)

func main() {
	var (
		addr   = flag.String("serve", "", "stream snapshots over websockets at this address instead of rendering")
		static = flag.String("static", "", "directory of overlay assets to serve next to /ws")
		spawn  = flag.Duration("spawn", 0, "spawn interval override")
		max    = flag.Int("max", 0, "active bubble ceiling override")
		width  = flag.Float64("width", 1280, "container width in serve mode")
		height = flag.Float64("height", 720, "container height in serve mode")
	)
	flag.Parse()

	cfg := sim.Config{SpawnEvery: *spawn, MaxBubbles: *max}

	if *addr != "" {
		runServer(*addr, *static, *width, *height, cfg)
		return
	}

	p := tea.NewProgram(ui.New(cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runServer(addr, static string, width, height float64, cfg sim.Config) {
	srv := server.New(width, height, cfg)
	go srv.Run()
	defer srv.Close()

	mux := http.NewServeMux()
	mux.Handle("/ws", srv)
	if static != "" {
		mux.Handle("/", http.FileServer(http.Dir(static)))
	}

	log.Printf("driftwall serving on %s", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatal("ListenAndServe:", err)
	}
}
