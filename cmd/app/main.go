package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jmnayar/PRT/internal/config"
	"github.com/jmnayar/PRT/internal/database"
	"github.com/jmnayar/PRT/internal/tui"
	"github.com/jmnayar/PRT/internal/util"
	"golang.org/x/term"
)

func main() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "prt is an interactive tracker and needs a terminal")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
	util.Fatal("create data dir", os.MkdirAll(cfg.DataDir, 0o755))

	ctx := context.Background()
	db, err := database.Open(ctx, cfg.DBPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	tui.SetTheme(cfg.Theme)

	p := tea.NewProgram(tui.NewMainModel(ctx, db), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}
