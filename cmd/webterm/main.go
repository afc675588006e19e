package main

import (
	"context"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/glabrego/webterm/internal/app"
	"github.com/glabrego/webterm/internal/config"
	"github.com/glabrego/webterm/internal/fetch"
	"github.com/glabrego/webterm/internal/tui"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "webterm")
		if err != nil {
			log.Fatalf("log file error: %v", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	client := fetch.NewClient(cfg.UserAgent, cfg.Timeout, nil)
	browser := app.NewBrowser(app.NewService(client))

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	browser.SetURL(ctx, cfg.StartURL)
	cancel()

	model := tui.NewModel(browser, cfg.Timeout)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		log.Fatalf("tui error: %v", err)
	}
}
