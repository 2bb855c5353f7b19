package cmd

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/msto63/mCW/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Startet die interaktive TUI",
	Long: `Startet die Terminal User Interface (TUI) von meinCAMPUSWERK.

Die TUI bietet eine interaktive Oberfläche für:
  - Studierendenverzeichnis
  - Dozentenverzeichnis
  - Kurskatalog mit Teilnehmerlisten
  - Statistik

Navigation:
  Tab       - Zwischen Ansichten wechseln
  Enter     - Details öffnen
  /         - Liste filtern
  Ctrl+R    - Register neu laden
  Ctrl+C    - Beenden`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	quietLogs = true

	a, err := newApp(context.Background())
	if err != nil {
		return err
	}
	defer a.svc.Close()

	tui.ApplyAccent(a.cfg.TUI.AccentColor)

	p := tea.NewProgram(
		tui.NewModel(a.svc),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "TUI Fehler: %v\n", err)
		return err
	}

	return nil
}
