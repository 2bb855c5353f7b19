package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/msto63/mCW/internal/humboldt/roster"
)

var (
	importCourse string
	importSheet  string
	exportSheet  string
)

var importCmd = &cobra.Command{
	Use:   "import <xlsx-datei>",
	Short: "Importiert Studierende aus einer XLSX-Teilnehmerliste",
	Long: `Importiert Studierende aus einer XLSX-Arbeitsmappe.

Erwartete Spalten: ID | Name | E-Mail | Studiengang
Die ID-Spalte darf leer sein, dann wird eine ID generiert.

Mit --course werden die importierten Studierenden zusätzlich in
den angegebenen Kurs eingeschrieben.

Beispiele:
  humboldt import teilnehmer.xlsx
  humboldt import teilnehmer.xlsx --course c-1
  humboldt import teilnehmer.xlsx --sheet "Erstsemester"`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

var exportCmd = &cobra.Command{
	Use:   "export <kurs-id> <xlsx-datei>",
	Short: "Exportiert die Teilnehmerliste eines Kurses als XLSX",
	Long: `Exportiert die Teilnehmerliste eines Kurses samt Noten
als XLSX-Arbeitsmappe.

Beispiele:
  humboldt export c-1 teilnehmer.xlsx
  humboldt export c-1 teilnehmer.xlsx --sheet "Datenbanken"`,
	Args: cobra.ExactArgs(2),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exportCmd)

	importCmd.Flags().StringVar(&importCourse, "course", "", "Kurs-ID für die Einschreibung")
	importCmd.Flags().StringVar(&importSheet, "sheet", "", "Name des Arbeitsblatts (default: aus der Konfiguration)")

	exportCmd.Flags().StringVar(&exportSheet, "sheet", "", "Name des Arbeitsblatts (default: aus der Konfiguration)")
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.svc.Close()

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("Datei konnte nicht geöffnet werden: %v", err)
	}
	defer f.Close()

	cfg := roster.ImporterConfig{
		Sheet:      a.cfg.Roster.Sheet,
		HeaderRows: a.cfg.Roster.HeaderRows,
	}
	if importSheet != "" {
		cfg.Sheet = importSheet
	}

	imp := roster.NewImporter(a.svc, cfg)
	result, err := imp.ImportStudents(ctx, f, importCourse)
	if err != nil {
		return fmt.Errorf("Import fehlgeschlagen: %v", err)
	}

	fmt.Printf("Import abgeschlossen: %s\n", filepath.Base(args[0]))
	fmt.Printf("  Importiert:     %d\n", result.Imported)
	if importCourse != "" {
		fmt.Printf("  Eingeschrieben: %d\n", result.Enrolled)
	}
	if result.Skipped > 0 {
		fmt.Printf("  Übersprungen:   %d\n", result.Skipped)
	}

	return a.save(ctx)
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.svc.Close()

	f, err := os.Create(args[1])
	if err != nil {
		return fmt.Errorf("Datei konnte nicht angelegt werden: %v", err)
	}
	defer f.Close()

	sheet := a.cfg.Roster.Sheet
	if exportSheet != "" {
		sheet = exportSheet
	}

	if err := roster.ExportRoster(ctx, a.svc, args[0], sheet, f); err != nil {
		return fmt.Errorf("Export fehlgeschlagen: %v", err)
	}

	fmt.Printf("Teilnehmerliste exportiert: %s\n", args[1])

	return nil
}
