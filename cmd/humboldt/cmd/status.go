package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Zeigt den Zustand des Registers",
	Long: `Zeigt den Zustand des Registers an.

Umfasst die Bestandszahlen, die geladenen Katalogdateien und die
aktive Konfiguration.`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.svc.Close()

	fmt.Println("meinCAMPUSWERK Status")
	fmt.Println("=====================")
	fmt.Println()

	stats, err := a.svc.Statistics(ctx)
	if err != nil {
		return fmt.Errorf("Statistik fehlgeschlagen: %v", err)
	}

	fmt.Println("Register:")
	fmt.Println("---------")
	fmt.Printf("  %-18s %v\n", "Studierende:", stats["total_students"])
	fmt.Printf("  %-18s %v\n", "Dozenten:", stats["total_instructors"])
	fmt.Printf("  %-18s %v\n", "Kurse:", stats["total_courses"])
	fmt.Printf("  %-18s %v\n", "Einschreibungen:", stats["total_enrollments"])
	fmt.Printf("  %-18s %v\n", "davon benotet:", stats["graded_enrollments"])

	fmt.Println()
	fmt.Println("Katalog:")
	fmt.Println("--------")

	docs := a.loader.GetAll()
	if len(docs) == 0 {
		fmt.Printf("  Keine Katalogdateien in %s\n", a.loader.GetDirectory())
	} else {
		for _, doc := range docs {
			fmt.Printf("  [+] %-30s %3d Einträge (geladen %s)\n",
				filepath.Base(doc.SourceFile),
				doc.RecordCount(),
				doc.LoadedAt.Format("15:04:05"))
		}
		fmt.Printf("  Gesamt: %d Datei(en)\n", len(docs))
	}

	fmt.Println()
	fmt.Println("Konfiguration:")
	fmt.Println("--------------")
	fmt.Printf("  %-18s %s\n", "Umgebung:", a.cfg.Service.Environment)
	fmt.Printf("  %-18s %s\n", "Katalogordner:", a.cfg.Catalog.Directory)

	watch := "inaktiv"
	if a.cfg.Catalog.Watch {
		watch = "aktiv"
	}
	fmt.Printf("  %-18s %s\n", "Überwachung:", watch)
	fmt.Printf("  %-18s %s\n", "Log-Level:", a.cfg.Logging.Level)

	return nil
}
