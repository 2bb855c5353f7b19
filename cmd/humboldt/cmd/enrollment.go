package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var enrollCmd = &cobra.Command{
	Use:   "enroll <studierenden-id> <kurs-id>",
	Short: "Schreibt einen Studierenden in einen Kurs ein",
	Long: `Schreibt einen Studierenden in einen Kurs ein.

Beispiele:
  humboldt enroll s-1 c-1
  humboldt grade s-1 c-1 1.3
  humboldt unenroll s-1 c-1`,
	Args: cobra.ExactArgs(2),
	RunE: runEnroll,
}

var unenrollCmd = &cobra.Command{
	Use:   "unenroll <studierenden-id> <kurs-id>",
	Short: "Entfernt eine Einschreibung",
	Args:  cobra.ExactArgs(2),
	RunE:  runUnenroll,
}

var gradeCmd = &cobra.Command{
	Use:   "grade <studierenden-id> <kurs-id> <note>",
	Short: "Vergibt oder überschreibt eine Note",
	Long: `Vergibt eine Note für eine bestehende Einschreibung.

Eine bereits vergebene Note wird überschrieben.

Beispiele:
  humboldt grade s-1 c-1 1.3
  humboldt grade s-1 c-1 "sehr gut"`,
	Args: cobra.ExactArgs(3),
	RunE: runGrade,
}

var rosterCmd = &cobra.Command{
	Use:   "roster <kurs-id>",
	Short: "Zeigt die Teilnehmerliste eines Kurses",
	Args:  cobra.ExactArgs(1),
	RunE:  runRoster,
}

var scheduleCmd = &cobra.Command{
	Use:   "schedule <studierenden-id>",
	Short: "Zeigt den Stundenplan eines Studierenden",
	Args:  cobra.ExactArgs(1),
	RunE:  runSchedule,
}

func init() {
	rootCmd.AddCommand(enrollCmd)
	rootCmd.AddCommand(unenrollCmd)
	rootCmd.AddCommand(gradeCmd)
	rootCmd.AddCommand(rosterCmd)
	rootCmd.AddCommand(scheduleCmd)
}

func runEnroll(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.svc.Close()

	e, err := a.svc.Enroll(ctx, args[0], args[1])
	if err != nil {
		return fmt.Errorf("Einschreibung fehlgeschlagen: %v", err)
	}

	fmt.Printf("Eingeschrieben: %s in %s\n", e.StudentID, e.CourseID)

	return a.save(ctx)
}

func runUnenroll(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.svc.Close()

	if err := a.svc.Unenroll(ctx, args[0], args[1]); err != nil {
		return fmt.Errorf("Austragen fehlgeschlagen: %v", err)
	}

	fmt.Printf("Ausgetragen: %s aus %s\n", args[0], args[1])

	return a.save(ctx)
}

func runGrade(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.svc.Close()

	e, err := a.svc.AssignGrade(ctx, args[0], args[1], args[2])
	if err != nil {
		return fmt.Errorf("Notenvergabe fehlgeschlagen: %v", err)
	}

	fmt.Printf("Note vergeben: %s in %s erhält %q\n", e.StudentID, e.CourseID, e.Grade)

	return a.save(ctx)
}

func runRoster(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.svc.Close()

	c, err := a.svc.GetCourse(ctx, args[0])
	if err != nil {
		return fmt.Errorf("Kurs nicht gefunden: %v", err)
	}

	roster, err := a.svc.StudentsInCourse(ctx, c.ID)
	if err != nil {
		return fmt.Errorf("Teilnehmerliste konnte nicht geladen werden: %v", err)
	}

	fmt.Printf("Teilnehmerliste: %s (%s)\n", c.Name, c.ID)
	fmt.Println(strings.Repeat("=", 50))
	fmt.Println()

	if len(roster) == 0 {
		fmt.Println("Keine Einschreibungen.")
		return nil
	}

	fmt.Printf("%-12s %-25s %-10s\n", "ID", "NAME", "NOTE")
	fmt.Println(strings.Repeat("-", 50))

	for _, p := range roster {
		grade := "offen"
		if e, err := a.svc.GetEnrollment(ctx, p.ID, c.ID); err == nil && e.Grade != "" {
			grade = e.Grade
		}
		fmt.Printf("%-12s %-25s %-10s\n", p.ID, p.Name, grade)
	}

	fmt.Println()
	fmt.Printf("Gesamt: %d Teilnehmer\n", len(roster))

	return nil
}

func runSchedule(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.svc.Close()

	p, err := a.svc.GetStudent(ctx, args[0])
	if err != nil {
		return fmt.Errorf("Studierender nicht gefunden: %v", err)
	}

	courses, err := a.svc.CoursesForStudent(ctx, p.ID)
	if err != nil {
		return fmt.Errorf("Stundenplan konnte nicht geladen werden: %v", err)
	}

	fmt.Printf("Stundenplan: %s (%s)\n", p.Name, p.ID)
	fmt.Println(strings.Repeat("=", 50))
	fmt.Println()

	if len(courses) == 0 {
		fmt.Println("Keine Einschreibungen.")
		return nil
	}

	fmt.Printf("%-12s %-30s %-10s\n", "ID", "KURS", "NOTE")
	fmt.Println(strings.Repeat("-", 55))

	for _, c := range courses {
		grade := "offen"
		if e, err := a.svc.GetEnrollment(ctx, p.ID, c.ID); err == nil && e.Grade != "" {
			grade = e.Grade
		}
		fmt.Printf("%-12s %-30s %-10s\n", c.ID, c.Name, grade)
	}

	fmt.Println()
	fmt.Printf("Gesamt: %d Kurs(e)\n", len(courses))

	return nil
}
