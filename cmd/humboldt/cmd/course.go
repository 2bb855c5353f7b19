package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/mCW/internal/humboldt/service"
)

var (
	courseID          string
	courseName        string
	courseDescription string
	courseInstructor  string
)

var courseCmd = &cobra.Command{
	Use:   "course",
	Short: "Kurse verwalten",
	Long: `Verwaltet die Kurse im Register.

Beispiele:
  humboldt course add "Datenbanken" --instructor i-1
  humboldt course list
  humboldt course show c-1
  humboldt course update c-1 --instructor i-2
  humboldt course update c-1 --instructor ""   # Zuordnung aufheben
  humboldt course remove c-1`,
}

var courseAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Legt einen neuen Kurs an",
	Args:  cobra.ExactArgs(1),
	RunE:  runCourseAdd,
}

var courseListCmd = &cobra.Command{
	Use:   "list",
	Short: "Listet alle Kurse auf",
	RunE:  runCourseList,
}

var courseShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Zeigt einen Kurs mit Teilnehmerliste an",
	Args:  cobra.ExactArgs(1),
	RunE:  runCourseShow,
}

var courseUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Aktualisiert einen Kurs",
	Args:  cobra.ExactArgs(1),
	RunE:  runCourseUpdate,
}

var courseRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Entfernt einen Kurs samt Einschreibungen",
	Args:  cobra.ExactArgs(1),
	RunE:  runCourseRemove,
}

func init() {
	rootCmd.AddCommand(courseCmd)
	courseCmd.AddCommand(courseAddCmd)
	courseCmd.AddCommand(courseListCmd)
	courseCmd.AddCommand(courseShowCmd)
	courseCmd.AddCommand(courseUpdateCmd)
	courseCmd.AddCommand(courseRemoveCmd)

	courseAddCmd.Flags().StringVar(&courseID, "id", "", "Eigene ID (default: generiert)")
	courseAddCmd.Flags().StringVar(&courseDescription, "description", "", "Kursbeschreibung")
	courseAddCmd.Flags().StringVar(&courseInstructor, "instructor", "", "ID des Dozenten")

	courseUpdateCmd.Flags().StringVar(&courseName, "name", "", "Neuer Name")
	courseUpdateCmd.Flags().StringVar(&courseDescription, "description", "", "Neue Beschreibung")
	courseUpdateCmd.Flags().StringVar(&courseInstructor, "instructor", "", "Neue Dozenten-ID (leer = Zuordnung aufheben)")
}

func runCourseAdd(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.svc.Close()

	c, err := a.svc.CreateCourse(ctx, &service.CreateCourseRequest{
		ID:           courseID,
		Name:         args[0],
		Description:  courseDescription,
		InstructorID: courseInstructor,
	})
	if err != nil {
		return fmt.Errorf("Anlegen fehlgeschlagen: %v", err)
	}

	fmt.Println("Kurs angelegt.")
	printCourse(c)

	return a.save(ctx)
}

func runCourseList(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.svc.Close()

	courses, err := a.svc.ListCourses(ctx)
	if err != nil {
		return fmt.Errorf("Auflistung fehlgeschlagen: %v", err)
	}

	fmt.Println("Kurse")
	fmt.Println("=====")
	fmt.Println()

	if len(courses) == 0 {
		fmt.Println("Keine Kurse registriert.")
		return nil
	}

	fmt.Printf("%-12s %-30s %-25s %-12s\n", "ID", "NAME", "DOZENT", "TEILNEHMER")
	fmt.Println(strings.Repeat("-", 85))

	for _, c := range courses {
		instructor := "-"
		if c.InstructorID != "" {
			instructor = c.InstructorID
			if p, err := a.svc.GetInstructor(ctx, c.InstructorID); err == nil {
				instructor = p.Name
			}
		}
		enrolled := 0
		if roster, err := a.svc.StudentsInCourse(ctx, c.ID); err == nil {
			enrolled = len(roster)
		}
		fmt.Printf("%-12s %-30s %-25s %-12d\n", c.ID, c.Name, instructor, enrolled)
	}

	fmt.Println()
	fmt.Printf("Gesamt: %d Kurs(e)\n", len(courses))

	return nil
}

func runCourseShow(cmd *cobra.Command, args []string) error {
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

	instructor := "-"
	if c.InstructorID != "" {
		instructor = c.InstructorID
		if p, err := a.svc.GetInstructor(ctx, c.InstructorID); err == nil {
			instructor = fmt.Sprintf("%s (%s)", p.Name, p.ID)
		}
	}

	fmt.Printf("  ID:           %s\n", c.ID)
	fmt.Printf("  Name:         %s\n", c.Name)
	if c.Description != "" {
		fmt.Printf("  Beschreibung: %s\n", c.Description)
	}
	fmt.Printf("  Dozent:       %s\n", instructor)

	roster, err := a.svc.StudentsInCourse(ctx, c.ID)
	if err != nil {
		return fmt.Errorf("Teilnehmerliste konnte nicht geladen werden: %v", err)
	}

	fmt.Println()
	fmt.Printf("Teilnehmer (%d):\n", len(roster))
	for _, p := range roster {
		grade := "offen"
		if e, err := a.svc.GetEnrollment(ctx, p.ID, c.ID); err == nil && e.Grade != "" {
			grade = e.Grade
		}
		fmt.Printf("  - %-30s Note: %s\n", fmt.Sprintf("%s (%s)", p.Name, p.ID), grade)
	}
	if len(roster) == 0 {
		fmt.Println("  Keine Einschreibungen.")
	}

	return nil
}

func runCourseUpdate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.svc.Close()

	req := &service.UpdateCourseRequest{}
	if cmd.Flags().Changed("name") {
		req.Name = &courseName
	}
	if cmd.Flags().Changed("description") {
		req.Description = &courseDescription
	}
	if cmd.Flags().Changed("instructor") {
		req.InstructorID = &courseInstructor
	}

	c, err := a.svc.UpdateCourse(ctx, args[0], req)
	if err != nil {
		return fmt.Errorf("Aktualisierung fehlgeschlagen: %v", err)
	}

	fmt.Println("Kurs aktualisiert.")
	printCourse(c)

	return a.save(ctx)
}

func runCourseRemove(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.svc.Close()

	if err := a.svc.RemoveCourse(ctx, args[0]); err != nil {
		return fmt.Errorf("Entfernen fehlgeschlagen: %v", err)
	}

	fmt.Printf("Kurs entfernt: %s\n", args[0])
	fmt.Println("Zugehörige Einschreibungen wurden ebenfalls entfernt.")

	return a.save(ctx)
}

func printCourse(c *service.Course) {
	fmt.Printf("  ID:           %s\n", c.ID)
	fmt.Printf("  Name:         %s\n", c.Name)
	if c.Description != "" {
		fmt.Printf("  Beschreibung: %s\n", c.Description)
	}
	fmt.Printf("  Dozent:       %s\n", dash(c.InstructorID))
}
