package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/mCW/internal/humboldt/service"
)

var (
	studentID    string
	studentName  string
	studentEmail string
	studentMajor string
)

var studentCmd = &cobra.Command{
	Use:   "student",
	Short: "Studierende verwalten",
	Long: `Verwaltet die Studierenden im Register.

Beispiele:
  humboldt student add "Alice Siebert" --email alice@example.edu --major Informatik
  humboldt student list
  humboldt student show s-1
  humboldt student update s-1 --major Mathematik
  humboldt student remove s-1`,
}

var studentAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Legt einen neuen Studierenden an",
	Args:  cobra.ExactArgs(1),
	RunE:  runStudentAdd,
}

var studentListCmd = &cobra.Command{
	Use:   "list",
	Short: "Listet alle Studierenden auf",
	RunE:  runStudentList,
}

var studentShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Zeigt einen Studierenden mit Stundenplan an",
	Args:  cobra.ExactArgs(1),
	RunE:  runStudentShow,
}

var studentUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Aktualisiert einen Studierenden",
	Args:  cobra.ExactArgs(1),
	RunE:  runStudentUpdate,
}

var studentRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Entfernt einen Studierenden samt Einschreibungen",
	Args:  cobra.ExactArgs(1),
	RunE:  runStudentRemove,
}

func init() {
	rootCmd.AddCommand(studentCmd)
	studentCmd.AddCommand(studentAddCmd)
	studentCmd.AddCommand(studentListCmd)
	studentCmd.AddCommand(studentShowCmd)
	studentCmd.AddCommand(studentUpdateCmd)
	studentCmd.AddCommand(studentRemoveCmd)

	studentAddCmd.Flags().StringVar(&studentID, "id", "", "Eigene ID (default: generiert)")
	studentAddCmd.Flags().StringVar(&studentEmail, "email", "", "E-Mail-Adresse")
	studentAddCmd.Flags().StringVar(&studentMajor, "major", "", "Studiengang")

	studentUpdateCmd.Flags().StringVar(&studentName, "name", "", "Neuer Name")
	studentUpdateCmd.Flags().StringVar(&studentEmail, "email", "", "Neue E-Mail-Adresse")
	studentUpdateCmd.Flags().StringVar(&studentMajor, "major", "", "Neuer Studiengang")
}

func runStudentAdd(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.svc.Close()

	p, err := a.svc.CreateStudent(ctx, &service.CreateStudentRequest{
		ID:    studentID,
		Name:  args[0],
		Email: studentEmail,
		Major: studentMajor,
	})
	if err != nil {
		return fmt.Errorf("Anlegen fehlgeschlagen: %v", err)
	}

	fmt.Println("Studierender angelegt.")
	printStudent(p)

	return a.save(ctx)
}

func runStudentList(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.svc.Close()

	students, err := a.svc.ListStudents(ctx)
	if err != nil {
		return fmt.Errorf("Auflistung fehlgeschlagen: %v", err)
	}

	fmt.Println("Studierende")
	fmt.Println("===========")
	fmt.Println()

	if len(students) == 0 {
		fmt.Println("Keine Studierenden registriert.")
		return nil
	}

	fmt.Printf("%-12s %-25s %-28s %-20s\n", "ID", "NAME", "E-MAIL", "STUDIENGANG")
	fmt.Println(strings.Repeat("-", 88))

	for _, p := range students {
		fmt.Printf("%-12s %-25s %-28s %-20s\n",
			p.ID, p.Name, dash(p.Email), dash(p.Major))
	}

	fmt.Println()
	fmt.Printf("Gesamt: %d Studierende\n", len(students))

	return nil
}

func runStudentShow(cmd *cobra.Command, args []string) error {
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

	printStudent(p)

	courses, err := a.svc.CoursesForStudent(ctx, p.ID)
	if err != nil {
		return fmt.Errorf("Stundenplan konnte nicht geladen werden: %v", err)
	}

	fmt.Println()
	fmt.Printf("Belegte Kurse (%d):\n", len(courses))
	for _, c := range courses {
		grade := "offen"
		if e, err := a.svc.GetEnrollment(ctx, p.ID, c.ID); err == nil && e.Grade != "" {
			grade = e.Grade
		}
		fmt.Printf("  - %-30s Note: %s\n", fmt.Sprintf("%s (%s)", c.Name, c.ID), grade)
	}
	if len(courses) == 0 {
		fmt.Println("  Keine Einschreibungen.")
	}

	return nil
}

func runStudentUpdate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.svc.Close()

	req := &service.UpdateStudentRequest{}
	if cmd.Flags().Changed("name") {
		req.Name = &studentName
	}
	if cmd.Flags().Changed("email") {
		req.Email = &studentEmail
	}
	if cmd.Flags().Changed("major") {
		req.Major = &studentMajor
	}

	p, err := a.svc.UpdateStudent(ctx, args[0], req)
	if err != nil {
		return fmt.Errorf("Aktualisierung fehlgeschlagen: %v", err)
	}

	fmt.Println("Studierender aktualisiert.")
	printStudent(p)

	return a.save(ctx)
}

func runStudentRemove(cmd *cobra.Command, args []string) error {
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

	if err := a.svc.RemovePerson(ctx, p.ID); err != nil {
		return fmt.Errorf("Entfernen fehlgeschlagen: %v", err)
	}

	fmt.Printf("Studierender entfernt: %s\n", p.ID)
	fmt.Println("Zugehörige Einschreibungen wurden ebenfalls entfernt.")

	return a.save(ctx)
}

func printStudent(p *service.Person) {
	fmt.Printf("  ID:          %s\n", p.ID)
	fmt.Printf("  Name:        %s\n", p.Name)
	if p.Email != "" {
		fmt.Printf("  E-Mail:      %s\n", p.Email)
	}
	if p.Major != "" {
		fmt.Printf("  Studiengang: %s\n", p.Major)
	}
}

// dash substitutes a placeholder for empty table cells
func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
