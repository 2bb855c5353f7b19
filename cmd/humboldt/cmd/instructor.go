package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/mCW/internal/humboldt/service"
)

var (
	instructorID         string
	instructorName       string
	instructorEmail      string
	instructorDepartment string
)

var instructorCmd = &cobra.Command{
	Use:   "instructor",
	Short: "Dozenten verwalten",
	Long: `Verwaltet die Dozenten im Register.

Beispiele:
  humboldt instructor add "Prof. Keller" --department Informatik
  humboldt instructor list
  humboldt instructor show i-1
  humboldt instructor update i-1 --email keller@example.edu
  humboldt instructor remove i-1`,
}

var instructorAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Legt einen neuen Dozenten an",
	Args:  cobra.ExactArgs(1),
	RunE:  runInstructorAdd,
}

var instructorListCmd = &cobra.Command{
	Use:   "list",
	Short: "Listet alle Dozenten auf",
	RunE:  runInstructorList,
}

var instructorShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Zeigt einen Dozenten mit Lehrveranstaltungen an",
	Args:  cobra.ExactArgs(1),
	RunE:  runInstructorShow,
}

var instructorUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Aktualisiert einen Dozenten",
	Args:  cobra.ExactArgs(1),
	RunE:  runInstructorUpdate,
}

var instructorRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Entfernt einen Dozenten",
	Args:  cobra.ExactArgs(1),
	RunE:  runInstructorRemove,
}

func init() {
	rootCmd.AddCommand(instructorCmd)
	instructorCmd.AddCommand(instructorAddCmd)
	instructorCmd.AddCommand(instructorListCmd)
	instructorCmd.AddCommand(instructorShowCmd)
	instructorCmd.AddCommand(instructorUpdateCmd)
	instructorCmd.AddCommand(instructorRemoveCmd)

	instructorAddCmd.Flags().StringVar(&instructorID, "id", "", "Eigene ID (default: generiert)")
	instructorAddCmd.Flags().StringVar(&instructorEmail, "email", "", "E-Mail-Adresse")
	instructorAddCmd.Flags().StringVar(&instructorDepartment, "department", "", "Fachbereich")

	instructorUpdateCmd.Flags().StringVar(&instructorName, "name", "", "Neuer Name")
	instructorUpdateCmd.Flags().StringVar(&instructorEmail, "email", "", "Neue E-Mail-Adresse")
	instructorUpdateCmd.Flags().StringVar(&instructorDepartment, "department", "", "Neuer Fachbereich")
}

func runInstructorAdd(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.svc.Close()

	p, err := a.svc.CreateInstructor(ctx, &service.CreateInstructorRequest{
		ID:         instructorID,
		Name:       args[0],
		Email:      instructorEmail,
		Department: instructorDepartment,
	})
	if err != nil {
		return fmt.Errorf("Anlegen fehlgeschlagen: %v", err)
	}

	fmt.Println("Dozent angelegt.")
	printInstructor(p)

	return a.save(ctx)
}

func runInstructorList(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.svc.Close()

	instructors, err := a.svc.ListInstructors(ctx)
	if err != nil {
		return fmt.Errorf("Auflistung fehlgeschlagen: %v", err)
	}

	fmt.Println("Dozenten")
	fmt.Println("========")
	fmt.Println()

	if len(instructors) == 0 {
		fmt.Println("Keine Dozenten registriert.")
		return nil
	}

	fmt.Printf("%-12s %-25s %-28s %-20s %-6s\n", "ID", "NAME", "E-MAIL", "FACHBEREICH", "KURSE")
	fmt.Println(strings.Repeat("-", 95))

	for _, p := range instructors {
		fmt.Printf("%-12s %-25s %-28s %-20s %-6d\n",
			p.ID, p.Name, dash(p.Email), dash(p.Department), len(p.Teaching))
	}

	fmt.Println()
	fmt.Printf("Gesamt: %d Dozent(en)\n", len(instructors))

	return nil
}

func runInstructorShow(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.svc.Close()

	p, err := a.svc.GetInstructor(ctx, args[0])
	if err != nil {
		return fmt.Errorf("Dozent nicht gefunden: %v", err)
	}

	printInstructor(p)

	fmt.Println()
	fmt.Printf("Lehrveranstaltungen (%d):\n", len(p.Teaching))
	for _, id := range p.Teaching {
		name := id
		enrolled := 0
		if c, err := a.svc.GetCourse(ctx, id); err == nil {
			name = fmt.Sprintf("%s (%s)", c.Name, c.ID)
		}
		if roster, err := a.svc.StudentsInCourse(ctx, id); err == nil {
			enrolled = len(roster)
		}
		fmt.Printf("  - %-30s %d Teilnehmer\n", name, enrolled)
	}
	if len(p.Teaching) == 0 {
		fmt.Println("  Keine Lehrveranstaltungen.")
	}

	return nil
}

func runInstructorUpdate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.svc.Close()

	req := &service.UpdateInstructorRequest{}
	if cmd.Flags().Changed("name") {
		req.Name = &instructorName
	}
	if cmd.Flags().Changed("email") {
		req.Email = &instructorEmail
	}
	if cmd.Flags().Changed("department") {
		req.Department = &instructorDepartment
	}

	p, err := a.svc.UpdateInstructor(ctx, args[0], req)
	if err != nil {
		return fmt.Errorf("Aktualisierung fehlgeschlagen: %v", err)
	}

	fmt.Println("Dozent aktualisiert.")
	printInstructor(p)

	return a.save(ctx)
}

func runInstructorRemove(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.svc.Close()

	p, err := a.svc.GetInstructor(ctx, args[0])
	if err != nil {
		return fmt.Errorf("Dozent nicht gefunden: %v", err)
	}

	if err := a.svc.RemovePerson(ctx, p.ID); err != nil {
		return fmt.Errorf("Entfernen fehlgeschlagen: %v", err)
	}

	fmt.Printf("Dozent entfernt: %s\n", p.ID)
	fmt.Println("Betroffene Kurse haben nun keinen Dozenten mehr.")

	return a.save(ctx)
}

func printInstructor(p *service.Person) {
	fmt.Printf("  ID:          %s\n", p.ID)
	fmt.Printf("  Name:        %s\n", p.Name)
	if p.Email != "" {
		fmt.Printf("  E-Mail:      %s\n", p.Email)
	}
	if p.Department != "" {
		fmt.Printf("  Fachbereich: %s\n", p.Department)
	}
}
