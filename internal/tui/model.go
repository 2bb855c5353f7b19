package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/mCW/internal/humboldt/service"
)

// View represents different views in the TUI
type View int

const (
	ViewStudents View = iota
	ViewInstructors
	ViewCourses
	ViewStatistics
)

// studentItem implements list.Item for the student list
type studentItem struct {
	person *service.Person
}

func (i studentItem) Title() string { return i.person.Name }

func (i studentItem) Description() string {
	desc := i.person.ID
	if i.person.Major != "" {
		desc += " • " + i.person.Major
	}
	return desc
}

func (i studentItem) FilterValue() string { return i.person.Name }

// instructorItem implements list.Item for the instructor list
type instructorItem struct {
	person *service.Person
}

func (i instructorItem) Title() string { return i.person.Name }

func (i instructorItem) Description() string {
	desc := i.person.ID
	if i.person.Department != "" {
		desc += " • " + i.person.Department
	}
	if n := len(i.person.Teaching); n == 1 {
		desc += " • 1 Kurs"
	} else {
		desc += fmt.Sprintf(" • %d Kurse", n)
	}
	return desc
}

func (i instructorItem) FilterValue() string { return i.person.Name }

// courseItem implements list.Item for the course list
type courseItem struct {
	course     *service.Course
	instructor string // resolved name, empty when unassigned
	enrolled   int
}

func (i courseItem) Title() string { return i.course.Name }

func (i courseItem) Description() string {
	desc := i.course.ID
	if i.instructor != "" {
		desc += " • " + i.instructor
	} else {
		desc += " • ohne Dozent"
	}
	desc += fmt.Sprintf(" • %d Teilnehmer", i.enrolled)
	return desc
}

func (i courseItem) FilterValue() string { return i.course.Name }

// Model is the main TUI model
type Model struct {
	// State
	view    View
	width   int
	height  int
	ready   bool
	loading bool
	err     error

	// Components
	students    list.Model
	instructors list.Model
	courses     list.Model
	viewport    viewport.Model
	spinner     spinner.Model

	// Detail state
	showDetail  bool
	detailTitle string

	// Statistics state
	stats map[string]interface{}

	// Backend
	svc *service.Service
}

// NewModel creates a new TUI model backed by the given service
func NewModel(svc *service.Service) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = SpinnerStyle

	return Model{
		view:        ViewStudents,
		students:    newRecordList("Studierende"),
		instructors: newRecordList("Dozenten"),
		courses:     newRecordList("Kurse"),
		spinner:     sp,
		stats:       map[string]interface{}{},
		svc:         svc,
	}
}

func newRecordList(title string) list.Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.NormalTitle = ListItemStyle
	delegate.Styles.NormalDesc = ListDescStyle
	delegate.Styles.SelectedTitle = SelectedItemStyle
	delegate.Styles.SelectedDesc = SelectedDescStyle

	l := list.New([]list.Item{}, delegate, 0, 0)
	l.Title = title
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = ListTitleStyle
	return l
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.loadRegistry(),
	)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// An active filter swallows every key
		if !m.showDetail && m.view != ViewStatistics && m.activeList().FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "esc":
			if m.showDetail {
				m.showDetail = false
				return m, nil
			}
			if m.view != ViewStatistics && m.activeList().FilterState() == list.FilterApplied {
				break // the list resets its filter
			}
			return m, tea.Quit

		case "tab":
			m.showDetail = false
			m.view = (m.view + 1) % 4
			return m, nil

		case "enter":
			if !m.showDetail {
				return m.openDetail()
			}

		case "ctrl+r":
			m.loading = true
			return m, tea.Batch(m.spinner.Tick, m.loadRegistry())
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		contentHeight := msg.Height - 8
		m.students.SetSize(msg.Width-4, contentHeight)
		m.instructors.SetSize(msg.Width-4, contentHeight)
		m.courses.SetSize(msg.Width-4, contentHeight)

		if !m.ready {
			m.viewport = viewport.New(msg.Width-10, contentHeight-4)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 10
			m.viewport.Height = contentHeight - 4
		}

	case registryLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
		} else {
			m.err = nil
			m.students.SetItems(msg.students)
			m.instructors.SetItems(msg.instructors)
			m.courses.SetItems(msg.courses)
			m.stats = msg.stats
		}

	case detailLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			m.showDetail = false
		} else {
			m.err = nil
			m.viewport.SetContent(msg.content)
			m.viewport.GotoTop()
		}

	case spinner.TickMsg:
		if m.loading {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	// Route remaining messages to the focused component
	if m.showDetail {
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	} else {
		switch m.view {
		case ViewStudents:
			m.students, cmd = m.students.Update(msg)
			cmds = append(cmds, cmd)
		case ViewInstructors:
			m.instructors, cmd = m.instructors.Update(msg)
			cmds = append(cmds, cmd)
		case ViewCourses:
			m.courses, cmd = m.courses.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

// activeList returns the list component for the current view
func (m *Model) activeList() *list.Model {
	switch m.view {
	case ViewInstructors:
		return &m.instructors
	case ViewCourses:
		return &m.courses
	default:
		return &m.students
	}
}

// openDetail loads the detail pane for the selected record
func (m Model) openDetail() (tea.Model, tea.Cmd) {
	switch m.view {
	case ViewStudents:
		if item, ok := m.students.SelectedItem().(studentItem); ok {
			m.showDetail = true
			m.loading = true
			m.detailTitle = item.person.Name
			return m, tea.Batch(m.spinner.Tick, m.loadStudentDetail(item.person))
		}
	case ViewInstructors:
		if item, ok := m.instructors.SelectedItem().(instructorItem); ok {
			m.showDetail = true
			m.loading = true
			m.detailTitle = item.person.Name
			return m, tea.Batch(m.spinner.Tick, m.loadInstructorDetail(item.person))
		}
	case ViewCourses:
		if item, ok := m.courses.SelectedItem().(courseItem); ok {
			m.showDetail = true
			m.loading = true
			m.detailTitle = item.course.Name
			return m, tea.Batch(m.spinner.Tick, m.loadCourseDetail(item.course))
		}
	}
	return m, nil
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Lade..."
	}

	var s strings.Builder

	// Header
	s.WriteString(m.renderHeader())
	s.WriteString("\n")

	if m.err != nil {
		s.WriteString(RenderError(m.err))
		s.WriteString("\n")
	}

	// Main content
	switch {
	case m.showDetail:
		s.WriteString(m.renderDetailView())
	case m.view == ViewStatistics:
		s.WriteString(m.renderStatisticsView())
	default:
		s.WriteString(m.activeList().View())
	}

	// Footer
	s.WriteString("\n")
	s.WriteString(m.renderFooter())

	return s.String()
}

func (m *Model) renderHeader() string {
	tabs := []string{"Studierende", "Dozenten", "Kurse", "Statistik"}
	var renderedTabs []string

	for i, tab := range tabs {
		if View(i) == m.view {
			renderedTabs = append(renderedTabs, ActiveTabStyle.Render(tab))
		} else {
			renderedTabs = append(renderedTabs, TabStyle.Render(tab))
		}
	}

	title := TitleStyle.Render("meinCAMPUSWERK")
	tabLine := lipgloss.JoinHorizontal(lipgloss.Top, renderedTabs...)

	return lipgloss.JoinVertical(lipgloss.Left, title, tabLine)
}

func (m *Model) renderDetailView() string {
	var s strings.Builder

	s.WriteString(SubtitleStyle.Render(m.detailTitle))
	s.WriteString("\n\n")

	if m.loading {
		s.WriteString(m.spinner.View())
		s.WriteString(" Lade Details...\n")
	} else {
		s.WriteString(m.viewport.View())
	}

	return FocusedBoxStyle.Render(s.String())
}

func (m *Model) renderStatisticsView() string {
	var s strings.Builder

	s.WriteString(SubtitleStyle.Render("Statistik"))
	s.WriteString("\n\n")

	if len(m.stats) == 0 {
		s.WriteString("Lade Statistik...\n")
	} else {
		rows := []struct {
			label string
			key   string
		}{
			{"Studierende", "total_students"},
			{"Dozenten", "total_instructors"},
			{"Kurse", "total_courses"},
			{"Einschreibungen", "total_enrollments"},
			{"davon benotet", "graded_enrollments"},
		}
		for _, row := range rows {
			s.WriteString(fmt.Sprintf("  %-20s %v\n", row.label, m.stats[row.key]))
		}
	}

	s.WriteString("\n")
	s.WriteString(HelpStyle.Render("Ctrl+R: Aktualisieren"))

	return BoxStyle.Render(s.String())
}

func (m *Model) renderFooter() string {
	help := "Tab: Wechseln • Enter: Details • Esc: Zurück • Ctrl+R: Aktualisieren • Ctrl+C: Beenden"
	counts := fmt.Sprintf("%d Studierende • %d Kurse",
		len(m.students.Items()), len(m.courses.Items()))

	gap := m.width - lipgloss.Width(help) - lipgloss.Width(counts) - 4
	return StatusBarStyle.Width(m.width).Render(
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			help,
			strings.Repeat(" ", max(0, gap)),
			counts,
		),
	)
}

// Message types for async operations
type registryLoadedMsg struct {
	students    []list.Item
	instructors []list.Item
	courses     []list.Item
	stats       map[string]interface{}
	err         error
}

type detailLoadedMsg struct {
	content string
	err     error
}

// loadRegistry fetches all records from the service
func (m *Model) loadRegistry() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		students, err := m.svc.ListStudents(ctx)
		if err != nil {
			return registryLoadedMsg{err: err}
		}
		instructors, err := m.svc.ListInstructors(ctx)
		if err != nil {
			return registryLoadedMsg{err: err}
		}
		courses, err := m.svc.ListCourses(ctx)
		if err != nil {
			return registryLoadedMsg{err: err}
		}
		stats, err := m.svc.Statistics(ctx)
		if err != nil {
			return registryLoadedMsg{err: err}
		}

		msg := registryLoadedMsg{stats: stats}
		for _, p := range students {
			msg.students = append(msg.students, studentItem{person: p})
		}
		for _, p := range instructors {
			msg.instructors = append(msg.instructors, instructorItem{person: p})
		}
		for _, c := range courses {
			item := courseItem{course: c}
			if c.InstructorID != "" {
				if p, err := m.svc.GetInstructor(ctx, c.InstructorID); err == nil {
					item.instructor = p.Name
				}
			}
			if roster, err := m.svc.StudentsInCourse(ctx, c.ID); err == nil {
				item.enrolled = len(roster)
			}
			msg.courses = append(msg.courses, item)
		}

		return msg
	}
}

// loadStudentDetail builds the schedule pane for one student
func (m *Model) loadStudentDetail(p *service.Person) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		courses, err := m.svc.CoursesForStudent(ctx, p.ID)
		if err != nil {
			return detailLoadedMsg{err: err}
		}

		var s strings.Builder
		s.WriteString(LabelStyle.Render("ID:") + " " + p.ID + "\n")
		if p.Email != "" {
			s.WriteString(LabelStyle.Render("E-Mail:") + " " + p.Email + "\n")
		}
		if p.Major != "" {
			s.WriteString(LabelStyle.Render("Studiengang:") + " " + p.Major + "\n")
		}
		s.WriteString("\n")

		s.WriteString(SubtitleStyle.Render(fmt.Sprintf("Belegte Kurse (%d)", len(courses))))
		s.WriteString("\n")
		for i, c := range courses {
			grade := "offen"
			if e, err := m.svc.GetEnrollment(ctx, p.ID, c.ID); err == nil && e.Grade != "" {
				grade = GradeStyle.Render(e.Grade)
			}
			s.WriteString(fmt.Sprintf("  %d. %-36s Note: %s\n",
				i+1, fmt.Sprintf("%s (%s)", c.Name, c.ID), grade))
		}
		if len(courses) == 0 {
			s.WriteString("  Keine Einschreibungen.\n")
		}

		return detailLoadedMsg{content: s.String()}
	}
}

// loadInstructorDetail builds the teaching pane for one instructor
func (m *Model) loadInstructorDetail(p *service.Person) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		var s strings.Builder
		s.WriteString(LabelStyle.Render("ID:") + " " + p.ID + "\n")
		if p.Email != "" {
			s.WriteString(LabelStyle.Render("E-Mail:") + " " + p.Email + "\n")
		}
		if p.Department != "" {
			s.WriteString(LabelStyle.Render("Fachbereich:") + " " + p.Department + "\n")
		}
		s.WriteString("\n")

		s.WriteString(SubtitleStyle.Render(fmt.Sprintf("Lehrveranstaltungen (%d)", len(p.Teaching))))
		s.WriteString("\n")
		for i, id := range p.Teaching {
			name := id
			enrolled := 0
			if c, err := m.svc.GetCourse(ctx, id); err == nil {
				name = fmt.Sprintf("%s (%s)", c.Name, c.ID)
			}
			if roster, err := m.svc.StudentsInCourse(ctx, id); err == nil {
				enrolled = len(roster)
			}
			s.WriteString(fmt.Sprintf("  %d. %-36s %d Teilnehmer\n", i+1, name, enrolled))
		}
		if len(p.Teaching) == 0 {
			s.WriteString("  Keine Lehrveranstaltungen.\n")
		}

		return detailLoadedMsg{content: s.String()}
	}
}

// loadCourseDetail builds the roster pane for one course
func (m *Model) loadCourseDetail(c *service.Course) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		roster, err := m.svc.StudentsInCourse(ctx, c.ID)
		if err != nil {
			return detailLoadedMsg{err: err}
		}

		var s strings.Builder
		s.WriteString(LabelStyle.Render("ID:") + " " + c.ID + "\n")
		if c.Description != "" {
			s.WriteString(LabelStyle.Render("Beschreibung:") + " " + c.Description + "\n")
		}
		instructor := "ohne Dozent"
		if c.InstructorID != "" {
			instructor = c.InstructorID
			if p, err := m.svc.GetInstructor(ctx, c.InstructorID); err == nil {
				instructor = fmt.Sprintf("%s (%s)", p.Name, p.ID)
			}
		}
		s.WriteString(LabelStyle.Render("Dozent:") + " " + instructor + "\n")
		s.WriteString("\n")

		s.WriteString(SubtitleStyle.Render(fmt.Sprintf("Teilnehmer (%d)", len(roster))))
		s.WriteString("\n")
		for i, st := range roster {
			grade := "offen"
			if e, err := m.svc.GetEnrollment(ctx, st.ID, c.ID); err == nil && e.Grade != "" {
				grade = GradeStyle.Render(e.Grade)
			}
			s.WriteString(fmt.Sprintf("  %d. %-36s Note: %s\n",
				i+1, fmt.Sprintf("%s (%s)", st.Name, st.ID), grade))
		}
		if len(roster) == 0 {
			s.WriteString("  Keine Einschreibungen.\n")
		}

		return detailLoadedMsg{content: s.String()}
	}
}
