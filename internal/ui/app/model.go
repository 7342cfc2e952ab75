package app

import (
	"context"
	"strconv"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	rosterdomain "courtside/internal/modules/roster/domain"
	rosterdto "courtside/internal/modules/roster/dto"
	sessiondomain "courtside/internal/modules/session/domain"
	sessiondto "courtside/internal/modules/session/dto"
	subdto "courtside/internal/modules/subscription/dto"
	"courtside/internal/ui/components"
	"courtside/internal/ui/theme"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface this orchestration layer requires.

type sessionPort interface {
	ListByCoach(ctx context.Context, coachID int64) ([]sessiondto.SessionOutput, error)
	Get(ctx context.Context, id int64) (sessiondto.SessionDetailOutput, error)
	Create(ctx context.Context, input sessiondto.CreateSessionInput) (sessiondto.SessionOutput, error)
	Update(ctx context.Context, input sessiondto.UpdateSessionInput) (sessiondto.SessionOutput, error)
	Delete(ctx context.Context, id int64) error
	AddContent(ctx context.Context, input sessiondto.CreateContentInput) (sessiondto.ContentOutput, error)
	UpdateContent(ctx context.Context, input sessiondto.UpdateContentInput) (sessiondto.ContentOutput, error)
	DeleteContent(ctx context.Context, id int64) error
}

type subscriptionPort interface {
	ListForPlayer(ctx context.Context, playerID int64, filter subdto.Filter) ([]subdto.SessionView, error)
	Toggle(ctx context.Context, userID, sessionID int64) (subdto.ToggleOutput, error)
	MarkComplete(ctx context.Context, userID, sessionID int64) (subdto.SubscriptionOutput, error)
}

// ─── screens ─────────────────────────────────────────────────────────────────

type screenKind int

const (
	screenHome screenKind = iota
	screenSessionList
	screenSessionDetail
	screenSessionCreate
	screenSessionEdit
	screenSessionDelete
	screenContentCreate
	screenContentEdit
	screenContentDelete
	screenHelp
)

// screen is the navigator state. sessionID and contentID carry the targets of
// detail, edit, and delete screens; they are zero elsewhere.
type screen struct {
	kind      screenKind
	sessionID int64
	contentID int64
}

func (s screen) isForm() bool {
	switch s.kind {
	case screenSessionCreate, screenSessionEdit, screenContentCreate, screenContentEdit:
		return true
	}
	return false
}

// ─── async messages ───────────────────────────────────────────────────────────

type viewsLoadedMsg struct {
	views []subdto.SessionView
	err   error
}

type detailLoadedMsg struct {
	detail sessiondto.SessionDetailOutput
	err    error
}

type sessionSavedMsg struct {
	out sessiondto.SessionOutput
	err error
}

type sessionDeletedMsg struct{ err error }

type contentSavedMsg struct {
	out sessiondto.ContentOutput
	err error
}

type contentDeletedMsg struct {
	sessionID int64
	err       error
}

type subscriptionToggledMsg struct {
	out subdto.ToggleOutput
	err error
}

type completionMarkedMsg struct {
	out subdto.SubscriptionOutput
	err error
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns the navigator state, the list
// selections, the active form, and the single-slot status message. Business
// rules live behind the two ports; the model only routes keys and renders.
type Model struct {
	user     rosterdto.UserOutput
	sessions sessionPort
	subs     subscriptionPort

	screen     screen
	views      []subdto.SessionView
	selected   int
	detail     sessiondto.SessionDetailOutput
	contentSel int
	form       components.Form
	filter     subdto.Filter
	status     string
	loading    bool
	spin       spinner.Model
	width      int
	height     int
}

func NewModel(user rosterdto.UserOutput, sessions sessionPort, subs subscriptionPort) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Hot
	return Model{
		user:     user,
		sessions: sessions,
		subs:     subs,
		screen:   screen{kind: screenHome},
		filter:   subdto.FilterAllAvailable,
		status:   "ready",
		spin:     sp,
	}
}

func (m Model) role() rosterdomain.Role {
	return rosterdomain.Role(m.user.Role)
}

func (m Model) isCoach() bool {
	return m.role() == rosterdomain.RoleCoach
}

func (m Model) Init() tea.Cmd {
	return m.spin.Tick
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case viewsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.status = "load sessions: " + msg.err.Error()
			return m, nil
		}
		m.views = msg.views
		m.selected = 0
		return m, nil

	case detailLoadedMsg:
		if msg.err != nil {
			m.status = "load session: " + msg.err.Error()
			m.screen = screen{kind: screenSessionList}
			return m, m.loadViewsCmd()
		}
		m.detail = msg.detail
		m.contentSel = 0
		return m, nil

	case sessionSavedMsg:
		if msg.err != nil {
			m.status = "save failed: " + msg.err.Error()
			return m, nil
		}
		m.status = "saved: " + msg.out.Title
		m.screen = screen{kind: screenSessionList}
		return m, m.loadViewsCmd()

	case sessionDeletedMsg:
		if msg.err != nil {
			m.status = "delete failed: " + msg.err.Error()
		} else {
			m.status = "session deleted"
		}
		m.screen = screen{kind: screenSessionList}
		return m, m.loadViewsCmd()

	case contentSavedMsg:
		if msg.err != nil {
			m.status = "save failed: " + msg.err.Error()
			return m, nil
		}
		m.status = "saved: " + msg.out.Title
		m.screen = screen{kind: screenSessionDetail, sessionID: msg.out.SessionID}
		return m, m.loadDetailCmd(msg.out.SessionID)

	case contentDeletedMsg:
		if msg.err != nil {
			m.status = "delete failed: " + msg.err.Error()
		} else {
			m.status = "content removed"
		}
		m.screen = screen{kind: screenSessionDetail, sessionID: msg.sessionID}
		return m, m.loadDetailCmd(msg.sessionID)

	case subscriptionToggledMsg:
		if msg.err != nil {
			m.status = "subscription: " + msg.err.Error()
			return m, nil
		}
		if msg.out.Subscribed {
			m.status = "subscribed"
		} else {
			m.status = "unsubscribed"
		}
		return m, m.loadViewsCmd()

	case completionMarkedMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
			return m, nil
		}
		m.status = "marked complete"
		return m, m.loadViewsCmd()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// Form and confirmation screens intercept everything before the global
	// bindings so typed text can contain the global keys.
	if m.screen.isForm() {
		return m.handleFormKey(msg)
	}
	switch m.screen.kind {
	case screenSessionDelete:
		return m.handleSessionDeleteKey(msg)
	case screenContentDelete:
		return m.handleContentDeleteKey(msg)
	case screenHelp:
		// Help always returns to Home, whatever closed it.
		m.screen = screen{kind: screenHome}
		m.selected = 0
		return m, nil
	}

	switch msg.String() {
	case "q", "Q", "esc":
		if m.screen.kind == screenHome {
			return m, tea.Quit
		}
		m.screen = screen{kind: screenHome}
		m.selected = 0
		return m, nil
	case "1":
		m.screen = screen{kind: screenHome}
		m.selected = 0
		return m, nil
	case "2":
		m.screen = screen{kind: screenSessionList}
		m.loading = true
		return m, m.loadViewsCmd()
	case "?":
		m.screen = screen{kind: screenHelp}
		return m, nil
	}

	switch m.screen.kind {
	case screenSessionList:
		return m.handleListKey(msg)
	case screenSessionDetail:
		return m.handleDetailKey(msg)
	}
	return m, nil
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	acts := enabledActions(screenSessionList, m.role())

	switch msg.String() {
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(m.views)-1 {
			m.selected++
		}
	case "enter":
		if view, ok := m.selectedView(); ok {
			m.screen = screen{kind: screenSessionDetail, sessionID: view.Session.ID}
			return m, m.loadDetailCmd(view.Session.ID)
		}
	case "c", "C":
		if allowed(acts, actionCreate) {
			m.form = newSessionForm("Create Session", sessiondto.SessionFields{})
			m.screen = screen{kind: screenSessionCreate}
		}
	case "e", "E":
		if view, ok := m.selectedView(); ok && allowed(acts, actionEdit) {
			m.form = newSessionForm("Edit Session", sessionFields(view.Session))
			m.screen = screen{kind: screenSessionEdit, sessionID: view.Session.ID}
		}
	case "d", "D":
		if view, ok := m.selectedView(); ok && allowed(acts, actionDelete) {
			m.screen = screen{kind: screenSessionDelete, sessionID: view.Session.ID}
		}
	case "s", "S":
		if view, ok := m.selectedView(); ok && allowed(acts, actionToggleSubscribe) {
			return m, m.toggleCmd(view.Session.ID)
		}
	case "f", "F":
		if allowed(acts, actionFilter) {
			m.filter = m.filter.Toggle()
			m.status = "showing: " + m.filter.Label()
			m.loading = true
			return m, m.loadViewsCmd()
		}
	case "m", "M":
		if view, ok := m.selectedView(); ok && allowed(acts, actionMarkComplete) {
			return m, m.completeCmd(view.Session.ID)
		}
	}
	return m, nil
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	acts := enabledActions(screenSessionDetail, m.role())

	switch msg.String() {
	case "up", "k":
		if m.contentSel > 0 {
			m.contentSel--
		}
	case "down", "j":
		if m.contentSel < len(m.detail.Content)-1 {
			m.contentSel++
		}
	case "t", "T":
		if allowed(acts, actionManageContent) {
			m.form = newContentForm("Add Training Content", sessiondto.ContentFields{})
			m.screen = screen{kind: screenContentCreate, sessionID: m.screen.sessionID}
		}
	case "e", "E":
		if item, ok := m.selectedContent(); ok && allowed(acts, actionEdit) {
			m.form = newContentForm("Edit Training Content", contentFields(item))
			m.screen = screen{kind: screenContentEdit, sessionID: item.SessionID, contentID: item.ID}
		}
	case "d", "D":
		if item, ok := m.selectedContent(); ok && allowed(acts, actionDelete) {
			m.screen = screen{kind: screenContentDelete, sessionID: item.SessionID, contentID: item.ID}
		}
	case "s", "S":
		if allowed(acts, actionToggleSubscribe) {
			return m, m.toggleCmd(m.screen.sessionID)
		}
	case "m", "M":
		if allowed(acts, actionMarkComplete) {
			return m, m.completeCmd(m.screen.sessionID)
		}
	}
	return m, nil
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.status = "cancelled"
		return m.leaveForm()
	case "enter":
		if err := m.form.Validate(); err != nil {
			m.status = err.Error()
			return m, nil
		}
		return m.submitForm()
	}
	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

// leaveForm discards the active form and returns to the screen it was opened
// from: content forms go back to the session detail, session forms to the list.
func (m Model) leaveForm() (tea.Model, tea.Cmd) {
	switch m.screen.kind {
	case screenContentCreate, screenContentEdit:
		sessionID := m.screen.sessionID
		m.screen = screen{kind: screenSessionDetail, sessionID: sessionID}
		return m, m.loadDetailCmd(sessionID)
	default:
		m.screen = screen{kind: screenSessionList}
		return m, m.loadViewsCmd()
	}
}

func (m Model) submitForm() (tea.Model, tea.Cmd) {
	switch m.screen.kind {
	case screenSessionCreate:
		input := sessiondto.CreateSessionInput{Fields: m.formSessionFields(), CoachID: m.user.ID}
		return m, m.createSessionCmd(input)
	case screenSessionEdit:
		input := sessiondto.UpdateSessionInput{ID: m.screen.sessionID, Fields: m.formSessionFields()}
		return m, m.updateSessionCmd(input)
	case screenContentCreate:
		input := sessiondto.CreateContentInput{SessionID: m.screen.sessionID, Fields: m.formContentFields()}
		return m, m.addContentCmd(input)
	case screenContentEdit:
		input := sessiondto.UpdateContentInput{ID: m.screen.contentID, Fields: m.formContentFields()}
		return m, m.updateContentCmd(input)
	}
	return m, nil
}

func (m Model) handleSessionDeleteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		return m, m.deleteSessionCmd(m.screen.sessionID)
	case "n", "N", "esc":
		m.status = "delete cancelled"
		m.screen = screen{kind: screenSessionList}
		return m, m.loadViewsCmd()
	}
	return m, nil
}

func (m Model) handleContentDeleteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		return m, m.deleteContentCmd(m.screen.sessionID, m.screen.contentID)
	case "n", "N", "esc":
		m.status = "delete cancelled"
		sessionID := m.screen.sessionID
		m.screen = screen{kind: screenSessionDetail, sessionID: sessionID}
		return m, m.loadDetailCmd(sessionID)
	}
	return m, nil
}

// ─── selection helpers ────────────────────────────────────────────────────────

func (m Model) selectedView() (subdto.SessionView, bool) {
	if m.selected < 0 || m.selected >= len(m.views) {
		return subdto.SessionView{}, false
	}
	return m.views[m.selected], true
}

// viewForSession finds the loaded listing entry for a session, carrying the
// player's subscription state onto the detail screen.
func (m Model) viewForSession(id int64) (subdto.SessionView, bool) {
	for _, view := range m.views {
		if view.Session.ID == id {
			return view, true
		}
	}
	return subdto.SessionView{}, false
}

func (m Model) selectedContent() (sessiondto.ContentOutput, bool) {
	if m.contentSel < 0 || m.contentSel >= len(m.detail.Content) {
		return sessiondto.ContentOutput{}, false
	}
	return m.detail.Content[m.contentSel], true
}

// ─── forms ───────────────────────────────────────────────────────────────────

func newSessionForm(title string, f sessiondto.SessionFields) components.Form {
	skillOpts := []string{""}
	for _, s := range rosterdomain.SkillLevels() {
		skillOpts = append(skillOpts, string(s))
	}
	return components.NewForm(title,
		components.TextField("title", "Title", f.Title,
			components.Required("Title"),
			components.MinLen("Title", 3),
			components.MaxLen("Title", 100)),
		components.TextField("description", "Description", f.Description,
			components.MaxLen("Description", 500)),
		components.TextField("date", "Date (YYYY-MM-DD)", f.ScheduledDate,
			components.DateYMD()),
		components.TextField("time", "Time (HH:MM)", f.ScheduledTime,
			components.TimeHM()),
		components.NumberField("duration", "Duration (minutes)", minutesValue(f.DurationMinutes),
			components.NumberBetween("Duration", 5, 480)),
		components.EnumField("skill", "Skill Level", skillOpts, f.SkillLevel),
	)
}

func newContentForm(title string, f sessiondto.ContentFields) components.Form {
	typeOpts := make([]string, 0, 4)
	for _, t := range sessiondomain.ContentTypes() {
		typeOpts = append(typeOpts, string(t))
	}
	return components.NewForm(title,
		components.EnumField("type", "Type", typeOpts, f.Type),
		components.TextField("title", "Title", f.Title,
			components.Required("Title"),
			components.MinLen("Title", 2),
			components.MaxLen("Title", 100)),
		components.TextField("description", "Description", f.Description,
			components.MaxLen("Description", 500)),
		components.NumberField("duration", "Duration (minutes)", minutesValue(f.DurationMinutes),
			components.NumberBetween("Duration", 1, 480)),
	)
}

func (m Model) formSessionFields() sessiondto.SessionFields {
	return sessiondto.SessionFields{
		Title:           m.form.Value("title"),
		Description:     m.form.Value("description"),
		ScheduledDate:   m.form.Value("date"),
		ScheduledTime:   m.form.Value("time"),
		DurationMinutes: m.form.IntValue("duration"),
		SkillLevel:      m.form.Value("skill"),
	}
}

func (m Model) formContentFields() sessiondto.ContentFields {
	return sessiondto.ContentFields{
		Type:            m.form.Value("type"),
		Title:           m.form.Value("title"),
		Description:     m.form.Value("description"),
		DurationMinutes: m.form.IntValue("duration"),
	}
}

func sessionFields(s sessiondto.SessionOutput) sessiondto.SessionFields {
	return sessiondto.SessionFields{
		Title:           s.Title,
		Description:     s.Description,
		ScheduledDate:   s.ScheduledDate,
		ScheduledTime:   s.ScheduledTime,
		DurationMinutes: s.DurationMinutes,
		SkillLevel:      s.SkillLevel,
	}
}

func contentFields(c sessiondto.ContentOutput) sessiondto.ContentFields {
	return sessiondto.ContentFields{
		Type:            c.Type,
		Title:           c.Title,
		Description:     c.Description,
		DurationMinutes: c.DurationMinutes,
	}
}

func minutesValue(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}

// ─── async commands ───────────────────────────────────────────────────────────

// loadViewsCmd reloads the listing: a coach sees their own sessions, a player
// sees all sessions annotated with their subscription, narrowed by the filter.
func (m Model) loadViewsCmd() tea.Cmd {
	return func() tea.Msg {
		if m.isCoach() {
			sessions, err := m.sessions.ListByCoach(context.Background(), m.user.ID)
			if err != nil {
				return viewsLoadedMsg{err: err}
			}
			views := make([]subdto.SessionView, len(sessions))
			for i, s := range sessions {
				views[i] = subdto.SessionView{Session: s}
			}
			return viewsLoadedMsg{views: views}
		}
		views, err := m.subs.ListForPlayer(context.Background(), m.user.ID, m.filter)
		return viewsLoadedMsg{views: views, err: err}
	}
}

func (m Model) loadDetailCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		detail, err := m.sessions.Get(context.Background(), id)
		return detailLoadedMsg{detail: detail, err: err}
	}
}

func (m Model) createSessionCmd(input sessiondto.CreateSessionInput) tea.Cmd {
	return func() tea.Msg {
		out, err := m.sessions.Create(context.Background(), input)
		return sessionSavedMsg{out: out, err: err}
	}
}

func (m Model) updateSessionCmd(input sessiondto.UpdateSessionInput) tea.Cmd {
	return func() tea.Msg {
		out, err := m.sessions.Update(context.Background(), input)
		return sessionSavedMsg{out: out, err: err}
	}
}

func (m Model) deleteSessionCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		return sessionDeletedMsg{err: m.sessions.Delete(context.Background(), id)}
	}
}

func (m Model) addContentCmd(input sessiondto.CreateContentInput) tea.Cmd {
	return func() tea.Msg {
		out, err := m.sessions.AddContent(context.Background(), input)
		return contentSavedMsg{out: out, err: err}
	}
}

func (m Model) updateContentCmd(input sessiondto.UpdateContentInput) tea.Cmd {
	return func() tea.Msg {
		out, err := m.sessions.UpdateContent(context.Background(), input)
		return contentSavedMsg{out: out, err: err}
	}
}

func (m Model) deleteContentCmd(sessionID, contentID int64) tea.Cmd {
	return func() tea.Msg {
		return contentDeletedMsg{
			sessionID: sessionID,
			err:       m.sessions.DeleteContent(context.Background(), contentID),
		}
	}
}

func (m Model) toggleCmd(sessionID int64) tea.Cmd {
	return func() tea.Msg {
		out, err := m.subs.Toggle(context.Background(), m.user.ID, sessionID)
		return subscriptionToggledMsg{out: out, err: err}
	}
}

func (m Model) completeCmd(sessionID int64) tea.Cmd {
	return func() tea.Msg {
		out, err := m.subs.MarkComplete(context.Background(), m.user.ID, sessionID)
		return completionMarkedMsg{out: out, err: err}
	}
}
