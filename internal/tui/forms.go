package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func newInput(placeholder string, limit int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Width = 40
	return in
}

func newPasswordInput(placeholder string) textinput.Model {
	in := newInput(placeholder, 128)
	in.EchoMode = textinput.EchoPassword
	in.EchoCharacter = '•'
	return in
}

// focusIndex moves focus across a ring of inputs. delta is +1/-1.
func focusIndex(cur, delta, n int) int {
	if n == 0 {
		return 0
	}
	cur += delta
	if cur < 0 {
		cur = n - 1
	}
	if cur >= n {
		cur = 0
	}
	return cur
}

func applyFocus(inputs []*textinput.Model, focus int) {
	for i, in := range inputs {
		if i == focus {
			in.Focus()
		} else {
			in.Blur()
		}
	}
}

func updateFocused(inputs []*textinput.Model, focus int, msg tea.Msg) tea.Cmd {
	if focus < 0 || focus >= len(inputs) {
		return nil
	}
	var cmd tea.Cmd
	*inputs[focus], cmd = inputs[focus].Update(msg)
	return cmd
}

func clearInputs(inputs []*textinput.Model) {
	for _, in := range inputs {
		in.SetValue("")
	}
}

type loginForm struct {
	username textinput.Model
	password textinput.Model
	focus    int
}

func newLoginForm() loginForm {
	f := loginForm{
		username: newInput("Username", 64),
		password: newPasswordInput("Password"),
	}
	applyFocus(f.inputs(), f.focus)
	return f
}

func (f *loginForm) inputs() []*textinput.Model {
	return []*textinput.Model{&f.username, &f.password}
}

type registerForm struct {
	fullName textinput.Model
	email    textinput.Model
	username textinput.Model
	password textinput.Model
	focus    int
}

func newRegisterForm() registerForm {
	f := registerForm{
		fullName: newInput("Full Name", 128),
		email:    newInput("Email Address", 128),
		username: newInput("Username", 64),
		password: newPasswordInput("Password"),
	}
	applyFocus(f.inputs(), f.focus)
	return f
}

func (f *registerForm) inputs() []*textinput.Model {
	return []*textinput.Model{&f.fullName, &f.email, &f.username, &f.password}
}

type searchForm struct {
	keyword  textinput.Model
	pageSize textinput.Model
	page     textinput.Model
	focus    int
}

func newSearchForm() searchForm {
	f := searchForm{
		keyword:  newInput("Keyword across all fields", 200),
		pageSize: newInput("Page size (1-100)", 3),
		page:     newInput("Page", 6),
	}
	f.pageSize.Width = 6
	f.page.Width = 6
	applyFocus(f.inputs(), f.focus)
	return f
}

func (f *searchForm) inputs() []*textinput.Model {
	return []*textinput.Model{&f.keyword, &f.pageSize, &f.page}
}

type createForm struct {
	incidentID  textinput.Model
	errorName   textinput.Model
	component   textinput.Model
	rootCause   textinput.Model
	remark      textinput.Model
	actionTaken textinput.Model
	startDate   textinput.Model
	startTime   textinput.Model
	endDate     textinput.Model
	endTime     textinput.Model
	focus       int
}

func newCreateForm() createForm {
	f := createForm{
		incidentID:  newInput("Incident ID (optional)", 64),
		errorName:   newInput("Error Name", 200),
		component:   newInput("Component", 100),
		rootCause:   newInput("Root Cause", 500),
		remark:      newInput("Remark", 500),
		actionTaken: newInput("Action Taken", 500),
		startDate:   newInput("Start Date (YYYY-MM-DD)", 10),
		startTime:   newInput("Start Time (HH:MM AM/PM)", 10),
		endDate:     newInput("End Date (YYYY-MM-DD)", 10),
		endTime:     newInput("End Time (HH:MM AM/PM)", 10),
	}
	applyFocus(f.inputs(), f.focus)
	return f
}

func (f *createForm) inputs() []*textinput.Model {
	return []*textinput.Model{
		&f.incidentID, &f.errorName, &f.component, &f.rootCause, &f.remark,
		&f.actionTaken, &f.startDate, &f.startTime, &f.endDate, &f.endTime,
	}
}

// updateForm edits a loaded incident. The status field is a picker over
// StatusChoices, not a free-text input.
type updateForm struct {
	id          textinput.Model
	rootCause   textinput.Model
	remark      textinput.Model
	actionTaken textinput.Model
	startTime   textinput.Model
	endTime     textinput.Model
	statusIdx   int
	focus       int
}

// updateFormStatusRow is the focus position of the status picker; it sits
// after the last text input.
const updateFormStatusRow = 6

func newUpdateForm() updateForm {
	f := updateForm{
		id:          newInput("Incident ID", 64),
		rootCause:   newInput("Root Cause", 500),
		remark:      newInput("Remark", 500),
		actionTaken: newInput("Action Taken", 500),
		startTime:   newInput("Start Time (HH:MM AM/PM)", 10),
		endTime:     newInput("End Time (HH:MM AM/PM)", 10),
	}
	applyFocus(f.inputs(), f.focus)
	return f
}

func (f *updateForm) inputs() []*textinput.Model {
	return []*textinput.Model{
		&f.id, &f.rootCause, &f.remark, &f.actionTaken, &f.startTime, &f.endTime,
	}
}

// usersForm covers both admin actions: role assignment and account status.
// Focus rows: 0 role username, 1 role picker, 2 status username, 3 active
// toggle.
type usersForm struct {
	roleUsername   textinput.Model
	roleIdx        int // -1 = nothing selected
	statusUsername textinput.Model
	active         bool
	focus          int
}

const (
	usersRowRoleUsername = iota
	usersRowRolePicker
	usersRowStatusUsername
	usersRowActiveToggle
	usersRowCount
)

func newUsersForm() usersForm {
	f := usersForm{
		roleUsername:   newInput("Username", 64),
		roleIdx:        -1,
		statusUsername: newInput("Username", 64),
		active:         true,
	}
	applyFocus(f.inputs(), 0)
	return f
}

func (f *usersForm) inputs() []*textinput.Model {
	return []*textinput.Model{&f.roleUsername, &f.statusUsername}
}

// focusedInput maps the focus row to the text input it targets, or -1 for
// picker/toggle rows.
func (f *usersForm) focusedInput() int {
	switch f.focus {
	case usersRowRoleUsername:
		return 0
	case usersRowStatusUsername:
		return 1
	default:
		return -1
	}
}

type deleteForm struct {
	incidentID textinput.Model
}

func newDeleteForm() deleteForm {
	f := deleteForm{incidentID: newInput("Incident ID", 64)}
	f.incidentID.Focus()
	return f
}
