package tui

import (
	"os"
	"strings"

	"opslog-cli/internal/model"
	"opslog-cli/internal/session"
	"opslog-cli/internal/workspace"
)

type appModel struct {
	ctrl *session.Controller

	width  int
	height int

	view     view
	authPage authPage

	// Set once bootstrap succeeds. The profile restored from disk is only a
	// placeholder until then.
	profile model.Profile
	token   string

	state workspace.State

	// Exactly one of errMsg/okMsg is shown at a time; dispatching any new
	// action clears both.
	errMsg string
	okMsg  string

	bootstrapping bool

	login     loginForm
	register  registerForm
	search    searchForm
	create    createForm
	update    updateForm
	deleteReq deleteForm
	users     usersForm

	// approveIdx selects among the pending rows on the delete-approve tab.
	approveIdx int

	// Per-view fetch sequence numbers; responses older than the latest
	// issued for their view are dropped.
	seq map[workspace.View]int

	debugLogPath string
}

func newAppModel(ctrl *session.Controller) appModel {
	return appModel{
		ctrl:      ctrl,
		view:      viewAuth,
		authPage:  pageLogin,
		state:     workspace.NewState(),
		login:     newLoginForm(),
		register:  newRegisterForm(),
		search:    newSearchForm(),
		create:    newCreateForm(),
		update:    newUpdateForm(),
		deleteReq: newDeleteForm(),
		users:     newUsersForm(),
		seq:       map[workspace.View]int{},

		debugLogPath: strings.TrimSpace(os.Getenv("OPSLOG_DEBUG_LOG")),
	}
}

func (m *appModel) clearAlerts() {
	m.errMsg = ""
	m.okMsg = ""
}

func (m *appModel) nextSeq(v workspace.View) int {
	m.seq[v]++
	return m.seq[v]
}

func (m *appModel) stale(v workspace.View, seq int) bool {
	return seq != m.seq[v]
}

// applySession installs a hydrated session: workspace state is seeded, the
// search form reflects the default query and the role picker gets its
// default selection.
func (m *appModel) applySession(sess session.Session) {
	m.token = sess.Token
	m.profile = sess.Profile
	m.view = viewWorkspace
	m.state = workspace.NewState().
		WithMeta(sess.Meta).
		WithTabGuard(sess.Profile.Role)
	m.search.pageSize.SetValue("10")
	m.search.page.SetValue("1")
	if m.users.roleIdx < 0 && m.state.DefaultRole() != "" {
		m.users.roleIdx = 0
	}
}

// resetToAuth clears every workspace remnant and shows the login page.
func (m *appModel) resetToAuth() {
	m.token = ""
	m.profile = model.Profile{}
	m.state = workspace.NewState()
	m.view = viewAuth
	m.authPage = pageLogin
	m.login = newLoginForm()
	m.create = newCreateForm()
	m.update = newUpdateForm()
	m.deleteReq = newDeleteForm()
	m.users = newUsersForm()
	m.search = newSearchForm()
	m.approveIdx = 0
	m.seq = map[workspace.View]int{}
}

// pendingDeleteRequests filters the delete-requests list down to rows an
// approval can act on.
func (m appModel) pendingDeleteRequests() []model.DeleteRequest {
	var out []model.DeleteRequest
	for _, r := range m.state.DeleteRequests {
		if r.Status == model.DeleteRequestPending {
			out = append(out, r)
		}
	}
	return out
}
