package tui

import (
	"context"
	"testing"

	"github.com/NeonGeckoCom/neon-hub-config/internal/adapter"
	"github.com/NeonGeckoCom/neon-hub-config/internal/app"
	"github.com/NeonGeckoCom/neon-hub-config/internal/validators"
	"github.com/NeonGeckoCom/neon-hub-config/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestLoginFlow(t *testing.T) (RootModel, *LoginModel, testDeps) {
	t.Helper()
	services, d := newTestServices(t)
	ctx := context.Background()
	v := validators.NewInputValidator()

	login := NewLoginModel(ctx, services, v)
	pages := map[string]tea.Model{
		pageLogin:   login,
		pageBaseURL: baseURLPage{newBaseURLEditor(ctx, services, v, pageLogin)},
	}
	return NewRootModel(pages, pageLogin, models.AppBuildInfo{}, services.Hub.BaseURL), login, d
}

func TestRootModel_CtrlCQuitsByUser(t *testing.T) {
	root, _, _ := newTestLoginFlow(t)

	next, cmd := root.Update(keyPress("ctrl+c"))

	assert.True(t, next.(RootModel).quitByUser)
	assert.NotNil(t, cmd)
}

func TestRootModel_SuccessfulLoginFinishesFlow(t *testing.T) {
	root, _, _ := newTestLoginFlow(t)

	next, cmd := root.Update(LoginResult{Username: "neon"})

	r := next.(RootModel)
	assert.Equal(t, "neon", r.username)
	assert.False(t, r.quitByUser)
	assert.NotNil(t, cmd)
}

func TestRootModel_BuildInfoToggle(t *testing.T) {
	root, _, _ := newTestLoginFlow(t)
	root.buildInfo = models.NewAppBuildInfo("1.2.3", "", "")

	next, _ := root.Update(tea.KeyMsg{Type: tea.KeyF1})
	r := next.(RootModel)
	require.True(t, r.showBuildInfo)
	assert.Contains(t, r.View(), "1.2.3")

	next, _ = r.Update(keyPress("esc"))
	assert.False(t, next.(RootModel).showBuildInfo)
}

func TestLoginModel_EmptyFieldsRejected(t *testing.T) {
	_, login, _ := newTestLoginFlow(t)

	_, cmd := login.Update(keyPress("enter"))

	assert.Nil(t, cmd)
	assert.Equal(t, app.MsgLoginRequired, login.errMsg)
	assert.False(t, login.submitting)
}

func TestLoginModel_SubmitsCredentials(t *testing.T) {
	_, login, d := newTestLoginFlow(t)
	login.inputs[0].SetValue("  neon ")
	login.inputs[1].SetValue("neon")
	login.Update(keyPress("ctrl+t"))

	d.auth.EXPECT().
		Login(gomock.Any(), models.Credentials{Username: "neon", Password: "neon"}, true).
		Return(nil)

	_, cmd := login.Update(keyPress("enter"))
	require.NotNil(t, cmd)
	assert.True(t, login.submitting)

	res := cmd().(LoginResult)
	assert.Equal(t, "neon", res.Username)
	assert.NoError(t, res.Err)
}

func TestLoginModel_RejectedLoginShowsMessage(t *testing.T) {
	_, login, _ := newTestLoginFlow(t)
	login.submitting = true

	login.Update(LoginResult{Username: "neon", Err: adapter.ErrUnauthorized})

	assert.False(t, login.submitting)
	assert.Equal(t, app.MsgInvalidLoginPassword, login.errMsg)
}

func TestLoginModel_OpensBaseURLPage(t *testing.T) {
	root, _, _ := newTestLoginFlow(t)

	_, cmd := root.Update(tea.KeyMsg{Type: tea.KeyCtrlB})
	require.NotNil(t, cmd)

	nav, ok := cmd().(NavigateTo)
	require.True(t, ok)
	assert.Equal(t, pageBaseURL, nav.Page)

	next, _ := root.Update(nav)
	_, isEditor := next.(RootModel).current.(baseURLPage)
	assert.True(t, isEditor)
}

func TestBaseURLEditor_InvalidURLRejected(t *testing.T) {
	services, _ := newTestServices(t)
	e := newBaseURLEditor(context.Background(), services, validators.NewInputValidator(), "")
	e.input.SetValue("ftp://nope")

	cmd, done := e.update(keyPress("enter"))

	assert.Nil(t, cmd)
	assert.False(t, done)
	assert.Equal(t, app.MsgInvalidBaseURL, e.errMsg)
}

func TestBaseURLEditor_SavesOverride(t *testing.T) {
	services, d := newTestServices(t)
	e := newBaseURLEditor(context.Background(), services, validators.NewInputValidator(), "")
	e.input.SetValue("hub.local:9000")

	d.prefs.EXPECT().SetBaseURL(gomock.Any(), "hub.local:9000").Return("http://hub.local:9000", nil)

	cmd, done := e.update(keyPress("enter"))
	require.NotNil(t, cmd)
	assert.False(t, done)

	msg := cmd().(baseURLSavedMsg)
	assert.Equal(t, "http://hub.local:9000", msg.url)

	_, done = e.update(msg)
	assert.True(t, done)
}
