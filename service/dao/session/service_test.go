package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/shellsim/model"
	"github.com/viant/shellsim/service/dao"
)

func newSession(id, user, host string) *model.Session {
	ret := model.NewSession(user, host)
	ret.ID = id
	return ret
}

func TestService_List(t *testing.T) {
	ctx := context.Background()
	srv := New()
	for _, session := range []*model.Session{
		newSession("3", "operator", "workstation"),
		newSession("1", "root", "workstation"),
		newSession("2", "operator", "bastion"),
	} {
		assert.NoError(t, srv.Save(ctx, session))
	}

	testCases := []struct {
		name       string
		parameters []*dao.Parameter
		expect     []string
	}{
		{name: "all ordered by id", expect: []string{"1", "2", "3"}},
		{name: "by user", parameters: []*dao.Parameter{dao.NewParameter(ByUser, "operator")}, expect: []string{"2", "3"}},
		{name: "by user and host", parameters: []*dao.Parameter{dao.NewParameter(ByUser, "operator"), dao.NewParameter(ByHost, "bastion")}, expect: []string{"2"}},
		{name: "by any host", parameters: []*dao.Parameter{dao.NewParameter(ByHost, "bastion", "workstation")}, expect: []string{"1", "2", "3"}},
		{name: "no match", parameters: []*dao.Parameter{dao.NewParameter(ByUser, "mallory")}, expect: []string{}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sessions, err := srv.List(ctx, tc.parameters...)
			assert.NoError(t, err)
			ids := []string{}
			for _, session := range sessions {
				ids = append(ids, session.ID)
			}
			assert.Equal(t, tc.expect, ids)
		})
	}
}

func TestService_Apply(t *testing.T) {
	ctx := context.Background()
	srv := New()
	assert.NoError(t, srv.Save(ctx, newSession("s1", "operator", "workstation")))

	result := &model.Result{Kind: model.KindOutput, NewWorkingDirectory: "/etc"}
	updated, err := srv.Apply(ctx, "s1", result)
	assert.NoError(t, err)
	assert.Equal(t, "/etc", updated.WorkingDirectory)

	conn := &model.Connection{Type: model.ConnectionSSH, Host: "10.0.0.5", Port: "22", User: "root"}
	_, err = srv.Apply(ctx, "s1", model.NewSuccess("").WithConnection(conn))
	assert.NoError(t, err)

	stored, err := srv.Load(ctx, "s1")
	assert.NoError(t, err)
	assert.Equal(t, "/etc", stored.WorkingDirectory)
	assert.Equal(t, []*model.Connection{conn}, stored.ActiveConnections)

	_, err = srv.Apply(ctx, "missing", result)
	assert.ErrorIs(t, err, dao.ErrNotFound)
}
