// Package session provides a caller side, in-memory session store. The engine
// never reads it: hosts load a session, execute a line against it and save
// the session after applying the result.
package session

import (
	"context"
	"sort"

	"github.com/viant/shellsim/model"
	"github.com/viant/shellsim/service/dao"
	"github.com/viant/shellsim/service/dao/criteria"
	"github.com/viant/shellsim/service/dao/store"
)

// Filter parameter names accepted by List.
const (
	ByUser = "User"
	ByHost = "Host"
)

// Service stores sessions by id
type Service struct {
	*store.MemoryStore[string, model.Session]
}

var _ dao.Service[string, model.Session] = (*Service)(nil)

// List returns matching sessions ordered by id.
func (s *Service) List(ctx context.Context, parameters ...*dao.Parameter) ([]*model.Session, error) {
	ret, err := s.MemoryStore.List(ctx, parameters...)
	if err != nil {
		return nil, err
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i].ID < ret[j].ID })
	return ret, nil
}

// Apply loads a session, folds result into it and saves it back.
func (s *Service) Apply(ctx context.Context, id string, result *model.Result) (*model.Session, error) {
	session, err := s.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	session.Apply(result)
	if err = s.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func matches(session *model.Session, parameters []*dao.Parameter) bool {
	return criteria.Match(ByUser, session.Username(), parameters) &&
		criteria.Match(ByHost, session.Hostname(), parameters)
}

// New creates an empty session store
func New() *Service {
	return &Service{MemoryStore: store.NewMemoryStore[string, model.Session](
		func(s *model.Session) string { return s.ID },
		store.WithClone[string, model.Session]((*model.Session).Clone),
		store.WithFilter[string, model.Session](matches),
	)}
}
