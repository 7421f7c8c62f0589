package criteria

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/shellsim/service/dao"
)

func TestMatch(t *testing.T) {
	testCases := []struct {
		name       string
		value      string
		parameters []*dao.Parameter
		expect     bool
	}{
		{name: "no parameters", value: "operator", expect: true},
		{name: "single value", value: "operator", parameters: []*dao.Parameter{dao.NewParameter("User", "operator")}, expect: true},
		{name: "single value mismatch", value: "root", parameters: []*dao.Parameter{dao.NewParameter("User", "operator")}, expect: false},
		{name: "any of values", value: "root", parameters: []*dao.Parameter{dao.NewParameter("User", "operator", "root")}, expect: true},
		{name: "other name ignored", value: "root", parameters: []*dao.Parameter{dao.NewParameter("Host", "bastion")}, expect: true},
		{name: "non string value ignored", value: "root", parameters: []*dao.Parameter{{Name: "User", Value: 7}}, expect: true},
		{name: "every parameter must hold", value: "root", parameters: []*dao.Parameter{dao.NewParameter("User", "root"), dao.NewParameter("User", "operator")}, expect: false},
		{name: "nil parameter skipped", value: "root", parameters: []*dao.Parameter{nil}, expect: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, Match("User", tc.value, tc.parameters))
		})
	}
}

func TestParameter_Values(t *testing.T) {
	assert.Equal(t, []string{"a"}, dao.NewParameter("x", "a").Values())
	assert.Equal(t, []string{"a", "b"}, dao.NewParameter("x", "a", "b").Values())
	assert.Nil(t, (&dao.Parameter{Name: "x", Value: 1}).Values())
}
