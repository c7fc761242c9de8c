package memberfilter

import (
	"github.com/llehouerou/pccollector/internal/collection"
	"github.com/llehouerou/pccollector/internal/ui/action"
)

// Changed carries the whole filter after any toggle.
type Changed struct {
	Filter collection.MemberFilter
}

// ActionType implements action.Action.
func (a Changed) ActionType() string { return "memberfilter.changed" }

// Close signals the popup should close.
type Close struct{}

// ActionType implements action.Action.
func (a Close) ActionType() string { return "memberfilter.close" }

// ActionMsg creates an action.Msg for a memberfilter action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "memberfilter", Action: a}
}
