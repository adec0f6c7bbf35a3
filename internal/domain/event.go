package domain

import (
	"strings"
	"time"

	"overstay/pkg/e"
)

const (
	DefaultSignOutEventType = "visitor.sign_out"
	DefaultSignInAttribute  = "sign-in-time"
	DefaultSignOutAttribute = "sign-out-time"
)

// VisitorEvent is the webhook body sent by the visitor-management platform.
type VisitorEvent struct {
	Type string    `json:"type"`
	Data EventData `json:"data"`
}

type EventData struct {
	Visitor *Visitor `json:"visitor"`
}

type Visitor struct {
	ID         string         `json:"id,omitempty"`
	Attributes map[string]any `json:"attributes"`
}

// AttributeKeys names the visitor attributes holding the timestamps.
type AttributeKeys struct {
	SignIn  string
	SignOut string
}

func DefaultAttributeKeys() AttributeKeys {
	return AttributeKeys{SignIn: DefaultSignInAttribute, SignOut: DefaultSignOutAttribute}
}

func IsSignOut(ev VisitorEvent, signOutType string) bool {
	return ev.Type == signOutType
}

type OutcomeStatus string

const (
	OutcomeIgnored      OutcomeStatus = "ignored"
	OutcomeUnconfigured OutcomeStatus = "unconfigured"
	OutcomeEvaluated    OutcomeStatus = "evaluated"
)

const (
	MessageIgnored      = "Ignored non-sign-out event"
	MessageUnconfigured = "No config set"
)

type EventOutcome struct {
	Status     OutcomeStatus
	Message    string
	Evaluation *Evaluation
}

// ParseTimestamp reads an RFC 3339 attribute value.
func ParseTimestamp(field string, v any) (time.Time, error) {
	if v == nil {
		return time.Time{}, &e.MalformedEventError{Field: field, Reason: "missing"}
	}
	s, ok := v.(string)
	if !ok {
		return time.Time{}, &e.MalformedEventError{Field: field, Reason: "unparsable"}
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, &e.MalformedEventError{Field: field, Reason: "missing"}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, &e.MalformedEventError{Field: field, Reason: "unparsable"}
	}
	return t, nil
}

// StayTimes extracts both timestamps, sign-in first.
func StayTimes(v *Visitor, keys AttributeKeys) (signIn, signOut time.Time, err error) {
	if v == nil {
		return time.Time{}, time.Time{}, &e.MalformedEventError{Field: "visitor", Reason: "missing"}
	}
	if v.Attributes == nil {
		return time.Time{}, time.Time{}, &e.MalformedEventError{Field: "visitor attributes", Reason: "missing"}
	}
	signIn, err = ParseTimestamp(keys.SignIn, v.Attributes[keys.SignIn])
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	signOut, err = ParseTimestamp(keys.SignOut, v.Attributes[keys.SignOut])
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return signIn, signOut, nil
}
