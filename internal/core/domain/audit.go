package domain

import "time"

// AuditAction identifies which authentication flow produced an audit event.
type AuditAction string

const (
	AuditSignup  AuditAction = "signup"
	AuditSignin  AuditAction = "signin"
	AuditRefresh AuditAction = "refresh"
)

// AuditOutcome records whether the flow succeeded or was denied.
type AuditOutcome string

const (
	AuditSuccess AuditOutcome = "success"
	AuditDenied  AuditOutcome = "denied"
)

// AuditEvent is an append-only record of an authentication outcome.
// Actor is the email the caller presented, which may or may not belong
// to an existing user.
type AuditEvent struct {
	Actor     string       `json:"actor"`
	Action    AuditAction  `json:"action"`
	Outcome   AuditOutcome `json:"outcome"`
	Timestamp time.Time    `json:"timestamp"`
}
