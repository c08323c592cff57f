package waybill

import "errors"

// Domain errors for waybills.
var (
	ErrUnknownStatus     = errors.New("unknown waybill status")
	ErrUnknownNodeType   = errors.New("unknown node type")
	ErrUnknownNodeStatus = errors.New("unknown node status")
	ErrUnknownDocument   = errors.New("unknown document type")

	// Transition errors.
	ErrTerminalStatus    = errors.New("waybill is in a terminal status")
	ErrInvalidTransition = errors.New("transition not allowed")

	// Shape errors.
	ErrNoNodes           = errors.New("waybill has no nodes")
	ErrDuplicateNode     = errors.New("duplicate node type")
	ErrNodeOrder         = errors.New("nodes out of canonical order")
	ErrNodeInconsistency = errors.New("node status contradicts waybill status")
)
