package waybill

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TransitionPolicy controls which status changes are accepted.
type TransitionPolicy string

const (
	// PolicyMonotonic only moves forward through the canonical sequence;
	// exception is reachable from any non-terminal status.
	PolicyMonotonic TransitionPolicy = "monotonic"
	// PolicyFree accepts any target from a non-terminal status.
	PolicyFree TransitionPolicy = "free"
)

// ParseTransitionPolicy converts configuration input, defaulting to PolicyMonotonic.
func ParseTransitionPolicy(raw string) (TransitionPolicy, error) {
	switch TransitionPolicy(raw) {
	case "", PolicyMonotonic:
		return PolicyMonotonic, nil
	case PolicyFree:
		return PolicyFree, nil
	default:
		return "", fmt.Errorf("waybill: unknown transition policy %q", raw)
	}
}

// Event carries the operational details recorded with a transition.
type Event struct {
	Operator string
	Location string
	Remark   string
	At       time.Time
}

type nodeEffect struct {
	node   NodeType
	status NodeStatus
}

// effects maps a waybill status to the node it drives. Exception is resolved
// against the active node at transition time.
var effects = map[Status]nodeEffect{
	StatusPending:          {NodeLoading, NodePending},
	StatusFindingVehicle:   {NodeLoading, NodePending},
	StatusVehicleFound:     {NodeLoading, NodePending},
	StatusLoading:          {NodeLoading, NodeProcessing},
	StatusLoaded:           {NodeLoading, NodeCompleted},
	StatusSealed:           {NodeSealing, NodeCompleted},
	StatusCustomsDeclaring: {NodeCustomsDeclaration, NodeProcessing},
	StatusCustomsCleared:   {NodeCustomsDeclaration, NodeCompleted},
	StatusExited:           {NodeExit, NodeCompleted},
	StatusInTransit:        {NodeTransit, NodeProcessing},
	StatusDelivered:        {NodeDelivery, NodeCompleted},
	StatusCompleted:        {NodeDelivery, NodeCompleted},
}

// Machine is the single authority allowed to change a waybill's status. It
// updates the waybill and its nodes together.
type Machine struct {
	Policy TransitionPolicy
	Order  OrderPolicy
	NewID  func() string
	Now    func() time.Time
}

// NewMachine builds a Machine with uuid identifiers and the wall clock.
func NewMachine(policy TransitionPolicy, order OrderPolicy) *Machine {
	return &Machine{
		Policy: policy,
		Order:  order,
		NewID:  uuid.NewString,
		Now:    time.Now,
	}
}

// CanTransition reports whether moving from one status to another is allowed.
func (m *Machine) CanTransition(from, to Status) error {
	if !from.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownStatus, string(from))
	}
	if !to.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownStatus, string(to))
	}
	if from.IsTerminal() {
		return fmt.Errorf("%w: %s", ErrTerminalStatus, from)
	}
	if m.Policy == PolicyFree {
		return nil
	}
	if to == StatusException {
		return nil
	}
	if to.Rank() <= from.Rank() {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}
	return nil
}

// Transition applies a status change and the matching node effects, returning
// a new waybill. The input is never modified.
func (m *Machine) Transition(w Waybill, to Status, ev Event) (Waybill, error) {
	if err := m.CanTransition(w.Status, to); err != nil {
		return Waybill{}, fmt.Errorf("waybill %s: %w", w.WaybillNo, err)
	}
	at := ev.At
	if at.IsZero() {
		at = m.now()
	}

	out := w.Clone()
	out.Status = to
	out.UpdateTime = at

	if to == StatusException {
		m.markException(&out, ev, at)
		return out, nil
	}

	effect := effects[to]
	out.Nodes = m.ensureNodes(out.Nodes, effect.node)
	targetRank := effect.node.Rank()
	for i := range out.Nodes {
		n := &out.Nodes[i]
		rank := n.Type.Rank()
		switch {
		case rank < targetRank:
			if n.Status != NodeCompleted {
				n.Status = NodeCompleted
				if n.Timestamp == nil {
					n.Timestamp = timePtr(at)
				}
			}
		case rank == targetRank:
			n.Status = effect.status
			applyEvent(n, ev)
			if effect.status == NodeCompleted {
				n.Timestamp = timePtr(at)
			}
		default:
			// only reachable when the free policy moves backwards
			n.Status = NodePending
			n.Timestamp = nil
		}
	}
	return out, nil
}

func (m *Machine) markException(w *Waybill, ev Event, at time.Time) {
	if len(w.Nodes) == 0 {
		w.Nodes = []Node{{ID: m.newID(), Type: NodeLoading}}
	}
	idx := len(w.Nodes) - 1
	for i, n := range w.Nodes {
		if n.Status != NodeCompleted {
			idx = i
			break
		}
	}
	n := &w.Nodes[idx]
	n.Status = NodeException
	n.Timestamp = timePtr(at)
	applyEvent(n, ev)
}

// ensureNodes makes sure the target node exists. Under the prefix policy every
// canonical node before it is created as well.
func (m *Machine) ensureNodes(nodes []Node, target NodeType) []Node {
	existing := make(map[NodeType]Node, len(nodes))
	for _, n := range nodes {
		existing[n.Type] = n
	}
	targetRank := target.Rank()
	out := make([]Node, 0, len(nodes)+1)
	for _, t := range nodeOrder {
		n, ok := existing[t]
		switch {
		case ok:
			out = append(out, n)
		case t == target || (m.Order != OrderMonotonic && t.Rank() < targetRank):
			out = append(out, Node{ID: m.newID(), Type: t, Status: NodePending})
		}
	}
	return out
}

func applyEvent(n *Node, ev Event) {
	if ev.Operator != "" {
		n.Operator = ev.Operator
	}
	if ev.Location != "" {
		n.Location = ev.Location
	}
	if ev.Remark != "" {
		n.Remark = ev.Remark
	}
}

func (m *Machine) newID() string {
	if m.NewID == nil {
		return uuid.NewString()
	}
	return m.NewID()
}

func (m *Machine) now() time.Time {
	if m.Now == nil {
		return time.Now()
	}
	return m.Now()
}

func timePtr(t time.Time) *time.Time {
	return &t
}
