package timeline

import (
	"time"

	"github.com/silkroad-freight/freightboard/internal/waybill"
)

// State is the visual state of a timeline entry.
type State string

const (
	StateDone    State = "done"
	StateActive  State = "active"
	StateFailed  State = "failed"
	StateWaiting State = "waiting"
	StateUnknown State = "unknown"
)

// StateOf maps a node status to its visual state.
func StateOf(status waybill.NodeStatus) State {
	switch status {
	case waybill.NodeCompleted:
		return StateDone
	case waybill.NodeProcessing:
		return StateActive
	case waybill.NodeException:
		return StateFailed
	case waybill.NodePending:
		return StateWaiting
	default:
		return StateUnknown
	}
}

// Entry is one row of a waybill timeline.
type Entry struct {
	NodeID    string           `json:"node_id"`
	NodeType  waybill.NodeType `json:"node_type"`
	Label     string           `json:"label"`
	State     State            `json:"state"`
	Timestamp *time.Time       `json:"timestamp,omitempty"`
	Operator  string           `json:"operator,omitempty"`
	Location  string           `json:"location,omitempty"`
	Remark    string           `json:"remark,omitempty"`
	Documents int              `json:"documents"`
	Last      bool             `json:"last"`
}

// Entries derives the timeline rows of a node list in input order. Node
// types without a label keep their raw value.
func Entries(nodes []waybill.Node) []Entry {
	out := make([]Entry, 0, len(nodes))
	for i, n := range nodes {
		label, err := n.Type.Label()
		if err != nil {
			label = string(n.Type)
		}
		out = append(out, Entry{
			NodeID:    n.ID,
			NodeType:  n.Type,
			Label:     label,
			State:     StateOf(n.Status),
			Timestamp: n.Timestamp,
			Operator:  n.Operator,
			Location:  n.Location,
			Remark:    n.Remark,
			Documents: len(n.Documents),
			Last:      i == len(nodes)-1,
		})
	}
	return out
}
