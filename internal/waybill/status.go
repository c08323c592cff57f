// Package waybill models the lifecycle of a cross-border shipment: the status
// vocabulary, the canonical node sequence and the single transition function
// that keeps a waybill and its nodes consistent.
package waybill

import (
	"fmt"
	"strings"
)

// Status is the waybill-level lifecycle status.
type Status string

const (
	StatusPending          Status = "pending"
	StatusFindingVehicle   Status = "finding_vehicle"
	StatusVehicleFound     Status = "vehicle_found"
	StatusLoading          Status = "loading"
	StatusLoaded           Status = "loaded"
	StatusSealed           Status = "sealed"
	StatusCustomsDeclaring Status = "customs_declaring"
	StatusCustomsCleared   Status = "customs_cleared"
	StatusExited           Status = "exited"
	StatusInTransit        Status = "in_transit"
	StatusDelivered        Status = "delivered"
	StatusCompleted        Status = "completed" // terminal
	StatusException        Status = "exception" // terminal
)

// Palette is a foreground/background colour pair.
type Palette struct {
	Foreground string `json:"foreground"`
	Background string `json:"background"`
}

// NeutralPalette is used for values outside the known vocabulary.
var NeutralPalette = Palette{Foreground: "#6B7280", Background: "#F3F4F6"}

// UnknownLabel is the display label for unrecognised enum values.
const UnknownLabel = "未知"

type statusInfo struct {
	label   string
	palette Palette
}

// canonical order; exception is kept last and sits outside the progression.
var statusOrder = []Status{
	StatusPending,
	StatusFindingVehicle,
	StatusVehicleFound,
	StatusLoading,
	StatusLoaded,
	StatusSealed,
	StatusCustomsDeclaring,
	StatusCustomsCleared,
	StatusExited,
	StatusInTransit,
	StatusDelivered,
	StatusCompleted,
	StatusException,
}

var statusTable = map[Status]statusInfo{
	StatusPending:          {"待处理", Palette{"#6B7280", "#F3F4F6"}},
	StatusFindingVehicle:   {"找车中", Palette{"#F59E0B", "#FEF3C7"}},
	StatusVehicleFound:     {"已找到车", Palette{"#10B981", "#D1FAE5"}},
	StatusLoading:          {"装车中", Palette{"#3B82F6", "#DBEAFE"}},
	StatusLoaded:           {"已装车", Palette{"#8B5CF6", "#EDE9FE"}},
	StatusSealed:           {"已施封", Palette{"#6366F1", "#E0E7FF"}},
	StatusCustomsDeclaring: {"报关中", Palette{"#EC4899", "#FCE7F3"}},
	StatusCustomsCleared:   {"已报关", Palette{"#14B8A6", "#CCFBF1"}},
	StatusExited:           {"已出境", Palette{"#22C55E", "#DCFCE7"}},
	StatusInTransit:        {"运输中", Palette{"#0EA5E9", "#E0F2FE"}},
	StatusDelivered:        {"已送达", Palette{"#84CC16", "#ECFCCB"}},
	StatusCompleted:        {"已完成", Palette{"#10B981", "#D1FAE5"}},
	StatusException:        {"异常", Palette{"#EF4444", "#FEE2E2"}},
}

// Statuses returns every status in canonical order.
func Statuses() []Status {
	out := make([]Status, len(statusOrder))
	copy(out, statusOrder)
	return out
}

// ParseStatus converts a raw string into a Status.
func ParseStatus(raw string) (Status, error) {
	s := Status(strings.TrimSpace(raw))
	if !s.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, raw)
	}
	return s, nil
}

// IsValid checks if the status is part of the vocabulary.
func (s Status) IsValid() bool {
	_, ok := statusTable[s]
	return ok
}

// IsTerminal reports whether no further transition is allowed.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusException
}

// Rank is the position in the canonical progression, -1 for unknown values.
func (s Status) Rank() int {
	for i, candidate := range statusOrder {
		if candidate == s {
			return i
		}
	}
	return -1
}

// Label returns the display label.
func (s Status) Label() (string, error) {
	info, ok := statusTable[s]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, string(s))
	}
	return info.label, nil
}

// Colors returns the foreground/background pair.
func (s Status) Colors() (Palette, error) {
	info, ok := statusTable[s]
	if !ok {
		return Palette{}, fmt.Errorf("%w: %q", ErrUnknownStatus, string(s))
	}
	return info.palette, nil
}

// Style is the display representation of a status.
type Style struct {
	Value    string  `json:"value"`
	Label    string  `json:"label"`
	Palette  Palette `json:"palette"`
	Terminal bool    `json:"terminal"`
	Unknown  bool    `json:"unknown,omitempty"`
}

// StyleOf resolves the display style for a raw status. Unknown values still
// produce a renderable fallback, alongside ErrUnknownStatus so callers can
// flag them.
func StyleOf(raw string) (Style, error) {
	info, ok := statusTable[Status(raw)]
	if !ok {
		return Style{Value: raw, Label: UnknownLabel, Palette: NeutralPalette, Unknown: true},
			fmt.Errorf("%w: %q", ErrUnknownStatus, raw)
	}
	return Style{
		Value:    raw,
		Label:    info.label,
		Palette:  info.palette,
		Terminal: Status(raw).IsTerminal(),
	}, nil
}
