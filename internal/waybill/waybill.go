package waybill

import "time"

// ============================================================================
// WAYBILL ENTITY
// ============================================================================

// Waybill is a single cross-border shipment record.
type Waybill struct {
	ID               string        `json:"id" validate:"required"`
	WaybillNo        string        `json:"waybill_no" validate:"required"`
	Status           Status        `json:"status" validate:"required"`
	CustomerID       string        `json:"customer_id,omitempty"`
	CustomerName     string        `json:"customer_name"`
	Origin           string        `json:"origin"`
	Destination      string        `json:"destination"`
	GoodsType        string        `json:"goods_type"`
	Weight           float64       `json:"weight" validate:"gte=0"`
	VehicleType      string        `json:"vehicle_type"`
	CustomsLocation  string        `json:"customs_location"`
	UnloadLocation   string        `json:"unload_location"`
	Quantity         int           `json:"quantity" validate:"gte=0"`
	LoadingTime      time.Time     `json:"loading_time"`
	LoadingWarehouse string        `json:"loading_warehouse"`
	OrderAmount      int64         `json:"order_amount" validate:"gte=0"`
	CreateTime       time.Time     `json:"create_time"`
	UpdateTime       time.Time     `json:"update_time"`
	Nodes            []Node        `json:"nodes" validate:"required,min=1,dive"`
	Documents        []Document    `json:"documents" validate:"dive"`
	DriverInfo       *DriverInfo   `json:"driver_info,omitempty"`
	VehicleInfo      *VehicleInfo  `json:"vehicle_info,omitempty"`
	OperatorInfo     *OperatorInfo `json:"operator_info,omitempty"`
	SalesmanInfo     *SalesmanInfo `json:"salesman_info,omitempty"`
}

// DriverInfo describes the assigned driver.
type DriverInfo struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	LicenseNo string `json:"license_no"`
	Avatar    string `json:"avatar,omitempty"`
}

// VehicleInfo describes the tractor and trailer.
type VehicleInfo struct {
	HeadNo       string `json:"head_no"`
	TrailerNo    string `json:"trailer_no"`
	HeadPhoto    string `json:"head_photo,omitempty"`
	TrailerPhoto string `json:"trailer_photo,omitempty"`
}

// OperatorInfo describes the responsible operator.
type OperatorInfo struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// SalesmanInfo describes the responsible salesman.
type SalesmanInfo struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Clone returns a deep copy so callers can derive new snapshots safely.
func (w Waybill) Clone() Waybill {
	out := w
	if w.Nodes != nil {
		out.Nodes = make([]Node, len(w.Nodes))
		for i, n := range w.Nodes {
			out.Nodes[i] = n.clone()
		}
	}
	if w.Documents != nil {
		out.Documents = append([]Document(nil), w.Documents...)
	}
	if w.DriverInfo != nil {
		d := *w.DriverInfo
		out.DriverInfo = &d
	}
	if w.VehicleInfo != nil {
		v := *w.VehicleInfo
		out.VehicleInfo = &v
	}
	if w.OperatorInfo != nil {
		o := *w.OperatorInfo
		out.OperatorInfo = &o
	}
	if w.SalesmanInfo != nil {
		s := *w.SalesmanInfo
		out.SalesmanInfo = &s
	}
	return out
}

func (n Node) clone() Node {
	out := n
	if n.Timestamp != nil {
		ts := *n.Timestamp
		out.Timestamp = &ts
	}
	if n.Documents != nil {
		out.Documents = append([]Document(nil), n.Documents...)
	}
	return out
}

// NodeByType returns the node of the given type.
func (w Waybill) NodeByType(t NodeType) (Node, bool) {
	for _, n := range w.Nodes {
		if n.Type == t {
			return n, true
		}
	}
	return Node{}, false
}

// ActiveNode is the first node that is not completed, or the last node when
// every node is completed.
func (w Waybill) ActiveNode() (Node, bool) {
	if len(w.Nodes) == 0 {
		return Node{}, false
	}
	for _, n := range w.Nodes {
		if n.Status != NodeCompleted {
			return n, true
		}
	}
	return w.Nodes[len(w.Nodes)-1], true
}

// ============================================================================
// STAGE
// ============================================================================

// StageInfo summarises where a waybill currently is in its lifecycle.
type StageInfo struct {
	Status     Status   `json:"status"`
	Label      string   `json:"label"`
	Terminal   bool     `json:"terminal"`
	Exception  bool     `json:"exception"`
	ActiveNode NodeType `json:"active_node,omitempty"`
	NodeLabel  string   `json:"node_label,omitempty"`
}

// Stage reports the current lifecycle stage of a waybill.
func Stage(w Waybill) (StageInfo, error) {
	label, err := w.Status.Label()
	if err != nil {
		return StageInfo{}, err
	}
	info := StageInfo{
		Status:    w.Status,
		Label:     label,
		Terminal:  w.Status.IsTerminal(),
		Exception: w.Status == StatusException,
	}
	if node, ok := w.ActiveNode(); ok {
		info.ActiveNode = node.Type
		if nl, err := node.Type.Label(); err == nil {
			info.NodeLabel = nl
		}
	}
	return info, nil
}

// ============================================================================
// CONSISTENCY
// ============================================================================

// Inconsistency describes a contradiction between a waybill and its nodes.
type Inconsistency struct {
	WaybillNo string   `json:"waybill_no"`
	NodeID    string   `json:"node_id,omitempty"`
	NodeType  NodeType `json:"node_type,omitempty"`
	Reason    string   `json:"reason"`
}

// CheckConsistency lists contradictions without failing.
func CheckConsistency(w Waybill) []Inconsistency {
	var out []Inconsistency
	hasExceptionNode := false
	for _, n := range w.Nodes {
		if n.Status != NodeException {
			continue
		}
		hasExceptionNode = true
		if w.Status != StatusException {
			out = append(out, Inconsistency{
				WaybillNo: w.WaybillNo,
				NodeID:    n.ID,
				NodeType:  n.Type,
				Reason:    "node is exception while waybill status is " + string(w.Status),
			})
		}
	}
	if w.Status == StatusException && !hasExceptionNode {
		out = append(out, Inconsistency{
			WaybillNo: w.WaybillNo,
			Reason:    "waybill is exception but no node records it",
		})
	}
	if w.Status == StatusCompleted {
		for _, n := range w.Nodes {
			if n.Status != NodeCompleted {
				out = append(out, Inconsistency{
					WaybillNo: w.WaybillNo,
					NodeID:    n.ID,
					NodeType:  n.Type,
					Reason:    "waybill is completed but node is " + string(n.Status),
				})
			}
		}
	}
	return out
}
