package waybill

import (
	"fmt"
	"time"
)

// NodeType identifies one stage of the shipment process.
type NodeType string

const (
	NodeLoading            NodeType = "loading"
	NodeSealing            NodeType = "sealing"
	NodeCustomsDeclaration NodeType = "customs_declaration"
	NodeExit               NodeType = "exit"
	NodeTransit            NodeType = "transit"
	NodeDelivery           NodeType = "delivery"
)

var nodeOrder = []NodeType{
	NodeLoading,
	NodeSealing,
	NodeCustomsDeclaration,
	NodeExit,
	NodeTransit,
	NodeDelivery,
}

var nodeLabels = map[NodeType]string{
	NodeLoading:            "装车",
	NodeSealing:            "施封",
	NodeCustomsDeclaration: "报关",
	NodeExit:               "出境",
	NodeTransit:            "运输",
	NodeDelivery:           "送达",
}

// NodeTypes returns the canonical node sequence.
func NodeTypes() []NodeType {
	out := make([]NodeType, len(nodeOrder))
	copy(out, nodeOrder)
	return out
}

// ParseNodeType converts a raw string into a NodeType.
func ParseNodeType(raw string) (NodeType, error) {
	t := NodeType(raw)
	if !t.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownNodeType, raw)
	}
	return t, nil
}

// IsValid checks if the node type is known.
func (t NodeType) IsValid() bool {
	_, ok := nodeLabels[t]
	return ok
}

// Rank is the position in the canonical sequence, -1 for unknown values.
func (t NodeType) Rank() int {
	for i, candidate := range nodeOrder {
		if candidate == t {
			return i
		}
	}
	return -1
}

// Label returns the display label of the node type.
func (t NodeType) Label() (string, error) {
	label, ok := nodeLabels[t]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownNodeType, string(t))
	}
	return label, nil
}

// NodeStatus is the status of a single node.
type NodeStatus string

const (
	NodePending    NodeStatus = "pending"
	NodeProcessing NodeStatus = "processing"
	NodeCompleted  NodeStatus = "completed"
	NodeException  NodeStatus = "exception"
)

// IsValid checks if the node status is known.
func (s NodeStatus) IsValid() bool {
	switch s {
	case NodePending, NodeProcessing, NodeCompleted, NodeException:
		return true
	default:
		return false
	}
}

// Node is one stage of a waybill's process.
type Node struct {
	ID        string     `json:"id" validate:"required"`
	Type      NodeType   `json:"type" validate:"required"`
	Status    NodeStatus `json:"status" validate:"required"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
	Operator  string     `json:"operator,omitempty"`
	Location  string     `json:"location,omitempty"`
	Remark    string     `json:"remark,omitempty"`
	Documents []Document `json:"documents,omitempty" validate:"dive"`
}

// DocumentType classifies an uploaded artifact.
type DocumentType string

const (
	DocExitVideo       DocumentType = "exit_video"
	DocSealPhoto       DocumentType = "seal_photo"
	DocExitCertificate DocumentType = "exit_certificate"
	DocCustoms         DocumentType = "customs_doc"
	DocVehiclePhoto    DocumentType = "vehicle_photo"
	DocOther           DocumentType = "other"
)

var documentLabels = map[DocumentType]string{
	DocExitVideo:       "出境视频",
	DocSealPhoto:       "施封照片",
	DocExitCertificate: "出境证明",
	DocCustoms:         "报关单据",
	DocVehiclePhoto:    "车辆照片",
	DocOther:           "其他",
}

// IsValid checks if the document type is known.
func (t DocumentType) IsValid() bool {
	_, ok := documentLabels[t]
	return ok
}

// Label returns the display label of the document type.
func (t DocumentType) Label() (string, error) {
	label, ok := documentLabels[t]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownDocument, string(t))
	}
	return label, nil
}

// Document is an artifact attached to a waybill or node.
type Document struct {
	ID         string       `json:"id" validate:"required"`
	Type       DocumentType `json:"type" validate:"required"`
	Name       string       `json:"name"`
	URL        string       `json:"url"`
	UploadTime time.Time    `json:"upload_time"`
	Uploader   string       `json:"uploader"`
}
