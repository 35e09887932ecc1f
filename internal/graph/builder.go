package graph

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/richxcame/fraudwatch/pkg/models"
)

// Node group values used by the force-directed view
const (
	GroupDevice  = "device"
	GroupAccount = "account"
)

// Node is one vertex of the relationship graph
type Node struct {
	ID        string  `json:"id"`
	Group     string  `json:"group"`
	RiskScore float64 `json:"risk_score"`
	Label     string  `json:"label"`
}

// Link is one crossing rendered as an edge
type Link struct {
	Source   string           `json:"source"`
	Target   string           `json:"target"`
	Value    int              `json:"value"`
	RiskFlag models.RiskLevel `json:"risk_flag"`
}

// Graph is the node/link structure consumed by the dashboard's
// force-directed visualization
type Graph struct {
	Nodes []Node `json:"nodes"`
	Links []Link `json:"links"`
}

// DeviceLookup resolves a device id to its record, or nil when the record
// no longer exists.
type DeviceLookup func(id uuid.UUID) *models.Device

// AccountLookup resolves an account id to its record, or nil when the
// record no longer exists.
type AccountLookup func(id uuid.UUID) *models.Account

// Builder assembles device-account relationship graphs from crossings
type Builder struct{}

// NewBuilder creates a graph builder
func NewBuilder() *Builder {
	return &Builder{}
}

// Build walks the crossings in the given order and produces the graph.
// Each distinct device or account id is resolved through its lookup at most
// once; the first successful resolution supplies the node's label and score.
// A crossing contributes an edge only when both endpoints resolved to
// existing records. Missing records are skipped silently: no partial node or
// edge is emitted and no error surfaces.
//
// Node order is first-seen order, link order is input order, so the result
// is deterministic for deterministic input.
func (b *Builder) Build(crossings []models.Crossing, deviceLookup DeviceLookup, accountLookup AccountLookup) *Graph {
	g := &Graph{
		Nodes: make([]Node, 0, len(crossings)*2),
		Links: make([]Link, 0, len(crossings)),
	}

	seen := make(map[uuid.UUID]bool, len(crossings)*2)
	resolved := make(map[uuid.UUID]bool, len(crossings)*2)

	for _, c := range crossings {
		if !seen[c.DeviceID] {
			seen[c.DeviceID] = true
			if device := deviceLookup(c.DeviceID); device != nil {
				resolved[c.DeviceID] = true
				g.Nodes = append(g.Nodes, Node{
					ID:        c.DeviceID.String(),
					Group:     GroupDevice,
					RiskScore: device.RiskScore,
					Label:     fmt.Sprintf("%s - %s", device.OS, device.Browser),
				})
			}
		}

		if !seen[c.AccountID] {
			seen[c.AccountID] = true
			if account := accountLookup(c.AccountID); account != nil {
				resolved[c.AccountID] = true
				g.Nodes = append(g.Nodes, Node{
					ID:        c.AccountID.String(),
					Group:     GroupAccount,
					RiskScore: account.RiskScore,
					Label:     fmt.Sprintf("Account (%s)", account.KYCLevel),
				})
			}
		}

		if resolved[c.DeviceID] && resolved[c.AccountID] {
			g.Links = append(g.Links, Link{
				Source:   c.DeviceID.String(),
				Target:   c.AccountID.String(),
				Value:    1,
				RiskFlag: c.RiskFlag,
			})
		}
	}

	return g
}
