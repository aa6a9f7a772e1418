// Package session synchronizes the live scene over WebSockets. Viewers join
// the scene room and receive the full draw-command list on every change;
// control clients additionally submit base moves and IK queries. Engine
// access is guarded by the engine's own mutex, so a scene broadcast always
// observes a fully-updated pose.
package session

import (
	"encoding/json"

	"github.com/rigview/rigview/backend-go/internal/engine"
	"github.com/rigview/rigview/backend-go/internal/kinematics"
	"github.com/rigview/rigview/backend-go/internal/rig"
)

type Message struct {
	Type     string          `json:"type"`
	ViewerID string          `json:"viewerId,omitempty"`
	ClientID string          `json:"clientId,omitempty"`
	Payload  json.RawMessage `json:"payload,omitempty"`
}

const (
	// Server -> client
	TypeWelcome      = "welcome"
	TypeSceneUpdate  = "scene.update"
	TypeViewerJoin   = "viewer.join"
	TypeViewerLeave  = "viewer.leave"
	TypePointerState = "pointer.state"
	TypeIKResult     = "ik.result"
	TypeError        = "error"

	// Client -> server
	TypeBaseMove      = "base.move"
	TypeIKSolve       = "ik.solve"
	TypePointerUpdate = "pointer.update"
)

// WelcomePayload is sent once on connect.
type WelcomePayload struct {
	ViewerID string       `json:"viewerId"`
	Control  bool         `json:"control"`
	Rig      rig.Config   `json:"rig"`
	Scene    engine.Scene `json:"scene"`
}

// SceneUpdatePayload carries the freshly composed scene.
type SceneUpdatePayload struct {
	Scene engine.Scene `json:"scene"`
}

// BaseMovePayload is a click at local surface coordinates.
type BaseMovePayload struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// IKSolvePayload is a solve request for a target in the arm-local frame.
type IKSolvePayload struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// IKResultPayload answers an ik.solve. Exactly one of Angles or Error is set.
type IKResultPayload struct {
	Angles *kinematics.JointAngles `json:"angles,omitempty"`
	Error  string                  `json:"error,omitempty"`
}

// PointerPayload is a viewer's pointer position on the surface.
type PointerPayload struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// PointerStatePayload is the pointer map sent to newly joined viewers.
type PointerStatePayload struct {
	Pointers map[string]*PointerPayload `json:"pointers"`
}

// ViewerJoinPayload announces a new viewer.
type ViewerJoinPayload struct {
	ViewerID string `json:"viewerId"`
	Control  bool   `json:"control"`
}

// ViewerLeavePayload announces a departed viewer.
type ViewerLeavePayload struct {
	ViewerID string `json:"viewerId"`
}

// ErrorPayload reports a rejected message.
type ErrorPayload struct {
	Reason string `json:"reason"`
}
