package session

import (
	"encoding/json"
	"errors"
	"log/slog"
	"sync"

	"github.com/rigview/rigview/backend-go/internal/engine"
	"github.com/rigview/rigview/backend-go/internal/kinematics"
)

// Hub owns the one scene room: every connected client sees the same rig.
// Message handling runs on each client's read-pump goroutine (and HTTP
// handlers broadcast after their own engine calls), so engine safety comes
// from the engine's mutex, not from the hub. The Run goroutine only
// serializes client registration and removal.
type Hub struct {
	mu         sync.RWMutex
	engine     *engine.Engine
	clients    map[string]*Client // clientID -> client
	pointers   *PointerManager
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
}

func NewHub(eng *engine.Engine) *Hub {
	return &Hub{
		engine:     eng,
		clients:    make(map[string]*Client),
		pointers:   NewPointerManager(),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.addClient(client)
		case client := <-h.unregister:
			h.removeClient(client)
		case <-h.done:
			return
		}
	}
}

// Stop terminates the Run loop.
func (h *Hub) Stop() {
	close(h.done)
}

func (h *Hub) Register(client *Client) {
	h.register <- client
}

func (h *Hub) addClient(client *Client) {
	h.mu.Lock()
	h.clients[client.ClientID] = client
	h.mu.Unlock()

	// The newcomer gets the full picture: rig config, current scene, and
	// everyone's pointers.
	welcomePayload, _ := json.Marshal(WelcomePayload{
		ViewerID: client.ViewerID,
		Control:  client.Control,
		Rig:      h.engine.Config(),
		Scene:    h.engine.Scene(),
	})
	client.Send(&Message{Type: TypeWelcome, Payload: welcomePayload})

	if stateMsg := h.pointers.StateMessage(); stateMsg != nil {
		client.Send(stateMsg)
	}

	joinPayload, _ := json.Marshal(ViewerJoinPayload{
		ViewerID: client.ViewerID,
		Control:  client.Control,
	})
	h.broadcast(&Message{
		Type:     TypeViewerJoin,
		ViewerID: client.ViewerID,
		Payload:  joinPayload,
	}, client.ClientID)

	slog.Info("viewer joined", "viewer", client.ViewerID, "control", client.Control)
}

func (h *Hub) removeClient(client *Client) {
	h.mu.Lock()
	if _, ok := h.clients[client.ClientID]; !ok {
		h.mu.Unlock()
		return
	}
	delete(h.clients, client.ClientID)
	h.mu.Unlock()

	client.closeSend()

	h.pointers.Remove(client.ViewerID)

	leavePayload, _ := json.Marshal(ViewerLeavePayload{ViewerID: client.ViewerID})
	h.broadcast(&Message{
		Type:     TypeViewerLeave,
		ViewerID: client.ViewerID,
		Payload:  leavePayload,
	}, "")

	slog.Info("viewer left", "viewer", client.ViewerID)
}

func (h *Hub) handleMessage(sender *Client, msg *Message) {
	switch msg.Type {
	case TypeBaseMove:
		h.handleBaseMove(sender, msg)
	case TypeIKSolve:
		h.handleIKSolve(sender, msg)
	case TypePointerUpdate:
		h.handlePointerUpdate(sender, msg)
	default:
		slog.Warn("unknown message type", "type", msg.Type, "viewer", sender.ViewerID)
	}
}

func (h *Hub) handleBaseMove(sender *Client, msg *Message) {
	if !sender.Control {
		h.sendError(sender, "control token required to move the base")
		return
	}

	var move BaseMovePayload
	if err := json.Unmarshal(msg.Payload, &move); err != nil {
		slog.Warn("invalid base.move payload", "error", err)
		return
	}

	h.engine.OnSurfaceClick(move.X, move.Y)
	h.BroadcastScene()
}

func (h *Hub) handleIKSolve(sender *Client, msg *Message) {
	var req IKSolvePayload
	if err := json.Unmarshal(msg.Payload, &req); err != nil {
		slog.Warn("invalid ik.solve payload", "error", err)
		return
	}

	var result IKResultPayload
	angles, err := h.engine.SolveIK(req.X, req.Y)
	if err != nil {
		var re *kinematics.ReachabilityError
		if errors.As(err, &re) {
			result.Error = re.Error()
		} else {
			result.Error = "solve failed"
		}
	} else {
		result.Angles = &angles
	}

	payload, _ := json.Marshal(result)
	sender.Send(&Message{Type: TypeIKResult, Payload: payload})
}

func (h *Hub) handlePointerUpdate(sender *Client, msg *Message) {
	var pointer PointerPayload
	if err := json.Unmarshal(msg.Payload, &pointer); err != nil {
		slog.Warn("invalid pointer payload", "error", err)
		return
	}

	h.pointers.Update(sender.ViewerID, &pointer)

	outPayload, _ := json.Marshal(pointer)
	h.broadcast(&Message{
		Type:     TypePointerUpdate,
		ViewerID: sender.ViewerID,
		Payload:  outPayload,
	}, sender.ClientID)
}

// BroadcastScene pushes the current scene to every client. The server shell
// also calls this after an authenticated HTTP base move.
func (h *Hub) BroadcastScene() {
	payload, _ := json.Marshal(SceneUpdatePayload{Scene: h.engine.Scene()})
	h.broadcast(&Message{Type: TypeSceneUpdate, Payload: payload}, "")
}

func (h *Hub) sendError(client *Client, reason string) {
	payload, _ := json.Marshal(ErrorPayload{Reason: reason})
	client.Send(&Message{Type: TypeError, Payload: payload})
}

func (h *Hub) broadcast(msg *Message, excludeClientID string) {
	h.mu.RLock()
	clients := make([]*Client, 0, len(h.clients))
	for _, c := range h.clients {
		if c.ClientID != excludeClientID {
			clients = append(clients, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range clients {
		c.Send(msg)
	}
}
