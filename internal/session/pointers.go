package session

import (
	"encoding/json"
	"log/slog"
	"sync"
)

// PointerManager tracks each viewer's last pointer position so late joiners
// see where everyone is hovering.
type PointerManager struct {
	mu       sync.RWMutex
	pointers map[string]*PointerPayload // viewerID -> pointer
}

func NewPointerManager() *PointerManager {
	return &PointerManager{
		pointers: make(map[string]*PointerPayload),
	}
}

func (pm *PointerManager) Update(viewerID string, p *PointerPayload) {
	pm.mu.Lock()
	defer pm.mu.Unlock()
	pm.pointers[viewerID] = p
}

func (pm *PointerManager) Remove(viewerID string) {
	pm.mu.Lock()
	defer pm.mu.Unlock()
	delete(pm.pointers, viewerID)
}

func (pm *PointerManager) GetAll() map[string]*PointerPayload {
	pm.mu.RLock()
	defer pm.mu.RUnlock()

	result := make(map[string]*PointerPayload, len(pm.pointers))
	for k, v := range pm.pointers {
		result[k] = v
	}
	return result
}

func (pm *PointerManager) StateMessage() *Message {
	all := pm.GetAll()
	payload, err := json.Marshal(PointerStatePayload{Pointers: all})
	if err != nil {
		slog.Error("marshal pointer state", "error", err)
		return nil
	}
	return &Message{
		Type:    TypePointerState,
		Payload: payload,
	}
}
