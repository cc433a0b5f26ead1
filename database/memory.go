package database

import "encoding/json"

// MemoryGateway keeps the serialized state in memory. Used by tests and
// as a fallback when no database file can be opened.
type MemoryGateway struct {
	payload []byte
}

func NewMemoryGateway() *MemoryGateway {
	return &MemoryGateway{}
}

func (g *MemoryGateway) Load() (*State, error) {
	state := NewState()
	if len(g.payload) == 0 {
		return state, nil
	}
	if err := json.Unmarshal(g.payload, state); err != nil {
		return nil, err
	}
	if state.DailyStats == nil {
		state.DailyStats = NewState().DailyStats
	}
	return state, nil
}

func (g *MemoryGateway) Save(state *State) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return err
	}
	g.payload = payload
	return nil
}
