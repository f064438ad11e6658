package quest

import "github.com/KirkDiggler/rpg-quest/internal/entities"

// roster is the ordered party of the active quest, unique by client id
type roster struct {
	players []*entities.Player
}

func (r *roster) find(clientID string) *entities.Player {
	for _, p := range r.players {
		if p.ClientID == clientID {
			return p
		}
	}
	return nil
}

func (r *roster) add(p *entities.Player) {
	r.players = append(r.players, p)
}

func (r *roster) remove(clientID string) bool {
	for i, p := range r.players {
		if p.ClientID == clientID {
			r.players = append(r.players[:i], r.players[i+1:]...)
			return true
		}
	}
	return false
}

func (r *roster) alive() []*entities.Player {
	return entities.AlivePlayers(r.players)
}

func (r *roster) empty() bool {
	return len(r.players) == 0
}

// leader is the player who opens a battle: the first roster entry, or the
// first living one when the first entry is dead
func (r *roster) leader() *entities.Player {
	if len(r.players) > 0 && r.players[0].IsAlive() {
		return r.players[0]
	}
	if alive := r.alive(); len(alive) > 0 {
		return alive[0]
	}
	return nil
}

// unanimous reports whether every living player has voted to advance
func (r *roster) unanimous() bool {
	alive := r.alive()
	if len(alive) == 0 {
		return false
	}
	for _, p := range alive {
		if !p.VotedForAdvance {
			return false
		}
	}
	return true
}

func (r *roster) clearVotes() {
	for _, p := range r.players {
		p.VotedForAdvance = false
	}
}

func (r *roster) snapshot() []entities.PlayerSnapshot {
	out := make([]entities.PlayerSnapshot, 0, len(r.players))
	for _, p := range r.players {
		out = append(out, entities.NewPlayerSnapshot(p))
	}
	return out
}
