package othello

// Perft counts the leaves of the move tree below pos with player to move.
// A forced pass uses up one ply; a position where neither side can move is a
// leaf regardless of the remaining depth.
func Perft(pos *Position, player Player, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := pos.LegalMoves(player)
	if len(moves) == 0 {
		opponent := player.Opponent()
		if !pos.AnyLegalMove(opponent) {
			return 1
		}
		return Perft(pos, opponent, depth-1)
	}
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		nodes += Perft(pos.Apply(m), player.Opponent(), depth-1)
	}
	return nodes
}

// PerftDivide returns the perft count below each root move.
func PerftDivide(pos *Position, player Player, depth int) map[Move]uint64 {
	out := make(map[Move]uint64)
	if depth <= 0 {
		return out
	}
	for _, m := range pos.LegalMoves(player) {
		out[m] = Perft(pos.Apply(m), player.Opponent(), depth-1)
	}
	return out
}
