package engine

import "othello-engine/othello"

// openingReplies are the four symmetric first moves for each colour. The
// starting position is searched to no benefit, so one of them is picked at
// random instead.
var openingReplies = map[othello.Player][4][2]int{
	othello.White: {{3, 5}, {4, 6}, {5, 3}, {6, 4}},
	othello.Black: {{3, 4}, {5, 6}, {4, 3}, {6, 5}},
}

func (e *Engine) openingMove(player othello.Player) (othello.Move, bool) {
	replies, ok := openingReplies[player]
	if !ok {
		return othello.Move{}, false
	}
	r := replies[e.Random(len(replies))]
	m, err := othello.NewMove(r[0], r[1], player)
	if err != nil {
		return othello.Move{}, false
	}
	return m, true
}
