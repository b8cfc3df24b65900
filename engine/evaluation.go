package engine

import "othello-engine/othello"

// BCWeight multiplies the board control term of the evaluation.
const BCWeight = 3

// bcBoard is the static board control value of each square, indexed [x][y]
// from 1. Corners are worth 20; every square on line 2 or 7 loses 2 per such
// line it lies on.
var bcBoard = [boardSize + 1][boardSize + 1]int{
	{},
	{0, 20, -2, 0, 0, 0, 0, -2, 20},
	{0, -2, -4, -2, -2, -2, -2, -4, -2},
	{0, 0, -2, 0, 0, 0, 0, -2, 0},
	{0, 0, -2, 0, 0, 0, 0, -2, 0},
	{0, 0, -2, 0, 0, 0, 0, -2, 0},
	{0, 0, -2, 0, 0, 0, 0, -2, 0},
	{0, -2, -4, -2, -2, -2, -2, -4, -2},
	{0, 20, -2, 0, 0, 0, 0, -2, 20},
}

// BoardControl returns the static value of square (x, y), 1-indexed.
func BoardControl(x, y int) int {
	if !othello.OnBoard(x, y) {
		return 0
	}
	return bcBoard[x][y]
}

// evaluate scores the scratch board from player's point of view. In
// exhaustive mode the disc difference is exact; otherwise material and board
// control are blended by the progress coefficient.
func (s *searchState) evaluate(player othello.Player) int {
	opponent := player.Opponent()
	discs := s.score.Get(player) - s.score.Get(opponent)
	if s.exhaustive {
		return discs
	}
	control := s.bcScore.Get(player) - s.bcScore.Get(opponent)
	return (100-s.coeff)*discs + s.coeff*BCWeight*control
}

// terminalValue scores a position where neither side can move. Outside
// exhaustive mode a win or loss saturates towards LargeInt while keeping the
// margin, so sure wins are taken and sure losses avoided.
func (s *searchState) terminalValue(player othello.Player) int {
	final := s.score.Get(player) - s.score.Get(player.Opponent())
	if s.exhaustive {
		return final
	}
	switch {
	case final > 0:
		return LargeInt - 65 + final
	case final < 0:
		return -(LargeInt - 65 + abs(final))
	default:
		return 0
	}
}

func calcBcScore(board *scratchBoard, player othello.Player) int {
	sum := 0
	for x := 1; x <= boardSize; x++ {
		for y := 1; y <= boardSize; y++ {
			if board[x][y] == player {
				sum += bcBoard[x][y]
			}
		}
	}
	return sum
}

// progressCoeff weights board control against material: 100 minus the share
// of the game that will have been played at the search horizon.
func progressCoeff(discs, depth int) int {
	return Clamp(100-(100*(discs+depth-4))/60, 0, 100)
}
