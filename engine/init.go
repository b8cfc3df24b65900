package engine

import "othello-engine/othello"

const boardSize = othello.BoardSize

// coordBit maps a square to its bit in a 64-bit occupancy mask.
var coordBit [boardSize + 1][boardSize + 1]uint64

// neighborBits holds, per square, the mask of its (up to) eight neighbours.
// An empty square whose neighbours include no opponent disc can never be a
// legal move, so the search skips it before the full flip scan.
var neighborBits [boardSize + 1][boardSize + 1]uint64

func init() {
	initBitTables()
}

func initBitTables() {
	var bit uint64 = 1
	for x := 1; x <= boardSize; x++ {
		for y := 1; y <= boardSize; y++ {
			coordBit[x][y] = bit
			bit <<= 1
		}
	}

	for x := 1; x <= boardSize; x++ {
		for y := 1; y <= boardSize; y++ {
			var mask uint64
			for xinc := -1; xinc <= 1; xinc++ {
				for yinc := -1; yinc <= 1; yinc++ {
					if xinc == 0 && yinc == 0 {
						continue
					}
					nx, ny := x+xinc, y+yinc
					if nx > 0 && nx <= boardSize && ny > 0 && ny <= boardSize {
						mask |= coordBit[nx][ny]
					}
				}
			}
			neighborBits[x][y] = mask
		}
	}
}

// occupiedBits builds the occupancy mask of player on a scratch board.
func occupiedBits(board *scratchBoard, player othello.Player) uint64 {
	var bits uint64
	for x := 1; x <= boardSize; x++ {
		for y := 1; y <= boardSize; y++ {
			if board[x][y] == player {
				bits |= coordBit[x][y]
			}
		}
	}
	return bits
}
