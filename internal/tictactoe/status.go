package tictactoe

import "github.com/guikarist/gym-tictactoe/internal/entity"

// WinCombos lists every winning line: rows, then columns, then diagonals.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// CheckGameStatus evaluates any board, legal or not. O is checked before X, so a board where
// both marks own a line reports O as the winner.
func CheckGameStatus(board entity.Board) entity.Status {
	for _, mark := range [...]entity.Mark{entity.PlayerO, entity.PlayerX} {
		for _, combo := range WinCombos {
			if board[combo[0]] == mark && board[combo[1]] == mark && board[combo[2]] == mark {
				return entity.WinStatus(mark)
			}
		}
	}

	// the game will continue until all the squares are full
	if !board.IsFull() {
		return entity.StatusOngoing
	}

	return entity.StatusDraw
}
