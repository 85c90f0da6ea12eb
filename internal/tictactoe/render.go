package tictactoe

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/guikarist/gym-tictactoe/internal/entity"
)

// Render writes the board as text. With showNumber, empty cells show their index.
func (that *Env) Render(w io.Writer, showNumber bool) error {
	var sb strings.Builder

	if that.done {
		writeResult(&sb, that.Status())
	} else {
		for row := 0; row < entity.BoardSize; row += 3 {
			cells := make([]string, 0, 3)
			for i := row; i < row+3; i++ {
				cells = append(cells, cellText(that.board[i], i, showNumber))
			}

			sb.WriteString("  " + strings.Join(cells, "|") + "\n")
			if row < 6 {
				sb.WriteString("  -----\n")
			}
		}

		fmt.Fprintf(&sb, "%s's turn.\n\n", that.turn)
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("failed to render board: %w", err)
	}

	return nil
}

func cellText(cell entity.Mark, index int, showNumber bool) string {
	if showNumber && cell == entity.EmptyCell {
		return strconv.Itoa(index)
	}

	return cell.String()
}

func writeResult(sb *strings.Builder, status entity.Status) {
	if winner, ok := status.Winner(); ok {
		fmt.Fprintf(sb, "==== Finished: Winner is '%s'! ====\n\n", winner)
		return
	}

	sb.WriteString("==== Finished: Draw ====\n\n")
}
