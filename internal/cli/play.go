package cli

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	application "github.com/guikarist/gym-tictactoe/internal"
	"github.com/guikarist/gym-tictactoe/internal/apperror"
	"github.com/guikarist/gym-tictactoe/internal/entity"
	"github.com/guikarist/gym-tictactoe/internal/tictactoe"
	"github.com/guikarist/gym-tictactoe/internal/usecase"
)

var (
	symmetricalView bool
	actionMask      bool
	startMark       string
)

func PlayCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play one episode from stdin, one cell number per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := playOptions(cmd)
			if err != nil {
				return err
			}

			env := tictactoe.NewEnv(
				tictactoe.WithSymmetricalView(opts.SymmetricalView),
				tictactoe.WithActionMask(opts.UseActionMask),
			)

			logger.Debug("starting episode", "component", "play", "startMark", opts.StartMark.String())

			return Play(cmd.InOrStdin(), cmd.OutOrStdout(), env, opts.StartMark)
		},
	}

	cmd.Flags().BoolVar(&symmetricalView, "symmetrical-view", false, "Encode cells relative to the side to move")
	cmd.Flags().BoolVar(&actionMask, "action-mask", false, "Attach the free-cell mask to observations")
	cmd.Flags().StringVar(&startMark, "start", "", "Side that moves first, O or X")

	return cmd
}

// playOptions starts from the config env section and applies the flags set on the command line.
func playOptions(cmd *cobra.Command) (usecase.EnvOptions, error) {
	opts, err := application.EnvDefaults(conf.Env)
	if err != nil {
		return usecase.EnvOptions{}, fmt.Errorf("invalid env config: %w", err)
	}

	if cmd.Flags().Changed("symmetrical-view") {
		opts.SymmetricalView = symmetricalView
	}

	if cmd.Flags().Changed("action-mask") {
		opts.UseActionMask = actionMask
	}

	if cmd.Flags().Changed("start") {
		if opts.StartMark, err = entity.ParseMark(startMark); err != nil {
			return usecase.EnvOptions{}, fmt.Errorf("invalid --start: %w", err)
		}
	}

	return opts, nil
}

// Play resets env and steps it with the cell numbers read from in, one per line, until the
// episode is done or the input ends. Unreadable numbers and invalid moves are reported and
// skipped.
func Play(in io.Reader, out io.Writer, env *tictactoe.Env, start entity.Mark) error {
	observation, err := env.Reset(start)
	if err != nil {
		return fmt.Errorf("failed reset env: %w", err)
	}

	if err = printState(out, "Initial state", observation, env); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for !env.IsDone() && scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		cell, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintf(out, "Invalid input %q: expected a cell number\n", line)
			continue
		}

		observation, _, _, err = env.Step(cell)
		if errors.Is(err, apperror.ErrInvalidMove) {
			fmt.Fprintf(out, "%v\n", err)
			continue
		}

		if err != nil {
			return fmt.Errorf("failed make step: %w", err)
		}

		if err = printState(out, "Current State", observation, env); err != nil {
			return err
		}
	}

	if err = scanner.Err(); err != nil {
		return fmt.Errorf("failed read input: %w", err)
	}

	return nil
}

func printState(out io.Writer, title string, observation entity.Observation, env *tictactoe.Env) error {
	state, err := json.Marshal(observation)
	if err != nil {
		return fmt.Errorf("could not marshal observation: %w", err)
	}

	if _, err = fmt.Fprintf(out, "%s: %s\n", title, state); err != nil {
		return fmt.Errorf("failed write state: %w", err)
	}

	return env.Render(out, true)
}
