package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	wordbrain "github.com/BcomedianC/WordBrain-Solver"
)

// console is the terminal side of the solver: protocol text goes to out and answers are read
// line by line from in.
type console struct {
	in  *bufio.Scanner
	out io.Writer
}

func newConsole(r io.Reader, w io.Writer) *console {
	return &console{in: bufio.NewScanner(r), out: w}
}

// ask prints prompt and returns the next line, trimmed.
func (c *console) ask(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(c.in.Text()), nil
}

func (c *console) ShowCandidates(step, length int, words []string) {
	for _, w := range words {
		fmt.Fprintln(c.out, w)
	}
	fmt.Fprintln(c.out)
}

func (c *console) AskWord(ctx context.Context, prompt string) (string, error) {
	return c.ask(ctx, prompt)
}

func (c *console) ConfirmPath(ctx context.Context, marked wordbrain.Grid) (bool, error) {
	fmt.Fprintln(c.out, marked.Repr())
	answer, err := c.ask(ctx, `Press "y" if this is the path you used to trace the word: `)
	if err != nil {
		return false, err
	}
	return answer == "y", nil
}
