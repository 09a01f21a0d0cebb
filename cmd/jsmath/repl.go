package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/chzyer/readline"
	"github.com/pgavlin/jsmath"
	log "github.com/sirupsen/logrus"
)

const prompt = "> "

func runREPL(env *jsmath.Env, stdout, stderr io.Writer) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt: prompt,
		Stdout: stdout,
		Stderr: stderr,
	})
	if err != nil {
		return fmt.Errorf("starting readline: %w", err)
	}
	defer rl.Close()

	fmt.Fprintln(stdout, "jsmath | type .exit to quit")
	for {
		line, err := rl.Readline()
		switch {
		case errors.Is(err, readline.ErrInterrupt), errors.Is(err, io.EOF):
			return nil
		case err != nil:
			return fmt.Errorf("reading line: %w", err)
		}

		if quit := replLine(env, line, stdout); quit {
			return nil
		}
	}
}

// replLine evaluates a single line of REPL input. It reports whether the
// session should end.
func replLine(env *jsmath.Env, line string, out io.Writer) bool {
	line = strings.TrimSpace(line)
	switch {
	case line == "":
		return false
	case line == ".exit":
		return true
	case isCommand(line):
		fmt.Fprintln(out, errorStyle.Sprintf("unknown command %v", line))
		return false
	}

	expressions, err := jsmath.ParseAll(strings.NewReader(line))
	if err != nil {
		fmt.Fprintln(out, errorStyle.Sprintf("parse error: %v", err))
		return false
	}
	for _, x := range expressions {
		v, err := env.Run(x)
		if err != nil {
			log.Debugf("Evaluation failed: %v", err)
			fmt.Fprintln(out, errorStyle.Sprintf("%v", err))
			return false
		}
		fmt.Fprintf(out, "=> %v\n", jsmath.EncodeToString(v))
	}
	return false
}

// isCommand reports whether line is a REPL command such as .exit rather than
// an expression. Numbers like .5 are expressions.
func isCommand(line string) bool {
	return len(line) > 1 && line[0] == '.' && unicode.IsLetter(rune(line[1]))
}
