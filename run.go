package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/xerrors"
)

const (
	Banner     = "=== Calculadora de Média de Notas ==="
	Hint       = "Digite as notas separadas por espaço (ex: 8.5 7.0 9.5)"
	Prompt     = "Notas: "
	MsgEmpty   = "Nenhuma nota foi inserida."
	MsgBadNums = "Erro: Certifique-se de digitar apenas números separados por espaço."
)

// ReadEntry reads a single line. End of input counts as the end of the line,
// so a closed stdin gives an empty entry.
func ReadEntry(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", xerrors.Errorf("read: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// flusher is satisfied by *bufio.Writer; the prompt must be visible before
// blocking on input.
type flusher interface {
	Flush() error
}

func Run(in io.Reader, out io.Writer, sl *zap.SugaredLogger) error {
	if _, err := fmt.Fprintf(out, "%s\n%s\n%s", Banner, Hint, Prompt); err != nil {
		return xerrors.Errorf("banner: %w", err)
	}
	if f, ok := out.(flusher); ok {
		if err := f.Flush(); err != nil {
			return xerrors.Errorf("flush: %w", err)
		}
	}

	entry, err := ReadEntry(bufio.NewReader(in))
	if err != nil {
		return xerrors.Errorf("entry: %w", err)
	}
	sl.Debugf("Entry read: %d bytes", len(entry))

	grades, err := ParseGrades(entry)
	if err != nil {
		var perr *ParseError
		if !xerrors.As(err, &perr) {
			return xerrors.Errorf("parse: %w", err)
		}
		sl.Infof("Rejected entry: %#v", perr)
		return message(out, MsgBadNums)
	}
	if len(grades) == 0 {
		sl.Infof("Empty entry")
		return message(out, MsgEmpty)
	}
	sl.Debugf("Parsed %d grades: %v", len(grades), grades)

	m := NewMetric(grades...)
	sl.Infof("Result: count %d sum %f avg %f passed %t", m.Count, m.Sum, m.Avg(), m.Passed())
	return Report(out, m)
}

func message(w io.Writer, msg string) error {
	if _, err := fmt.Fprintln(w, msg); err != nil {
		return xerrors.Errorf("message: %w", err)
	}
	return nil
}
