package main

import (
	"fmt"
	"io"
	"math"

	"golang.org/x/xerrors"
)

const (
	StatusPassed = "Aprovado"
	StatusBelow  = "Abaixo da média"
)

func Status(m *Metric) string {
	if m.Passed() {
		return fmt.Sprintf("%s (Média >= %.1f)", StatusPassed, PassThreshold)
	}
	return fmt.Sprintf("%s (Média < %.1f)", StatusBelow, PassThreshold)
}

// fixed2 formats v with two decimals. A sum of finite grades can still
// overflow, and that prints as inf/-inf/nan.
func fixed2(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return fmt.Sprintf("%.2f", v)
}

func Report(w io.Writer, m *Metric) error {
	if _, err := fmt.Fprintf(w, "\n--- Resultados ---\n"+
		"Quantidade de notas: %d\n"+
		"Soma das notas: %s\n"+
		"Média final: %s\n"+
		"Situação: %s\n",
		m.Count, fixed2(m.Sum), fixed2(m.Avg()), Status(m)); err != nil {
		return xerrors.Errorf("report: %w", err)
	}
	return nil
}
