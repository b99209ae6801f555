package main

import (
	"bufio"
	"bytes"
	"os"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"
	"gopkg.in/yaml.v3"
)

type scenario struct {
	Name   string `yaml:"name"`
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
}

func loadScenarios(t *testing.T) []scenario {
	t.Helper()
	contents, err := os.ReadFile("testdata/scenarios.yaml")
	if err != nil {
		t.Fatalf("read scenarios: %v", err)
	}
	var res []scenario
	if err := yaml.Unmarshal(contents, &res); err != nil {
		t.Fatalf("unmarshal scenarios: %v", err)
	}
	if len(res) == 0 {
		t.Fatal("no scenarios")
	}
	return res
}

func TestRunScenarios(t *testing.T) {
	header := Banner + "\n" + Hint + "\n" + Prompt
	for _, sc := range loadScenarios(t) {
		t.Run(sc.Name, func(t *testing.T) {
			var out bytes.Buffer
			if err := Run(strings.NewReader(sc.Input), &out, zaptest.NewLogger(t).Sugar()); err != nil {
				t.Fatalf("Run(%q) = %v", sc.Input, err)
			}
			if got, want := out.String(), header+sc.Output; got != want {
				t.Errorf("Run(%q) output:\n%s\nwant:\n%s", sc.Input, got, want)
			}
		})
	}
}

func TestRunNoNumbersOnFailure(t *testing.T) {
	for _, in := range []string{"abc\n", "7 8 abc\n", "\n", "  \n"} {
		var out bytes.Buffer
		if err := Run(strings.NewReader(in), &out, zaptest.NewLogger(t).Sugar()); err != nil {
			t.Fatalf("Run(%q) = %v", in, err)
		}
		if strings.Contains(out.String(), "Resultados") || strings.Contains(out.String(), "Situação") {
			t.Errorf("Run(%q) printed results: %q", in, out.String())
		}
	}
}

func TestRunFlushesPrompt(t *testing.T) {
	var out bytes.Buffer
	w := bufio.NewWriter(&out)
	if err := Run(strings.NewReader("9\n"), w, zaptest.NewLogger(t).Sugar()); err != nil {
		t.Fatalf("Run = %v", err)
	}
	// only the prompt was flushed by Run, the report is still buffered
	if got := out.String(); !strings.HasSuffix(got, Prompt) {
		t.Errorf("flushed %q; want prompt suffix", got)
	}
	w.Flush()
	if !strings.Contains(out.String(), "Média final: 9.00") {
		t.Errorf("output %q misses report", out.String())
	}
}

func TestReadEntry(t *testing.T) {
	for _, tc := range []struct {
		in, want string
	}{
		{"", ""},
		{"\n", ""},
		{"1 2\n3 4\n", "1 2"},
		{"1 2\r\n", "1 2"},
		{"5", "5"},
	} {
		got, err := ReadEntry(bufio.NewReader(strings.NewReader(tc.in)))
		if err != nil {
			t.Errorf("ReadEntry(%q) = %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ReadEntry(%q) = %q; want %q", tc.in, got, tc.want)
		}
	}
}
