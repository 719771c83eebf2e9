package console_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/julien-sobczak/nt-flashcards/pkg/console"
	"github.com/stretchr/testify/assert"
)

func TestNewProgressLog_default(t *testing.T) {
	var out bytes.Buffer

	l := console.NewProgressLog(
		// Override options for unit-testing purposes
		console.ToWriter(&out),
		console.LineLength(30))

	for i := 0; i < 2+1; i++ {
		l.Log(i, 2, "Processing...")
	}
	l.Clear("Done!!!!!!!!!!!!!!!!!!!!!!!!!!")

	expected := "" +
		"           (0/2) Processing...\r" +
		"#####      (1/2) Processing...\r" +
		"########## (2/2) Processing...\r" +
		"Done!!!!!!!!!!!!!!!!!!!!!!!!!!\n"
	assert.Equal(t, expected, out.String())
}

func TestNewProgressLog_percent(t *testing.T) {
	var out bytes.Buffer

	l := console.NewProgressLog(
		console.ShowPercent(),
		// Override options for unit-testing purposes
		console.ToWriter(&out),
		console.LineLength(30))

	for i := 0; i < 5+1; i++ {
		l.Log(i, 5, "Processing...")
	}
	l.Clear("")

	expected := "" +
		"           (  0%) Processing..\r" +
		"##         ( 20%) Processing..\r" +
		"####       ( 40%) Processing..\r" +
		"######     ( 60%) Processing..\r" +
		"########   ( 80%) Processing..\r" +
		"########## (100%) Processing..\r" +
		"                              \r"
	assert.Equal(t, expected, out.String())
}

func TestNewProgressLog_newLines(t *testing.T) {
	var out bytes.Buffer

	l := console.NewProgressLog(
		console.ToWriter(&out),
		console.NewLines(),
		console.BarWidth(4),
		console.LineLength(20))

	l.Log(1, 4, "What is Go?")
	l.Log(4, 4, "Ok")
	l.Log(0, 0, "Empty deck")

	expected := "" +
		"#    (1/4) What is G\n" +
		"#### (4/4) Ok\n" +
		"     (0/0) Empty dec\n"
	assert.Equal(t, expected, out.String())
}

func TestProgressLogBar(t *testing.T) {
	l := console.NewProgressLog(console.BarWidth(4))

	var tests = []struct {
		name     string  // name
		fraction float64 // input
		expected string  // output
	}{
		{"Zero", 0, "    "},
		{"Half", 0.5, "##  "},
		{"Almost full", 0.99, "### "},
		{"Full", 1, "####"},
		{"Negative", -1, "    "},
		{"Overflow", 2, "####"},
		{"NaN", math.NaN(), "    "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, l.Bar(tt.fraction))
		})
	}
}
