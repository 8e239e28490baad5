// Package debug gates the toolkit's diagnostic logging behind
// DOCFIELDS_DEBUG_* environment variables.
package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Locate       bool
	Missing      bool
	Undocumented bool
	Types        bool
}

var d *debug

func init() {
	d = &debug{}
	d.Locate = boolEnv("DOCFIELDS_DEBUG_LOCATE")
	d.Missing = boolEnv("DOCFIELDS_DEBUG_MISSING")
	d.Undocumented = boolEnv("DOCFIELDS_DEBUG_UNDOCUMENTED")
	d.Types = boolEnv("DOCFIELDS_DEBUG_TYPES")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Locate() bool {
	return d.Locate
}
func Missing() bool {
	return d.Missing
}
func Undocumented() bool {
	return d.Undocumented
}
func Types() bool {
	return d.Types
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}

func JSON(v any) string {
	res, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("<unmarshalable: %v>", err)
	}
	return string(res)
}
