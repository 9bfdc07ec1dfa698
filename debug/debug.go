package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Parse   bool
	Include bool
	Lookup  bool
	Write   bool
	Patch   bool
	Eval    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("CFG_DEBUG_PARSE")
	d.Include = boolEnv("CFG_DEBUG_INCLUDE")
	d.Lookup = boolEnv("CFG_DEBUG_LOOKUP")
	d.Write = boolEnv("CFG_DEBUG_WRITE")
	d.Patch = boolEnv("CFG_DEBUG_PATCH")
	d.Eval = boolEnv("CFG_DEBUG_EVAL")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Include() bool {
	return d.Include
}
func Lookup() bool {
	return d.Lookup
}
func Write() bool {
	return d.Write
}
func Patch() bool {
	return d.Patch
}
func Eval() bool {
	return d.Eval
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
	os.Stderr.Write([]byte{'\n'})
}
