package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse bool
	Path  bool
	Owner bool
	Patch bool
	Eval  bool
	Match bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("JSONDOM_DEBUG_PARSE")
	d.Path = boolEnv("JSONDOM_DEBUG_PATH")
	d.Owner = boolEnv("JSONDOM_DEBUG_OWNER")
	d.Patch = boolEnv("JSONDOM_DEBUG_PATCH")
	d.Eval = boolEnv("JSONDOM_DEBUG_EVAL")
	d.Match = boolEnv("JSONDOM_DEBUG_MATCH")
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
func Path() bool {
	return d.Path
}
func Owner() bool {
	return d.Owner
}
func Patch() bool {
	return d.Patch
}
func Eval() bool {
	return d.Eval
}
func Match() bool {
	return d.Match
}
