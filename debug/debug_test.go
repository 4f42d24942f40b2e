package debug

import (
	"bytes"
	"testing"

	"github.com/signadot/jsondom/ir"
)

func TestBoolEnv(t *testing.T) {
	t.Setenv("JSONDOM_TEST_FLAG", "true")
	if !boolEnv("JSONDOM_TEST_FLAG") {
		t.Error("expected true")
	}
	t.Setenv("JSONDOM_TEST_FLAG", "nope")
	if boolEnv("JSONDOM_TEST_FLAG") {
		t.Error("expected unparsable value to read as false")
	}
	if boolEnv("JSONDOM_TEST_UNSET_FLAG") {
		t.Error("expected unset value to read as false")
	}
}

func TestLogfNodes(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	saved := out
	out = buf
	defer func() { out = saved }()

	node := ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromString("a")})
	freed := ir.FromInt(3)
	freed.Free()
	Logf("%v %v %v %d\n", node, (*ir.Node)(nil), freed, 7)

	want := "[1,\"a\"] <nil> [raw *ir.Node Invalid] encoding error: Invalid node at \"\" 7\n"
	if got := buf.String(); got != want {
		t.Errorf("Logf() wrote %q, want %q", got, want)
	}
}
