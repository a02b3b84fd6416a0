package clinical

import "testing"

func TestPatch_OnlyPresentValues(t *testing.T) {
	name := "old"
	if Patch(&name, nil) || name != "old" {
		t.Fatalf("nil must not touch the field")
	}

	v := "new"
	if !Patch(&name, &v) || name != "new" {
		t.Fatalf("expected overwrite, got %q", name)
	}

	labs := Attributes{"inr": 2.1}
	empty := Attributes{}
	Patch(&labs, &empty)
	if len(labs) != 0 {
		t.Fatalf("present empty map must overwrite, got %v", labs)
	}
}
