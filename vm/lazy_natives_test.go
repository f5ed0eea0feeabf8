package vm

import (
	"os"
	"runtime"
	"testing"
)

func TestGeneratedTableShape(t *testing.T) {
	table := GeneratedNatives()
	if table.Len() == 0 {
		t.Fatal("generated table is empty")
	}
	if table.Len() != len(generatedNativeNames) {
		t.Fatalf("table has %d entries but %d names", table.Len(), len(generatedNativeNames))
	}
	for i := 0; i < table.Len(); i++ {
		if table.Name(i) == "" {
			t.Errorf("slot %d has no name", i)
		}
	}
}

func TestNativeRuntimeVersion(t *testing.T) {
	rt := NewGeneratedRuntime(nil)
	v := DispatchRaw(rt.NewContext(), -1)
	if v.Type != TypeString || v.StringVal != Version {
		t.Errorf("version native returned %s, want %q", v, Version)
	}
}

func TestNativeProcessInfo(t *testing.T) {
	rt := NewGeneratedRuntime(nil)
	v := DispatchRaw(rt.NewContext(), -2)

	if v.Type != TypeObject {
		t.Fatalf("process info returned %s", v)
	}
	if pid := v.ObjectVal["pid"]; pid.AsInt() != int64(os.Getpid()) {
		t.Errorf("pid = %s, want %d", pid, os.Getpid())
	}
	if goos := v.ObjectVal["os"]; goos.StringVal != runtime.GOOS {
		t.Errorf("os = %s, want %s", goos, runtime.GOOS)
	}
}

func TestNativeMonotonicNow(t *testing.T) {
	rt := NewGeneratedRuntime(nil)
	ctx := rt.NewContext()

	a := DispatchRaw(ctx, -3)
	b := DispatchRaw(ctx, -3)

	if a.Type != TypeInt || a.AsInt() < 0 {
		t.Errorf("monotonic clock returned %s", a)
	}
	if b.AsInt() < a.AsInt() {
		t.Errorf("clock went backwards: %d then %d", a.AsInt(), b.AsInt())
	}
}

func TestNativeEnvironSnapshot(t *testing.T) {
	t.Setenv("PERCH_TEST_MARKER", "present")
	rt := NewGeneratedRuntime(nil)

	v := DispatchRaw(rt.NewContext(), -4)

	if v.Type != TypeObject {
		t.Fatalf("environ snapshot returned %s", v)
	}
	if got := v.ObjectVal["PERCH_TEST_MARKER"]; got.StringVal != "present" {
		t.Errorf("snapshot missing marker variable, got %s", got)
	}
}

func TestNativeWorkingDirAndSeparator(t *testing.T) {
	rt := NewGeneratedRuntime(nil)
	ctx := rt.NewContext()

	wd := DispatchRaw(ctx, -5)
	if wd.Type != TypeString || wd.StringVal == "" {
		t.Errorf("working dir native returned %s", wd)
	}

	sep := DispatchRaw(ctx, -6)
	if sep.Type != TypeString || len(sep.StringVal) != 1 {
		t.Errorf("path separator native returned %s", sep)
	}
}
