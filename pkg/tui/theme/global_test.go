// ABOUTME: Tests for the global theme pointer: default, swap, concurrent reads
// ABOUTME: Set is exercised without t.Parallel since it mutates process state

package theme

import (
	"sync"
	"testing"
)

func TestCurrent_NeverNil(t *testing.T) {
	if Current() == nil {
		t.Fatal("Current() returned nil")
	}
}

func TestSet_ChangesCurrent(t *testing.T) {
	old := Current()
	t.Cleanup(func() { Set(old) })

	Set(Builtin("monochrome"))
	if got := Current().Name; got != "monochrome" {
		t.Errorf("after Set(), Current().Name = %q; want %q", got, "monochrome")
	}
}

func TestSet_NilRestoresDefault(t *testing.T) {
	old := Set(Builtin("dark"))
	t.Cleanup(func() { Set(old) })

	if prev := Set(nil); prev.Name != "dark" {
		t.Errorf("Set(nil) returned %q, want the replaced %q", prev.Name, "dark")
	}
	if got := Current().Name; got != "default" {
		t.Errorf("after Set(nil), Current().Name = %q, want %q", got, "default")
	}
}

func TestUse(t *testing.T) {
	old := Current()
	t.Cleanup(func() { Set(old) })

	if err := Use("light"); err != nil {
		t.Fatalf("Use(light): %v", err)
	}
	if got := Current().Name; got != "light" {
		t.Errorf("Current().Name = %q, want %q", got, "light")
	}
	if err := Use("no-such-theme"); err == nil {
		t.Error("Use(no-such-theme) succeeded, want error")
	}
	if got := Current().Name; got != "light" {
		t.Errorf("failed Use changed Current() to %q", got)
	}
}

func TestCurrent_ConcurrentAccess(t *testing.T) {
	var wg sync.WaitGroup
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = Current().Palette.Primary.Apply("x")
		}()
	}
	wg.Wait()
}
