package cache

import (
	"strings"
	"testing"
	"time"
)

func TestKey(t *testing.T) {
	a := Key("extract", []byte(`{"title":"x"}`))
	b := Key("extract", []byte(`{"title":"x"}`))
	c := Key("extract", []byte(`{"title":"y"}`))
	d := Key("verify", []byte(`{"title":"x"}`))

	if a != b {
		t.Error("identical payloads produced different keys")
	}
	if a == c {
		t.Error("different payloads produced the same key")
	}
	if a == d {
		t.Error("different operations produced the same key")
	}
	if !strings.HasPrefix(a, "kyclens:v1:extract:") {
		t.Errorf("key = %q", a)
	}
}

func TestMemory(t *testing.T) {
	m := NewMemory(time.Minute, 5*time.Minute)

	if _, ok := m.Get("missing"); ok {
		t.Error("hit on missing key")
	}

	m.Set("k", []byte("v"), time.Minute)
	val, ok := m.Get("k")
	if !ok || string(val) != "v" {
		t.Errorf("Get = %q, %v", val, ok)
	}
}

func TestMemory_Expiry(t *testing.T) {
	m := NewMemory(time.Minute, 5*time.Minute)
	m.Set("k", []byte("v"), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	if _, ok := m.Get("k"); ok {
		t.Error("expired entry still returned")
	}
}
