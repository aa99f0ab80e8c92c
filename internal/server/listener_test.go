package server

import (
	"testing"
)

func TestGetListenerTCP(t *testing.T) {
	ln, err := GetListener("127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()
	if ln.Addr().Network() != "tcp" {
		t.Fatalf("network = %s", ln.Addr().Network())
	}
}
