package commands

import (
	"net"
	"testing"
)

func TestListenURL(t *testing.T) {
	tests := map[string]struct {
		addr net.Addr
		host string
		tls  bool
		want string
	}{
		"loopback": {
			addr: &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 8080},
			host: "127.0.0.1",
			want: "http://127.0.0.1:8080/mcp",
		},
		"wildcard": {
			addr: &net.TCPAddr{IP: net.IPv4zero, Port: 9000},
			host: "0.0.0.0",
			want: "http://127.0.0.1:9000/mcp",
		},
		"wildcard bound": {
			addr: &net.TCPAddr{IP: net.IPv4(10, 0, 0, 2), Port: 9000},
			host: "",
			want: "http://10.0.0.2:9000/mcp",
		},
		"ipv6 tls": {
			addr: &net.TCPAddr{IP: net.IPv6loopback, Port: 443},
			host: "::1",
			tls:  true,
			want: "https://[::1]:443/mcp",
		},
	}
	for name, tc := range tests {
		if got := listenURL(tc.addr, tc.host, "/mcp", tc.tls); got != tc.want {
			t.Fatalf("%s: got %q want %q", name, got, tc.want)
		}
	}
}
