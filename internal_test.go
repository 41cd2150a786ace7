package whatwgurl

import "testing"

func TestParseIPv4Number(t *testing.T) {
	cases := []struct {
		in      string
		want    int64
		wantOK  bool
	}{
		{"0", 0, true},
		{"10", 10, true},
		{"0x1A", 26, true},
		{"0X1a", 26, true},
		{"017", 15, true}, // octal
		{"", 0, false},
		{"0xzz", 0, false},
		{"99999999999999999999", 0, false},
	}
	for _, c := range cases {
		got, ok := parseIPv4Number(c.in)
		if ok != c.wantOK {
			t.Fatalf("parseIPv4Number(%q) ok = %v, want %v", c.in, ok, c.wantOK)
		}
		if ok && got != c.want {
			t.Fatalf("parseIPv4Number(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestParseIPv4RoundTrip(t *testing.T) {
	addr, ok := parseIPv4("192.168.0.1")
	if !ok {
		t.Fatal("expected parseIPv4 to succeed")
	}
	if got := serializeIPv4(addr); got != "192.168.0.1" {
		t.Fatalf("serializeIPv4 = %q, want 192.168.0.1", got)
	}
}

func TestParseIPv4LastOctetBound(t *testing.T) {
	// Three parts: last part must be < 256^(5-3) = 65536.
	if _, ok := parseIPv4("1.2.65535"); !ok {
		t.Fatal("expected 1.2.65535 to parse (65535 < 65536)")
	}
	if _, ok := parseIPv4("1.2.65536"); ok {
		t.Fatal("expected 1.2.65536 to fail (65536 not < 65536)")
	}
}

func TestParseIPv6RoundTrip(t *testing.T) {
	pieces, ok := parseIPv6("2001:db8::1")
	if !ok {
		t.Fatal("expected parseIPv6 to succeed")
	}
	if got := serializeIPv6(pieces); got != "2001:db8::1" {
		t.Fatalf("serializeIPv6 = %q, want 2001:db8::1", got)
	}
}

func TestParseIPv6AllZero(t *testing.T) {
	pieces, ok := parseIPv6("::")
	if !ok {
		t.Fatal("expected :: to parse")
	}
	if got := serializeIPv6(pieces); got != "::" {
		t.Fatalf("serializeIPv6(all-zero) = %q, want ::", got)
	}
}

func TestFindLongestZeroRunPrefersFirstOnTie(t *testing.T) {
	pieces := [8]uint16{1, 0, 0, 1, 0, 0, 1, 1}
	if got := findLongestZeroRun(pieces); got != 1 {
		t.Fatalf("findLongestZeroRun = %d, want 1 (first run wins tie)", got)
	}
}

func TestCursorRewindToStart(t *testing.T) {
	c := newCursor([]byte("abc"))
	c.advance()
	c.advance()
	if c.current() != 'c' {
		t.Fatalf("current = %c, want c", c.current())
	}
	c.rewindToStart()
	c.advance() // mirrors the driving loop's unconditional post-step advance
	if c.current() != 'a' {
		t.Fatalf("after rewindToStart+advance, current = %c, want a", c.current())
	}
}

func TestCursorRewindByN(t *testing.T) {
	c := newCursor([]byte("host/path"))
	for i := 0; i < 4; i++ {
		c.advance()
	}
	if c.current() != '/' {
		t.Fatalf("current = %c, want /", c.current())
	}
	c.rewind(len("host") + 1)
	c.advance()
	if c.current() != 'h' {
		t.Fatalf("after rewind(len+1)+advance, current = %c, want h", c.current())
	}
}

func TestCursorEOF(t *testing.T) {
	c := newCursor([]byte("a"))
	c.advance()
	if !c.atEOF() {
		t.Fatal("expected atEOF after advancing past the single byte")
	}
	if c.current() != eof {
		t.Fatalf("current() = %d, want eof", c.current())
	}
}

func TestStateOverrideExitsAtPort(t *testing.T) {
	base := &URL{Scheme: "http", Host: ptrStr("example.com")}
	url := &URL{Scheme: "http", Host: ptrStr("example.com")}
	m := newMachine(url, base, []byte("8080"), statePort)
	if err := m.run(); err != nil {
		t.Fatalf("state-override port re-entry failed: %v", err)
	}
	if url.Port == nil || *url.Port != 8080 {
		t.Fatalf("Port = %v, want 8080", url.Port)
	}
}
