package toon

import "testing"

func TestScanBasic(t *testing.T) {
	src := "name: alice\n  age: 30\n\ncity: nyc"
	res, err := scan(src, 2, true)
	if err != nil {
		t.Fatalf("scan error: %v", err)
	}
	if len(res.lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(res.lines))
	}
	if res.lines[0].depth != 0 || res.lines[1].depth != 1 || res.lines[2].depth != 0 {
		t.Errorf("unexpected depths: %d %d %d", res.lines[0].depth, res.lines[1].depth, res.lines[2].depth)
	}
	if len(res.blanks) != 1 || res.blanks[0].lineNum != 3 {
		t.Errorf("expected one blank at line 3, got %+v", res.blanks)
	}
}

func TestScanStrictRejectsTab(t *testing.T) {
	_, err := scan("a:\n\tb: 1", 2, true)
	if err == nil {
		t.Fatal("expected an Indentation error for a tab in indentation")
	}
	toonErr, ok := err.(*Error)
	if !ok || toonErr.Kind != ErrIndentation {
		t.Errorf("expected ErrIndentation, got %v", err)
	}
}

func TestScanStrictRejectsUnalignedIndent(t *testing.T) {
	_, err := scan("a:\n   b: 1", 2, true)
	if err == nil {
		t.Fatal("expected an Indentation error for a non-multiple indent")
	}
}

func TestScanNonStrictTolerant(t *testing.T) {
	_, err := scan("a:\n\tb: 1", 2, false)
	if err != nil {
		t.Errorf("non-strict scan should tolerate a tab, got %v", err)
	}
}

func TestCursorPeekAdvance(t *testing.T) {
	res, _ := scan("a: 1\nb: 2", 2, true)
	c := newCursor(res.lines)
	first, ok := c.peek()
	if !ok || first.content != "a: 1" {
		t.Fatalf("peek = %+v, %v", first, ok)
	}
	c.advance()
	second, ok := c.next()
	if !ok || second.content != "b: 2" {
		t.Fatalf("next = %+v, %v", second, ok)
	}
	if !c.atEnd() {
		t.Error("expected cursor to be at end")
	}
}
