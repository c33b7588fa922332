package lineparser

import (
	"strings"
	"testing"
)

func TestMiniParserTracksClassPushAndPop(t *testing.T) {
	input := `// header
class Widget {
public:
    int count;
};
struct Point {
    int x;
};`

	var pushed []string
	var pops int
	var forwarded []string

	m := New()
	m.OnClassPush(func(name string) { pushed = append(pushed, name) })
	m.OnClassPop(func() { pops++ })
	m.OnLine(func(line string) { forwarded = append(forwarded, line) })

	if err := m.Run(strings.NewReader(input)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if want := []string{"Widget", "Point"}; len(pushed) != len(want) || pushed[0] != want[0] || pushed[1] != want[1] {
		t.Errorf("expected pushes %v, got %v", want, pushed)
	}
	if pops != 2 {
		t.Errorf("expected 2 pops, got %d", pops)
	}
	if len(forwarded) != 8 {
		t.Errorf("expected every source line forwarded, got %d lines", len(forwarded))
	}
}

func TestMiniParserTreatsAnyDoubleBraceSemicolonAsPop(t *testing.T) {
	// The mini-parser is scope-depth-unaware by design: a literal "};"
	// inside an unrelated initializer also counts as a class pop. This
	// documents the known limitation rather than hiding it.
	m := New()
	var pops int
	m.OnClassPop(func() { pops++ })

	m.Feed(`std::array<int, 2> data = {1, 2};`)

	if pops != 1 {
		t.Errorf("expected the coincidental '};' to still register as a pop, got %d", pops)
	}
}
