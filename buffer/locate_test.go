package buffer

import "testing"

func TestLocate(t *testing.T) {
	cases := []struct {
		name   string
		text   string
		target Position
		start  Cursor
		want   Cursor
		ok     bool
	}{
		{name: "bof", text: "ab\ncd", target: Position{0, 0}, want: Cursor{Position{0, 0}, 0}, ok: true},
		{name: "line-0-middle", text: "ab\ncd", target: Position{0, 1}, want: Cursor{Position{0, 1}, 1}, ok: true},
		{name: "line-0-eol", text: "ab\ncd", target: Position{0, 2}, want: Cursor{Position{0, 2}, 2}, ok: true},
		{name: "line-0-past-eol-clamps", text: "ab\ncd", target: Position{0, 5}, want: Cursor{Position{0, 2}, 2}, ok: true},
		{name: "line-1", text: "ab\ncd", target: Position{1, 1}, want: Cursor{Position{1, 1}, 4}, ok: true},
		{name: "last-line-past-end-fails", text: "ab\ncd", target: Position{1, 5}, want: Cursor{Position{1, 2}, 4}, ok: false},
		{name: "missing-line-fails", text: "ab\ncd", target: Position{4, 0}, want: Cursor{Position{1, 2}, 4}, ok: false},
		{name: "trailing-newline", text: "ab\n", target: Position{1, 0}, want: Cursor{Position{1, 0}, 2}, ok: false},
		{name: "crlf-is-one-cluster", text: "ab\r\ncd", target: Position{0, 9}, want: Cursor{Position{0, 2}, 2}, ok: true},
		{name: "crlf-next-line", text: "ab\r\ncd", target: Position{1, 0}, want: Cursor{Position{1, 0}, 4}, ok: true},
		{name: "combining-mark", text: "e\u0301x", target: Position{0, 1}, want: Cursor{Position{0, 1}, 3}, ok: true},
		{name: "wide-and-emoji", text: "\u754c\U0001F600z", target: Position{0, 2}, want: Cursor{Position{0, 2}, 7}, ok: true},
		{name: "invalid-utf8", text: "a\xff\xfeb", target: Position{0, 3}, want: Cursor{Position{0, 3}, 3}, ok: true},
		{name: "empty", text: "", target: Position{0, 0}, start: Cursor{Position{2, 3}, 9}, want: Cursor{Position{2, 3}, 9}, ok: false},
		{
			name:   "seeded",
			text:   "cd",
			target: Position{0, 3},
			start:  Cursor{Position{0, 2}, 2},
			want:   Cursor{Position{0, 3}, 3},
			ok:     true,
		},
		{
			name:   "seeded-eol",
			text:   "c\nd",
			target: Position{0, 7},
			start:  Cursor{Position{0, 2}, 10},
			want:   Cursor{Position{0, 3}, 11},
			ok:     true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Locate(tc.text, tc.target, tc.start)
			if ok != tc.ok {
				t.Fatalf("ok=%v, want %v", ok, tc.ok)
			}
			if got != tc.want {
				t.Fatalf("cursor=%v, want %v", got, tc.want)
			}
		})
	}
}

func TestLocate_GraphemeAdvancesOneColumn(t *testing.T) {
	text := "a" + "e\u0301" + "\U0001F468\u200d\U0001F469\u200d\U0001F467" + "b"
	got, ok := Locate(text, Position{0, 3}, Cursor{})
	if !ok {
		t.Fatalf("expected to reach column 3")
	}
	if want := len(text) - 1; got.Offset != want {
		t.Fatalf("offset=%d, want %d", got.Offset, want)
	}
}
