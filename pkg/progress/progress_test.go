package progress

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pcj/mobyprogress"
)

func TestWriteProgress(t *testing.T) {
	for name, tc := range map[string]struct {
		updates []mobyprogress.Progress
		want    string
	}{
		"message": {
			updates: []mobyprogress.Progress{{ID: "jdk", Message: "loaded"}},
			want:    "jdk: loaded\r\n",
		},
		"counts": {
			updates: []mobyprogress.Progress{
				{ID: "classpath", Action: "indexing classpath", Current: 1, Total: 4, Units: "entries"},
				{ID: "classpath", Action: "indexing classpath", Current: 4, Total: 4, Units: "entries", LastUpdate: true},
			},
			want: "indexing classpath 1/4 entries (25%)\r" +
				"indexing classpath 4/4 entries (100%)\r\r\n",
		},
		"unknown total": {
			updates: []mobyprogress.Progress{{Action: "parsing", Current: 7}},
			want:    "parsing 7\r",
		},
		"hidden counts": {
			updates: []mobyprogress.Progress{{Action: "waiting", Current: 1, Total: 2, HideCounts: true}},
			want:    "waiting\r\n",
		},
	} {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			out := NewProgressOutput(&buf)
			for _, update := range tc.updates {
				if err := out.WriteProgress(update); err != nil {
					t.Fatal(err)
				}
			}
			if diff := cmp.Diff(tc.want, buf.String()); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}
