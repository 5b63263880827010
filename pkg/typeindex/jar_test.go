package typeindex

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/stackb/javaresolve/pkg/testutil"
)

func TestClassNameFromEntry(t *testing.T) {
	for entry, want := range map[string]string{
		"com/foo/Outer.class":              "com.foo.Outer",
		"com/foo/Outer$Inner.class":        "com.foo.Outer$Inner",
		"Main.class":                       "Main",
		"com/foo/Outer$1.class":            "",
		"com/foo/Outer$1Local.class":       "",
		"com/foo/Outer$.class":             "",
		"META-INF/versions/9/com/X.class":  "",
		"module-info.class":                "",
		"com/foo/package-info.class":       "",
		"com/foo/messages.properties":      "",
		"com/foo/Outer$Inner$Deeper.class": "com.foo.Outer$Inner$Deeper",
	} {
		t.Run(entry, func(t *testing.T) {
			got, ok := classNameFromEntry(entry)
			if got != want || ok != (want != "") {
				t.Errorf("want %q, got (%q, %t)", want, got, ok)
			}
		})
	}
}

func TestReadJarSpec(t *testing.T) {
	dir, _, clean := testutil.MustPrepareTestFiles(t, nil)
	defer clean()

	filename := testutil.MustWriteJar(t, dir, "lib.jar",
		"META-INF/MANIFEST.MF",
		"com/foo/Outer.class",
		"com/foo/Outer$Inner.class",
		"com/foo/Outer$1.class",
		"com/foo/bar/Util.class",
		"com/foo/package-info.class",
	)

	got, err := ReadJarSpec(filename, "//:lib")
	if err != nil {
		t.Fatal(err)
	}
	want := &IndexSpec{
		Label:    "//:lib",
		Filename: filename,
		Classes:  []string{"com.foo.Outer", "com.foo.Outer$Inner", "com.foo.bar.Util"},
		Packages: []string{"com.foo", "com.foo.bar"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestReadJarSpecMissing(t *testing.T) {
	_, err := ReadJarSpec("/nonexistent/lib.jar", "")
	testutil.ExpectError(t, errors.New(`open jar "/nonexistent/lib.jar": open /nonexistent/lib.jar: no such file or directory`), err)
}
