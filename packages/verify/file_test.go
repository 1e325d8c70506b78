package verify

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileVerifier_Dispatch(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(f *FileVerifier)
		call     func(f *FileVerifier)
		positive string
		negative string
		operands []any
	}{
		{"Exist", nil, func(f *FileVerifier) { f.Exist() }, "FileExists", "NoFileExists", []any{"out.txt"}},
		{"Readable", nil, func(f *FileVerifier) { f.Readable() }, "Readable", "NotReadable", []any{"out.txt"}},
		{"Writable", nil, func(f *FileVerifier) { f.Writable() }, "Writable", "NotWritable", []any{"out.txt"}},
		{"EqualTo", nil, func(f *FileVerifier) { f.EqualTo("want.txt") }, "FileEquals", "NotFileEquals", []any{"want.txt", "out.txt"}},
		{
			"EqualTo without case", func(f *FileVerifier) { f.WithoutCase() }, func(f *FileVerifier) { f.EqualTo("want.txt") },
			"FileEqualsFold", "NotFileEqualsFold", []any{"want.txt", "out.txt"},
		},
		{
			"EqualTo with case", func(f *FileVerifier) { f.WithoutCase().WithCase() }, func(f *FileVerifier) { f.EqualTo("want.txt") },
			"FileEquals", "NotFileEquals", []any{"want.txt", "out.txt"},
		},
		{"EqualToJSONFile", nil, func(f *FileVerifier) { f.EqualToJSONFile("want.json") }, "JSONFileEq", "NotJSONFileEq", []any{"want.json", "out.txt"}},
		{"EqualToYAMLFile", nil, func(f *FileVerifier) { f.EqualToYAMLFile("want.yaml") }, "YAMLFileEq", "NotYAMLFileEq", []any{"want.yaml", "out.txt"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, conjunction := range []string{"will", "willNot"} {
				m := newMockAsserter(t)
				want := tt.positive
				if conjunction == "willNot" {
					want = tt.negative
				}
				m.expect(want, tt.operands...)

				f := File(&fakeT{}, "out.txt", WithAsserter(m))
				if tt.setup != nil {
					tt.setup(f)
				}
				got, err := f.Conjunction(conjunction)
				require.NoError(t, err)
				assert.Same(t, f, got)
				tt.call(f)
			}
		})
	}
}

func TestDirectoryVerifier_Dispatch(t *testing.T) {
	tests := []struct {
		name     string
		call     func(d *DirectoryVerifier)
		positive string
		negative string
	}{
		{"Exist", func(d *DirectoryVerifier) { d.Exist() }, "DirExists", "NoDirExists"},
		{"Readable", func(d *DirectoryVerifier) { d.Readable() }, "Readable", "NotReadable"},
		{"Writable", func(d *DirectoryVerifier) { d.Writable() }, "Writable", "NotWritable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newMockAsserter(t)
			m.expect(tt.positive, "out")
			m.expect(tt.negative, "out")

			d := Directory(&fakeT{}, "out", WithAsserter(m))
			tt.call(d.Is())
			tt.call(d.IsNot())
		})
	}
}

func TestFileAndDirectory_MissingModifier(t *testing.T) {
	calls := map[string]func(ft *fakeT, m *mockAsserter){}
	for _, method := range FileMethods() {
		method := method
		calls["File."+method] = func(ft *fakeT, m *mockAsserter) {
			f := File(ft, "out.txt", WithAsserter(m)).Have()
			switch method {
			case "Exist":
				f.Exist()
			case "Readable":
				f.Readable()
			case "Writable":
				f.Writable()
			case "EqualTo":
				f.EqualTo("a")
			case "EqualToJSONFile":
				f.EqualToJSONFile("a")
			case "EqualToYAMLFile":
				f.EqualToYAMLFile("a")
			default:
				t.Fatalf("no call for File.%s", method)
			}
		}
	}
	for _, method := range DirectoryMethods() {
		method := method
		calls["Directory."+method] = func(ft *fakeT, m *mockAsserter) {
			d := Directory(ft, "out", WithAsserter(m)).Be()
			switch method {
			case "Exist":
				d.Exist()
			case "Readable":
				d.Readable()
			case "Writable":
				d.Writable()
			default:
				t.Fatalf("no call for Directory.%s", method)
			}
		}
	}

	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			ft := &fakeT{}
			m := newMockAsserter(t)

			call(ft, m)

			assert.True(t, ft.failed)
			require.Len(t, ft.errors, 1)
			assert.Contains(t, ft.errors[0], "assertions must be prefaced by a condition method")
			m.AssertNotCalled(t, "Assert")
		})
	}
}

func TestFileAndDirectory_Testify(t *testing.T) {
	dir := t.TempDir()
	write := func(name, contents string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
		return path
	}
	out := write("out.txt", "Hello World")
	lower := write("lower.txt", "hello world")
	jsonA := write("a.json", `{"a": 1}`)
	jsonB := write("b.json", `{ "a" : 1 }`)
	yamlA := write("a.yaml", "a: 1\nb: [1, 2]\n")
	yamlB := write("b.yaml", "b:\n  - 1\n  - 2\na: 1\n")
	missing := filepath.Join(dir, "missing.txt")

	tests := []struct {
		name   string
		run    func(ft *fakeT)
		passed bool
	}{
		{"file exists", func(ft *fakeT) { File(ft, out).Will().Exist() }, true},
		{"file missing", func(ft *fakeT) { File(ft, missing).WillNot().Exist() }, true},
		{"missing file exists", func(ft *fakeT) { File(ft, missing).Will().Exist() }, false},
		{"file readable", func(ft *fakeT) { File(ft, out).Is().Readable() }, true},
		{"file writable", func(ft *fakeT) { File(ft, out).Is().Writable() }, true},
		{"file equal", func(ft *fakeT) { File(ft, out).Is().EqualTo(out) }, true},
		{"file differs by case", func(ft *fakeT) { File(ft, out).Is().EqualTo(lower) }, false},
		{"file equal without case", func(ft *fakeT) { File(ft, out).WithoutCase().Is().EqualTo(lower) }, true},
		{"json files", func(ft *fakeT) { File(ft, jsonA).Is().EqualToJSONFile(jsonB) }, true},
		{"yaml files", func(ft *fakeT) { File(ft, yamlA).Is().EqualToYAMLFile(yamlB) }, true},
		{"directory exists", func(ft *fakeT) { Directory(ft, dir).Does().Exist() }, true},
		{"file is not a directory", func(ft *fakeT) { Directory(ft, out).Does().Exist() }, false},
		{"directory missing", func(ft *fakeT) { Directory(ft, missing).DoesNot().Exist() }, true},
		{"directory readable", func(ft *fakeT) { Directory(ft, dir).Is().Readable() }, true},
		{"directory writable", func(ft *fakeT) { Directory(ft, dir).Is().Writable() }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ft := &fakeT{}
			tt.run(ft)
			assert.Equal(t, !tt.passed, len(ft.errors) > 0, "errors: %v", ft.errors)
		})
	}
}
