package verify

// FileVerifier asserts on a file given by path.
type FileVerifier struct {
	fluent[*FileVerifier]
	state
}

// File starts an assertion chain on the file at path.
func File(t TestingT, path string, opts ...Option) *FileVerifier {
	f := &FileVerifier{state: newState(t, path, opts)}
	f.fluent = fluent[*FileVerifier]{st: &f.state, self: f}
	return f
}

// FileMethods returns the names of the FileVerifier assertions.
func FileMethods() []string {
	return []string{"EqualTo", "EqualToJSONFile", "EqualToYAMLFile", "Exist", "Readable", "Writable"}
}

// WithCase makes content comparisons case sensitive. This is the default.
func (f *FileVerifier) WithCase() *FileVerifier {
	f.ignoreCase = false
	return f
}

// WithoutCase makes content comparisons case insensitive.
func (f *FileVerifier) WithoutCase() *FileVerifier {
	f.ignoreCase = true
	return f
}

func (f *FileVerifier) check(method, positive, negative string, operands ...any) *FileVerifier {
	f.t.Helper()
	if f.ready(method) {
		f.run(method, f.choose(positive, negative), append(operands, f.actual)...)
	}
	return f
}

// Exist asserts the file does or does not exist.
func (f *FileVerifier) Exist() *FileVerifier {
	f.t.Helper()
	return f.check("Exist", "FileExists", "NoFileExists")
}

// Readable asserts the file can or cannot be opened for reading.
func (f *FileVerifier) Readable() *FileVerifier {
	f.t.Helper()
	return f.check("Readable", "Readable", "NotReadable")
}

// Writable asserts the file can or cannot be opened for writing.
func (f *FileVerifier) Writable() *FileVerifier {
	f.t.Helper()
	return f.check("Writable", "Writable", "NotWritable")
}

// EqualTo asserts the file has or has not the same contents as expected,
// honouring WithoutCase.
func (f *FileVerifier) EqualTo(expected string) *FileVerifier {
	f.t.Helper()
	if f.ignoreCase {
		return f.check("EqualTo", "FileEqualsFold", "NotFileEqualsFold", expected)
	}
	return f.check("EqualTo", "FileEquals", "NotFileEquals", expected)
}

// EqualToJSONFile asserts the file is or is not JSON equivalent to expected.
func (f *FileVerifier) EqualToJSONFile(expected string) *FileVerifier {
	f.t.Helper()
	return f.check("EqualToJSONFile", "JSONFileEq", "NotJSONFileEq", expected)
}

// EqualToYAMLFile asserts the file is or is not YAML equivalent to expected.
func (f *FileVerifier) EqualToYAMLFile(expected string) *FileVerifier {
	f.t.Helper()
	return f.check("EqualToYAMLFile", "YAMLFileEq", "NotYAMLFileEq", expected)
}
