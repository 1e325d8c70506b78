package verify

// DirectoryVerifier asserts on a directory given by path.
type DirectoryVerifier struct {
	fluent[*DirectoryVerifier]
	state
}

// Directory starts an assertion chain on the directory at path.
func Directory(t TestingT, path string, opts ...Option) *DirectoryVerifier {
	d := &DirectoryVerifier{state: newState(t, path, opts)}
	d.fluent = fluent[*DirectoryVerifier]{st: &d.state, self: d}
	return d
}

// DirectoryMethods returns the names of the DirectoryVerifier assertions.
func DirectoryMethods() []string {
	return []string{"Exist", "Readable", "Writable"}
}

func (d *DirectoryVerifier) check(method, positive, negative string) *DirectoryVerifier {
	d.t.Helper()
	if d.ready(method) {
		d.run(method, d.choose(positive, negative), d.actual)
	}
	return d
}

// Exist asserts the directory does or does not exist.
func (d *DirectoryVerifier) Exist() *DirectoryVerifier {
	d.t.Helper()
	return d.check("Exist", "DirExists", "NoDirExists")
}

// Readable asserts the directory can or cannot be listed.
func (d *DirectoryVerifier) Readable() *DirectoryVerifier {
	d.t.Helper()
	return d.check("Readable", "Readable", "NotReadable")
}

// Writable asserts files can or cannot be created in the directory.
func (d *DirectoryVerifier) Writable() *DirectoryVerifier {
	d.t.Helper()
	return d.check("Writable", "Writable", "NotWritable")
}
