package attribute_test

type exampleParent struct {
	ParentPublic    string
	parentProtected string
	parentPrivate   string
	shadowed        string
}

type ExampleChild struct {
	exampleParent

	ChildPublic  string
	childPrivate string
	shadowed     string
}

var (
	parentStaticPublic  = "parent static public property"
	parentStaticPrivate = "parent static private property"
	childStaticPrivate  = "child static private property"
	sharedStatic        = "child shared static"
	parentSharedStatic  = "parent shared static"
)

func newExampleChild() *ExampleChild {
	return &ExampleChild{
		exampleParent: exampleParent{
			ParentPublic:    "parent public property",
			parentProtected: "parent protected property",
			parentPrivate:   "parent private property",
			shadowed:        "parent shadowed property",
		},
		ChildPublic:  "child public property",
		childPrivate: "child private property",
		shadowed:     "child shadowed property",
	}
}

func init() {
	mustRegisterStubs()
}
