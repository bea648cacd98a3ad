// Package spindle records dependency injection configuration as inspectable data.
//
// Spindle separates declaring bindings from executing them. Modules describe
// bindings against a fluent recorder, and compiling them produces an ordered
// list of elements that tools can inspect, validate, rewrite, and replay.
//
// # Quick Start
//
// Declare a module and compile it into elements:
//
//	mod := spindle.ModuleFunc(func(b *spindle.Binder) {
//	    spindle.Bind[Writer](b).To(spindle.KeyOf[*FileWriter]())
//	    spindle.Bind[string](b).ToInstance("production")
//	})
//
//	elements := spindle.Elements(mod)
//	spindle.Print(elements)
//
// Each element records the file:line of the call that produced it, so error
// reports and tooling can point back at configuration code.
//
// # Modules
//
// Modules group related bindings. Any type with a Configure method is a
// module, and ModuleFunc adapts a plain function:
//
//	type DatabaseModule struct{}
//
//	func (DatabaseModule) Configure(b *spindle.Binder) {
//	    spindle.Bind[Repository](b).To(spindle.KeyOf[*PostgresRepo]())
//	}
//
// Modules can install other modules, and installing the same comparable
// module twice is a no-op:
//
//	func (AppModule) Configure(b *spindle.Binder) {
//	    b.Install(DatabaseModule{})
//	    b.Install(HTTPModule{})
//	}
//
// NewModule builds a named module from a function; the name appears in logs:
//
//	var Config = spindle.NewModule("config", func(b *spindle.Binder) {
//	    spindle.Bind[*Settings](b).ToInstance(defaults)
//	})
//
// # Bindings
//
// Bind starts a fluent chain that records one binding:
//
//	spindle.Bind[Service](b).To(spindle.KeyOf[*ServiceImpl]())  // link to another key
//	spindle.Bind[*Config](b).ToInstance(cfg)                    // bind an existing value
//	spindle.Bind[Clock](b).ToProvider(clockProvider)            // bind a provider instance
//	spindle.Bind[Cache](b).ToProviderKey(spindle.KeyOf[*CacheProvider]())
//
// A chain may stop at any point. A binding left without a target stays in the
// recorded output as untargeted, which downstream stages treat as "construct
// the key's own type".
//
// Calling a chain step twice records the binding once and appends an error
// message right after it, so consumers see both the attempt and the mistake.
//
// # Qualifiers
//
// Qualifiers distinguish multiple bindings of the same type:
//
//	spindle.Bind[DataSource](b).
//	    AnnotatedWith(spindle.Named("replica")).
//	    To(spindle.KeyOf[*ReplicaSource]())
//
// Tagged qualifiers use a marker type instead of a string:
//
//	type Blue struct{}
//
//	spindle.Bind[Theme](b).AnnotatedWith(spindle.Tagged[Blue]()).ToInstance(blueTheme)
//
// KeyOf and Qualified build the same keys directly for lookups and tooling:
//
//	key := spindle.KeyOf[DataSource]().Qualified(spindle.Named("replica"))
//
// # Scoping
//
// The tail of a binding chain records how instances should be reused:
//
//	spindle.Bind[*Pool](b).To(poolKey).In(singletonTag)       // by scope tag
//	spindle.Bind[*Pool](b).To(poolKey).InScope(customScope)   // by scope instance
//	spindle.Bind[*Pool](b).To(poolKey).AsEagerSingleton()     // eager singleton
//
// BindScope registers a scope implementation under a tag so later stages can
// resolve In(tag) chains:
//
//	b.BindScope(singletonTag, singletonScope)
//
// # Constants
//
// BindConstant records qualified constant values. Strings, booleans, integer
// and floating point kinds, and reflect.Type values are supported:
//
//	b.BindConstant().AnnotatedWith(spindle.Named("port")).To(8080)
//	b.BindConstant().AnnotatedWith(spindle.Named("verbose")).To(true)
//
// A constant chain that never receives a value records an error message in
// place of the binding.
//
// # Private Modules
//
// A private binder collects bindings into an isolated environment and exposes
// only selected keys to its parent:
//
//	pb := b.NewPrivateBinder()
//	spindle.Bind[*ConnPool](pb).ToInstance(pool)
//	spindle.Bind[Repository](pb).To(spindle.KeyOf[*PostgresRepo]())
//	spindle.Expose[Repository](pb)
//
// The parent's elements contain the private environment plus one exposed
// binding per Expose call. Exposed keys can be qualified after the fact:
//
//	spindle.Expose[Repository](pb).AnnotatedWith(spindle.Named("primary"))
//
// # Provider Lookups
//
// GetProvider records a lookup and returns a provider that becomes usable
// once the object graph stage initializes its delegate:
//
//	users := spindle.GetProvider[*UserService](b)
//
//	_, err := users.Get()
//	spindle.IsProviderNotReady(err)  // true before initialization
//
// # Error Reporting
//
// Modules report configuration problems without aborting the recording:
//
//	b.AddError("port %d out of range", port)
//	b.AddCaughtError(err)
//
// A panic inside Configure is recovered at the install boundary and recorded
// as an error message element, so one broken module cannot take down the
// whole compilation.
//
// # Source Attribution
//
// Every element captures the caller's file:line automatically. WithSource
// substitutes a fixed description, which helper layers use so errors point at
// their own callers:
//
//	scoped := b.WithSource("config.yaml:12")
//	spindle.Bind[*Limits](scoped).ToInstance(limits)
//
// # Visitors
//
// Elements form a closed set dispatched through visitors. ElementVisitorFuncs
// builds a visitor from just the cases you care about:
//
//	bindings := 0
//	for _, e := range elements {
//	    e.Accept(spindle.ElementVisitorFuncs{
//	        Binding: func(*spindle.Binding) any { bindings++; return nil },
//	    })
//	}
//
// Binding targets and scoping dispatch the same way through AcceptTarget and
// AcceptScoping, and BoundInstance shortcuts the common case of extracting an
// instance-bound value.
//
// # Debug Visualization
//
// Render recorded elements for debugging:
//
//	spindle.Print(elements)         // one line per element to stdout
//	spindle.PrintDOT(elements)      // Graphviz DOT binding graph
//	output := spindle.Sprint(elements)
//
// # Observers
//
// Observe compilation for logging and metrics integration:
//
//	c := spindle.NewCompiler(
//	    spindle.WithLogger(logger),
//	    spindle.WithInstallObserver(func(module string) {
//	        metrics.RecordInstall(module)
//	    }),
//	    spindle.WithRecordObserver(func(e spindle.Element) {
//	        metrics.RecordElement(e)
//	    }),
//	    spindle.WithRecoverObserver(func(module string, err error) {
//	        metrics.RecordPanic(module, err)
//	    }),
//	)
//	elements := c.Compile(mods...)
package spindle
