package markuplift

// HTML5Doctype always ensures the short `<!DOCTYPE html>` form.
type HTML5Doctype struct{}

func (HTML5Doctype) DefaultDoctype() string    { return "<!DOCTYPE html>" }
func (HTML5Doctype) ShouldEnsureDoctype() bool { return true }

// XMLDoctype never injects a DOCTYPE of its own; XML documents either carry
// one from the parsed input or the caller supplies one explicitly.
type XMLDoctype struct{}

func (XMLDoctype) DefaultDoctype() string    { return "" }
func (XMLDoctype) ShouldEnsureDoctype() bool { return false }

// NullDoctype never emits a DOCTYPE under any circumstance.
type NullDoctype struct{}

func (NullDoctype) DefaultDoctype() string    { return "" }
func (NullDoctype) ShouldEnsureDoctype() bool { return false }
