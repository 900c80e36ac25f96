package topology

import "github.com/katalvlaran/gridif/model"

// AttachGenerators binds every generator to the node whose (post-rewrite)
// name matches the generator's NodeName, per spec.md §4.1. A generator
// with no matching node is left detached; logf is called with a warning.
// Since Network.AddNode already rejects duplicate names at construction
// time, "multiple matches" cannot arise here — it would already have
// failed as model.ErrDuplicateNode during parsing.
func AttachGenerators(net *model.Network, logf func(string)) {
	if logf == nil {
		logf = func(string) {}
	}
	for _, g := range net.Generators() {
		idx, ok := net.NodeIndexByName(g.NodeName)
		if !ok {
			logf("generator " + g.DisplayName + ": no matching node \"" + g.NodeName + "\", dropping")
			continue
		}
		if err := net.AttachGenerator(g.Index, idx); err != nil {
			logf("generator " + g.DisplayName + ": " + err.Error())
		}
	}
}
