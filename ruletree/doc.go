/*
Package ruletree implements the owned, mutable representation of a parsed
CSS stylesheet: an ordered sequence of rule nodes, where grouping rules
(@media, @supports) own a nested sequence of child rules and @keyframes
rules own an ordered list of keyframes.

The tree is the single source of truth for one stylesheet. The live-view
layer (package cssom) addresses slots inside it by index and never copies
nodes while they are part of the tree; nodes are deep-cloned only when a
handle is disconnected and needs a private snapshot.

All operations are synchronous and single-writer: the owning stylesheet
serializes structural mutation, so nodes carry no locks.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ruletree

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'cssom.tree'.
func tracer() tracing.Trace {
	return tracing.Select("cssom.tree")
}
