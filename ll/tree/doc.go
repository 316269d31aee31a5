/*
Package tree implements concrete syntax trees for LL(1) parsing.

A tree is an arena of nodes. Nodes are referenced by NodeID, a plain index into
the arena, and carry a grammar symbol (a non-terminal) and an ordered list of
children. A child is either a leaf holding an input token, or a subtree
referencing another node. Nodes are created once and appended to exactly one
parent, so trees are acyclic by construction.

Trees are built by parsers and are read-only for clients. Traversals are
iterative and never recurse, even for deeply nested input.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree
