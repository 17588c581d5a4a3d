// Package supernode defines Supernode, a canonically sorted tuple of vertex
// indices treated as a single matching unit, and TemplateNode, a Supernode
// over template vertices that additionally carries per-channel clique
// multiplicities (well-defined because its members are, by construction,
// structurally interchangeable: see package partition).
package supernode
