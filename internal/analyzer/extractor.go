package analyzer

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// extractClasses builds a report for every class declaration among the named
// children of node, recursing into class bodies so that nested classes form a
// subtree of their enclosing class's report. fileImports are the file-scope
// import strings; they apply to every class in the file regardless of nesting
// depth and are merged into each class's dependency list verbatim.
func extractClasses(node *sitter.Node, source []byte, fileImports []string) ([]ClassDepsReport, error) {
	classes := []ClassDepsReport{}

	for i := uint(0); i < node.NamedChildCount(); i++ {
		child := node.NamedChild(i)
		if child.Kind() != "class_declaration" {
			continue
		}

		nameNode := child.ChildByFieldName("name")
		if nameNode == nil {
			// A class declaration always carries a name in the Java grammar;
			// its absence means the extractor and grammar disagree.
			return nil, &StructuralError{NodeKind: "class_declaration", Missing: "name"}
		}

		nested := []ClassDepsReport{}
		if body := child.ChildByFieldName("body"); body != nil {
			var err error
			nested, err = extractClasses(body, source, fileImports)
			if err != nil {
				return nil, err
			}
		}

		deps := []string{}
		for _, raw := range collectClassDependencies(child, source) {
			if name, ok := NormalizeType(raw); ok {
				deps = append(deps, name)
			}
		}
		// Import strings bypass the normalizer: wildcard and static markers
		// are part of the dependency name.
		deps = append(deps, fileImports...)
		deps = filterPrimitives(sortUnique(deps))

		classes = append(classes, ClassDepsReport{
			ClassName:     nodeText(nameNode, source),
			ClassDeps:     deps,
			NestedClasses: nested,
		})
	}

	return classes, nil
}

// collectFileImports gathers every import declaration among the direct named
// children of the file root. Wildcard imports get a ".*" suffix, static
// imports a "static " prefix.
func collectFileImports(root *sitter.Node, source []byte) []string {
	imports := []string{}

	for i := uint(0); i < root.NamedChildCount(); i++ {
		child := root.NamedChild(i)
		if child.Kind() != "import_declaration" {
			continue
		}

		pathNode := child.NamedChild(0)
		if pathNode == nil {
			continue
		}
		path := nodeText(pathNode, source)

		if second := child.NamedChild(1); second != nil && second.Kind() == "asterisk" {
			path += ".*"
		}
		if hasChildOfKind(child, "static") {
			path = "static " + path
		}

		imports = append(imports, path)
	}

	return imports
}

// collectClassDependencies gathers the raw type tokens a single class
// references: its superclass, implemented interfaces, and the types appearing
// in the direct members of its body. Nested class declarations are skipped
// here; they produce their own reports.
func collectClassDependencies(classNode *sitter.Node, source []byte) []string {
	deps := []string{}

	if sc := classNode.ChildByFieldName("superclass"); sc != nil {
		deps = append(deps, superclassName(sc, source))
	}
	if ifaces := classNode.ChildByFieldName("interfaces"); ifaces != nil {
		deps = append(deps, interfaceNames(ifaces, source)...)
	}

	body := classNode.ChildByFieldName("body")
	if body == nil {
		return deps
	}

	for i := uint(0); i < body.NamedChildCount(); i++ {
		member := body.NamedChild(i)
		switch member.Kind() {
		case "field_declaration", "constructor_declaration", "object_creation_expression":
			deps = append(deps, typeWithDeclarator(member, source)...)
		case "method_declaration":
			deps = append(deps, methodDependencies(member, source)...)
		}
	}

	return deps
}

// superclassName resolves the extended type from a superclass node. The node
// spans the whole "extends Foo" clause, so prefer the name field when the
// grammar provides one and fall back to the first named child (the type).
func superclassName(sc *sitter.Node, source []byte) string {
	if name := fieldText(sc, "name", source); name != "" {
		return name
	}
	if sc.NamedChildCount() > 0 {
		return nodeText(sc.NamedChild(0), source)
	}
	return nodeText(sc, source)
}

// interfaceNames returns one entry per implemented interface. The grammar
// wraps the interfaces in a type_list node, so unwrap it when present.
func interfaceNames(ifaces *sitter.Node, source []byte) []string {
	names := []string{}
	for i := uint(0); i < ifaces.NamedChildCount(); i++ {
		child := ifaces.NamedChild(i)
		if child.Kind() == "type_list" {
			for j := uint(0); j < child.NamedChildCount(); j++ {
				names = append(names, nodeText(child.NamedChild(j), source))
			}
			continue
		}
		names = append(names, nodeText(child, source))
	}
	return names
}

// typeWithDeclarator collects the node's direct "type" field plus the type
// reachable through declarator -> value -> type. Declarations with an
// initializer nest the value's type one level deeper, and the two are not
// always equal (a raw type vs a generically instantiated one), so both are
// collected and deduplicated later.
func typeWithDeclarator(node *sitter.Node, source []byte) []string {
	deps := []string{}
	if t := fieldText(node, "type", source); t != "" {
		deps = append(deps, t)
	}
	if decl := node.ChildByFieldName("declarator"); decl != nil {
		if value := decl.ChildByFieldName("value"); value != nil {
			if t := fieldText(value, "type", source); t != "" {
				deps = append(deps, t)
			}
		}
	}
	return deps
}

// methodDependencies collects a method's return type, formal parameter types,
// and the types referenced by the direct statements of its body.
func methodDependencies(method *sitter.Node, source []byte) []string {
	deps := typeWithDeclarator(method, source)

	if params := method.ChildByFieldName("parameters"); params != nil {
		for i := uint(0); i < params.NamedChildCount(); i++ {
			if t := fieldText(params.NamedChild(i), "type", source); t != "" {
				deps = append(deps, t)
			}
		}
	}

	body := method.ChildByFieldName("body")
	if body == nil {
		return deps
	}

	for i := uint(0); i < body.NamedChildCount(); i++ {
		stmt := body.NamedChild(i)
		switch stmt.Kind() {
		case "local_variable_declaration":
			deps = append(deps, typeWithDeclarator(stmt, source)...)
		case "return_statement":
			if stmt.NamedChildCount() > 0 {
				if t := fieldText(stmt.NamedChild(0), "type", source); t != "" {
					deps = append(deps, t)
				}
			}
		case "expression_statement":
			deps = append(deps, creationTypes(stmt, source, creationScanDepth)...)
		}
	}

	return deps
}

// creationScanDepth bounds the lookahead below an expression statement:
// statement -> invocation -> argument list -> creation expression.
const creationScanDepth = 3

// creationTypes scans a shallow window below an expression statement for
// object creation expressions, enough to catch obj.method(new Foo()) without
// full expression traversal.
func creationTypes(node *sitter.Node, source []byte, depth int) []string {
	deps := []string{}
	if node.Kind() == "object_creation_expression" {
		if t := fieldText(node, "type", source); t != "" {
			deps = append(deps, t)
		}
		return deps
	}
	if depth == 0 {
		return deps
	}
	for i := uint(0); i < node.NamedChildCount(); i++ {
		deps = append(deps, creationTypes(node.NamedChild(i), source, depth-1)...)
	}
	return deps
}

// hasChildOfKind reports whether any child, named or not, has the given kind.
// The static marker of an import declaration is an anonymous child.
func hasChildOfKind(node *sitter.Node, kind string) bool {
	for i := uint(0); i < node.ChildCount(); i++ {
		if node.Child(i).Kind() == kind {
			return true
		}
	}
	return false
}
