package parser

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	"github.com/hexaview/hexaview/internal/adapters/outbound/scanner"
)

// TSParser implements domain.ImportParser for TypeScript/JavaScript sources
// by walking the tree-sitter syntax tree. Only real import nodes produce
// edges: import text inside comments or string literals never does.
type TSParser struct{}

func New() *TSParser {
	return &TSParser{}
}

func languageFor(relPath string) *sitter.Language {
	switch {
	case strings.HasSuffix(relPath, ".tsx"):
		return tsx.GetLanguage()
	case strings.HasSuffix(relPath, ".ts"), strings.HasSuffix(relPath, ".mts"):
		return typescript.GetLanguage()
	default:
		return javascript.GetLanguage()
	}
}

// ParseImports parses relPath and resolves its module specifiers against the
// known file set. Bare specifiers are third-party packages and produce no
// target. Relative targets that escape the project root are returned as-is
// ("../…") so the graph builder can drop them.
func (p *TSParser) ParseImports(rootPath, relPath string, known map[string]bool) ([]string, error) {
	data, err := os.ReadFile(filepath.Join(rootPath, filepath.FromSlash(relPath)))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", relPath, err)
	}

	ts := sitter.NewParser()
	ts.SetLanguage(languageFor(relPath))
	tree, err := ts.ParseCtx(context.Background(), nil, data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", relPath, err)
	}
	defer tree.Close()

	specifiers := collectSpecifiers(tree.RootNode(), data)

	var targets []string
	seen := make(map[string]bool)
	for _, spec := range specifiers {
		target, ok := resolve(relPath, spec, known)
		if !ok || seen[target] {
			continue
		}
		seen[target] = true
		targets = append(targets, target)
	}
	return targets, nil
}

// collectSpecifiers walks the tree in document order gathering the module
// specifier of every import form: static imports, re-exports, CommonJS
// require, and dynamic import().
func collectSpecifiers(node *sitter.Node, content []byte) []string {
	if node == nil {
		return nil
	}

	var specs []string
	switch node.Type() {
	case "import_statement", "export_statement":
		// Re-exports carry a string child; plain export declarations do not.
		if s := childString(node, content); s != "" {
			specs = append(specs, s)
		}
	case "call_expression":
		if s := callSpecifier(node, content); s != "" {
			specs = append(specs, s)
		}
	}

	for i := 0; i < int(node.ChildCount()); i++ {
		specs = append(specs, collectSpecifiers(node.Child(i), content)...)
	}
	return specs
}

// callSpecifier returns the string argument of a require() or import() call,
// or "" when the call is neither.
func callSpecifier(node *sitter.Node, content []byte) string {
	fn := node.Child(0)
	if fn == nil {
		return ""
	}

	isDynamicImport := fn.Type() == "import"
	isRequire := fn.Type() == "identifier" && string(content[fn.StartByte():fn.EndByte()]) == "require"
	if !isDynamicImport && !isRequire {
		return ""
	}

	for i := 0; i < int(node.ChildCount()); i++ {
		args := node.Child(i)
		if args.Type() != "arguments" {
			continue
		}
		for j := 0; j < int(args.ChildCount()); j++ {
			if arg := args.Child(j); arg.Type() == "string" {
				return stringContent(arg, content)
			}
		}
	}
	return ""
}

func childString(node *sitter.Node, content []byte) string {
	for i := 0; i < int(node.ChildCount()); i++ {
		if c := node.Child(i); c.Type() == "string" {
			return stringContent(c, content)
		}
	}
	return ""
}

func stringContent(node *sitter.Node, content []byte) string {
	for i := 0; i < int(node.ChildCount()); i++ {
		if c := node.Child(i); c.Type() == "string_fragment" {
			return string(content[c.StartByte():c.EndByte()])
		}
	}
	return strings.Trim(string(content[node.StartByte():node.EndByte()]), "\"'`")
}

// resolve maps a module specifier to a project-relative path.
func resolve(fromRel, spec string, known map[string]bool) (string, bool) {
	if !strings.HasPrefix(spec, "./") && !strings.HasPrefix(spec, "../") {
		return "", false // bare specifier: third-party or builtin
	}

	joined := path.Join(path.Dir(fromRel), spec)

	// Escaping the root cannot be probed against the known set; hand the
	// cleaned path to the builder, which excludes out-of-root targets.
	if joined == ".." || strings.HasPrefix(joined, "../") {
		return joined, true
	}

	if known[joined] {
		return joined, true
	}
	for _, ext := range scanner.Extensions() {
		if cand := joined + ext; known[cand] {
			return cand, true
		}
	}
	for _, ext := range scanner.Extensions() {
		if cand := joined + "/index" + ext; known[cand] {
			return cand, true
		}
	}

	// In-root but unresolvable: an asset, a generated file, or a typo.
	// Unresolved targets are excluded before rule evaluation.
	return "", false
}
