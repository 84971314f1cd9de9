package django

import (
	"context"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"

	"github.com/matzehuels/squashgraph/pkg/errors"
	"github.com/matzehuels/squashgraph/pkg/migration"
)

// migrationClass is the class Django looks up in every migration module.
const migrationClass = "Migration"

// Declaration holds the attributes read from a Migration class.
type Declaration struct {
	Dependencies []migration.RecordID
	Replaces     []migration.RecordID

	// DependencyStart and DependencyEnd delimit the dependencies value in
	// the source. Both are zero when the class declares no dependencies.
	DependencyStart int
	DependencyEnd   int
}

// Parser reads migration modules. It is not safe for concurrent use.
type Parser struct {
	parser *sitter.Parser
}

// NewParser creates a parser for Python sources.
func NewParser() *Parser {
	p := sitter.NewParser()
	p.SetLanguage(python.GetLanguage())
	return &Parser{parser: p}
}

// Parse extracts the declaration of the Migration class in src.
func (p *Parser) Parse(ctx context.Context, src []byte) (*Declaration, error) {
	tree, err := p.parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeParse, err, "parse python")
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return nil, errors.New(errors.ErrCodeParse, "syntax error")
	}

	cls := findClass(root, src, migrationClass)
	if cls == nil {
		return nil, errors.New(errors.ErrCodeParse, "no %s class", migrationClass)
	}

	decl := &Declaration{}
	body := cls.ChildByFieldName("body")
	if body == nil {
		return decl, nil
	}
	for i := 0; i < int(body.NamedChildCount()); i++ {
		stmt := body.NamedChild(i)
		if stmt.Type() != "expression_statement" {
			continue
		}
		for j := 0; j < int(stmt.NamedChildCount()); j++ {
			name, value := assignment(stmt.NamedChild(j), src)
			switch name {
			case "dependencies":
				decl.Dependencies = recordIDs(value, src)
				decl.DependencyStart = int(value.StartByte())
				decl.DependencyEnd = int(value.EndByte())
			case "replaces":
				decl.Replaces = recordIDs(value, src)
			}
		}
	}
	return decl, nil
}

// DependencyRegion returns the byte range of the dependencies value of the
// Migration class in src. ok is false when src cannot be parsed or declares
// no dependencies.
func DependencyRegion(src []byte) (start, end int, ok bool) {
	decl, err := NewParser().Parse(context.Background(), src)
	if err != nil || decl.DependencyEnd == 0 {
		return 0, 0, false
	}
	return decl.DependencyStart, decl.DependencyEnd, true
}

func findClass(root *sitter.Node, src []byte, name string) *sitter.Node {
	for i := 0; i < int(root.NamedChildCount()); i++ {
		n := root.NamedChild(i)
		if n.Type() == "decorated_definition" {
			n = n.ChildByFieldName("definition")
		}
		if n == nil || n.Type() != "class_definition" {
			continue
		}
		if id := n.ChildByFieldName("name"); id != nil && id.Content(src) == name {
			return n
		}
	}
	return nil
}

// assignment returns the target name and value node of a plain
// "name = value" or "name: type = value" statement.
func assignment(n *sitter.Node, src []byte) (string, *sitter.Node) {
	if n == nil || n.Type() != "assignment" {
		return "", nil
	}
	left := n.ChildByFieldName("left")
	right := n.ChildByFieldName("right")
	if left == nil || right == nil || left.Type() != "identifier" {
		return "", nil
	}
	return left.Content(src), right
}

// recordIDs collects the ("app", "name") tuples of a list or tuple literal.
func recordIDs(n *sitter.Node, src []byte) []migration.RecordID {
	if n == nil || (n.Type() != "list" && n.Type() != "tuple") {
		return nil
	}
	var ids []migration.RecordID
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if id, ok := recordID(n.NamedChild(i), src); ok {
			ids = append(ids, id)
		}
	}
	return ids
}

func recordID(n *sitter.Node, src []byte) (migration.RecordID, bool) {
	if n.Type() != "tuple" || n.NamedChildCount() != 2 {
		return migration.RecordID{}, false
	}
	app, ok := stringLiteral(n.NamedChild(0), src)
	if !ok {
		return migration.RecordID{}, false
	}
	name, ok := stringLiteral(n.NamedChild(1), src)
	if !ok {
		return migration.RecordID{}, false
	}
	return migration.ID(app, name), true
}

// stringLiteral unquotes a plain Python string literal. Formatted strings
// and strings with escapes are rejected.
func stringLiteral(n *sitter.Node, src []byte) (string, bool) {
	if n == nil || n.Type() != "string" {
		return "", false
	}
	s := n.Content(src)
	prefix := strings.IndexAny(s, `'"`)
	if prefix < 0 || strings.ContainsAny(s[:prefix], "fF") {
		return "", false
	}
	s = s[prefix:]
	for _, q := range []string{`"""`, `'''`, `"`, `'`} {
		if len(s) >= 2*len(q) && strings.HasPrefix(s, q) && strings.HasSuffix(s, q) {
			inner := s[len(q) : len(s)-len(q)]
			if strings.Contains(inner, `\`) {
				return "", false
			}
			return inner, true
		}
	}
	return "", false
}
