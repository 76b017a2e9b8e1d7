package config

import (
	"github.com/pelletier/go-toml/v2/unstable"
)

// placeholderOrder walks the raw TOML document and returns the placeholder
// names in declaration order. toml.Unmarshal decodes tables into Go maps,
// which lose ordering, so the streaming parser is the only way to recover
// the order the file declares.
//
// Three declaration shapes are recognized:
//
//	[placeholders.api]
//	choices = [...]
//
//	[placeholders]
//	api.choices = [...]
//
//	placeholders = { api = { choices = [...] } }
func placeholderOrder(data []byte) ([]string, error) {
	var order []string
	seen := make(map[string]bool)
	record := func(name string) {
		if !seen[name] {
			seen[name] = true
			order = append(order, name)
		}
	}

	var currentTable []string
	parser := &unstable.Parser{}
	parser.Reset(data)
	for parser.NextExpression() {
		expr := parser.Expression()
		switch expr.Kind {
		case unstable.Table, unstable.ArrayTable:
			currentTable = keyParts(expr)
			if len(currentTable) >= 2 && currentTable[0] == "placeholders" {
				record(currentTable[1])
			}
		case unstable.KeyValue:
			key := append(append([]string{}, currentTable...), keyParts(expr)...)
			if len(key) >= 2 && key[0] == "placeholders" {
				record(key[1])
				continue
			}
			// placeholders = { api = {...}, ... }
			if len(key) == 1 && key[0] == "placeholders" {
				value := expr.Value()
				if value != nil && value.Kind == unstable.InlineTable {
					it := value.Children()
					for it.Next() {
						child := it.Node()
						if child.Kind == unstable.KeyValue {
							if parts := keyParts(child); len(parts) > 0 {
								record(parts[0])
							}
						}
					}
				}
			}
		}
	}
	if err := parser.Error(); err != nil {
		return nil, err
	}
	return order, nil
}

// keyParts collects the dotted key of an expression as plain strings.
func keyParts(n *unstable.Node) []string {
	var parts []string
	it := n.Key()
	for it.Next() {
		parts = append(parts, string(it.Node().Data))
	}
	return parts
}
