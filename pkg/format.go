package egeria

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/list"
	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"
)

// OutputFormat selects how Render shapes a set of elements
type OutputFormat string

const (
	FormatJSON    OutputFormat = "JSON"
	FormatDict    OutputFormat = "DICT"
	FormatList    OutputFormat = "LIST"
	FormatMD      OutputFormat = "MD"
	FormatMDTable OutputFormat = "MD-TABLE"
	FormatMermaid OutputFormat = "MERMAID"
	FormatTable   OutputFormat = "TABLE"
	FormatYAML    OutputFormat = "YAML"
	FormatReport  OutputFormat = "REPORT"
)

var formatAliases = map[string]OutputFormat{
	"JSON":     FormatJSON,
	"DICT":     FormatDict,
	"LIST":     FormatList,
	"MD":       FormatMD,
	"MARKDOWN": FormatMD,
	"FORM":     FormatMD,
	"MD-TABLE": FormatMDTable,
	"MDTABLE":  FormatMDTable,
	"MERMAID":  FormatMermaid,
	"TABLE":    FormatTable,
	"YAML":     FormatYAML,
	"YML":      FormatYAML,
	"REPORT":   FormatReport,
}

// OutputFormats lists the canonical format names
func OutputFormats() []OutputFormat {
	return []OutputFormat{
		FormatJSON, FormatDict, FormatList, FormatMD, FormatMDTable,
		FormatMermaid, FormatTable, FormatYAML, FormatReport,
	}
}

// ParseOutputFormat accepts a format name or alias in any case
func ParseOutputFormat(s string) (OutputFormat, error) {
	f, ok := formatAliases[strings.ToUpper(strings.TrimSpace(s))]
	if !ok {
		return "", invalidParameter("unknown output format %q", s)
	}
	return f, nil
}

// Column selects one value of an element for tabular output. Key is
// "guid", "typeName", "status", "displayName" or a property name.
type Column struct {
	Name string
	Key  string
}

// DefaultColumns is used when a caller passes no columns
var DefaultColumns = []Column{
	{Name: "Display Name", Key: "displayName"},
	{Name: "Qualified Name", Key: "qualifiedName"},
	{Name: "Type", Key: "typeName"},
	{Name: "GUID", Key: "guid"},
}

func columnValue(el Element, key string) any {
	switch key {
	case "guid":
		return el.GUID()
	case "typeName":
		return el.TypeName()
	case "status":
		return el.Header.Status
	case "displayName":
		return el.DisplayName()
	default:
		return el.Property(key)
	}
}

func cellText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []any, map[string]any:
		data, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(data)
	default:
		return fmt.Sprint(t)
	}
}

// ToDicts flattens elements to maps. Without columns every property is
// kept along with guid, typeName and status.
func ToDicts(elements []Element, columns []Column) []map[string]any {
	out := make([]map[string]any, 0, len(elements))
	for _, el := range elements {
		row := map[string]any{}
		if len(columns) == 0 {
			for k, v := range el.Properties {
				row[k] = v
			}
			row["guid"] = el.GUID()
			row["typeName"] = el.TypeName()
			if el.Header.Status != "" {
				row["status"] = el.Header.Status
			}
		} else {
			for _, c := range columns {
				row[c.Key] = columnValue(el, c.Key)
			}
		}
		out = append(out, row)
	}
	return out
}

// Render shapes elements into the requested format
func Render(elements []Element, format OutputFormat, columns []Column) (string, error) {
	if len(columns) == 0 && format != FormatDict && format != FormatYAML {
		columns = DefaultColumns
	}

	switch format {
	case FormatJSON:
		return marshalIndent(elements)
	case FormatDict:
		return marshalIndent(ToDicts(elements, columns))
	case FormatYAML:
		data, err := yaml.Marshal(ToDicts(elements, columns))
		if err != nil {
			return "", fmt.Errorf("failed to render yaml: %w", err)
		}
		return string(data), nil
	case FormatList:
		return renderList(elements, columns), nil
	case FormatMD:
		return renderMarkdown(elements, columns), nil
	case FormatMDTable:
		return newTable(elements, columns).RenderMarkdown(), nil
	case FormatTable:
		t := newTable(elements, columns)
		style := table.StyleLight
		style.Options.DrawBorder = false
		t.SetStyle(style)
		return t.Render(), nil
	case FormatMermaid:
		return renderMermaid(elements), nil
	case FormatReport:
		return renderReport(elements, columns), nil
	default:
		return "", invalidParameter("unknown output format %q", format)
	}
}

func marshalIndent(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to render json: %w", err)
	}
	return string(data), nil
}

func newTable(elements []Element, columns []Column) table.Writer {
	t := table.NewWriter()
	header := make(table.Row, len(columns))
	for i, c := range columns {
		header[i] = c.Name
	}
	t.AppendHeader(header)
	for _, el := range elements {
		row := make(table.Row, len(columns))
		for i, c := range columns {
			row[i] = cellText(columnValue(el, c.Key))
		}
		t.AppendRow(row)
	}
	return t
}

func renderList(elements []Element, columns []Column) string {
	l := list.NewWriter()
	for _, el := range elements {
		l.AppendItem(el.DisplayName())
		l.Indent()
		for _, c := range columns {
			if c.Key == "displayName" {
				continue
			}
			if v := cellText(columnValue(el, c.Key)); v != "" {
				l.AppendItem(c.Name + ": " + v)
			}
		}
		l.UnIndent()
	}
	l.SetStyle(list.StyleBulletCircle)
	return l.Render()
}

func renderMarkdown(elements []Element, columns []Column) string {
	var b strings.Builder
	for i, el := range elements {
		if i > 0 {
			b.WriteString("\n---\n\n")
		}
		fmt.Fprintf(&b, "# %s Name\n\n%s\n\n", el.TypeName(), el.DisplayName())
		for _, c := range columns {
			if c.Key == "displayName" {
				continue
			}
			v := cellText(columnValue(el, c.Key))
			if v == "" {
				continue
			}
			fmt.Fprintf(&b, "## %s\n%s\n\n", c.Name, v)
		}
	}
	return b.String()
}

// renderMermaid prefers the graphs the server drew. Elements without one are
// drawn as a local flowchart node each.
func renderMermaid(elements []Element) string {
	var graphs []string
	var bare []Element
	for _, el := range elements {
		if el.MermaidGraph != "" {
			graphs = append(graphs, el.MermaidGraph)
		} else {
			bare = append(bare, el)
		}
	}
	if len(bare) > 0 {
		graphs = append(graphs, localFlowchart(bare))
	}
	return strings.Join(graphs, "\n\n")
}

func localFlowchart(elements []Element) string {
	var b strings.Builder
	b.WriteString("flowchart LR\n")
	for i, el := range elements {
		label := strings.ReplaceAll(el.DisplayName(), `"`, "'")
		if label == "" {
			label = el.GUID()
		}
		fmt.Fprintf(&b, "    n%d[\"%s<br>%s\"]\n", i, el.TypeName(), label)
	}
	return b.String()
}

func renderReport(elements []Element, columns []Column) string {
	var b strings.Builder
	counts := map[string]int{}
	for _, el := range elements {
		counts[el.TypeName()]++
	}
	types := make([]string, 0, len(counts))
	for t := range counts {
		types = append(types, t)
	}
	sort.Strings(types)

	fmt.Fprintf(&b, "# Report\n\n%d elements\n\n", len(elements))
	for _, t := range types {
		fmt.Fprintf(&b, "* %s: %d\n", t, counts[t])
	}
	b.WriteString("\n")

	for _, el := range elements {
		fmt.Fprintf(&b, "## %s\n\n", el.DisplayName())
		var buf bytes.Buffer
		for _, c := range columns {
			if v := cellText(columnValue(el, c.Key)); v != "" && c.Key != "displayName" {
				fmt.Fprintf(&buf, "* **%s**: %s\n", c.Name, v)
			}
		}
		b.Write(buf.Bytes())
		if el.MermaidGraph != "" {
			fmt.Fprintf(&b, "\n```mermaid\n%s\n```\n", strings.TrimSpace(el.MermaidGraph))
		}
		b.WriteString("\n")
	}
	return b.String()
}
